// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package naming

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/AleutianAI/AleutianLint/services/lint/ast"
)

// Role is the syntactic role an identifier occurrence plays. Roles are
// derived from the occurrence's context on every classification, never
// stored on the tree.
type Role int

const (
	// RolePlainReference is any identifier not covered by a more specific role.
	RolePlainReference Role = iota

	// RoleMemberObject is the object operand of a member access (the 'a' in a.b).
	RoleMemberObject

	// RoleMemberProperty is the accessed property of a member access (the 'b' in a.b).
	RoleMemberProperty

	// RoleAssignmentTarget is a property assigned through member access (a.b = x).
	RoleAssignmentTarget

	// RolePropertyKey is an object literal property key.
	RolePropertyKey

	// RoleDestructuringBinding is a name bound by a destructuring pattern.
	RoleDestructuringBinding

	// RoleDestructuringDefault is a binding that carries a default value.
	RoleDestructuringDefault

	// RoleImportBinding is a local name introduced by an import clause.
	RoleImportBinding
)

// String returns the role name used in metrics labels and JSON output.
func (r Role) String() string {
	switch r {
	case RoleMemberObject:
		return "member-access-object"
	case RoleMemberProperty:
		return "member-access-property"
	case RoleAssignmentTarget:
		return "assignment-target"
	case RolePropertyKey:
		return "property-key"
	case RoleDestructuringBinding:
		return "destructuring-binding"
	case RoleDestructuringDefault:
		return "destructuring-default"
	case RoleImportBinding:
		return "import-binding"
	default:
		return "plain-reference"
	}
}

// Verdict is the outcome of classifying one occurrence.
type Verdict int

const (
	// VerdictNone means no check applies to this occurrence.
	VerdictNone Verdict = iota

	// VerdictOK means a check applied and the name passed.
	VerdictOK

	// VerdictViolation means a check applied and the name failed.
	VerdictViolation
)

// Classify determines the syntactic role of an identifier occurrence and
// whether its name violates the camelcase convention.
//
// Description:
//
//	Classify is a pure function from (occurrence context, options) to a
//	(role, verdict) pair. The decision is fully determined by the
//	occurrence's immediate parent kind, its position within that parent,
//	and the effective parent: when the immediate parent is a member-access
//	expression the effective parent is the access expression's own parent,
//	so assignment through member access is visible one level up.
//
//	The name is stripped of leading and trailing underscores before any
//	casing predicate runs; a visibility-prefix underscore never triggers a
//	violation by itself.
//
// Thread Safety: Pure; safe for concurrent use over a live tree.
func Classify(occ Occurrence, opts Options) (Role, Verdict) {
	node := occ.node
	parent := node.Parent()
	name := TrimSeparators(occ.Name())

	// A name that is nothing but separators carries no casing intent.
	if name == "" {
		return RolePlainReference, VerdictNone
	}

	if parent == nil {
		return RolePlainReference, verdictFrom(IsPlainCamel(name))
	}

	switch parent.Type() {
	case ast.NodeMemberExpression:
		return classifyMemberAccess(node, parent, name, opts)

	case ast.NodeSubscriptExpression:
		// a[expr] — computed access. The object operand gets the same check
		// as a dotted access object; the index is an ordinary expression
		// position that is left to other occurrences of the same name.
		if sameNode(parent.ChildByFieldName("object"), node) {
			return RoleMemberObject, verdictFrom(IsPlainCamel(name))
		}
		return RolePlainReference, VerdictNone

	case ast.NodePair, ast.NodePairPattern, ast.NodeObjectAssignmentPattern, ast.NodeAssignmentPattern:
		return classifyPropertyLike(occ, node, parent, name, opts)

	case ast.NodeObjectPattern:
		// { a } = obj — shorthand binding, key and value implied equal.
		if node.Type() == ast.NodeShorthandPropertyPattern {
			return classifyShorthandBinding(name, opts)
		}

	case ast.NodeObject:
		// { a } object literal shorthand: the single identifier is the key.
		if node.Type() == ast.NodeShorthandProperty {
			return classifyLiteralShorthand(node, name, opts)
		}

	case ast.NodeImportSpecifier, ast.NodeNamespaceImport, ast.NodeImportClause:
		return classifyImportBinding(node, parent, name)
	}

	// References adjacent to a call or constructor invocation are exempt so
	// non-camel external function and constructor names stay usable.
	if isInvocationContext(parent) {
		return RolePlainReference, VerdictNone
	}
	return RolePlainReference, verdictFrom(IsPlainCamel(name))
}

// classifyMemberAccess handles occurrences whose immediate parent is a
// member-access expression.
func classifyMemberAccess(node, parent *sitter.Node, name string, opts Options) (Role, Verdict) {
	isObject := sameNode(parent.ChildByFieldName("object"), node)
	role := RoleMemberProperty
	if isObject {
		role = RoleMemberObject
	}

	if opts.Properties == PropertiesNever {
		return role, VerdictNone
	}

	// Non-camel object operand of a.b is flagged directly.
	if isObject {
		if !IsPlainCamel(name) {
			return RoleMemberObject, VerdictViolation
		}
		return RoleMemberObject, VerdictNone
	}

	effParent := parent.Parent()
	if effParent != nil && isAssignmentKind(effParent.Type()) {
		left := effParent.ChildByFieldName("left")
		right := effParent.ChildByFieldName("right")

		// Assignment through this member access: the accessed property is
		// an assignment target and follows the configured property style.
		if sameNode(left, parent) && sameNode(parent.ChildByFieldName("property"), node) {
			if !IsValidPropertyName(name, opts.PropertiesStyle) {
				return RoleAssignmentTarget, VerdictViolation
			}
			return RoleAssignmentTarget, VerdictOK
		}

		if right != nil && right.Type() != ast.NodeMemberExpression && !IsPlainCamel(name) {
			return role, VerdictViolation
		}
	}

	return role, VerdictNone
}

// classifyPropertyLike handles property key/value pairs and default-value
// bindings, including the destructuring sub-rules.
func classifyPropertyLike(occ Occurrence, node, parent *sitter.Node, name string, opts Options) (Role, Verdict) {
	grand := parent.Parent()

	switch parent.Type() {
	case ast.NodeObjectAssignmentPattern:
		// { a = 1 } — shorthand binding with a default. Reported here even
		// when ignoreDestructuring is set; the default value expression
		// itself is never a binding.
		if sameNode(parent.ChildByFieldName("left"), node) {
			return RoleDestructuringDefault, verdictFrom(IsPlainCamel(name))
		}
		return RoleDestructuringDefault, VerdictNone

	case ast.NodePairPattern:
		if grand != nil && grand.Type() == ast.NodeObjectPattern {
			key := parent.ChildByFieldName("key")
			value := parent.ChildByFieldName("value")

			// The key side of a renaming pattern names the source field,
			// not a new binding; only the value side is evaluated.
			if sameNode(key, node) && !sameNode(value, node) {
				return RolePropertyKey, VerdictNone
			}

			selfBound := key != nil && value != nil && occ.text(key) == occ.text(value)
			if !IsPlainCamel(name) && !(selfBound && opts.IgnoreDestructuring) {
				return RoleDestructuringBinding, VerdictViolation
			}
			return RoleDestructuringBinding, VerdictOK
		}
	}

	// Generic property / default-binding rows.
	if opts.Properties == PropertiesNever {
		return RolePropertyKey, VerdictNone
	}
	if opts.IgnoreDestructuring && insideDestructuringPattern(node) {
		return RolePropertyKey, VerdictNone
	}
	if grand != nil && isInvocationContext(grand) && parent.Type() != ast.NodePair {
		return RolePlainReference, VerdictNone
	}

	switch parent.Type() {
	case ast.NodePair:
		// The right-hand value of a pair is left to the reference rules;
		// checking it here would double-report the key/value pair.
		if sameNode(parent.ChildByFieldName("value"), node) {
			return RolePlainReference, VerdictNone
		}
		if !IsValidPropertyName(name, opts.PropertiesStyle) {
			return RolePropertyKey, VerdictViolation
		}
		return RolePropertyKey, VerdictOK

	case ast.NodeAssignmentPattern:
		// param = defaultValue. Only the bound name is checked.
		if sameNode(parent.ChildByFieldName("right"), node) {
			return RolePlainReference, VerdictNone
		}
		return RoleDestructuringDefault, verdictFrom(IsPlainCamel(name))
	}

	return RolePropertyKey, verdictFrom(IsPlainCamel(name))
}

// classifyShorthandBinding handles { a } = obj, where the binding keeps its
// original name (self-bound).
func classifyShorthandBinding(name string, opts Options) (Role, Verdict) {
	if opts.IgnoreDestructuring {
		return RoleDestructuringBinding, VerdictNone
	}
	return RoleDestructuringBinding, verdictFrom(IsPlainCamel(name))
}

// classifyLiteralShorthand handles { a } inside an object literal, where
// the identifier serves as the property key.
func classifyLiteralShorthand(node *sitter.Node, name string, opts Options) (Role, Verdict) {
	if opts.Properties == PropertiesNever {
		return RolePropertyKey, VerdictNone
	}
	if opts.IgnoreDestructuring && insideDestructuringPattern(node) {
		return RolePropertyKey, VerdictNone
	}
	if !IsValidPropertyName(name, opts.PropertiesStyle) {
		return RolePropertyKey, VerdictViolation
	}
	return RolePropertyKey, VerdictOK
}

// classifyImportBinding handles named, namespace, and default import
// clauses. Only locally bound names are checked; an imported name that is
// aliased away is external and exempt. A local alias is checked even when
// it spells the same name as the imported one.
func classifyImportBinding(node, parent *sitter.Node, name string) (Role, Verdict) {
	switch parent.Type() {
	case ast.NodeImportSpecifier:
		alias := parent.ChildByFieldName("alias")
		if alias != nil {
			if sameNode(alias, node) {
				return RoleImportBinding, verdictFrom(IsPlainCamel(name))
			}
			return RoleImportBinding, VerdictNone
		}
		// No alias: the single name is the local binding.
		return RoleImportBinding, verdictFrom(IsPlainCamel(name))

	case ast.NodeNamespaceImport, ast.NodeImportClause:
		// "* as x" and default imports introduce local names.
		return RoleImportBinding, verdictFrom(IsPlainCamel(name))
	}
	return RoleImportBinding, VerdictNone
}

// isAssignmentKind reports whether a node type is a plain or compound
// assignment expression.
func isAssignmentKind(t string) bool {
	return t == ast.NodeAssignmentExpr || t == ast.NodeAugmentedAssignment
}

// isInvocationContext reports whether a node places its children in call or
// constructor-invocation position.
func isInvocationContext(n *sitter.Node) bool {
	switch n.Type() {
	case ast.NodeCallExpression, ast.NodeNewExpression, ast.NodeArguments:
		return true
	}
	return false
}

// verdictFrom converts a passed-check flag into a Verdict.
func verdictFrom(ok bool) Verdict {
	if ok {
		return VerdictOK
	}
	return VerdictViolation
}
