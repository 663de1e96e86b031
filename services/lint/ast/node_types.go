// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package ast

// JavaScript Tree-sitter Node Types
//
// This file documents the tree-sitter node types consumed by the naming
// checker. The checker uses direct node traversal rather than tree-sitter's
// query language for precise control over role classification.
//
// Reference: https://github.com/tree-sitter/tree-sitter-javascript

// Node type constants for JavaScript AST traversal.
const (
	// Top-level nodes
	NodeProgram = "program"

	// Identifier-like nodes. These are the nodes the traversal delivers to
	// the naming engine, one occurrence per node.
	NodeIdentifier                = "identifier"
	NodePropertyIdentifier        = "property_identifier"
	NodeShorthandProperty         = "shorthand_property_identifier"
	NodeShorthandPropertyPattern  = "shorthand_property_identifier_pattern"
	NodePrivatePropertyIdentifier = "private_property_identifier"

	// Expression nodes
	NodeMemberExpression    = "member_expression"
	NodeSubscriptExpression = "subscript_expression"
	NodeCallExpression      = "call_expression"
	NodeNewExpression       = "new_expression"
	NodeArguments           = "arguments"
	NodeAssignmentExpr      = "assignment_expression"
	NodeAugmentedAssignment = "augmented_assignment_expression"

	// Object and pattern nodes
	NodeObject                  = "object"
	NodePair                    = "pair"
	NodeObjectPattern           = "object_pattern"
	NodeArrayPattern            = "array_pattern"
	NodePairPattern             = "pair_pattern"
	NodeObjectAssignmentPattern = "object_assignment_pattern"
	NodeAssignmentPattern       = "assignment_pattern"
	NodeRestPattern             = "rest_pattern"

	// Import-related nodes
	NodeImportStatement = "import_statement"
	NodeImportClause    = "import_clause"
	NodeNamespaceImport = "namespace_import"
	NodeNamedImports    = "named_imports"
	NodeImportSpecifier = "import_specifier"
	NodeString          = "string"

	// Declaration nodes
	NodeVariableDeclarator = "variable_declarator"
	NodeLexicalDeclaration = "lexical_declaration"
	NodeVariableDecl       = "variable_declaration"
	NodeFormalParameters   = "formal_parameters"

	// Comment nodes
	NodeComment = "comment"
)

// IdentifierNodeTypes lists the node types that count as identifier
// occurrences for naming checks. The traversal delivers exactly these.
var IdentifierNodeTypes = map[string]bool{
	NodeIdentifier:               true,
	NodePropertyIdentifier:       true,
	NodeShorthandProperty:        true,
	NodeShorthandPropertyPattern: true,
}

// Destructuring Pattern Reference
//
// object_pattern
// ├── shorthand_property_identifier_pattern   // { a }
// ├── pair_pattern                            // { a: b }
// │   ├── property_identifier                 // key
// │   └── <pattern>                           // value (identifier or nested)
// ├── object_assignment_pattern               // { a = 1 }
// │   ├── shorthand_property_identifier_pattern  // left
// │   └── <expression>                        // right (default value)
// └── rest_pattern                            // { ...rest }
//
// Function parameter defaults use assignment_pattern (left, right) instead
// of object_assignment_pattern.
