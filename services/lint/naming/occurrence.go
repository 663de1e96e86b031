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

// maxAncestorLookup bounds upward ancestor walks. Real JavaScript trees are
// nowhere near this deep; the bound keeps per-occurrence work O(1).
const maxAncestorLookup = 256

// Occurrence is a single identifier occurrence delivered by the traversal.
//
// Description:
//
//	An Occurrence couples an identifier node with the tree it came from.
//	The node handle is a non-owning, traversal-scoped view into the tree;
//	parent and ancestor access is read-only and never retained beyond the
//	current check. Occurrences are immutable for the duration of a check.
//
// Thread Safety: Read-only; safe for concurrent use within a live tree.
type Occurrence struct {
	node *sitter.Node
	tree *ast.ParseTree
}

// NewOccurrence wraps an identifier node from the given tree.
func NewOccurrence(node *sitter.Node, tree *ast.ParseTree) Occurrence {
	return Occurrence{node: node, tree: tree}
}

// Name returns the raw, unstripped identifier text.
func (o Occurrence) Name() string {
	return o.tree.Text(o.node)
}

// Kind returns the tree-sitter node type of the identifier.
func (o Occurrence) Kind() string {
	return o.node.Type()
}

// Node returns the underlying node handle.
func (o Occurrence) Node() *sitter.Node {
	return o.node
}

// Identity returns a stable identity for deduplication: the byte offset of
// the occurrence in the source. Exactly one identifier node starts at any
// given offset.
func (o Occurrence) Identity() uint32 {
	return o.node.StartByte()
}

// Location returns the source location of the occurrence.
func (o Occurrence) Location() ast.Location {
	return ast.LocationFromNode(o.node, o.tree.FilePath)
}

// text returns the source text of an arbitrary node from the same tree.
func (o Occurrence) text(n *sitter.Node) string {
	return o.tree.Text(n)
}

// sameNode reports whether two node handles refer to the same tree node.
// Tree-sitter hands out value copies, so identity is positional.
func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return false
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte()
}

// insideDestructuringPattern reports whether any ancestor of the node is a
// destructuring pattern. Needed for the ignoreDestructuring exemption on
// property keys nested inside patterns.
func insideDestructuringPattern(node *sitter.Node) bool {
	cur := node.Parent()
	for i := 0; cur != nil && i < maxAncestorLookup; i++ {
		switch cur.Type() {
		case ast.NodeObjectPattern, ast.NodeArrayPattern:
			return true
		}
		cur = cur.Parent()
	}
	return false
}
