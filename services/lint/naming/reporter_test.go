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
	"testing"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/AleutianAI/AleutianLint/services/lint/ast"
)

// walkIdentifiers visits every identifier occurrence in the tree.
func walkIdentifiers(tree *ast.ParseTree, fn func(Occurrence)) {
	stack := []*sitter.Node{tree.Root()}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ast.IdentifierNodeTypes[node.Type()] {
			fn(NewOccurrence(node, tree))
		}
		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(i); child != nil {
				stack = append(stack, child)
			}
		}
	}
}

func TestReporterDeduplicates(t *testing.T) {
	tree := mustParse(t, `var bad_name = 1;`)
	occ := findOccurrence(t, tree, "bad_name")

	r := NewReporter()
	if !r.Report(occ, RolePlainReference) {
		t.Fatal("first report should record a violation")
	}
	if r.Report(occ, RoleDestructuringDefault) {
		t.Fatal("second report of the same occurrence should be suppressed")
	}
	if r.Count() != 1 {
		t.Fatalf("expected 1 violation, got %d", r.Count())
	}

	v := r.Violations()[0]
	if v.Role != RolePlainReference.String() {
		t.Errorf("violation should keep the first role, got %q", v.Role)
	}
}

func TestReporterDistinctOccurrencesOfSameName(t *testing.T) {
	// The same name at different positions is two occurrences.
	tree := mustParse(t, "var dup_name = 1;\ndup_name = 2;")

	r := NewReporter()
	first := findOccurrence(t, tree, "dup_name")
	if !r.Report(first, RolePlainReference) {
		t.Fatal("first occurrence should be recorded")
	}

	// Find the second occurrence by skipping the first position.
	var second Occurrence
	found := false
	walkIdentifiers(tree, func(occ Occurrence) {
		if occ.Name() == "dup_name" && occ.Identity() != first.Identity() {
			second = occ
			found = true
		}
	})
	if !found {
		t.Fatal("second occurrence not found")
	}

	if !r.Report(second, RolePlainReference) {
		t.Fatal("distinct occurrence should be recorded")
	}
	if r.Count() != 2 {
		t.Fatalf("expected 2 violations, got %d", r.Count())
	}
}
