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

// findOccurrence returns the first identifier occurrence with the given
// text, or fails the test.
func findOccurrence(t *testing.T, tree *ast.ParseTree, name string) Occurrence {
	t.Helper()

	stack := []*sitter.Node{tree.Root()}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if ast.IdentifierNodeTypes[node.Type()] && tree.Text(node) == name {
			return NewOccurrence(node, tree)
		}
		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			if child := node.Child(i); child != nil {
				stack = append(stack, child)
			}
		}
	}
	t.Fatalf("identifier %q not found in tree", name)
	return Occurrence{}
}

func TestClassifyRoles(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		ident    string
		opts     Options
		wantRole Role
		wantVerd Verdict
	}{
		{
			name:     "plain declaration",
			src:      `var my_var = 1;`,
			ident:    "my_var",
			opts:     DefaultOptions(),
			wantRole: RolePlainReference,
			wantVerd: VerdictViolation,
		},
		{
			name:     "member object",
			src:      `bad_obj.foo;`,
			ident:    "bad_obj",
			opts:     DefaultOptions(),
			wantRole: RoleMemberObject,
			wantVerd: VerdictViolation,
		},
		{
			name:     "member property read",
			src:      `foo.bar_baz;`,
			ident:    "bar_baz",
			opts:     DefaultOptions(),
			wantRole: RoleMemberProperty,
			wantVerd: VerdictNone,
		},
		{
			name:     "assignment target",
			src:      `obj.my_val = 1;`,
			ident:    "my_val",
			opts:     DefaultOptions(),
			wantRole: RoleAssignmentTarget,
			wantVerd: VerdictViolation,
		},
		{
			name:     "property key",
			src:      `var o = { category_id: 1 };`,
			ident:    "category_id",
			opts:     DefaultOptions(),
			wantRole: RolePropertyKey,
			wantVerd: VerdictViolation,
		},
		{
			name:     "destructuring shorthand",
			src:      `var { category_id } = query;`,
			ident:    "category_id",
			opts:     DefaultOptions(),
			wantRole: RoleDestructuringBinding,
			wantVerd: VerdictViolation,
		},
		{
			name:     "destructuring shorthand ignored",
			src:      `var { category_id } = query;`,
			ident:    "category_id",
			opts:     Options{Properties: PropertiesAlways, IgnoreDestructuring: true},
			wantRole: RoleDestructuringBinding,
			wantVerd: VerdictNone,
		},
		{
			name:     "destructuring default",
			src:      `var { snake_cased = 1 } = query;`,
			ident:    "snake_cased",
			opts:     Options{Properties: PropertiesAlways, IgnoreDestructuring: true},
			wantRole: RoleDestructuringDefault,
			wantVerd: VerdictViolation,
		},
		{
			name:     "import binding",
			src:      `import { no_camelcased } from "x";`,
			ident:    "no_camelcased",
			opts:     DefaultOptions(),
			wantRole: RoleImportBinding,
			wantVerd: VerdictViolation,
		},
		{
			name:     "call argument",
			src:      `foo(bar_baz);`,
			ident:    "bar_baz",
			opts:     DefaultOptions(),
			wantRole: RolePlainReference,
			wantVerd: VerdictNone,
		},
		{
			name:     "all separators",
			src:      `var ___ = 1;`,
			ident:    "___",
			opts:     DefaultOptions(),
			wantRole: RolePlainReference,
			wantVerd: VerdictNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustParse(t, tt.src)
			occ := findOccurrence(t, tree, tt.ident)
			role, verdict := Classify(occ, tt.opts.Normalize())
			if role != tt.wantRole {
				t.Errorf("role = %v, want %v", role, tt.wantRole)
			}
			if verdict != tt.wantVerd {
				t.Errorf("verdict = %v, want %v", verdict, tt.wantVerd)
			}
		})
	}
}

func TestRoleStrings(t *testing.T) {
	roles := map[Role]string{
		RolePlainReference:       "plain-reference",
		RoleMemberObject:         "member-access-object",
		RoleMemberProperty:       "member-access-property",
		RoleAssignmentTarget:     "assignment-target",
		RolePropertyKey:          "property-key",
		RoleDestructuringBinding: "destructuring-binding",
		RoleDestructuringDefault: "destructuring-default",
		RoleImportBinding:        "import-binding",
	}
	for role, want := range roles {
		if got := role.String(); got != want {
			t.Errorf("Role(%d).String() = %q, want %q", role, got, want)
		}
	}
}
