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
	"context"
	"testing"

	"github.com/AleutianAI/AleutianLint/services/lint/ast"
)

// mustParse parses a snippet or fails the test.
func mustParse(t *testing.T, src string) *ast.ParseTree {
	t.Helper()
	parser := ast.NewJavaScriptParser()
	tree, err := parser.Parse(context.Background(), []byte(src), "test.js")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	t.Cleanup(tree.Close)
	return tree
}

// runCheck parses and checks a snippet, returning the flagged names in order.
func runCheck(t *testing.T, src string, opts Options) []Violation {
	t.Helper()
	tree := mustParse(t, src)
	violations, err := NewEngine(opts).Run(context.Background(), tree)
	if err != nil {
		t.Fatalf("engine run failed: %v", err)
	}
	return violations
}

func flaggedNames(violations []Violation) []string {
	names := make([]string, 0, len(violations))
	for _, v := range violations {
		names = append(names, v.Name)
	}
	return names
}

func TestEngineDeclarationsAndReferences(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want []string
	}{
		{"snake declaration", `var my_var = 1;`, DefaultOptions(), []string{"my_var"}},
		{"camel declaration", `var myVar = 1;`, DefaultOptions(), nil},
		{"all caps constant", `var MY_CONST = 1;`, DefaultOptions(), nil},
		{"underscore prefix", `var _privateVar = 1;`, DefaultOptions(), nil},
		{"boundary underscores", `var __foo_bar__ = 1;`, DefaultOptions(), []string{"__foo_bar__"}},
		{"assignment left", `no_camel = 1;`, DefaultOptions(), []string{"no_camel"}},
		{"assignment right", `qux = no_camel;`, DefaultOptions(), []string{"no_camel"}},
		{"function param", `function doWork(first_arg) {}`, DefaultOptions(), []string{"first_arg"}},
		{"default param", `function doWork(bad_arg = 1) {}`, DefaultOptions(), []string{"bad_arg"}},
		{"dollar names", `var $fooBar = $;`, DefaultOptions(), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flaggedNames(runCheck(t, tt.src, tt.opts))
			assertNames(t, got, tt.want)
		})
	}
}

func TestEngineMemberAccess(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want []string
	}{
		{"member assignment flags property", `obj.my_val = 1;`, DefaultOptions(), []string{"my_val"}},
		{"augmented member assignment", `obj.some_val += 1;`, DefaultOptions(), []string{"some_val"}},
		{"member read unchecked", `console.log(foo.bar_baz);`, DefaultOptions(), nil},
		{"bad object operand", `bad_obj.foo;`, DefaultOptions(), []string{"bad_obj"}},
		{"member rhs unchecked", `qux = foo.some_bar;`, DefaultOptions(), nil},
		{"member callee unchecked", `obj.do_thing();`, DefaultOptions(), nil},
		{"subscript object checked", `bad_obj[key];`, DefaultOptions(), []string{"bad_obj"}},
		{"subscript index unchecked", `obj[some_key];`, DefaultOptions(), nil},
		{"never exempts member assignment", `obj.my_val = 1;`, Options{Properties: PropertiesNever}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flaggedNames(runCheck(t, tt.src, tt.opts))
			assertNames(t, got, tt.want)
		})
	}
}

func TestEngineProperties(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want []string
	}{
		{"snake key", `var o = { category_id: 1 };`, DefaultOptions(), []string{"category_id"}},
		{"never exempts keys", `var o = { category_id: 1 };`, Options{Properties: PropertiesNever}, nil},
		{"never keeps plain refs", `var my_var = 1; var o = { some_key: 2 };`, Options{Properties: PropertiesNever}, []string{"my_var"}},
		{"value side unchecked", `var o = { key: other_var };`, DefaultOptions(), nil},
		{"shorthand key checked", `var o = { bad_name };`, DefaultOptions(), []string{"bad_name"}},
		{"key in call argument", `foo({ isCamelcased: true, no_camelcased: false });`, DefaultOptions(), []string{"no_camelcased"}},
		{"upper style accepts pascal", `var o = { GoodKey: 1 };`, Options{Properties: PropertiesAlways, PropertiesStyle: PropertyStyleUpper}, nil},
		{"upper style rejects lower", `var o = { badKey: 1 };`, Options{Properties: PropertiesAlways, PropertiesStyle: PropertyStyleUpper}, []string{"badKey"}},
		{"lower style rejects pascal", `var o = { BadKey: 1 };`, Options{Properties: PropertiesAlways, PropertiesStyle: PropertyStyleLower}, []string{"BadKey"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flaggedNames(runCheck(t, tt.src, tt.opts))
			assertNames(t, got, tt.want)
		})
	}
}

func TestEngineDestructuring(t *testing.T) {
	ignore := Options{Properties: PropertiesAlways, IgnoreDestructuring: true}

	tests := []struct {
		name string
		src  string
		opts Options
		want []string
	}{
		{"shorthand binding", `var { category_id } = query;`, DefaultOptions(), []string{"category_id"}},
		{"shorthand binding ignored", `var { category_id } = query;`, ignore, nil},
		{"rename to camel", `var { category_id: categoryId } = query;`, DefaultOptions(), nil},
		{"rename to snake", `var { no_camel: still_bad } = query;`, DefaultOptions(), []string{"still_bad"}},
		{"rename to snake ignored", `var { no_camel: still_bad } = query;`, ignore, []string{"still_bad"}},
		{"self rename", `var { self_bound: self_bound } = query;`, DefaultOptions(), []string{"self_bound"}},
		{"self rename ignored", `var { self_bound: self_bound } = query;`, ignore, nil},
		{"default reported once", `var { snake_cased = 1 } = query;`, DefaultOptions(), []string{"snake_cased"}},
		{"default reported despite ignore", `var { snake_cased = 1 } = query;`, ignore, []string{"snake_cased"}},
		{"camel default ok", `var { camelCased = false } = query;`, ignore, nil},
		{"nested pattern", `var { outer: { inner_snake } } = query;`, DefaultOptions(), []string{"inner_snake"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flaggedNames(runCheck(t, tt.src, tt.opts))
			assertNames(t, got, tt.want)
		})
	}
}

func TestEngineImports(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"named import", `import { no_camelcased } from "external-module";`, []string{"no_camelcased"}},
		{"aliased to camel", `import { no_camelcased as camelCased } from "external-module";`, nil},
		{"aliased to same name", `import { no_camel as no_camel } from "external-module";`, []string{"no_camel"}},
		{"aliased to snake", `import { camelCased as no_camel_cased } from "external-module";`, []string{"no_camel_cased"}},
		{"namespace import", `import * as no_camelcased from "external-module";`, []string{"no_camelcased"}},
		{"default import", `import no_camelcased from "external-module";`, []string{"no_camelcased"}},
		{"clean imports", `import camelCased, { anotherCamel } from "external-module";`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flaggedNames(runCheck(t, tt.src, DefaultOptions()))
			assertNames(t, got, tt.want)
		})
	}
}

func TestEngineInvocations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"call argument exempt", `foo(bar_baz);`, nil},
		{"callee exempt", `do_something();`, nil},
		{"constructor exempt", `new Foo_Bar(baz_qux);`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flaggedNames(runCheck(t, tt.src, DefaultOptions()))
			assertNames(t, got, tt.want)
		})
	}
}

func TestEngineViolationDetails(t *testing.T) {
	violations := runCheck(t, "var my_var = 1;", DefaultOptions())
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}

	v := violations[0]
	if v.Message != "Identifier 'my_var' is not in camel case." {
		t.Errorf("unexpected message: %q", v.Message)
	}
	if v.Name != "my_var" {
		t.Errorf("unexpected name: %q", v.Name)
	}
	if v.Location.StartLine != 1 {
		t.Errorf("unexpected start line: %d", v.Location.StartLine)
	}
	if v.Location.StartCol != 4 {
		t.Errorf("unexpected start column: %d", v.Location.StartCol)
	}
	if v.Location.FilePath != "test.js" {
		t.Errorf("unexpected file path: %q", v.Location.FilePath)
	}
}

func TestEngineViolationKeepsOriginalName(t *testing.T) {
	violations := runCheck(t, "var __bad_name__ = 1;", DefaultOptions())
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if violations[0].Name != "__bad_name__" {
		t.Errorf("violation should carry the name as written, got %q", violations[0].Name)
	}
	if violations[0].Message != "Identifier '__bad_name__' is not in camel case." {
		t.Errorf("unexpected message: %q", violations[0].Message)
	}
}

func TestEngineCanceledContext(t *testing.T) {
	// Enough nodes to guarantee the periodic check fires.
	src := ""
	for i := 0; i < 200; i++ {
		src += "var aaa = 1;\n"
	}
	tree := mustParse(t, src)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewEngine(DefaultOptions()).Run(ctx, tree); err == nil {
		t.Fatal("expected error from canceled context")
	}
}

func TestEngineSourceOrder(t *testing.T) {
	src := "var z_last = two_mid;\nvar a_first = 1;\n"
	got := flaggedNames(runCheck(t, src, DefaultOptions()))
	assertNames(t, got, []string{"z_last", "two_mid", "a_first"})
}

func assertNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("flagged %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flagged %v, want %v", got, want)
		}
	}
}
