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
	"fmt"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/AleutianAI/AleutianLint/services/lint/ast"
)

var engineTracer = otel.Tracer("aleutian.lint.naming")

const (
	// maxTraversalDepth bounds the explicit traversal stack. Trees deeper
	// than this are pathological (generated or adversarial input).
	maxTraversalDepth = 512

	// ctxCheckInterval is how many nodes are visited between context
	// cancellation checks.
	ctxCheckInterval = 100
)

// Engine runs the camelcase check over parsed trees.
//
// Description:
//
//	The engine walks every node of a tree with an explicit stack, delivers
//	each identifier occurrence to the classifier, and records violations
//	through a per-run reporter. Options are normalized once at
//	construction; a run never mutates engine state.
//
// Thread Safety: Safe for concurrent use. Each Run owns its own stack and
// reporter.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the given options, normalized.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts.Normalize()}
}

// Options returns the normalized options the engine runs with.
func (e *Engine) Options() Options {
	return e.opts
}

// Run checks one parsed tree and returns its violations in source order.
//
// Description:
//
//	Walks the full tree iteratively. Children are pushed in reverse so the
//	traversal visits nodes in source order, which keeps violation output
//	stable without a sort. The tree must stay open for the duration of
//	the run.
//
// Inputs:
//
//	ctx  - Context for cancellation. Checked periodically during the walk.
//	tree - The parsed tree to check. Must not be closed.
//
// Outputs:
//
//	[]Violation - Violations in source order. Nil when the file is clean.
//	error       - Non-nil only on cancellation or a nil tree.
//
// Thread Safety: This method is safe for concurrent use.
func (e *Engine) Run(ctx context.Context, tree *ast.ParseTree) ([]Violation, error) {
	ctx, span := engineTracer.Start(ctx, "naming.engine.run",
		trace.WithAttributes(
			attribute.String("file.path", tree.FilePath),
			attribute.String("properties.mode", string(e.opts.Properties)),
			attribute.String("properties.style", string(e.opts.PropertiesStyle)),
			attribute.Bool("ignore.destructuring", e.opts.IgnoreDestructuring),
		))
	defer span.End()

	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("naming check on closed or empty tree: %s", tree.FilePath)
	}

	reporter := NewReporter()

	type stackEntry struct {
		node  *sitter.Node
		depth int
	}
	stack := []stackEntry{{node: root, depth: 0}}
	visited := 0

	for len(stack) > 0 {
		entry := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visited++
		if visited%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("naming check canceled at node %d: %w", visited, err)
			}
		}

		node := entry.node
		if ast.IdentifierNodeTypes[node.Type()] {
			occ := NewOccurrence(node, tree)
			role, verdict := Classify(occ, e.opts)
			if verdict == VerdictViolation {
				reporter.Report(occ, role)
			}
		}

		if entry.depth >= maxTraversalDepth {
			slog.Warn("naming check truncated subtree at depth limit",
				slog.String("file", tree.FilePath),
				slog.Int("depth", entry.depth))
			continue
		}

		for i := int(node.ChildCount()) - 1; i >= 0; i-- {
			child := node.Child(i)
			if child == nil {
				continue
			}
			stack = append(stack, stackEntry{node: child, depth: entry.depth + 1})
		}
	}

	span.SetAttributes(
		attribute.Int("nodes.visited", visited),
		attribute.Int("violations.count", reporter.Count()),
	)

	return reporter.Violations(), nil
}
