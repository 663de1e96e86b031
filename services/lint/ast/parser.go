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

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// JavaScriptParser parses JavaScript source into a syntax tree for the
// naming checker.
//
// Description:
//
//	JavaScriptParser wraps tree-sitter parsing of JavaScript source files.
//	It produces a ParseTree handle the naming engine traverses; the parser
//	itself performs no checking.
//
// Thread Safety:
//
//	JavaScriptParser is safe for concurrent use. Each Parse call creates
//	its own tree-sitter parser instance.
//
// Example:
//
//	parser := NewJavaScriptParser()
//	tree, err := parser.Parse(ctx, content, "app.js")
//	if err != nil {
//	    return fmt.Errorf("parse: %w", err)
//	}
//	defer tree.Close()
type JavaScriptParser struct {
	options JavaScriptParserOptions
}

// JavaScriptParserOptions configures JavaScriptParser behavior.
type JavaScriptParserOptions struct {
	// MaxFileSize is the maximum file size in bytes to parse.
	// Files larger than this return ErrFileTooLarge.
	// Default: 10MB
	MaxFileSize int
}

// DefaultJavaScriptParserOptions returns the default options.
func DefaultJavaScriptParserOptions() JavaScriptParserOptions {
	return JavaScriptParserOptions{
		MaxFileSize: 10 * 1024 * 1024, // 10MB
	}
}

// JavaScriptParserOption is a functional option for configuring JavaScriptParser.
type JavaScriptParserOption func(*JavaScriptParserOptions)

// WithMaxFileSize sets the maximum file size for parsing.
func WithMaxFileSize(size int) JavaScriptParserOption {
	return func(o *JavaScriptParserOptions) {
		o.MaxFileSize = size
	}
}

// NewJavaScriptParser creates a new JavaScriptParser with the given options.
func NewJavaScriptParser(opts ...JavaScriptParserOption) *JavaScriptParser {
	options := DefaultJavaScriptParserOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &JavaScriptParser{options: options}
}

// Language returns the language name for this parser.
func (p *JavaScriptParser) Language() string {
	return "javascript"
}

// Extensions returns the file extensions this parser handles.
func (p *JavaScriptParser) Extensions() []string {
	return []string{".js", ".mjs", ".cjs", ".jsx"}
}

// ParseTree is an owned handle to a parsed source file.
//
// Description:
//
//	ParseTree couples the tree-sitter tree with the source bytes it was
//	parsed from. Node text extraction requires the original bytes, so the
//	two always travel together. Callers must Close the tree when done to
//	release the underlying C allocation.
//
// Thread Safety: Read-only after construction; safe for concurrent reads.
type ParseTree struct {
	FilePath      string
	Language      string
	Hash          string
	ParsedAtMilli int64
	Content       []byte

	tree *sitter.Tree
}

// Root returns the program root node.
func (t *ParseTree) Root() *sitter.Node {
	if t.tree == nil {
		return nil
	}
	return t.tree.RootNode()
}

// Close releases the underlying tree-sitter tree.
func (t *ParseTree) Close() {
	if t.tree != nil {
		t.tree.Close()
		t.tree = nil
	}
}

// Text returns the source text of a node.
func (t *ParseTree) Text(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return string(t.Content[node.StartByte():node.EndByte()])
}

// Parse parses JavaScript source into a ParseTree.
//
// Description:
//
//	Validates size and encoding, computes a content hash, and parses the
//	source with tree-sitter. The returned tree owns a C allocation; callers
//	must Close it.
//
// Inputs:
//
//	ctx      - Context for cancellation. Checked before and after parsing.
//	content  - Raw JavaScript source bytes. Must be valid UTF-8.
//	filePath - Path to the file, carried through to violation locations.
//
// Outputs:
//
//	*ParseTree - The parsed tree. Never nil on success.
//	error      - Non-nil only for complete failures (invalid UTF-8, too large).
//
// Thread Safety: This method is safe for concurrent use.
func (p *JavaScriptParser) Parse(ctx context.Context, content []byte, filePath string) (*ParseTree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("javascript parse canceled before start: %w", err)
	}

	if len(content) > p.options.MaxFileSize {
		return nil, ErrFileTooLarge
	}

	if !utf8.Valid(content) {
		return nil, ErrInvalidContent
	}

	hash := sha256.Sum256(content)

	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		tree.Close()
		return nil, fmt.Errorf("javascript parse canceled after tree-sitter: %w", err)
	}

	return &ParseTree{
		FilePath:      filePath,
		Language:      "javascript",
		Hash:          hex.EncodeToString(hash[:]),
		ParsedAtMilli: time.Now().UnixMilli(),
		Content:       content,
		tree:          tree,
	}, nil
}
