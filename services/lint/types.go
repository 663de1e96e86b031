// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package lint

import (
	"github.com/AleutianAI/AleutianLint/services/lint/naming"
)

// CheckRequest is the request body for POST /v1/lint/check.
type CheckRequest struct {
	// Content is the JavaScript source to check.
	Content string `json:"content" binding:"required"`

	// FilePath labels violation locations. Defaults to "<input>".
	FilePath string `json:"file_path"`

	// Options overrides the server's configured rule options when present.
	Options *RuleOptionsDTO `json:"options"`
}

// CheckPathRequest is the request body for POST /v1/lint/check_path.
type CheckPathRequest struct {
	// Path is a file or directory on the server host.
	Path string `json:"path" binding:"required"`

	// Options overrides the server's configured rule options when present.
	Options *RuleOptionsDTO `json:"options"`
}

// RuleOptionsDTO carries rule options over the wire.
type RuleOptionsDTO struct {
	Properties          string `json:"properties"`
	PropertiesStyle     string `json:"properties_style"`
	IgnoreDestructuring bool   `json:"ignore_destructuring"`
}

// ToOptions converts wire options into engine options.
func (d *RuleOptionsDTO) ToOptions() naming.Options {
	return naming.Options{
		Properties:          naming.PropertiesMode(d.Properties),
		PropertiesStyle:     naming.PropertyStyle(d.PropertiesStyle),
		IgnoreDestructuring: d.IgnoreDestructuring,
	}.Normalize()
}

// FileReport is the check result for one source file.
type FileReport struct {
	// FilePath is the checked file.
	FilePath string `json:"file_path"`

	// Hash is the SHA-256 of the checked content.
	Hash string `json:"hash,omitempty"`

	// Violations are the naming violations found, in source order.
	Violations []naming.Violation `json:"violations"`

	// Error is set when the file could not be parsed; Violations is empty
	// in that case.
	Error string `json:"error,omitempty"`
}

// Report is the aggregate result of a check run.
type Report struct {
	// RunID uniquely identifies this run in logs and traces.
	RunID string `json:"run_id"`

	// Files are per-file results, ordered by file path.
	Files []FileReport `json:"files"`

	// FilesChecked is the number of files parsed and checked.
	FilesChecked int `json:"files_checked"`

	// ViolationCount is the total violations across all files.
	ViolationCount int `json:"violation_count"`

	// DurationMillis is the wall-clock duration of the run.
	DurationMillis int64 `json:"duration_millis"`
}

// RuleDescriptor describes a rule exposed by GET /v1/lint/rules.
type RuleDescriptor struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Options     []string `json:"options"`
}

// ErrorResponse is the standard error envelope for all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
