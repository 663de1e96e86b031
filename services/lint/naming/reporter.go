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
	"fmt"

	"github.com/AleutianAI/AleutianLint/services/lint/ast"
)

// Violation is a single reported naming violation.
type Violation struct {
	// Name is the identifier exactly as written, underscores included.
	Name string `json:"name"`

	// Message is the human-readable diagnostic.
	Message string `json:"message"`

	// Role is the syntactic role the identifier was flagged in.
	Role string `json:"role"`

	// Location is the source position of the flagged occurrence.
	Location ast.Location `json:"location"`
}

// Reporter collects violations for one checked file and suppresses
// duplicate reports against the same occurrence.
//
// Description:
//
//	Several classification rows can fire for one node (a shorthand binding
//	with a default is both a binding and a default carrier). The reporter
//	keys reports on the occurrence's stable identity so each flagged node
//	yields exactly one violation.
//
// Thread Safety: Not safe for concurrent use. Each engine run owns its
// own reporter.
type Reporter struct {
	seen       map[uint32]struct{}
	violations []Violation
}

// NewReporter creates an empty reporter.
func NewReporter() *Reporter {
	return &Reporter{seen: make(map[uint32]struct{})}
}

// Report records a violation for the occurrence unless the occurrence was
// already reported. Returns true when a new violation was recorded.
func (r *Reporter) Report(occ Occurrence, role Role) bool {
	id := occ.Identity()
	if _, dup := r.seen[id]; dup {
		return false
	}
	r.seen[id] = struct{}{}

	name := occ.Name()
	r.violations = append(r.violations, Violation{
		Name:     name,
		Message:  fmt.Sprintf("Identifier '%s' is not in camel case.", name),
		Role:     role.String(),
		Location: occ.Location(),
	})
	return true
}

// Violations returns the recorded violations in source order.
func (r *Reporter) Violations() []Violation {
	return r.violations
}

// Count returns the number of recorded violations.
func (r *Reporter) Count() int {
	return len(r.violations)
}
