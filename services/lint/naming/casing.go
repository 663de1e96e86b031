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
	"regexp"
	"strings"
)

// Casing predicates for the camelcase check. All functions here are pure
// functions of their string argument; none touch shared state.
//
// Callers are expected to pass names already stripped with TrimSeparators.
// Leading and trailing underscores denote visibility convention, not casing
// intent, and must never by themselves trigger a violation.

const separator = "_"

var (
	upperCamelPattern = regexp.MustCompile(`^[A-Z$][A-Za-z0-9$]*`)
	lowerCamelPattern = regexp.MustCompile(`^[a-z$][A-Za-z0-9$]*`)
)

// TrimSeparators strips leading and trailing runs of the separator
// character from a name.
func TrimSeparators(name string) string {
	return strings.Trim(name, separator)
}

// IsPlainCamel reports whether a name passes the baseline camel-case check:
// an all-uppercase constant-style name, or a name containing no separator
// at all.
func IsPlainCamel(name string) bool {
	return name == strings.ToUpper(name) || !strings.Contains(name, separator)
}

// IsUpperCamel reports whether a name is acceptable upper-camel: an
// all-uppercase constant-style name, or a name whose leading character is
// an uppercase letter or '$'. The leading character is decisive.
func IsUpperCamel(name string) bool {
	return name == strings.ToUpper(name) || upperCamelPattern.MatchString(name)
}

// IsLowerCamel reports whether a name is acceptable lower-camel: an
// all-uppercase constant-style name, or a name whose leading character is
// a lowercase letter or '$'.
func IsLowerCamel(name string) bool {
	return name == strings.ToUpper(name) || lowerCamelPattern.MatchString(name)
}

// IsValidPropertyName reports whether a property name satisfies the
// configured property style. PropertyStyleAll applies the baseline
// plain-camel check.
func IsValidPropertyName(name string, style PropertyStyle) bool {
	switch style {
	case PropertyStyleLower:
		return IsLowerCamel(name)
	case PropertyStyleUpper:
		return IsUpperCamel(name)
	default:
		return IsPlainCamel(name)
	}
}
