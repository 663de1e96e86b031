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

// PropertiesMode controls whether property-like identifiers (object keys,
// member-access properties) are checked at all.
type PropertiesMode string

const (
	// PropertiesAlways checks property-like identifiers. This is the default.
	PropertiesAlways PropertiesMode = "always"

	// PropertiesNever exempts property-like identifiers from checking.
	PropertiesNever PropertiesMode = "never"
)

// PropertyStyle selects the casing required of property-like identifiers.
type PropertyStyle string

const (
	// PropertyStyleAll applies the baseline plain-camel check. This is the
	// default.
	PropertyStyleAll PropertyStyle = "all"

	// PropertyStyleLower requires a lowercase (or '$') leading character.
	PropertyStyleLower PropertyStyle = "lower"

	// PropertyStyleUpper requires an uppercase (or '$') leading character.
	PropertyStyleUpper PropertyStyle = "upper"
)

// Options holds the run-scoped configuration for the camelcase check.
//
// Exactly three options are recognized. Unknown PropertiesMode values
// degrade to PropertiesAlways rather than failing; the checker stays
// permissive on malformed configuration.
type Options struct {
	// Properties controls whether property-like identifiers are checked.
	Properties PropertiesMode

	// PropertiesStyle selects the casing required of property-like
	// identifiers when they are checked.
	PropertiesStyle PropertyStyle

	// IgnoreDestructuring exempts identifiers introduced purely by
	// destructuring (bound under their original name) from checking.
	IgnoreDestructuring bool
}

// DefaultOptions returns the default camelcase options.
func DefaultOptions() Options {
	return Options{
		Properties:      PropertiesAlways,
		PropertiesStyle: PropertyStyleAll,
	}
}

// Normalize returns a copy with fallbacks applied: any Properties value
// other than "never" becomes "always", and an empty PropertiesStyle
// becomes "all".
func (o Options) Normalize() Options {
	if o.Properties != PropertiesNever {
		o.Properties = PropertiesAlways
	}
	if o.PropertiesStyle == "" {
		o.PropertiesStyle = PropertyStyleAll
	}
	return o
}
