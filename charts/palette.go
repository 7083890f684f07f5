// Package charts implements pure chart-data builders: transformers
// from domain/analysis values to renderer-agnostic chart value
// objects, each validating its inputs at construction time.
package charts

import "regexp"

// ColorScheme selects a fixed color palette, cycling when a series
// count exceeds the palette length.
type ColorScheme string

const (
	SchemeDefault     ColorScheme = "DEFAULT"
	SchemeSecurity    ColorScheme = "SECURITY"
	SchemeMonochrome  ColorScheme = "MONOCHROME"
)

var palettes = map[ColorScheme][]string{
	SchemeDefault:    {"#4E79A7", "#F28E2B", "#E15759", "#76B7B2", "#59A14F", "#EDC948"},
	SchemeSecurity:   {"#2E7D32", "#F9A825", "#EF6C00", "#C62828", "#6A1B9A"},
	SchemeMonochrome: {"#1A1A1A", "#4D4D4D", "#808080", "#B3B3B3", "#D9D9D9"},
}

// reHexColor matches a 3 or 6-digit hex color
// construction-time color validation.
var reHexColor = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// IsValidHexColor reports whether s is a well-formed hex color.
func IsValidHexColor(s string) bool {
	return reHexColor.MatchString(s)
}

// ColorFor returns the i-th color in scheme, cycling through the
// palette when i exceeds its length.
func ColorFor(scheme ColorScheme, i int) string {
	p, ok := palettes[scheme]
	if !ok || len(p) == 0 {
		p = palettes[SchemeDefault]
	}
	return p[i%len(p)]
}
