package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a display name for fuzzy comparison:
// lower case, with spaces, underscores, hyphens and dots removed.
// Symbols that carry meaning in language names ("+", "#", "/") are kept,
// so "C++" and "C" stay distinct.
//
// Examples:
//   - "Objective-C" -> "objectivec"
//   - "Standard ML" -> "standardml"
//   - "reStructuredText" -> "restructuredtext"
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
