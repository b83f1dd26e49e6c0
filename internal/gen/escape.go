package gen

import (
	"strings"

	"lexmap-generator/internal/plan"
)

// filterSeparator separates labels and pattern lists in the filter string.
const filterSeparator = "\x00"

// EscapeKeywords prepares a keyword list for a C string literal.
// Keyword lists never carry backslashes, so only quotes are escaped.
func EscapeKeywords(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// EscapeFilter prepares arbitrary text for a C string literal.
// Backslashes are escaped before quotes.
func EscapeFilter(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)

	return strings.ReplaceAll(s, `"`, `\"`)
}

// cLiteralBody escapes s and renders NUL bytes as \0. A NUL followed by an
// octal digit closes and reopens the literal so the digit is not absorbed
// into the escape.
func cLiteralBody(s string) string {
	escaped := EscapeFilter(s)

	var b strings.Builder
	b.Grow(len(escaped) + 8)

	for i := 0; i < len(escaped); i++ {
		if escaped[i] != 0 {
			b.WriteByte(escaped[i])

			continue
		}

		b.WriteString(`\0`)

		if i+1 < len(escaped) && escaped[i+1] >= '0' && escaped[i+1] <= '7' {
			b.WriteString(`" "`)
		}
	}

	return b.String()
}

// FilterString joins filter groups into the NUL-separated dialog string.
func FilterString(groups []plan.FilterGroup) string {
	var b strings.Builder

	for _, g := range groups {
		b.WriteString(g.Label)
		b.WriteString(filterSeparator)
		b.WriteString(strings.Join(g.Patterns, ";"))
		b.WriteString(filterSeparator)
	}

	return b.String()
}

// commentSafe keeps text from terminating a C block comment.
func commentSafe(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}

// includeGuard derives the include guard macro from a header file name.
func includeGuard(headerName string) string {
	var b strings.Builder

	for _, r := range strings.ToUpper(headerName) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}

	return b.String()
}
