package plan

import (
	"strings"
	"unicode"

	"lexmap-generator/internal/registry"
)

// KeywordSymbol names the C constant holding keyword list slot of a lexer:
// g_PythonKeywords for slot 0, g_PythonKeywords2 for slot 1.
func KeywordSymbol(lexer registry.LexerID, slot int) string {
	name := "g_" + titleCase(string(lexer)) + "Keywords"
	if slot > 0 {
		name += string(rune('1' + slot))
	}

	return name
}

// titleCase uppercases the first letter of every letter run and lowercases
// the rest. Bytes that cannot appear in a C identifier become '_'.
func titleCase(s string) string {
	var b strings.Builder

	prevLetter := false

	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			b.WriteByte('_')

			prevLetter = false
		case unicode.IsLetter(r):
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}

			prevLetter = true
		case unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)

			prevLetter = false
		default:
			b.WriteByte('_')

			prevLetter = false
		}
	}

	return b.String()
}

