package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lexmap-generator/internal/plan"
)

func TestEscapeKeywords(t *testing.T) {
	assert.Equal(t, `say \"hi\" now`, EscapeKeywords(`say "hi" now`))
	assert.Equal(t, `a\b`, EscapeKeywords(`a\b`), "backslashes are left alone")
}

func TestEscapeFilter(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`plain`, `plain`},
		{`a"b`, `a\"b`},
		{`a\b`, `a\\b`},
		{`\"`, `\\\"`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeFilter(tt.in), tt.in)
	}
}

func TestFilterString(t *testing.T) {
	s := FilterString([]plan.FilterGroup{
		{Label: "All Files", Patterns: []string{"*.*"}},
		{Label: "Programming Files", Patterns: []string{"*.c", "*.h"}},
	})

	assert.Equal(t, "All Files\x00*.*\x00Programming Files\x00*.c;*.h\x00", s)
	assert.Equal(t, `All Files\0*.*\0Programming Files\0*.c;*.h\0`, cLiteralBody(s))
}

func TestCLiteralBody_OctalDigitAfterNul(t *testing.T) {
	assert.Equal(t, `a\0" "1b\0`, cLiteralBody("a\x001b\x00"))
	assert.Equal(t, `x\0\"q\"\0`, cLiteralBody("x\x00\"q\"\x00"))
}

func TestIncludeGuard(t *testing.T) {
	assert.Equal(t, "LEXER_MAPPINGS_GENERATED_H", includeGuard("lexer_mappings_generated.h"))
	assert.Equal(t, "MY_TABLES_H", includeGuard("my-tables.h"))
}

func TestCommentSafe(t *testing.T) {
	assert.Equal(t, "a * / b", commentSafe("a */ b"))
}
