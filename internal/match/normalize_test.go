package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Python", "python"},
		{"Objective-C", "objectivec"},
		{"Objective-C++", "objectivec++"},
		{"Standard ML", "standardml"},
		{"Windows_Registry", "windowsregistry"},
		{"C#", "c#"},
		{"PL/SQL", "pl/sql"},
		{"Vim.Script", "vimscript"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}
