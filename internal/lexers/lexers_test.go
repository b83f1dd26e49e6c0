package lexers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexmap-generator/internal/registry"
)

func TestEnumerate(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"LexPython.cxx", "LexCPP.cxx", "LexRust.cxx", "README.md", "Lex.cxx", "LexerModule.h"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "LexDir.cxx"), 0o755))

	ids, err := Enumerate(dir)
	require.NoError(t, err)
	assert.Equal(t, []registry.LexerID{"cpp", "python", "rust"}, ids)
}

func TestEnumerate_MissingDir(t *testing.T) {
	_, err := Enumerate(filepath.Join(t.TempDir(), "lexilla", "lexers"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirNotFound))
}

func TestEnumerateFS_Deduplicates(t *testing.T) {
	fsys := fstest.MapFS{
		"lexers/LexBash.cxx": {},
		"lexers/Lexbash.cxx": {},
		"lexers/LexSQL.cxx":  {},
	}

	ids, err := EnumerateFS(fsys, "lexers", "lexers")
	require.NoError(t, err)
	assert.Equal(t, []registry.LexerID{"bash", "sql"}, ids)
}

func TestLexerFromFilename(t *testing.T) {
	tests := []struct {
		name string
		want registry.LexerID
		ok   bool
	}{
		{"LexPython.cxx", "python", true},
		{"lexilla/lexers/LexHTML.cxx", "html", true},
		{"LexPython.cpp", "", false},
		{"Python.cxx", "", false},
		{"Lex.cxx", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LexerFromFilename(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckAvailability(t *testing.T) {
	reg := registry.NewRegistry(
		registry.Entry{Name: "Python", Lexer: "python"},
		registry.Entry{Name: "HTML", Lexer: "hypertext"},
		registry.Entry{Name: "C", Lexer: "cpp"},
		registry.Entry{Name: "C++", Lexer: "cpp"},
	)

	diags := CheckAvailability(reg, []registry.LexerID{"cpp", "python", "html"})
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "lexer_unavailable", diags.Warnings[0].Code)
	assert.Equal(t, "hypertext", diags.Warnings[0].Subject)
	assert.False(t, diags.HasErrors())
}
