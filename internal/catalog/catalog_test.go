package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linguistSample = `
# Comment header as in languages.yml
---
Rust:
  type: programming
  color: "#dea584"
  extensions:
  - ".rs"
  - ".rs.in"
  language_id: 327
Python:
  type: programming
  extensions:
  - ".py"
  - ".PYW"
  - "pyi"
  - ".py"
  filenames:
  - SConstruct
Text:
`

func TestParse_KeepsDeclarationOrder(t *testing.T) {
	cat, err := Parse([]byte(linguistSample))
	require.NoError(t, err)

	assert.Equal(t, []string{"Rust", "Python", "Text"}, cat.Names())
	assert.Equal(t, 3, cat.Len())
}

func TestParse_NormalizesExtensions(t *testing.T) {
	cat, err := Parse([]byte(linguistSample))
	require.NoError(t, err)

	py := cat.Languages[1]
	assert.Equal(t, "Python", py.Name)
	assert.Equal(t, []string{".py", ".pyw", ".pyi"}, py.Extensions)
	assert.Equal(t, []string{"SConstruct"}, py.Filenames)

	assert.Equal(t, []string{".rs", ".rs.in"}, cat.Languages[0].Extensions)
	assert.Empty(t, cat.Languages[2].Extensions, "null entries have no extensions")
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty", ""},
		{"sequence root", "- a\n- b\n"},
		{"scalar entry", "Python: yes\n"},
		{"bad extensions", "Python:\n  extensions: {a: b}\n"},
		{"invalid yaml", "Python: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{".py", ".py"},
		{"py", ".py"},
		{".PY", ".py"},
		{"  .Rs ", ".rs"},
		{"", ""},
		{"   ", ""},
		{".d.ts", ".d.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExtension(tt.in))
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "languages.yml")
	require.NoError(t, os.WriteFile(path, []byte(linguistSample), 0o644))

	cat, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
