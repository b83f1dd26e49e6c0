package lexers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"lexmap-generator/internal/common"
	"lexmap-generator/internal/diagnostic"
	"lexmap-generator/internal/registry"
)

// ErrDirNotFound is returned when the lexer source directory does not exist.
var ErrDirNotFound = errors.New("lexer source directory not found")

const (
	filePrefix = "Lex"
	fileSuffix = ".cxx"
)

// Enumerate returns the lexers whose source files sit in dir, named by the
// Lexilla convention: LexPython.cxx yields "python". The result is sorted
// and free of duplicates.
func Enumerate(dir string) ([]registry.LexerID, error) {
	return EnumerateFS(os.DirFS(dir), ".", dir)
}

// EnumerateFS is Enumerate over an fs.FS. label names the directory in
// error messages.
func EnumerateFS(fsys fs.FS, dir, label string) ([]registry.LexerID, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDirNotFound, label)
		}

		return nil, fmt.Errorf("reading lexer directory %s: %w", label, err)
	}

	var ids []registry.LexerID

	for _, e := range entries {
		if e.IsDir() {
			continue
		}

		if id, ok := LexerFromFilename(e.Name()); ok {
			ids = append(ids, id)
		}
	}

	return common.Dedupe(ids), nil
}

// LexerFromFilename maps a Lexilla source file name to its lexer.
func LexerFromFilename(name string) (registry.LexerID, bool) {
	name = filepath.Base(name)
	if !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
		return "", false
	}

	stem := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
	if stem == "" {
		return "", false
	}

	return registry.LexerID(strings.ToLower(stem)), true
}

// CheckAvailability reports every registry lexer that is not among the
// available ones. The check is advisory; reconciliation does not depend
// on it.
func CheckAvailability(reg *registry.Registry, available []registry.LexerID) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	have := make(map[registry.LexerID]struct{}, len(available))
	for _, id := range available {
		have[id] = struct{}{}
	}

	for _, id := range reg.Lexers() {
		if _, ok := have[id]; ok {
			continue
		}

		diags.AddWarning("lexer_unavailable",
			fmt.Sprintf("no Lex*.cxx source found for lexer %q", id), string(id), "")
	}

	return diags
}
