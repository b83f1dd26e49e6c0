package catalog

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Language is one entry of the external catalog.
type Language struct {
	// Name is the free-text display name, e.g. "C++".
	Name string
	// Extensions are normalized: leading dot, lower case, no duplicates.
	Extensions []string
	// Filenames are literal file names. Kept for completeness; the
	// generator does not consume them.
	Filenames []string
}

// Catalog is the parsed catalog in declaration order.
type Catalog struct {
	Languages []Language
}

// Len returns the number of languages in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}

	return len(c.Languages)
}

// Names returns the display names in declaration order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}

	names := make([]string, 0, len(c.Languages))
	for _, l := range c.Languages {
		names = append(names, l.Name)
	}

	return names
}

// languageYAML is the subset of a Linguist entry the generator reads.
type languageYAML struct {
	Extensions []string `yaml:"extensions"`
	Filenames  []string `yaml:"filenames"`
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a Linguist-style YAML document: a mapping from display name
// to a record with optional extensions and filenames.
func Parse(data []byte) (*Catalog, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errors.New("catalog document is empty")
		}

		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("catalog root must be a mapping, got %s", kindName(root.Kind))
	}

	cat := &Catalog{Languages: make([]Language, 0, len(root.Content)/2)}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		var entry languageYAML
		if err := valNode.Decode(&entry); err != nil {
			return nil, fmt.Errorf("catalog entry %q (line %d): %w", keyNode.Value, keyNode.Line, err)
		}

		cat.Languages = append(cat.Languages, Language{
			Name:       keyNode.Value,
			Extensions: normalizeExtensions(entry.Extensions),
			Filenames:  slices.Clone(entry.Filenames),
		})
	}

	return cat, nil
}

// NormalizeExtension returns ext with a leading dot, lower-cased.
// Blank input yields "".
func NormalizeExtension(ext string) string {
	ext = strings.TrimSpace(ext)
	if ext == "" {
		return ""
	}

	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return strings.ToLower(ext)
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))

	for _, ext := range exts {
		n := NormalizeExtension(ext)
		if n == "" || slices.Contains(out, n) {
			continue
		}

		out = append(out, n)
	}

	return out
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty"
	}
}
