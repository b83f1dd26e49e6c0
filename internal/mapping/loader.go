package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"lexmap-generator/internal/catalog"
)

// LoadFile loads and parses a YAML overrides file from the given path.
func LoadFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into Rules.
func Parse(data []byte) (*Rules, error) {
	var r Rules

	err := yaml.Unmarshal(data, &r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse overrides YAML: %w", err)
	}

	applyDefaults(&r)

	return &r, nil
}

// applyDefaults fills in the version and normalizes extensions.
func applyDefaults(r *Rules) {
	if r.Version == "" {
		r.Version = SchemaVersion
	}

	for i := range r.Languages {
		r.Languages[i].Extensions = normalizeAll(r.Languages[i].Extensions)
	}

	for i := range r.Extensions {
		r.Extensions[i].Extensions = normalizeAll(r.Extensions[i].Extensions)
	}
}

func normalizeAll(exts StringOrArray) StringOrArray {
	out := make(StringOrArray, 0, len(exts))

	for _, ext := range exts {
		if n := catalog.NormalizeExtension(ext); n != "" {
			out = append(out, n)
		}
	}

	return out
}

// Marshal serializes Rules to YAML.
func Marshal(r *Rules) ([]byte, error) {
	return yaml.Marshal(r)
}

// WriteFile writes Rules to the given path.
func WriteFile(r *Rules, path string) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal overrides: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write overrides file %s: %w", path, err)
	}

	return nil
}
