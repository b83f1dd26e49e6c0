package mapping

import (
	"lexmap-generator/internal/registry"
)

// SchemaVersion is the only overrides file version understood.
const SchemaVersion = "1"

// Rules is the root of an overrides definition.
type Rules struct {
	// Version of the overrides schema.
	Version string `yaml:"version,omitempty"`

	// Languages are added to the language table unconditionally.
	Languages []LanguageRule `yaml:"languages,omitempty"`

	// Extensions force extensions onto a language.
	Extensions []ExtensionRule `yaml:"extensions,omitempty"`
}

// LanguageRule adds a language the catalog does not provide.
type LanguageRule struct {
	// Name is the display name, e.g. "Windows Registry".
	Name string `yaml:"name"`
	// Lexer highlights the language.
	Lexer registry.LexerID `yaml:"lexer"`
	// Extensions are assigned to the language.
	Extensions StringOrArray `yaml:"extensions"`
}

// ExtensionRule forces one or more extensions onto a language.
type ExtensionRule struct {
	// Extensions to reassign. YAML key "extension" accepts a string or a list.
	Extensions StringOrArray `yaml:"extension"`
	// Language is the display name that receives the extensions.
	Language string `yaml:"language"`
}

// DefaultRules returns the built-in overrides: Windows Registry, which the
// catalog lacks, and ".ts"/".tsx" pinned to TypeScript (the catalog maps
// ".ts" to XML).
func DefaultRules() *Rules {
	return &Rules{
		Version: SchemaVersion,
		Languages: []LanguageRule{
			{Name: "Windows Registry", Lexer: "registry", Extensions: StringOrArray{".reg"}},
		},
		Extensions: []ExtensionRule{
			{Extensions: StringOrArray{".ts", ".tsx"}, Language: "TypeScript"},
		},
	}
}

// Merge returns a new Rules holding base's rules followed by extra's.
// Either argument may be nil.
func Merge(base, extra *Rules) *Rules {
	out := &Rules{Version: SchemaVersion}

	for _, r := range []*Rules{base, extra} {
		if r == nil {
			continue
		}

		out.Languages = append(out.Languages, r.Languages...)
		out.Extensions = append(out.Extensions, r.Extensions...)
	}

	return out
}
