package plan

import (
	"lexmap-generator/internal/diagnostic"
	"lexmap-generator/internal/ident"
	"lexmap-generator/internal/registry"
)

// ResolvedPlan is the final output of resolution.
// It contains everything needed for code generation, already ordered.
type ResolvedPlan struct {
	// Enum lists the LanguageType enumerators without the count sentinel.
	Enum []EnumEntry
	// Extensions is sorted by extension.
	Extensions []ExtensionMapping
	// Configs is sorted by display name.
	Configs []LexerConfig
	// Keywords holds one entry per lexer that has curated keywords and is
	// used by at least one config, sorted by lexer.
	Keywords []KeywordSet
	// Filters are the file-dialog filter groups in output order.
	Filters []FilterGroup
	// Diagnostics contains all findings from resolution.
	Diagnostics diagnostic.Diagnostics
}

// EnumEntry is one enumerator of LanguageType.
type EnumEntry struct {
	Ident ident.Identifier
	// Name is the display string: curated for base languages, the catalog
	// display name otherwise.
	Name string
	Base bool
}

// ExtensionMapping maps one extension to a language.
type ExtensionMapping struct {
	Extension string
	Language  string
	Ident     ident.Identifier
}

// LexerConfig ties a language to its lexer and keyword lists.
type LexerConfig struct {
	Language string
	Ident    ident.Identifier
	Lexer    registry.LexerID
	// Keywords has zero, one or two lists; missing slots are absent.
	Keywords registry.WordLists
}

// KeywordSet is the curated keyword lists of one lexer.
type KeywordSet struct {
	Lexer registry.LexerID
	Lists registry.WordLists
}

// FilterGroup is one "label, patterns" pair of the file-dialog filter.
type FilterGroup struct {
	Label    string
	Patterns []string
}

// EnumWithSentinel returns the enum identifiers followed by ident.Count.
func (p *ResolvedPlan) EnumWithSentinel() []ident.Identifier {
	ids := make([]ident.Identifier, 0, len(p.Enum)+1)
	for _, e := range p.Enum {
		ids = append(ids, e.Ident)
	}

	return append(ids, ident.Count)
}
