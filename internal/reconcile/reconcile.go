package reconcile

import (
	"fmt"

	"lexmap-generator/internal/catalog"
	"lexmap-generator/internal/diagnostic"
	"lexmap-generator/internal/match"
	"lexmap-generator/internal/registry"
)

// maxSuggestions caps the close-name hints attached to a registry gap.
const maxSuggestions = 3

// Tables are the two association tables every later stage works on.
// Both are keyed so that each key occurs once.
type Tables struct {
	// Extensions maps a normalized extension to a display name.
	Extensions map[string]string
	// Languages maps a display name to its lexer.
	Languages map[string]registry.LexerID
}

// NewTables returns empty tables.
func NewTables() *Tables {
	return &Tables{
		Extensions: map[string]string{},
		Languages:  map[string]registry.LexerID{},
	}
}

// Clone returns a deep copy of t.
func (t *Tables) Clone() *Tables {
	out := &Tables{
		Extensions: make(map[string]string, len(t.Extensions)),
		Languages:  make(map[string]registry.LexerID, len(t.Languages)),
	}

	for k, v := range t.Extensions {
		out.Extensions[k] = v
	}

	for k, v := range t.Languages {
		out.Languages[k] = v
	}

	return out
}

// Reconcile builds the tables from the catalog and the registry.
//
// A language enters the tables when its display name is both in the
// catalog and in the registry. Its extensions are added in catalog order;
// when two languages claim the same extension the later one wins and a
// duplicate_extension warning is recorded.
//
// Gaps on either side are not errors. Catalog names without a registry
// entry are summarized in one info; each registry name missing from the
// catalog gets its own info with close catalog names as suggestions.
func Reconcile(cat *catalog.Catalog, reg *registry.Registry) (*Tables, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	tables := NewTables()
	seen := make(map[string]struct{}, cat.Len())
	skipped := 0

	if cat != nil {
		for _, lang := range cat.Languages {
			seen[lang.Name] = struct{}{}

			lexer, ok := reg.Lookup(lang.Name)
			if !ok {
				skipped++

				continue
			}

			tables.Languages[lang.Name] = lexer

			for _, ext := range lang.Extensions {
				ext = catalog.NormalizeExtension(ext)
				if ext == "" {
					continue
				}

				if prev, ok := tables.Extensions[ext]; ok && prev != lang.Name {
					diags.AddWarning("duplicate_extension",
						fmt.Sprintf("extension claimed by %q and %q; keeping %q", prev, lang.Name, lang.Name),
						lang.Name, ext)
				}

				tables.Extensions[ext] = lang.Name
			}
		}
	}

	if skipped > 0 {
		diags.AddInfo("catalog_language_unmapped",
			fmt.Sprintf("%d catalog languages have no registry entry and were skipped", skipped), "", "")
	}

	names := cat.Names()

	for _, name := range reg.Names() {
		if _, ok := seen[name]; ok {
			continue
		}

		diags.AddInfoWithSuggestions("registry_name_not_in_catalog",
			"registry name not present in the catalog", name,
			match.Suggest(name, names, maxSuggestions))
	}

	return tables, diags
}
