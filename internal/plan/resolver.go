package plan

import (
	"fmt"

	"lexmap-generator/internal/common"
	"lexmap-generator/internal/ident"
	"lexmap-generator/internal/reconcile"
	"lexmap-generator/internal/registry"
)

// Config holds configuration for the resolution process.
type Config struct {
	// Filters drives the file-dialog filter groups.
	Filters FilterConfig
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig() Config {
	return Config{Filters: DefaultFilterConfig()}
}

// Resolver turns final tables into a ResolvedPlan.
type Resolver struct {
	sanitizer *ident.Sanitizer
	keywords  *registry.KeywordCatalog
	config    Config
}

// NewResolver creates a new Resolver.
func NewResolver(sanitizer *ident.Sanitizer, keywords *registry.KeywordCatalog, config Config) *Resolver {
	if sanitizer == nil {
		sanitizer = ident.Default()
	}

	return &Resolver{sanitizer: sanitizer, keywords: keywords, config: config}
}

// Resolve builds the plan. On identifier collisions it returns the partial
// plan together with an error; the plan's diagnostics name every
// colliding display name.
func (r *Resolver) Resolve(tables *reconcile.Tables) (*ResolvedPlan, error) {
	p := &ResolvedPlan{}
	if tables == nil {
		tables = reconcile.NewTables()
	}

	names := common.SortedKeys(tables.Languages)
	idents := r.assignIdents(p, names)

	if p.Diagnostics.HasErrors() {
		return p, fmt.Errorf("resolving identifiers: %w", p.Diagnostics.Error())
	}

	for _, b := range r.sanitizer.Base() {
		p.Enum = append(p.Enum, EnumEntry{Ident: b.Ident, Name: b.Name, Base: true})
	}

	for _, name := range names {
		if r.sanitizer.IsBase(name) {
			continue
		}

		p.Enum = append(p.Enum, EnumEntry{Ident: idents[name], Name: name})
	}

	for _, ext := range common.SortedKeys(tables.Extensions) {
		lang := tables.Extensions[ext]

		id, ok := idents[lang]
		if !ok {
			p.Diagnostics.AddWarning("dangling_extension",
				fmt.Sprintf("extension points at %q, which is not in the language table; dropped", lang), lang, ext)

			continue
		}

		p.Extensions = append(p.Extensions, ExtensionMapping{Extension: ext, Language: lang, Ident: id})
	}

	r.resolveConfigs(p, names, tables, idents)

	if p.Diagnostics.HasErrors() {
		return p, fmt.Errorf("resolving keyword symbols: %w", p.Diagnostics.Error())
	}

	p.Filters = buildFilters(r.config.Filters, names)

	return p, nil
}

// assignIdents sanitizes every name and records collisions as errors.
func (r *Resolver) assignIdents(p *ResolvedPlan, names []string) map[string]ident.Identifier {
	idents := make(map[string]ident.Identifier, len(names))
	owner := map[ident.Identifier]string{}

	for _, b := range r.sanitizer.Base() {
		owner[b.Ident] = b.Name
	}

	for _, name := range names {
		id := r.sanitizer.Sanitize(name)
		idents[name] = id

		if id == ident.Count {
			p.Diagnostics.AddError("identifier_collision",
				fmt.Sprintf("identifier %s is reserved for the enum count", id), name, string(id))

			continue
		}

		if prev, ok := owner[id]; ok && prev != name {
			p.Diagnostics.AddError("identifier_collision",
				fmt.Sprintf("identifier %s is already used by %q", id, prev), name, string(id))

			continue
		}

		owner[id] = name
	}

	return idents
}

// resolveConfigs fills Configs and Keywords. Two lexers whose keyword
// constants would share a C name are reported as errors.
func (r *Resolver) resolveConfigs(
	p *ResolvedPlan,
	names []string,
	tables *reconcile.Tables,
	idents map[string]ident.Identifier,
) {
	used := map[registry.LexerID]registry.WordLists{}
	missing := map[registry.LexerID]struct{}{}

	for _, name := range names {
		lexer := tables.Languages[name]

		lists, ok := r.keywords.Lookup(lexer)
		if ok {
			used[lexer] = lists
		} else if _, noted := missing[lexer]; !noted {
			missing[lexer] = struct{}{}
			p.Diagnostics.AddInfo("missing_keywords",
				"lexer has no curated keywords; configs get NULL keyword slots", string(lexer), "")
		}

		p.Configs = append(p.Configs, LexerConfig{
			Language: name,
			Ident:    idents[name],
			Lexer:    lexer,
			Keywords: lists,
		})
	}

	symbols := map[string]registry.LexerID{}

	for _, lexer := range common.SortedKeys(used) {
		sym := KeywordSymbol(lexer, 0)
		if prev, ok := symbols[sym]; ok {
			p.Diagnostics.AddError("keyword_symbol_collision",
				fmt.Sprintf("keyword constant %s is already used by lexer %q", sym, prev), string(lexer), sym)

			continue
		}

		symbols[sym] = lexer
		p.Keywords = append(p.Keywords, KeywordSet{Lexer: lexer, Lists: used[lexer]})
	}
}
