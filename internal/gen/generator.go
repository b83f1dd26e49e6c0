package gen

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"lexmap-generator/internal/ident"
	"lexmap-generator/internal/plan"
	"lexmap-generator/internal/registry"
)

// ErrConfigCountMismatch is returned when the supplied LEXER_CONFIG_COUNT
// differs from the number of emitted lexer configs.
var ErrConfigCountMismatch = errors.New("lexer_config_count_mismatch")

// ErrKeywordSymbolCollision is returned when two keyword sets would define
// the same C constant.
var ErrKeywordSymbolCollision = errors.New("keyword_symbol_collision")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// HeaderName is the file name of the declarations artifact.
	HeaderName string
	// SourceName is the file name of the definitions artifact.
	SourceName string
	// Includes are the system headers included by the header artifact.
	Includes []string
	// LexerConfigCount is emitted verbatim as LEXER_CONFIG_COUNT.
	LexerConfigCount int
	// GeneratorName appears in the banner of both artifacts.
	GeneratorName string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		HeaderName:       "lexer_mappings_generated.h",
		SourceName:       "lexer_mappings_generated.c",
		Includes:         []string{"windows.h"},
		LexerConfigCount: 66,
		GeneratorName:    "lexmap-generator",
	}
}

// Generator renders C artifacts from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated artifact.
type GeneratedFile struct {
	// Filename is the base name of the file, e.g. "lexer_mappings_generated.h".
	Filename string
	// Content is the rendered C text.
	Content []byte
}

// Generate renders the header and source artifacts, in that order.
func (g *Generator) Generate(p *plan.ResolvedPlan) ([]GeneratedFile, error) {
	if p == nil {
		return nil, errors.New("nil plan")
	}

	if g.config.LexerConfigCount != len(p.Configs) {
		return nil, fmt.Errorf("%w: LEXER_CONFIG_COUNT is %d but %d configs are emitted",
			ErrConfigCountMismatch, g.config.LexerConfigCount, len(p.Configs))
	}

	err := checkKeywordSymbols(p.Keywords)
	if err != nil {
		return nil, err
	}

	header, err := render(headerTemplate, g.headerData(p))
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", g.config.HeaderName, err)
	}

	source, err := render(sourceTemplate, g.sourceData(p))
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", g.config.SourceName, err)
	}

	return []GeneratedFile{
		{Filename: g.config.HeaderName, Content: header},
		{Filename: g.config.SourceName, Content: source},
	}, nil
}

func checkKeywordSymbols(sets []plan.KeywordSet) error {
	seen := make(map[string]registry.LexerID, len(sets))

	for _, ks := range sets {
		sym := plan.KeywordSymbol(ks.Lexer, 0)
		if prev, ok := seen[sym]; ok {
			return fmt.Errorf("%w: %s is defined for both %q and %q",
				ErrKeywordSymbolCollision, sym, prev, ks.Lexer)
		}

		seen[sym] = ks.Lexer
	}

	return nil
}

func render(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer

	err := tmpl.Execute(&buf, data)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// headerData holds everything the header template needs.
type headerData struct {
	Generator        string
	Guard            string
	Includes         []string
	Enum             []enumLine
	Count            ident.Identifier
	ExtensionCount   int
	LexerConfigCount int
}

type enumLine struct {
	Ident   ident.Identifier
	Comment string
}

func (g *Generator) headerData(p *plan.ResolvedPlan) headerData {
	data := headerData{
		Generator:        g.config.GeneratorName,
		Guard:            includeGuard(g.config.HeaderName),
		Includes:         g.config.Includes,
		Count:            ident.Count,
		ExtensionCount:   len(p.Extensions),
		LexerConfigCount: g.config.LexerConfigCount,
	}

	for _, e := range p.Enum {
		data.Enum = append(data.Enum, enumLine{Ident: e.Ident, Comment: commentSafe(e.Name)})
	}

	return data
}

// sourceData holds everything the source template needs. All strings are
// already escaped literal bodies.
type sourceData struct {
	Generator  string
	HeaderName string
	Keywords   []keywordConst
	Extensions []extensionLine
	Configs    []configLine
	Filters    string
	Names      []nameCase
}

type keywordConst struct {
	Lexer   string
	Kind    string
	Symbol  string
	Literal string
}

type extensionLine struct {
	Extension string
	Ident     ident.Identifier
}

type configLine struct {
	Ident     ident.Identifier
	Lexer     string
	Keywords1 string
	Keywords2 string
}

type nameCase struct {
	Ident ident.Identifier
	Name  string
}

var slotKinds = [registry.MaxWordLists]string{"primary", "secondary"}

func (g *Generator) sourceData(p *plan.ResolvedPlan) sourceData {
	data := sourceData{
		Generator:  g.config.GeneratorName,
		HeaderName: EscapeFilter(g.config.HeaderName),
		Filters:    cLiteralBody(FilterString(p.Filters)),
	}

	for _, ks := range p.Keywords {
		for i, list := range ks.Lists {
			if i >= registry.MaxWordLists || list == "" {
				continue
			}

			data.Keywords = append(data.Keywords, keywordConst{
				Lexer:   commentSafe(string(ks.Lexer)),
				Kind:    slotKinds[i],
				Symbol:  plan.KeywordSymbol(ks.Lexer, i),
				Literal: EscapeKeywords(list),
			})
		}
	}

	for _, m := range p.Extensions {
		data.Extensions = append(data.Extensions, extensionLine{
			Extension: EscapeFilter(m.Extension),
			Ident:     m.Ident,
		})
	}

	for _, c := range p.Configs {
		data.Configs = append(data.Configs, configLine{
			Ident:     c.Ident,
			Lexer:     EscapeFilter(string(c.Lexer)),
			Keywords1: keywordRef(c, 0),
			Keywords2: keywordRef(c, 1),
		})
	}

	for _, e := range p.Enum {
		data.Names = append(data.Names, nameCase{Ident: e.Ident, Name: EscapeFilter(e.Name)})
	}

	return data
}

// keywordRef is the C expression a config uses for one keyword slot.
func keywordRef(c plan.LexerConfig, slot int) string {
	list, ok := c.Keywords.Slot(slot)
	if !ok || list == "" {
		return "NULL"
	}

	return plan.KeywordSymbol(c.Lexer, slot)
}
