package pipeline

import (
	"context"
	"errors"
	"io"
	"log"

	"lexmap-generator/internal/catalog"
	"lexmap-generator/internal/diagnostic"
	"lexmap-generator/internal/gen"
	"lexmap-generator/internal/ident"
	"lexmap-generator/internal/lexers"
	"lexmap-generator/internal/mapping"
	"lexmap-generator/internal/plan"
	"lexmap-generator/internal/reconcile"
	"lexmap-generator/internal/registry"
)

// Options configures a single run. Nil fields fall back to the built-in
// defaults of the package they come from.
type Options struct {
	Provider catalog.Provider
	// LexersDir holds the Lex*.cxx sources. Empty skips the availability check.
	LexersDir string
	Registry  *registry.Registry
	Keywords  *registry.KeywordCatalog
	Rules     *mapping.Rules
	Sanitizer *ident.Sanitizer
	Plan      *plan.Config
	Gen       *gen.GeneratorConfig
	// OutputDir receives the artifacts.
	OutputDir string
	// DryRun renders the artifacts without writing them.
	DryRun bool
	Logger *log.Logger
}

// Result is the outcome of a run.
type Result struct {
	Plan        *plan.ResolvedPlan
	Files       []gen.GeneratedFile
	Diagnostics diagnostic.Diagnostics
	// Written is true when the artifacts replaced the ones in OutputDir.
	Written bool
}

// Run executes every stage. On a fatal failure it returns the partial
// result together with a *StageError; nothing is written in that case.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Provider == nil {
		return nil, stageErr(StageAcquire, errors.New("no catalog provider"))
	}

	opts = withDefaults(opts)
	logger := opts.Logger
	res := &Result{}

	logger.Printf("acquiring language catalog")

	cat, err := opts.Provider.Fetch(ctx)
	if err != nil {
		return res, stageErr(StageAcquire, err)
	}

	logger.Printf("catalog has %d languages", cat.Len())

	if opts.LexersDir != "" {
		available, err := lexers.Enumerate(opts.LexersDir)
		if err != nil {
			return res, stageErr(StageEnumerate, err)
		}

		logger.Printf("found %d lexer sources in %s", len(available), opts.LexersDir)
		res.Diagnostics.Merge(lexers.CheckAvailability(opts.Registry, available))
	}

	tables, diags := reconcile.Reconcile(cat, opts.Registry)
	res.Diagnostics.Merge(diags)

	logger.Printf("reconciled %d languages and %d extensions", len(tables.Languages), len(tables.Extensions))

	ruleDiags := mapping.Validate(opts.Rules)
	res.Diagnostics.Merge(*ruleDiags)

	if ruleDiags.HasErrors() {
		logDiagnostics(logger, res.Diagnostics)

		return res, stageErr(StageOverride, ruleDiags.Error())
	}

	res.Diagnostics.Merge(mapping.Apply(opts.Rules, tables))

	p, err := plan.NewResolver(opts.Sanitizer, opts.Keywords, *opts.Plan).Resolve(tables)
	res.Plan = p
	res.Diagnostics.Merge(p.Diagnostics)

	if err != nil {
		logDiagnostics(logger, res.Diagnostics)

		return res, stageErr(StageResolve, err)
	}

	logger.Printf("resolved %d enum entries, %d extensions, %d configs over %d keyword lexers",
		len(p.Enum), len(p.Extensions), len(p.Configs), len(p.Keywords))

	files, err := gen.NewGenerator(*opts.Gen).Generate(p)
	if err != nil {
		logDiagnostics(logger, res.Diagnostics)

		return res, stageErr(StageEmit, err)
	}

	res.Files = files

	logDiagnostics(logger, res.Diagnostics)

	if opts.DryRun {
		logger.Printf("dry run: %d files rendered, nothing written", len(files))

		return res, nil
	}

	err = gen.WriteFiles(files, opts.OutputDir)
	if err != nil {
		return res, stageErr(StageWrite, err)
	}

	res.Written = true

	for _, f := range files {
		logger.Printf("wrote %s (%d bytes)", f.Filename, len(f.Content))
	}

	return res, nil
}

func withDefaults(opts Options) Options {
	if opts.Registry == nil {
		opts.Registry = registry.DefaultRegistry()
	}

	if opts.Keywords == nil {
		opts.Keywords = registry.DefaultKeywords()
	}

	if opts.Rules == nil {
		opts.Rules = mapping.DefaultRules()
	}

	if opts.Sanitizer == nil {
		opts.Sanitizer = ident.Default()
	}

	if opts.Plan == nil {
		cfg := plan.DefaultConfig()
		opts.Plan = &cfg
	}

	if opts.Gen == nil {
		cfg := gen.DefaultGeneratorConfig()
		opts.Gen = &cfg
	}

	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	return opts
}

// logDiagnostics writes one line per diagnostic, most severe first.
func logDiagnostics(logger *log.Logger, d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		logger.Printf("%s: %s", diag.Severity, diag)
	}
}
