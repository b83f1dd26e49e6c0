// Package main provides the CLI entrypoint for lexmap-generator.
//
// lexmap-generator is a build-time tool that:
//   - Downloads the Linguist language catalog (with a local cache fallback)
//   - Reconciles it against the built-in lexer registry
//   - Applies manual override rules
//   - Emits the C lookup tables consumed by the editor
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	"lexmap-generator/internal/catalog"
	"lexmap-generator/internal/config"
	"lexmap-generator/internal/mapping"
	"lexmap-generator/internal/pipeline"
)

func main() {
	logger := log.New(os.Stderr, "lexmap-generator: ", log.LstdFlags)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		logger.Fatal(err)
	}

	err = cfg.Validate()
	if err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, cfg, logger)
	if err != nil {
		var stageErr *pipeline.StageError
		if errors.As(err, &stageErr) {
			logger.Printf("failed at %s", stageErr.Stage)
		}

		stop()
		logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	rules, err := loadRules(cfg)
	if err != nil {
		return err
	}

	if cfg.WriteOverrides != "" {
		err = mapping.WriteFile(rules, cfg.WriteOverrides)
		if err != nil {
			return fmt.Errorf("writing overrides: %w", err)
		}

		logger.Printf("wrote effective overrides to %s", cfg.WriteOverrides)
	}

	genCfg := cfg.GeneratorConfig()

	res, err := pipeline.Run(ctx, pipeline.Options{
		Provider:  newProvider(cfg, logger),
		LexersDir: cfg.LexersDir,
		Rules:     rules,
		Gen:       &genCfg,
		OutputDir: cfg.OutputDir,
		DryRun:    cfg.DryRun,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	logger.Printf("done: %d languages, %d extensions, %d errors, %d warnings",
		len(res.Plan.Configs), len(res.Plan.Extensions),
		len(res.Diagnostics.Errors), len(res.Diagnostics.Warnings))

	return nil
}

func newProvider(cfg *config.Config, logger *log.Logger) catalog.Provider {
	if cfg.CatalogFile != "" {
		return catalog.FileProvider{Path: cfg.CatalogFile}
	}

	return &catalog.CachedProvider{
		Source:    catalog.NewHTTPProvider(cfg.CatalogURL, cfg.FetchTimeout),
		CachePath: cfg.CatalogCache,
		Logger:    logger,
	}
}

// loadRules returns the built-in overrides followed by the ones from the
// configured file.
func loadRules(cfg *config.Config) (*mapping.Rules, error) {
	if cfg.OverridesFile == "" {
		return mapping.DefaultRules(), nil
	}

	extra, err := mapping.LoadFile(cfg.OverridesFile)
	if err != nil {
		return nil, fmt.Errorf("loading overrides: %w", err)
	}

	return mapping.Merge(mapping.DefaultRules(), extra), nil
}
