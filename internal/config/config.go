package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"lexmap-generator/internal/catalog"
	"lexmap-generator/internal/gen"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LEXMAP_"

// Config holds every setting of a generator run.
type Config struct {
	CatalogURL   string
	CatalogCache string
	// CatalogFile, when set, replaces the download with a local file.
	CatalogFile string

	LexersDir string
	OutputDir string

	HeaderName       string
	SourceName       string
	Includes         []string
	LexerConfigCount int

	// OverridesFile holds extra override rules merged after the built-in ones.
	OverridesFile string
	// WriteOverrides, when set, receives the effective override rules as YAML.
	WriteOverrides string

	FetchTimeout time.Duration
	DryRun       bool
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	g := gen.DefaultGeneratorConfig()

	return Config{
		CatalogURL:       catalog.DefaultURL,
		CatalogCache:     "linguist_languages.yml",
		LexersDir:        "lexilla/lexers",
		OutputDir:        "src",
		HeaderName:       g.HeaderName,
		SourceName:       g.SourceName,
		Includes:         g.Includes,
		LexerConfigCount: g.LexerConfigCount,
		FetchTimeout:     catalog.DefaultTimeout,
	}
}

// Load reads .env (if present), then LEXMAP_* variables, then args.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()

	err := applyEnv(&cfg)
	if err != nil {
		return nil, err
	}

	includes := strings.Join(cfg.Includes, ",")

	fs := flag.NewFlagSet("lexmap-generator", flag.ContinueOnError)
	fs.StringVar(&cfg.CatalogURL, "catalog-url", cfg.CatalogURL, "language catalog URL")
	fs.StringVar(&cfg.CatalogCache, "catalog-cache", cfg.CatalogCache, "catalog cache file (empty disables caching)")
	fs.StringVar(&cfg.CatalogFile, "catalog-file", cfg.CatalogFile, "read the catalog from this file instead of downloading it")
	fs.StringVar(&cfg.LexersDir, "lexers-dir", cfg.LexersDir, "directory holding Lex*.cxx sources")
	fs.StringVar(&cfg.OutputDir, "output-dir", cfg.OutputDir, "directory receiving the generated files")
	fs.StringVar(&cfg.HeaderName, "header", cfg.HeaderName, "generated header file name")
	fs.StringVar(&cfg.SourceName, "source", cfg.SourceName, "generated source file name")
	fs.StringVar(&includes, "includes", includes, "comma-separated system headers for the generated header")
	fs.IntVar(&cfg.LexerConfigCount, "lexer-config-count", cfg.LexerConfigCount, "value of LEXER_CONFIG_COUNT")
	fs.StringVar(&cfg.OverridesFile, "overrides", cfg.OverridesFile, "YAML file with extra override rules")
	fs.StringVar(&cfg.WriteOverrides, "write-overrides", cfg.WriteOverrides, "write the effective override rules to this file")
	fs.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "catalog download timeout")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "render without writing")

	err = fs.Parse(args)
	if err != nil {
		return nil, err
	}

	cfg.Includes = splitList(includes)

	return &cfg, nil
}

// Validate reports settings that cannot produce a run.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output dir is empty"))
	}

	if strings.TrimSpace(c.LexersDir) == "" {
		errs = append(errs, errors.New("lexers dir is empty"))
	}

	if c.LexerConfigCount <= 0 {
		errs = append(errs, fmt.Errorf("lexer config count must be positive, got %d", c.LexerConfigCount))
	}

	if c.CatalogFile == "" && strings.TrimSpace(c.CatalogURL) == "" {
		errs = append(errs, errors.New("either a catalog URL or a catalog file is required"))
	}

	if c.HeaderName == "" || c.SourceName == "" {
		errs = append(errs, errors.New("header and source names are required"))
	}

	return errors.Join(errs...)
}

// GeneratorConfig returns the emitter settings.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	g := gen.DefaultGeneratorConfig()
	g.HeaderName = c.HeaderName
	g.SourceName = c.SourceName
	g.Includes = c.Includes
	g.LexerConfigCount = c.LexerConfigCount

	return g
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"CATALOG_URL":     &cfg.CatalogURL,
		"CATALOG_CACHE":   &cfg.CatalogCache,
		"CATALOG_FILE":    &cfg.CatalogFile,
		"LEXERS_DIR":      &cfg.LexersDir,
		"OUTPUT_DIR":      &cfg.OutputDir,
		"HEADER":          &cfg.HeaderName,
		"SOURCE":          &cfg.SourceName,
		"OVERRIDES":       &cfg.OverridesFile,
		"WRITE_OVERRIDES": &cfg.WriteOverrides,
	}

	for key, dst := range strs {
		if v, ok := lookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := lookupEnv("INCLUDES"); ok {
		cfg.Includes = splitList(v)
	}

	if v, ok := lookupEnv("LEXER_CONFIG_COUNT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sLEXER_CONFIG_COUNT: %w", EnvPrefix, err)
		}

		cfg.LexerConfigCount = n
	}

	if v, ok := lookupEnv("FETCH_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sFETCH_TIMEOUT: %w", EnvPrefix, err)
		}

		cfg.FetchTimeout = d
	}

	if v, ok := lookupEnv("DRY_RUN"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDRY_RUN: %w", EnvPrefix, err)
		}

		cfg.DryRun = b
	}

	return nil
}

// lookupEnv returns a trimmed LEXMAP_ variable; blank values count as unset.
func lookupEnv(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(EnvPrefix + key))

	return v, v != ""
}

func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
