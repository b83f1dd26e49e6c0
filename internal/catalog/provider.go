package catalog

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultURL is the upstream location of the Linguist language catalog.
const DefaultURL = "https://raw.githubusercontent.com/github/linguist/master/lib/linguist/languages.yml"

// DefaultTimeout bounds a single catalog download.
const DefaultTimeout = 30 * time.Second

// Provider supplies a parsed catalog.
type Provider interface {
	Fetch(ctx context.Context) (*Catalog, error)
}

// RawSource supplies the catalog document as raw bytes.
type RawSource interface {
	FetchRaw(ctx context.Context) ([]byte, error)
}

// HTTPProvider downloads the catalog document.
type HTTPProvider struct {
	URL    string
	Client *http.Client
}

// NewHTTPProvider returns a provider for url with the given timeout.
// A non-positive timeout uses DefaultTimeout.
func NewHTTPProvider(url string, timeout time.Duration) *HTTPProvider {
	if url == "" {
		url = DefaultURL
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPProvider{URL: url, Client: &http.Client{Timeout: timeout}}
}

// FetchRaw downloads the catalog document.
func (p *HTTPProvider) FetchRaw(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}

	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading catalog: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading catalog body: %w", err)
	}

	return body, nil
}

// Fetch downloads and parses the catalog.
func (p *HTTPProvider) Fetch(ctx context.Context) (*Catalog, error) {
	raw, err := p.FetchRaw(ctx)
	if err != nil {
		return nil, err
	}

	return Parse(raw)
}

// FileProvider reads the catalog from a local file.
type FileProvider struct {
	Path string
}

// FetchRaw reads the catalog file.
func (p FileProvider) FetchRaw(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", p.Path, err)
	}

	return data, nil
}

// Fetch reads and parses the catalog file.
func (p FileProvider) Fetch(_ context.Context) (*Catalog, error) {
	return LoadFile(p.Path)
}

// CachedProvider fetches from Source and keeps a copy at CachePath. When
// the source fails, or returns a document that does not parse, the cached
// copy is used instead.
type CachedProvider struct {
	Source    RawSource
	CachePath string
	// Logger receives progress lines. Nil discards them.
	Logger *log.Logger
}

// Fetch implements Provider.
func (p *CachedProvider) Fetch(ctx context.Context) (*Catalog, error) {
	logger := p.logger()

	raw, err := p.Source.FetchRaw(ctx)
	if err == nil {
		cat, parseErr := Parse(raw)
		if parseErr == nil {
			logger.Printf("fetched %d catalog languages", cat.Len())

			if cacheErr := p.writeCache(raw); cacheErr != nil {
				logger.Printf("catalog cache not updated: %v", cacheErr)
			}

			return cat, nil
		}

		err = parseErr
	}

	logger.Printf("catalog fetch failed: %v", err)

	if p.CachePath == "" {
		return nil, fmt.Errorf("acquiring catalog: %w (no cache configured)", err)
	}

	cat, cacheErr := LoadFile(p.CachePath)
	if cacheErr != nil {
		return nil, fmt.Errorf("acquiring catalog: %w; cache fallback: %w", err, cacheErr)
	}

	logger.Printf("using cached catalog %s (%d languages)", p.CachePath, cat.Len())

	return cat, nil
}

func (p *CachedProvider) writeCache(raw []byte) error {
	if p.CachePath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(p.CachePath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(p.CachePath, raw, 0o644)
}

func (p *CachedProvider) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard, "", 0)
	}

	return p.Logger
}
