// Package catalog loads and merges the catalog list files into a normalized
// entry list.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mirrorpick/internal/domain"
	"mirrorpick/internal/eventbus"
)

// Source is one list resource to load
type Source struct {
	Name     string
	Location string // file path or http(s) URL

	// OwnedCategory marks an augmenting source: entries of this category
	// from the sources before it are dropped so the owner is authoritative.
	OwnedCategory domain.Category
}

// Fetcher retrieves the raw bytes of a source location
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// DefaultFetcher reads local files relative to BaseDir and fetches URLs over HTTP
type DefaultFetcher struct {
	BaseDir string
	Client  *http.Client
}

// NewDefaultFetcher creates a fetcher rooted at baseDir
func NewDefaultFetcher(baseDir string) *DefaultFetcher {
	return &DefaultFetcher{
		BaseDir: baseDir,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch implements Fetcher
func (f *DefaultFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return f.fetchURL(ctx, location)
	}

	path := location
	if !filepath.IsAbs(path) && f.BaseDir != "" {
		path = filepath.Join(f.BaseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (f *DefaultFetcher) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", url, err)
	}
	return data, nil
}

// Loader merges catalog sources
type Loader struct {
	fetcher Fetcher
	bus     eventbus.EventBus
}

// NewLoader creates a loader. bus may be nil.
func NewLoader(fetcher Fetcher, bus eventbus.EventBus) *Loader {
	if bus == nil {
		bus = eventbus.Null{}
	}
	return &Loader{fetcher: fetcher, bus: bus}
}

// Load fetches every source concurrently and merges them in order. Any
// failure aborts the whole load; no partial catalog is returned.
func (l *Loader) Load(ctx context.Context, sources ...Source) ([]domain.CatalogEntry, error) {
	entries, err := l.load(ctx, sources)
	if err != nil {
		log.Printf("Catalog load failed: %v", err)
		l.bus.Publish(eventbus.CatalogLoadFailedEvent{Err: err})
		return nil, err
	}

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name)
	}
	log.Printf("Catalog loaded: %d entries from %v", len(entries), names)
	l.bus.Publish(eventbus.CatalogLoadedEvent{Sources: names, Entries: len(entries)})
	return entries, nil
}

func (l *Loader) load(ctx context.Context, sources []Source) ([]domain.CatalogEntry, error) {
	if len(sources) == 0 {
		return []domain.CatalogEntry{}, nil
	}

	results := make([][]record, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			data, err := l.fetcher.Fetch(gctx, src.Location)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name, err)
			}
			records, err := decodeRecords(data)
			if err != nil {
				return fmt.Errorf("source %s: failed to parse list: %w", src.Name, err)
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return merge(sources, results), nil
}

func merge(sources []Source, results [][]record) []domain.CatalogEntry {
	var merged []domain.CatalogEntry
	for i, src := range sources {
		if src.OwnedCategory != "" {
			merged = dropCategory(merged, src.OwnedCategory)
		}
		for pos, rec := range results[i] {
			merged = append(merged, rec.entry(src.Name, pos))
		}
	}
	return dedupe(merged)
}

func dropCategory(entries []domain.CatalogEntry, category domain.Category) []domain.CatalogEntry {
	kept := entries[:0]
	for _, e := range entries {
		if e.Category != category {
			kept = append(kept, e)
		}
	}
	return kept
}

// dedupe keeps the first entry for each ID
func dedupe(entries []domain.CatalogEntry) []domain.CatalogEntry {
	seen := make(map[string]bool, len(entries))
	out := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			log.Printf("Catalog: dropping duplicate id %q (%s)", e.ID, e.Filename)
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
