package pagination

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Config holds batch fetcher configuration
type Config struct {
	// MaxConcurrency is the maximum number of parallel page requests.
	MaxConcurrency int
	// PerPage is the page size requested from the API (Phrase allows up to 100).
	PerPage int
	// Timeout per page fetch
	Timeout time.Duration
}

// DefaultConfig returns safe default configuration for the Phrase API
func DefaultConfig() Config {
	return Config{
		MaxConcurrency: 4,
		PerPage:        100,
		Timeout:        15 * time.Second,
	}
}

// PageFetcher fetches a single page and reports the total page count.
type PageFetcher[T any] interface {
	FetchPage(ctx context.Context, page, perPage int) (items []T, totalPages int, err error)
}

// PageFunc adapts a function to PageFetcher.
type PageFunc[T any] func(ctx context.Context, page, perPage int) ([]T, int, error)

// FetchPage calls f.
func (f PageFunc[T]) FetchPage(ctx context.Context, page, perPage int) ([]T, int, error) {
	return f(ctx, page, perPage)
}

// BatchFetcher handles parallel fetching of multiple pages
type BatchFetcher[T any] struct {
	fetcher PageFetcher[T]
	config  Config
	logger  zerolog.Logger
}

// NewBatchFetcher creates a new batch fetcher
func NewBatchFetcher[T any](fetcher PageFetcher[T], config Config) *BatchFetcher[T] {
	defaults := DefaultConfig()
	if config.MaxConcurrency <= 0 {
		config.MaxConcurrency = defaults.MaxConcurrency
	}
	if config.PerPage <= 0 {
		config.PerPage = defaults.PerPage
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}

	return &BatchFetcher[T]{
		fetcher: fetcher,
		config:  config,
		logger:  zerolog.Nop(),
	}
}

// WithLogger sets the logger used for progress messages.
func (bf *BatchFetcher[T]) WithLogger(logger zerolog.Logger) *BatchFetcher[T] {
	bf.logger = logger
	return bf
}

// FetchAll fetches every page and returns the items in page order.
func (bf *BatchFetcher[T]) FetchAll(ctx context.Context) ([]T, error) {
	start := time.Now()

	first, totalPages, err := bf.fetchPage(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch first page: %w", err)
	}

	if totalPages <= 1 {
		bf.logger.Debug().
			Int("pages", 1).
			Dur("duration", time.Since(start)).
			Msg("Fetch complete (single page)")
		return first, nil
	}

	bf.logger.Info().
		Int("total_pages", totalPages).
		Int("concurrency", bf.config.MaxConcurrency).
		Msg("Starting parallel page fetch")

	// pages[i] holds page i+1; each goroutine writes only its own slot
	pages := make([][]T, totalPages)
	pages[0] = first

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bf.config.MaxConcurrency)
	for page := 2; page <= totalPages; page++ {
		page := page
		g.Go(func() error {
			items, _, err := bf.fetchPage(gctx, page)
			if err != nil {
				bf.logger.Warn().Err(err).Int("page", page).Msg("Page fetch failed")
				return fmt.Errorf("page %d: %w", page, err)
			}
			pages[page-1] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []T
	for _, items := range pages {
		all = append(all, items...)
	}

	bf.logger.Info().
		Int("pages", totalPages).
		Int("items", len(all)).
		Dur("duration", time.Since(start)).
		Msg("Fetch complete")

	return all, nil
}

func (bf *BatchFetcher[T]) fetchPage(ctx context.Context, page int) ([]T, int, error) {
	pageCtx, cancel := context.WithTimeout(ctx, bf.config.Timeout)
	defer cancel()
	return bf.fetcher.FetchPage(pageCtx, page, bf.config.PerPage)
}
