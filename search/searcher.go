package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/compsearch/ai"
	"github.com/poiesic/compsearch/core"
	"github.com/poiesic/compsearch/findata"
	"github.com/poiesic/compsearch/index"
)

const (
	// defaultTopK is the number of nearest candidates requested from the
	// index per query.
	defaultTopK = 15

	// defaultDuplicateThreshold is the field agreement ratio at or above
	// which a record counts as a near-duplicate of an accepted one.
	defaultDuplicateThreshold = 0.8

	// defaultMissingThreshold is the missing-attribute ratio above which
	// a record is dropped as too sparse. A record exactly at the
	// threshold is retained.
	defaultMissingThreshold = 0.8
)

// Searcher assembles search results: it embeds the query, asks the
// similarity index for candidates, enriches each candidate with live
// fundamentals, then deduplicates and quality-filters the list.
type Searcher struct {
	embedder ai.Embedder
	index    index.Index
	provider findata.Provider
	pool     *ants.Pool

	topK               int
	duplicateThreshold float64
	missingThreshold   float64
	logger             *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent enrichment.
// Default is the top-k candidate cap, so one worker per candidate.
func WithPoolSize(size int) Option {
	return func(s *Searcher) error {
		if size < 1 {
			size = 1
		}
		if s.pool != nil {
			s.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		s.pool = pool
		return nil
	}
}

// WithTopK sets the number of candidates requested from the index.
func WithTopK(topK int) Option {
	return func(s *Searcher) error {
		if topK < 1 {
			return index.ErrInvalidTopK
		}
		s.topK = topK
		return nil
	}
}

// WithDuplicateThreshold overrides the near-duplicate agreement threshold.
func WithDuplicateThreshold(threshold float64) Option {
	return func(s *Searcher) error {
		s.duplicateThreshold = threshold
		return nil
	}
}

// WithMissingThreshold overrides the sparse-record missing-ratio threshold.
func WithMissingThreshold(threshold float64) Option {
	return func(s *Searcher) error {
		s.missingThreshold = threshold
		return nil
	}
}

// NewSearcher creates a new searcher over the injected adapters. The
// adapters are constructed once at startup and shared; the searcher adds
// no state of its own beyond the enrichment worker pool.
func NewSearcher(embedder ai.Embedder, idx index.Index, provider findata.Provider, opts ...Option) (*Searcher, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	s := &Searcher{
		embedder:           embedder,
		index:              idx,
		provider:           provider,
		topK:               defaultTopK,
		duplicateThreshold: defaultDuplicateThreshold,
		missingThreshold:   defaultMissingThreshold,
		logger:             slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			s.Release()
			return nil, err
		}
	}

	if s.pool == nil {
		pool, err := ants.NewPool(s.topK)
		if err != nil {
			return nil, err
		}
		s.pool = pool
	}

	return s, nil
}

// Search finds companies similar to a free-text description, optionally
// restricted to a set of countries and sectors. Results are ordered by
// index relevance with near-duplicates and overly sparse records removed.
func (s *Searcher) Search(ctx context.Context, description string, countries, sectors []string) ([]*core.CompanyRecord, error) {
	return s.SearchWithMonitor(ctx, description, countries, sectors, nil)
}

// SearchWithMonitor is Search with stage callbacks.
// The monitor receives callbacks at each stage of the pipeline.
func (s *Searcher) SearchWithMonitor(ctx context.Context, description string, countries, sectors []string, monitor SearchMonitor) ([]*core.CompanyRecord, error) {
	if err := core.ValidateDescription(description); err != nil {
		return nil, err
	}

	filter := index.Filter{Countries: countries, Sectors: sectors}
	return s.assemble(ctx, description, filter, monitor)
}

// SearchByTicker finds companies similar to the one identified by ticker,
// using its business summary as the query text. No categorical filters
// are applied, and the query ticker itself is not excluded: if it comes
// back as its own nearest neighbor it flows through the same dedup and
// quality filtering as any other candidate.
func (s *Searcher) SearchByTicker(ctx context.Context, ticker string) ([]*core.CompanyRecord, error) {
	return s.SearchByTickerWithMonitor(ctx, ticker, nil)
}

// SearchByTickerWithMonitor is SearchByTicker with stage callbacks.
func (s *Searcher) SearchByTickerWithMonitor(ctx context.Context, ticker string, monitor SearchMonitor) ([]*core.CompanyRecord, error) {
	if err := core.ValidateTicker(ticker); err != nil {
		return nil, err
	}

	fund, err := s.provider.Lookup(ctx, ticker)
	if err != nil {
		if errors.Is(err, findata.ErrNotFound) {
			return nil, fmt.Errorf("%w: ticker %s", core.ErrNotFound, ticker)
		}
		s.logger.Error("error resolving ticker summary", "ticker", ticker, "err", err)
		return nil, fmt.Errorf("%w: resolving %s: %v", core.ErrUpstreamUnavailable, ticker, err)
	}
	if fund.CompanyDescription == nil || *fund.CompanyDescription == "" {
		return nil, fmt.Errorf("%w: no business summary for ticker %s", core.ErrNotFound, ticker)
	}

	return s.assemble(ctx, *fund.CompanyDescription, index.Filter{}, monitor)
}

// assemble runs the shared pipeline: embed, query, enrich, dedupe, filter.
func (s *Searcher) assemble(ctx context.Context, query string, filter index.Filter, monitor SearchMonitor) ([]*core.CompanyRecord, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(query)

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "err", err)
		return nil, fmt.Errorf("%w: embedding query: %v", core.ErrUpstreamUnavailable, err)
	}
	monitor.AfterEmbedding(vector)

	matches, err := s.index.Query(ctx, vector, filter, s.topK)
	if err != nil {
		s.logger.Error("error querying similarity index", "err", err)
		return nil, fmt.Errorf("%w: index query: %v", core.ErrUpstreamUnavailable, err)
	}
	monitor.AfterIndexQuery(matches)

	records := s.enrich(ctx, matches, monitor)
	monitor.AfterEnrichment(records)

	records = dedupe(records, s.duplicateThreshold, monitor)
	records = dropSparse(records, s.missingThreshold, monitor)

	monitor.Finish(records)
	return records, nil
}

// enrich fetches fundamentals for every candidate concurrently. Results
// land in a rank-indexed slice, so response order follows the index's
// relevance order no matter which lookups finish first. A failed lookup
// degrades that one record to "no fundamentals" instead of failing the
// batch.
func (s *Searcher) enrich(ctx context.Context, matches []index.Match, monitor SearchMonitor) []*core.CompanyRecord {
	records := make([]*core.CompanyRecord, len(matches))

	var wg sync.WaitGroup
	for i, match := range matches {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			records[i] = s.enrichOne(ctx, match, monitor)
		}
		if err := s.pool.Submit(task); err != nil {
			// Pool unavailable: run inline rather than dropping the candidate.
			task()
		}
	}
	wg.Wait()

	return records
}

func (s *Searcher) enrichOne(ctx context.Context, match index.Match, monitor SearchMonitor) *core.CompanyRecord {
	record := &core.CompanyRecord{Company: match.Company}

	fund, err := s.provider.Lookup(ctx, match.Company.Ticker)
	if err != nil {
		s.logger.Warn("financial lookup failed, keeping record without fundamentals",
			"ticker", match.Company.Ticker, "err", err)
		monitor.EnrichmentFailed(match.Company.Ticker, err)
		record.EnrichmentError = true
		return record
	}

	record.Fundamentals = *fund
	return record
}

// Release releases the enrichment worker pool.
// The searcher should not be used after calling Release.
func (s *Searcher) Release() {
	if s.pool != nil {
		s.pool.Release()
	}
}
