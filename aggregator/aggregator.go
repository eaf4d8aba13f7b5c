// Package aggregator composes the full feed pipeline: fetch, normalize,
// filter, score, deduplicate, rank, paginate, with short-TTL memoization.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"novai/cache"
	"novai/config"
	"novai/deduplication"
	"novai/ranking"
	"novai/relevance"
	"novai/sources"
	"novai/types"
)

// ErrAllSourcesFailed indicates that no source produced a document. Partial
// failures never surface here; callers get a degraded page instead.
var ErrAllSourcesFailed = errors.New("all feed sources failed")

// Order selects the ranking criterion for a request.
type Order int

const (
	// OrderScore ranks by importance score (top-stories style).
	OrderScore Order = iota
	// OrderRecency ranks by publish time (live/war-room style).
	OrderRecency
)

// Request describes one aggregation pass.
type Request struct {
	// Sources overrides the registry lookup. When nil, the registry entries
	// for Category are used ("" or "All" selects everything).
	Sources  []sources.Source
	Category string

	Page  int
	Limit int
	Order Order

	// ApplyRelevance runs the keyword relevance filter before scoring.
	ApplyRelevance bool

	// MaxAge drops items older than this. Zero keeps everything.
	MaxAge time.Duration

	// SimilarityThreshold forwards to the deduplicator (0 disables the
	// near-duplicate check; exact-title dedup always runs).
	SimilarityThreshold float64

	// CacheKey and CacheTTL memoize the computed list (pre-pagination).
	// Empty key or zero TTL disables caching.
	CacheKey string
	CacheTTL time.Duration

	// Extra items merged in after fetch, before filtering. Used by routes
	// that blend a second source kind (e.g. Hacker News search hits).
	Extra []*types.Article
}

// Fetcher is the upstream dependency: fetch all sources concurrently,
// isolating per-source failures.
type Fetcher interface {
	FetchAll(ctx context.Context, srcs []sources.Source, maxItems int) ([]*types.Article, []string)
}

// Service wires the pipeline stages together. One instance serves all
// concurrent requests; the stages themselves are stateless and the cache is
// concurrency-safe.
type Service struct {
	fetcher Fetcher
	filter  *relevance.Filter
	scorer  *relevance.Scorer
	store   cache.Store
	clock   func() time.Time
}

// NewService builds a Service. Nil filter/scorer/store get defaults.
func NewService(fetcher Fetcher, filter *relevance.Filter, scorer *relevance.Scorer, store cache.Store) *Service {
	if filter == nil {
		filter = relevance.NewFilter(relevance.DefaultFilterConfig())
	}
	if scorer == nil {
		scorer = relevance.NewScorer(relevance.DefaultWeights(), nil)
	}
	if store == nil {
		store = cache.NewMemory()
	}
	return &Service{fetcher: fetcher, filter: filter, scorer: scorer, store: store, clock: time.Now}
}

// Aggregate runs the pipeline for one request and returns the page window.
// Degraded results (some sources down) come back with Errors populated and a
// nil error; the error return fires only on total failure.
func (s *Service) Aggregate(ctx context.Context, req Request) (types.FeedPage, error) {
	if req.CacheKey != "" && req.CacheTTL > 0 {
		if entry, ok := s.store.Get(ctx, req.CacheKey); ok {
			page := ranking.Paginate(entry.Articles, req.Page, req.Limit)
			page.Errors = entry.Errors
			return page, nil
		}
	}

	srcs := req.Sources
	if srcs == nil {
		srcs = sources.ByCategory(req.Category)
	}

	articles, fetchErrors := s.fetcher.FetchAll(ctx, srcs, config.MaxItemsPerSource)
	articles = append(articles, req.Extra...)

	if len(articles) == 0 && len(srcs) > 0 && len(fetchErrors) == len(srcs) {
		page := types.FeedPage{Articles: []*types.Article{}, Page: req.Page, Errors: fetchErrors}
		return page, fmt.Errorf("%w: %d source(s)", ErrAllSourcesFailed, len(srcs))
	}

	if req.MaxAge > 0 {
		cutoff := s.clock().Add(-req.MaxAge)
		fresh := articles[:0]
		for _, a := range articles {
			if !a.PublishedAt.Before(cutoff) {
				fresh = append(fresh, a)
			}
		}
		articles = fresh
	}

	if req.ApplyRelevance {
		admitted := articles[:0]
		for _, a := range articles {
			if s.filter.Admit(a) {
				admitted = append(admitted, a)
			}
		}
		articles = admitted
	}

	for _, a := range articles {
		s.scorer.Score(a)
	}

	// Rank before deduplicating so the greedy pass keeps the best copy of a
	// duplicated story and the per-source cap keeps each source's strongest
	// items.
	switch req.Order {
	case OrderRecency:
		ranking.ByRecency(articles)
	default:
		ranking.ByScore(articles)
	}

	articles = deduplication.Apply(articles, deduplication.Options{
		SimilarityThreshold: req.SimilarityThreshold,
	})

	if req.CacheKey != "" && req.CacheTTL > 0 {
		s.store.Set(ctx, req.CacheKey, &cache.Entry{Articles: articles, Errors: fetchErrors}, req.CacheTTL)
	}

	if len(fetchErrors) > 0 {
		log.Printf("Aggregated %d articles from %d sources (%d failed)", len(articles), len(srcs), len(fetchErrors))
	}

	page := ranking.Paginate(articles, req.Page, req.Limit)
	page.Errors = fetchErrors
	return page, nil
}
