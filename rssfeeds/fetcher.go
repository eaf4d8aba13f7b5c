package rssfeeds

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"sync"
	"time"

	"novai/config"
	"novai/sources"
	"novai/types"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves and parses RSS/Atom documents for registry sources.
// A single http.Client with a bounded timeout is shared across fetches.
type Fetcher struct {
	client *http.Client
	clock  func() time.Time
}

// NewFetcher constructs a Fetcher. A nil client gets the default timeout;
// a nil clock uses time.Now.
func NewFetcher(client *http.Client, clock func() time.Time) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: config.FetchTimeout}
	}
	if clock == nil {
		clock = time.Now
	}
	return &Fetcher{client: client, clock: clock}
}

// Fetch retrieves one source's feed and normalizes its items, newest first as
// delivered by the source. Items beyond maxItems are dropped at ingestion.
func (f *Fetcher) Fetch(ctx context.Context, src sources.Source, maxItems int) ([]*types.Article, error) {
	parser := gofeed.NewParser()
	parser.Client = f.client
	parser.UserAgent = config.UserAgent

	feed, err := parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", src.ID, err)
	}

	if maxItems <= 0 {
		maxItems = config.MaxItemsPerSource
	}
	count := min(len(feed.Items), maxItems)

	now := f.clock()
	articles := make([]*types.Article, 0, count)
	for i := 0; i < count; i++ {
		articles = append(articles, Normalize(src, feed.Items[i], now))
	}
	return articles, nil
}

// FetchAll fans out one goroutine per source, each with its own timeout, and
// waits for every fetch to finish. One source failing never aborts the batch;
// its error is collected and it contributes zero items. The returned slice is
// ordered by registry position so output is deterministic regardless of
// completion order.
func (f *Fetcher) FetchAll(ctx context.Context, srcs []sources.Source, maxItems int) ([]*types.Article, []string) {
	perSource := make([][]*types.Article, len(srcs))
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		errors []string
	)

	for i, src := range srcs {
		wg.Add(1)
		go func(idx int, src sources.Source) {
			defer wg.Done()

			fctx, cancel := context.WithTimeout(ctx, config.FetchTimeout)
			defer cancel()

			articles, err := f.Fetch(fctx, src, maxItems)
			if err != nil {
				log.Printf("Failed to fetch %s: %v", src.Name, err)
				mu.Lock()
				errors = append(errors, fmt.Sprintf("%s: %v", src.ID, err))
				mu.Unlock()
				return
			}
			perSource[idx] = articles
		}(i, src)
	}
	wg.Wait()

	sort.Strings(errors)

	var all []*types.Article
	for _, articles := range perSource {
		all = append(all, articles...)
	}
	return all, errors
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
