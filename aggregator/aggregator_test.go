package aggregator

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"novai/cache"
	"novai/relevance"
	"novai/sources"
	"novai/types"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// fakeFetcher simulates the concurrent fan-out: healthy sources yield their
// canned articles, sources listed in failing contribute an error instead.
type fakeFetcher struct {
	articles map[string][]*types.Article
	failing  map[string]error
	calls    int
}

func (f *fakeFetcher) FetchAll(_ context.Context, srcs []sources.Source, _ int) ([]*types.Article, []string) {
	f.calls++
	var all []*types.Article
	var errs []string
	for _, src := range srcs {
		if err, down := f.failing[src.ID]; down {
			errs = append(errs, fmt.Sprintf("%s: %v", src.ID, err))
			continue
		}
		all = append(all, f.articles[src.ID]...)
	}
	return all, errs
}

func normalized(title, source, category string, priority int, published time.Time) *types.Article {
	return &types.Article{
		ID:              types.GenerateID(title + source),
		Title:           title,
		Summary:         "coverage of the announcement",
		Source:          source,
		Category:        category,
		PublishedAt:     published,
		FetchedAt:       testNow,
		ImportanceScore: float64(priority * 10),
	}
}

func newTestService(f Fetcher) *Service {
	clock := func() time.Time { return testNow }
	s := NewService(f, nil, relevance.NewScorer(relevance.DefaultWeights(), clock), cache.NewMemory())
	s.clock = clock
	return s
}

func testSources() []sources.Source {
	return []sources.Source{
		{ID: "a", Name: "Source A", Category: "research", Priority: 9},
		{ID: "b", Name: "Source B", Category: "research", Priority: 5},
		{ID: "c", Name: "Source C", Category: "research", Priority: 7},
	}
}

func TestAggregateDegradedRunWithDuplicateStory(t *testing.T) {
	fetcher := &fakeFetcher{
		articles: map[string][]*types.Article{
			"a": {
				normalized("GPT-5 Launch", "Source A", "research", 9, testNow.Add(-1*time.Hour)),
				normalized("Lab Notes Weekly", "Source A", "research", 9, testNow.Add(-26*time.Hour)),
			},
			"b": {
				normalized("GPT-5 Launch", "Source B", "research", 5, testNow.Add(-1*time.Hour)),
				normalized("Quiet Benchmark Update", "Source B", "research", 5, testNow.Add(-3*time.Hour)),
			},
		},
		failing: map[string]error{"c": errors.New("context deadline exceeded")},
	}

	svc := newTestService(fetcher)
	page, err := svc.Aggregate(context.Background(), Request{
		Sources:        testSources(),
		Page:           1,
		Limit:          20,
		Order:          OrderScore,
		ApplyRelevance: true,
	})
	if err != nil {
		t.Fatalf("partial failure must not be an error: %v", err)
	}

	if len(page.Articles) != 3 {
		t.Fatalf("expected 3 articles (dup title collapsed), got %d", len(page.Articles))
	}

	// Ranking ran before deduplication, so the higher-priority copy survives.
	top := page.Articles[0]
	if top.Title != "GPT-5 Launch" || top.Source != "Source A" {
		t.Fatalf("expected Source A's copy on top, got %q from %q", top.Title, top.Source)
	}

	titles := make(map[string]bool)
	for _, a := range page.Articles {
		if titles[a.Title] {
			t.Fatalf("duplicate title %q in page", a.Title)
		}
		titles[a.Title] = true
	}

	for i := 1; i < len(page.Articles); i++ {
		if page.Articles[i].ImportanceScore > page.Articles[i-1].ImportanceScore {
			t.Fatalf("scores not descending at %d", i)
		}
	}

	if len(page.Errors) != 1 {
		t.Fatalf("expected the failed source reported, got %v", page.Errors)
	}
}

func TestAggregateAllSourcesFailed(t *testing.T) {
	fetcher := &fakeFetcher{
		failing: map[string]error{
			"a": errors.New("dns failure"),
			"b": errors.New("timeout"),
			"c": errors.New("http 500"),
		},
	}

	svc := newTestService(fetcher)
	page, err := svc.Aggregate(context.Background(), Request{Sources: testSources(), Page: 1, Limit: 20})
	if !errors.Is(err, ErrAllSourcesFailed) {
		t.Fatalf("expected ErrAllSourcesFailed, got %v", err)
	}
	if len(page.Articles) != 0 {
		t.Fatalf("expected empty page on total failure, got %d", len(page.Articles))
	}
	if len(page.Errors) != 3 {
		t.Fatalf("expected all three failures reported, got %v", page.Errors)
	}
}

func TestAggregateCacheHitSkipsFetch(t *testing.T) {
	fetcher := &fakeFetcher{
		articles: map[string][]*types.Article{
			"a": {normalized("Cached Story", "Source A", "research", 9, testNow.Add(-1*time.Hour))},
		},
	}

	svc := newTestService(fetcher)
	req := Request{
		Sources:  testSources()[:1],
		Page:     1,
		Limit:    20,
		CacheKey: "test:feed",
		CacheTTL: time.Minute,
	}

	if _, err := svc.Aggregate(context.Background(), req); err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	page, err := svc.Aggregate(context.Background(), req)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}

	if fetcher.calls != 1 {
		t.Fatalf("expected one upstream fetch, got %d", fetcher.calls)
	}
	if len(page.Articles) != 1 || page.Articles[0].Title != "Cached Story" {
		t.Fatalf("cache served wrong content: %+v", page.Articles)
	}
}

func TestAggregateCachePaginatesPerRequest(t *testing.T) {
	var stories []*types.Article
	for i := 0; i < 7; i++ {
		stories = append(stories, normalized(fmt.Sprintf("Story %d", i), fmt.Sprintf("S%d", i), "research", 5, testNow.Add(-1*time.Hour)))
	}
	fetcher := &fakeFetcher{articles: map[string][]*types.Article{"a": stories}}

	svc := newTestService(fetcher)
	base := Request{
		Sources:  testSources()[:1],
		Limit:    3,
		CacheKey: "test:paged",
		CacheTTL: time.Minute,
	}

	first := base
	first.Page = 1
	second := base
	second.Page = 2

	p1, err := svc.Aggregate(context.Background(), first)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := svc.Aggregate(context.Background(), second)
	if err != nil {
		t.Fatal(err)
	}

	if fetcher.calls != 1 {
		t.Fatalf("page 2 should come from cache, got %d fetches", fetcher.calls)
	}
	if len(p1.Articles) != 3 || len(p2.Articles) != 3 {
		t.Fatalf("expected 3 per page, got %d and %d", len(p1.Articles), len(p2.Articles))
	}
	if p1.Articles[0].ID == p2.Articles[0].ID {
		t.Fatal("pages overlap")
	}
	if p1.TotalPages != 3 {
		t.Fatalf("expected 3 total pages, got %d", p1.TotalPages)
	}
}

func TestAggregateMaxAgeDropsOldArticles(t *testing.T) {
	fetcher := &fakeFetcher{
		articles: map[string][]*types.Article{
			"a": {
				normalized("Fresh", "Source A", "research", 9, testNow.Add(-24*time.Hour)),
				normalized("Ancient", "Source A", "research", 9, testNow.Add(-31*24*time.Hour)),
			},
		},
	}

	svc := newTestService(fetcher)
	page, err := svc.Aggregate(context.Background(), Request{
		Sources: testSources()[:1],
		Page:    1,
		Limit:   20,
		MaxAge:  30 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Articles) != 1 || page.Articles[0].Title != "Fresh" {
		t.Fatalf("expected only the fresh article, got %+v", page.Articles)
	}
}

func TestAggregateRelevanceFilter(t *testing.T) {
	fetcher := &fakeFetcher{
		articles: map[string][]*types.Article{
			"a": {
				normalized("New LLM benchmark results", "Source A", "ai", 5, testNow.Add(-1*time.Hour)),
				normalized("Celebrity fashion week recap", "Source A", "ai", 5, testNow.Add(-1*time.Hour)),
			},
		},
	}

	svc := newTestService(fetcher)
	page, err := svc.Aggregate(context.Background(), Request{
		Sources:        testSources()[:1],
		Page:           1,
		Limit:          20,
		ApplyRelevance: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Articles) != 1 || page.Articles[0].Title != "New LLM benchmark results" {
		t.Fatalf("expected off-topic article filtered, got %+v", page.Articles)
	}
}

func TestAggregateMergesExtraArticles(t *testing.T) {
	fetcher := &fakeFetcher{
		articles: map[string][]*types.Article{
			"a": {normalized("RSS Story", "Source A", "security", 5, testNow.Add(-1*time.Hour))},
		},
	}

	hnHit := &types.Article{
		ID:              "hn-1",
		Title:           "Major outage postmortem",
		Source:          "Hacker News",
		Category:        "security",
		PublishedAt:     testNow.Add(-2 * time.Hour),
		ImportanceScore: 300,
	}

	svc := newTestService(fetcher)
	page, err := svc.Aggregate(context.Background(), Request{
		Sources: testSources()[:1],
		Page:    1,
		Limit:   20,
		Order:   OrderScore,
		Extra:   []*types.Article{hnHit},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Articles) != 2 {
		t.Fatalf("expected merged result, got %d", len(page.Articles))
	}
	if page.Articles[0].ID != "hn-1" {
		t.Fatalf("expected high-scoring extra item first, got %q", page.Articles[0].ID)
	}
}

func TestAggregateRecencyOrder(t *testing.T) {
	fetcher := &fakeFetcher{
		articles: map[string][]*types.Article{
			"a": {
				normalized("Older But Important", "Source A", "research", 9, testNow.Add(-10*time.Hour)),
				normalized("Newest", "Source A", "research", 9, testNow.Add(-1*time.Hour)),
			},
		},
	}

	svc := newTestService(fetcher)
	page, err := svc.Aggregate(context.Background(), Request{
		Sources: testSources()[:1],
		Page:    1,
		Limit:   20,
		Order:   OrderRecency,
	})
	if err != nil {
		t.Fatal(err)
	}
	if page.Articles[0].Title != "Newest" {
		t.Fatalf("expected newest first, got %q", page.Articles[0].Title)
	}
}
