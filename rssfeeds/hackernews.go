package rssfeeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"novai/config"
	"novai/types"
)

const defaultAlgoliaEndpoint = "https://hn.algolia.com/api/v1/search_by_date"

// hackerNewsWindow limits Algolia results to recent discussion.
const hackerNewsWindow = 24 * time.Hour

// HackerNewsClient queries the Algolia Hacker News search API. Its results are
// merged into the security feed alongside the RSS sources.
type HackerNewsClient struct {
	client   *http.Client
	endpoint string
	clock    func() time.Time
}

// NewHackerNewsClient constructs a client. An empty endpoint uses the public
// Algolia API.
func NewHackerNewsClient(client *http.Client, endpoint string) *HackerNewsClient {
	if client == nil {
		client = &http.Client{Timeout: config.FetchTimeout}
	}
	if endpoint == "" {
		endpoint = defaultAlgoliaEndpoint
	}
	return &HackerNewsClient{client: client, endpoint: endpoint, clock: time.Now}
}

type algoliaResponse struct {
	Hits []algoliaHit `json:"hits"`
}

type algoliaHit struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	StoryText   string `json:"story_text"`
	CreatedAt   string `json:"created_at"`
	Points      int    `json:"points"`
	NumComments int    `json:"num_comments"`
}

// Search returns stories matching the query from the last 24 hours. Story
// points feed directly into the importance score so heavily discussed items
// rank above quiet ones.
func (h *HackerNewsClient) Search(ctx context.Context, query string, maxHits int) ([]*types.Article, error) {
	if maxHits <= 0 {
		maxHits = config.MaxItemsPerSource
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("tags", "story")
	q.Set("hitsPerPage", fmt.Sprintf("%d", maxHits))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query hacker news: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hacker news: unexpected status %d", resp.StatusCode)
	}

	var body algoliaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode hacker news response: %w", err)
	}

	now := h.clock()
	cutoff := now.Add(-hackerNewsWindow)

	articles := make([]*types.Article, 0, len(body.Hits))
	for _, hit := range body.Hits {
		createdAt, err := time.Parse(time.RFC3339, hit.CreatedAt)
		if err != nil || createdAt.Before(cutoff) {
			continue
		}

		title := hit.Title
		if title == "" {
			title = "Untitled"
		}
		summary := hit.StoryText
		if summary == "" {
			summary = fmt.Sprintf("Discussion on Hacker News · %d comments", hit.NumComments)
		}
		storyURL := hit.URL
		if storyURL == "" {
			storyURL = "https://news.ycombinator.com/item?id=" + hit.ObjectID
		}

		articles = append(articles, &types.Article{
			ID:              hit.ObjectID,
			Title:           title,
			Summary:         CleanText(summary),
			URL:             storyURL,
			Source:          "Hacker News",
			Category:        "security",
			PublishedAt:     createdAt,
			FetchedAt:       now,
			ImportanceScore: 85 + float64(hit.Points),
		})
	}
	return articles, nil
}
