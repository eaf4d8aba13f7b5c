package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"novai/types"
)

// FeedClient is a thin HTTP client for the feed API
type FeedClient struct {
	baseURL string
	client  *http.Client
}

// NewFeedClient creates a new feed API client
func NewFeedClient(baseURL string) *FeedClient {
	return &FeedClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetFeed fetches one page of the given feed
func (c *FeedClient) GetFeed(feed Feed, page int) (*types.FeedPage, error) {
	url := fmt.Sprintf("%s/api/feed/%s?page=%d", c.baseURL, feed, page)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var result types.FeedPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// Refresh triggers a background refresh cycle on the server
func (c *FeedClient) Refresh() error {
	resp, err := c.client.Post(c.baseURL+"/api/feed/refresh", "application/json", bytes.NewReader([]byte("{}")))
	if err != nil {
		return fmt.Errorf("failed to trigger refresh: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
