package rssfeeds

import (
	"fmt"
	"log"
	"sync"
	"time"

	"novai/types"

	readability "github.com/go-shiori/go-readability"
)

const (
	// WorkerCount bounds concurrent readability fetches.
	WorkerCount      = 5
	extractorTimeout = 30 * time.Second
)

// ExtractAllContent fetches and extracts full article content using a worker
// pool. Failures are recorded on the article, never returned; a feed page
// renders fine with some extractions missing.
func ExtractAllContent(articles []*types.Article) {
	var wg sync.WaitGroup
	articleChan := make(chan *types.Article, len(articles))

	for i := 0; i < WorkerCount; i++ {
		go func(workerID int) {
			for article := range articleChan {
				if err := extractContent(article); err != nil {
					article.ExtractionError = err.Error()
					log.Printf("[Worker %d] Failed to extract %s: %v", workerID, article.URL, err)
				}
				wg.Done()
			}
		}(i)
	}

	for _, article := range articles {
		wg.Add(1)
		articleChan <- article
	}

	wg.Wait()
	close(articleChan)
}

// extractContent fetches and extracts full content for a single article.
func extractContent(article *types.Article) error {
	if article.URL == "" {
		return fmt.Errorf("article URL is empty")
	}

	extracted, err := readability.FromURL(article.URL, extractorTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	article.FullContent = extracted.Content
	article.FullContentText = extracted.TextContent
	article.Excerpt = extracted.Excerpt

	if article.ImageURL == "" {
		article.ImageURL = extracted.Image
	}
	if article.Author == "" {
		article.Author = extracted.Byline
	}

	log.Printf("✓ Extracted: %s", article.Title)
	return nil
}
