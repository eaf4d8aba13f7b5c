// Package orchestrator runs the full refresh cycle behind POST
// /api/feed/refresh: aggregate every source, optionally extract full content,
// then archive and publish the fresh items.
package orchestrator

import (
	"context"
	"log"
	"os"
	"strings"

	"novai/aggregator"
	"novai/common"
	"novai/config"
	"novai/publisher"
	"novai/rssfeeds"
)

// RunOnce executes a single end-to-end refresh: aggregate all sources,
// extract, archive to S3, publish to Kafka, summary. Partial source failures
// degrade the run; only total failure aborts it.
func RunOnce(ctx context.Context, service *aggregator.Service) error {
	log.Println("=== Novai Refresh ===")

	page, err := service.Aggregate(ctx, aggregator.Request{
		Category:       "All",
		Limit:          config.GetEnvInt("REFRESH_LIMIT", 200),
		Order:          aggregator.OrderScore,
		ApplyRelevance: true,
		MaxAge:         config.MaxAgeDaysWindow(),
	})
	if err != nil {
		return err
	}
	log.Printf("Aggregated %d articles (%d total, %d source errors)",
		len(page.Articles), page.Total, len(page.Errors))

	if strings.EqualFold(os.Getenv("EXTRACT_CONTENT"), "true") {
		log.Printf("Extracting full content using %d workers...", rssfeeds.WorkerCount)
		rssfeeds.ExtractAllContent(page.Articles)

		extracted := 0
		for _, article := range page.Articles {
			if article.ExtractionError == "" {
				extracted++
			}
		}
		log.Printf("Successfully extracted %d/%d articles", extracted, len(page.Articles))
	}

	if archiver := common.NewArchiverFromEnv(ctx); archiver != nil {
		archived := archiver.ArchiveArticles(ctx, page.Articles)
		log.Printf("S3 archive complete: %d item(s)", archived)
	} else {
		log.Printf("S3 not configured; skipping archive")
	}

	pub, err := publisher.NewPublisherFromEnv()
	if err != nil {
		log.Printf("Warning: kafka publisher unavailable: %v (skipping publish)", err)
	} else if pub != nil {
		defer pub.Close()
		published, pubErr := pub.PublishArticles(page.Articles)
		if pubErr != nil {
			log.Printf("Kafka publish finished with errors: %v", pubErr)
		}
		log.Printf("Kafka publish complete: %d item(s)", published)
	} else {
		log.Printf("Kafka not configured; skipping publish")
	}

	log.Println("=== Refresh Complete ===")
	return nil
}
