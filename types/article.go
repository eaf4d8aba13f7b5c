package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Article is the canonical item flowing through the aggregation pipeline.
// Fetcher output is normalized into this shape; the scorer mutates only
// ImportanceScore.
type Article struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Summary         string    `json:"summary"`
	URL             string    `json:"url"`
	Source          string    `json:"source"`
	Category        string    `json:"category"`
	PublishedAt     time.Time `json:"published_at"`
	FetchedAt       time.Time `json:"fetched_at"`
	ImportanceScore float64   `json:"importance_score"`
	Author          string    `json:"author,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`

	// Populated only by the extraction worker pool.
	FullContent     string `json:"full_content,omitempty"`
	FullContentText string `json:"full_content_text,omitempty"`
	Excerpt         string `json:"excerpt,omitempty"`
	ExtractionError string `json:"extraction_error,omitempty"`
}

// FeedPage is the paginated result of one aggregation run.
type FeedPage struct {
	Articles   []*Article `json:"articles"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"totalPages"`
	Errors     []string   `json:"errors,omitempty"`
}

// GenerateID creates a short, stable ID by hashing the provided string input.
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}

// ContentID derives a deterministic ID from an item's content. Used when the
// source provides neither a GUID nor a link, so reprocessing the same entry
// across runs converges to the same ID.
func ContentID(title, source string, published time.Time) string {
	return GenerateID(title + "|" + source + "|" + published.UTC().Format("2006-01-02"))
}
