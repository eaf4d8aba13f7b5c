package rssfeeds

import (
	"html"
	"regexp"
	"strings"
	"time"

	"novai/config"
	"novai/sources"
	"novai/types"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize maps one parsed feed item into the canonical article shape.
// Pure given identical input and clock value: no I/O, no shared state.
func Normalize(src sources.Source, item *gofeed.Item, now time.Time) *types.Article {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = "Untitled"
	}

	summary := item.Description
	if summary == "" {
		summary = item.Content
	}

	published := parsePublished(item, now)

	article := &types.Article{
		ID:              deriveID(item, title, src.Name, published),
		Title:           title,
		Summary:         CleanText(summary),
		URL:             item.Link,
		Source:          src.Name,
		Category:        strings.ToLower(src.Category),
		PublishedAt:     published,
		FetchedAt:       now,
		ImportanceScore: float64(src.Priority * 10),
	}

	if item.Author != nil {
		article.Author = item.Author.Name
	}
	if item.Image != nil {
		article.ImageURL = item.Image.URL
	}
	return article
}

// CleanText strips HTML tags, decodes character entities, collapses
// whitespace, and truncates to the configured summary length.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = tagRe.ReplaceAllString(text, " ")
	text = html.UnescapeString(text)
	text = strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))

	runes := []rune(text)
	if len(runes) > config.MaxSummaryLength {
		text = string(runes[:config.MaxSummaryLength])
	}
	return text
}

// parsePublished prefers the feed library's parsed timestamps, then a lenient
// parse of the raw date string, then the fetch time.
func parsePublished(item *gofeed.Item, now time.Time) time.Time {
	if item.PublishedParsed != nil {
		return *item.PublishedParsed
	}
	if item.UpdatedParsed != nil {
		return *item.UpdatedParsed
	}
	if raw := strings.TrimSpace(item.Published); raw != "" {
		if t, err := dateparse.ParseAny(raw); err == nil {
			return t
		}
	}
	return now
}

// deriveID prefers the source GUID, then a hash of the link, then a content
// hash so identical entries converge across runs. A random token is the last
// resort for entries with no identity material at all.
func deriveID(item *gofeed.Item, title, sourceName string, published time.Time) string {
	if item.GUID != "" {
		return item.GUID
	}
	if item.Link != "" {
		return types.GenerateID(item.Link)
	}
	if title != "" && title != "Untitled" {
		return types.ContentID(title, sourceName, published)
	}
	return uuid.NewString()
}
