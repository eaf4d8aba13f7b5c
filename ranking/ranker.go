// Package ranking orders scored articles and slices page windows.
package ranking

import (
	"sort"

	"novai/config"
	"novai/types"
)

// ByScore sorts descending by importance score, ties broken by publish time
// descending. Stable so equal items keep their deduplication order.
func ByScore(articles []*types.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].ImportanceScore != articles[j].ImportanceScore {
			return articles[i].ImportanceScore > articles[j].ImportanceScore
		}
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

// ByRecency sorts descending by publish time.
func ByRecency(articles []*types.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
}

// Paginate slices the 1-indexed page window out of the ranked list. A page
// past the end yields an empty page, not an error.
func Paginate(articles []*types.Article, page, limit int) types.FeedPage {
	if page <= 0 {
		page = config.DefaultPage
	}
	if limit <= 0 {
		limit = config.DefaultLimit
	}

	total := len(articles)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return types.FeedPage{
		Articles:   articles[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}
