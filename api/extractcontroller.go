package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novai/rssfeeds"
	"novai/types"
)

// ExtractRequest carries the articles to run through the readability pool.
type ExtractRequest struct {
	Articles []*types.Article `json:"articles" binding:"required"`
}

// RegisterExtractRoutes registers the full-content extraction endpoint.
func RegisterExtractRoutes(r *gin.Engine) {
	r.POST("/api/extract", handleExtract)
}

// handleExtract runs the worker pool over the posted articles and returns
// them with full content (or per-article extraction errors) filled in.
func handleExtract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rssfeeds.ExtractAllContent(req.Articles)

	extracted := 0
	for _, article := range req.Articles {
		if article.ExtractionError == "" {
			extracted++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":  req.Articles,
		"extracted": extracted,
		"failed":    len(req.Articles) - extracted,
	})
}
