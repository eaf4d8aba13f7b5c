package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"novai/aggregator"
	"novai/config"
	"novai/orchestrator"
	"novai/rssfeeds"
	"novai/sources"
)

// hackerNewsQuery matches the dashboard's security beat on the Algolia API.
const hackerNewsQuery = "security OR hacking OR cyber OR exploit OR vulnerability OR AI"

// FeedController serves the aggregated feed routes.
type FeedController struct {
	service    *aggregator.Service
	hackerNews *rssfeeds.HackerNewsClient
}

// RegisterFeedRoutes registers the feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, service *aggregator.Service, hackerNews *rssfeeds.HackerNewsClient) {
	c := &FeedController{service: service, hackerNews: hackerNews}

	g := r.Group("/api/feed")
	g.GET("/top-stories", c.handleTopStories)
	g.GET("/live", c.handleLive)
	g.GET("/hacker", c.handleHacker)
	g.GET("/war-room", c.handleWarRoom)
	g.POST("/refresh", c.handleRefresh)
}

// handleTopStories serves the deep-history, score-ranked feed.
func (f *FeedController) handleTopStories(c *gin.Context) {
	page, limit := pageParams(c)
	category := c.DefaultQuery("category", "All")

	result, err := f.service.Aggregate(c.Request.Context(), aggregator.Request{
		Category:       category,
		Page:           page,
		Limit:          limit,
		Order:          aggregator.OrderScore,
		ApplyRelevance: true,
		MaxAge:         config.MaxAgeDaysWindow(),
		CacheKey:       "top-stories:" + category,
		CacheTTL:       config.TopStoriesCacheTTL,
	})
	respond(c, result, err)
}

// handleLive serves the near-real-time feed: recency-ranked, near-duplicate
// titles collapsed, cached for seconds rather than minutes.
func (f *FeedController) handleLive(c *gin.Context) {
	page, limit := pageParams(c)
	category := c.DefaultQuery("category", "All")

	result, err := f.service.Aggregate(c.Request.Context(), aggregator.Request{
		Category:            category,
		Page:                page,
		Limit:               limit,
		Order:               aggregator.OrderRecency,
		ApplyRelevance:      true,
		SimilarityThreshold: 0.6,
		CacheKey:            "live:" + category,
		CacheTTL:            config.LiveCacheTTL,
	})
	respond(c, result, err)
}

// handleHacker blends the security RSS sources with recent Hacker News
// stories from the Algolia search API.
func (f *FeedController) handleHacker(c *gin.Context) {
	page, limit := pageParams(c)

	req := aggregator.Request{
		Sources:        sources.ByCategory("security"),
		Page:           page,
		Limit:          limit,
		Order:          aggregator.OrderRecency,
		ApplyRelevance: true,
		CacheKey:       "hacker",
		CacheTTL:       config.HackerCacheTTL,
	}

	if f.hackerNews != nil {
		hits, err := f.hackerNews.Search(c.Request.Context(), hackerNewsQuery, config.MaxItemsPerSource)
		if err != nil {
			// Hacker News down is just one more degraded source.
			log.Printf("Failed to fetch Hacker News: %v", err)
		} else {
			req.Extra = hits
		}
	}

	result, err := f.service.Aggregate(c.Request.Context(), req)
	respond(c, result, err)
}

// handleWarRoom serves the current-conflicts feed.
func (f *FeedController) handleWarRoom(c *gin.Context) {
	page, limit := pageParams(c)

	result, err := f.service.Aggregate(c.Request.Context(), aggregator.Request{
		Category:       "current-wars",
		Page:           page,
		Limit:          limit,
		Order:          aggregator.OrderRecency,
		ApplyRelevance: true,
		CacheKey:       "war-room",
		CacheTTL:       config.LiveCacheTTL,
	})
	respond(c, result, err)
}

// handleRefresh triggers a full refresh cycle asynchronously and returns 202.
func (f *FeedController) handleRefresh(c *gin.Context) {
	svc := f.service
	go func() {
		if err := orchestrator.RunOnce(context.Background(), svc); err != nil {
			log.Printf("Refresh failed: %v", err)
		}
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh started"})
}

func pageParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(config.DefaultPage)))
	if err != nil || page < 1 {
		page = config.DefaultPage
	}
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(config.DefaultLimit)))
	if err != nil || limit < 1 {
		limit = config.DefaultLimit
	}
	return page, limit
}

// respond maps pipeline results onto the wire: degraded success stays 200,
// total failure becomes a 500 with an error body.
func respond(c *gin.Context, result interface{}, err error) {
	if err != nil {
		if errors.Is(err, aggregator.ErrAllSourcesFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate feed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
