package api

import (
	"github.com/gin-gonic/gin"

	"novai/aggregator"
	"novai/rssfeeds"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(service *aggregator.Service, hackerNews *rssfeeds.HackerNewsClient) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterFeedRoutes(r, service, hackerNews)
	RegisterExtractRoutes(r)
	RegisterHealthRoutes(r)
	return r
}
