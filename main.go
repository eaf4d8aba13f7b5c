package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"novai/aggregator"
	"novai/api"
	"novai/cache"
	"novai/rssfeeds"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	fetcher := rssfeeds.NewFetcher(nil, nil)
	store := cache.NewStoreFromEnv()
	service := aggregator.NewService(fetcher, nil, nil, store)
	hackerNews := rssfeeds.NewHackerNewsClient(nil, "")

	r := api.NewRouter(service, hackerNews)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/feed/top-stories")
	log.Println("  GET  /api/feed/live")
	log.Println("  GET  /api/feed/hacker")
	log.Println("  GET  /api/feed/war-room")
	log.Println("  POST /api/feed/refresh")
	log.Println("  POST /api/extract")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
