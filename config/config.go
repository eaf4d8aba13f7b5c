package config

import (
	"os"
	"strconv"
	"time"
)

// Fetch constants
const (
	// FetchTimeout bounds a single source request. Slow sources time out
	// without blocking the rest of the batch.
	FetchTimeout = 10 * time.Second

	// MaxItemsPerSource caps items taken from one feed document at ingestion.
	MaxItemsPerSource = 30

	// UserAgent is sent on every feed request; several providers reject the
	// Go default agent with 403.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Pipeline constants
const (
	// MaxSummaryLength truncates normalized summaries.
	MaxSummaryLength = 200

	// MaxPerSource is the diversity cap: no source contributes more items
	// than this to a single output list.
	MaxPerSource = 3

	// MaxAgeDays drops items older than this window before scoring.
	MaxAgeDays = 30

	// DefaultPage and DefaultLimit apply when the caller omits them.
	DefaultPage  = 1
	DefaultLimit = 20
)

// Cache TTLs per route family.
const (
	LiveCacheTTL       = 30 * time.Second
	HackerCacheTTL     = 2 * time.Minute
	TopStoriesCacheTTL = 5 * time.Minute
)

// MaxAgeDaysWindow returns the ingestion age window as a duration.
func MaxAgeDaysWindow() time.Duration {
	return MaxAgeDays * 24 * time.Hour
}

// GetEnvOrDefault returns the environment value for key, or fallback when unset.
func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns the integer environment value for key, or fallback when
// unset or unparseable.
func GetEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// GetEnvDuration returns the duration environment value for key (e.g. "90s"),
// or fallback when unset or unparseable.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
