// Package cache memoizes computed feed lists for a short TTL so bursts of
// requests don't trigger redundant fetch storms.
package cache

import (
	"context"
	"sync"
	"time"

	"novai/types"
)

// Entry is one cached aggregation result: the full deduplicated, ranked list
// plus any per-source errors recorded while computing it. Pagination happens
// per request, after the cache.
type Entry struct {
	Articles []*types.Article `json:"articles"`
	Errors   []string         `json:"errors,omitempty"`
}

// Store is a TTL-bounded key/value store for feed entries. Implementations
// must be safe for concurrent readers and writers.
type Store interface {
	Get(ctx context.Context, key string) (*Entry, bool)
	Set(ctx context.Context, key string, entry *Entry, ttl time.Duration)
}

type memoryEntry struct {
	entry     *Entry
	expiresAt time.Time
}

// Memory is an in-process Store guarded by a mutex. Data and timestamp are
// written together; readers compare against the expiry before serving.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	clock   func() time.Time
}

// NewMemory constructs an empty in-process store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry), clock: time.Now}
}

// Get returns the entry for key if present and not expired.
func (m *Memory) Get(_ context.Context, key string) (*Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cached, ok := m.entries[key]
	if !ok || m.clock().After(cached.expiresAt) {
		return nil, false
	}
	return cached.entry, true
}

// Set overwrites the entry and its expiry together.
func (m *Memory) Set(_ context.Context, key string, entry *Entry, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{entry: entry, expiresAt: m.clock().Add(ttl)}
}
