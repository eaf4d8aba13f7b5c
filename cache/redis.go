package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "novai:feed:"

// Redis is a Store backed by a Redis server, letting multiple processes share
// one cache. Redis errors degrade to cache misses; the pipeline must never
// fail because the cache is down.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to addr and verifies the connection with a short ping.
func NewRedis(addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &Redis{client: client}, nil
}

// Get fetches and decodes the entry for key.
func (r *Redis) Get(ctx context.Context, key string) (*Entry, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: redis get %s failed: %v", key, err)
		}
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.Printf("cache: corrupt redis entry for %s: %v", key, err)
		return nil, false
	}
	return &entry, true
}

// Set stores the entry under key with a server-side TTL.
func (r *Redis) Set(ctx context.Context, key string, entry *Entry, ttl time.Duration) {
	raw, err := json.Marshal(entry)
	if err != nil {
		log.Printf("cache: marshal entry for %s failed: %v", key, err)
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, raw, ttl).Err(); err != nil {
		log.Printf("cache: redis set %s failed: %v", key, err)
	}
}

// NewStoreFromEnv returns a Redis store when REDIS_ADDR is set and reachable,
// otherwise the in-process store. REDIS_PASS and REDIS_DB are optional.
func NewStoreFromEnv() Store {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return NewMemory()
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		fmt.Sscanf(v, "%d", &db)
	}

	store, err := NewRedis(addr, os.Getenv("REDIS_PASS"), db)
	if err != nil {
		log.Printf("cache: %v (falling back to in-memory)", err)
		return NewMemory()
	}
	log.Printf("cache: using redis at %s", addr)
	return store
}
