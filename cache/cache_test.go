package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"novai/types"
)

func entryWith(titles ...string) *Entry {
	e := &Entry{}
	for _, title := range titles {
		e.Articles = append(e.Articles, &types.Article{Title: title})
	}
	return e
}

func TestMemoryGetMiss(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Get(context.Background(), "absent"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestMemorySetAndGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Set(ctx, "feed", entryWith("a", "b"), time.Minute)

	got, ok := m.Get(ctx, "feed")
	if !ok {
		t.Fatal("expected hit")
	}
	if len(got.Articles) != 2 || got.Articles[0].Title != "a" {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestMemoryEntryExpires(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.clock = func() time.Time { return now }
	ctx := context.Background()

	m.Set(ctx, "feed", entryWith("a"), 30*time.Second)

	now = now.Add(29 * time.Second)
	if _, ok := m.Get(ctx, "feed"); !ok {
		t.Fatal("entry expired early")
	}

	now = now.Add(2 * time.Second)
	if _, ok := m.Get(ctx, "feed"); ok {
		t.Fatal("entry served past its TTL")
	}
}

func TestMemoryOverwriteResetsExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.clock = func() time.Time { return now }
	ctx := context.Background()

	m.Set(ctx, "feed", entryWith("stale"), 10*time.Second)
	now = now.Add(8 * time.Second)
	m.Set(ctx, "feed", entryWith("fresh"), 10*time.Second)
	now = now.Add(5 * time.Second)

	got, ok := m.Get(ctx, "feed")
	if !ok {
		t.Fatal("overwrite should have reset the expiry")
	}
	if got.Articles[0].Title != "fresh" {
		t.Fatalf("expected overwritten entry, got %q", got.Articles[0].Title)
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%4)
			for j := 0; j < 100; j++ {
				m.Set(ctx, key, entryWith("x"), time.Minute)
				m.Get(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}
