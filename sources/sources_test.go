package sources

import "testing"

func TestRegistryEntriesAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, src := range Registry {
		if src.ID == "" || src.Name == "" || src.URL == "" || src.Category == "" {
			t.Fatalf("incomplete source: %+v", src)
		}
		if src.Priority < 1 || src.Priority > 10 {
			t.Fatalf("source %s priority out of range: %d", src.ID, src.Priority)
		}
		if seen[src.ID] {
			t.Fatalf("duplicate source ID %q", src.ID)
		}
		seen[src.ID] = true
	}
}

func TestByCategorySelectsSubset(t *testing.T) {
	security := ByCategory("security")
	if len(security) == 0 {
		t.Fatal("expected security sources")
	}
	for _, src := range security {
		if src.Category != "security" {
			t.Fatalf("wrong category in selection: %+v", src)
		}
	}
	if len(security) == len(Registry) {
		t.Fatal("category selection must be a strict subset")
	}
}

func TestByCategoryAllVariants(t *testing.T) {
	for _, category := range []string{"", "all", "All"} {
		if got := ByCategory(category); len(got) != len(Registry) {
			t.Fatalf("category %q: expected whole registry, got %d of %d", category, len(got), len(Registry))
		}
	}
}

func TestByCategoryUnknownIsEmpty(t *testing.T) {
	if got := ByCategory("no-such-category"); len(got) != 0 {
		t.Fatalf("expected empty selection, got %d", len(got))
	}
}

func TestLookup(t *testing.T) {
	src, ok := Lookup("openai")
	if !ok || src.Name != "OpenAI Blog" {
		t.Fatalf("expected openai source, got %+v (%v)", src, ok)
	}
	if _, ok := Lookup("missing"); ok {
		t.Fatal("expected miss for unknown ID")
	}
}
