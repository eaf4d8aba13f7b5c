package relevance

import (
	"testing"
	"time"

	"novai/types"
)

func scoreAt(t *testing.T, title string, published time.Time, base float64) float64 {
	t.Helper()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	scorer := NewScorer(DefaultWeights(), func() time.Time { return now })
	a := &types.Article{Title: title, PublishedAt: published, ImportanceScore: base}
	return scorer.Score(a)
}

func TestScoreRecencyTiers(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	within24 := scoreAt(t, "plain headline", now.Add(-6*time.Hour), 50)
	within48 := scoreAt(t, "plain headline", now.Add(-36*time.Hour), 50)
	older := scoreAt(t, "plain headline", now.Add(-80*time.Hour), 50)

	if within24 != 70 {
		t.Fatalf("expected base+20 within 24h, got %v", within24)
	}
	if within48 != 60 {
		t.Fatalf("expected base+10 within 48h, got %v", within48)
	}
	if older != 50 {
		t.Fatalf("expected no recency bonus beyond 48h, got %v", older)
	}
	if !(within24 > within48 && within48 > older) {
		t.Fatal("fresher articles must never score below staler ones, all else equal")
	}
}

func TestScoreFutureDatedGetsNoRecencyBonus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	got := scoreAt(t, "plain headline", now.Add(3*time.Hour), 50)
	if got != 50 {
		t.Fatalf("future-dated item should keep its base, got %v", got)
	}
}

func TestScoreKeywordBonusOncePerGroup(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	stale := now.Add(-100 * time.Hour)

	one := scoreAt(t, "OpenAI news", stale, 0)
	two := scoreAt(t, "OpenAI and Anthropic news", stale, 0)
	if one != 50 || two != 50 {
		t.Fatalf("terms in the same group must not stack: got %v and %v", one, two)
	}
}

func TestScoreKeywordBonusesStackAcrossGroups(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	stale := now.Add(-100 * time.Hour)

	// frontier-models (50) + compute (30) + breakthrough (25)
	got := scoreAt(t, "GPT breakthrough runs on nvidia silicon", stale, 0)
	if got != 105 {
		t.Fatalf("expected 50+30+25=105 across groups, got %v", got)
	}
}

func TestScoreAddingKeywordNeverLowersScore(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	stale := now.Add(-100 * time.Hour)

	plain := scoreAt(t, "quarterly results announced", stale, 40)
	boosted := scoreAt(t, "quarterly results announced for gpu maker", stale, 40)
	if boosted < plain {
		t.Fatalf("matching an extra keyword lowered the score: %v < %v", boosted, plain)
	}
}

func TestScoreWritesBackToArticle(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	scorer := NewScorer(DefaultWeights(), func() time.Time { return now })

	a := &types.Article{Title: "claude release", PublishedAt: now.Add(-1 * time.Hour), ImportanceScore: 90}
	got := scorer.Score(a)
	if a.ImportanceScore != got {
		t.Fatalf("score not written back: returned %v, article holds %v", got, a.ImportanceScore)
	}
	if got != 160 {
		t.Fatalf("expected 90+20+50=160, got %v", got)
	}
}
