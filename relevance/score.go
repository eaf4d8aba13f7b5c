package relevance

import (
	"strings"
	"time"

	"novai/types"
)

// KeywordGroup grants a fixed bonus when any of its terms appears in an
// article's text. Bonuses stack across groups but not within one group.
type KeywordGroup struct {
	Name  string
	Terms []string
	Bonus float64
}

// Weights are the scoring knobs. All bonuses are non-negative, so the final
// score never drops below the source-priority base.
type Weights struct {
	// Recency tiers: flat bonus within 24h of now, a smaller one within 48h,
	// nothing beyond that.
	Within24h float64
	Within48h float64

	KeywordGroups []KeywordGroup
}

// DefaultWeights returns the tuned boosts from the production feed ranking.
func DefaultWeights() Weights {
	return Weights{
		Within24h: 20,
		Within48h: 10,
		KeywordGroups: []KeywordGroup{
			{Name: "frontier-models", Bonus: 50, Terms: []string{
				"openai", "gpt", "gemini", "claude", "llama", "anthropic", "mistral",
			}},
			{Name: "core-ai", Bonus: 40, Terms: []string{
				"artificial intelligence", " ai ", "llm", "neural network",
			}},
			{Name: "compute", Bonus: 30, Terms: []string{
				"nvidia", "h100", "gpu",
			}},
			{Name: "breakthrough", Bonus: 25, Terms: []string{
				"breakthrough", "state of the art", "sota",
			}},
		},
	}
}

// Scorer assigns importance scores. Pure function of the article's text,
// publish time, and the pre-seeded source-priority base.
type Scorer struct {
	weights Weights
	clock   func() time.Time
}

// NewScorer constructs a Scorer; a nil clock uses time.Now.
func NewScorer(weights Weights, clock func() time.Time) *Scorer {
	if clock == nil {
		clock = time.Now
	}
	return &Scorer{weights: weights, clock: clock}
}

// Score computes the final importance score from the base already set by the
// normalizer (source priority * 10) plus recency and keyword boosts, and
// writes it back onto the article.
func (s *Scorer) Score(a *types.Article) float64 {
	score := a.ImportanceScore

	age := s.clock().Sub(a.PublishedAt)
	switch {
	case age >= 0 && age < 24*time.Hour:
		score += s.weights.Within24h
	case age >= 0 && age < 48*time.Hour:
		score += s.weights.Within48h
	}

	text := strings.ToLower(a.Title + " " + a.Summary)
	for _, group := range s.weights.KeywordGroups {
		for _, term := range group.Terms {
			if strings.Contains(text, term) {
				score += group.Bonus
				break
			}
		}
	}

	a.ImportanceScore = score
	return score
}
