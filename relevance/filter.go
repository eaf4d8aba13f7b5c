// Package relevance decides whether a normalized article belongs in the
// dashboard's domain and how important it is.
package relevance

import (
	"strings"

	"novai/types"
)

// FilterConfig holds the keyword lists driving admission. The lists are tuned
// editorial choices, so they live in configuration rather than code paths.
type FilterConfig struct {
	// HardBlock rejects unconditionally when any term matches.
	HardBlock []string
	// StrongSignals accepts when any term matches; one hit is enough.
	StrongSignals []string
	// AutoAcceptCategories admits regardless of keywords. Some sources are
	// domain-pure by construction (e.g. arXiv robotics).
	AutoAcceptCategories []string
}

// Filter is a stateless, order-independent predicate over articles.
type Filter struct {
	hardBlock   []string
	signals     []string
	autoAccepts map[string]struct{}
}

// NewFilter builds a Filter from config.
func NewFilter(cfg FilterConfig) *Filter {
	auto := make(map[string]struct{}, len(cfg.AutoAcceptCategories))
	for _, c := range cfg.AutoAcceptCategories {
		auto[strings.ToLower(c)] = struct{}{}
	}
	return &Filter{hardBlock: cfg.HardBlock, signals: cfg.StrongSignals, autoAccepts: auto}
}

// DefaultFilterConfig returns the tech/AI relevance lists used by the feed
// routes.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		HardBlock: []string{
			"black friday", "cyber monday", "coupon", "promo code", "discount code",
			"anime", "manga", "k-pop", "concert", "music festival",
			"fashion", "soccer", "basketball", "olympics",
			"tourism", "travel destination", "restaurant", "cuisine",
			"gaming console", "movie release", "film festival",
		},
		StrongSignals: []string{
			"artificial intelligence", "machine learning", "deep learning", "neural network",
			"llm", "large language model", "gpt", "chatgpt", "claude", "gemini",
			"generative ai", "transformer", "diffusion model",
			"openai", "anthropic", "deepmind", "nvidia", "gpu",
			"robot", "robotic", "robotics", "autonomous", "humanoid", "drone",
			"computer vision", "nlp", "language model", "ai model", "ai tool", "ai startup",
			"software", "platform", "cloud", "data center", "semiconductor",
			"startup", "venture", "funding", "stock", "ipo",
		},
		AutoAcceptCategories: []string{
			"research", "robotics", "tools", "market",
			"security", "us-intel", "current-wars",
		},
	}
}

// Admit reports whether the article belongs in the target domain. Hard blocks
// win over everything; otherwise one strong signal or an auto-accept category
// is enough.
func (f *Filter) Admit(a *types.Article) bool {
	text := strings.ToLower(a.Title + " " + a.Summary)

	for _, blocked := range f.hardBlock {
		if strings.Contains(text, blocked) {
			return false
		}
	}

	for _, signal := range f.signals {
		if strings.Contains(text, signal) {
			return true
		}
	}

	_, ok := f.autoAccepts[strings.ToLower(a.Category)]
	return ok
}
