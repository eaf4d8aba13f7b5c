// Package deduplication enforces the output invariants: unique titles and a
// bounded contribution per source.
package deduplication

import (
	"strings"

	"novai/config"
	"novai/types"
)

// Options tune one deduplication pass.
type Options struct {
	// MaxPerSource caps items contributed by any one source. Zero means
	// config.MaxPerSource.
	MaxPerSource int
	// SimilarityThreshold, when > 0, also drops titles whose Jaccard word
	// similarity to an already accepted title exceeds it (0.6 catches same
	// story syndicated with minor headline edits).
	SimilarityThreshold float64
}

// Apply runs a single greedy pass in the given slice order. The caller
// chooses the traversal order deliberately — highest score first means the
// best-ranked copy of a duplicated story survives. Order in, order out.
func Apply(articles []*types.Article, opts Options) []*types.Article {
	maxPerSource := opts.MaxPerSource
	if maxPerSource <= 0 {
		maxPerSource = config.MaxPerSource
	}

	seenTitles := make(map[string]struct{}, len(articles))
	sourceCounts := make(map[string]int)
	var acceptedTitles []string

	kept := make([]*types.Article, 0, len(articles))
	for _, article := range articles {
		if _, dup := seenTitles[article.Title]; dup {
			continue
		}
		if sourceCounts[article.Source] >= maxPerSource {
			continue
		}
		if opts.SimilarityThreshold > 0 && nearDuplicate(article.Title, acceptedTitles, opts.SimilarityThreshold) {
			continue
		}

		seenTitles[article.Title] = struct{}{}
		sourceCounts[article.Source]++
		if opts.SimilarityThreshold > 0 {
			acceptedTitles = append(acceptedTitles, article.Title)
		}
		kept = append(kept, article)
	}
	return kept
}

func nearDuplicate(title string, accepted []string, threshold float64) bool {
	for _, other := range accepted {
		if jaccardSimilarity(title, other) > threshold {
			return true
		}
	}
	return false
}

// jaccardSimilarity compares the lowercased word sets of two titles.
func jaccardSimilarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}
