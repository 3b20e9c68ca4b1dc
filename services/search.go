package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// minSimilarity is the cutoff below which a candidate name is considered
// unrelated to the query rather than a near miss.
const minSimilarity = 0.4

// normalizeInput folds case and strips diacritics so "Café" matches "cafe".
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

// createMatcher builds a closest-match index over the keyword list.
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity scores two strings in [0,1] by Levenshtein distance.
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// SuggestStoreNames returns up to limit store names closest to the query,
// best match first. Names too far from the query are dropped entirely, so a
// nonsense query yields no suggestions instead of random ones.
func SuggestStoreNames(query string, names []string, limit int) []string {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" || len(names) == 0 || limit <= 0 {
		return nil
	}

	originals := make(map[string]string, len(names))
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		n := normalizeInput(name)
		if n == "" {
			continue
		}
		if _, seen := originals[n]; !seen {
			normalized = append(normalized, n)
		}
		originals[n] = name
	}
	if len(normalized) == 0 {
		return nil
	}

	matcher := createMatcher(normalized)
	candidates := matcher.ClosestN(normalizedQuery, limit*3)

	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(candidates))
	for _, candidate := range candidates {
		score := calculateSimilarity(normalizedQuery, candidate)
		if strings.Contains(candidate, normalizedQuery) && score < minSimilarity {
			score = minSimilarity
		}
		if score >= minSimilarity {
			ranked = append(ranked, scored{name: originals[candidate], score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	suggestions := make([]string, 0, len(ranked))
	for _, r := range ranked {
		suggestions = append(suggestions, r.name)
	}
	return suggestions
}
