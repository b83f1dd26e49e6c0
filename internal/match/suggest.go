package match

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultMinSimilarity is the lowest similarity Suggest reports.
const DefaultMinSimilarity = 0.5

// Candidate is a scored suggestion.
type Candidate struct {
	Name  string
	Score float64
}

// Rank scores every candidate against name and returns those at or above
// minScore, best first. Ties are broken by name so the order is stable.
func Rank(name string, candidates []string, minScore float64) []Candidate {
	var out []Candidate

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(name, c)
		if prefixMatch(name, c) {
			score = max(score, DefaultMinSimilarity)
		}

		if score >= minScore {
			out = append(out, Candidate{Name: c, Score: score})
		}
	}

	slices.SortFunc(out, func(x, y Candidate) int {
		if c := cmp.Compare(y.Score, x.Score); c != 0 {
			return c
		}

		return cmp.Compare(x.Name, y.Name)
	})

	return out
}

// Suggest returns up to limit candidate names close to name.
func Suggest(name string, candidates []string, limit int) []string {
	ranked := Rank(name, candidates, DefaultMinSimilarity)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	return names
}

// prefixMatch reports whether one normalized name starts with the other,
// e.g. "Batch" and "Batchfile". Single-rune names never match this way.
func prefixMatch(a, b string) bool {
	na, nb := NormalizeName(a), NormalizeName(b)
	if len([]rune(na)) < 2 || len([]rune(nb)) < 2 {
		return false
	}

	return strings.HasPrefix(na, nb) || strings.HasPrefix(nb, na)
}
