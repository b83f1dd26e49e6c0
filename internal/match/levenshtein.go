package match

// Levenshtein computes the edit distance between two strings, counting
// single-rune insertions, deletions and substitutions.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			above := row[i]
			row[i] = min(row[i]+1, row[i-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(ra)]
}

// Similarity returns 1 - distance/maxLen over the normalized names.
// 1.0 means identical after normalization, 0.0 means nothing in common.
func Similarity(a, b string) float64 {
	na, nb := []rune(NormalizeName(a)), []rune(NormalizeName(b))

	maxLen := max(len(na), len(nb))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(string(na), string(nb)))/float64(maxLen)
}
