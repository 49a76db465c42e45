package strkit

import "math"

// Levenshtein computes the edit distance between a and b: the minimum number
// of single-character insertions, deletions and substitutions required to
// turn one into the other. Inputs are compared rune-wise.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	// Single row of the DP table, rolled over per character of a.
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := row[0] // table cell (i-1, j-1)
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur := min(row[j]+1, row[j-1]+1, prev+cost)
			prev = row[j]
			row[j] = cur
		}
	}

	return row[len(rb)]
}

// Similarity scores how alike two strings are as a percentage in [0, 100],
// derived from their Levenshtein distance relative to the longer input. The
// distance ratio is rounded to two decimal places before scaling. Two empty
// strings are 100% similar by convention.
func Similarity(a, b string) int {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 100
	}

	ratio := math.Round(float64(Levenshtein(a, b))/float64(maxLen)*100) / 100
	return int(math.Round((1 - ratio) * 100))
}
