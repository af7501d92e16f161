package match

import (
	"cmp"
	"slices"
	"strings"
)

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-character edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Suggest returns the candidates close enough to name to be a likely typo,
// nearest first. Comparison is case-insensitive.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}

	needle := strings.ToLower(name)
	limit := max(1, len(needle)/3)

	var found []scored

	for _, c := range candidates {
		d := Levenshtein(needle, strings.ToLower(c))
		if d <= limit {
			found = append(found, scored{name: c, dist: d})
		}
	}

	slices.SortFunc(found, func(a, b scored) int {
		if c := cmp.Compare(a.dist, b.dist); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	res := make([]string, len(found))
	for i, f := range found {
		res[i] = f.name
	}

	return res
}
