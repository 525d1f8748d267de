package parser

import "sort"

// sortByScoreDesc orders scored candidates by descending score, preserving
// insertion order for ties (stable sort), matching the output-vector
// invariant every field-class collection must satisfy.
func sortByScoreDesc[T any](candidates []Scored[T]) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}
