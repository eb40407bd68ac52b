package utils

import "math"

// Maxima returns the items whose score is highest, in input order.
// scores[i] is the score of items[i].
func Maxima[T any](items []T, scores []float64) []T {
	var best []T
	top := math.Inf(-1)
	for i, item := range items {
		if scores[i] > top {
			top = scores[i]
			best = best[:0]
		}
		if scores[i] == top {
			best = append(best, item)
		}
	}
	return best
}
