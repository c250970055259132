package merge

import (
	"sort"

	"github.com/katalvlaran/circuits/junction"
)

// Pairs returns every unordered pair of points with its distance, shortest first.
//
// Generation order is row-major (i, then j > i) and the sort is stable,
// so equal distances keep that order.
func Pairs(points []junction.Point) []Pair {
	n := len(points)
	if n < 2 {
		return nil
	}

	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j, Distance: junction.Distance(points[i], points[j])})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Distance < pairs[b].Distance
	})

	return pairs
}
