// Package merge answers Kruskal-style connectivity queries over a set of junction points.
//
// What & Why
//
//   - Every pair of points is a candidate connection weighted by its Euclidean distance.
//     Processing candidates from shortest to longest and joining their circuits with a
//     disjoint-set is Kruskal's algorithm; this package stops at the moments callers care about
//     instead of materializing a spanning tree.
//
//   - Bottleneck edge: the connection whose merge leaves exactly one circuit. Its length is the
//     smallest threshold at which "connect every pair closer than the threshold" links all points,
//     and equals the heaviest edge of any minimum spanning tree.
//
//   - Circuit sizes after k connections: how the points are clustered after the k shortest
//     candidate connections have been processed.
//
// Queries Provided
//
//   - BottleneckMerge(points []junction.Point) (Result, error)
//
//   - Strategy: build all n·(n−1)/2 pairs, stable-sort by distance, insert point indices into a
//     fresh dsu.DisjointSet, union pair by pair, stop as soon as Count() == 1.
//
//   - Connect(points []junction.Point, connections int) (Circuits, error)
//
//   - Strategy: same sorted pair stream, but process exactly the first `connections` pairs
//     (pairs whose endpoints already share a circuit still count), then report circuit sizes.
//
//   - Pairs(points []junction.Point) []Pair
//
//   - The sorted candidate list itself, for callers that want to drive their own loop.
//
// Determinism
//
//	Pairs are generated in row-major order (i ascending, then j ascending) and sorted with a
//	stable sort, so equal distances keep generation order. When several edges share the
//	bottleneck length, which one is reported depends on that order; the length does not.
//
// Complexity
//
//   - Time:  O(n² log n) for pair generation and sorting; the union loop is O(n² · α(n)).
//   - Space: O(n²) for the materialized pair list. This is the scaling limit: beyond a few
//     thousand points, an incremental edge generator would be needed.
//
// Error Conditions
//
//   - ErrInsufficientPoints: BottleneckMerge with fewer than 2 points, or Connect with none.
//   - ErrNoMergeOccurred:    the union loop ended with more than one circuit (not reachable for
//     valid input, checked anyway).
//   - ErrBadConnections:     Connect with a negative connection count.
//
// Every query builds its own disjoint-set, so concurrent queries on different inputs need no
// coordination.
package merge
