// Package dsu provides a generic disjoint-set (union-find) container over any
// comparable element type.
//
// What:
//
//   - DisjointSet[T] tracks a partition of inserted elements into non-overlapping sets.
//   - Elements are mapped to integer keys in insertion order (0..n-1); keys are stable and never reused.
//   - Find walks the parent forest to the root and flattens the visited path (path compression).
//   - Union attaches the smaller component under the larger one (union by size).
//
// Why:
//
//   - Kruskal-style greedy merging: process edges by weight, skip edges that close a cycle.
//   - Connectivity queries: "are a and b in the same cluster?" in near-constant amortized time.
//   - Component bookkeeping: number of clusters and the size of each one at any moment.
//
// Tie-break:
//
//	When both roots have the same size, Union(a, b) attaches the root of b under the root of a.
//	The rule is deterministic so repeated runs over the same input produce the same forest.
//
// Complexity:
//
//   - Insert:    O(1) amortized.
//   - Find:      O(α(n)) amortized (α = inverse Ackermann).
//   - Union:     O(α(n)) amortized.
//   - IsSameSet: O(α(n)) amortized.
//   - Count/Len: O(1).
//   - Sizes:     O(n).
//
// Errors:
//
//   - ErrDuplicateElement: Insert was called with an element that already has a key.
//   - ErrUnknownElement:   Union referenced an element that was never inserted.
//
// A DisjointSet is not safe for concurrent use. Build one instance per query.
package dsu
