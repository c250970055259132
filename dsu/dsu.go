package dsu

import "sort"

// DisjointSet is a union-find forest over elements of type T.
//
// keys maps each inserted element to its integer key.
// parent[k] == k marks k as a root; size[k] is meaningful only at roots.
// count is the number of distinct roots (components).
type DisjointSet[T comparable] struct {
	keys   map[T]int
	parent []int
	size   []int
	count  int
}

// New returns an empty DisjointSet.
func New[T comparable]() *DisjointSet[T] {
	return WithCapacity[T](0)
}

// WithCapacity returns an empty DisjointSet with storage preallocated for n elements.
// A negative n is treated as zero.
func WithCapacity[T comparable](n int) *DisjointSet[T] {
	if n < 0 {
		n = 0
	}

	return &DisjointSet[T]{
		keys:   make(map[T]int, n),
		parent: make([]int, 0, n),
		size:   make([]int, 0, n),
	}
}

// FromSlice builds a DisjointSet holding every item as its own singleton set,
// inserted in slice order. It stops at the first duplicate and returns ErrDuplicateElement.
func FromSlice[T comparable](items []T) (*DisjointSet[T], error) {
	ds := WithCapacity[T](len(items))
	for _, item := range items {
		if _, err := ds.Insert(item); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// Insert adds item as a new singleton set and returns its key.
//
// Keys are assigned 0, 1, 2, ... in insertion order. If item is already present,
// Insert returns its existing key and ErrDuplicateElement without touching the structure.
func (ds *DisjointSet[T]) Insert(item T) (int, error) {
	if key, ok := ds.keys[item]; ok {
		return key, ErrDuplicateElement
	}

	key := len(ds.parent)
	ds.keys[item] = key
	ds.parent = append(ds.parent, key)
	ds.size = append(ds.size, 1)
	ds.count++

	return key, nil
}

// Key returns the key assigned to item at insertion, without walking the forest.
func (ds *DisjointSet[T]) Key(item T) (int, bool) {
	key, ok := ds.keys[item]

	return key, ok
}

// Find returns the root key of the component containing item.
// The second result is false if item was never inserted.
func (ds *DisjointSet[T]) Find(item T) (int, bool) {
	key, ok := ds.keys[item]
	if !ok {
		return 0, false
	}

	return ds.root(key), true
}

// Union merges the components containing a and b.
//
// It returns (true, nil) when two distinct components were merged and (false, nil)
// when a and b already share a root. If either element is unknown it returns
// ErrUnknownElement and leaves the structure unchanged.
//
// The smaller component is attached under the larger one. On equal sizes the root
// of b is attached under the root of a.
func (ds *DisjointSet[T]) Union(a, b T) (bool, error) {
	keyA, okA := ds.keys[a]
	keyB, okB := ds.keys[b]
	if !okA || !okB {
		return false, ErrUnknownElement
	}

	return ds.unionKeys(keyA, keyB), nil
}

// IsSameSet reports whether a and b are both present and belong to the same component.
func (ds *DisjointSet[T]) IsSameSet(a, b T) bool {
	rootA, okA := ds.Find(a)
	if !okA {
		return false
	}
	rootB, okB := ds.Find(b)

	return okB && rootA == rootB
}

// Count returns the current number of disjoint components.
func (ds *DisjointSet[T]) Count() int {
	return ds.count
}

// Len returns the number of inserted elements.
func (ds *DisjointSet[T]) Len() int {
	return len(ds.parent)
}

// SizeOf returns the number of elements in the component containing item.
func (ds *DisjointSet[T]) SizeOf(item T) (int, bool) {
	root, ok := ds.Find(item)
	if !ok {
		return 0, false
	}

	return ds.size[root], true
}

// Sizes returns the size of every component, largest first.
// The result has exactly Count() entries and sums to Len().
func (ds *DisjointSet[T]) Sizes() []int {
	sizes := make([]int, 0, ds.count)
	for key, p := range ds.parent {
		if p == key {
			sizes = append(sizes, ds.size[key])
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// root walks from key to its root, then points every key on the path directly at the root.
func (ds *DisjointSet[T]) root(key int) int {
	r := key
	for ds.parent[r] != r {
		r = ds.parent[r]
	}
	for ds.parent[key] != r {
		key, ds.parent[key] = ds.parent[key], r
	}

	return r
}

// unionKeys merges the components of two valid keys by size.
func (ds *DisjointSet[T]) unionKeys(keyA, keyB int) bool {
	rootA, rootB := ds.root(keyA), ds.root(keyB)
	if rootA == rootB {
		return false
	}

	// Keep rootA as the absorbing root; only a strictly larger b wins.
	if ds.size[rootA] < ds.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	ds.parent[rootB] = rootA
	ds.size[rootA] += ds.size[rootB]
	ds.count--

	return true
}
