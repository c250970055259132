// Package dsu defines sentinel errors for disjoint-set operations.
package dsu

import "errors"

// Sentinel errors for disjoint-set operations.
var (
	// ErrDuplicateElement indicates Insert was called with an element that is already present.
	// The structure is left unchanged.
	ErrDuplicateElement = errors.New("dsu: element already inserted")

	// ErrUnknownElement indicates an operation referenced an element that was never inserted.
	// The structure is left unchanged.
	ErrUnknownElement = errors.New("dsu: element not found")
)
