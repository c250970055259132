// Package merge defines sentinel errors and result types for cluster merge queries.
package merge

import (
	"errors"

	"github.com/katalvlaran/circuits/junction"
)

// ErrInsufficientPoints indicates the query needs more points than were supplied.
var ErrInsufficientPoints = errors.New("merge: not enough points")

// ErrNoMergeOccurred indicates the merge loop finished without joining every point into one circuit.
var ErrNoMergeOccurred = errors.New("merge: points were never joined into a single circuit")

// ErrBadConnections indicates a negative connection count was passed to Connect.
var ErrBadConnections = errors.New("merge: connection count must be non-negative")

// Pair is a candidate connection between points I and J (I < J) of the input slice.
type Pair struct {
	I, J     int
	Distance float64
}

// Result describes the bottleneck connection: the merge that joined the last two circuits.
//
// Fields:
//
//	A, B:     endpoint points, A = points[I], B = points[J].
//	I, J:     their indices in the input slice (I < J).
//	Distance: Euclidean length of the connection.
//	Merges:   number of real merges performed, n−1 on success.
type Result struct {
	A, B     junction.Point
	I, J     int
	Distance float64
	Merges   int
}

// Circuits is the clustering left after a fixed number of connections.
type Circuits struct {
	// Sizes holds the size of every circuit, largest first.
	Sizes []int

	// Connections is how many candidate pairs were processed.
	Connections int
}

// Product multiplies the sizes of the top largest circuits.
// Fewer circuits than top means all of them; top <= 0 gives 1.
func (c Circuits) Product(top int) int {
	product := 1
	for i := 0; i < top && i < len(c.Sizes); i++ {
		product *= c.Sizes[i]
	}

	return product
}
