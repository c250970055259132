package merge

import (
	"github.com/katalvlaran/circuits/dsu"
	"github.com/katalvlaran/circuits/junction"
)

// Connect processes the shortest `connections` candidate pairs and reports the resulting circuits.
//
// Every processed pair counts toward the limit, including pairs whose endpoints were
// already in the same circuit. If there are fewer pairs than requested, all are processed
// and Circuits.Connections reports the actual number.
//
// Error Conditions:
//   - ErrInsufficientPoints : len(points) == 0.
//   - ErrBadConnections     : connections < 0.
//
// Complexity: O(n² log n) time, O(n²) memory.
func Connect(points []junction.Point, connections int) (Circuits, error) {
	if len(points) == 0 {
		return Circuits{}, ErrInsufficientPoints
	}
	if connections < 0 {
		return Circuits{}, ErrBadConnections
	}

	pairs := Pairs(points)
	if connections > len(pairs) {
		connections = len(pairs)
	}

	circuits := dsu.WithCapacity[int](len(points))
	for i := range points {
		if _, err := circuits.Insert(i); err != nil {
			return Circuits{}, err
		}
	}
	for _, p := range pairs[:connections] {
		if _, err := circuits.Union(p.I, p.J); err != nil {
			return Circuits{}, err
		}
	}

	return Circuits{Sizes: circuits.Sizes(), Connections: connections}, nil
}
