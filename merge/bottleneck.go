package merge

import (
	"github.com/katalvlaran/circuits/dsu"
	"github.com/katalvlaran/circuits/junction"
)

// BottleneckMerge finds the connection that joins all points into a single circuit.
//
// Error Conditions:
//   - ErrInsufficientPoints : len(points) < 2.
//   - ErrNoMergeOccurred    : the pair stream ran out with more than one circuit left.
//
// Steps:
//  1. Validate len(points) >= 2.
//  2. Build all pairs and stable-sort them by distance (see Pairs).
//  3. Insert point indices 0..n-1 into a fresh disjoint-set sized to n.
//     Indices, not points, are the elements: repeated coordinates stay distinct junctions.
//  4. Union pair by pair; remember every pair that performed a real merge.
//  5. Stop as soon as one circuit remains; the remembered pair is the bottleneck.
//
// Complexity: O(n² log n) time, O(n²) memory.
func BottleneckMerge(points []junction.Point) (Result, error) {
	// 1. A single point (or none) has no connection to report.
	n := len(points)
	if n < 2 {
		return Result{}, ErrInsufficientPoints
	}

	// 2. Candidate connections, shortest first.
	pairs := Pairs(points)

	// 3. One singleton circuit per point.
	circuits := dsu.WithCapacity[int](n)
	for i := 0; i < n; i++ {
		if _, err := circuits.Insert(i); err != nil {
			return Result{}, err
		}
	}

	// 4. Greedy merge loop.
	var (
		res   Result
		found bool
	)
	for _, p := range pairs {
		merged, err := circuits.Union(p.I, p.J)
		if err != nil {
			return Result{}, err
		}
		if !merged {
			// Endpoints already share a circuit.
			continue
		}
		res.Merges++
		res.I, res.J, res.Distance = p.I, p.J, p.Distance
		found = true

		// 5. Everything is connected: this merge is the bottleneck.
		if circuits.Count() == 1 {
			break
		}
	}

	if !found || circuits.Count() != 1 {
		return Result{}, ErrNoMergeOccurred
	}
	res.A, res.B = points[res.I], points[res.J]

	return res, nil
}
