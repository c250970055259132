package merge_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuits/junction"
	"github.com/katalvlaran/circuits/merge"
)

// referenceInput is the 20-junction sample whose bottleneck pair is
// (216,146,977) and (117,168,530).
const referenceInput = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689`

func referencePoints(t testing.TB) []junction.Point {
	t.Helper()
	points, err := junction.ParseString(referenceInput)
	require.NoError(t, err)
	require.Len(t, points, 20)

	return points
}

// randomPoints returns n points with coordinates in [0, span), seeded for reproducibility.
func randomPoints(n, span int, seed int64) []junction.Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]junction.Point, n)
	for i := range points {
		points[i] = junction.Point{X: r.Intn(span), Y: r.Intn(span), Z: r.Intn(span)}
	}

	return points
}

// primBottleneck computes the heaviest MST edge with a dense O(n²) Prim, independent of dsu.
func primBottleneck(points []junction.Point) float64 {
	n := len(points)
	inTree := make([]bool, n)
	best := make([]float64, n)
	for i := range best {
		best[i] = math.Inf(1)
	}
	best[0] = 0
	heaviest := 0.0
	for step := 0; step < n; step++ {
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u == -1 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		heaviest = math.Max(heaviest, best[u])
		for v := 0; v < n; v++ {
			if d := junction.Distance(points[u], points[v]); !inTree[v] && d < best[v] {
				best[v] = d
			}
		}
	}

	return heaviest
}

func TestPairs_CountAndOrder(t *testing.T) {
	points := randomPoints(30, 100, 7)
	pairs := merge.Pairs(points)
	require.Len(t, pairs, 30*29/2)

	for k, p := range pairs {
		assert.Less(t, p.I, p.J, "pair %d must have I < J", k)
		assert.Equal(t, junction.Distance(points[p.I], points[p.J]), p.Distance)
		if k > 0 {
			assert.LessOrEqual(t, pairs[k-1].Distance, p.Distance, "pairs must be sorted ascending")
		}
	}
}

// TestPairs_StableTies checks equal distances keep row-major generation order.
func TestPairs_StableTies(t *testing.T) {
	// Unit square: four sides of length 1, two diagonals of length √2.
	points := []junction.Point{{X: 0}, {X: 1}, {Y: 1}, {X: 1, Y: 1}}
	pairs := merge.Pairs(points)
	require.Len(t, pairs, 6)

	got := make([][2]int, 0, 4)
	for _, p := range pairs[:4] {
		got = append(got, [2]int{p.I, p.J})
	}
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, got)
}

func TestPairs_TooFew(t *testing.T) {
	assert.Empty(t, merge.Pairs(nil))
	assert.Empty(t, merge.Pairs([]junction.Point{{X: 1}}))
}

func TestBottleneckMerge_InsufficientPoints(t *testing.T) {
	_, err := merge.BottleneckMerge(nil)
	assert.ErrorIs(t, err, merge.ErrInsufficientPoints)

	res, err := merge.BottleneckMerge([]junction.Point{{X: 1, Y: 2, Z: 3}})
	assert.ErrorIs(t, err, merge.ErrInsufficientPoints)
	assert.Zero(t, res)
}

func TestBottleneckMerge_TwoPoints(t *testing.T) {
	points := []junction.Point{{X: 1}, {X: 4, Y: 4}}
	res, err := merge.BottleneckMerge(points)
	require.NoError(t, err)
	assert.Equal(t, points[0], res.A)
	assert.Equal(t, points[1], res.B)
	assert.Equal(t, 5.0, res.Distance)
	assert.Equal(t, 1, res.Merges)
}

// TestBottleneckMerge_Triangle: the right-angle triangle is joined by its two 10-length legs,
// never by the ≈14.14 hypotenuse.
func TestBottleneckMerge_Triangle(t *testing.T) {
	points := []junction.Point{{}, {X: 10}, {Y: 10}}
	res, err := merge.BottleneckMerge(points)
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.Distance)
	assert.Equal(t, 2, res.Merges)
	assert.Equal(t, 0, res.I, "both legs touch the origin")
	// With stable ordering the (0,2) leg is processed second.
	assert.Equal(t, 2, res.J)
}

func TestBottleneckMerge_Reference(t *testing.T) {
	points := referencePoints(t)
	res, err := merge.BottleneckMerge(points)
	require.NoError(t, err)

	assert.Equal(t, junction.Point{X: 216, Y: 146, Z: 977}, res.A)
	assert.Equal(t, junction.Point{X: 117, Y: 168, Z: 530}, res.B)
	assert.Equal(t, 10, res.I)
	assert.Equal(t, 12, res.J)
	assert.Equal(t, 19, res.Merges)
	assert.InDelta(t, math.Sqrt(99*99+22*22+447*447), res.Distance, 1e-9)
	assert.Equal(t, 25272, res.A.X*res.B.X)
}

// TestBottleneckMerge_DuplicateCoordinates: repeated points are separate junctions joined at distance 0.
func TestBottleneckMerge_DuplicateCoordinates(t *testing.T) {
	p := junction.Point{X: 3, Y: 3, Z: 3}
	res, err := merge.BottleneckMerge([]junction.Point{p, p})
	require.NoError(t, err)
	assert.Zero(t, res.Distance)
	assert.Equal(t, p, res.A)
	assert.Equal(t, p, res.B)

	res, err = merge.BottleneckMerge([]junction.Point{p, p, {X: 9, Y: 3, Z: 3}})
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Distance)
	assert.Equal(t, 2, res.Merges)
}

// TestBottleneckMerge_MatchesMST compares against the heaviest edge of an independently built MST.
func TestBottleneckMerge_MatchesMST(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		points := randomPoints(60, 1000, seed)
		res, err := merge.BottleneckMerge(points)
		require.NoError(t, err)
		assert.Equal(t, len(points)-1, res.Merges)
		assert.InDelta(t, primBottleneck(points), res.Distance, 1e-9, "seed %d", seed)
		assert.Equal(t, junction.Distance(res.A, res.B), res.Distance)
	}
}

// TestBottleneckMerge_Deterministic runs the reference input twice and expects identical answers.
func TestBottleneckMerge_Deterministic(t *testing.T) {
	points := referencePoints(t)
	first, err := merge.BottleneckMerge(points)
	require.NoError(t, err)
	second, err := merge.BottleneckMerge(points)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestConnect_Reference(t *testing.T) {
	points := referencePoints(t)
	c, err := merge.Connect(points, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, c.Connections)
	require.Len(t, c.Sizes, 11)
	assert.Equal(t, []int{5, 4, 2, 2}, c.Sizes[:4])
	assert.Equal(t, 40, c.Product(3))
}

func TestConnect_Bounds(t *testing.T) {
	points := referencePoints(t)

	c, err := merge.Connect(points, 0)
	require.NoError(t, err)
	assert.Len(t, c.Sizes, 20)
	assert.Equal(t, 1, c.Product(3))

	c, err = merge.Connect(points, 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, 190, c.Connections, "limit is clamped to the number of pairs")
	assert.Equal(t, []int{20}, c.Sizes)
	assert.Equal(t, 20, c.Product(3))
}

func TestConnect_Errors(t *testing.T) {
	_, err := merge.Connect(nil, 3)
	assert.ErrorIs(t, err, merge.ErrInsufficientPoints)

	_, err = merge.Connect([]junction.Point{{}, {X: 1}}, -1)
	assert.ErrorIs(t, err, merge.ErrBadConnections)
}

func TestConnect_SinglePoint(t *testing.T) {
	c, err := merge.Connect([]junction.Point{{X: 5}}, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, c.Sizes)
	assert.Zero(t, c.Connections)
}

func TestCircuits_Product(t *testing.T) {
	c := merge.Circuits{Sizes: []int{5, 4, 2, 1}}
	assert.Equal(t, 1, c.Product(0))
	assert.Equal(t, 1, c.Product(-3))
	assert.Equal(t, 5, c.Product(1))
	assert.Equal(t, 40, c.Product(3))
	assert.Equal(t, 40, c.Product(10))
}
