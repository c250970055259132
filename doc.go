// Package circuits connects junction boxes in 3D space, shortest connection first,
// and answers questions about the circuits that form along the way.
//
// What is in the box?
//
//	A small, dependency-light toolkit built around one idea, Kruskal's greedy merge:
//		• dsu/          generic disjoint-set (union-find) with path compression and union by size
//		• junction/     integer 3D points, Euclidean distance, "x,y,z" line parser
//		• merge/        bottleneck connection query and circuit sizes after k connections
//		• cmd/circuits  command-line front end (bottleneck, connect)
//
// Quick example:
//
//	points, _ := junction.ParseString("0,0,0\n10,0,0\n0,10,0")
//	res, _ := merge.BottleneckMerge(points)
//	// res.A = 0,0,0  res.B = 0,10,0  res.Distance = 10
//
// The bottleneck connection is the heaviest edge of a minimum spanning tree over the
// points: the smallest distance threshold at which every junction ends up in one circuit.
//
//	go install github.com/katalvlaran/circuits/cmd/circuits@latest
package circuits
