// Package junction models junction boxes as points on an integer 3D lattice.
//
// It provides:
//
//   - Point: a comparable {X, Y, Z} value, usable directly as a map or dsu key.
//   - Distance: straight-line (Euclidean) distance, computed with gonum's spatial/r3.
//   - Parse / ParseString: read one "x,y,z" point per line.
//
// Errors:
//
//   - ErrMalformedPoint: a non-blank line is not three comma-separated integers.
//     Returned wrapped with the 1-based line number.
package junction
