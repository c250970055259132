package junction

import (
	"errors"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrMalformedPoint indicates an input line that is not of the form "x,y,z".
var ErrMalformedPoint = errors.New("junction: malformed point")

// Point is a junction box position with integer coordinates.
type Point struct {
	X, Y, Z int
}

// String formats p the same way Parse reads it.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + "," + strconv.Itoa(p.Z)
}

// Vec converts p to a gonum vector.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return r3.Norm(r3.Sub(a.Vec(), b.Vec()))
}
