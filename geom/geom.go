// Package geom provides the float32 value types used by the cropper engine:
// points, sizes, axis aligned rectangles, 2D affine matrices and polygonal paths.
// The types are owned by the engine and converted to toolkit types at the boundary.
package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Eps is the tolerance used when comparing coordinates.
const Eps = 1e-3

// Point is a 2D point or vector.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Len returns the euclidean length of the vector.
func (p Point) Len() float32 {
	return math32.Hypot(p.X, p.Y)
}

// Eq reports whether p and q are equal within Eps.
func (p Point) Eq(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Size is a width and height pair.
type Size struct {
	W, H float32
}

// Sz is shorthand for Size{W: w, H: h}.
func Sz(w, h float32) Size {
	return Size{W: w, H: h}
}

// Aspect returns the width to height ratio, or 0 for a zero height.
func (s Size) Aspect() float32 {
	if s.H == 0 {
		return 0
	}
	return s.W / s.H
}

// Equal reports whether a and b differ by less than Eps.
func Equal(a, b float32) bool {
	return math32.Abs(a-b) < Eps
}
