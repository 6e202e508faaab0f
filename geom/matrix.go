package geom

import (
	"github.com/chewxy/math32"
	"golang.org/x/image/math/f64"
)

// Matrix is a 2D affine transformation in row major order:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation by p.
func Translate(p Point) Matrix {
	return Matrix{A: 1, C: p.X, E: 1, F: p.Y}
}

// Scale returns a scaling by sx and sy around the origin.
func Scale(sx, sy float32) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate returns a rotation by the angle in radians. With the y axis
// pointing down a positive angle turns clockwise on screen.
func Rotate(angle float32) Matrix {
	s, c := math32.Sincos(angle)
	return Matrix{A: c, B: -s, D: s, E: c}
}

// RotateDeg returns a rotation by deg degrees. Multiples of 90
// use exact sine and cosine values.
func RotateDeg(deg int) Matrix {
	switch ((deg % 360) + 360) % 360 {
	case 0:
		return Identity()
	case 90:
		return Matrix{B: -1, D: 1}
	case 180:
		return Matrix{A: -1, E: -1}
	case 270:
		return Matrix{B: 1, D: -1}
	}
	return Rotate(float32(deg) * math32.Pi / 180)
}

// Mul returns the product m*n: the resulting matrix applies n first, then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float32 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix. A singular matrix inverts to the identity.
func (m Matrix) Invert() Matrix {
	det := m.Det()
	if det == 0 {
		return Identity()
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}
}

// Apply transforms the point p.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// ApplyVector transforms the vector v, ignoring the translation.
func (m Matrix) ApplyVector(v Point) Point {
	return Point{
		X: m.A*v.X + m.B*v.Y,
		Y: m.D*v.X + m.E*v.Y,
	}
}

// MapRect maps the four corners of r and returns their bounding box.
func (m Matrix) MapRect(r Rect) Rect {
	c := r.Corners()
	out := Rect{Min: m.Apply(c[0]), Max: m.Apply(c[0])}
	for _, p := range c[1:] {
		q := m.Apply(p)
		out.Min.X = math32.Min(out.Min.X, q.X)
		out.Min.Y = math32.Min(out.Min.Y, q.Y)
		out.Max.X = math32.Max(out.Max.X, q.X)
		out.Max.Y = math32.Max(out.Max.Y, q.Y)
	}
	return out
}

// ScaleFactor returns the average linear scale of the matrix.
func (m Matrix) ScaleFactor() float32 {
	return math32.Sqrt(math32.Abs(m.Det()))
}

// Eq reports whether all the elements are equal within Eps.
func (m Matrix) Eq(n Matrix) bool {
	return Equal(m.A, n.A) && Equal(m.B, n.B) && Equal(m.C, n.C) &&
		Equal(m.D, n.D) && Equal(m.E, n.E) && Equal(m.F, n.F)
}

// Aff3 converts the matrix to the form used by golang.org/x/image/draw.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m.A), float64(m.B), float64(m.C),
		float64(m.D), float64(m.E), float64(m.F),
	}
}
