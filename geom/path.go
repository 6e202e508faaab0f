package geom

import "github.com/chewxy/math32"

// Path is a set of closed polygonal contours. The last point of a contour
// connects back to the first one.
type Path [][]Point

// RectPath returns r as a single clockwise contour.
func RectPath(r Rect) Path {
	c := r.Corners()
	return Path{c[:]}
}

// Ellipse returns the ellipse inscribed in r flattened to n segments.
func Ellipse(r Rect, n int) []Point {
	if n < 3 {
		n = 3
	}
	c := r.Center()
	rx, ry := r.Dx()/2, r.Dy()/2
	pts := make([]Point, n)
	for i := range pts {
		s, co := math32.Sincos(2 * math32.Pi * float32(i) / float32(n))
		pts[i] = Pt(c.X+rx*co, c.Y+ry*s)
	}
	return pts
}

// Transform returns the path mapped through m.
func (p Path) Transform(m Matrix) Path {
	out := make(Path, len(p))
	for i, c := range p {
		out[i] = make([]Point, len(c))
		for j, pt := range c {
			out[i][j] = m.Apply(pt)
		}
	}
	return out
}

// Bounds returns the bounding box of all the contours.
func (p Path) Bounds() Rect {
	var b Rect
	first := true
	for _, c := range p {
		for _, pt := range c {
			if first {
				b = Rect{Min: pt, Max: pt}
				first = false
				continue
			}
			b.Min.X = math32.Min(b.Min.X, pt.X)
			b.Min.Y = math32.Min(b.Min.Y, pt.Y)
			b.Max.X = math32.Max(b.Max.X, pt.X)
			b.Max.Y = math32.Max(b.Max.Y, pt.Y)
		}
	}
	return b
}

// Area returns the signed area of a contour. Clockwise contours on a
// y-down screen have a positive area.
func Area(c []Point) float32 {
	var a float32
	for i, p := range c {
		q := c[(i+1)%len(c)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Reverse returns the contour in the opposite winding direction.
func Reverse(c []Point) []Point {
	out := make([]Point, len(c))
	for i, p := range c {
		out[len(c)-1-i] = p
	}
	return out
}

// Clockwise returns the path with every contour wound clockwise.
func (p Path) Clockwise() Path {
	out := make(Path, len(p))
	for i, c := range p {
		if Area(c) < 0 {
			c = Reverse(c)
		}
		out[i] = c
	}
	return out
}

// Hole returns r with p cut out of it. The hole contours are wound against
// the outer rectangle, so the result fills correctly under both the
// non-zero and the even-odd rule.
func Hole(r Rect, p Path) Path {
	out := RectPath(r)
	for _, c := range p.Clockwise() {
		out = append(out, Reverse(c))
	}
	return out
}

// Segment returns the quadrilateral covering the line from a to b with the given width.
func Segment(a, b Point, width float32) []Point {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return nil
	}
	n := Pt(-d.Y/l, d.X/l).Mul(width / 2)
	return []Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}
