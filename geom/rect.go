package geom

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
	"github.com/esimov/cropper/utils"
)

// Rect is an axis aligned rectangle. A well formed rectangle has Min <= Max;
// the constraint helpers may produce inverted rectangles, which count as empty.
type Rect struct {
	Min, Max Point
}

// R returns the rectangle with the given corners, without normalising them.
func R(x0, y0, x1, y1 float32) Rect {
	return Rect{Min: Pt(x0, y0), Max: Pt(x1, y1)}
}

// RectAt returns the rectangle with origin o and size s.
func RectAt(o Point, s Size) Rect {
	return Rect{Min: o, Max: Pt(o.X+s.W, o.Y+s.H)}
}

// FromImageRect converts an integer rectangle.
func FromImageRect(r image.Rectangle) Rect {
	return R(float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y))
}

// ImageRect rounds the rectangle outwards to integer coordinates.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math32.Floor(r.Min.X)), int(math32.Floor(r.Min.Y)),
		int(math32.Ceil(r.Max.X)), int(math32.Ceil(r.Max.Y)),
	)
}

func (r Rect) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() float32 { return r.Max.X - r.Min.X }

// Dy returns the height of the rectangle.
func (r Rect) Dy() float32 { return r.Max.Y - r.Min.Y }

// Size returns the rectangle dimensions.
func (r Rect) Size() Size { return Size{W: r.Dx(), H: r.Dy()} }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Add translates the rectangle by p.
func (r Rect) Add(p Point) Rect {
	return Rect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float32) Rect {
	return R(r.Min.X+d, r.Min.Y+d, r.Max.X-d, r.Max.Y-d)
}

// Canon returns the rectangle with Min and Max swapped where needed.
func (r Rect) Canon() Rect {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return R(
		utils.Min(r.Min.X, s.Min.X), utils.Min(r.Min.Y, s.Min.Y),
		utils.Max(r.Max.X, s.Max.X), utils.Max(r.Max.Y, s.Max.Y),
	)
}

// Intersect returns the largest rectangle contained by both r and s.
func (r Rect) Intersect(s Rect) Rect {
	return R(
		utils.Max(r.Min.X, s.Min.X), utils.Max(r.Min.Y, s.Min.Y),
		utils.Min(r.Max.X, s.Max.X), utils.Min(r.Max.Y, s.Max.Y),
	)
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// In reports whether r is inside b, within Eps.
func (r Rect) In(b Rect) bool {
	return r.Min.X >= b.Min.X-Eps && r.Min.Y >= b.Min.Y-Eps &&
		r.Max.X <= b.Max.X+Eps && r.Max.Y <= b.Max.Y+Eps
}

// Eq reports whether both corners are equal within Eps.
func (r Rect) Eq(s Rect) bool {
	return r.Min.Eq(s.Min) && r.Max.Eq(s.Max)
}

// SameSize reports whether r and s have the same dimensions within Eps.
func (r Rect) SameSize(s Rect) bool {
	return Equal(r.Dx(), s.Dx()) && Equal(r.Dy(), s.Dy())
}

// Corners returns the four corners in clockwise screen order starting at Min.
func (r Rect) Corners() [4]Point {
	return [4]Point{r.Min, Pt(r.Max.X, r.Min.Y), r.Max, Pt(r.Min.X, r.Max.Y)}
}

// Rel returns the point at the relative position rel inside the rectangle.
func (r Rect) Rel(rel Point) Point {
	return Pt(r.Min.X+rel.X*r.Dx(), r.Min.Y+rel.Y*r.Dy())
}

// ConstrainOffset moves r inside bounds without changing its size.
// On an axis where r is larger than bounds it gets centered.
func (r Rect) ConstrainOffset(bounds Rect) Rect {
	w, h := r.Dx(), r.Dy()
	x := offsetAxis(r.Min.X, w, bounds.Min.X, bounds.Max.X)
	y := offsetAxis(r.Min.Y, h, bounds.Min.Y, bounds.Max.Y)
	return RectAt(Pt(x, y), Sz(w, h))
}

func offsetAxis(pos, size, lo, hi float32) float32 {
	if size > hi-lo {
		return lo + (hi-lo-size)/2
	}
	return utils.Clamp(pos, lo, hi-size)
}

// ConstrainResize clamps every edge of r into bounds independently.
// The result may be empty if r lies outside of bounds.
func (r Rect) ConstrainResize(bounds Rect) Rect {
	return R(
		utils.Max(r.Min.X, bounds.Min.X),
		utils.Max(r.Min.Y, bounds.Min.Y),
		utils.Min(r.Max.X, bounds.Max.X),
		utils.Min(r.Max.Y, bounds.Max.Y),
	)
}

// KeepAspect adjusts r, a resized version of old, so that it has old's aspect ratio.
// The edges that did not move stay in place; an axis where both or none
// of the edges moved keeps its center. Degenerate input is returned as is.
func (r Rect) KeepAspect(old Rect) Rect {
	if old.Empty() {
		return r
	}
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return r
	}
	aspect := old.Dx() / old.Dy()
	movedX := !Equal(r.Min.X, old.Min.X) || !Equal(r.Max.X, old.Max.X)
	movedY := !Equal(r.Min.Y, old.Min.Y) || !Equal(r.Max.Y, old.Max.Y)

	switch {
	case movedX && !movedY:
		h = w / aspect
	case movedY && !movedX:
		w = h * aspect
	default:
		// Both axes changed: follow the dominant relative change.
		if w/old.Dx() >= h/old.Dy() {
			h = w / aspect
		} else {
			w = h * aspect
		}
	}
	x0, x1 := anchorSpan(r.Min.X, r.Max.X, old.Min.X, old.Max.X, w)
	y0, y1 := anchorSpan(r.Min.Y, r.Max.Y, old.Min.Y, old.Max.Y, h)
	return R(x0, y0, x1, y1)
}

// ScaleToFit shrinks r uniformly until it fits inside bounds. The scaling pivot
// is the anchor derived from old, the same one used by KeepAspect.
func (r Rect) ScaleToFit(bounds, old Rect) Rect {
	if r.Empty() || r.In(bounds) {
		return r
	}
	px := pivotAxis(r.Min.X, r.Max.X, old.Min.X, old.Max.X)
	py := pivotAxis(r.Min.Y, r.Max.Y, old.Min.Y, old.Max.Y)

	s := utils.Min(float32(1), utils.Min(bounds.Dx()/r.Dx(), bounds.Dy()/r.Dy()))
	s = fitAxis(s, r.Min.X, r.Max.X, px, bounds.Min.X, bounds.Max.X)
	s = fitAxis(s, r.Min.Y, r.Max.Y, py, bounds.Min.Y, bounds.Max.Y)
	s = utils.Max(s, 0)

	p := Pt(px, py)
	if s*r.Dx() < Eps || s*r.Dy() < Eps {
		return Rect{Min: p, Max: p}
	}
	scaled := Rect{
		Min: p.Add(r.Min.Sub(p).Mul(s)),
		Max: p.Add(r.Max.Sub(p).Mul(s)),
	}
	return scaled.ConstrainOffset(bounds)
}

// fitAxis lowers the scale s so that the edges e0 and e1, scaled around
// the pivot p, stay inside [lo, hi]. Pivots outside the bounds are left
// to the final offset constraint.
func fitAxis(s, e0, e1, p, lo, hi float32) float32 {
	if p < lo || p > hi {
		return s
	}
	for _, e := range [2]float32{e0, e1} {
		d := e - p
		switch {
		case d < 0 && p+d*s < lo:
			s = (lo - p) / d
		case d > 0 && p+d*s > hi:
			s = (hi - p) / d
		}
	}
	return s
}

// SetSize replaces the size of a degenerate r with the smallest size having
// old's aspect ratio and a shorter side of minSize. The edges that did not
// move relative to old stay anchored.
func (r Rect) SetSize(old Rect, minSize float32) Rect {
	w, h := minSize, minSize
	if !old.Empty() {
		if a := old.Dx() / old.Dy(); a >= 1 {
			w = minSize * a
		} else {
			h = minSize / a
		}
	}
	x0, x1 := anchorSpan(r.Min.X, r.Max.X, old.Min.X, old.Max.X, w)
	y0, y1 := anchorSpan(r.Min.Y, r.Max.Y, old.Min.Y, old.Max.Y, h)
	return R(x0, y0, x1, y1)
}

// LimitSize shrinks r uniformly around its center until it is no larger than
// bounds on either axis.
func (r Rect) LimitSize(bounds Rect) Rect {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return r
	}
	s := utils.Min(bounds.Dx()/w, bounds.Dy()/h)
	if s >= 1 {
		return r
	}
	c := r.Center()
	w, h = w*s, h*s
	return R(c.X-w/2, c.Y-h/2, c.X+w/2, c.Y+h/2)
}

// anchorSpan places an interval of the given size on one axis, keeping the
// edge that matches the old interval, or the center otherwise.
func anchorSpan(nmin, nmax, omin, omax, size float32) (float32, float32) {
	minFixed, maxFixed := Equal(nmin, omin), Equal(nmax, omax)
	switch {
	case minFixed && !maxFixed:
		return nmin, nmin + size
	case maxFixed && !minFixed:
		return nmax - size, nmax
	default:
		c := (nmin + nmax) / 2
		return c - size/2, c + size/2
	}
}

func pivotAxis(nmin, nmax, omin, omax float32) float32 {
	minFixed, maxFixed := Equal(nmin, omin), Equal(nmax, omax)
	switch {
	case minFixed && !maxFixed:
		return nmin
	case maxFixed && !minFixed:
		return nmax
	default:
		return (nmin + nmax) / 2
	}
}

// FitAspect returns the largest rectangle with the given aspect ratio
// centered inside r.
func (r Rect) FitAspect(aspect float32) Rect {
	if aspect <= 0 || r.Empty() {
		return r
	}
	w, h := r.Dx(), r.Dy()
	if w/h > aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	c := r.Center()
	return R(c.X-w/2, c.Y-h/2, c.X+w/2, c.Y+h/2)
}

// Lerp interpolates linearly between r and s.
func (r Rect) Lerp(s Rect, t float32) Rect {
	return Rect{Min: lerpPt(r.Min, s.Min, t), Max: lerpPt(r.Max, s.Max, t)}
}

func lerpPt(a, b Point, t float32) Point {
	return Pt(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}
