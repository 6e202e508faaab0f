package cropper

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/chewxy/math32"
	"github.com/esimov/cropper/geom"
)

// curveSegments is the number of segments used to flatten curved outlines.
const curveSegments = 96

// Shape defines the outline of the crop area inside the crop rectangle.
type Shape interface {
	// Outline returns the shape fitted into r.
	Outline(r geom.Rect) geom.Path
}

// RectShape crops the whole rectangle.
type RectShape struct{}

func (RectShape) Outline(r geom.Rect) geom.Path { return geom.RectPath(r) }

// OvalShape crops the ellipse inscribed into the rectangle.
type OvalShape struct{}

func (OvalShape) Outline(r geom.Rect) geom.Path {
	return geom.Path{geom.Ellipse(r, curveSegments)}
}

// RoundRectShape is a rectangle with rounded corners. The corner radius
// is a percentage of the shorter side.
type RoundRectShape struct {
	Percent float32
}

func (s RoundRectShape) Outline(r geom.Rect) geom.Path {
	rad := math32.Min(r.Dx(), r.Dy()) * s.Percent / 100
	rad = math32.Min(rad, math32.Min(r.Dx(), r.Dy())/2)
	if rad <= 0 {
		return geom.RectPath(r)
	}
	const arc = curveSegments / 4
	centers := [4]geom.Point{
		geom.Pt(r.Max.X-rad, r.Min.Y+rad),
		geom.Pt(r.Max.X-rad, r.Max.Y-rad),
		geom.Pt(r.Min.X+rad, r.Max.Y-rad),
		geom.Pt(r.Min.X+rad, r.Min.Y+rad),
	}
	pts := make([]geom.Point, 0, 4*(arc+1))
	for i, c := range centers {
		start := -math32.Pi/2 + float32(i)*math32.Pi/2
		for j := 0; j <= arc; j++ {
			s, co := math32.Sincos(start + float32(j)*(math32.Pi/2)/arc)
			pts = append(pts, geom.Pt(c.X+rad*co, c.Y+rad*s))
		}
	}
	return geom.Path{pts}
}

// PolygonShape is a custom polygon with vertices relative to the
// rectangle, each coordinate in the [0, 1] range.
type PolygonShape struct {
	Points []geom.Point
}

func (s PolygonShape) Outline(r geom.Rect) geom.Path {
	pts := make([]geom.Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = r.Rel(p)
	}
	return geom.Path{pts}.Clockwise()
}

// StarShape returns a star with the given number of spikes.
// Inner is the ratio between the inner and the outer radius.
func StarShape(spikes int, inner float32) PolygonShape {
	if spikes < 3 {
		spikes = 3
	}
	pts := make([]geom.Point, 0, spikes*2)
	step := math32.Pi / float32(spikes)
	for i := 0; i < spikes*2; i++ {
		rad := float32(0.5)
		if i%2 == 1 {
			rad *= inner
		}
		s, c := math32.Sincos(-math32.Pi/2 + float32(i)*step)
		pts = append(pts, geom.Pt(0.5+rad*c, 0.5+rad*s))
	}
	return PolygonShape{Points: pts}
}

// TriangleShape is an isosceles triangle pointing up.
var TriangleShape = PolygonShape{Points: []geom.Point{{X: 0.5, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}

// DefaultShapes are the shapes offered by the crop dialog.
var DefaultShapes = []Shape{
	RectShape{},
	OvalShape{},
	RoundRectShape{Percent: 15},
	StarShape(5, 0.5),
	TriangleShape,
}

var shapeNames = []string{"rect", "oval", "roundrect", "star", "triangle"}

// ParseShape returns the built-in shape with the given name.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(n, name) {
			return DefaultShapes[i], nil
		}
	}
	return nil, fmt.Errorf("unknown shape %q, supported shapes: %s", name, strings.Join(shapeNames, ", "))
}

// ShapeName returns the name of a built-in shape, or "custom".
func ShapeName(s Shape) string {
	for i, d := range DefaultShapes {
		if shapeEqual(s, d) {
			return shapeNames[i]
		}
	}
	return "custom"
}

// shapeEqual compares two shapes by value. Polygon shapes hold
// slices and cannot be compared with the == operator.
func shapeEqual(a, b Shape) bool {
	return reflect.DeepEqual(a, b)
}
