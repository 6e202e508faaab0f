package cropper

import (
	"image/color"

	"github.com/esimov/cropper/geom"
)

// Frame is the toolkit independent description of one cropper frame. Backends
// paint, in order, the background, the image, the overlay and the lines.
type Frame struct {
	Viewport   geom.Rect
	Background color.NRGBA
	Image      ImageLayer
	Enabled    bool

	// The following are only set when Enabled.
	CropRect geom.Rect // crop rectangle in view coordinates
	Overlay  Overlay
	Lines    []Line
}

// ImageLayer places the source image in the view.
type ImageLayer struct {
	Matrix geom.Matrix // image pixels to view coordinates
	Size   geom.Size
}

// Overlay dims the image outside of the crop shape.
type Overlay struct {
	Path  geom.Path // viewport with the crop outline cut out
	Color color.NRGBA
}

// Line is a stroked segment.
type Line struct {
	From, To geom.Point
	Width    float32
	Color    color.NRGBA
}

// Render computes the frame showing s through the view transform, for a
// viewport of the given bounds. The style must already be scaled to pixels.
func Render(s State, view ViewTransform, viewport geom.Rect, style Style) Frame {
	vm := view.Matrix()
	f := Frame{
		Viewport:   viewport,
		Background: style.BackgroundColor,
		Image: ImageLayer{
			Matrix: vm.Mul(MatrixFor(s.Transform, s.Size)),
			Size:   s.Size,
		},
		Enabled: s.Enabled,
	}
	if !s.Enabled {
		return f
	}
	crop := vm.MapRect(s.Region)
	f.CropRect = crop

	shape := s.Shape
	if shape == nil {
		shape = RectShape{}
	}
	f.Overlay = Overlay{
		Path:  geom.Hole(viewport, shape.Outline(crop)),
		Color: style.OverlayColor,
	}

	if g := style.Guidelines; g != nil && g.Count > 0 {
		for i := 1; i <= g.Count; i++ {
			t := float32(i) / float32(g.Count+1)
			x := crop.Min.X + crop.Dx()*t
			y := crop.Min.Y + crop.Dy()*t
			f.Lines = append(f.Lines,
				Line{From: geom.Pt(x, crop.Min.Y), To: geom.Pt(x, crop.Max.Y), Width: g.Width, Color: g.Color},
				Line{From: geom.Pt(crop.Min.X, y), To: geom.Pt(crop.Max.X, y), Width: g.Width, Color: g.Color},
			)
		}
	}

	c := crop.Corners()
	for i := range c {
		f.Lines = append(f.Lines, Line{
			From: c[i], To: c[(i+1)%len(c)],
			Width: style.RectStrokeWidth, Color: style.RectColor,
		})
	}
	f.Lines = append(f.Lines, handleMarks(crop, style)...)
	return f
}

// handleMarks returns the decorations of the handles: an L shaped mark
// outside every corner and, with secondary handles, a tick on the edges.
func handleMarks(crop geom.Rect, style Style) []Line {
	var lines []Line
	w := style.RectStrokeWidth * 2
	l := style.HandleLength
	for _, h := range style.Handles {
		p := crop.Rel(h)
		// Outward direction of the handle.
		dx, dy := sign(h.X-0.5), sign(h.Y-0.5)
		off := geom.Pt(dx*w/2, dy*w/2)
		p = p.Add(off)
		switch {
		case isCorner(h):
			lines = append(lines,
				Line{From: p, To: p.Add(geom.Pt(-dx*l, 0)), Width: w, Color: style.RectColor},
				Line{From: p, To: p.Add(geom.Pt(0, -dy*l)), Width: w, Color: style.RectColor},
			)
		case style.SecondaryHandles && dx != 0:
			lines = append(lines, Line{
				From: p.Add(geom.Pt(0, -l/2)), To: p.Add(geom.Pt(0, l/2)), Width: w, Color: style.RectColor,
			})
		case style.SecondaryHandles && dy != 0:
			lines = append(lines, Line{
				From: p.Add(geom.Pt(-l/2, 0)), To: p.Add(geom.Pt(l/2, 0)), Width: w, Color: style.RectColor,
			})
		}
	}
	return lines
}

func sign(v float32) float32 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
