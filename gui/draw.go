package gui

import (
	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/esimov/cropper"
	"github.com/esimov/cropper/geom"
	"github.com/esimov/cropper/imgsrc"
)

// drawFrame paints the frame with gio operations. The image operation must
// hold the pixels of img.
func drawFrame(ops *op.Ops, f cropper.Frame, img *imgsrc.Decoded, src paint.ImageOp) {
	paint.FillShape(ops, f.Background, clip.Rect(f.Viewport.ImageRect()).Op())

	if img != nil && img.Image != nil {
		m := f.Image.Matrix.Mul(img.Matrix())
		t := op.Affine(affine(m)).Push(ops)
		cl := clip.Rect(img.Image.Bounds()).Push(ops)
		src.Add(ops)
		paint.PaintOp{}.Add(ops)
		cl.Pop()
		t.Pop()
	}
	if !f.Enabled {
		return
	}

	if f.Overlay.Color.A > 0 {
		paint.FillShape(ops, f.Overlay.Color, clip.Outline{Path: outline(ops, f.Overlay.Path)}.Op())
	}
	for _, l := range f.Lines {
		drawLine(ops, l)
	}
}

// drawLine strokes a frame line.
func drawLine(ops *op.Ops, l cropper.Line) {
	if l.Width <= 0 || l.Color.A == 0 {
		return
	}
	var path clip.Path
	path.Begin(ops)
	path.MoveTo(point(l.From))
	path.LineTo(point(l.To))

	paint.FillShape(ops, l.Color, clip.Stroke{Path: path.End(), Width: l.Width}.Op())
}

// outline converts the closed contours of p into a gio path.
func outline(ops *op.Ops, p geom.Path) clip.PathSpec {
	var path clip.Path
	path.Begin(ops)
	for _, c := range p {
		if len(c) < 3 {
			continue
		}
		path.MoveTo(point(c[0]))
		for _, pt := range c[1:] {
			path.LineTo(point(pt))
		}
		path.Close()
	}
	return path.End()
}

// point converts a geometry point to a gio f32.Point.
func point(p geom.Point) f32.Point {
	return f32.Point{
		X: p.X,
		Y: p.Y,
	}
}

func affine(m geom.Matrix) f32.Affine2D {
	return f32.NewAffine2D(m.A, m.B, m.C, m.D, m.E, m.F)
}
