// Package raster paints cropper frames into in-memory images. It backs the
// snapshot output of the command line tool and keeps the frame rendering
// testable without a window.
package raster

import (
	"image"
	"image/draw"

	"github.com/esimov/cropper"
	"github.com/esimov/cropper/geom"
	"github.com/esimov/cropper/imgsrc"
	"github.com/esimov/cropper/imop"
	xdraw "golang.org/x/image/draw"
)

// NewFrameImage allocates an image covering the frame viewport.
func NewFrameImage(f cropper.Frame) *image.NRGBA {
	return image.NewNRGBA(f.Viewport.ImageRect())
}

// Draw paints the frame into dst. The decoded image may be nil while it is
// still loading, in which case only the background and the decorations are
// painted.
func Draw(dst *image.NRGBA, f cropper.Frame, img *imgsrc.Decoded) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(f.Background), image.Point{}, draw.Src)

	if img != nil && img.Image != nil {
		m := f.Image.Matrix.Mul(img.Matrix())
		xdraw.BiLinear.Transform(dst, m.Aff3(), img.Image, img.Image.Bounds(), xdraw.Over, nil)
	}
	if !f.Enabled {
		return
	}

	if f.Overlay.Color.A > 0 {
		imop.FillMask(dst, imop.PathMask(dst.Bounds(), f.Overlay.Path), f.Overlay.Color)
	}
	for _, l := range f.Lines {
		line(dst, l)
	}
}

func line(dst *image.NRGBA, l cropper.Line) {
	seg := geom.Segment(l.From, l.To, l.Width)
	if seg == nil || l.Color.A == 0 {
		return
	}
	p := geom.Path{seg}
	b := p.Bounds().ImageRect().Intersect(dst.Bounds())
	if b.Empty() {
		return
	}
	imop.FillMask(dst, imop.PathMask(b, p), l.Color)
}
