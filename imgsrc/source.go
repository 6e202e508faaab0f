// Package imgsrc provides the decoded image sources displayed and cropped by the
// cropper engine, together with the adaptive decoding parameters and the
// asynchronous loader used while the view is zoomed and panned.
package imgsrc

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/esimov/cropper/geom"
)

// Source is a decoded image with immutable pixel dimensions.
type Source interface {
	// Size returns the pixel dimensions of the full resolution image.
	Size() image.Point
	// Open returns the part of the image selected by the params.
	Open(ctx context.Context, p DecodeParams) (*Decoded, error)
}

// DecodeParams selects the part of the image to decode and its resolution.
type DecodeParams struct {
	SampleSize int             // power of two downsampling factor
	Subset     image.Rectangle // in full resolution pixels
}

// Decoded holds the result of opening a source with some params.
type Decoded struct {
	Params DecodeParams
	Image  image.Image
}

// Matrix maps the pixels of the decoded image into the full resolution image space.
func (d *Decoded) Matrix() geom.Matrix {
	b, sub := d.Image.Bounds(), d.Params.Subset
	sx, sy := float32(1), float32(1)
	if b.Dx() > 0 && b.Dy() > 0 {
		sx = float32(sub.Dx()) / float32(b.Dx())
		sy = float32(sub.Dy()) / float32(b.Dy())
	}
	return geom.Translate(geom.Pt(float32(sub.Min.X), float32(sub.Min.Y))).
		Mul(geom.Scale(sx, sy)).
		Mul(geom.Translate(geom.Pt(-float32(b.Min.X), -float32(b.Min.Y))))
}

// ImageSource is an in-memory Source.
type ImageSource struct {
	img *image.NRGBA
}

// NewImageSource wraps an already decoded image.
func NewImageSource(img image.Image) *ImageSource {
	return &ImageSource{img: toNRGBA(img)}
}

// Size returns the image dimensions.
func (s *ImageSource) Size() image.Point {
	return s.img.Bounds().Size()
}

// Image returns the full resolution image.
func (s *ImageSource) Image() *image.NRGBA {
	return s.img
}

// Open crops the requested subset and downsamples it by the sample size.
func (s *ImageSource) Open(ctx context.Context, p DecodeParams) (*Decoded, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	full := s.img.Bounds()
	sub := p.Subset.Intersect(full)
	if sub.Empty() {
		sub = full
	}
	ss := p.SampleSize
	if ss < 1 {
		ss = 1
	}
	out := DecodeParams{SampleSize: ss, Subset: sub}
	if sub == full && ss == 1 {
		return &Decoded{Params: out, Image: s.img}, nil
	}

	var img image.Image = s.img
	if sub != full {
		img = imaging.Crop(s.img, sub)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ss > 1 {
		w, h := max(1, sub.Dx()/ss), max(1, sub.Dy()/ss)
		img = imaging.Resize(img, w, h, imaging.Box)
	}
	return &Decoded{Params: out, Image: img}, nil
}
