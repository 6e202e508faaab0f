package cropper

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"github.com/esimov/cropper/geom"
	"github.com/esimov/cropper/imgsrc"
	"github.com/esimov/cropper/imop"
)

// DefaultMaxCropSize is the default bounding size of the cropped result.
var DefaultMaxCropSize = image.Pt(3000, 3000)

// CreateResult extracts the cropped image described by s from the full
// resolution source. The result is scaled down to fit into maxSize, if set,
// and pixels outside of the crop shape are made transparent.
func CreateResult(ctx context.Context, src imgsrc.Source, s State, maxSize image.Point) (*image.NRGBA, error) {
	size := src.Size()
	dec, err := src.Open(ctx, imgsrc.DecodeParams{SampleSize: 1, Subset: image.Rectangle{Max: size}})
	if err != nil {
		return nil, err
	}
	img := TransformImage(dec.Image, s.Transform)

	// The offset only shifts the transformed space; the region is
	// relative to the transformed bounds.
	region := s.Region.Add(s.Bounds().Min.Mul(-1))
	r := region.ImageRect().Intersect(img.Bounds())
	if r.Empty() {
		r = img.Bounds()
	}
	out := imaging.Crop(img, r)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if maxSize.X > 0 && maxSize.Y > 0 && (out.Bounds().Dx() > maxSize.X || out.Bounds().Dy() > maxSize.Y) {
		out = imaging.Fit(out, maxSize.X, maxSize.Y, imaging.Lanczos)
	}

	if _, ok := s.Shape.(RectShape); ok || s.Shape == nil {
		return out, nil
	}
	b := out.Bounds()
	outline := s.Shape.Outline(geom.FromImageRect(b))
	return imop.ApplyMask(out, imop.PathMask(b, outline)), nil
}

// TransformImage applies the flips and the rotation of t to the image pixels,
// in the same order as MatrixFor.
func TransformImage(img image.Image, t Transform) *image.NRGBA {
	out := imaging.Clone(img)
	if t.Scale.X < 0 {
		out = imaging.FlipH(out)
	}
	if t.Scale.Y < 0 {
		out = imaging.FlipV(out)
	}
	// imaging rotates counter-clockwise.
	switch normAngle(t.Angle) {
	case 90:
		out = imaging.Rotate270(out)
	case 180:
		out = imaging.Rotate180(out)
	case 270:
		out = imaging.Rotate90(out)
	}
	return out
}
