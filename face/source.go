package face

import (
	"context"
	"image"

	"github.com/esimov/cropper/geom"
	"github.com/esimov/cropper/imgsrc"
)

// maxDetectSize bounds the longer side of the image handed to the classifier.
const maxDetectSize = 1024

// DetectSource decodes src at a reduced resolution and returns the faces
// found in it, in full resolution pixels.
func (d *Detector) DetectSource(ctx context.Context, src imgsrc.Source) ([]image.Rectangle, error) {
	size := src.Size()
	dec, err := src.Open(ctx, imgsrc.DecodeParams{
		SampleSize: sampleSize(size),
		Subset:     image.Rectangle{Max: size},
	})
	if err != nil {
		return nil, err
	}
	faces := d.Detect(dec.Image)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m := dec.Matrix()
	for i, f := range faces {
		faces[i] = m.MapRect(geom.FromImageRect(f)).ImageRect()
	}
	return faces, nil
}

// sampleSize returns the smallest power of two reducing the image below
// maxDetectSize.
func sampleSize(size image.Point) int {
	ss := 1
	for max(size.X, size.Y)/ss > maxDetectSize {
		ss *= 2
	}
	return ss
}
