package imgsrc

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/esimov/cropper/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestSource_OpenFull(t *testing.T) {
	assert := assert.New(t)
	img := newTestImage(64, 32)
	src := NewImageSource(img)

	assert.Equal(image.Pt(64, 32), src.Size())

	d, err := src.Open(context.Background(), DecodeParams{})
	require.NoError(t, err)
	assert.Same(img, d.Image)
	assert.Equal(DecodeParams{SampleSize: 1, Subset: img.Bounds()}, d.Params)
	assert.Equal(geom.Identity(), d.Matrix())
}

func TestSource_OpenSubsetSampled(t *testing.T) {
	assert := assert.New(t)
	src := NewImageSource(newTestImage(64, 32))

	p := DecodeParams{SampleSize: 2, Subset: image.Rect(16, 8, 48, 32)}
	d, err := src.Open(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(p, d.Params)
	assert.Equal(image.Pt(16, 12), d.Image.Bounds().Size())

	// Decoded pixels map back onto the full resolution image.
	m := d.Matrix()
	assert.Equal(geom.Pt(16, 8), m.Apply(geom.Pt(0, 0)))
	assert.Equal(geom.Pt(48, 32), m.Apply(geom.Pt(16, 12)))
}

func TestSource_OpenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewImageSource(newTestImage(8, 8)).Open(ctx, DecodeParams{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParams_SampleSize(t *testing.T) {
	assert := assert.New(t)
	size := image.Pt(4000, 3000)

	p := ParamsFor(image.Pt(800, 600), size, geom.Scale(0.2, 0.2))
	assert.Equal(4, p.SampleSize)
	assert.Equal(image.Rect(0, 0, 4000, 3000), p.Subset)

	p = ParamsFor(image.Pt(800, 600), size, geom.Scale(0.5, 0.5))
	assert.Equal(2, p.SampleSize)

	p = ParamsFor(image.Pt(800, 600), size, geom.Scale(0.6, 0.6))
	assert.Equal(1, p.SampleSize)
}

func TestParams_ZoomedSubset(t *testing.T) {
	assert := assert.New(t)
	size := image.Pt(4000, 3000)

	toView := geom.Scale(2, 2).Mul(geom.Translate(geom.Pt(-1000, -1000)))
	p := ParamsFor(image.Pt(800, 600), size, toView)

	assert.Equal(1, p.SampleSize)
	visible := image.Rect(1000, 1000, 1400, 1300)
	assert.True(visible.In(p.Subset), "%v not in %v", visible, p.Subset)
	assert.True(p.Subset.In(image.Rectangle{Max: size}))
	assert.Less(p.Subset.Dx(), size.X)
	assert.Zero(p.Subset.Min.X % subsetGrid)

	// Small pans keep the same params.
	panned := geom.Translate(geom.Pt(-10, 4)).Mul(toView)
	assert.Equal(p, ParamsFor(image.Pt(800, 600), size, panned))
}
