package cropper

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/esimov/cropper/geom"
	"github.com/esimov/cropper/imgsrc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
)

// twoColorImage returns an image with a red left half and a blue right half.
func twoColorImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := red
			if x >= w/2 {
				c = blue
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestResult_Region(t *testing.T) {
	assert := assert.New(t)
	src := imgsrc.NewImageSource(twoColorImage(200, 100))
	s := Reduce(NewState(geom.Sz(200, 100)), SetRegion{geom.R(110, 10, 150, 60)})

	img, err := CreateResult(context.Background(), src, s, DefaultMaxCropSize)
	require.NoError(t, err)
	assert.Equal(image.Rect(0, 0, 40, 50), img.Bounds())
	assert.Equal(blue, img.NRGBAAt(0, 0))
	assert.Equal(blue, img.NRGBAAt(39, 49))
}

func TestResult_RotateRightOrientation(t *testing.T) {
	assert := assert.New(t)
	src := imgsrc.NewImageSource(twoColorImage(200, 100))
	s := Reduce(NewState(geom.Sz(200, 100)), RotateRight{})

	img, err := CreateResult(context.Background(), src, s, DefaultMaxCropSize)
	require.NoError(t, err)
	assert.Equal(image.Rect(0, 0, 100, 200), img.Bounds())

	// Turning clockwise brings the left half on top.
	assert.Equal(red, img.NRGBAAt(50, 10))
	assert.Equal(blue, img.NRGBAAt(50, 190))

	// Pixels agree with the transform matrix.
	m := MatrixFor(s.Transform, s.Size)
	p := m.Apply(geom.Pt(10.5, 50.5))
	assert.Equal(red, img.NRGBAAt(int(p.X), int(p.Y)))
}

func TestResult_FlipHorizontal(t *testing.T) {
	src := imgsrc.NewImageSource(twoColorImage(200, 100))
	s := Reduce(NewState(geom.Sz(200, 100)), FlipHorizontal{})

	img, err := CreateResult(context.Background(), src, s, DefaultMaxCropSize)
	require.NoError(t, err)
	assert.Equal(t, blue, img.NRGBAAt(0, 0))
	assert.Equal(t, red, img.NRGBAAt(199, 0))
}

func TestResult_MaxSize(t *testing.T) {
	src := imgsrc.NewImageSource(twoColorImage(400, 200))
	s := NewState(geom.Sz(400, 200))

	img, err := CreateResult(context.Background(), src, s, image.Pt(100, 100))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 50), img.Bounds())
}

func TestResult_ShapeMask(t *testing.T) {
	assert := assert.New(t)
	src := imgsrc.NewImageSource(twoColorImage(200, 100))
	s := Reduce(NewState(geom.Sz(200, 100)), SetShape{OvalShape{}})

	img, err := CreateResult(context.Background(), src, s, DefaultMaxCropSize)
	require.NoError(t, err)
	assert.Equal(uint8(0), img.NRGBAAt(0, 0).A)
	assert.Equal(uint8(0), img.NRGBAAt(199, 99).A)
	assert.Equal(red, img.NRGBAAt(50, 50))
	assert.Equal(blue, img.NRGBAAt(150, 50))
}

func TestResult_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := imgsrc.NewImageSource(twoColorImage(20, 10))
	_, err := CreateResult(ctx, src, NewState(geom.Sz(20, 10)), DefaultMaxCropSize)
	assert.ErrorIs(t, err, context.Canceled)
}
