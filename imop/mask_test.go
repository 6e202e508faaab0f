package imop

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/esimov/cropper/geom"
	"github.com/stretchr/testify/assert"
)

func TestMask_PathMask(t *testing.T) {
	assert := assert.New(t)

	bounds := image.Rect(0, 0, 20, 20)
	mask := PathMask(bounds, geom.RectPath(geom.R(5, 5, 15, 15)))

	assert.Equal(bounds, mask.Bounds())
	assert.Equal(uint8(0xff), mask.AlphaAt(10, 10).A)
	assert.Equal(uint8(0), mask.AlphaAt(2, 2).A)
	assert.Equal(uint8(0), mask.AlphaAt(17, 10).A)
}

func TestMask_PathMaskHole(t *testing.T) {
	assert := assert.New(t)

	bounds := image.Rect(0, 0, 20, 20)
	p := geom.Hole(geom.R(0, 0, 20, 20), geom.RectPath(geom.R(5, 5, 15, 15)))
	mask := PathMask(bounds, p)

	assert.Equal(uint8(0), mask.AlphaAt(10, 10).A)
	assert.Equal(uint8(0xff), mask.AlphaAt(2, 2).A)
}

func TestMask_PathMaskOffsetBounds(t *testing.T) {
	assert := assert.New(t)

	bounds := image.Rect(10, 10, 30, 30)
	mask := PathMask(bounds, geom.RectPath(geom.R(20, 20, 30, 30)))

	assert.Equal(uint8(0xff), mask.AlphaAt(25, 25).A)
	assert.Equal(uint8(0), mask.AlphaAt(15, 15).A)
}

func TestMask_ApplyMask(t *testing.T) {
	assert := assert.New(t)

	red := color.NRGBA{R: 0xff, A: 0xff}
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	draw.Draw(img, img.Bounds(), &image.Uniform{red}, image.Point{}, draw.Src)

	mask := PathMask(img.Bounds(), geom.Path{geom.Ellipse(geom.R(0, 0, 20, 20), 64)})
	out := ApplyMask(img, mask)

	assert.Equal(red, out.NRGBAAt(10, 10))
	assert.Equal(uint8(0), out.NRGBAAt(0, 0).A)
	assert.Equal(uint8(0), out.NRGBAAt(19, 19).A)
}

func TestMask_FillMask(t *testing.T) {
	assert := assert.New(t)

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	draw.Draw(img, img.Bounds(), &image.Uniform{white}, image.Point{}, draw.Src)

	mask := PathMask(img.Bounds(), geom.RectPath(geom.R(0, 0, 5, 10)))
	FillMask(img, mask, color.NRGBA{A: 0x80})

	dimmed := img.NRGBAAt(2, 5)
	assert.InDelta(0x7f, int(dimmed.R), 1)
	assert.Equal(uint8(0xff), dimmed.A)
	assert.Equal(white, img.NRGBAAt(7, 5))
}
