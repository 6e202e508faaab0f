package imop

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/esimov/cropper/geom"
	"golang.org/x/image/vector"
)

// PathMask rasterizes the closed contours of p into an alpha mask covering bounds.
// Contours wound in opposite directions cut holes into each other.
func PathMask(bounds image.Rectangle, p geom.Path) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if bounds.Empty() {
		return mask
	}
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src
	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	for _, c := range p {
		if len(c) < 3 {
			continue
		}
		z.MoveTo(c[0].X-ox, c[0].Y-oy)
		for _, pt := range c[1:] {
			z.LineTo(pt.X-ox, pt.Y-oy)
		}
		z.ClosePath()
	}
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// ApplyMask returns a copy of img keeping only the pixels covered by the mask.
func ApplyMask(img *image.NRGBA, mask *image.Alpha) *image.NRGBA {
	b := img.Bounds()
	src := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: mask.AlphaAt(x, y).A})
		}
	}
	op := InitOp()
	op.Set(DstIn)
	bmp := NewBitmap(b)
	op.Draw(bmp, src, img)
	return bmp.Img
}

// FillMask paints c over dst wherever the mask covers it, using the SrcOver operation.
func FillMask(dst *image.NRGBA, mask *image.Alpha, c color.NRGBA) {
	b := dst.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := mask.AlphaAt(x, y).A
			if m == 0 {
				continue
			}
			s := c
			s.A = uint8(uint32(c.A) * uint32(m) / 0xff)
			dst.SetNRGBA(x, y, compose(SrcOver, s, dst.NRGBAAt(x, y)))
		}
	}
}
