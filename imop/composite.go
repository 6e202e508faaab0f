// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// Porter and Duff presented in their paper 12 different composition operation,
// but the image/draw core package implements only the source-over-destination and source.
// This package is aimed to overcome the missing composite operations.
//
// The cropper uses it to cut the crop shape out of the result image
// and to dim the image outside of the crop area in the software renderer.
package imop

import (
	"image"
	"image/color"

	"github.com/esimov/cropper/utils"
)

const (
	Clear   = "clear"
	Copy    = "copy"
	Dst     = "dst"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// NewBitmap initializes a new Bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// InitOp initializes a new composition operation, SrcOver being the default one.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Clear,
			Copy,
			Dst,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set changes the current composition operation. Unsupported operations are ignored.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the current composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composes the src image over the dst backdrop into the bitmap.
// The images are expected to share the same bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst *image.NRGBA) {
	b := src.Bounds()
	if bitmap == nil {
		bitmap = NewBitmap(b)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			bitmap.Img.SetNRGBA(x, y, compose(op.current, src.NRGBAAt(x, y), dst.NRGBAAt(x, y)))
		}
	}
}

// compose applies the composition formula on a single pixel and
// returns the non-premultiplied result.
func compose(op string, s, d color.NRGBA) color.NRGBA {
	rsn, gsn, bsn, asn := norm(s)
	rbn, gbn, bbn, abn := norm(d)

	// Fa and Fb are the fractions of the source and backdrop
	// contributing to the result.
	var fa, fb float64
	switch op {
	case Clear:
	case Copy:
		fa = 1
	case Dst:
		fb = 1
	case SrcOver:
		fa, fb = 1, 1-asn
	case DstOver:
		fa, fb = 1-abn, 1
	case SrcIn:
		fa = abn
	case DstIn:
		fb = asn
	case SrcOut:
		fa = 1 - abn
	case DstOut:
		fb = 1 - asn
	case SrcAtop:
		fa, fb = abn, 1-asn
	case DstAtop:
		fa, fb = 1-abn, asn
	case Xor:
		fa, fb = 1-abn, 1-asn
	}

	an := asn*fa + abn*fb
	if an <= 0 {
		return color.NRGBA{}
	}
	rn := (asn*rsn*fa + abn*rbn*fb) / an
	gn := (asn*gsn*fa + abn*gbn*fb) / an
	bn := (asn*bsn*fa + abn*bbn*fb) / an

	return color.NRGBA{
		R: denorm(rn),
		G: denorm(gn),
		B: denorm(bn),
		A: denorm(an),
	}
}

func norm(c color.NRGBA) (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

func denorm(v float64) uint8 {
	return uint8(utils.Clamp(v*255+0.5, 0, 255))
}
