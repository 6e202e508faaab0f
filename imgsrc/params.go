package imgsrc

import (
	"image"

	"github.com/esimov/cropper/geom"
)

// subsetGrid is the alignment of partial subsets, in sampled pixels. Aligning
// the subset keeps the params stable while the view is panned by small steps.
const subsetGrid = 256

// ParamsFor computes the decoding params needed to display an image of the
// given size inside a view, where toView maps image pixels to view pixels.
// The sample size is the largest power of two which does not drop below one
// decoded pixel per view pixel. When most of the image is visible the whole
// image is decoded, otherwise only the visible part with some margin.
func ParamsFor(view, size image.Point, toView geom.Matrix) DecodeParams {
	full := image.Rectangle{Max: size}
	ss := 1
	if scale := toView.ScaleFactor(); scale > 0 {
		for float32(ss*2)*scale <= 1 {
			ss *= 2
		}
	}
	p := DecodeParams{SampleSize: ss, Subset: full}

	viewRect := geom.R(0, 0, float32(view.X), float32(view.Y))
	vis := toView.Invert().MapRect(viewRect).ImageRect().Intersect(full)
	if vis.Empty() || 2*area(vis) >= area(full) {
		return p
	}
	mx, my := vis.Dx()/4, vis.Dy()/4
	g := subsetGrid * ss
	vis = image.Rect(
		floorTo(vis.Min.X-mx, g), floorTo(vis.Min.Y-my, g),
		ceilTo(vis.Max.X+mx, g), ceilTo(vis.Max.Y+my, g),
	)
	p.Subset = vis.Intersect(full)
	return p
}

func area(r image.Rectangle) int {
	return r.Dx() * r.Dy()
}

func floorTo(v, g int) int {
	if v < 0 {
		return 0
	}
	return v / g * g
}

func ceilTo(v, g int) int {
	return (v + g - 1) / g * g
}
