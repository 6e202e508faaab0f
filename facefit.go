package cropper

import (
	"image"

	"github.com/esimov/cropper/geom"
)

// FaceRegion returns the region framing all the faces, given in image pixels,
// mapped into the space of transform t. Every side is extended by margin
// times the longer side of the faces' bounding box. It returns false when
// there are no faces.
func FaceRegion(faces []image.Rectangle, t Transform, size geom.Size, margin float32) (geom.Rect, bool) {
	var u geom.Rect
	for _, f := range faces {
		u = u.Union(geom.FromImageRect(f))
	}
	if u.Empty() {
		return geom.Rect{}, false
	}
	m := margin * max(u.Dx(), u.Dy())
	u = u.Inset(-m).Intersect(geom.RectAt(geom.Point{}, size))
	if u.Empty() {
		return geom.Rect{}, false
	}
	return MatrixFor(t, size).MapRect(u), true
}
