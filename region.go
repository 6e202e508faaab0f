package cropper

import "github.com/esimov/cropper/geom"

// UpdateRegion computes the region replacing old when the user proposes next.
// A proposal with the same size is a pure move and only gets shifted inside the
// bounds. A resize keeps the old aspect ratio when aspectLock is set, otherwise
// every edge is clamped to the bounds. A proposal collapsing to an empty rect
// falls back to the smallest region of the old aspect ratio with the shorter
// side of minSize, shrunk further if it would not fit inside the bounds.
func UpdateRegion(old, next, bounds geom.Rect, aspectLock bool, minSize float32) geom.Rect {
	if next.SameSize(old) {
		return next.ConstrainOffset(bounds)
	}
	var r geom.Rect
	if aspectLock {
		r = next.KeepAspect(old).ScaleToFit(bounds, old)
	} else {
		r = next.ConstrainResize(bounds)
	}
	if r.Empty() {
		if minSize <= 0 {
			minSize = DefaultMinRegionSize
		}
		r = r.SetSize(old, minSize).LimitSize(bounds).ConstrainOffset(bounds)
	}
	return r
}
