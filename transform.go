package cropper

import "github.com/esimov/cropper/geom"

// Transform describes how the source image is presented: a rotation by a
// multiple of 90 degrees, an optional mirroring on each axis and an extra offset.
type Transform struct {
	Angle  int        // clockwise, one of 0, 90, 180 or 270
	Scale  geom.Point // each component is either 1 or -1
	Offset geom.Point // applied after the rotation
}

// IdentityTransform is the transform of a freshly opened image.
var IdentityTransform = Transform{Scale: geom.Pt(1, 1)}

// Rotated returns the transform turned clockwise by deg degrees.
func (t Transform) Rotated(deg int) Transform {
	t.Angle = normAngle(t.Angle + deg)
	return t
}

// Flipped mirrors the image along the screen axis. With a quarter turn
// applied the screen's horizontal axis is the image's vertical one.
func (t Transform) Flipped(horizontal bool) Transform {
	if t.Angle%180 != 0 {
		horizontal = !horizontal
	}
	if horizontal {
		t.Scale.X = -t.Scale.X
	} else {
		t.Scale.Y = -t.Scale.Y
	}
	return t
}

// Swapped reports whether the transform exchanges width and height.
func (t Transform) Swapped() bool {
	return t.Angle%180 != 0
}

// Normalized snaps the angle to the nearest quarter turn and every scale
// component to 1 or -1. A zero scale component becomes 1.
func (t Transform) Normalized() Transform {
	t.Angle = normAngle((normAngle(t.Angle) + 45) / 90 * 90)
	t.Scale = geom.Pt(unitSign(t.Scale.X), unitSign(t.Scale.Y))
	return t
}

func unitSign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

func normAngle(a int) int {
	return ((a % 360) + 360) % 360
}

// MatrixFor returns the matrix mapping image pixel coordinates of an image
// with the given size into the transformed space. The transformed bounding box
// starts at the origin, shifted by the transform offset.
func MatrixFor(t Transform, size geom.Size) geom.Matrix {
	w, h := size.W, size.H
	if t.Swapped() {
		w, h = h, w
	}
	return geom.Translate(geom.Pt(w/2+t.Offset.X, h/2+t.Offset.Y)).
		Mul(geom.RotateDeg(t.Angle)).
		Mul(geom.Scale(t.Scale.X, t.Scale.Y)).
		Mul(geom.Translate(geom.Pt(-size.W/2, -size.H/2)))
}

// TransformedBounds returns the bounds of the image in transformed space.
func TransformedBounds(t Transform, size geom.Size) geom.Rect {
	return MatrixFor(t, size).MapRect(geom.RectAt(geom.Point{}, size))
}

// Reproject maps a region expressed relative to the old transform into the space of the new one.
func Reproject(region geom.Rect, from, to Transform, size geom.Size) geom.Rect {
	back := MatrixFor(from, size).Invert()
	return MatrixFor(to, size).Mul(back).MapRect(region)
}
