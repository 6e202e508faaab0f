package cropper

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/esimov/cropper/geom"
)

// ImageAnimation tweens the placement of the image in transformed space when
// the transform changes, so that rotations turn and flips fold instead of
// jumping to the new orientation.
type ImageAnimation struct {
	Duration time.Duration

	size    geom.Size
	target  Transform
	cur     imagePose
	from    imagePose
	start   time.Time
	set     bool
	running bool
}

// imagePose is a transform with a fractional angle and scale.
type imagePose struct {
	angle  float32 // degrees
	scale  geom.Point
	center geom.Point // image center in transformed space
}

// NewImageAnimation returns an animation lasting DefaultFitDuration.
func NewImageAnimation() *ImageAnimation {
	return &ImageAnimation{Duration: DefaultFitDuration}
}

// Animating reports whether a transform change is being animated.
func (a *ImageAnimation) Animating() bool {
	return a.running
}

// Update returns the matrix mapping image pixels into transformed space for
// the frame at now. The first transform and a change of image size apply
// immediately. The returned time, if not zero, is when the next frame is due.
func (a *ImageAnimation) Update(now time.Time, t Transform, size geom.Size) (geom.Matrix, time.Time) {
	target := MatrixFor(t, size)
	if !a.set || size != a.size || a.Duration <= 0 {
		a.set, a.running = true, false
		a.size, a.target = size, t
		a.cur = poseOf(t, size)
		return target, time.Time{}
	}
	if t != a.target {
		a.from = a.cur
		a.target = t
		a.start = now
		a.running = true
	}
	if !a.running {
		return target, time.Time{}
	}
	p := float32(now.Sub(a.start)) / float32(a.Duration)
	if p >= 1 {
		a.running = false
		a.cur = poseOf(t, size)
		return target, time.Time{}
	}
	a.cur = a.from.lerp(poseOf(t, size), easeOut(p))
	return a.cur.matrix(size), now
}

func poseOf(t Transform, size geom.Size) imagePose {
	b := TransformedBounds(t, size)
	return imagePose{
		angle:  float32(t.Angle),
		scale:  t.Scale,
		center: b.Center(),
	}
}

// lerp interpolates towards to, turning the shorter way round.
func (p imagePose) lerp(to imagePose, t float32) imagePose {
	d := math32.Mod(to.angle-p.angle, 360)
	switch {
	case d > 180:
		d -= 360
	case d < -180:
		d += 360
	}
	return imagePose{
		angle: p.angle + d*t,
		scale: geom.Pt(
			p.scale.X+(to.scale.X-p.scale.X)*t,
			p.scale.Y+(to.scale.Y-p.scale.Y)*t,
		),
		center: p.center.Add(to.center.Sub(p.center).Mul(t)),
	}
}

func (p imagePose) matrix(size geom.Size) geom.Matrix {
	return geom.Translate(p.center).
		Mul(geom.Rotate(p.angle * math32.Pi / 180)).
		Mul(geom.Scale(p.scale.X, p.scale.Y)).
		Mul(geom.Translate(geom.Pt(-size.W/2, -size.H/2)))
}
