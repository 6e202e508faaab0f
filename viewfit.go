package cropper

import (
	"time"

	"github.com/esimov/cropper/geom"
	"github.com/esimov/cropper/utils"
)

const (
	// DefaultBringToViewDelay is the time waited after a gesture before fitting the view.
	DefaultBringToViewDelay = 500 * time.Millisecond
	// DefaultFitDuration is the length of the fitting animation.
	DefaultFitDuration = 250 * time.Millisecond

	minViewScale = 1e-3
	maxViewScale = 64
)

// ViewTransform is the uniform zoom and pan applied on top of the image transform.
type ViewTransform struct {
	Scale  float32
	Offset geom.Point
}

// Matrix returns the matrix mapping transformed image space to view coordinates.
func (v ViewTransform) Matrix() geom.Matrix {
	return geom.Translate(v.Offset).Mul(geom.Scale(v.Scale, v.Scale))
}

func (v ViewTransform) lerp(to ViewTransform, t float32) ViewTransform {
	return ViewTransform{
		Scale: v.Scale + (to.Scale-v.Scale)*t,
		Offset: geom.Pt(
			v.Offset.X+(to.Offset.X-v.Offset.X)*t,
			v.Offset.Y+(to.Offset.Y-v.Offset.Y)*t,
		),
	}
}

// FitView returns the view transform showing inner as large as possible,
// centered inside outer.
func FitView(inner, outer geom.Rect) ViewTransform {
	if inner.Empty() || outer.Empty() {
		return ViewTransform{Scale: 1}
	}
	s := utils.Min(outer.Dx()/inner.Dx(), outer.Dy()/inner.Dy())
	return ViewTransform{
		Scale:  s,
		Offset: outer.Center().Sub(inner.Center().Mul(s)),
	}
}

// ViewportPadding returns the padding kept around the fitted region, so the
// handles stay reachable next to the extra padding requested by the chrome.
func ViewportPadding(touchRad, extra float32) float32 {
	return utils.Max(touchRad, extra+touchRad/2)
}

// AutoFit keeps the crop region in view. It snaps to the region the first
// time a viewport is known, then animates towards the region every time the
// region or the viewport change. While the user overrides the view the fitting
// is suspended; it resumes Delay after the override ends.
type AutoFit struct {
	Enabled  bool
	Delay    time.Duration
	Duration time.Duration

	view    ViewTransform
	snapped bool
	region  geom.Rect
	outer   geom.Rect
	anim    *fitAnimation

	held       bool
	releasedAt time.Time
	nudged     bool
	dirty      bool
}

type fitAnimation struct {
	from, to ViewTransform
	start    time.Time
}

// NewAutoFit returns an enabled AutoFit with the default timings.
func NewAutoFit() *AutoFit {
	return &AutoFit{
		Enabled:  true,
		Delay:    DefaultBringToViewDelay,
		Duration: DefaultFitDuration,
		view:     ViewTransform{Scale: 1},
	}
}

// View returns the current view transform.
func (a *AutoFit) View() ViewTransform {
	if a.view.Scale == 0 {
		return ViewTransform{Scale: 1}
	}
	return a.view
}

// Animating reports whether a fitting animation is running.
func (a *AutoFit) Animating() bool {
	return a.anim != nil
}

// Snap fits the region into outer immediately, cancelling any animation.
func (a *AutoFit) Snap(region, outer geom.Rect) {
	a.view = FitView(region, outer)
	a.region, a.outer = region, outer
	a.snapped = true
	a.anim = nil
}

// Pan moves the view by delta.
func (a *AutoFit) Pan(delta geom.Point) {
	if !a.snapped {
		return
	}
	a.view.Offset = a.view.Offset.Add(delta)
	a.anim = nil
	a.nudged = true
}

// ZoomAt scales the view by factor keeping center fixed on screen.
func (a *AutoFit) ZoomAt(center geom.Point, factor float32) {
	if !a.snapped || factor <= 0 {
		return
	}
	s := utils.Clamp(a.view.Scale*factor, minViewScale, maxViewScale)
	f := s / a.view.Scale
	a.view.Offset = center.Sub(center.Sub(a.view.Offset).Mul(f))
	a.view.Scale = s
	a.anim = nil
	a.nudged = true
}

// Update advances the view for the frame at now. Override is set while the
// user is dragging or otherwise controls the view. The returned time, if not
// zero, is when the next frame is needed to continue an animation or to end
// the settle delay.
func (a *AutoFit) Update(now time.Time, region, outer geom.Rect, override bool) (ViewTransform, time.Time) {
	if region.Empty() || outer.Empty() {
		return a.View(), time.Time{}
	}
	if !a.snapped {
		a.Snap(region, outer)
		return a.view, time.Time{}
	}
	if !a.Enabled {
		a.nudged = false
		if !outer.Eq(a.outer) {
			a.Snap(region, outer)
		}
		return a.view, time.Time{}
	}
	if override || a.nudged {
		a.nudged = false
		a.anim = nil
		a.held = true
		a.releasedAt = now
		return a.view, now.Add(a.Delay)
	}
	if a.held {
		if wake := a.releasedAt.Add(a.Delay); now.Before(wake) {
			return a.view, wake
		}
		a.held = false
		a.dirty = true
	}
	if a.dirty || !region.Eq(a.region) || !outer.Eq(a.outer) {
		a.dirty = false
		a.region, a.outer = region, outer
		target := FitView(region, outer)
		if a.Duration <= 0 {
			a.view, a.anim = target, nil
		} else {
			a.anim = &fitAnimation{from: a.view, to: target, start: now}
		}
	}
	if a.anim == nil {
		return a.view, time.Time{}
	}
	t := float32(now.Sub(a.anim.start)) / float32(a.Duration)
	if t >= 1 {
		a.view = a.anim.to
		a.anim = nil
		return a.view, time.Time{}
	}
	a.view = a.anim.from.lerp(a.anim.to, easeOut(t))
	return a.view, now
}

// easeOut is a cubic ease out curve.
func easeOut(t float32) float32 {
	t = 1 - t
	return 1 - t*t*t
}
