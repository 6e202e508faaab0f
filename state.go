package cropper

import (
	"reflect"

	"github.com/esimov/cropper/geom"
)

// DefaultMinRegionSize is the shorter side of the smallest region, in pixels.
const DefaultMinRegionSize = 1

// Acceptance is the outcome of a crop session.
type Acceptance int

const (
	Pending Acceptance = iota
	Accepted
	Rejected
)

func (a Acceptance) String() string {
	switch a {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	}
	return "pending"
}

// State is the complete crop state of one image.
type State struct {
	Size       geom.Size // pixel dimensions of the source image
	Transform  Transform
	Region     geom.Rect // crop rectangle in transformed space
	Shape      Shape
	AspectLock bool
	Enabled    bool
	Accepted   Acceptance
	MinSize    float32 // shorter side of the smallest allowed region
}

// NewState returns the default state for an image of the given size:
// no transform, a rectangular crop covering the whole image and no aspect lock.
func NewState(size geom.Size) State {
	s := State{Size: size, Enabled: true, MinSize: DefaultMinRegionSize}
	return s.defaults()
}

func (s State) defaults() State {
	s.Transform = IdentityTransform
	s.Shape = RectShape{}
	s.AspectLock = false
	s.Region = TransformedBounds(s.Transform, s.Size)
	return s
}

// Bounds returns the image bounds in transformed space.
func (s State) Bounds() geom.Rect {
	return TransformedBounds(s.Transform, s.Size)
}

// Finished reports whether the session was accepted or rejected.
func (s State) Finished() bool {
	return s.Accepted != Pending
}

// Equal reports whether two states are identical.
func (s State) Equal(o State) bool {
	return s.Size == o.Size && s.Transform == o.Transform && s.Region == o.Region &&
		s.AspectLock == o.AspectLock && s.Enabled == o.Enabled &&
		s.Accepted == o.Accepted && s.MinSize == o.MinSize &&
		reflect.DeepEqual(s.Shape, o.Shape)
}

// Event is a user action applied to a State by Reduce.
type Event interface {
	event()
}

type (
	// SetRegion proposes a new crop region; it is corrected by UpdateRegion.
	SetRegion struct{ Region geom.Rect }
	// SetTransform replaces the transform and re-projects the region. The
	// transform is normalized first, see Transform.Normalized.
	SetTransform struct{ Transform Transform }
	// RotateLeft turns the image 90 degrees counter-clockwise.
	RotateLeft struct{}
	// RotateRight turns the image 90 degrees clockwise.
	RotateRight struct{}
	// FlipHorizontal mirrors the image along the screen's horizontal axis.
	FlipHorizontal struct{}
	// FlipVertical mirrors the image along the screen's vertical axis.
	FlipVertical struct{}
	// SetShape changes the crop outline.
	SetShape struct{ Shape Shape }
	// SetAspectLock toggles aspect ratio preservation while resizing.
	SetAspectLock struct{ Lock bool }
	// SetAspect fits the region to the aspect ratio and locks it.
	SetAspect struct{ Aspect AspectRatio }
	// SetEnabled enables or disables the editing. Disabling restores the defaults.
	SetEnabled struct{ Enabled bool }
	// Reset restores the default transform, shape, region and aspect lock.
	Reset struct{}
	// Finish ends the session.
	Finish struct{ Accept bool }
)

func (SetRegion) event()      {}
func (SetTransform) event()   {}
func (RotateLeft) event()     {}
func (RotateRight) event()    {}
func (FlipHorizontal) event() {}
func (FlipVertical) event()   {}
func (SetShape) event()       {}
func (SetAspectLock) event()  {}
func (SetAspect) event()      {}
func (SetEnabled) event()     {}
func (Reset) event()          {}
func (Finish) event()         {}

// Reduce returns the state resulting from applying ev to s. Once the
// session is finished every event is ignored; editing events are ignored
// while the state is disabled.
func Reduce(s State, ev Event) State {
	if s.Finished() {
		return s
	}
	switch e := ev.(type) {
	case Finish:
		if e.Accept {
			s.Accepted = Accepted
		} else {
			s.Accepted = Rejected
		}
		return s
	case SetEnabled:
		if !e.Enabled {
			s = s.defaults()
		}
		s.Enabled = e.Enabled
		return s
	case Reset:
		return s.defaults()
	case SetTransform:
		t := e.Transform.Normalized()
		s.Region = Reproject(s.Region, s.Transform, t, s.Size)
		s.Transform = t
		return s
	}
	if !s.Enabled {
		return s
	}

	switch e := ev.(type) {
	case SetRegion:
		s.Region = UpdateRegion(s.Region, e.Region, s.Bounds(), s.AspectLock, s.MinSize)
	case RotateLeft:
		return Reduce(s, SetTransform{s.Transform.Rotated(-90)})
	case RotateRight:
		return Reduce(s, SetTransform{s.Transform.Rotated(90)})
	case FlipHorizontal:
		return Reduce(s, SetTransform{s.Transform.Flipped(true)})
	case FlipVertical:
		return Reduce(s, SetTransform{s.Transform.Flipped(false)})
	case SetShape:
		if e.Shape == nil {
			e.Shape = RectShape{}
		}
		s.Shape = e.Shape
	case SetAspectLock:
		s.AspectLock = e.Lock
	case SetAspect:
		if r := e.Aspect.Ratio(); r > 0 {
			s.Region = s.Region.FitAspect(r).ConstrainOffset(s.Bounds())
			s.AspectLock = true
		}
	}
	return s
}
