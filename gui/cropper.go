package gui

import (
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/esimov/cropper"
	"github.com/esimov/cropper/geom"
	"github.com/esimov/cropper/imgsrc"
)

// Cropper is the crop widget. It turns pointer input into session events,
// keeps the region in view and draws the image with the crop overlay.
// It must be used from the window event loop only.
type Cropper struct {
	// Style is given in dp and scaled to pixels while laying out.
	Style cropper.Style
	// ExtraPadding is added around the region when fitting it into view, in dp.
	ExtraPadding float32

	post func(func())

	session     *cropper.Session
	unsubscribe func()
	gesture     cropper.Gesture
	fit         *cropper.AutoFit
	anim        *cropper.ImageAnimation
	loader      *imgsrc.Loader

	decoded *imgsrc.Decoded
	imgOp   paint.ImageOp
	frame   cropper.Frame
}

// NewCropper returns a crop widget. Decoded images are handed back to the
// event loop through post.
func NewCropper(style cropper.Style, post func(func())) *Cropper {
	return &Cropper{
		Style: style,
		post:  post,
		fit:   cropper.NewAutoFit(),
		anim:  cropper.NewImageAnimation(),
	}
}

// Frame returns the last laid out frame.
func (c *Cropper) Frame() cropper.Frame {
	return c.frame
}

// Image returns the decoded image drawn by the last frame, or nil.
func (c *Cropper) Image() *imgsrc.Decoded {
	return c.decoded
}

// View returns the current view transform.
func (c *Cropper) View() cropper.ViewTransform {
	return c.fit.View()
}

// Layout handles the input and draws the session s, filling the available
// space. A nil session draws the background only.
func (c *Cropper) Layout(gtx C, s *cropper.Session) D {
	if s != c.session {
		c.setSession(s)
	}
	size := gtx.Constraints.Max
	if s == nil {
		paint.FillShape(gtx.Ops, c.Style.BackgroundColor, clip.Rect{Max: size}.Op())
		return D{Size: size}
	}

	style := c.Style.Scaled(gtx.Metric.PxPerDp)
	c.gesture.Handles = style.Handles
	c.gesture.TouchRad = style.TouchRad
	c.fit.Enabled = style.AutoZoom
	c.fit.Delay = style.BringToViewDelay

	c.handleEvents(gtx, s)

	viewport := geom.R(0, 0, float32(size.X), float32(size.Y))
	pad := cropper.ViewportPadding(style.TouchRad, c.ExtraPadding*gtx.Metric.PxPerDp)
	st := s.State()
	target := st.Region
	if !st.Enabled {
		target = st.Bounds()
	}
	view, next := c.fit.Update(gtx.Now, target, viewport.Inset(pad), c.gesture.Pending())

	c.frame = cropper.Render(st, view, viewport, style)
	c.loader.Request(imgsrc.ParamsFor(size, s.Source().Size(), c.frame.Image.Matrix))

	// The decode follows the final placement; only the drawing is animated.
	img, wake := c.anim.Update(gtx.Now, st.Transform, st.Size)
	c.frame.Image.Matrix = view.Matrix().Mul(img)
	if next.IsZero() || (!wake.IsZero() && wake.Before(next)) {
		next = wake
	}
	if !next.IsZero() {
		gtx.Execute(op.InvalidateCmd{At: next})
	}

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, c)
	drawFrame(gtx.Ops, c.frame, c.image(), c.imgOp)

	return D{Size: size}
}

// Close releases the running decode of the current session.
func (c *Cropper) Close() {
	c.setSession(nil)
}

func (c *Cropper) setSession(s *cropper.Session) {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.loader != nil {
		c.loader.Close()
		c.loader = nil
	}
	c.session = s
	c.gesture.Reset()
	c.decoded = nil
	c.imgOp = paint.ImageOp{}
	c.fit = cropper.NewAutoFit()
	c.anim = cropper.NewImageAnimation()
	if s == nil {
		return
	}
	c.loader = imgsrc.NewLoader(s.Source(), c.post)
	c.unsubscribe = s.Subscribe(func(old, new cropper.State) {
		// A drag started in the previous transformed space is meaningless.
		if old.Transform != new.Transform || !new.Enabled || new.Finished() {
			c.gesture.Reset()
		}
	})
}

// image returns the latest decoded image, refreshing its paint operation.
func (c *Cropper) image() *imgsrc.Decoded {
	d := c.loader.Image()
	if d != c.decoded {
		c.decoded = d
		c.imgOp = paint.ImageOp{}
		if d != nil {
			c.imgOp = paint.NewImageOp(d.Image)
			c.imgOp.Filter = paint.FilterLinear
		}
	}
	return c.decoded
}

func (c *Cropper) handleEvents(gtx C, s *cropper.Session) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  c,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -1000, Max: 1000},
		})
		if !ok {
			return
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		if e.Kind == pointer.Cancel {
			c.gesture.Reset()
			continue
		}
		if pe, ok := pointerEvent(e); ok {
			c.gesture.Handle(pe, s, c.fit)
		}
	}
}

// pointerEvent converts a gio pointer event. Mouse presses other than the
// primary button are ignored.
func pointerEvent(e pointer.Event) (cropper.PointerEvent, bool) {
	pe := cropper.PointerEvent{
		ID:  int(e.PointerID),
		Pos: geom.Pt(e.Position.X, e.Position.Y),
	}
	switch e.Kind {
	case pointer.Press:
		if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
			return pe, false
		}
		pe.Kind = cropper.Press
	case pointer.Drag:
		pe.Kind = cropper.Move
	case pointer.Release:
		pe.Kind = cropper.Release
	case pointer.Cancel:
		pe.Kind = cropper.Cancel
	case pointer.Scroll:
		pe.Kind = cropper.Scroll
		pe.Scroll = e.Scroll.Y
	default:
		return pe, false
	}
	return pe, true
}
