package gui

import (
	"context"
	"fmt"
	"image/color"
	"reflect"

	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/cropper"
	"github.com/esimov/cropper/face"
)

var (
	barColor  = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	textColor = color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// Dialog lays out the crop widget between a top bar with the cancel, reset
// and done actions and a bottom bar with the crop controls.
type Dialog struct {
	Cropper *Cropper

	// Detector, if set, enables the face button. With AutoFace the faces
	// are searched as soon as a session starts.
	Detector   *face.Detector
	AutoFace   bool
	FaceMargin float32

	post   func(func())
	theme  *material.Theme
	shapes []cropper.Shape

	back, reset, accept       widget.Clickable
	rotateLeft, rotateRight   widget.Clickable
	flipH, flipV, shape, lock widget.Clickable
	faces                     widget.Clickable
	aspects                   []widget.Clickable

	session   *cropper.Session
	cancel    context.CancelFunc
	detecting bool
	notice    string
}

// NewDialog returns the dialog around a new crop widget.
func NewDialog(style cropper.Style, post func(func())) *Dialog {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.Palette.Fg = textColor
	th.Palette.Bg = barColor
	th.Palette.ContrastBg = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
	th.Palette.ContrastFg = textColor

	shapes := style.Shapes
	if len(shapes) == 0 {
		shapes = []cropper.Shape{cropper.RectShape{}}
	}
	return &Dialog{
		Cropper:    NewCropper(style, post),
		FaceMargin: 0.3,
		post:       post,
		theme:      th,
		shapes:     shapes,
		aspects:    make([]widget.Clickable, len(style.Aspects)),
	}
}

// Layout draws the dialog for the session of c. While no session runs the
// loading status is shown instead.
func (d *Dialog) Layout(gtx C, c *cropper.ImageCropper) D {
	s := c.Session()
	if s != d.session {
		d.startSession(s)
	}
	if s != nil {
		d.handleKeys(gtx, s)
		d.handleClicks(gtx, s)
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return d.bar(gtx, d.topBar(s))
		}),
		layout.Flexed(1, func(gtx C) D {
			if s == nil {
				return d.status(gtx, c.Status())
			}
			return d.Cropper.Layout(gtx, s)
		}),
		layout.Rigid(func(gtx C) D {
			if s == nil {
				return D{}
			}
			return d.bar(gtx, d.bottomBar(s))
		}),
	)
}

// Close stops the background work of the dialog.
func (d *Dialog) Close() {
	d.startSession(nil)
	d.Cropper.Close()
}

func (d *Dialog) startSession(s *cropper.Session) {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.session = s
	d.detecting = false
	d.notice = ""
	if s != nil && d.AutoFace {
		d.detectFaces(s)
	}
}

func (d *Dialog) handleKeys(gtx C, s *cropper.Session) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: key.NameEscape},
			key.Filter{Name: key.NameReturn},
			key.Filter{Name: key.NameEnter},
			key.Filter{Name: key.NameDeleteBackward},
			key.Filter{Name: "R"},
			key.Filter{Name: "L"},
			key.Filter{Name: "H"},
			key.Filter{Name: "V"},
			key.Filter{Name: "A"},
			key.Filter{Name: "S"},
			key.Filter{Name: "F"},
		)
		if !ok {
			return
		}
		e, ok := ev.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		if e.Name == "F" {
			d.detectFaces(s)
			continue
		}
		if ev := keyEvent(e.Name, s.State(), d.shapes); ev != nil {
			s.Dispatch(ev)
		}
	}
}

// keyEvent maps a key binding to a session event, or nil.
func keyEvent(name key.Name, st cropper.State, shapes []cropper.Shape) cropper.Event {
	switch name {
	case key.NameEscape:
		return cropper.Finish{Accept: false}
	case key.NameReturn, key.NameEnter:
		return cropper.Finish{Accept: true}
	case key.NameDeleteBackward:
		return cropper.Reset{}
	case "R":
		return cropper.RotateRight{}
	case "L":
		return cropper.RotateLeft{}
	case "H":
		return cropper.FlipHorizontal{}
	case "V":
		return cropper.FlipVertical{}
	case "A":
		return cropper.SetAspectLock{Lock: !st.AspectLock}
	case "S":
		return cropper.SetShape{Shape: nextShape(shapes, st.Shape)}
	}
	return nil
}

// nextShape returns the shape following cur in shapes, cycling around.
func nextShape(shapes []cropper.Shape, cur cropper.Shape) cropper.Shape {
	for i, s := range shapes {
		if reflect.DeepEqual(s, cur) {
			return shapes[(i+1)%len(shapes)]
		}
	}
	return shapes[0]
}

func (d *Dialog) handleClicks(gtx C, s *cropper.Session) {
	st := s.State()
	clicks := []struct {
		btn *widget.Clickable
		ev  cropper.Event
	}{
		{&d.back, cropper.Finish{Accept: false}},
		{&d.reset, cropper.Reset{}},
		{&d.accept, cropper.Finish{Accept: true}},
		{&d.rotateLeft, cropper.RotateLeft{}},
		{&d.rotateRight, cropper.RotateRight{}},
		{&d.flipH, cropper.FlipHorizontal{}},
		{&d.flipV, cropper.FlipVertical{}},
		{&d.shape, cropper.SetShape{Shape: nextShape(d.shapes, st.Shape)}},
		{&d.lock, cropper.SetAspectLock{Lock: !st.AspectLock}},
	}
	for _, c := range clicks {
		for c.btn.Clicked(gtx) {
			s.Dispatch(c.ev)
		}
	}
	for i := range d.aspects {
		for d.aspects[i].Clicked(gtx) {
			s.Dispatch(cropper.SetAspect{Aspect: d.Cropper.Style.Aspects[i]})
		}
	}
	for d.faces.Clicked(gtx) {
		d.detectFaces(s)
	}
}

// detectFaces searches the faces on a background goroutine and moves the
// region over them.
func (d *Dialog) detectFaces(s *cropper.Session) {
	if d.Detector == nil || d.detecting {
		return
	}
	d.detecting = true
	d.notice = "detecting faces..."
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	det, margin := d.Detector, d.FaceMargin
	go func() {
		faces, err := det.DetectSource(ctx, s.Source())
		if ctx.Err() != nil {
			return
		}
		d.post(func() {
			if d.session != s {
				return
			}
			d.detecting = false
			switch {
			case err != nil:
				d.notice = fmt.Sprintf("face detection failed: %v", err)
				return
			case len(faces) == 0:
				d.notice = "no faces found"
				return
			}
			d.notice = fmt.Sprintf("%d face(s) found", len(faces))
			st := s.State()
			if r, ok := cropper.FaceRegion(faces, st.Transform, st.Size, margin); ok {
				s.Dispatch(cropper.SetRegion{Region: r})
			}
		})
	}()
}

func (d *Dialog) topBar(s *cropper.Session) []layout.FlexChild {
	title := "Crop"
	if s != nil {
		sz := s.Source().Size()
		title = fmt.Sprintf("Crop %dx%d", sz.X, sz.Y)
		if d.notice != "" {
			title += " · " + d.notice
		}
	}
	return []layout.FlexChild{
		layout.Rigid(d.button(&d.back, "Cancel", s != nil)),
		layout.Flexed(1, func(gtx C) D {
			return layout.Center.Layout(gtx, material.Body1(d.theme, title).Layout)
		}),
		layout.Rigid(d.button(&d.reset, "Reset", s != nil)),
		layout.Rigid(d.button(&d.accept, "Done", s != nil)),
	}
}

func (d *Dialog) bottomBar(s *cropper.Session) []layout.FlexChild {
	st := s.State()
	lock := "Free"
	if st.AspectLock {
		lock = "Locked"
	}
	children := []layout.FlexChild{
		layout.Rigid(d.button(&d.rotateLeft, "⟲", true)),
		layout.Rigid(d.button(&d.rotateRight, "⟳", true)),
		layout.Rigid(d.button(&d.flipH, "⇋", true)),
		layout.Rigid(d.button(&d.flipV, "⇵", true)),
		layout.Rigid(d.button(&d.shape, cropper.ShapeName(st.Shape), true)),
		layout.Rigid(d.button(&d.lock, lock, true)),
	}
	for i := range d.aspects {
		children = append(children, layout.Rigid(d.button(&d.aspects[i], d.Cropper.Style.Aspects[i].String(), true)))
	}
	if d.Detector != nil {
		children = append(children, layout.Rigid(d.button(&d.faces, "Face", !d.detecting)))
	}
	return children
}

func (d *Dialog) bar(gtx C, children []layout.FlexChild) D {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Background{}.Layout(gtx,
		func(gtx C) D {
			paint.FillShape(gtx.Ops, barColor, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		},
		func(gtx C) D {
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx C) D {
				return layout.Flex{
					Axis:      layout.Horizontal,
					Alignment: layout.Middle,
					Spacing:   layout.SpaceEvenly,
				}.Layout(gtx, children...)
			})
		},
	)
}

func (d *Dialog) button(btn *widget.Clickable, label string, enabled bool) layout.Widget {
	return func(gtx C) D {
		if !enabled {
			gtx = gtx.Disabled()
		}
		return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx C) D {
			b := material.Button(d.theme, btn, label)
			b.TextSize = unit.Sp(13)
			b.Inset = layout.UniformInset(unit.Dp(8))
			return b.Layout(gtx)
		})
	}
}

// status shows the loading status while no session runs.
func (d *Dialog) status(gtx C, l cropper.Loading) D {
	size := gtx.Constraints.Max
	paint.FillShape(gtx.Ops, d.Cropper.Style.BackgroundColor, clip.Rect{Max: size}.Op())
	if l == cropper.Idle {
		return D{Size: size}
	}
	layout.Center.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				gtx.Constraints.Max = gtx.Constraints.Max.Div(8)
				return material.Loader(d.theme).Layout(gtx)
			}),
			layout.Rigid(material.Body1(d.theme, l.String()).Layout),
		)
	})
	return D{Size: size}
}
