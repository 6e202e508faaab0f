// Package gui hosts the cropper in a gio window: the crop widget, the dialog
// chrome around it and the window event loop.
package gui

import (
	"image"
	"sync"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/esimov/cropper"
	"github.com/esimov/cropper/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

const (
	maxScreenX = 1366
	maxScreenY = 768

	// chromeHeight is the room taken by the top and the bottom bars, in dp.
	chromeHeight = 112
)

// Window is the crop window. Functions posted from other goroutines are run
// on its event loop before the next frame is laid out.
type Window struct {
	win    *app.Window
	Dialog *Dialog

	calls callQueue
}

// callQueue hands functions posted from other goroutines to the event loop.
// Once closed, posted functions run right away on the calling goroutine,
// one at a time, each followed by the after hook.
type callQueue struct {
	mu     sync.Mutex
	calls  []func()
	closed bool

	lateMu sync.Mutex
	after  func()
}

// post queues f and reports whether it was queued.
func (q *callQueue) post(f func()) bool {
	q.mu.Lock()
	if !q.closed {
		q.calls = append(q.calls, f)
		q.mu.Unlock()
		return true
	}
	q.mu.Unlock()
	q.runLate(f)
	return false
}

func (q *callQueue) run() {
	q.mu.Lock()
	calls := q.calls
	q.calls = nil
	q.mu.Unlock()
	for _, f := range calls {
		f()
	}
}

// close runs the pending functions and switches to immediate execution.
func (q *callQueue) close(after func()) {
	q.lateMu.Lock()
	q.after = after
	q.lateMu.Unlock()

	q.mu.Lock()
	q.closed = true
	calls := q.calls
	q.calls = nil
	q.mu.Unlock()
	for _, f := range calls {
		q.runLate(f)
	}
}

func (q *callQueue) runLate(f func()) {
	q.lateMu.Lock()
	defer q.lateMu.Unlock()
	f()
	if q.after != nil {
		q.after()
	}
}

// NewWindow creates a window sized after the image to crop.
func NewWindow(title string, imgSize image.Point, style cropper.Style) *Window {
	w := &Window{win: new(app.Window)}
	size := windowSize(imgSize)
	w.win.Option(
		app.Title(title),
		app.Size(unit.Dp(float32(size.X)), unit.Dp(float32(size.Y+chromeHeight))),
	)
	w.Dialog = NewDialog(style, w.Post)
	return w
}

// windowSize returns the size of the crop area in dp. The image aspect ratio
// is kept in case the image is larger than the predefined screen.
func windowSize(img image.Point) image.Point {
	w, h := float64(img.X), float64(img.Y)
	if w <= 0 || h <= 0 {
		return image.Pt(maxScreenX/2, maxScreenY/2)
	}
	if w > maxScreenX || h > maxScreenY {
		r := utils.Min(maxScreenX/w, maxScreenY/h)
		w, h = w*r, h*r
	}
	// Leave room for the handles around small images.
	w, h = utils.Max(w, 320), utils.Max(h, 240)
	return image.Pt(int(w), int(h))
}

// Post queues f for execution on the event loop. Once the window is closed
// f runs immediately on the calling goroutine, and any crop session it
// starts is rejected.
func (w *Window) Post(f func()) {
	if w.calls.post(f) {
		w.win.Invalidate()
	}
}

// Run runs the event loop until the window is destroyed. Closing the window
// rejects the running crop session.
func (w *Window) Run(c *cropper.ImageCropper) error {
	var ops op.Ops
	for {
		switch e := w.win.Event().(type) {
		case app.FrameEvent:
			w.calls.run()
			gtx := app.NewContext(&ops, e)
			w.Dialog.Layout(gtx, c)
			e.Frame(gtx.Ops)
		case app.DestroyEvent:
			w.calls.run()
			reject := rejectSession(c)
			reject()
			w.Dialog.Close()
			w.calls.close(reject)
			return e.Err
		}
	}
}

func rejectSession(c *cropper.ImageCropper) func() {
	return func() {
		if s := c.Session(); s != nil {
			s.Dispatch(cropper.Finish{Accept: false})
		}
	}
}

// Close asks the window to close.
func (w *Window) Close() {
	w.win.Perform(system.ActionClose)
}
