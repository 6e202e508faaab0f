package cropper

import (
	"testing"

	"github.com/esimov/cropper/geom"
	"github.com/stretchr/testify/assert"
)

func TestTouch_FindHandlePriority(t *testing.T) {
	assert := assert.New(t)
	view := geom.Identity()
	region := geom.R(100, 100, 300, 200)

	h := FindHandle(geom.Pt(105, 98), view, region, DefaultHandles, 20)
	assert.False(h.Body)
	assert.Equal(geom.Pt(0, 0), h.Handle)

	h = FindHandle(geom.Pt(200, 104), view, region, DefaultHandles, 20)
	assert.False(h.Body)
	assert.Equal(geom.Pt(0.5, 0), h.Handle)

	h = FindHandle(geom.Pt(200, 150), view, region, DefaultHandles, 20)
	assert.True(h.Body)
	assert.Equal(region, h.Initial)

	// A press missing the region still pans it.
	h = FindHandle(geom.Pt(5, 5), view, region, DefaultHandles, 20)
	assert.True(h.Body)
}

func TestTouch_CornerWinsOverEdge(t *testing.T) {
	// In a tiny region the edge handle is closer, but corners come first.
	h := FindHandle(geom.Pt(105, 100), geom.Identity(), geom.R(100, 100, 110, 110), DefaultHandles, 20)
	assert.False(t, h.Body)
	assert.True(t, isCorner(h.Handle))
}

func TestTouch_RadiusFollowsZoom(t *testing.T) {
	assert := assert.New(t)
	view := ViewTransform{Scale: 4}.Matrix()
	region := geom.R(100, 100, 300, 200)

	h := FindHandle(geom.Pt(412, 400), view, region, DefaultHandles, 20)
	assert.False(h.Body)
	assert.Equal(geom.Pt(0, 0), h.Handle)

	// 40 view pixels away is only 10 image pixels, still beyond the 5 pixel radius.
	h = FindHandle(geom.Pt(440, 440), view, region, DefaultHandles, 20)
	assert.True(h.Body)
}

func TestTouch_DragUnderZoom(t *testing.T) {
	assert := assert.New(t)
	view := ViewTransform{Scale: 4}.Matrix()
	region := geom.R(100, 100, 300, 200)

	h := FindHandle(geom.Pt(400, 400), view, region, DefaultHandles, 20)
	assert.Equal(geom.Pt(10, 5).Add(region.Min), h.Drag(geom.Pt(440, 420), view, region).Min)
	assert.Equal(region.Max, h.Drag(geom.Pt(440, 420), view, region).Max)

	body := FindHandle(geom.Pt(800, 600), view, region, DefaultHandles, 20)
	assert.True(body.Body)
	moved := body.Drag(geom.Pt(760, 640), view, region)
	assert.Equal(geom.R(90, 110, 290, 210), moved)
}

func TestTouch_EdgeDragMovesOneSide(t *testing.T) {
	region := geom.R(100, 100, 300, 200)
	h := DragHandle{Handle: geom.Pt(1, 0.5), Start: geom.Pt(300, 150), Initial: region}

	got := h.Drag(geom.Pt(350, 170), geom.Identity(), region)
	assert.Equal(t, geom.R(100, 100, 350, 200), got)
}

func newTestFit(region geom.Rect) *AutoFit {
	fit := NewAutoFit()
	fit.Snap(region, region)
	return fit
}

func TestGesture_RegionDrag(t *testing.T) {
	assert := assert.New(t)
	s := newTestSession(1000, 500)
	fit := newTestFit(geom.R(0, 0, 1000, 500))
	g := &Gesture{Handles: DefaultHandles, TouchRad: 20}

	g.Handle(PointerEvent{ID: 1, Kind: Press, Pos: geom.Pt(2, 3)}, s, fit)
	assert.True(g.Pending())
	assert.NotNil(g.Dragging())

	g.Handle(PointerEvent{ID: 1, Kind: Move, Pos: geom.Pt(52, 33)}, s, fit)
	assert.Equal(geom.R(50, 30, 1000, 500), s.State().Region)

	g.Handle(PointerEvent{ID: 1, Kind: Release, Pos: geom.Pt(52, 33)}, s, fit)
	assert.False(g.Pending())
}

func TestGesture_SecondPointerEndsDrag(t *testing.T) {
	assert := assert.New(t)
	s := newTestSession(1000, 500)
	fit := newTestFit(geom.R(0, 0, 1000, 500))
	g := &Gesture{Handles: DefaultHandles, TouchRad: 20}

	g.Handle(PointerEvent{ID: 1, Kind: Press, Pos: geom.Pt(2, 3)}, s, fit)
	g.Handle(PointerEvent{ID: 1, Kind: Move, Pos: geom.Pt(52, 33)}, s, fit)
	g.Handle(PointerEvent{ID: 2, Kind: Press, Pos: geom.Pt(500, 300)}, s, fit)

	// The applied drag is kept, further moves pan the view.
	assert.Nil(g.Dragging())
	assert.True(g.Pending())
	g.Handle(PointerEvent{ID: 1, Kind: Move, Pos: geom.Pt(152, 33)}, s, fit)
	assert.Equal(geom.R(50, 30, 1000, 500), s.State().Region)
	assert.NotEqual(ViewTransform{Scale: 1}, fit.View())

	g.Handle(PointerEvent{ID: 1, Kind: Cancel}, s, fit)
	assert.True(g.Pending())
	g.Handle(PointerEvent{ID: 2, Kind: Release}, s, fit)
	assert.False(g.Pending())
	assert.Equal(geom.R(50, 30, 1000, 500), s.State().Region)
}

func TestGesture_Pinch(t *testing.T) {
	assert := assert.New(t)
	s := newTestSession(1000, 500)
	fit := newTestFit(geom.R(0, 0, 1000, 500))
	g := &Gesture{Handles: DefaultHandles, TouchRad: 20}

	g.Handle(PointerEvent{ID: 1, Kind: Press, Pos: geom.Pt(100, 100)}, s, fit)
	g.Handle(PointerEvent{ID: 2, Kind: Press, Pos: geom.Pt(200, 100)}, s, fit)
	g.Handle(PointerEvent{ID: 2, Kind: Move, Pos: geom.Pt(300, 100)}, s, fit)

	v := fit.View()
	assert.InDelta(2, v.Scale, geom.Eps)
	// The new centroid stays over the same image point it had before the pan.
	assert.True(v.Matrix().Apply(geom.Pt(150, 100)).Eq(geom.Pt(200, 100)))
	assert.Equal(geom.R(0, 0, 1000, 500), s.State().Region)
}

func TestGesture_Scroll(t *testing.T) {
	s := newTestSession(1000, 500)
	fit := newTestFit(geom.R(0, 0, 1000, 500))
	g := &Gesture{}

	g.Handle(PointerEvent{Kind: Scroll, Pos: geom.Pt(500, 250), Scroll: -100}, s, fit)
	assert.Greater(t, fit.View().Scale, float32(1))
	assert.True(t, fit.View().Matrix().Apply(geom.Pt(500, 250)).Eq(geom.Pt(500, 250)))
}

func TestGesture_DisabledPans(t *testing.T) {
	assert := assert.New(t)
	s := newTestSession(1000, 500)
	s.Dispatch(SetEnabled{false})
	fit := newTestFit(geom.R(0, 0, 1000, 500))
	g := &Gesture{Handles: DefaultHandles, TouchRad: 20}

	g.Handle(PointerEvent{ID: 1, Kind: Press, Pos: geom.Pt(2, 3)}, s, fit)
	assert.Nil(g.Dragging())
	g.Handle(PointerEvent{ID: 1, Kind: Move, Pos: geom.Pt(12, 3)}, s, fit)
	assert.InDelta(10, fit.View().Offset.X, geom.Eps)
	assert.Equal(geom.R(0, 0, 1000, 500), s.State().Region)
}
