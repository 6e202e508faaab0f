package cropper

import (
	"github.com/chewxy/math32"
	"github.com/esimov/cropper/geom"
)

// scrollZoomRate converts scroll distance into a zoom factor exponent.
const scrollZoomRate = 0.005

// Handles are expressed as relative positions on the crop rectangle:
// (0,0) is the top-left corner, (0.5,1) the middle of the bottom edge.
var (
	CornerHandles  = []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	EdgeHandles    = []geom.Point{{X: 0.5, Y: 0}, {X: 1, Y: 0.5}, {X: 0.5, Y: 1}, {X: 0, Y: 0.5}}
	DefaultHandles = append(append([]geom.Point{}, CornerHandles...), EdgeHandles...)
)

func isCorner(h geom.Point) bool {
	return (h.X == 0 || h.X == 1) && (h.Y == 0 || h.Y == 1)
}

// DragHandle is the part of the crop rectangle grabbed by a pointer.
type DragHandle struct {
	Handle  geom.Point // relative handle position, unused when Body is set
	Body    bool       // the whole rectangle is moved
	Start   geom.Point // pointer position at press, in transformed image space
	Initial geom.Rect  // region at press
}

// FindHandle returns the handle grabbed by a press at pos, given in view
// coordinates. The touch radius is measured on screen, so it shrinks in image
// space as the view zooms in. Corners win over edges; a press hitting no
// handle moves the whole rectangle.
func FindHandle(pos geom.Point, view geom.Matrix, region geom.Rect, handles []geom.Point, touchRad float32) DragHandle {
	p := view.Invert().Apply(pos)
	rad := touchRad
	if s := view.ScaleFactor(); s > 0 {
		rad /= s
	}
	d := DragHandle{Body: true, Start: p, Initial: region}

	for _, corners := range [2]bool{true, false} {
		best := rad
		for _, h := range handles {
			if isCorner(h) != corners {
				continue
			}
			if dist := region.Rel(h).Sub(p).Len(); dist <= best {
				best = dist
				d.Handle, d.Body = h, false
			}
		}
		if !d.Body {
			return d
		}
	}
	return d
}

// Drag returns the region proposed by moving the pointer to pos. The pointer
// delta since the press is applied to the grabbed edges of the initial region;
// edges that are not grabbed keep their current position.
func (d DragHandle) Drag(pos geom.Point, view geom.Matrix, current geom.Rect) geom.Rect {
	delta := view.Invert().Apply(pos).Sub(d.Start)
	if d.Body {
		return geom.RectAt(d.Initial.Min.Add(delta), current.Size())
	}
	r := current
	switch d.Handle.X {
	case 0:
		r.Min.X = d.Initial.Min.X + delta.X
	case 1:
		r.Max.X = d.Initial.Max.X + delta.X
	}
	switch d.Handle.Y {
	case 0:
		r.Min.Y = d.Initial.Min.Y + delta.Y
	case 1:
		r.Max.Y = d.Initial.Max.Y + delta.Y
	}
	return r
}

// PointerKind is the type of a pointer event.
type PointerKind uint8

const (
	Press PointerKind = iota
	Move
	Release
	Cancel
	Scroll
)

// PointerEvent is a toolkit independent pointer event in view coordinates.
type PointerEvent struct {
	ID     int
	Kind   PointerKind
	Pos    geom.Point
	Scroll float32 // vertical scroll distance, positive downwards
}

// Gesture tracks the pointers over the cropper. A single pointer drags the
// crop region; as soon as a second pointer goes down the drag ends, keeping
// what was already applied, and the pointers pan and zoom the view until all
// of them are released.
type Gesture struct {
	Handles  []geom.Point
	TouchRad float32

	pointers map[int]geom.Point
	drag     *DragHandle
	dragID   int
	viewing  bool
}

// Pending reports whether a region drag or a view gesture is in progress.
func (g *Gesture) Pending() bool {
	return g.drag != nil || g.viewing
}

// Dragging returns the active region drag, or nil.
func (g *Gesture) Dragging() *DragHandle {
	return g.drag
}

// Reset forgets every tracked pointer.
func (g *Gesture) Reset() {
	g.pointers = nil
	g.drag = nil
	g.viewing = false
}

// Handle processes a pointer event. Region changes are dispatched to the
// session, view changes are applied to fit.
func (g *Gesture) Handle(ev PointerEvent, s *Session, fit *AutoFit) {
	if g.pointers == nil {
		g.pointers = make(map[int]geom.Point)
	}
	switch ev.Kind {
	case Scroll:
		if ev.Scroll != 0 {
			fit.ZoomAt(ev.Pos, math32.Exp(-ev.Scroll*scrollZoomRate))
		}
	case Press:
		g.pointers[ev.ID] = ev.Pos
		if len(g.pointers) > 1 {
			g.drag = nil
			g.viewing = true
			return
		}
		st := s.State()
		if !st.Enabled || st.Finished() {
			g.viewing = true
			return
		}
		h := FindHandle(ev.Pos, fit.View().Matrix(), st.Region, g.Handles, g.TouchRad)
		g.drag, g.dragID = &h, ev.ID
	case Move:
		if _, ok := g.pointers[ev.ID]; !ok {
			return
		}
		if g.drag != nil && ev.ID == g.dragID {
			g.pointers[ev.ID] = ev.Pos
			next := g.drag.Drag(ev.Pos, fit.View().Matrix(), s.State().Region)
			s.Dispatch(SetRegion{next})
			return
		}
		if !g.viewing {
			g.pointers[ev.ID] = ev.Pos
			return
		}
		c0, d0 := g.spread()
		g.pointers[ev.ID] = ev.Pos
		c1, d1 := g.spread()
		fit.Pan(c1.Sub(c0))
		if len(g.pointers) > 1 && d0 > 0 && d1 > 0 {
			fit.ZoomAt(c1, d1/d0)
		}
	case Release, Cancel:
		delete(g.pointers, ev.ID)
		if g.drag != nil && ev.ID == g.dragID {
			g.drag = nil
		}
		if len(g.pointers) == 0 {
			g.viewing = false
		}
	}
}

// spread returns the centroid of the pointers and their mean distance from it.
func (g *Gesture) spread() (geom.Point, float32) {
	var c geom.Point
	for _, p := range g.pointers {
		c = c.Add(p)
	}
	n := float32(len(g.pointers))
	c = c.Mul(1 / n)
	var d float32
	for _, p := range g.pointers {
		d += p.Sub(c).Len()
	}
	return c, d / n
}
