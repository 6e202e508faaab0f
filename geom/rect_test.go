package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_ConstrainOffsetKeepsSize(t *testing.T) {
	assert := assert.New(t)
	bounds := R(0, 0, 100, 50)

	for _, r := range []Rect{
		R(-20, -10, 10, 20),
		R(90, 40, 130, 60),
		R(10, 10, 30, 30),
		R(-50, 0, 150, 20),
	} {
		c := r.ConstrainOffset(bounds)
		assert.InDelta(r.Dx(), c.Dx(), Eps)
		assert.InDelta(r.Dy(), c.Dy(), Eps)
	}
}

func TestRect_ConstrainOffsetInside(t *testing.T) {
	assert := assert.New(t)
	bounds := R(0, 0, 100, 50)

	c := R(90, 40, 130, 60).ConstrainOffset(bounds)
	assert.True(c.In(bounds))
	assert.Equal(R(60, 30, 100, 50), c)

	c = R(-20, -10, 10, 20).ConstrainOffset(bounds)
	assert.Equal(R(0, 0, 30, 30), c)
}

func TestRect_ConstrainOffsetCentersOversized(t *testing.T) {
	assert := assert.New(t)
	bounds := R(0, 0, 100, 50)

	c := R(-70, 10, 130, 20).ConstrainOffset(bounds)
	assert.InDelta(-50, c.Min.X, Eps)
	assert.InDelta(150, c.Max.X, Eps)
	assert.InDelta(10, c.Min.Y, Eps)
	assert.InDelta(bounds.Center().X, c.Center().X, Eps)
}

func TestRect_ConstrainResize(t *testing.T) {
	assert := assert.New(t)
	bounds := R(0, 0, 100, 50)

	assert.Equal(R(0, 10, 100, 50), R(-10, 10, 120, 70).ConstrainResize(bounds))
	assert.True(R(120, 10, 140, 20).ConstrainResize(bounds).Empty())
}

func TestRect_KeepAspectEdgeDrag(t *testing.T) {
	assert := assert.New(t)
	old := R(10, 10, 50, 30) // 2:1

	// Right edge dragged: height follows, vertical center stays.
	r := R(10, 10, 70, 30).KeepAspect(old)
	assert.InDelta(60, r.Dx(), Eps)
	assert.InDelta(30, r.Dy(), Eps)
	assert.InDelta(10, r.Min.X, Eps)
	assert.InDelta(20, r.Center().Y, Eps)

	// Bottom edge dragged: width follows, horizontal center stays.
	r = R(10, 10, 50, 50).KeepAspect(old)
	assert.InDelta(80, r.Dx(), Eps)
	assert.InDelta(40, r.Dy(), Eps)
	assert.InDelta(10, r.Min.Y, Eps)
	assert.InDelta(30, r.Center().X, Eps)
}

func TestRect_KeepAspectCornerDrag(t *testing.T) {
	assert := assert.New(t)
	old := R(10, 10, 50, 30)

	r := R(10, 10, 90, 35).KeepAspect(old)
	assert.InDelta(2, r.Dx()/r.Dy(), Eps)
	assert.Equal(Pt(10, 10), r.Min)
	assert.InDelta(80, r.Dx(), Eps)

	// Top-left corner dragged: the bottom-right corner stays put.
	r = R(0, 0, 50, 30).KeepAspect(old)
	assert.InDelta(2, r.Dx()/r.Dy(), Eps)
	assert.True(r.Max.Eq(Pt(50, 30)))
}

func TestRect_KeepAspectDegenerate(t *testing.T) {
	r := R(60, 10, 50, 30)
	assert.Equal(t, r, r.KeepAspect(R(10, 10, 50, 30)))
}

func TestRect_LimitSize(t *testing.T) {
	assert := assert.New(t)
	bounds := R(0, 0, 400, 300)

	r := R(-50, 100, 450, 150).LimitSize(bounds)
	assert.InDelta(400, r.Dx(), Eps)
	assert.InDelta(40, r.Dy(), Eps)
	assert.True(r.Center().Eq(Pt(200, 125)))

	inside := R(10, 10, 30, 20)
	assert.Equal(inside, inside.LimitSize(bounds))
}

func TestRect_ScaleToFit(t *testing.T) {
	assert := assert.New(t)
	bounds := R(0, 0, 100, 100)
	old := R(20, 20, 60, 40)

	r := R(20, 20, 160, 90).ScaleToFit(bounds, old)
	assert.True(r.In(bounds))
	assert.InDelta(2, r.Dx()/r.Dy(), Eps)
	assert.True(r.Min.Eq(Pt(20, 20)))
	assert.InDelta(100, r.Max.X, Eps)

	inside := R(10, 10, 30, 20)
	assert.Equal(inside, inside.ScaleToFit(bounds, old))
}

func TestRect_SetSize(t *testing.T) {
	assert := assert.New(t)
	old := R(100, 100, 300, 200)

	// Degenerate rect with the bottom-right edges unmoved.
	r := R(350, 250, 300, 200).SetSize(old, 1)
	assert.InDelta(2, r.Dx(), Eps)
	assert.InDelta(1, r.Dy(), Eps)
	assert.True(r.Max.Eq(Pt(300, 200)))

	r = R(10, 10, 10, 10).SetSize(R(0, 0, 10, 40), 4)
	assert.InDelta(4, r.Dx(), Eps)
	assert.InDelta(16, r.Dy(), Eps)
}

func TestRect_FitAspect(t *testing.T) {
	assert := assert.New(t)

	r := R(0, 0, 200, 100).FitAspect(1)
	assert.Equal(R(50, 0, 150, 100), r)

	r = R(0, 0, 100, 100).FitAspect(16.0 / 9)
	assert.InDelta(100, r.Dx(), Eps)
	assert.InDelta(56.25, r.Dy(), Eps)
	assert.True(r.Center().Eq(Pt(50, 50)))
}

func TestRect_UnionIntersect(t *testing.T) {
	assert := assert.New(t)
	a, b := R(0, 0, 10, 10), R(5, 5, 20, 20)

	assert.Equal(R(0, 0, 20, 20), a.Union(b))
	assert.Equal(R(5, 5, 10, 10), a.Intersect(b))
	assert.Equal(b, Rect{}.Union(b))
	assert.True(a.Intersect(R(30, 30, 40, 40)).Empty())
}
