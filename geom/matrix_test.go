package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix_RoundTrip(t *testing.T) {
	assert := assert.New(t)
	r := R(12, 7, 80, 33)

	for _, m := range []Matrix{
		Identity(),
		Translate(Pt(5, -3)),
		Scale(2, 0.5),
		RotateDeg(90),
		RotateDeg(270).Mul(Scale(-1, 1)),
		Translate(Pt(40, 20)).Mul(RotateDeg(180)).Mul(Scale(1.5, 1.5)),
	} {
		back := m.Invert().MapRect(m.MapRect(r))
		assert.True(back.Eq(r), "%v: %v != %v", m, back, r)
	}
}

func TestMatrix_RotateDegExact(t *testing.T) {
	assert := assert.New(t)

	m := RotateDeg(90)
	assert.Equal(Pt(0, 1), m.Apply(Pt(1, 0)))
	assert.Equal(Pt(-1, 0), m.Apply(Pt(0, 1)))

	full := RotateDeg(90).Mul(RotateDeg(90)).Mul(RotateDeg(90)).Mul(RotateDeg(90))
	assert.Equal(Identity(), full)
	assert.Equal(RotateDeg(-90), RotateDeg(270))
}

func TestMatrix_MulOrder(t *testing.T) {
	assert := assert.New(t)

	// Scale first, then translate.
	m := Translate(Pt(10, 0)).Mul(Scale(2, 2))
	assert.Equal(Pt(12, 2), m.Apply(Pt(1, 1)))
	assert.Equal(Pt(2, 2), m.ApplyVector(Pt(1, 1)))
}

func TestMatrix_ScaleFactor(t *testing.T) {
	assert := assert.New(t)

	assert.InDelta(2, Scale(2, 2).Mul(RotateDeg(90)).ScaleFactor(), Eps)
	assert.InDelta(1, Scale(-1, 1).ScaleFactor(), Eps)
	assert.Equal(Identity(), Scale(0, 1).Invert())
}

func TestPath_Hole(t *testing.T) {
	assert := assert.New(t)

	outer := R(0, 0, 100, 100)
	hole := Path{Reverse(RectPath(R(10, 10, 20, 20))[0])}
	p := Hole(outer, hole)

	assert.Len(p, 2)
	assert.Greater(Area(p[0]), float32(0))
	assert.Less(Area(p[1]), float32(0))
	assert.Equal(outer, p.Bounds())
}

func TestPath_Ellipse(t *testing.T) {
	assert := assert.New(t)

	pts := Ellipse(R(0, 0, 40, 20), 64)
	assert.Len(pts, 64)
	assert.Greater(Area(pts), float32(0))
	b := Path{pts}.Bounds()
	assert.True(b.In(R(0, 0, 40, 20)))
	assert.InDelta(40, b.Dx(), 0.1)
}
