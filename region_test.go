package cropper

import (
	"math/rand"
	"testing"

	"github.com/esimov/cropper/geom"
	"github.com/stretchr/testify/assert"
)

func randRect(rnd *rand.Rand, lo, hi int) geom.Rect {
	x0 := float32(lo + rnd.Intn(hi-lo))
	y0 := float32(lo + rnd.Intn(hi-lo))
	x1 := float32(lo + rnd.Intn(hi-lo))
	y1 := float32(lo + rnd.Intn(hi-lo))
	return geom.R(x0, y0, x1, y1)
}

func TestRegion_PureMove(t *testing.T) {
	assert := assert.New(t)
	rnd := rand.New(rand.NewSource(1))
	bounds := geom.R(0, 0, 400, 300)

	for i := 0; i < 500; i++ {
		old := randRect(rnd, 0, 300).Canon().Intersect(bounds)
		if old.Empty() {
			continue
		}
		next := old.Add(geom.Pt(float32(rnd.Intn(800)-400), float32(rnd.Intn(600)-300)))
		for _, lock := range []bool{false, true} {
			got := UpdateRegion(old, next, bounds, lock, 1)
			assert.Equal(next.ConstrainOffset(bounds), got)
			assert.True(got.SameSize(old))
			assert.True(got.In(bounds))
		}
	}
}

func TestRegion_AspectLockPreservesRatio(t *testing.T) {
	assert := assert.New(t)
	rnd := rand.New(rand.NewSource(2))
	bounds := geom.R(0, 0, 400, 300)

	for i := 0; i < 1000; i++ {
		old := randRect(rnd, 0, 300).Canon().Intersect(bounds)
		if old.Empty() {
			continue
		}
		next := randRect(rnd, -200, 600)
		got := UpdateRegion(old, next, bounds, true, 1)

		assert.False(got.Empty(), "%v -> %v", old, next)
		assert.True(got.In(bounds), "%v -> %v = %v", old, next, got)
		want := old.Dx() / old.Dy()
		assert.InDelta(got.Dy()*want, got.Dx(), 1e-2, "%v -> %v = %v", old, next, got)
	}
}

func TestRegion_FreeResizeStaysInside(t *testing.T) {
	assert := assert.New(t)
	rnd := rand.New(rand.NewSource(3))
	bounds := geom.R(0, 0, 400, 300)

	for i := 0; i < 1000; i++ {
		old := randRect(rnd, 0, 300).Canon().Intersect(bounds)
		if old.Empty() {
			continue
		}
		got := UpdateRegion(old, randRect(rnd, -200, 600), bounds, false, 1)
		assert.False(got.Empty())
		assert.True(got.In(bounds))
	}
}

func TestRegion_ResizeClampsEdges(t *testing.T) {
	old := geom.R(100, 100, 300, 200)
	got := UpdateRegion(old, geom.R(-50, 100, 300, 260), geom.R(0, 0, 1000, 500), false, 1)
	assert.Equal(t, geom.R(0, 100, 300, 260), got)
}

func TestRegion_AspectLockedCollapse(t *testing.T) {
	assert := assert.New(t)
	old := geom.R(100, 100, 300, 200)
	bounds := geom.R(0, 0, 1000, 500)

	// The top-left corner dragged past the bottom-right one.
	got := UpdateRegion(old, geom.R(350, 250, 300, 200), bounds, true, 1)
	assert.False(got.Empty())
	assert.InDelta(2, got.Dx(), geom.Eps)
	assert.InDelta(1, got.Dy(), geom.Eps)
	assert.True(got.Max.Eq(geom.Pt(300, 200)))

	// A larger minimum size keeps the aspect ratio too.
	got = UpdateRegion(old, geom.R(350, 250, 300, 200), bounds, true, 10)
	assert.InDelta(20, got.Dx(), geom.Eps)
	assert.InDelta(10, got.Dy(), geom.Eps)
}

func TestRegion_CollapseOutsideBounds(t *testing.T) {
	assert := assert.New(t)
	old := geom.R(100, 100, 300, 200)
	bounds := geom.R(0, 0, 1000, 500)

	got := UpdateRegion(old, geom.R(1200, 100, 1300, 250), bounds, false, 1)
	assert.False(got.Empty())
	assert.True(got.In(bounds))
}

func TestRegion_CollapseLargerThanBounds(t *testing.T) {
	assert := assert.New(t)
	bounds := geom.R(0, 0, 400, 300)

	// A thin full width region: the fallback of the old aspect ratio is wider than the image.
	thin := geom.R(0, 100, 400, 100.5)
	for _, lock := range []bool{false, true} {
		got := UpdateRegion(thin, geom.R(0, 100, 400, 99), bounds, lock, 1)
		assert.False(got.Empty())
		assert.True(got.In(bounds), "lock=%v: %v", lock, got)
		assert.InDelta(800, got.Dx()/got.Dy(), 1)
	}

	// A minimum size too large for the image keeps the aspect ratio and fits.
	old := geom.R(0, 100, 400, 140)
	for _, lock := range []bool{false, true} {
		got := UpdateRegion(old, geom.R(0, 100, 400, 90), bounds, lock, 50)
		assert.True(got.In(bounds), "lock=%v: %v", lock, got)
		assert.InDelta(400, got.Dx(), geom.Eps)
		assert.InDelta(40, got.Dy(), geom.Eps)
	}

	s := Reduce(NewState(geom.Sz(400, 300)), SetRegion{thin})
	s = Reduce(s, SetRegion{geom.R(0, 100, 400, 99)})
	assert.True(s.Region.In(s.Bounds()), "%v", s.Region)
}
