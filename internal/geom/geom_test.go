package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizerRoundTrip(t *testing.T) {
	for _, width := range []float64{1, 320, 768.5, 2048} {
		for _, x := range []float64{0, 0.25, 17, width / 3, width} {
			logical := ToLogical(x, width)
			assert.InDelta(t, x, ToDevice(logical, width), 1e-9, "width=%v x=%v", width, x)
		}
		assert.InDelta(t, LogicalWidth, ToLogical(width, width), 1e-9)
	}
}

func TestNormalizerLeavesYAlone(t *testing.T) {
	n := Normalizer{Width: 500}
	p := n.PointToLogical(Pt(250, 123.5))
	assert.Equal(t, Pt(500, 123.5), p)
	assert.Equal(t, Pt(250, 123.5), n.PointToDevice(p))
}

func TestZeroWidthDoesNotDivide(t *testing.T) {
	assert.Equal(t, 42.0, ToLogical(42, 0))
	assert.Equal(t, 42.0, ToDevice(42, 0))
}

func TestBoundingBoxContainsIsInclusive(t *testing.T) {
	b := Box(10, 20, 0, 0)
	require.Equal(t, BoundingBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 20}, b)

	assert.True(t, b.Contains(Pt(0, 0)))
	assert.True(t, b.Contains(Pt(10, 20)))
	assert.True(t, b.Contains(Pt(5, 20)))
	assert.False(t, b.Contains(Pt(10.0001, 5)))
	assert.False(t, b.Contains(Pt(5, -0.0001)))
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	b, ok := Bounds([]Point{Pt(3, -1), Pt(-2, 4), Pt(0, 0)})
	require.True(t, ok)
	assert.Equal(t, Box(-2, -1, 3, 4), b)
	assert.Equal(t, Pt(0.5, 1.5), b.Center())
	assert.Equal(t, 5.0, b.Width())
}

func TestUnionAndOverlap(t *testing.T) {
	a := Box(0, 0, 10, 10)
	b := Box(10, 10, 20, 30)
	c := Box(11, 0, 12, 5)

	assert.Equal(t, Box(0, 0, 20, 30), a.Union(b))
	assert.True(t, a.Overlaps(b), "touching corners overlap")
	assert.False(t, a.Overlaps(c))
	assert.Equal(t, Box(-1, -1, 11, 11), a.Pad(1))
}

func TestPointHelpers(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, 5.0, p.Len())
	assert.Equal(t, 25.0, Pt(0, 0).Dist2(p))
	assert.Equal(t, Pt(1.5, 2), Pt(0, 0).Lerp(p, 0.5))
	q := Pt(0, 0).Offset(2, 0)
	assert.InDelta(t, 2, q.X, 1e-12)
	assert.InDelta(t, 0, q.Y, 1e-12)
}
