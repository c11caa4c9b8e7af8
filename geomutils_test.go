package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectionSharedY(t *testing.T) {
	left := Point{X: -5, Y: 0}
	right := Point{X: 0, Y: 0}
	got := intersection(left, right, -10, 100)
	assert.InDelta(t, -2.5, got.X, 1e-9)
	assert.InDelta(t, -4.6875, got.Y, 1e-9)
}

func TestIntersectionSharedYReversed(t *testing.T) {
	// right focus to the left of left focus: breakpoint runs straight up,
	// capped at maxY.
	left := Point{X: 0, Y: 0}
	right := Point{X: -5, Y: 0}
	got := intersection(left, right, -10, 100)
	assert.InDelta(t, -2.5, got.X, 1e-9)
	assert.Equal(t, 100.0, got.Y)
}

func TestIntersectionOneFocusOnSweepLine(t *testing.T) {
	left := Point{X: 2, Y: -3}
	right := Point{X: 6, Y: 1}
	got := intersection(left, right, -3, 100)
	assert.InDelta(t, 2.0, got.X, 1e-9)
}

func TestCircumcenter(t *testing.T) {
	center, radius, ok := circumcenter(Point{0, 0}, Point{2, 0}, Point{0, 2})
	assert.True(t, ok)
	assert.InDelta(t, 1.0, center.X, 1e-9)
	assert.InDelta(t, 1.0, center.Y, 1e-9)
	assert.InDelta(t, math.Sqrt2, radius, 1e-9)
}

func TestCircumcenterCollinear(t *testing.T) {
	_, _, ok := circumcenter(Point{0, 0}, Point{1, 0}, Point{2, 0})
	assert.False(t, ok)
}

func TestCheckClockwise(t *testing.T) {
	center := Point{0, 0}
	a, b, c := Point{0, 1}, Point{1, 0}, Point{0, -1}
	assert.True(t, checkClockwise(a, b, c, center))
	assert.False(t, checkClockwise(c, b, a, center))
}

func TestFinishEdgesIsIdempotent(t *testing.T) {
	sites := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8.66}}
	tess, err := Build(sites)
	require.NoError(t, err)

	before := make([]Point, len(tess.Vertices))
	for i, v := range tess.Vertices {
		before[i] = v.Point
	}
	beforeEdgeCount := len(tess.HalfEdges)

	again := finishEdges(tess.HalfEdges, tess.Bounds, tess, false)

	assert.Len(t, again, beforeEdgeCount, "re-finishing an already-closed tessellation must not drop or add edges")
	assert.Len(t, tess.Vertices, len(before), "re-finishing must not allocate new vertices")
	for i, v := range tess.Vertices {
		assert.Equal(t, before[i], v.Point, "re-finishing must not move an already-defined vertex")
	}
}
