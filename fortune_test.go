package voronoi

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmptyInput(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildDuplicateSite(t *testing.T) {
	_, err := Build([]Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 1}})
	assert.True(t, errors.Is(err, ErrDuplicateSite))
}

// assertValidTessellation checks the structural invariants that must hold
// of any Build output, regardless of the input's geometry.
func assertValidTessellation(t *testing.T, tess *Tessellation, sites []Point) {
	t.Helper()
	require.Len(t, tess.Faces, len(sites))

	seen := make(map[Point]bool, len(sites))
	for _, f := range tess.Faces {
		assert.False(t, seen[f.Site], "duplicate face for site %s", f.Site)
		seen[f.Site] = true
	}
	for _, s := range sites {
		assert.True(t, seen[s], "missing face for site %s", s)
	}

	require.NotEmpty(t, tess.HalfEdges)
	assert.Zero(t, len(tess.HalfEdges)%2, "half-edges must come in twin pairs")

	for _, e := range tess.HalfEdges {
		require.NotNil(t, e.Twin, "half-edge missing twin")
		assert.Same(t, e, e.Twin.Twin, "twin relationship must be mutual")
		require.NotNil(t, e.Face, "half-edge missing incident face")
		require.NotNil(t, e.Origin, "half-edge missing origin")
		assert.True(t, e.Origin.Defined(), "half-edge origin left unresolved after finishing")
	}

	for _, v := range tess.Vertices {
		assert.True(t, v.Defined(), "vertex recorded on the tessellation must be concrete")
	}
}

func TestBuildTwoSites(t *testing.T) {
	sites := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	tess, err := Build(sites)
	require.NoError(t, err)
	assertValidTessellation(t, tess, sites)

	// Two sites split the initial arc exactly once and never trigger a
	// circle event: one edge pair, both ends closed by finishing alone.
	assert.Len(t, tess.HalfEdges, 2)
	assert.Len(t, tess.Vertices, 2)
}

func TestBuildThreeCollinearSites(t *testing.T) {
	sites := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	tess, err := Build(sites)
	require.NoError(t, err)
	assertValidTessellation(t, tess, sites)

	// Three exactly collinear sites can never pass the circumcenter's
	// collinearity check, so the only edges are the two produced directly
	// by site events, with no Voronoi vertex among them.
	assert.Len(t, tess.HalfEdges, 4)
}

func TestBuildEquilateralTriangle(t *testing.T) {
	sites := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8.66}}
	tess, err := Build(sites)
	require.NoError(t, err)
	assertValidTessellation(t, tess, sites)

	// A non-degenerate triangle produces exactly one Voronoi vertex (the
	// circumcenter) plus whatever finishing appends for the open rays.
	assert.GreaterOrEqual(t, len(tess.Vertices), 1)
}

func TestBuildFourCornerSquare(t *testing.T) {
	sites := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	tess, err := Build(sites)
	require.NoError(t, err)
	assertValidTessellation(t, tess, sites)
}

func TestBuildManySites(t *testing.T) {
	sites := make([]Point, 50)
	for i := range sites {
		// Strictly increasing X guarantees every site is distinct without
		// having to reason about Y at all.
		sites[i] = Point{X: float64(i) * 1.7, Y: math.Sin(float64(i)*0.9)*23 + float64(i%7)*3.1}
	}

	// Every circle event the observer sees with Kind "circle" corresponds
	// to a genuine Voronoi vertex: the main loop only calls observe for a
	// circle event after handleCircleEvent has run, and tombstoned
	// (invalidated) circle events are skipped before dispatch.
	var realVertices []Point
	observer := observerFunc(func(s Snapshot) {
		if s.LastEvent.Kind == "circle" {
			realVertices = append(realVertices, s.LastEvent.Point)
		}
	})

	tess, err := Build(sites, WithObserver(observer))
	require.NoError(t, err)
	assertValidTessellation(t, tess, sites)

	n := len(sites)
	edgeCount := len(tess.HalfEdges) / 2
	assert.LessOrEqual(t, len(realVertices), 2*n-5, "Euler bound on Voronoi vertices")
	assert.LessOrEqual(t, edgeCount, 3*n-6, "Euler bound on Voronoi edges")

	isReal := make(map[Point]bool, len(realVertices))
	for _, p := range realVertices {
		isReal[p] = true
	}
	for _, v := range tess.Vertices {
		if isReal[v.Point] {
			assertVertexDegreeThree(t, tess, v)
		}
	}

	for _, f := range tess.Faces {
		assertFaceConvex(t, tess, f)
	}
}

// assertVertexDegreeThree checks spec invariant 3: a completed Voronoi
// vertex is the meeting point of exactly three half-edges.
func assertVertexDegreeThree(t *testing.T, tess *Tessellation, v *Vertex) {
	t.Helper()
	count := 0
	for _, e := range tess.HalfEdges {
		if e.Origin == v {
			count++
		}
	}
	assert.Equal(t, 3, count, "completed Voronoi vertex %s must have degree 3", v.Point)
}

// assertFaceConvex checks that the distinct vertices bounding f form a
// convex polygon: sorting them by angle around their centroid recovers
// their boundary order, and consecutive turns must then keep one sign.
func assertFaceConvex(t *testing.T, tess *Tessellation, f *Face) {
	t.Helper()
	seen := make(map[Point]bool)
	var pts []Point
	for _, e := range tess.HalfEdges {
		if e.Face != f {
			continue
		}
		p := e.Origin.Point
		if !seen[p] {
			seen[p] = true
			pts = append(pts, p)
		}
	}
	if len(pts) < 3 {
		return
	}

	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	sort.Slice(pts, func(i, j int) bool {
		return math.Atan2(pts[i].Y-cy, pts[i].X-cx) < math.Atan2(pts[j].Y-cy, pts[j].X-cx)
	})

	sign := 0
	for i := range pts {
		a, b, c := pts[i], pts[(i+1)%len(pts)], pts[(i+2)%len(pts)]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		if cross == 0 {
			continue
		}
		s := 1
		if cross < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else {
			assert.Equal(t, sign, s, "face for site %s is not convex", f.Site)
		}
	}
}

func TestBuildWithOptions(t *testing.T) {
	sites := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8.66}}
	var snapshots int
	observer := observerFunc(func(Snapshot) { snapshots++ })

	tess, err := Build(sites, WithMargin(5), WithDropUnresolvedEdges(), WithObserver(observer))
	require.NoError(t, err)
	assertValidTessellation(t, tess, sites)
	assert.InDelta(t, -5.0, tess.Bounds.XMin, 1e-9)
	assert.InDelta(t, 15.0, tess.Bounds.XMax, 1e-9)
	assert.InDelta(t, -5.0, tess.Bounds.YMin, 1e-9)
	assert.InDelta(t, 13.66, tess.Bounds.YMax, 1e-9)
	assert.GreaterOrEqual(t, snapshots, len(sites))
}

type observerFunc func(Snapshot)

func (f observerFunc) Observe(s Snapshot) { f(s) }

func TestBuildFromCoords(t *testing.T) {
	tess, err := BuildFromCoords([][2]float64{{0, 0}, {10, 0}})
	require.NoError(t, err)
	assert.Len(t, tess.Faces, 2)
}
