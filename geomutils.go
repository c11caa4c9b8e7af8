package voronoi

import "math"

// parabolaY evaluates, at x, the parabola traced by points equidistant from
// focus and the horizontal line y = sweepY.
func parabolaY(x float64, focus Point, sweepY float64) float64 {
	if focus.Y == sweepY {
		return math.Inf(1)
	}
	u := 2 * (focus.Y - sweepY)
	return (x*x - 2*focus.X*x + focus.X*focus.X + focus.Y*focus.Y - sweepY*sweepY) / u
}

// intersection returns the breakpoint traced between the parabolas rooted
// at left and right, at sweep height sweepY. maxY bounds the degenerate
// case where both foci share a y-coordinate and the breakpoint runs
// straight up; callers pass the enclosing bounding box's YMax.
func intersection(left, right Point, sweepY, maxY float64) Point {
	i, j := left, right
	p := i
	u := 2 * (i.Y - sweepY)
	v := 2 * (j.Y - sweepY)

	var x float64
	switch {
	case i.Y == j.Y:
		x = (i.X + j.X) / 2
		if j.X < i.X {
			return Point{X: x, Y: maxY}
		}
	case i.Y == sweepY:
		x = i.X
		p = j
	case j.Y == sweepY:
		x = j.X
	default:
		x = -(math.Sqrt(v*(i.X*i.X*u-2*i.X*j.X*u+i.Y*i.Y*(u-v)+j.X*j.X*u)+j.Y*j.Y*u*(v-u)+sweepY*sweepY*(u-v)*(u-v)) + i.X*v - j.X*u) / (u - v)
	}

	u = 2 * (p.Y - sweepY)
	if u == 0 {
		return Point{X: x, Y: math.Inf(1)}
	}
	y := (x*x - 2*p.X*x + p.X*p.X + p.Y*p.Y - sweepY*sweepY) / u
	return Point{X: x, Y: y}
}

// circumcenter returns the center and radius of the circle through a, b and
// c. ok is false when the three points are collinear.
func circumcenter(a, b, c Point) (center Point, radius float64, ok bool) {
	d := 2 * ((b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X))
	if d == 0 {
		return Point{}, 0, false
	}
	t2 := (b.X-a.X)*(a.X+b.X) + (b.Y-a.Y)*(a.Y+b.Y)
	t3 := (c.X-a.X)*(a.X+c.X) + (c.Y-a.Y)*(a.Y+c.Y)
	x := ((c.Y-a.Y)*t2 - (b.Y-a.Y)*t3) / d
	y := ((b.X-a.X)*t3 - (c.X-a.X)*t2) / d
	center = Point{X: x, Y: y}
	return center, a.Dist(center), true
}

// floatMod returns a mod m in [0, m), matching Python's % for positive m.
func floatMod(a, m float64) float64 {
	r := math.Mod(a, m)
	if r < 0 {
		r += m
	}
	return r
}

func calculateAngle(point, center Point) float64 {
	deg := math.Atan2(point.Y-center.Y, point.X-center.X) * 180 / math.Pi
	return floatMod(deg, 360)
}

// checkClockwise reports whether a, b, c run clockwise around center, the
// orientation a valid circle event requires of its three defining arcs.
func checkClockwise(a, b, c, center Point) bool {
	angle1 := calculateAngle(a, center)
	angle2 := calculateAngle(b, center)
	angle3 := calculateAngle(c, center)
	counterClockwise := floatMod(angle3-angle1, 360) > floatMod(angle3-angle2, 360)
	return !counterClockwise
}

// finishMargin is how far below the bounding box's bottom edge a
// breakpoint is evaluated to resolve its still-open endpoint. It mirrors
// the original implementation's fixed offset rather than the box margin,
// since it only needs to be far enough past YMin that no two breakpoints'
// projected traces cross before reaching it.
const finishMargin = 10

// finishEdge closes any still-undefined endpoint of e by evaluating the
// breakpoint it traces at a height safely below the bounding box.
func finishEdge(e *HalfEdge, bb BoundingBox, tess *Tessellation) {
	closeEnd := func(end *HalfEdge) {
		if end.Origin.Defined() {
			return
		}
		bp := end.Origin.Breakpoint()
		if bp == nil {
			return
		}
		p := bp.coords(bb.YMin-finishMargin, bb.YMax)
		end.SetOrigin(tess.NewVertex(p.X, p.Y))
	}
	closeEnd(e)
	closeEnd(e.Twin)
}

// finishEdges closes every half-edge in edges whose origin is still an
// undefined placeholder; defined origins are left unchanged, even outside
// bb. It optionally drops edges whose both ends were undefined when the
// pass began (edges never closed at either end by a circle event).
func finishEdges(edges []*HalfEdge, bb BoundingBox, tess *Tessellation, dropBothUnresolved bool) []*HalfEdge {
	// An edge is "doubly unbounded" only if neither end was ever closed by
	// a circle event — recorded before finishing forces every remaining
	// origin concrete, which would otherwise erase the distinction.
	wasOpen := make(map[*HalfEdge]bool, len(edges))
	for _, e := range edges {
		wasOpen[e] = !e.Origin.Defined()
	}

	for _, e := range edges {
		if !e.Origin.Defined() || !bb.Contains(e.Origin.Point) {
			finishEdge(e, bb, tess)
		}
	}
	if !dropBothUnresolved {
		return edges
	}
	kept := make([]*HalfEdge, 0, len(edges))
	dropped := make(map[*HalfEdge]bool)
	for _, e := range edges {
		if dropped[e] {
			continue
		}
		if wasOpen[e] && wasOpen[e.Twin] {
			dropped[e] = true
			dropped[e.Twin] = true
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
