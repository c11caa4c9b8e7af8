package voronoi

import "math"

// Vertex is either a concrete DCEL vertex or a placeholder standing in for
// a breakpoint whose trace hasn't been closed by a circle event yet. A
// placeholder carries a weak back-reference to the breakpoint so the
// finishing pass can ask it for a coordinate once the sweep is done;
// Defined reports which case applies.
type Vertex struct {
	Point

	breakpoint   *beachNode
	incidentEdge *HalfEdge
}

// NewVertex builds a concrete vertex at (x, y).
func NewVertex(x, y float64) *Vertex {
	return &Vertex{Point: Point{X: x, Y: y}}
}

// NewPlaceholderVertex builds an undefined vertex tracing bp.
func NewPlaceholderVertex(bp *beachNode) *Vertex {
	return &Vertex{Point: Point{X: math.Inf(1), Y: math.Inf(1)}, breakpoint: bp}
}

// Defined reports whether v has a concrete, finite location.
func (v *Vertex) Defined() bool {
	return !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// SetIncidentEdge records one half-edge having v as its origin.
func (v *Vertex) SetIncidentEdge(e *HalfEdge) {
	v.incidentEdge = e
}

// IncidentEdge returns the half-edge last assigned by SetIncidentEdge.
func (v *Vertex) IncidentEdge() *HalfEdge {
	return v.incidentEdge
}

// Breakpoint returns the breakpoint backing an undefined vertex, or nil for
// a concrete one.
func (v *Vertex) Breakpoint() *beachNode {
	return v.breakpoint
}
