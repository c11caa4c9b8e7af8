package voronoi

// HalfEdge is one directed side of an edge in the doubly-connected edge
// list. Twin points at the other side; Next/Prev walk the boundary of
// Face in order.
type HalfEdge struct {
	Origin *Vertex
	Twin   *HalfEdge
	Next   *HalfEdge
	Prev   *HalfEdge
	Face   *Face
}

// SetOrigin assigns e's origin vertex and records e as that vertex's
// incident edge.
func (e *HalfEdge) SetOrigin(v *Vertex) {
	if v != nil {
		v.SetIncidentEdge(e)
	}
	e.Origin = v
}

// SetTwin pairs e and t as opposite sides of the same edge.
func (e *HalfEdge) SetTwin(t *HalfEdge) {
	if t != nil {
		t.Twin = e
	}
	e.Twin = t
}

// SetNext chains n after e around their shared face, also fixing n.Prev.
func (e *HalfEdge) SetNext(n *HalfEdge) {
	if n != nil {
		n.Prev = e
	}
	e.Next = n
}

// Face is the Voronoi cell owned by a single site.
type Face struct {
	Site           Point
	OuterComponent *HalfEdge
}

// setOuterComponent records the first half-edge discovered for f; later
// calls are no-ops, matching the original walk order.
func (f *Face) setOuterComponent(e *HalfEdge) {
	if f.OuterComponent == nil {
		f.OuterComponent = e
	}
}

// Tessellation is the output of Build: the complete DCEL plus the input
// sites and the bounding box used to close unbounded edges.
type Tessellation struct {
	Sites     []Point
	Bounds    BoundingBox
	Vertices  []*Vertex
	HalfEdges []*HalfEdge
	Faces     []*Face
}

// NewTessellation returns an empty Tessellation ready to be populated.
func NewTessellation() *Tessellation {
	return &Tessellation{}
}

// NewFace allocates a Face for site and tracks it on t.
func (t *Tessellation) NewFace(site Point) *Face {
	f := &Face{Site: site}
	t.Faces = append(t.Faces, f)
	return f
}

// NewVertex allocates a concrete Vertex at (x, y) and tracks it on t.
func (t *Tessellation) NewVertex(x, y float64) *Vertex {
	v := NewVertex(x, y)
	t.Vertices = append(t.Vertices, v)
	return v
}

// NewEdge allocates a twinned pair of half-edges bordering faceA and
// faceB. Origins are left nil; the caller assigns them once known.
func (t *Tessellation) NewEdge(faceA, faceB *Face) (*HalfEdge, *HalfEdge) {
	heA := &HalfEdge{Face: faceA}
	heB := &HalfEdge{Face: faceB}
	heA.SetTwin(heB)
	faceA.setOuterComponent(heA)
	faceB.setOuterComponent(heB)
	t.HalfEdges = append(t.HalfEdges, heA, heB)
	return heA, heB
}
