package voronoi

// EventInfo describes the event most recently processed by the sweep.
type EventInfo struct {
	Kind  string // "site", "circle", or "finish" for the post-drain finishing pass
	Point Point  // the site, or the circle's center; zero for "finish"
	Valid bool   // true for "site" and "circle", false for "finish"; invalidated circle events are skipped, never reported
}

// NodeInfo is one beach-line node as seen from outside the package: an arc
// reports its focus, a breakpoint its current traced position.
type NodeInfo struct {
	Arc      bool
	Position Point
}

// Snapshot is a read-only view of the sweep's state after processing one
// event, handed to a StepObserver. It must not be retained across calls:
// the beach line and tessellation it points into keep mutating.
type Snapshot struct {
	SweepHeight  float64
	ArcFoci      []Point
	Nodes        []NodeInfo
	QueueLen     int
	LastEvent    EventInfo
	Tessellation *Tessellation
}

// StepObserver inspects the sweep as it runs, one event at a time. It has
// no influence over the algorithm; it exists for debugging and
// visualization, not control flow.
type StepObserver interface {
	Observe(Snapshot)
}

func (b *builder) observe(last EventInfo) {
	if b.cfg.observer == nil {
		return
	}
	arcs := b.beachLine.arcsOrdered()
	foci := make([]Point, len(arcs))
	for i, a := range arcs {
		foci[i] = a.focus
	}

	sweepY := b.sweep.Height()
	allNodes := b.beachLine.nodesOrdered()
	nodes := make([]NodeInfo, len(allNodes))
	for i, n := range allNodes {
		if n.isArc() {
			nodes[i] = NodeInfo{Arc: true, Position: n.focus}
		} else {
			nodes[i] = NodeInfo{Arc: false, Position: n.coords(sweepY, b.bbox.YMax)}
		}
	}

	b.cfg.observer.Observe(Snapshot{
		SweepHeight:  sweepY,
		ArcFoci:      foci,
		Nodes:        nodes,
		QueueLen:     b.queue.Len(),
		LastEvent:    last,
		Tessellation: b.tess,
	})
}
