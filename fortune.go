package voronoi

import "sort"

// builder holds the mutable state of one Build run.
type builder struct {
	bbox      BoundingBox
	beachLine *BeachLine
	queue     *eventQueue
	tess      *Tessellation
	sweep     *SweepLine
	faces     map[Point]*Face
	cfg       config
}

// Build computes the Voronoi tessellation of sites. Sites must be
// non-empty and pairwise distinct.
func Build(sites []Point, opts ...Option) (*Tessellation, error) {
	if len(sites) == 0 {
		return nil, ErrEmptyInput
	}
	if err := checkDuplicates(sites); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	sorted := make([]Point, len(sites))
	copy(sorted, sites)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	bbox := NewBoundingBox(sorted, cfg.margin)
	tess := NewTessellation()
	tess.Sites = sorted
	tess.Bounds = bbox

	faces := make(map[Point]*Face, len(sorted))
	for _, s := range sorted {
		faces[s] = tess.NewFace(s)
	}

	b := &builder{
		bbox:      bbox,
		beachLine: NewBeachLine(bbox),
		queue:     newEventQueue(),
		tess:      tess,
		sweep:     NewSweepLine(),
		faces:     faces,
		cfg:       cfg,
	}

	for _, s := range sorted {
		b.queue.push(&event{kind: siteEventKind, site: s})
	}

	for b.queue.Len() > 0 {
		e := b.queue.pop()
		if e.kind == circleEventKind && !e.circle.valid {
			continue
		}
		switch e.kind {
		case siteEventKind:
			b.handleSiteEvent(e.site)
			b.observe(EventInfo{Kind: "site", Point: e.site, Valid: true})
		case circleEventKind:
			b.handleCircleEvent(e.circle)
			b.observe(EventInfo{Kind: "circle", Point: e.circle.center, Valid: true})
		}
	}

	tess.HalfEdges = finishEdges(tess.HalfEdges, bbox, tess, cfg.dropUnresolvedEdges)
	b.observe(EventInfo{Kind: "finish"})

	return tess, nil
}

// BuildFromCoords is a convenience wrapper over Build for callers holding
// plain (x, y) pairs rather than Point values.
func BuildFromCoords(coords [][2]float64, opts ...Option) (*Tessellation, error) {
	sites := make([]Point, len(coords))
	for i, c := range coords {
		sites[i] = Point{X: c[0], Y: c[1]}
	}
	return Build(sites, opts...)
}

func (b *builder) log(format string, args ...any) {
	if b.cfg.logger != nil {
		b.cfg.logger.Printf(format, args...)
	}
}

// handleSiteEvent inserts a new arc for p into the beach line, splitting
// whatever arc currently sits above it.
func (b *builder) handleSiteEvent(p Point) {
	b.sweep.SetHeight(p.Y)
	b.log("site event at %s", p)

	if b.beachLine.Empty() {
		b.beachLine.root = newArc(p)
		return
	}

	_, _, arcAbove := b.beachLine.Search(p.X, p.Y)
	if arcAbove.event != nil {
		arcAbove.event.valid = false
		arcAbove.event = nil
	}

	oldFocus := arcAbove.focus
	leftBP, rightBP, middleArc, _, _ := b.beachLine.InsertTriplet(arcAbove, p)

	oldFace := b.faces[oldFocus]
	newFace := b.faces[p]

	he1, he2 := b.tess.NewEdge(oldFace, newFace)
	he1.SetOrigin(NewPlaceholderVertex(rightBP))
	he2.SetOrigin(NewPlaceholderVertex(leftBP))
	rightBP.halfEdge = he1
	leftBP.halfEdge = he2

	b.beachLine.BalanceAndPropagate(leftBP)

	b.lookForCircleEvent(middleArc, false)
	b.lookForCircleEvent(middleArc, true)
}

// handleCircleEvent collapses the arc a circle event predicted would
// vanish, placing a new DCEL vertex at the circle's center and merging
// the two breakpoints that flanked the arc into one tracing the new edge
// between its former neighbors.
func (b *builder) handleCircleEvent(ce *circleEvent) {
	b.sweep.SetHeight(ce.center.Y - ce.radius)
	b.log("circle event at %s", ce.center)

	// Invalidate the events of the arcs flanking ce.arc now: a site event
	// may have replaced ce.predecessor or ce.successor since ce was created.
	flankLeft, flankRight := b.beachLine.GetSurroundingBreakpoints(ce.arc)
	for _, neighbor := range []*beachNode{flankLeft.leftArc(), flankRight.rightArc()} {
		if neighbor.event != nil {
			neighbor.event.valid = false
			neighbor.event = nil
		}
	}

	leftBP, rightBP, _, updated := b.beachLine.Delete(ce.arc)

	vertex := b.tess.NewVertex(ce.center.X, ce.center.Y)
	leftBP.halfEdge.SetOrigin(vertex)
	rightBP.halfEdge.SetOrigin(vertex)

	leftFace := b.faces[updated.leftArc().focus]
	rightFace := b.faces[updated.rightArc().focus]

	he1, he2 := b.tess.NewEdge(leftFace, rightFace)
	he1.SetOrigin(vertex)
	he2.SetOrigin(NewPlaceholderVertex(updated))

	leftBP.halfEdge.Twin.SetNext(he1)
	rightBP.halfEdge.Twin.SetNext(leftBP.halfEdge)
	he1.Twin.SetNext(rightBP.halfEdge)

	updated.halfEdge = he2

	b.lookForCircleEvent(updated.leftArc(), false)
	b.lookForCircleEvent(updated.rightArc(), true)
}

// lookForCircleEvent checks whether the triple of arcs around arc (ending
// at arc when reverse, starting at arc otherwise) converges to a point
// ahead of the sweep, and if so enqueues a circleEvent for it.
func (b *builder) lookForCircleEvent(arc *beachNode, reverse bool) {
	pred, mid, succ, ok := b.beachLine.GetThreeConsecutiveArcs(arc, reverse)
	if !ok {
		return
	}
	center, radius, ok := circumcenter(pred.focus, mid.focus, succ.focus)
	if !ok {
		return
	}
	if !b.bbox.Contains(center) {
		return
	}
	if !checkClockwise(pred.focus, mid.focus, succ.focus, center) {
		return
	}
	bottom := center.Y - radius
	if bottom > b.sweep.Height() {
		return
	}
	ce := &circleEvent{center: center, radius: radius, arc: mid, predecessor: pred, successor: succ, valid: true}
	mid.event = ce
	b.queue.push(&event{kind: circleEventKind, circle: ce})
}
