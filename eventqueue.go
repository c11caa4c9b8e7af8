package voronoi

import "container/heap"

// eventHeap implements container/heap.Interface, ordering events by
// decreasing y (the sweep moves top to bottom), then increasing x, then
// circle events before site events on an exact tie (a circle event must
// be resolved before a site event at the same point can affect the same
// arc).
type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if ay, by := a.y(), b.y(); ay != by {
		return ay > by
	}
	if ax, bx := a.x(), b.x(); ax != bx {
		return ax < bx
	}
	aCircle := a.kind == circleEventKind
	bCircle := b.kind == circleEventKind
	return aCircle && !bCircle
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// eventQueue is the sweep's priority queue. Invalidated circle events stay
// in the heap as tombstones rather than being removed: the main loop skips
// them on pop, trading a few wasted pops for avoiding an O(n) heap delete.
type eventQueue struct {
	h eventHeap
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	heap.Init(&q.h)
	return q
}

func (q *eventQueue) push(e *event) { heap.Push(&q.h, e) }

func (q *eventQueue) pop() *event { return heap.Pop(&q.h).(*event) }

func (q *eventQueue) Len() int { return q.h.Len() }
