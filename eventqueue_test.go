package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventHeapLessOrdersByDescendingHeight(t *testing.T) {
	h := eventHeap{
		{kind: siteEventKind, site: Point{X: 0, Y: -5}},
		{kind: siteEventKind, site: Point{X: 0, Y: 5}},
	}
	assert.True(t, h.Less(1, 0), "higher y must sort before lower y")
	assert.False(t, h.Less(0, 1))
}

func TestEventHeapLessBreaksHeightTiesByAscendingX(t *testing.T) {
	h := eventHeap{
		{kind: siteEventKind, site: Point{X: 5, Y: 0}},
		{kind: siteEventKind, site: Point{X: -5, Y: 0}},
	}
	assert.True(t, h.Less(1, 0), "smaller x must sort first on a height tie")
	assert.False(t, h.Less(0, 1))
}

func TestEventHeapLessPrefersCircleOverSiteOnExactTie(t *testing.T) {
	// A circle event with center (0, 0) and radius 5 fires at y = -5, the
	// same height and x as a site sitting exactly there.
	circle := &circleEvent{center: Point{X: 0, Y: 0}, radius: 5, valid: true}
	h := eventHeap{
		{kind: siteEventKind, site: Point{X: 0, Y: -5}},
		{kind: circleEventKind, circle: circle},
	}
	assert.True(t, h.Less(1, 0), "a circle event must sort before a site event at the same point")
	assert.False(t, h.Less(0, 1))
}
