package voronoi

import "math"

// SweepLine tracks the current height of the horizontal sweep as Fortune's
// algorithm advances from top to bottom.
type SweepLine struct {
	height float64
}

// NewSweepLine returns a SweepLine with no height set yet.
func NewSweepLine() *SweepLine {
	return &SweepLine{height: math.Inf(1)}
}

// SetHeight moves the sweep to h. Callers only ever move it downward.
func (s *SweepLine) SetHeight(h float64) {
	s.height = h
}

// Height returns the sweep's current y-coordinate.
func (s *SweepLine) Height() float64 {
	return s.height
}
