package voronoi

import "math"

// BoundingBox is an axis-aligned rectangle enclosing every input site with
// a margin on each side, wide enough that no Voronoi vertex is ever
// computed exactly on its boundary.
type BoundingBox struct {
	XMin, XMax, YMin, YMax float64
}

// NewBoundingBox returns the smallest axis-aligned box containing sites,
// expanded by margin on every side. sites must be non-empty.
func NewBoundingBox(sites []Point, margin float64) BoundingBox {
	xMin, xMax := sites[0].X, sites[0].X
	yMin, yMax := sites[0].Y, sites[0].Y
	for _, s := range sites[1:] {
		xMin = math.Min(xMin, s.X)
		xMax = math.Max(xMax, s.X)
		yMin = math.Min(yMin, s.Y)
		yMax = math.Max(yMax, s.Y)
	}
	return BoundingBox{
		XMin: xMin - margin,
		XMax: xMax + margin,
		YMin: yMin - margin,
		YMax: yMax + margin,
	}
}

// Contains reports whether p lies strictly inside b.
func (b BoundingBox) Contains(p Point) bool {
	return p.X > b.XMin && p.X < b.XMax && p.Y > b.YMin && p.Y < b.YMax
}

// Corners returns the box's four corners in counter-clockwise order
// starting at (XMin, YMin).
func (b BoundingBox) Corners() [4]Point {
	return [4]Point{
		{X: b.XMin, Y: b.YMin},
		{X: b.XMax, Y: b.YMin},
		{X: b.XMax, Y: b.YMax},
		{X: b.XMin, Y: b.YMax},
	}
}
