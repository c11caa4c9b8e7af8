// Package voronoi builds a planar Voronoi tessellation from a finite set of
// distinct 2-D sites using Fortune's sweep-line algorithm.
//
// The sweep maintains a beach line (a height-balanced binary tree of
// parabolic arcs and the breakpoints between them) and a priority queue of
// site and circle events. Each event mutates the beach line and extends a
// doubly-connected edge list (DCEL); once the queue drains, a finishing pass
// clips the remaining unbounded edges against a bounding box built around
// the input sites.
//
// Errors:
//
//   - ErrEmptyInput: no sites were given.
//   - ErrDuplicateSite: two sites share both coordinates; Fortune's sweep
//     does not tolerate exact duplicates.
//
// Build is the single entry point; Option values configure the margin
// around the bounding box, whether doubly-unbounded edges are kept, and an
// optional read-only StepObserver for inspecting the sweep as it runs.
package voronoi
