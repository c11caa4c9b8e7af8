package voronoi

// side identifies which child of its parent a beachNode occupies.
type side int8

const (
	sideNone side = iota
	sideLeft
	sideRight
)

type nodeKind int8

const (
	arcKind nodeKind = iota
	breakPointKind
)

// beachNode is a tagged variant standing in for either an Arc (a leaf
// tracing one site's parabola) or a BreakPoint (an internal node tracing
// the trace between two neighboring arcs). Arc and BreakPoint share one
// struct with a kind tag rather than an interface, so the tree-balancing
// code that only cares about parent/left/right never needs a type switch.
type beachNode struct {
	kind       nodeKind
	parent     *beachNode
	parentSide side
	left       *beachNode
	right      *beachNode

	// valid iff kind == arcKind.
	focus Point
	event *circleEvent

	// valid iff kind == breakPointKind.
	halfEdge *HalfEdge
}

func newArc(focus Point) *beachNode {
	return &beachNode{kind: arcKind, focus: focus}
}

func newBreakPoint(left, right *beachNode) *beachNode {
	n := &beachNode{kind: breakPointKind, left: left, right: right}
	if left != nil {
		left.parent, left.parentSide = n, sideLeft
	}
	if right != nil {
		right.parent, right.parentSide = n, sideRight
	}
	return n
}

func (n *beachNode) isArc() bool { return n.kind == arcKind }

// asArc returns n itself, panicking with a StructuralError if n is actually
// a breakpoint. It is for use instead of raw field access wherever a kind
// mismatch would signal a broken invariant rather than a normal branch.
func (n *beachNode) asArc() *beachNode {
	if n.kind != arcKind {
		panic(&StructuralError{Msg: "expected an arc node, found a breakpoint"})
	}
	return n
}

// asBreakPoint returns n itself, panicking with a StructuralError if n is
// actually an arc.
func (n *beachNode) asBreakPoint() *beachNode {
	if n.kind != breakPointKind {
		panic(&StructuralError{Msg: "expected a breakpoint node, found an arc"})
	}
	return n
}

// leftArc returns the rightmost arc in n's left subtree: the arc
// immediately to the left of breakpoint n.
func (n *beachNode) leftArc() *beachNode {
	node := n.left
	for !node.isArc() {
		if node.right != nil {
			node = node.right
		} else {
			node = node.left
		}
	}
	return node
}

// rightArc returns the leftmost arc in n's right subtree: the arc
// immediately to the right of breakpoint n.
func (n *beachNode) rightArc() *beachNode {
	node := n.right
	for !node.isArc() {
		if node.left != nil {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node
}

// key returns n's x-coordinate at sweep height sweepY: a focus's x for an
// arc, or the traced intersection for a breakpoint.
func (n *beachNode) key(sweepY, maxY float64) float64 {
	if n.isArc() {
		return n.focus.X
	}
	return intersection(n.leftArc().focus, n.rightArc().focus, sweepY, maxY).X
}

// coords returns the full point a breakpoint traces at sweep height sweepY.
func (n *beachNode) coords(sweepY, maxY float64) Point {
	return intersection(n.leftArc().focus, n.rightArc().focus, sweepY, maxY)
}

// BeachLine is the height-balanced binary tree of arcs and breakpoints
// Fortune's sweep maintains as it advances. bbox supplies the YMax used to
// resolve the degenerate vertical-breakpoint case.
type BeachLine struct {
	root *beachNode
	bbox BoundingBox
}

// NewBeachLine returns an empty beach line bounded by bbox.
func NewBeachLine(bbox BoundingBox) *BeachLine {
	return &BeachLine{bbox: bbox}
}

// Empty reports whether the beach line holds no arcs yet.
func (bl *BeachLine) Empty() bool { return bl.root == nil }

func (bl *BeachLine) key(n *beachNode, sweepY float64) float64 {
	return n.key(sweepY, bl.bbox.YMax)
}

// arcsOrdered returns every arc, left to right.
func (bl *BeachLine) arcsOrdered() []*beachNode {
	var arcs []*beachNode
	var walk func(*beachNode)
	walk = func(n *beachNode) {
		if n == nil {
			return
		}
		walk(n.left)
		if n.isArc() {
			arcs = append(arcs, n)
		}
		walk(n.right)
	}
	walk(bl.root)
	return arcs
}

// nodesOrdered returns every node, arcs and breakpoints alike, left to
// right; arcs and breakpoints strictly alternate in the result.
func (bl *BeachLine) nodesOrdered() []*beachNode {
	var nodes []*beachNode
	var walk func(*beachNode)
	walk = func(n *beachNode) {
		if n == nil {
			return
		}
		walk(n.left)
		nodes = append(nodes, n)
		walk(n.right)
	}
	walk(bl.root)
	return nodes
}

// Search descends the tree at sweep height sweepY to find the arc
// currently above x, along with the side of its parent it hangs from.
func (bl *BeachLine) Search(x, sweepY float64) (parentSide side, parent, arc *beachNode) {
	if bl.root == nil {
		panic(&StructuralError{Msg: "search on an empty beach line"})
	}
	node := bl.root
	for !node.isArc() {
		parent = node
		if bl.key(node, sweepY) > x {
			parentSide = sideLeft
			node = node.left
		} else {
			parentSide = sideRight
			node = node.right
		}
	}
	return parentSide, parent, node
}

// GetThreeConsecutiveArcs returns the three arcs starting at (when reverse
// is false) or ending at (when reverse is true) arc, in left-to-right
// order. ok is false near either end of the beach line, where no such
// triple exists.
func (bl *BeachLine) GetThreeConsecutiveArcs(arc *beachNode, reverse bool) (a, b, c *beachNode, ok bool) {
	arcs := bl.arcsOrdered()
	pos := -1
	for i, n := range arcs {
		if n == arc {
			pos = i
			break
		}
	}
	if pos == -1 {
		return nil, nil, nil, false
	}
	start := pos
	if reverse {
		start = pos - 2
	}
	if start < 0 || start+3 > len(arcs) {
		return nil, nil, nil, false
	}
	return arcs[start], arcs[start+1], arcs[start+2], true
}

// GetSurroundingBreakpoints returns the breakpoints immediately to the
// left and right of arc in in-order sequence.
func (bl *BeachLine) GetSurroundingBreakpoints(arc *beachNode) (left, right *beachNode) {
	nodes := bl.nodesOrdered()
	for i, n := range nodes {
		if n == arc {
			return nodes[i-1], nodes[i+1]
		}
	}
	panic(&StructuralError{Msg: "arc not found in beach line"})
}

// InsertTriplet splits arcAbove into (oldLeftArc, middleArc, oldRightArc)
// joined by two new breakpoints, and splices the five-node subtree in
// place of arcAbove. The new breakpoints' half-edges are left nil for the
// caller to assign once the DCEL edge pair exists.
func (bl *BeachLine) InsertTriplet(arcAbove *beachNode, newSite Point) (leftBP, rightBP, middleArc, oldLeftArc, oldRightArc *beachNode) {
	focus := arcAbove.focus
	oldLeftArc = newArc(focus)
	oldRightArc = newArc(focus)
	middleArc = newArc(newSite)

	rightBP = newBreakPoint(middleArc, oldRightArc)
	leftBP = newBreakPoint(oldLeftArc, rightBP)

	parent, parentSide := arcAbove.parent, arcAbove.parentSide
	leftBP.parent, leftBP.parentSide = parent, parentSide
	switch {
	case parent == nil:
		bl.root = leftBP
	case parentSide == sideLeft:
		parent.left = leftBP
	default:
		parent.right = leftBP
	}
	return leftBP, rightBP, middleArc, oldLeftArc, oldRightArc
}

// Delete removes arc from the beach line, merging its two flanking
// breakpoints into one. removed is the breakpoint that disappears (arc's
// immediate parent); updated is the survivor, now tracing the merged edge
// between arc's old neighbors.
func (bl *BeachLine) Delete(arc *beachNode) (leftBP, rightBP, removed, updated *beachNode) {
	leftBP, rightBP = bl.GetSurroundingBreakpoints(arc)
	parent := arc.parent
	if parent == nil {
		panic(&StructuralError{Msg: "delete invoked on the sole arc in the beach line"})
	}

	if arc.parentSide == sideLeft {
		parent.left = nil
	} else {
		parent.right = nil
	}

	var sibling *beachNode
	oppositeSide := sideRight
	if arc.parentSide == sideLeft {
		sibling = parent.right
	} else {
		oppositeSide = sideLeft
		sibling = parent.left
	}

	grandparent := parent.parent
	if grandparent == nil {
		bl.root = sibling
		sibling.parent, sibling.parentSide = nil, sideNone
	} else {
		sibling.parent, sibling.parentSide = grandparent, parent.parentSide
		if parent.parentSide == sideLeft {
			grandparent.left = sibling
		} else {
			grandparent.right = sibling
		}
	}

	if oppositeSide == sideRight {
		removed, updated = rightBP, leftBP
	} else {
		removed, updated = leftBP, rightBP
	}

	bl.BalanceAndPropagate(sibling)
	return leftBP, rightBP, removed, updated
}

func (bl *BeachLine) depth(n *beachNode) int {
	if n == nil {
		return 0
	}
	l, r := bl.depth(n.left), bl.depth(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func (bl *BeachLine) bf(n *beachNode) int {
	return bl.depth(n.right) - bl.depth(n.left)
}

func (bl *BeachLine) leftRotate(n *beachNode) *beachNode {
	if bl.depth(n) < 3 {
		return n
	}
	pivot := n.right
	n.right = pivot.left
	if pivot.left != nil {
		pivot.left.parent, pivot.left.parentSide = n, sideRight
	}
	pivot.left = n

	bl.replaceInParent(n, pivot)
	n.parent, n.parentSide = pivot, sideLeft
	return pivot
}

func (bl *BeachLine) rightRotate(n *beachNode) *beachNode {
	if bl.depth(n) < 3 {
		return n
	}
	pivot := n.left
	n.left = pivot.right
	if pivot.right != nil {
		pivot.right.parent, pivot.right.parentSide = n, sideLeft
	}
	pivot.right = n

	bl.replaceInParent(n, pivot)
	n.parent, n.parentSide = pivot, sideRight
	return pivot
}

// replaceInParent hands n's former slot in its parent (or the tree root)
// over to pivot.
func (bl *BeachLine) replaceInParent(n, pivot *beachNode) {
	parent, parentSide := n.parent, n.parentSide
	pivot.parent, pivot.parentSide = parent, parentSide
	switch {
	case parent == nil:
		bl.root = pivot
	case parentSide == sideLeft:
		parent.left = pivot
	default:
		parent.right = pivot
	}
}

func (bl *BeachLine) balance(n *beachNode) *beachNode {
	switch bl.bf(n) {
	case -2:
		if bl.bf(n.left) == 1 {
			bl.leftRotate(n.left)
		}
		return bl.rightRotate(n)
	case 2:
		if bl.bf(n.right) == -1 {
			bl.rightRotate(n.right)
		}
		return bl.leftRotate(n)
	default:
		return n
	}
}

// BalanceAndPropagate rebalances n and walks up to the root, rebalancing
// every ancestor in turn.
func (bl *BeachLine) BalanceAndPropagate(n *beachNode) {
	root := bl.balance(n)
	if root.parent != nil {
		bl.BalanceAndPropagate(root.parent)
	}
}
