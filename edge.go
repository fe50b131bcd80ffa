package tessellator

// EdgeType distinguishes the roles an edge plays during antialiased
// boundary construction (spec section 3, "Edge"); it has no effect
// outside stages 5a-5d.
type EdgeType int

const (
	EdgeInner EdgeType = iota
	EdgeOuter
	EdgeConnector
)

// Edge joins a Top vertex to a Bottom vertex, with Top preceding Bottom
// in sweep order. Winding is +1 if the edge runs downward in sweep
// order, -1 if upward (spec section 3, "Edge").
type Edge struct {
	Top, Bottom *Vertex
	Winding     int
	Type        EdgeType
	Line        Line

	// Left/Right thread the edge into the active edge list.
	Left, Right *Edge

	// PrevEdgeAbove/NextEdgeAbove thread the edge into Bottom's
	// edges-above list; PrevEdgeBelow/NextEdgeBelow thread it into
	// Top's edges-below list.
	PrevEdgeAbove, NextEdgeAbove *Edge
	PrevEdgeBelow, NextEdgeBelow *Edge

	// LeftPoly/RightPoly record the Polys on either side of the edge
	// (stage 5). The PolyPrev/PolyNext pointers and UsedIn flags are
	// not used.
	LeftPoly, RightPoly             *Poly
	LeftPolyPrev, LeftPolyNext      *Edge
	RightPolyPrev, RightPolyNext    *Edge
	UsedInLeftPoly, UsedInRightPoly bool
}

func newEdgeLine(top, bottom *Vertex) Line {
	return newLine(top.Point, bottom.Point)
}

func (e *Edge) recompute() {
	e.Line = newEdgeLine(e.Top, e.Bottom)
}

func (e *Edge) dist(p Point) float64 { return e.Line.dist(p) }

func (e *Edge) isRightOf(v *Vertex) bool { return e.Line.dist(v.Point) < 0.0 }
func (e *Edge) isLeftOf(v *Vertex) bool  { return e.Line.dist(v.Point) > 0.0 }

// intersect tests e against other, returning their intersection point
// and interpolated alpha if the segments (not the infinite lines)
// actually cross. It mirrors Edge::intersect in original_source,
// including the sign-only short-circuit that avoids a division in the
// common no-intersection case (spec section 4.5).
func (e *Edge) intersect(other *Edge) (Point, uint8, bool) {
	if e.Top == other.Top || e.Bottom == other.Bottom {
		return Point{}, 0, false
	}
	denom := e.Line.A*other.Line.B - e.Line.B*other.Line.A
	if denom == 0.0 {
		return Point{}, 0, false
	}
	dx := float64(other.Top.Point[0]) - float64(e.Top.Point[0])
	dy := float64(other.Top.Point[1]) - float64(e.Top.Point[1])
	sNumer := dy*other.Line.B + dx*other.Line.A
	tNumer := dy*e.Line.B + dx*e.Line.A
	if denom > 0 {
		if sNumer < 0 || sNumer > denom || tNumer < 0 || tNumer > denom {
			return Point{}, 0, false
		}
	} else {
		if sNumer > 0 || sNumer < denom || tNumer > 0 || tNumer < denom {
			return Point{}, 0, false
		}
	}
	s := sNumer / denom
	p := Point{
		float32(float64(e.Top.Point[0]) - s*e.Line.B),
		float32(float64(e.Top.Point[1]) + s*e.Line.A),
	}
	var alpha uint8
	switch {
	case e.Type == EdgeConnector:
		alpha = lerpAlpha(e.Top.Alpha, e.Bottom.Alpha, s)
	case other.Type == EdgeConnector:
		t := tNumer / denom
		alpha = lerpAlpha(other.Top.Alpha, other.Bottom.Alpha, t)
	case e.Type == EdgeOuter && other.Type == EdgeOuter:
		alpha = 0
	default:
		alpha = 255
	}
	return p, alpha, true
}

func lerpAlpha(a, b uint8, s float64) uint8 {
	v := (1-s)*float64(a) + s*float64(b)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

func maxAlpha(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

// EdgeList is the active edge list (AEL): the edges the sweep line
// currently crosses, kept left-to-right (spec GLOSSARY, "AEL").
type EdgeList struct {
	Head, Tail *Edge
}

func (l *EdgeList) insert(e, prev, next *Edge) {
	e.Left, e.Right = prev, next
	if prev != nil {
		prev.Right = e
	} else {
		l.Head = e
	}
	if next != nil {
		next.Left = e
	} else {
		l.Tail = e
	}
}

func (l *EdgeList) append(e *Edge) { l.insert(e, l.Tail, nil) }

func (l *EdgeList) remove(e *Edge) {
	if e.Left != nil {
		e.Left.Right = e.Right
	} else {
		l.Head = e.Right
	}
	if e.Right != nil {
		e.Right.Left = e.Left
	} else {
		l.Tail = e.Left
	}
	e.Left, e.Right = nil, nil
}

func (l *EdgeList) close() {
	if l.Head != nil && l.Tail != nil {
		l.Tail.Right = l.Head
		l.Head.Left = l.Tail
	}
}

func (l *EdgeList) contains(e *Edge) bool {
	return e.Left != nil || e.Right != nil || l.Head == e
}
