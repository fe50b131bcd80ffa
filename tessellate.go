package tessellator

// Stage 5: turning the simplified (crossing-free) mesh into a set of
// monotone polygons and triangulating each. Grounded on Poly,
// MonotonePoly, Poly::addEdge, Poly::emit and the main tessellate()
// sweep in original_source, adapted from their explicit two-chain
// Edge-list bookkeeping to a single (vertex, chain-side)-tagged
// sequence per Poly, which the classic linear-time monotone-polygon
// stack algorithm triangulates directly.

type side int

const (
	sideLeft side = iota
	sideRight
)

type polyVertex struct {
	v *Vertex
	s side
}

// Poly is one monotone region of the tessellated interior, accumulated
// as a sequence of (vertex, chain) pairs in sweep order as the sweep
// in tessellate passes over it (spec section 3, "Poly").
type Poly struct {
	Winding int
	Verts   []polyVertex
}

func newPoly(winding int) *Poly { return &Poly{Winding: winding} }

func (p *Poly) addEdge(e *Edge, s side) {
	p.appendVertex(e.Top, s)
	p.appendVertex(e.Bottom, s)
}

func (p *Poly) appendVertex(v *Vertex, s side) {
	if n := len(p.Verts); n > 0 && p.Verts[n-1].v == v {
		return
	}
	p.Verts = append(p.Verts, polyVertex{v, s})
}

func cross(o, a, b Point) float64 {
	return float64(a[0]-o[0])*float64(b[1]-o[1]) - float64(a[1]-o[1])*float64(b[0]-o[0])
}

// emitVerts triangulates the poly's accumulated chain with the
// standard linear-time monotone-polygon stack algorithm, returning
// each triangle as the three polyVertex it came from so a caller can
// read back whichever field it needs: emit below keeps only position,
// emitCoverage also keeps each vertex's alpha.
func (p *Poly) emitVerts(out [][3]polyVertex) [][3]polyVertex {
	verts := p.Verts
	if len(verts) < 3 {
		return out
	}
	stack := []polyVertex{verts[0], verts[1]}
	emit3 := func(a, b, c polyVertex) {
		if cross(a.v.Point, b.v.Point, c.v.Point) < 0 {
			b, c = c, b
		}
		out = append(out, [3]polyVertex{a, b, c})
	}
	for i := 2; i < len(verts); i++ {
		cur := verts[i]
		top := stack[len(stack)-1]
		if cur.s != top.s || i == len(verts)-1 {
			for j := 0; j < len(stack)-1; j++ {
				emit3(cur, stack[j], stack[j+1])
			}
			stack = []polyVertex{top, cur}
		} else {
			for len(stack) >= 2 {
				mid := stack[len(stack)-1]
				prev := stack[len(stack)-2]
				turn := cross(prev.v.Point, mid.v.Point, cur.v.Point)
				convex := turn < 0
				if cur.s == sideLeft {
					convex = turn > 0
				}
				if !convex {
					break
				}
				emit3(cur, prev, mid)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, cur)
		}
	}
	return out
}

// emit triangulates into plain CCW-wound point triangles, appending to
// out (spec section 2, stage 6's position-only output).
func (p *Poly) emit(out [][3]Point) [][3]Point {
	for _, t := range p.emitVerts(nil) {
		out = append(out, [3]Point{t[0].v.Point, t[1].v.Point, t[2].v.Point})
	}
	return out
}

// emitCoverage triangulates into position+alpha triangles, used by the
// antialiased pass where each vertex's coverage alpha must survive to
// the caller (spec sections 4.8/6, "position+color+coverage").
func (p *Poly) emitCoverage() []CoverageTriangle {
	var out []CoverageTriangle
	for _, t := range p.emitVerts(nil) {
		out = append(out, CoverageTriangle{
			Points: [3]Point{t[0].v.Point, t[1].v.Point, t[2].v.Point},
			Alpha:  [3]uint8{t[0].v.Alpha, t[1].v.Alpha, t[2].v.Alpha},
		})
	}
	return out
}

// tessellate sweeps the simplified, sweep-sorted vertex list once
// more, this time tracking the running winding number across the
// active edge list so each maximal run of nonzero winding accumulates
// into its own Poly, independent of any fill rule: which Polys are
// actually filled is a decision deferred to emission (polysToTriangles
// for PathToTriangles; left to the caller entirely for PathToVertices,
// per spec section 6, "does not apply the fill rule at emission").
func tessellate(verts *VertexList, c Comparator) []*Poly {
	ael := &EdgeList{}
	var polys []*Poly

	for v := verts.Head; v != nil; v = v.Next {
		logVertex("tessellate", v)
		for e := v.FirstEdgeAbove; e != nil; e = e.NextEdgeAbove {
			if e.LeftPoly != nil {
				e.LeftPoly.appendVertex(v, sideRight)
			}
			if e.RightPoly != nil {
				e.RightPoly.appendVertex(v, sideLeft)
			}
			removeEdgeFromAEL(e, ael)
		}
		mergeCollinearEdges(v, c)

		left, _ := findEnclosingEdges(v, ael)

		running := 0
		for e := ael.Head; e != nil && e != left; e = e.Right {
			running += e.Winding
		}
		if left != nil {
			running += left.Winding
		}

		var currentPoly *Poly
		if left != nil {
			currentPoly = left.RightPoly
		}

		prevEdge := left
		for e := v.FirstEdgeBelow; e != nil; e = e.NextEdgeBelow {
			if above := v.FirstEdgeAbove; above != nil && above == v.LastEdgeAbove && e == v.LastEdgeBelow && e == v.FirstEdgeBelow {
				e.LeftPoly, e.RightPoly = above.LeftPoly, above.RightPoly
				insertEdge(e, prevEdge, ael)
				fixActiveState(e, ael)
				break
			}
			windingBefore := running
			running += e.Winding
			windingAfter := running

			switch {
			case windingBefore == 0 && windingAfter != 0:
				poly := newPoly(windingAfter)
				poly.appendVertex(v, sideLeft)
				e.LeftPoly, e.RightPoly = nil, poly
				polys = append(polys, poly)
				currentPoly = poly
			case windingBefore != 0 && windingAfter == 0:
				e.LeftPoly, e.RightPoly = currentPoly, nil
				if currentPoly != nil {
					currentPoly.appendVertex(v, sideRight)
				}
				currentPoly = nil
			default:
				e.LeftPoly, e.RightPoly = nil, nil
			}

			insertEdge(e, prevEdge, ael)
			fixActiveState(e, ael)
			prevEdge = e
		}
	}
	return polys
}

// polysToTriangles triangulates every poly whose winding survives
// fillRule and appends the result to out; PathToVertices, by contrast,
// does not filter at all and hands every Poly's winding to the caller
// (spec section 2, stage 6; section 6).
func polysToTriangles(polys []*Poly, fillRule FillRule, out [][3]Point) [][3]Point {
	for _, p := range polys {
		if !fillRule.apply(p.Winding) {
			continue
		}
		out = p.emit(out)
	}
	return out
}
