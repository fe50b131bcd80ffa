package tessellator

import "math"

// Stages 5a-5d: antialiasing by half-pixel boundary extrusion. Grounded
// on extract_boundary(ies), get_edge_normal, simplify_boundary,
// fix_inversions and boundary_to_aa_mesh in original_source. Boundary
// extraction starts from a Poly's two already-collected chains, which
// is sufficient once the interior has already been triangulated by
// tessellate/emit; buildAAEdgeMesh then turns the offset rings back
// into a real Edge mesh so it can be resorted, resimplified and
// retessellated through stages 3-6, as spec section 2 requires.

// getEdgeNormal returns the unit-length left-hand normal of the
// directed segment a->b (i.e. it points away from the polygon's
// interior for a counter-clockwise boundary), scaled by length.
func getEdgeNormal(a, b Point, length float64) Point {
	dx := float64(b[0]) - float64(a[0])
	dy := float64(b[1]) - float64(a[1])
	mag := math.Hypot(dx, dy)
	if mag == 0 {
		return Point{}
	}
	nx := -dy / mag * length
	ny := dx / mag * length
	return Point{float32(nx), float32(ny)}
}

// extractBoundary walks a Poly's two chains (left top-to-bottom, right
// bottom-to-top) into one closed point loop describing its outer
// silhouette.
func extractBoundary(p *Poly) []Point {
	var left, right []Point
	for _, pv := range p.Verts {
		switch pv.s {
		case sideLeft:
			left = append(left, pv.v.Point)
		case sideRight:
			right = append(right, pv.v.Point)
		}
	}
	loop := make([]Point, 0, len(left)+len(right))
	loop = append(loop, left...)
	for i := len(right) - 1; i >= 0; i-- {
		loop = append(loop, right[i])
	}
	return loop
}

// extractBoundaries runs extractBoundary over every poly that survives
// fillRule, simplifying each resulting loop.
func extractBoundaries(polys []*Poly, fillRule FillRule) [][]Point {
	var loops [][]Point
	for _, p := range polys {
		if !fillRule.apply(p.Winding) {
			continue
		}
		if loop := simplifyBoundary(extractBoundary(p)); len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}
	return loops
}

// simplifyBoundary drops consecutive duplicate points, then collapses
// pointy vertices (spec section 4.7): a vertex whose incoming and
// outgoing edge normals turn by more than 90 degrees, where the vertex
// before it already lies within a quarter pixel of the line carrying
// the outgoing edge, contributes no visible corner, so it is folded
// away and its two edges become one.
func simplifyBoundary(loop []Point) []Point {
	loop = dropDuplicatePoints(loop)
	if len(loop) < 3 {
		return loop
	}
	return dropPointyVertices(loop)
}

func dropDuplicatePoints(loop []Point) []Point {
	if len(loop) < 2 {
		return loop
	}
	out := make([]Point, 0, len(loop))
	for i, p := range loop {
		prev := loop[(i-1+len(loop))%len(loop)]
		if p == prev {
			continue
		}
		out = append(out, p)
	}
	return out
}

// isPointyVertex implements spec section 4.7's predicate for the
// vertex at loop[i].
func isPointyVertex(loop []Point, i int) bool {
	n := len(loop)
	prev := loop[(i-1+n)%n]
	cur := loop[i]
	next := loop[(i+1)%n]

	n1 := getEdgeNormal(prev, cur, 1)
	n2 := getEdgeNormal(cur, next, 1)
	if float64(n1[0])*float64(n2[0])+float64(n1[1])*float64(n2[1]) >= 0 {
		return false
	}
	outgoing := newLine(cur, next)
	mag := math.Sqrt(outgoing.magSq())
	if mag == 0 {
		return false
	}
	return math.Abs(outgoing.dist(prev))/mag <= 0.25
}

func dropPointyVertices(loop []Point) []Point {
	n := len(loop)
	drop := make([]bool, n)
	for i := 0; i < n; i++ {
		drop[i] = isPointyVertex(loop, i)
	}
	out := make([]Point, 0, n)
	for i, p := range loop {
		if !drop[i] {
			out = append(out, p)
		}
	}
	return out
}

// offsetLine returns the line through a and b shifted by delta, used
// to build a boundary edge's inner or outer bisector line (spec
// section 4.7, "construct its inner line... and outer line").
func offsetLine(a, b, delta Point) Line {
	return newLine(
		Point{a[0] + delta[0], a[1] + delta[1]},
		Point{b[0] + delta[0], b[1] + delta[1]},
	)
}

// aaRing builds one offset ring (inner when sign is -1, outer when
// sign is +1) by intersecting each pair of neighbouring bisector
// lines, rather than averaging adjacent normals: both edges meeting at
// a vertex then share one offset point instead of two independently
// displaced ones, which is the inversion repair spec section 4.7 calls
// for ("intersecting consecutive bisectors" avoids a zero-area
// inverted quad). Parallel neighbours (a straight run) fall back to a
// plain normal offset.
func aaRing(loop []Point, halfWidth float32, sign float32) []Point {
	n := len(loop)
	displacement := func(a, b Point) Point {
		return getEdgeNormal(a, b, float64(halfWidth)*float64(sign))
	}
	lines := make([]Line, n)
	for i := 0; i < n; i++ {
		a, b := loop[i], loop[(i+1)%n]
		lines[i] = offsetLine(a, b, displacement(a, b))
	}
	ring := make([]Point, n)
	for i := 0; i < n; i++ {
		prevLine := lines[(i-1+n)%n]
		curLine := lines[i]
		if p, ok := prevLine.intersect(curLine, false); ok {
			ring[i] = p
			continue
		}
		d := displacement(loop[(i-1+n)%n], loop[i])
		ring[i] = Point{loop[i][0] + d[0], loop[i][1] + d[1]}
	}
	return ring
}

// AAMesh is a single boundary loop's antialiased extrusion: an inner
// ring (full coverage, offset halfWidth into the interior) and an
// outer ring (zero coverage, offset halfWidth outward). buildAAEdgeMesh
// turns this point-level shape into the real edge mesh spec section
// 4.7 describes.
type AAMesh struct {
	Inner, Outer []Point
}

// boundaryToAAMesh offsets loop inward and outward by halfWidth,
// intersecting neighbouring bisector lines per aaRing.
func boundaryToAAMesh(loop []Point, halfWidth float32) AAMesh {
	return AAMesh{
		Inner: aaRing(loop, halfWidth, -1),
		Outer: aaRing(loop, halfWidth, 1),
	}
}

// buildAAEdgeMesh turns every loop's AAMesh into the edge mesh spec
// section 4.7 describes: an outer ring wound +1, an inner ring wound
// -2 (so the band stays covered even where the offset mesh
// self-intersects at a sharp corner), and zero-winding connector edges
// tying each inner vertex to its outer counterpart. The result is a
// single unsorted VertexList meant to re-enter stages 3-6 (mergeSort,
// mergeCoincidentVertices, simplify, tessellate), which is also what
// makes EdgeOuter/EdgeConnector and their edge-type-aware alpha in
// Edge.intersect/lerpAlpha live code instead of dead branches.
func buildAAEdgeMesh(loops [][]Point, halfWidth float32, c Comparator, vertexArena *Arena[Vertex], edgeArena *Arena[Edge]) *VertexList {
	all := &VertexList{}
	for _, loop := range loops {
		if len(loop) < 3 {
			continue
		}
		mesh := boundaryToAAMesh(loop, halfWidth)
		n := len(loop)
		inner := make([]*Vertex, n)
		outer := make([]*Vertex, n)
		for i := 0; i < n; i++ {
			inner[i] = vertexArena.New()
			inner[i].Point = mesh.Inner[i]
			inner[i].Alpha = 255
			all.append(inner[i])

			outer[i] = vertexArena.New()
			outer[i].Point = mesh.Outer[i]
			outer[i].Alpha = 0
			all.append(outer[i])
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			connect(inner[i], inner[j], EdgeInner, c, edgeArena, -2)
			connect(outer[i], outer[j], EdgeOuter, c, edgeArena, 1)
			connect(inner[i], outer[i], EdgeConnector, c, edgeArena, 0)
		}
	}
	return all
}
