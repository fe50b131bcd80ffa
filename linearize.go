package tessellator

import "math"

const minCurveTolerance = 0.0001

// distanceToSegmentSqd returns the squared distance from p to the line
// segment ab, matching SkPoint::distanceToLineSegmentBetweenSqd's
// contract (used by the curve-flatness tests below).
func distanceToSegmentSqd(p, a, b Point) float32 {
	abx := float64(b[0]) - float64(a[0])
	aby := float64(b[1]) - float64(a[1])
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		dx := float64(p[0]) - float64(a[0])
		dy := float64(p[1]) - float64(a[1])
		return float32(dx*dx + dy*dy)
	}
	apx := float64(p[0]) - float64(a[0])
	apy := float64(p[1]) - float64(a[1])
	t := (apx*abx + apy*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	projx := float64(a[0]) + t*abx
	projy := float64(a[1]) + t*aby
	dx := float64(p[0]) - projx
	dy := float64(p[1]) - projy
	return float32(dx*dx + dy*dy)
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// quadraticPointCount precomputes an a-priori subdivision budget for a
// quadratic from its control polygon's deviation from the chord (spec
// section 4.1: "a-priori subdivision budget precomputed from the
// curve's control polygon").
func quadraticPointCount(p0, p1, p2 Point, tol float32) int {
	if tol < minCurveTolerance {
		tol = minCurveTolerance
	}
	d := float64(distanceToSegmentSqd(p1, p0, p2))
	d = math.Sqrt(d)
	if d <= float64(tol) {
		return 1
	}
	temp := int(math.Ceil(math.Sqrt(d / float64(tol))))
	return nextPow2(temp)
}

// cubicPointCount is the cubic analogue of quadraticPointCount, using
// the larger of the two control points' deviation from the chord.
func cubicPointCount(p0, p1, p2, p3 Point, tol float32) int {
	if tol < minCurveTolerance {
		tol = minCurveTolerance
	}
	d1 := math.Sqrt(float64(distanceToSegmentSqd(p1, p0, p3)))
	d2 := math.Sqrt(float64(distanceToSegmentSqd(p2, p0, p3)))
	d := d1
	if d2 > d {
		d = d2
	}
	if d <= float64(tol) {
		return 1
	}
	temp := int(math.Ceil(math.Sqrt(d / float64(tol))))
	return nextPow2(temp)
}

func average(a, b Point) Point {
	return Point{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}

type contourBuilder struct {
	arena *Arena[Vertex]
	prev  *Vertex
	head  *Vertex
}

func (c *contourBuilder) appendPoint(p Point) *Vertex {
	v := c.arena.New()
	v.Point = p
	v.Alpha = 255
	if c.prev != nil {
		c.prev.Next = v
		v.Prev = c.prev
	} else {
		c.head = v
	}
	c.prev = v
	return v
}

// generateQuadraticPoints recursively bisects a quadratic with de
// Casteljau until the control point's squared chord deviation is below
// tolSqd or the a-priori budget is exhausted (spec section 4.1).
func (c *contourBuilder) generateQuadraticPoints(p0, p1, p2 Point, tolSqd float32, pointsLeft int) {
	d := distanceToSegmentSqd(p1, p0, p2)
	if pointsLeft < 2 || d < tolSqd || math.IsNaN(float64(d)) || math.IsInf(float64(d), 0) {
		c.appendPoint(p2)
		return
	}
	q0 := average(p0, p1)
	q1 := average(p1, p2)
	r := average(q0, q1)
	pointsLeft >>= 1
	c.generateQuadraticPoints(p0, q0, r, tolSqd, pointsLeft)
	c.generateQuadraticPoints(r, q1, p2, tolSqd, pointsLeft)
}

// generateCubicPoints is the cubic analogue of generateQuadraticPoints.
func (c *contourBuilder) generateCubicPoints(p0, p1, p2, p3 Point, tolSqd float32, pointsLeft int) {
	d1 := distanceToSegmentSqd(p1, p0, p3)
	d2 := distanceToSegmentSqd(p2, p0, p3)
	if pointsLeft < 2 || (d1 < tolSqd && d2 < tolSqd) ||
		math.IsNaN(float64(d1)) || math.IsNaN(float64(d2)) {
		c.appendPoint(p3)
		return
	}
	q0 := average(p0, p1)
	q1 := average(p1, p2)
	q2 := average(p2, p3)
	r0 := average(q0, q1)
	r1 := average(q1, q2)
	s := average(r0, r1)
	pointsLeft >>= 1
	c.generateCubicPoints(p0, q0, r0, s, tolSqd, pointsLeft)
	c.generateCubicPoints(s, r1, q2, p3, tolSqd, pointsLeft)
}

// pathToContours is stage 1: it converts path into one circular
// doubly-linked vertex list per contour (spec section 2, stage 1, and
// section 4.1).
func pathToContours(path *Path, tolerance float32, clipBounds Rect, arena *Arena[Vertex]) (contours []*Vertex, isLinear bool) {
	tolSqd := tolerance * tolerance
	isLinear = true

	cb := &contourBuilder{arena: arena}
	finishContour := func() {
		if cb.head != nil {
			cb.head.Prev = cb.prev
			cb.prev.Next = cb.head
			contours = append(contours, cb.head)
		}
		cb.head, cb.prev = nil, nil
	}

	if path.inverse {
		quad := clipBounds.quad()
		for i := 3; i >= 0; i-- {
			cb.appendPoint(quad[i])
		}
		finishContour()
	}

	cur := Point{}
	for _, s := range path.segs {
		switch s.kind {
		case segMove:
			finishContour()
			cur = s.pts[0]
			cb.appendPoint(cur)
		case segLine:
			cb.appendPoint(s.pts[0])
			cur = s.pts[0]
		case segQuad:
			n := quadraticPointCount(cur, s.pts[0], s.pts[1], tolerance)
			cb.generateQuadraticPoints(cur, s.pts[0], s.pts[1], tolSqd, n)
			cur = s.pts[1]
			isLinear = false
		case segConic:
			pow2 := conicPow2(s.weight, tolSqd)
			quads := flattenConicToQuads(conic{p0: cur, p1: s.pts[0], p2: s.pts[1], w: s.weight}, pow2, nil)
			for _, q := range quads {
				n := quadraticPointCount(q[0], q[1], q[2], tolerance)
				cb.generateQuadraticPoints(q[0], q[1], q[2], tolSqd, n)
			}
			cur = s.pts[1]
			isLinear = false
		case segCubic:
			n := cubicPointCount(cur, s.pts[0], s.pts[1], s.pts[2], tolerance)
			cb.generateCubicPoints(cur, s.pts[0], s.pts[1], s.pts[2], tolSqd, n)
			cur = s.pts[2]
			isLinear = false
		case segClose:
			finishContour()
		}
	}
	finishContour()
	return contours, isLinear
}

// worstCasePointCount upper-bounds the number of vertices pathToContours
// can produce, without running it, so the 65536-vertex resource bound
// (spec section 5) can be enforced before any arena allocation happens
// (supplemented per SPEC_FULL.md section C.4, grounded on
// GrPathUtils::worstCasePointCount / get_contour_count in
// original_source).
func worstCasePointCount(path *Path, tolerance float32) (maxPoints, contourCount int) {
	cur := Point{}
	open := false
	if path.inverse {
		contourCount++
		maxPoints += 4
	}
	for _, s := range path.segs {
		switch s.kind {
		case segMove:
			if open {
				contourCount++
			}
			open = true
			maxPoints++
			cur = s.pts[0]
		case segLine:
			maxPoints++
			cur = s.pts[0]
		case segQuad:
			maxPoints += quadraticPointCount(cur, s.pts[0], s.pts[1], tolerance)
			cur = s.pts[1]
		case segConic:
			pow2 := conicPow2(s.weight, tolerance*tolerance)
			maxPoints += (1 << pow2) * quadraticPointCount(cur, s.pts[0], s.pts[1], tolerance)
			cur = s.pts[1]
		case segCubic:
			maxPoints += cubicPointCount(cur, s.pts[0], s.pts[1], s.pts[2], tolerance)
			cur = s.pts[2]
		case segClose:
			if open {
				contourCount++
			}
			open = false
		}
	}
	if open {
		contourCount++
	}
	return maxPoints, contourCount
}
