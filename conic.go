package tessellator

import "math"

// conic is a rational quadratic Bezier: p0, p1, p2 with p1 weighted by w.
// At w == 1 it degenerates to an ordinary quadratic.
type conic struct {
	p0, p1, p2 Point
	w          float32
}

// conicPow2 picks how many times to bisect a conic before treating each
// piece as an ordinary quadratic, based on how far its weight is from 1
// (spec section 4.1: "Conics are first rationalized into a bounded set
// of quadratics"). This mirrors the shape of Skia's
// SkConic::computeQuadPOW2 without reproducing its exact error bound.
func conicPow2(w float32, tolSqd float32) int {
	d := math.Abs(float64(w) - 1)
	if tolSqd <= 0 {
		tolSqd = 1e-6
	}
	pow2 := 0
	for d > float64(tolSqd) && pow2 < 5 {
		d *= 0.25
		pow2++
	}
	return pow2
}

// chop splits c at t=0.5 using exact rational de Casteljau in homogeneous
// coordinates, returning two conics whose shared endpoint has weight
// folded into its neighbouring control points.
func (c conic) chop() (conic, conic) {
	type h struct{ x, y, w float64 }
	toH := func(p Point, w float64) h { return h{float64(p[0]) * w, float64(p[1]) * w, w} }
	mid := func(a, b h) h { return h{(a.x + b.x) / 2, (a.y + b.y) / 2, (a.w + b.w) / 2} }
	fromH := func(p h) Point { return Point{float32(p.x / p.w), float32(p.y / p.w)} }

	p0h := toH(c.p0, 1)
	p1h := toH(c.p1, float64(c.w))
	p2h := toH(c.p2, 1)

	q1 := mid(p0h, p1h)
	q2 := mid(p1h, p2h)
	q3 := mid(q1, q2)

	midWeight := q3.w
	leftW := float32(q1.w / math.Sqrt(1*midWeight))
	rightW := float32(q2.w / math.Sqrt(midWeight*1))

	left := conic{p0: c.p0, p1: fromH(q1), p2: fromH(q3), w: leftW}
	right := conic{p0: fromH(q3), p1: fromH(q2), p2: c.p2, w: rightW}
	return left, right
}

// flattenConicToQuads appends the quadratic approximations of c to dst.
func flattenConicToQuads(c conic, pow2 int, dst [][3]Point) [][3]Point {
	if pow2 <= 0 {
		return append(dst, [3]Point{c.p0, c.p1, c.p2})
	}
	left, right := c.chop()
	dst = flattenConicToQuads(left, pow2-1, dst)
	dst = flattenConicToQuads(right, pow2-1, dst)
	return dst
}
