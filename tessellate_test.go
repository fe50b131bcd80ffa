package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolyEmitTriangleIsDegenerateFree(t *testing.T) {
	va := NewArena[Vertex](8)
	p := newPoly(1)
	a := newTestVertex(va, 0, 0)
	b := newTestVertex(va, 10, 0)
	c := newTestVertex(va, 5, 10)
	p.appendVertex(a, sideLeft)
	p.appendVertex(c, sideLeft)
	p.appendVertex(b, sideRight)

	tris := p.emit(nil)
	assert.Len(t, tris, 1)
}

func TestTessellateSquareYieldsTwoTriangles(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)
	_ = p.LineTo(10, 10)
	_ = p.LineTo(0, 10)
	_ = p.Close()

	polys := pipeline(p, Options{})

	var tris [][3]Point
	tris = polysToTriangles(polys, p.fillRule, tris)
	assert.Len(t, tris, 2)
}

func TestTessellateRespectsEvenOddHole(t *testing.T) {
	p := NewPath(FillEvenOdd)
	p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)
	_ = p.LineTo(10, 10)
	_ = p.LineTo(0, 10)
	_ = p.Close()
	p.MoveTo(3, 3)
	_ = p.LineTo(7, 3)
	_ = p.LineTo(7, 7)
	_ = p.LineTo(3, 7)
	_ = p.Close()

	polys := pipeline(p, Options{})

	var area float64
	for _, tri := range polysToTriangles(polys, p.fillRule, nil) {
		area += triangleArea(tri)
	}
	assert.InDelta(t, 100-16, area, 1)
}

func triangleArea(t [3]Point) float64 {
	return 0.5 * (float64(t[1][0]-t[0][0])*float64(t[2][1]-t[0][1]) -
		float64(t[2][0]-t[0][0])*float64(t[1][1]-t[0][1]))
}
