package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitToAllocatorTriangleMode(t *testing.T) {
	tris := [][3]Point{{{0, 0}, {1, 0}, {0, 1}}}
	alloc := &SliceVertexAllocator{}
	n := emitToAllocator(tris, false, alloc)
	assert.Equal(t, 3, n)
	assert.Len(t, alloc.buf, 3)
}

func TestEmitToAllocatorWireframeMode(t *testing.T) {
	tris := [][3]Point{{{0, 0}, {1, 0}, {0, 1}}}
	alloc := &SliceVertexAllocator{}
	n := emitToAllocator(tris, true, alloc)
	assert.Equal(t, 6, n)
}

func TestAABandTrianglesKeepsOnlyWindingOnePolys(t *testing.T) {
	va := NewArena[Vertex](8)
	band := newPoly(1)
	band.appendVertex(newTestVertex(va, 0, 0), sideLeft)
	band.appendVertex(newTestVertex(va, 5, 10), sideLeft)
	band.appendVertex(newTestVertex(va, 10, 0), sideRight)

	interior := newPoly(-1)
	interior.appendVertex(newTestVertex(va, 0, 0), sideLeft)
	interior.appendVertex(newTestVertex(va, 5, 10), sideLeft)
	interior.appendVertex(newTestVertex(va, 10, 0), sideRight)

	out := aaBandTriangles([]*Poly{band, interior})
	assert.Len(t, out, 1)
}

func TestWindingTrianglesCarryPolyWinding(t *testing.T) {
	va := NewArena[Vertex](8)
	p := newPoly(2)
	p.appendVertex(newTestVertex(va, 0, 0), sideLeft)
	p.appendVertex(newTestVertex(va, 5, 10), sideLeft)
	p.appendVertex(newTestVertex(va, 10, 0), sideRight)

	out := windingTriangles([]*Poly{p})
	assert.Len(t, out, 1)
	assert.Equal(t, 2, out[0].Winding)
}
