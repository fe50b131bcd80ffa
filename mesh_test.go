package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestVertex(arena *Arena[Vertex], x, y float32) *Vertex {
	v := arena.New()
	v.Point = Point{x, y}
	v.Alpha = 255
	return v
}

func TestNewEdgeOrdersTopBeforeBottom(t *testing.T) {
	va := NewArena[Vertex](8)
	ea := NewArena[Edge](8)
	c := Comparator{Direction: DirectionVertical}

	a := newTestVertex(va, 0, 10)
	b := newTestVertex(va, 0, 0)

	e := newEdge(a, b, 1, EdgeInner, c, ea)
	assert.Equal(t, b, e.Top)
	assert.Equal(t, a, e.Bottom)
	assert.Equal(t, -1, e.Winding)
}

func TestInsertEdgeAboveOrdersLeftToRight(t *testing.T) {
	va := NewArena[Vertex](8)
	ea := NewArena[Edge](8)
	c := Comparator{Direction: DirectionVertical}

	bottom := newTestVertex(va, 5, 10)
	topLeft := newTestVertex(va, 0, 0)
	topRight := newTestVertex(va, 10, 0)

	e1 := newEdge(topRight, bottom, 1, EdgeInner, c, ea)
	e2 := newEdge(topLeft, bottom, 1, EdgeInner, c, ea)

	assert.Equal(t, e2, bottom.FirstEdgeAbove)
	assert.Equal(t, e1, bottom.LastEdgeAbove)
}

func TestMergeVerticesRethreadsEdges(t *testing.T) {
	va := NewArena[Vertex](8)
	ea := NewArena[Edge](8)
	c := Comparator{Direction: DirectionVertical}

	top := newTestVertex(va, 0, 0)
	src := newTestVertex(va, 0, 10)
	dst := newTestVertex(va, 0.01, 10)

	e := newEdge(top, src, 1, EdgeInner, c, ea)
	mergeVertices(src, dst, c)

	assert.Equal(t, dst, e.Bottom)
	assert.Nil(t, src.FirstEdgeAbove)
}

func TestSplitEdgeProducesTwoSegments(t *testing.T) {
	va := NewArena[Vertex](8)
	ea := NewArena[Edge](8)
	c := Comparator{Direction: DirectionVertical}

	top := newTestVertex(va, 0, 0)
	bottom := newTestVertex(va, 0, 10)
	mid := newTestVertex(va, 0, 5)

	e := newEdge(top, bottom, 1, EdgeInner, c, ea)
	lower := splitEdge(e, mid, c, ea)

	assert.Equal(t, mid, e.Bottom)
	assert.Equal(t, mid, lower.Top)
	assert.Equal(t, bottom, lower.Bottom)
}

func TestBuildEdgesSkipsDegenerateSegments(t *testing.T) {
	va := NewArena[Vertex](8)
	ea := NewArena[Edge](8)
	c := Comparator{Direction: DirectionVertical}

	a := newTestVertex(va, 0, 0)
	b := newTestVertex(va, 0, 0)
	a.Next, b.Next = b, a
	a.Prev, b.Prev = b, a

	verts := buildEdges([]*Vertex{a}, FillNonZero, c, ea)
	count := 0
	for v := verts.Head; v != nil; v = v.Next {
		count++
	}
	assert.Equal(t, 2, count)
	assert.Nil(t, a.FirstEdgeAbove)
	assert.Nil(t, a.FirstEdgeBelow)
}
