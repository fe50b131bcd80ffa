package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSortOrdersBySweep(t *testing.T) {
	va := NewArena[Vertex](8)
	c := Comparator{Direction: DirectionVertical}

	list := &VertexList{}
	list.append(newTestVertex(va, 0, 10))
	list.append(newTestVertex(va, 0, 0))
	list.append(newTestVertex(va, 0, 5))

	mergeSort(list, c)

	var ys []float32
	for v := list.Head; v != nil; v = v.Next {
		ys = append(ys, v.Point[1])
	}
	assert.Equal(t, []float32{0, 5, 10}, ys)
	assert.Nil(t, list.Head.Prev)
	assert.Nil(t, list.Tail.Next)
}

func TestCheckForIntersectionFindsCrossing(t *testing.T) {
	va := NewArena[Vertex](8)
	ea := NewArena[Edge](8)
	c := Comparator{Direction: DirectionVertical}

	a1 := newTestVertex(va, 0, 0)
	a2 := newTestVertex(va, 10, 10)
	e1 := newEdge(a1, a2, 1, EdgeInner, c, ea)

	b1 := newTestVertex(va, 10, 0)
	b2 := newTestVertex(va, 0, 10)
	e2 := newEdge(b1, b2, 1, EdgeInner, c, ea)

	list := &VertexList{}
	list.append(a1)

	v := checkForIntersection(e1, e2, c, false, ea, va, list, a1)
	if assert.NotNil(t, v) {
		assert.InDelta(t, 5, v.Point[0], 1e-3)
		assert.InDelta(t, 5, v.Point[1], 1e-3)
	}
}

func TestCheckForIntersectionNoCrossingReturnsNil(t *testing.T) {
	va := NewArena[Vertex](8)
	ea := NewArena[Edge](8)
	c := Comparator{Direction: DirectionVertical}

	a1 := newTestVertex(va, 0, 0)
	a2 := newTestVertex(va, 0, 10)
	e1 := newEdge(a1, a2, 1, EdgeInner, c, ea)

	b1 := newTestVertex(va, 5, 0)
	b2 := newTestVertex(va, 5, 10)
	e2 := newEdge(b1, b2, 1, EdgeInner, c, ea)

	list := &VertexList{}
	list.append(a1)

	v := checkForIntersection(e1, e2, c, false, ea, va, list, a1)
	assert.Nil(t, v)
}
