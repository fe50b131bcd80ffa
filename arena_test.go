package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaNewReturnsDistinctZeroedValues(t *testing.T) {
	a := NewArena[Vertex](4)
	v1 := a.New()
	v2 := a.New()
	assert.NotSame(t, v1, v2)
	assert.Equal(t, Vertex{}, *v1)
}

func TestArenaCrossesSlabBoundary(t *testing.T) {
	a := NewArena[Vertex](2)
	var ptrs []*Vertex
	for i := 0; i < 5; i++ {
		ptrs = append(ptrs, a.New())
	}
	seen := make(map[*Vertex]bool)
	for _, p := range ptrs {
		assert.False(t, seen[p])
		seen[p] = true
	}
}

func TestArenaReleaseDropsSlabs(t *testing.T) {
	a := NewArena[Edge](4)
	a.New()
	a.Release()
	v := a.New()
	assert.NotNil(t, v)
}
