package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConicPow2AtWeightOne(t *testing.T) {
	assert.Equal(t, 0, conicPow2(1, 0.0001))
}

func TestConicPow2GrowsWithWeight(t *testing.T) {
	n1 := conicPow2(1.5, 0.0001)
	n2 := conicPow2(5, 0.0001)
	assert.GreaterOrEqual(t, n2, n1)
	assert.LessOrEqual(t, n2, 5)
}

func TestConicChopPreservesEndpoints(t *testing.T) {
	c := conic{p0: Point{0, 0}, p1: Point{1, 1}, p2: Point{2, 0}, w: 0.7071}
	left, right := c.chop()
	assert.Equal(t, c.p0, left.p0)
	assert.Equal(t, c.p2, right.p2)
	assert.Equal(t, left.p2, right.p0)
}

func TestFlattenConicToQuadsCount(t *testing.T) {
	c := conic{p0: Point{0, 0}, p1: Point{1, 1}, p2: Point{2, 0}, w: 1}
	quads := flattenConicToQuads(c, 2, nil)
	assert.Len(t, quads, 4)
}
