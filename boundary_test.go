package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEdgeNormalIsPerpendicular(t *testing.T) {
	n := getEdgeNormal(Point{0, 0}, Point{10, 0}, 1)
	assert.InDelta(t, 0, n[0], 1e-6)
	assert.InDelta(t, 1, n[1], 1e-6)
}

func TestSimplifyBoundaryDropsDuplicates(t *testing.T) {
	loop := []Point{{0, 0}, {0, 0}, {10, 0}, {10, 10}}
	out := simplifyBoundary(loop)
	assert.Len(t, out, 3)
}

func TestSimplifyBoundaryCollapsesPointyVertex(t *testing.T) {
	// The middle vertex's incoming and outgoing edges turn by more
	// than 90 degrees, and the vertex before it lies within a quarter
	// pixel of the line carrying the outgoing edge, so it should fold
	// away.
	loop := []Point{{0, 0}, {10, 0}, {0, 0.0001}, {5, 20}}
	out := simplifyBoundary(loop)
	for _, p := range out {
		assert.NotEqual(t, Point{10, 0}, p)
	}
}

func TestBoundaryToAAMeshOffsetsBothWays(t *testing.T) {
	loop := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	mesh := boundaryToAAMesh(loop, 1)
	assert.Len(t, mesh.Inner, 4)
	assert.Len(t, mesh.Outer, 4)
	for i := range loop {
		innerDist := dist(mesh.Inner[i], loop[i])
		outerDist := dist(mesh.Outer[i], loop[i])
		assert.Greater(t, innerDist, 0.0)
		assert.Greater(t, outerDist, 0.0)
	}
}

func dist(a, b Point) float64 {
	dx := float64(a[0] - b[0])
	dy := float64(a[1] - b[1])
	return dx*dx + dy*dy
}
