package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathToTrianglesSquare(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)
	_ = p.LineTo(10, 10)
	_ = p.LineTo(0, 10)
	_ = p.Close()

	alloc := &SliceVertexAllocator{}
	n, _ := PathToTriangles(p, Options{}, alloc)
	assert.Equal(t, 6, n)
}

func TestPathToTrianglesWireframeDoublesVertexCount(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)
	_ = p.LineTo(10, 10)
	_ = p.LineTo(0, 10)
	_ = p.Close()

	alloc := &SliceVertexAllocator{}
	n, _ := PathToTriangles(p, Options{Wireframe: true}, alloc)
	assert.Equal(t, 12, n)
}

func TestPathToVerticesReportsWinding(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)
	_ = p.LineTo(10, 10)
	_ = p.LineTo(0, 10)
	_ = p.Close()

	tris := PathToVertices(p, Options{})
	if assert.Len(t, tris, 2) {
		assert.NotZero(t, tris[0].Winding)
	}
}

func TestPathToTrianglesEmptyPathIsNotAnError(t *testing.T) {
	p := NewPath(FillNonZero)
	alloc := &SliceVertexAllocator{}
	n, _ := PathToTriangles(p, Options{}, alloc)
	assert.Equal(t, 0, n)
}

func TestPathToTrianglesRejectsOversizedPath(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.CubicTo(0, 1e8, 1e8, 1e8, 1e8, 0)
	_ = p.Close()

	alloc := &SliceVertexAllocator{}
	n, _ := PathToTriangles(p, Options{Tolerance: 1e-6}, alloc)
	assert.Equal(t, 0, n)
}

func TestPathToTrianglesAllocatorRefusalCommitsNothing(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)
	_ = p.LineTo(10, 10)
	_ = p.LineTo(0, 10)
	_ = p.Close()

	n, _ := PathToTriangles(p, Options{}, refusingAllocator{})
	assert.Equal(t, 0, n)
}

type refusingAllocator struct{}

func (refusingAllocator) Lock(int) []Point { return nil }
func (refusingAllocator) Unlock(int)       {}

func TestTesselatorConvenienceWrapper(t *testing.T) {
	ts := NewTesselator(FillNonZero, Options{})
	err := ts.AddContour([]Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	assert.NoError(t, err)

	tris := ts.Tesselate()
	assert.Len(t, tris, 2)
}

func TestPathToTrianglesWithAntiAliasProducesExtraCoverageGeometry(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)
	_ = p.LineTo(10, 10)
	_ = p.LineTo(0, 10)
	_ = p.Close()

	alloc := &SliceVertexAllocator{}
	n, coverage := PathToTriangles(p, Options{AntiAlias: true}, alloc)
	assert.Greater(t, n, 6)
	if assert.NotEmpty(t, coverage) {
		sawFull, sawZero := false, false
		for _, tri := range coverage {
			for _, a := range tri.Alpha {
				if a == 255 {
					sawFull = true
				}
				if a == 0 {
					sawZero = true
				}
			}
		}
		assert.True(t, sawFull, "expected at least one fully-covered coverage vertex")
		assert.True(t, sawZero, "expected at least one fully-uncovered coverage vertex")
	}
}
