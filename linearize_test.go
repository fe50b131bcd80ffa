package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuadraticPointCountFlatIsOne(t *testing.T) {
	n := quadraticPointCount(Point{0, 0}, Point{5, 0}, Point{10, 0}, 0.25)
	assert.Equal(t, 1, n)
}

func TestQuadraticPointCountGrowsWithCurvature(t *testing.T) {
	n := quadraticPointCount(Point{0, 0}, Point{5, 100}, Point{10, 0}, 0.25)
	assert.Greater(t, n, 1)
}

func TestCubicPointCountFlatIsOne(t *testing.T) {
	n := cubicPointCount(Point{0, 0}, Point{3, 0}, Point{6, 0}, Point{10, 0}, 0.25)
	assert.Equal(t, 1, n)
}

func TestPathToContoursSquareProducesFourVertices(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.LineTo(10, 0)
	_ = p.LineTo(10, 10)
	_ = p.LineTo(0, 10)
	_ = p.Close()

	arena := NewArena[Vertex](16)
	contours, isLinear := pathToContours(p, 0.25, Rect{}, arena)
	assert.True(t, isLinear)
	assert.Len(t, contours, 1)

	count := 0
	for v := contours[0]; ; {
		count++
		v = v.Next
		if v == contours[0] {
			break
		}
	}
	assert.Equal(t, 4, count)
}

func TestPathToContoursCurveIsNotLinear(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.QuadTo(5, 10, 10, 0)
	_ = p.Close()

	arena := NewArena[Vertex](64)
	_, isLinear := pathToContours(p, 0.25, Rect{}, arena)
	assert.False(t, isLinear)
}

func TestWorstCasePointCountBoundsActual(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	_ = p.CubicTo(3, 50, 7, -50, 10, 0)
	_ = p.Close()

	maxPoints, contourCount := worstCasePointCount(p, 0.25)
	assert.Equal(t, 1, contourCount)

	arena := NewArena[Vertex](256)
	contours, _ := pathToContours(p, 0.25, Rect{}, arena)
	actual := 0
	for v := contours[0]; ; {
		actual++
		v = v.Next
		if v == contours[0] {
			break
		}
	}
	assert.LessOrEqual(t, actual, maxPoints)
}

func TestWorstCasePointCountInverseAddsClipQuad(t *testing.T) {
	p := NewPath(FillInverseNonZero)
	p.MoveTo(0, 0)
	_ = p.LineTo(1, 0)
	_ = p.LineTo(1, 1)
	_ = p.Close()

	maxPoints, contourCount := worstCasePointCount(p, 0.25)
	assert.GreaterOrEqual(t, maxPoints, 4+3)
	assert.Equal(t, 2, contourCount)
}
