package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepLessVertTieBreakAscendingX(t *testing.T) {
	a := Point{0, 5}
	b := Point{1, 5}
	assert.True(t, sweepLessVert(a, b))
	assert.False(t, sweepLessVert(b, a))
}

func TestSweepLessHorizTieBreakDescendingY(t *testing.T) {
	a := Point{5, 1}
	b := Point{5, 0}
	assert.True(t, sweepLessHoriz(a, b))
	assert.False(t, sweepLessHoriz(b, a))
}

func TestComparatorSelectsDirection(t *testing.T) {
	v := Comparator{Direction: DirectionVertical}
	h := Comparator{Direction: DirectionHorizontal}
	assert.Equal(t, sweepLessVert(Point{0, 0}, Point{1, 1}), v.Less(Point{0, 0}, Point{1, 1}))
	assert.Equal(t, sweepLessHoriz(Point{0, 0}, Point{1, 1}), h.Less(Point{0, 0}, Point{1, 1}))
}

func TestRoundToQuarterPixel(t *testing.T) {
	p := roundToQuarterPixel(Point{1.1, 1.37})
	assert.Equal(t, Point{1, 1.25}, p)
}

func TestLineIntersectParallel(t *testing.T) {
	l1 := newLine(Point{0, 0}, Point{1, 0})
	l2 := newLine(Point{0, 1}, Point{1, 1})
	_, ok := l1.intersect(l2, false)
	assert.False(t, ok)
}

func TestLineIntersectCross(t *testing.T) {
	l1 := newLine(Point{0, 0}, Point{10, 10})
	l2 := newLine(Point{0, 10}, Point{10, 0})
	p, ok := l1.intersect(l2, false)
	assert.True(t, ok)
	assert.InDelta(t, 5, p[0], 1e-4)
	assert.InDelta(t, 5, p[1], 1e-4)
}

func TestLineDistSignsOppositeSides(t *testing.T) {
	l := newLine(Point{0, 0}, Point{0, 10})
	left := l.dist(Point{-1, 5})
	right := l.dist(Point{1, 5})
	assert.True(t, (left < 0) != (right < 0))
}
