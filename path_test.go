package tessellator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathRequiresMoveTo(t *testing.T) {
	p := NewPath(FillNonZero)
	err := p.LineTo(1, 1)
	assert.Error(t, err)
}

func TestPathBasicBuild(t *testing.T) {
	p := NewPath(FillNonZero)
	p.MoveTo(0, 0)
	assert.NoError(t, p.LineTo(10, 0))
	assert.NoError(t, p.LineTo(10, 10))
	assert.NoError(t, p.LineTo(0, 10))
	assert.NoError(t, p.Close())

	b := p.Bounds()
	assert.Equal(t, Rect{0, 0, 10, 10}, b)
}

func TestFillRuleApply(t *testing.T) {
	assert.True(t, FillNonZero.apply(1))
	assert.False(t, FillNonZero.apply(0))
	assert.True(t, FillEvenOdd.apply(1))
	assert.False(t, FillEvenOdd.apply(2))
	assert.True(t, FillInverseNonZero.apply(1))
	assert.False(t, FillInverseNonZero.apply(2))
}

func TestFillRuleIsInverse(t *testing.T) {
	assert.False(t, FillNonZero.isInverse())
	assert.False(t, FillEvenOdd.isInverse())
	assert.True(t, FillInverseNonZero.isInverse())
	assert.True(t, FillInverseEvenOdd.isInverse())
}

func TestRectQuad(t *testing.T) {
	r := Rect{0, 0, 10, 20}
	quad := r.quad()
	assert.Equal(t, Point{0, 0}, quad[0])
	assert.Equal(t, Point{10, 0}, quad[1])
	assert.Equal(t, Point{10, 20}, quad[2])
	assert.Equal(t, Point{0, 20}, quad[3])
}
