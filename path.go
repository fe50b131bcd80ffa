package tessellator

import (
	"github.com/pkg/errors"
)

// FillRule selects how winding numbers are turned into an inside/outside
// decision (spec section 6, "Fill rules recognized").
type FillRule int

const (
	FillNonZero FillRule = iota
	FillEvenOdd
	FillInverseNonZero
	FillInverseEvenOdd
)

func (f FillRule) apply(winding int) bool {
	switch f {
	case FillNonZero:
		return winding != 0
	case FillEvenOdd:
		return winding&1 != 0
	case FillInverseNonZero:
		return winding == 1
	case FillInverseEvenOdd:
		return winding&1 == 1
	default:
		return false
	}
}

func (f FillRule) isInverse() bool {
	return f == FillInverseNonZero || f == FillInverseEvenOdd
}

// Rect is an axis-aligned bounding box, used both for the path's own
// bounds (to pick the sweep Comparator, spec section 4.2) and for the
// clip bounds substituted for an inverse-filled path's implicit outer
// contour (spec section 4.1).
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

func (r Rect) width() float32  { return r.MaxX - r.MinX }
func (r Rect) height() float32 { return r.MaxY - r.MinY }

// quad returns the rectangle's four corners in clockwise order starting
// at the top-left, matching SkRect::toQuad in original_source.
func (r Rect) quad() [4]Point {
	return [4]Point{
		{r.MinX, r.MinY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
		{r.MinX, r.MaxY},
	}
}

type segmentKind int

const (
	segMove segmentKind = iota
	segLine
	segQuad
	segConic
	segCubic
	segClose
)

type segment struct {
	kind   segmentKind
	pts    [3]Point // control/end points, excluding the segment's start
	weight float32  // conic weight, only meaningful when kind == segConic
}

// Path is an ordered sequence of contours made of line, quadratic,
// conic and cubic segments, together with a fill rule (spec section 1).
// It is the tessellator's sole input type.
type Path struct {
	segs        []segment
	fillRule    FillRule
	inverse     bool
	started     bool
	cur         Point
	start       Point
	contourOpen bool
}

// NewPath returns an empty path using the given fill rule.
func NewPath(fillRule FillRule) *Path {
	return &Path{fillRule: fillRule, inverse: fillRule.isInverse()}
}

// FillRule reports the path's fill rule.
func (p *Path) FillRule() FillRule { return p.fillRule }

// MoveTo starts a new contour at (x, y), ending any currently open
// contour. Every contour is joined back to its start when the path is
// tessellated, whether or not Close was called.
func (p *Path) MoveTo(x, y float32) {
	p.cur = pt(x, y)
	p.start = p.cur
	p.segs = append(p.segs, segment{kind: segMove, pts: [3]Point{p.cur}})
	p.started = true
	p.contourOpen = true
}

// LineTo appends a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float32) error {
	if err := p.requireStarted("LineTo"); err != nil {
		return err
	}
	p.cur = pt(x, y)
	p.segs = append(p.segs, segment{kind: segLine, pts: [3]Point{p.cur}})
	return nil
}

// QuadTo appends a quadratic Bezier segment with the given control point
// and end point.
func (p *Path) QuadTo(cx, cy, x, y float32) error {
	if err := p.requireStarted("QuadTo"); err != nil {
		return err
	}
	p.cur = pt(x, y)
	p.segs = append(p.segs, segment{kind: segQuad, pts: [3]Point{pt(cx, cy), p.cur}})
	return nil
}

// ConicTo appends a conic (rational quadratic Bezier) segment with the
// given control point, end point and weight.
func (p *Path) ConicTo(cx, cy, x, y, weight float32) error {
	if err := p.requireStarted("ConicTo"); err != nil {
		return err
	}
	p.cur = pt(x, y)
	p.segs = append(p.segs, segment{kind: segConic, pts: [3]Point{pt(cx, cy), p.cur}, weight: weight})
	return nil
}

// CubicTo appends a cubic Bezier segment with the given two control
// points and end point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) error {
	if err := p.requireStarted("CubicTo"); err != nil {
		return err
	}
	p.cur = pt(x, y)
	p.segs = append(p.segs, segment{kind: segCubic, pts: [3]Point{pt(c1x, c1y), pt(c2x, c2y), p.cur}})
	return nil
}

// Close closes the current contour back to its starting point.
func (p *Path) Close() error {
	if err := p.requireStarted("Close"); err != nil {
		return err
	}
	p.segs = append(p.segs, segment{kind: segClose})
	p.cur = p.start
	p.contourOpen = false
	return nil
}

func (p *Path) requireStarted(op string) error {
	if !p.started {
		return errors.Errorf("tessellator: %s called before MoveTo", op)
	}
	return nil
}

// Bounds returns the path's bounding box over every control point seen
// so far. It is a conservative (not tight) bound, sufficient for
// choosing the sweep Comparator and default clip bounds.
func (p *Path) Bounds() Rect {
	first := true
	var r Rect
	grow := func(pt Point) {
		if first {
			r = Rect{pt[0], pt[1], pt[0], pt[1]}
			first = false
			return
		}
		if pt[0] < r.MinX {
			r.MinX = pt[0]
		}
		if pt[1] < r.MinY {
			r.MinY = pt[1]
		}
		if pt[0] > r.MaxX {
			r.MaxX = pt[0]
		}
		if pt[1] > r.MaxY {
			r.MaxY = pt[1]
		}
	}
	for _, s := range p.segs {
		switch s.kind {
		case segMove, segLine:
			grow(s.pts[0])
		case segQuad, segConic:
			grow(s.pts[0])
			grow(s.pts[1])
		case segCubic:
			grow(s.pts[0])
			grow(s.pts[1])
			grow(s.pts[2])
		}
	}
	return r
}
