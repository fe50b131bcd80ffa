// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package tessellator

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Point is a 2-D position in single precision, matching the layout the
// tessellator ultimately writes to its output vertex buffer (spec
// section 6: "(x,y) as 32-bit floats").
type Point = f32.Vec2

func pt(x, y float32) Point { return Point{x, y} }

func pointsEqual(a, b Point) bool { return a[0] == b[0] && a[1] == b[1] }

// Direction selects which axis the sweep advances along primarily. It is
// chosen once, from the path's bounding box aspect ratio (spec section 4.2).
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// sweepLessHoriz and sweepLessVert implement the two sweep orders spec
// section 4.2 and section 9 describe. Their tie-break rules are
// deliberately asymmetric (Y descending vs. Y ascending) so that "left of
// the sweep line" keeps a consistent meaning in both orientations; this
// is flagged in spec.md as an Open Question to preserve exactly, not
// simplify.
func sweepLessHoriz(a, b Point) bool {
	return a[0] < b[0] || (a[0] == b[0] && a[1] > b[1])
}

func sweepLessVert(a, b Point) bool {
	return a[1] < b[1] || (a[1] == b[1] && a[0] < b[0])
}

// Comparator is the total order on points used by every stage after
// linearization. It is selected once at entry and threaded through the
// whole call (spec section 4.2).
type Comparator struct {
	Direction Direction
}

func (c Comparator) Less(a, b Point) bool {
	if c.Direction == DirectionHorizontal {
		return sweepLessHoriz(a, b)
	}
	return sweepLessVert(a, b)
}

// roundToQuarterPixel snaps p to the nearest quarter pixel. Spec section
// 4.5 only calls for this in antialiased mode; Options.SnapIntersections
// gates whether callers of this function invoke it at all (see the Open
// Question decisions in SPEC_FULL.md).
func roundToQuarterPixel(p Point) Point {
	return Point{
		float32(math.Round(float64(p[0])*4) / 4),
		float32(math.Round(float64(p[1])*4) / 4),
	}
}

// Line is an implicit line equation Ax+By+C=0, evaluated in double
// precision so that isLeftOf/isRightOf predicates are stable in single
// precision (spec section 3, "Line").
type Line struct {
	A, B, C float64
}

// newLine builds the line through p and q, oriented with normal
// (q.y-p.y, p.x-q.x) per spec section 3.
func newLine(p, q Point) Line {
	return Line{
		A: float64(q[1]) - float64(p[1]),
		B: float64(p[0]) - float64(q[0]),
		C: float64(p[1])*float64(q[0]) - float64(p[0])*float64(q[1]),
	}
}

func (l Line) dist(p Point) float64 {
	return l.A*float64(p[0]) + l.B*float64(p[1]) + l.C
}

func (l Line) magSq() float64 {
	return l.A*l.A + l.B*l.B
}

// intersect computes the intersection of two infinite lines. It returns
// false for parallel lines; callers treat "no intersection" as a
// legitimate outcome, not an error (spec section 7).
func (l Line) intersect(other Line, snap bool) (Point, bool) {
	denom := l.A*other.B - l.B*other.A
	if denom == 0.0 {
		return Point{}, false
	}
	scale := 1.0 / denom
	p := Point{
		float32((l.B*other.C - other.B*l.C) * scale),
		float32((other.A*l.C - l.A*other.C) * scale),
	}
	if snap {
		p = roundToQuarterPixel(p)
	}
	return p, true
}
