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

// maxVertexCount bounds the worst-case vertex count pathToContours can
// produce before any arena is allocated for it (spec section 5).
const maxVertexCount = 65536

// Options configures a single PathToTriangles/PathToVertices call (spec
// section 7).
type Options struct {
	// Tolerance bounds a flattened curve's deviation from the true curve,
	// in pixels; the flattener compares squared distances against
	// Tolerance squared (spec section 4.1). Zero selects 0.25.
	Tolerance float32

	// ClipBounds supplies the implicit outer contour substituted for an
	// inverse-filled path's "everything outside" region (spec section
	// 4.1). Only consulted when the path's fill rule is inverse; a
	// zero-size ClipBounds falls back to the path's own bounds.
	ClipBounds Rect

	// AntiAlias runs stages 5a-5d, extruding the tessellated interior's
	// boundary by half a pixel and tagging the extra ring of vertices
	// with coverage alpha (spec section 2).
	AntiAlias bool

	// SnapIntersections rounds newly-created intersection points to the
	// nearest quarter pixel. It defaults to true whenever AntiAlias is
	// set and false otherwise (Open Question, SPEC_FULL.md section E).
	SnapIntersections *bool

	// Wireframe emits each triangle's three edges instead of its filled
	// interior, for debugging (supplemented from original_source's
	// TESSELLATOR_WIREFRAME, SPEC_FULL.md section C).
	Wireframe bool
}

func (o Options) snap() bool {
	if o.SnapIntersections != nil {
		return *o.SnapIntersections
	}
	return o.AntiAlias
}

func (o Options) tolerance() float32 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return 0.25
}

// pipeline runs stages 1-5 shared by both entry points, returning the
// triangulated Polys. Per spec section 7, every failure mode here
// (oversized path, zero contours) degrades to a nil result rather than
// an error: the tessellation entry points never surface an error to
// the caller, unlike the Path builder's real misuse errors.
func pipeline(path *Path, opts Options) []*Poly {
	tol := opts.tolerance()
	maxPoints, _ := worstCasePointCount(path, tol)
	if maxPoints <= 0 || maxPoints > maxVertexCount {
		return nil
	}

	bounds := path.Bounds()
	clip := opts.ClipBounds
	if path.inverse && clip.width() == 0 && clip.height() == 0 {
		clip = bounds
	}

	direction := DirectionVertical
	if bounds.width() > bounds.height() {
		direction = DirectionHorizontal
	}
	c := Comparator{Direction: direction}

	vertexArena := NewArena[Vertex](512)
	edgeArena := NewArena[Edge](512)

	contours, isLinear := pathToContours(path, tol, clip, vertexArena)
	contours = sanitizeContours(contours, isLinear)
	if len(contours) == 0 {
		return nil
	}

	verts := buildEdges(contours, path.fillRule, c, edgeArena)
	mergeSort(verts, c)
	mergeCoincidentVertices(verts, c)

	simplify(verts, c, opts.snap(), edgeArena, vertexArena)

	for v := verts.Head; v != nil; v = v.Next {
		v.Processed = false
	}

	polys := tessellate(verts, c)
	vertexArena.Release()
	edgeArena.Release()
	return polys
}

// aaAxisComparator picks the sweep direction for a rebuilt AA mesh,
// the same way pipeline does for the original path (spec section 4.2):
// the offset mesh's own bounds, not the source path's, now decide it.
func aaAxisComparator(loops [][]Point) Comparator {
	var minX, minY, maxX, maxY float32
	first := true
	for _, loop := range loops {
		for _, p := range loop {
			if first {
				minX, maxX, minY, maxY = p[0], p[0], p[1], p[1]
				first = false
				continue
			}
			if p[0] < minX {
				minX = p[0]
			}
			if p[0] > maxX {
				maxX = p[0]
			}
			if p[1] < minY {
				minY = p[1]
			}
			if p[1] > maxY {
				maxY = p[1]
			}
		}
	}
	direction := DirectionVertical
	if maxX-minX > maxY-minY {
		direction = DirectionHorizontal
	}
	return Comparator{Direction: direction}
}

// aaPipeline runs the antialiased boundary construction (stages
// 5a-5d) over polys's kept regions, builds the winding-tagged edge
// mesh buildAAEdgeMesh describes, and reruns stages 3-6 (mergeSort,
// mergeCoincidentVertices, simplify, tessellate) on it, exactly as
// spec section 2 requires ("The new mesh is then resorted,
// resimplified and tessellated by reusing stages 3-6").
func aaPipeline(polys []*Poly, fillRule FillRule, snap bool) []*Poly {
	loops := extractBoundaries(polys, fillRule)
	if len(loops) == 0 {
		return nil
	}
	c := aaAxisComparator(loops)

	vertexArena := NewArena[Vertex](256)
	edgeArena := NewArena[Edge](256)

	verts := buildAAEdgeMesh(loops, 0.5, c, vertexArena, edgeArena)
	mergeSort(verts, c)
	mergeCoincidentVertices(verts, c)
	simplify(verts, c, snap, edgeArena, vertexArena)

	for v := verts.Head; v != nil; v = v.Next {
		v.Processed = false
	}

	aaPolys := tessellate(verts, c)
	vertexArena.Release()
	edgeArena.Release()
	return aaPolys
}

// PathToTriangles tessellates path into a flat list of CCW-wound
// triangles written through alloc, returning the number of vertices
// written (spec section 7, "PathToTriangles"). Every failure mode
// (degenerate input, allocator refusal) degrades to 0 with the
// allocator left uncommitted; no error is ever raised. When
// opts.AntiAlias is set, the half-pixel boundary band (spec section 2,
// stages 5a-5d) is included in the written geometry, and is also
// returned separately with its per-vertex coverage alpha, since the
// flat position stream alloc receives cannot carry that (spec sections
// 4.8/6).
func PathToTriangles(path *Path, opts Options, alloc VertexAllocator) (int, []CoverageTriangle) {
	polys := pipeline(path, opts)
	triangles := polysToTriangles(polys, path.fillRule, nil)

	var coverage []CoverageTriangle
	if opts.AntiAlias {
		aaPolys := aaPipeline(polys, path.fillRule, opts.snap())
		coverage = aaBandTriangles(aaPolys)
		for _, t := range coverage {
			triangles = append(triangles, t.Points)
		}
	}
	n := emitToAllocator(triangles, opts.Wireframe, alloc)
	return n, coverage
}

// PathToVertices is PathToTriangles's winding-tagged variant: instead
// of writing through a VertexAllocator it returns each triangle
// alongside the winding number of the region it came from (spec
// section 7, "PathToVertices", supplemented per SPEC_FULL.md section
// C.3). A degenerate or oversized path yields a nil, not an error.
func PathToVertices(path *Path, opts Options) []WindingTriangle {
	return windingTriangles(pipeline(path, opts))
}

// Tesselator is a teacher-style convenience wrapper around
// PathToTriangles for callers building a path out of flat polygon
// contours rather than curves, mirroring go-libtess2's
// NewTesselator/AddContour/Tesselate shape.
type Tesselator struct {
	path *Path
	opts Options
}

// NewTesselator returns a Tesselator using fillRule and the given
// options.
func NewTesselator(fillRule FillRule, opts Options) *Tesselator {
	return &Tesselator{path: NewPath(fillRule), opts: opts}
}

// AddContour appends a closed polygon contour.
func (t *Tesselator) AddContour(points []Point) error {
	if len(points) == 0 {
		return nil
	}
	t.path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		if err := t.path.LineTo(p[0], p[1]); err != nil {
			return err
		}
	}
	return t.path.Close()
}

// Tesselate triangulates every contour added so far.
func (t *Tesselator) Tesselate() []WindingTriangle {
	return PathToVertices(t.path, t.opts)
}
