package tessellator

// Stage 6: turning the set of triangulated Polys into the caller's
// preferred output shape. Grounded on emit_vertex/emit_triangle and
// the VertexAllocator-driven PathToTriangles/PathToVertices in
// original_source; the wireframe mode and the winding-tagged output of
// PathToVertices are supplemented from it per SPEC_FULL.md section C.

// VertexAllocator lets a caller supply (and reuse) the backing storage
// PathToTriangles/PathToVertices write into, mirroring
// GrVertexAllocator in original_source. Lock must return a slice of at
// least vertexCount length; Unlock reports how many of those were
// actually written.
type VertexAllocator interface {
	Lock(vertexCount int) []Point
	Unlock(actualCount int)
}

// SliceVertexAllocator is the default VertexAllocator: it allocates a
// fresh slice on every Lock and trims it on Unlock.
type SliceVertexAllocator struct {
	buf []Point
}

func (s *SliceVertexAllocator) Lock(n int) []Point {
	s.buf = make([]Point, n)
	return s.buf
}

func (s *SliceVertexAllocator) Unlock(actual int) {
	s.buf = s.buf[:actual]
}

// WindingTriangle pairs a triangle with the winding number of the Poly
// it came from, the extra information PathToVertices exposes over
// PathToTriangles's flat point list (spec section 7).
type WindingTriangle struct {
	Points  [3]Point
	Winding int
}

func windingTriangles(polys []*Poly) []WindingTriangle {
	var out []WindingTriangle
	for _, p := range polys {
		for _, t := range p.emit(nil) {
			out = append(out, WindingTriangle{Points: t, Winding: p.Winding})
		}
	}
	return out
}

// emitToAllocator writes triangles (or, in wireframe mode, each
// triangle's three edges as three line-segment vertex pairs) into
// alloc, returning the vertex count actually written.
func emitToAllocator(triangles [][3]Point, wireframe bool, alloc VertexAllocator) int {
	n := len(triangles) * 3
	if wireframe {
		n = len(triangles) * 6
	}
	if n == 0 {
		return 0
	}
	buf := alloc.Lock(n)
	if len(buf) < n {
		// Allocator refusal: commit nothing (spec section 7).
		return 0
	}
	idx := 0
	for _, t := range triangles {
		if wireframe {
			buf[idx], buf[idx+1] = t[0], t[1]
			buf[idx+2], buf[idx+3] = t[1], t[2]
			buf[idx+4], buf[idx+5] = t[2], t[0]
			idx += 6
		} else {
			buf[idx], buf[idx+1], buf[idx+2] = t[0], t[1], t[2]
			idx += 3
		}
	}
	alloc.Unlock(idx)
	return idx
}

// CoverageTriangle is a triangle from the antialiased boundary mesh
// together with each vertex's coverage alpha (255 fully covered, 0
// fully uncovered), carrying through the half-pixel falloff the offset
// mesh encodes so a caller doing coverage-based antialiasing can
// recover it (spec sections 4.8 and 6, "position+color+coverage").
type CoverageTriangle struct {
	Points [3]Point
	Alpha  [3]uint8
}

// aaBandTriangles keeps only the Polys the AA edge mesh's winding
// scheme marks as the actual half-pixel boundary band: outer ring
// edges contribute +1, inner ring edges -2, so a winding of exactly 1
// is the region between the outer ring (half a pixel outside the
// original boundary) and the inner ring (half a pixel inside it),
// straddling the original boundary (spec section 4.7). Polys the -2 inner ring produces deeper inside (winding -1) or
// outside the outer ring (winding 0, never even allocated a Poly) are
// not part of the band and are dropped here.
func aaBandTriangles(polys []*Poly) []CoverageTriangle {
	var out []CoverageTriangle
	for _, p := range polys {
		if p.Winding != 1 {
			continue
		}
		out = append(out, p.emitCoverage()...)
	}
	return out
}
