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

package tessellator

import "sort"

// This file is stages 3 and 4: sorting every vertex into sweep order
// and then running the Bentley-Ottmann sweep that turns a possibly
// self-intersecting edge mesh into a simplified planar subdivision
// with no crossing edges (spec section 2, stages 3-4). Grounded on
// merge_sort, simplify and check_for_intersection in original_source.

// mergeSort sorts the vertex list into sweep order. The original's
// hand-rolled linked-list merge sort is adapted here to a slice sort
// over the same Next-linked nodes, which is simpler in Go and
// preserves the stage's contract: a single Next-linked, sweep-ordered
// vertex list with Prev relinked to match.
func mergeSort(list *VertexList, c Comparator) {
	var verts []*Vertex
	for v := list.Head; v != nil; v = v.Next {
		verts = append(verts, v)
	}
	sort.SliceStable(verts, func(i, j int) bool {
		return c.Less(verts[i].Point, verts[j].Point)
	})
	list.Head, list.Tail = nil, nil
	var prev *Vertex
	for _, v := range verts {
		v.Prev, v.Next = prev, nil
		if prev != nil {
			prev.Next = v
		} else {
			list.Head = v
		}
		prev = v
	}
	list.Tail = prev
}

// insertVertexSorted splices v into list immediately after from,
// advancing until sweep order is satisfied. Used for vertices created
// mid-sweep by an intersection, which always lie at or after the
// current sweep position.
func insertVertexSorted(list *VertexList, from, v *Vertex, c Comparator) {
	at := from
	for at.Next != nil && c.Less(at.Next.Point, v.Point) {
		at = at.Next
	}
	list.insert(v, at, at.Next)
}

// checkForIntersection tests e1 against e2, and if their segments
// cross, creates a vertex at the crossing point, splits both edges
// there, and splices the new vertex into verts so the sweep will visit
// it in its turn. Returns the new vertex, or nil if there was no
// crossing to resolve; a crossing that lands exactly on an endpoint of
// either edge also returns nil and leaves both edges unsplit.
func checkForIntersection(e1, e2 *Edge, c Comparator, snap bool, edgeArena *Arena[Edge], vertexArena *Arena[Vertex], verts *VertexList, after *Vertex) *Vertex {
	if e1 == nil || e2 == nil {
		return nil
	}
	p, alpha, ok := e1.intersect(e2)
	if !ok {
		return nil
	}
	if snap {
		p = roundToQuarterPixel(p)
	}
	if p == e1.Top.Point || p == e1.Bottom.Point || p == e2.Top.Point || p == e2.Bottom.Point {
		return nil
	}
	v := vertexArena.New()
	v.Point = p
	v.Alpha = alpha
	logIntersection(p)

	splitEdge(e1, v, c, edgeArena)
	splitEdge(e2, v, c, edgeArena)

	insertVertexSorted(verts, after, v, c)
	return v
}

// maxEdgeAlpha returns the greater of the two edges' endpoint alphas,
// used to decide how much coverage a vertex should inherit when it
// sits inside the fill but was never itself assigned any alpha.
func maxEdgeAlpha(e *Edge) uint8 {
	return maxAlpha(e.Top.Alpha, e.Bottom.Alpha)
}

// simplify runs the Bentley-Ottmann sweep over a sweep-sorted vertex
// list, splitting crossing edges as it finds them and splicing the new
// crossing vertices into verts in place, and returns the final active
// edge list.
func simplify(verts *VertexList, c Comparator, snap bool, edgeArena *Arena[Edge], vertexArena *Arena[Vertex]) *EdgeList {
	ael := &EdgeList{}
	for v := verts.Head; v != nil; v = v.Next {
		if v.Processed {
			continue
		}
		logVertex("simplify", v)

		// Step 1/2: find v's enclosing edges and test every edge below
		// it against both, restarting from the top once any test
		// splits an edge, since the split may have changed enclosure
		// (spec section 4.5 step 2; original_source's do { ... } while
		// (restartChecks) in simplify()). This runs entirely before
		// the AEL is mutated for v.
		var left, right *Edge
		for {
			left, right = findEnclosingEdges(v, ael)
			restart := false
			if v.FirstEdgeBelow != nil {
				for e := v.FirstEdgeBelow; e != nil; e = e.NextEdgeBelow {
					if checkForIntersection(e, left, c, snap, edgeArena, vertexArena, verts, v) != nil {
						restart = true
						break
					}
					if checkForIntersection(e, right, c, snap, edgeArena, vertexArena, verts, v) != nil {
						restart = true
						break
					}
				}
			} else if checkForIntersection(left, right, c, snap, edgeArena, vertexArena, verts, v) != nil {
				restart = true
			}
			if !restart {
				break
			}
		}

		v.Processed = true

		// Step 3: a vertex with no alpha of its own that nonetheless
		// sits between filled edges inherits their coverage, or the AA
		// band loses interior coverage at merged/split vertices (spec
		// section 4.5 step 3; original_source/src/gpu/GrTessellator.cpp
		// around its coverage-inheritance block).
		if v.Alpha == 0 {
			var inherited uint8
			if left != nil {
				inherited = maxAlpha(inherited, maxEdgeAlpha(left))
			}
			if right != nil {
				inherited = maxAlpha(inherited, maxEdgeAlpha(right))
			}
			v.Alpha = inherited
		}

		// Step 4: only now mutate the AEL, since the checks above
		// depend on the pre-mutation enclosing edges.
		for e := v.FirstEdgeAbove; e != nil; e = e.NextEdgeAbove {
			removeEdgeFromAEL(e, ael)
		}
		mergeCollinearEdges(v, c)

		prev := left
		for e := v.FirstEdgeBelow; e != nil; e = e.NextEdgeBelow {
			insertEdge(e, prev, ael)
			fixActiveState(e, ael)
			cleanupActiveEdges(e, ael, c, snap, edgeArena, vertexArena, verts, v)
			prev = e
		}
	}
	return ael
}
