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

// This file holds the active edge list (AEL) operations the sweep
// (sweep.go) drives as it walks vertices top to bottom: finding where
// a vertex's edges belong left-to-right among the edges already
// crossing the sweep line, inserting/removing them, and repairing the
// AEL's left-to-right order when a numerically-noisy insertion left it
// briefly inconsistent. Grounded on find_enclosing_edges,
// fix_active_state, insert_edge_above/below, remove_edge_above/below
// and cleanup_active_edges in original_source.

// findEnclosingEdges returns the AEL edges immediately left and right
// of v, skipping any active edge that ends at v.
func findEnclosingEdges(v *Vertex, ael *EdgeList) (left, right *Edge) {
	for e := ael.Head; e != nil; e = e.Right {
		if e.Bottom == v {
			continue
		}
		if e.isRightOf(v) {
			return left, e
		}
		left = e
	}
	return left, nil
}

// insertEdge inserts edge into the AEL between left and right.
func insertEdge(edge *Edge, left *Edge, ael *EdgeList) {
	var right *Edge
	if left != nil {
		right = left.Right
	} else {
		right = ael.Head
	}
	ael.insert(edge, left, right)
}

// removeEdgeFromAEL removes edge from the active edge list, leaving
// its above/below vertex threading untouched.
func removeEdgeFromAEL(edge *Edge, ael *EdgeList) {
	if ael.contains(edge) || ael.Head == edge || ael.Tail == edge {
		ael.remove(edge)
	}
}

// fixActiveState repositions edge within the AEL if numerical noise
// left it out of left-to-right order relative to its neighbours; it is
// called immediately after each edge is inserted into the AEL.
func fixActiveState(edge *Edge, ael *EdgeList) {
	for edge.Left != nil && edge.Left.isRightOf(edge.Top) {
		left := edge.Left
		ael.remove(edge)
		ael.insert(edge, left.Left, left)
	}
	for edge.Right != nil && edge.Right.isLeftOf(edge.Top) {
		right := edge.Right
		ael.remove(edge)
		ael.insert(edge, right, right.Right)
	}
}

// cleanupActiveEdges repairs the AEL around edge just after it was
// inserted or had an endpoint moved by a split: if edge now crosses
// its left or right neighbour (the neighbour's line falls on the
// wrong side of edge's own top or bottom), the crossing is resolved by
// intersecting and re-splitting, same as any other sweep intersection,
// and the same immediate neighbour is re-checked until it no longer
// crosses; neighbours further out are not examined.
// Spec section 4.5 names this repair explicitly; grounded on
// cleanup_active_edges in original_source.
func cleanupActiveEdges(edge *Edge, ael *EdgeList, c Comparator, snap bool, edgeArena *Arena[Edge], vertexArena *Arena[Vertex], verts *VertexList, after *Vertex) {
	for {
		left := edge.Left
		if left == nil || !(left.isRightOf(edge.Top) || left.isRightOf(edge.Bottom)) {
			break
		}
		if checkForIntersection(left, edge, c, snap, edgeArena, vertexArena, verts, after) == nil {
			break
		}
	}
	for {
		right := edge.Right
		if right == nil || !(right.isLeftOf(edge.Top) || right.isLeftOf(edge.Bottom)) {
			break
		}
		if checkForIntersection(edge, right, c, snap, edgeArena, vertexArena, verts, after) == nil {
			break
		}
	}
}
