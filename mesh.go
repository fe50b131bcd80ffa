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

// This file is stage 2: turning per-contour vertex rings into the
// mesh of Edge objects threaded through each Vertex's edges-above and
// edges-below lists, ready for the sweep in sweep.go. It mirrors
// build_edges, new_edge, insert/remove_edge_above/below, set_top,
// set_bottom, merge_edges_above/below, merge_collinear_edges,
// split_edge, connect and merge_vertices in original_source.

// insertEdgeAbove threads edge into v's edges-above list (v ==
// edge.Bottom), ordered left to right by the edge's Top position.
func insertEdgeAbove(edge *Edge, v *Vertex) {
	if edge.Top.Point == edge.Bottom.Point {
		return
	}
	var prev, next *Edge
	for next = v.FirstEdgeAbove; next != nil; next = next.NextEdgeAbove {
		if next.isRightOf(edge.Top) {
			break
		}
		prev = next
	}
	edge.PrevEdgeAbove, edge.NextEdgeAbove = prev, next
	if prev != nil {
		prev.NextEdgeAbove = edge
	} else {
		v.FirstEdgeAbove = edge
	}
	if next != nil {
		next.PrevEdgeAbove = edge
	} else {
		v.LastEdgeAbove = edge
	}
}

// insertEdgeBelow threads edge into v's edges-below list (v ==
// edge.Top), ordered left to right by the edge's Bottom position.
func insertEdgeBelow(edge *Edge, v *Vertex) {
	if edge.Top.Point == edge.Bottom.Point {
		return
	}
	var prev, next *Edge
	for next = v.FirstEdgeBelow; next != nil; next = next.NextEdgeBelow {
		if next.isRightOf(edge.Bottom) {
			break
		}
		prev = next
	}
	edge.PrevEdgeBelow, edge.NextEdgeBelow = prev, next
	if prev != nil {
		prev.NextEdgeBelow = edge
	} else {
		v.FirstEdgeBelow = edge
	}
	if next != nil {
		next.PrevEdgeBelow = edge
	} else {
		v.LastEdgeBelow = edge
	}
}

func removeEdgeAbove(edge *Edge) {
	v := edge.Bottom
	if edge.PrevEdgeAbove != nil {
		edge.PrevEdgeAbove.NextEdgeAbove = edge.NextEdgeAbove
	} else {
		v.FirstEdgeAbove = edge.NextEdgeAbove
	}
	if edge.NextEdgeAbove != nil {
		edge.NextEdgeAbove.PrevEdgeAbove = edge.PrevEdgeAbove
	} else {
		v.LastEdgeAbove = edge.PrevEdgeAbove
	}
	edge.PrevEdgeAbove, edge.NextEdgeAbove = nil, nil
}

func removeEdgeBelow(edge *Edge) {
	v := edge.Top
	if edge.PrevEdgeBelow != nil {
		edge.PrevEdgeBelow.NextEdgeBelow = edge.NextEdgeBelow
	} else {
		v.FirstEdgeBelow = edge.NextEdgeBelow
	}
	if edge.NextEdgeBelow != nil {
		edge.NextEdgeBelow.PrevEdgeBelow = edge.PrevEdgeBelow
	} else {
		v.LastEdgeBelow = edge.PrevEdgeBelow
	}
	edge.PrevEdgeBelow, edge.NextEdgeBelow = nil, nil
}

// disconnect removes edge from both of the vertex lists it threads
// through, leaving it reachable only by whatever still points at it.
func disconnect(edge *Edge) {
	removeEdgeAbove(edge)
	removeEdgeBelow(edge)
}

// newEdge allocates an edge between top and bottom, reordering them
// (and negating winding) if they are not already in sweep order, and
// threads it into both endpoints' lists.
func newEdge(top, bottom *Vertex, winding int, edgeType EdgeType, c Comparator, arena *Arena[Edge]) *Edge {
	if !c.Less(top.Point, bottom.Point) {
		top, bottom = bottom, top
		winding = -winding
	}
	e := arena.New()
	e.Top, e.Bottom, e.Winding, e.Type = top, bottom, winding, edgeType
	e.recompute()
	insertEdgeBelow(e, top)
	insertEdgeAbove(e, bottom)
	logEdge("new", e)
	return e
}

// connect is newEdge's public-ish entry point used by stages other
// than buildEdges (the antialiasing boundary mesh); splitEdge calls
// newEdge directly.
func connect(v1, v2 *Vertex, edgeType EdgeType, c Comparator, arena *Arena[Edge], winding int) *Edge {
	return newEdge(v1, v2, winding, edgeType, c, arena)
}

func setTop(edge *Edge, v *Vertex, c Comparator) {
	removeEdgeBelow(edge)
	edge.Top = v
	edge.recompute()
	insertEdgeBelow(edge, v)
}

func setBottom(edge *Edge, v *Vertex, c Comparator) {
	removeEdgeAbove(edge)
	edge.Bottom = v
	edge.recompute()
	insertEdgeAbove(edge, v)
}

// mergeEdgesAbove merges other into edge when both end at the same
// bottom vertex, combining their winding numbers and disconnecting the
// redundant edge (spec section 4.3, "Collinear-edge merging").
func mergeEdgesAbove(edge, other *Edge, c Comparator) {
	if edge == other {
		return
	}
	edge.Winding += other.Winding
	disconnect(other)
}

// mergeEdgesBelow is mergeEdgesAbove's counterpart for edges sharing a
// top vertex.
func mergeEdgesBelow(edge, other *Edge, c Comparator) {
	if edge == other {
		return
	}
	edge.Winding += other.Winding
	disconnect(other)
}

// mergeCollinearEdges merges adjacent edges above v that share the same
// Top, and adjacent edges below v that share the same Bottom (e.g.
// after a merge or split made two edges coincide). Edges that are
// collinear but end at different vertices are not merged.
func mergeCollinearEdges(v *Vertex, c Comparator) {
	for e := v.FirstEdgeAbove; e != nil && e.NextEdgeAbove != nil; {
		next := e.NextEdgeAbove
		if e.Top == next.Top {
			mergeEdgesAbove(e, next, c)
			continue
		}
		e = next
	}
	for e := v.FirstEdgeBelow; e != nil && e.NextEdgeBelow != nil; {
		next := e.NextEdgeBelow
		if e.Bottom == next.Bottom {
			mergeEdgesBelow(e, next, c)
			continue
		}
		e = next
	}
}

// splitEdge cuts edge at v, which must lie on (or very near) edge's
// line, replacing it with two edges: edge shortened to end at v, and a
// new edge from v to edge's original bottom. Its only caller is
// checkForIntersection, for a crossing strictly inside both edges; a
// vertex that merely lies on an existing edge does not split it.
func splitEdge(edge *Edge, v *Vertex, c Comparator, arena *Arena[Edge]) *Edge {
	originalBottom := edge.Bottom
	originalType := edge.Type
	originalWinding := edge.Winding
	setBottom(edge, v, c)
	newE := newEdge(v, originalBottom, originalWinding, originalType, c, arena)
	mergeCollinearEdges(v, c)
	return newE
}

// mergeVertices folds src into dst: every edge touching src is
// re-pointed at dst, and collinear duplicates that result are merged
// (spec section 4.4, "Coincident-vertex merging").
func mergeVertices(src, dst *Vertex, c Comparator) {
	if src == dst {
		return
	}
	dst.Alpha = maxAlpha(dst.Alpha, src.Alpha)
	for e := src.FirstEdgeAbove; e != nil; {
		next := e.NextEdgeAbove
		removeEdgeAbove(e)
		setBottom(e, dst, c)
		e = next
	}
	for e := src.FirstEdgeBelow; e != nil; {
		next := e.NextEdgeBelow
		removeEdgeBelow(e)
		setTop(e, dst, c)
		e = next
	}
	mergeCollinearEdges(dst, c)
}

// buildEdges turns each contour's vertex ring into a threaded edge
// mesh and returns all vertices in one flat (still contour-ordered,
// not yet sweep-sorted) list. fillRule is not used here: every edge
// takes its winding from the direction its contour runs, and an
// inverse fill's clip-bound contour gets its opposite winding from
// pathToContours, which adds it already reversed.
func buildEdges(contours []*Vertex, fillRule FillRule, c Comparator, arena *Arena[Edge]) *VertexList {
	all := &VertexList{}
	for _, head := range contours {
		if head == nil || head.Next == head {
			continue
		}
		v := head
		for {
			next := v.Next
			if v.Point != next.Point {
				newEdge(v, next, 1, EdgeInner, c, arena)
			}
			all.append(v)
			if next == head {
				break
			}
			v = next
		}
	}
	return all
}

// sanitizeContours drops zero-length segments (consecutive duplicate
// points) before the sweep. Collinear interior points are kept, and
// pathIsLinear is not used.
func sanitizeContours(contours []*Vertex, pathIsLinear bool) []*Vertex {
	out := contours[:0]
	for _, head := range contours {
		if head == nil {
			continue
		}
		v := head
		for {
			next := v.Next
			if v.Point == next.Point && next != v {
				v.Next = next.Next
				next.Next.Prev = v
				if next == head {
					head = v
				}
				if v.Next == v {
					break
				}
				continue
			}
			v = next
			if v == head {
				break
			}
		}
		out = append(out, head)
	}
	return out
}

// mergeCoincidentVertices merges consecutive sweep-sorted vertices
// that share a position, so the sweep never has to reason about two
// distinct Vertex objects at the same point (spec section 4.2).
func mergeCoincidentVertices(list *VertexList, c Comparator) {
	for v := list.Head; v != nil && v.Next != nil; {
		next := v.Next
		if v.Point == next.Point {
			list.remove(next)
			mergeVertices(next, v, c)
			continue
		}
		v = next
	}
}
