package tessellator

// Vertex is a point in the mesh. Before sorting, Prev/Next link it into
// its contour; after sorting they are reused, in place, as sweep-order
// links (spec section 3 and section 9, "Re-used list-pointer slots").
type Vertex struct {
	Point Point
	Alpha uint8

	Prev, Next *Vertex

	FirstEdgeAbove, LastEdgeAbove *Edge
	FirstEdgeBelow, LastEdgeBelow *Edge

	Processed bool
}

// VertexList is a doubly-linked list of Vertex holding the whole mesh;
// single contours are plain Prev/Next rings, not VertexLists.
type VertexList struct {
	Head, Tail *Vertex
}

func (l *VertexList) insert(v, prev, next *Vertex) {
	v.Prev, v.Next = prev, next
	if prev != nil {
		prev.Next = v
	} else {
		l.Head = v
	}
	if next != nil {
		next.Prev = v
	} else {
		l.Tail = v
	}
}

func (l *VertexList) append(v *Vertex) { l.insert(v, l.Tail, nil) }
func (l *VertexList) prepend(v *Vertex) { l.insert(v, nil, l.Head) }

func (l *VertexList) remove(v *Vertex) {
	if v.Prev != nil {
		v.Prev.Next = v.Next
	} else {
		l.Head = v.Next
	}
	if v.Next != nil {
		v.Next.Prev = v.Prev
	} else {
		l.Tail = v.Prev
	}
	v.Prev, v.Next = nil, nil
}

// close turns the list into a ring by linking tail back to head.
func (l *VertexList) close() {
	if l.Head != nil && l.Tail != nil {
		l.Tail.Next = l.Head
		l.Head.Prev = l.Tail
	}
}
