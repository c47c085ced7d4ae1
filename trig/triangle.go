package trig

// Triangle is the basic mesh cell. TE[i] connects V[i] to V[(i+1)%3], so it
// is the edge opposite V[(i+2)%3]; this differs from the opposite-vertex
// indexing the teacher's cdt.Tri uses for its neighbor array. Points is this
// triangle's pending-point bucket (§4.C).
type Triangle struct {
	ID     TID
	V      [3]VID
	TE     [3]EID
	Marks  Marks
	Points []PendingPoint

	// MTLevel is the multi-triangulation fragment ID this triangle was
	// created in; the history tracer stamps it on every triangle it
	// creates so a later query can rebuild the mesh at any level.
	MTLevel int
}

func (t *Triangle) live() bool { return !t.Marks.Has(MarkDeleted) }

// edgeOpposite returns the local index (0,1,2) of the edge opposite v.
func (t *Triangle) edgeOpposite(v VID) int {
	for i, vi := range t.V {
		if vi == v {
			return (i + 1) % 3
		}
	}
	return -1
}

// vertexOpposite returns the vertex opposite local edge index i.
func (t *Triangle) vertexOpposite(edgeIdx int) VID {
	return t.V[(edgeIdx+2)%3]
}
