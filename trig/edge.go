package trig

// Edge connects two vertices and borders up to two triangles. ET[1] is
// NilTriangle for a hull (or bounded-domain perimeter) edge. Points is the
// bucket of pending input points whose nearest mesh feature is this edge,
// kept sorted so the head is always the highest-error candidate (§4.C).
type Edge struct {
	ID    EID
	EV    [2]VID
	ET    [2]TID
	Marks Marks
	Points []PendingPoint
}

func (e *Edge) live() bool { return !e.Marks.Has(MarkDeleted) }

// OtherVertex returns the endpoint of e that isn't v.
func (e *Edge) OtherVertex(v VID) VID {
	if e.EV[0] == v {
		return e.EV[1]
	}
	return e.EV[0]
}

// OtherTriangle returns the triangle across e from t, or NilTriangle if t
// is not one of e's two incident triangles (or e is a boundary edge).
func (e *Edge) OtherTriangle(t TID) TID {
	if e.ET[0] == t {
		return e.ET[1]
	}
	if e.ET[1] == t {
		return e.ET[0]
	}
	return NilTriangle
}
