package trig

import "github.com/UMDGeoVis/mttri/types"

// PendingPoint is an input sample that hasn't become a Vertex: during
// refinement it waits in the point-list of whichever triangle or edge
// currently contains it until its turn to be inserted; during decimation it
// never exists (removal spills a vertex's own coordinates, not a pending
// point).
type PendingPoint struct {
	PID   int
	Pos   types.Point3
	Error float64
}

// bucketInsert inserts p into list, keeping it sorted by descending error so
// that list[0] always has the maximum error, satisfying invariant 6.
func bucketInsert(list []PendingPoint, p PendingPoint) []PendingPoint {
	i := 0
	for i < len(list) && list[i].Error >= p.Error {
		i++
	}
	list = append(list, PendingPoint{})
	copy(list[i+1:], list[i:])
	list[i] = p
	return list
}

// AddPointToTriangle buckets p into t's point-list (§4.C).
func (s *Store) AddPointToTriangle(t TID, p PendingPoint) {
	tri := &s.triangles[t]
	tri.Points = bucketInsert(tri.Points, p)
}

// AddPointToEdge buckets p into e's point-list.
func (s *Store) AddPointToEdge(e EID, p PendingPoint) {
	ed := &s.edges[e]
	ed.Points = bucketInsert(ed.Points, p)
}

// TriangleMaxError returns the error of t's worst pending point, or -1 if
// t's point-list is empty (so it never wins a max-error selection).
func (s *Store) TriangleMaxError(t TID) float64 {
	tri := &s.triangles[t]
	if len(tri.Points) == 0 {
		return -1
	}
	return tri.Points[0].Error
}

// EdgeMaxError is the edge analogue of TriangleMaxError.
func (s *Store) EdgeMaxError(e EID) float64 {
	ed := &s.edges[e]
	if len(ed.Points) == 0 {
		return -1
	}
	return ed.Points[0].Error
}

// PopTriangleWorstPoint removes and returns the highest-error point from a
// triangle's bucket.
func (s *Store) PopTriangleWorstPoint(t TID) (PendingPoint, bool) {
	tri := &s.triangles[t]
	if len(tri.Points) == 0 {
		return PendingPoint{}, false
	}
	p := tri.Points[0]
	tri.Points = tri.Points[1:]
	return p, true
}

// PopEdgeWorstPoint is the edge analogue of PopTriangleWorstPoint.
func (s *Store) PopEdgeWorstPoint(e EID) (PendingPoint, bool) {
	ed := &s.edges[e]
	if len(ed.Points) == 0 {
		return PendingPoint{}, false
	}
	p := ed.Points[0]
	ed.Points = ed.Points[1:]
	return p, true
}
