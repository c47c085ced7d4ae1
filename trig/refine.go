package trig

import (
	"github.com/UMDGeoVis/mttri/algorithm/robust"
	"github.com/UMDGeoVis/mttri/types"
)

// SelectionPolicy picks which driver selects its next candidate.
type SelectionPolicy int

const (
	SelectRandom SelectionPolicy = iota
	SelectErrorDriven
	SelectIndependentSet
)

// RefineOptions configures the refinement driver (§4.F).
type RefineOptions struct {
	Policy SelectionPolicy
	Seed   int64
}

// BuildInitial constructs the starting triangulation from the convex hull
// of pts, inserts the remaining hull points, and distributes every
// non-hull point into the initial triangles' buckets, per §4.F. It returns
// the hull point count (nChPts in the spec's naming) so the caller can
// slice Points[nChPts..] for the random policy.
func (e *Engine) BuildInitial(pts []types.Point3) (nChPts int, err error) {
	hullIdx := ConvexHull(pts)
	hullSet := make(map[int]bool, len(hullIdx))
	for _, i := range hullIdx {
		hullSet[i] = true
	}

	// Seed with the first three non-collinear hull points.
	v0 := e.store.NewVertex(pts[hullIdx[0]])
	v1 := e.store.NewVertex(pts[hullIdx[1]])
	v2 := e.store.NewVertex(pts[hullIdx[2]])
	e01 := e.store.NewEdge(v0, v1)
	e12 := e.store.NewEdge(v1, v2)
	e20 := e.store.NewEdge(v2, v0)
	e.store.NewTriangle(e01, e12, e20)
	e.locator = NewLocator(e.store, 0)

	created := []CreatedTriangle{{Tri: 0, V: [3]VID{v0, v1, v2}}}

	// Insert the remaining hull points in order (they are always
	// PLExternal relative to the triangulation built so far).
	for _, i := range hullIdx[3:] {
		loc := e.locator.Locate(pts[i].Point)
		nv, ierr := e.InsertVertex(loc, pts[i])
		if ierr != nil {
			return 0, ierr
		}
		_ = nv
	}

	e.history.RecordInitial(created)

	e.inputPoints = pts

	// Distribute every non-hull point into the initial triangulation's
	// point-lists, keyed by real vertical error of the point against the
	// plane/edge it lands on.
	for i, p := range pts {
		if hullSet[i] {
			continue
		}
		e.BucketInputPoint(i, p)
		if e.refineOpts.Policy == SelectRandom {
			e.allPending = append(e.allPending, i)
		}
	}
	if e.refineOpts.Policy == SelectRandom {
		e.rng.Shuffle(len(e.allPending), func(i, j int) {
			e.allPending[i], e.allPending[j] = e.allPending[j], e.allPending[i]
		})
	}

	return len(hullIdx), nil
}

// BucketInputPoint locates p and inserts it into the owning triangle's or
// edge's point-list, computing its real vertical error against the
// current surface there (§4.C). When the driver is in error-driven mode
// it's also registered in the pending-point ordered index.
func (e *Engine) BucketInputPoint(pid int, p types.Point3) {
	loc := e.locator.Locate(p.Point)
	errVal := p.Z
	switch loc.Kind {
	case PLTriangle:
		realZ, ok := e.surfaceZ(loc.Tri, p.Point)
		if ok {
			errVal = abs(p.Z - realZ)
		}
		e.store.AddPointToTriangle(loc.Tri, PendingPoint{PID: pid, Pos: p, Error: errVal})
	case PLEdge:
		ed := e.store.Edge(loc.Edge)
		errVal = abs(p.Z - robust.EdgeZ(e.store.Pos(ed.EV[0]), e.store.Pos(ed.EV[1]), p.Point))
		e.store.AddPointToEdge(loc.Edge, PendingPoint{PID: pid, Pos: p, Error: errVal})
	default:
		return
	}

	if e.refineOpts.Policy == SelectErrorDriven {
		e.pendingByError.Insert(IndexItem{Key: pid, Error: errVal, X: p.X, Y: p.Y, Z: p.Z})
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// RefineStep performs one refinement update (§4.F + §4.I): pick the next
// candidate per policy, insert it, record the update, and rebucket any
// points spilled by the triangles it consumed.
func (e *Engine) RefineStep() (bool, error) {
	if e.history.ShouldTerminate() {
		return false, nil
	}

	p, ok := e.nextRefinementCandidate()
	if !ok {
		return false, nil
	}

	loc := e.locator.Locate(p.Pos.Point)
	before := e.store.NumTriangles()
	v, err := e.InsertVertex(loc, p.Pos)
	if err == ErrDuplicateVertex {
		return true, nil // skip, per §4.E.5 failure model
	}
	if err != nil {
		return false, err
	}

	var created []CreatedTriangle
	for t := before; t < e.store.NumTriangles(); t++ {
		tid := TID(t)
		if !e.store.triangles[tid].live() {
			continue
		}
		created = append(created, CreatedTriangle{Tri: tid, V: e.store.triangles[tid].V, Error: 0})
	}
	e.history.RecordUpdate(nil, created)
	_ = v
	return true, nil
}

func (e *Engine) nextRefinementCandidate() (PendingPoint, bool) {
	switch e.refineOpts.Policy {
	case SelectErrorDriven:
		return e.popMaxErrorPending()
	default:
		return e.popNextRandomPending()
	}
}
