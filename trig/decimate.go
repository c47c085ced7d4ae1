package trig

import (
	"github.com/UMDGeoVis/mttri/algorithm/robust"
	"github.com/UMDGeoVis/mttri/types"
)

// DecimateOptions configures the decimation driver (§4.G).
type DecimateOptions struct {
	Policy     SelectionPolicy
	KDegree    int  // 0 means unbounded
	KDegreeSet bool
}

// LoadTriangulation builds the store from a fully-formed triangulation
// (a .tri or .cdt file, §6), for the decimation driver's starting point.
// segs, when non-nil, marks each listed vertex pair CONSTRAINED if it is
// already a mesh edge.
func (e *Engine) LoadTriangulation(pts []types.Point3, tris [][3]int, segs [][2]int) error {
	vids := make([]VID, len(pts))
	for i, p := range pts {
		vids[i] = e.store.NewVertex(p)
	}

	var created []CreatedTriangle
	for _, t := range tris {
		a, b, c := vids[t[0]], vids[t[1]], vids[t[2]]
		pa, pb, pc := e.store.Pos(a).Point, e.store.Pos(b).Point, e.store.Pos(c).Point
		if robust.Orient2D(pa, pb, pc) < 0 {
			b, c = c, b
		}
		e0 := e.store.NewEdge(a, b)
		e1 := e.store.NewEdge(b, c)
		e2 := e.store.NewEdge(c, a)
		tid := e.store.NewTriangle(e0, e1, e2)
		created = append(created, CreatedTriangle{Tri: tid, V: e.store.triangles[tid].V})
	}

	e.locator = NewLocator(e.store, 0)
	e.inputPoints = pts

	for _, s := range segs {
		if ed, ok := e.store.FindEdge(vids[s[0]], vids[s[1]]); ok {
			e.markConstrained(ed, vids[s[0]], vids[s[1]])
		}
	}

	e.LoadInitial(created)
	return nil
}

// LoadInitial populates the removable-vertex tree (ElimVtxTree) with every
// vertex satisfying (removable) ∧ (degree ≤ KDegree if set) ∧ (constraint-
// degree acceptable per §4.H), and records the loaded triangulation as the
// history's initial update.
func (e *Engine) LoadInitial(created []CreatedTriangle) {
	e.history.RecordInitial(created)
	e.store.LiveVertices(func(v *Vertex) {
		e.reconsiderRemovability(v.ID)
	})
}

// degree returns the number of edges incident on v, by walking its ring.
func (s *Store) degree(v VID) int {
	_, border, _, _, _ := s.ringAround(v)
	return len(border)
}

// reconsiderRemovability re-tests v against the decimation driver's
// eligibility rule and updates the removable tree accordingly.
func (e *Engine) reconsiderRemovability(v VID) {
	eligible := e.store.IsRemovable(v)
	if eligible && e.decimateOpts.KDegreeSet {
		eligible = e.store.degree(v) <= e.decimateOpts.KDegree
	}
	vert := e.store.Vertex(v)
	if !eligible {
		e.removableTree.Remove(int(v))
		return
	}
	e.removableTree.Insert(IndexItem{
		Key: int(v), Error: vert.Error,
		X: vert.Pos.X, Y: vert.Pos.Y, Z: vert.Pos.Z,
	})
}

// DecimateStep performs one decimation update (§4.G + §4.E.3 + §4.I): pop
// the minimum-error removable vertex, remove it, and re-test every vertex
// that bordered the hole.
func (e *Engine) DecimateStep() (bool, error) {
	if e.history.ShouldTerminate() {
		return false, nil
	}

	item, ok := e.removableTree.Pop()
	if !ok {
		return false, nil
	}
	v := VID(item.Key)

	_, border, _, _, _ := e.store.ringAround(v)
	before := e.store.NumTriangles()
	var beforeLive []TID
	e.store.LiveTriangles(func(t *Triangle) { beforeLive = append(beforeLive, t.ID) })

	if err := e.RemoveVertex(v, e.decimateOpts.Policy != SelectRandom); err != nil {
		return false, err
	}

	var deleted []TID
	for _, t := range beforeLive {
		if int(t) < before && !e.store.triangles[t].live() {
			deleted = append(deleted, t)
		}
	}
	var created []CreatedTriangle
	e.store.LiveTriangles(func(t *Triangle) {
		for _, prior := range beforeLive {
			if prior == t.ID {
				return
			}
		}
		created = append(created, CreatedTriangle{Tri: t.ID, V: t.V})
	})
	e.history.RecordUpdate(deleted, created)

	for _, bv := range border {
		e.reconsiderRemovability(bv)
	}
	return true, nil
}

// DecimateIndependentSet runs one de Berg super-step (§4.G): sort the
// removable tree by error, greedily pick head vertices whose one-ring
// hasn't been claimed this round, and defer conflicts to the next
// super-step. It removes every picked vertex before returning, so the
// caller sees one MT update per removal as usual, batched for a provable
// O(log n) number of super-steps rather than one driver call per vertex.
func (e *Engine) DecimateIndependentSet() (removedThisStep int, err error) {
	claimed := map[VID]bool{}
	var picked []VID

	var all []IndexItem
	for e.removableTree.Len() > 0 {
		item, _ := e.removableTree.Pop()
		all = append(all, item)
	}
	// Re-sort ascending by error (Pop from a min-first index already
	// yields this order, so `all` is already sorted).
	for _, item := range all {
		v := VID(item.Key)
		if claimed[v] {
			e.removableTree.Insert(item) // conflict: defer to next super-step
			continue
		}
		_, border, _, _, _ := e.store.ringAround(v)
		conflict := false
		for _, bv := range border {
			if claimed[bv] {
				conflict = true
				break
			}
		}
		if conflict {
			e.removableTree.Insert(item)
			continue
		}
		claimed[v] = true
		for _, bv := range border {
			claimed[bv] = true
		}
		picked = append(picked, v)
	}

	for _, v := range picked {
		if ok, err := e.removeWithHistory(v); err != nil {
			return removedThisStep, err
		} else if ok {
			removedThisStep++
		}
	}
	return removedThisStep, nil
}

func (e *Engine) removeWithHistory(v VID) (bool, error) {
	if !e.store.vertices[v].live() {
		return false, nil
	}
	_, border, _, _, _ := e.store.ringAround(v)
	var beforeLive []TID
	e.store.LiveTriangles(func(t *Triangle) { beforeLive = append(beforeLive, t.ID) })

	before := len(e.store.triangles)
	if err := e.RemoveVertex(v, true); err != nil {
		return false, err
	}

	var deleted []TID
	for _, t := range beforeLive {
		if !e.store.triangles[t].live() {
			deleted = append(deleted, t)
		}
	}
	var created []CreatedTriangle
	e.store.LiveTriangles(func(t *Triangle) {
		if int(t.ID) < before {
			return
		}
		created = append(created, CreatedTriangle{Tri: t.ID, V: t.V})
	})
	e.history.RecordUpdate(deleted, created)

	for _, bv := range border {
		e.reconsiderRemovability(bv)
	}
	return true, nil
}
