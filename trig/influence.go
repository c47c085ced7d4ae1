package trig

import (
	"github.com/UMDGeoVis/mttri/algorithm/robust"
	"github.com/UMDGeoVis/mttri/types"
)

// cavity is the influence region grown around an insertion point: every
// triangle whose circumcircle contains the new point, plus the ordered
// ring of border edges that separates it from the rest of the mesh. The
// ring is kept in a BorderList (trig/borderlist.go) because the
// influence-region walk repeatedly splices neighbors in and out while
// growing, which a slice would make quadratic.
type cavity struct {
	triangles []TID
	border    *BorderList[borderEdge] // in CCW order around the cavity
}

type borderEdge struct {
	edge EID
	// outside is the triangle on the far side of edge from the cavity
	// (NilTriangle on the hull).
	outside TID
}

// growCavity performs the Bowyer-Watson influence-region computation: BFS
// out from seed, absorbing any neighboring triangle whose circumcircle
// still contains p, never crossing a constrained edge.
func (st *Store) growCavity(seed []TID, p types.Point) *cavity {
	inCavity := make(map[TID]bool)
	queue := append([]TID(nil), seed...)
	for _, t := range seed {
		inCavity[t] = true
	}

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		tri := &st.triangles[t]
		for i := 0; i < 3; i++ {
			e := tri.TE[i]
			if e == NilEdge || st.edges[e].Marks.Has(MarkConstrained) {
				continue
			}
			n := st.GetTT(t, i)
			if n == NilTriangle || inCavity[n] || !st.triangles[n].live() {
				continue
			}
			ntri := &st.triangles[n]
			a := st.Pos(ntri.V[0]).Point
			b := st.Pos(ntri.V[1]).Point
			c := st.Pos(ntri.V[2]).Point
			if robust.InCircle(a, b, c, p) > 0 {
				inCavity[n] = true
				queue = append(queue, n)
			}
		}
	}

	c := &cavity{border: NewBorderList[borderEdge]()}
	for t := range inCavity {
		c.triangles = append(c.triangles, t)
	}

	// Walk each cavity triangle's edges; an edge whose opposite triangle
	// is not in the cavity belongs to the border.
	borderSet := map[EID]TID{}
	for _, t := range c.triangles {
		tri := &st.triangles[t]
		for i := 0; i < 3; i++ {
			e := tri.TE[i]
			if e == NilEdge {
				continue
			}
			out := st.GetTT(t, i)
			if out == NilTriangle || !inCavity[out] {
				borderSet[e] = out
			}
		}
	}
	orderBorderRing(st, borderSet, c.border)

	return c
}

// orderBorderRing walks borderSet into CCW order starting from an arbitrary
// edge, following shared endpoints, and pushes each into dst.
func orderBorderRing(st *Store, borderSet map[EID]TID, dst *BorderList[borderEdge]) {
	if len(borderSet) == 0 {
		return
	}
	byVertex := map[VID]EID{}
	for e := range borderSet {
		ed := &st.edges[e]
		byVertex[ed.EV[0]] = e
	}

	var first EID
	for e := range borderSet {
		first = e
		break
	}

	visited := map[EID]bool{}
	cur := first
	start := st.edges[first].EV[0]
	for {
		if visited[cur] {
			break
		}
		visited[cur] = true
		dst.AddTail(borderEdge{edge: cur, outside: borderSet[cur]})

		ed := &st.edges[cur]
		next, ok := byVertex[ed.EV[1]]
		if !ok || next == first && start == ed.EV[1] {
			break
		}
		cur = next
		if len(visited) >= len(borderSet) {
			break
		}
	}
}

// InsertVertex implements the insertion half of the influence-region engine
// (§4.E.2): grow the cavity around loc, remove it, insert v, and fan a new
// triangle to each border edge, restoring Delaunay locally without a
// separate swap pass (the cavity, by construction, already contains every
// triangle the new point would otherwise violate).
func (e *Engine) InsertVertex(loc Location, pos types.Point3) (VID, error) {
	switch loc.Kind {
	case PLVertex:
		return NilVertex, ErrDuplicateVertex
	case PLExternal:
		return e.insertHullVertex(pos)
	}

	var seed []TID
	switch loc.Kind {
	case PLTriangle:
		seed = []TID{loc.Tri}
	case PLEdge:
		seed = append(seed, loc.Tri)
		if other := e.store.edges[loc.Edge].OtherTriangle(loc.Tri); other != NilTriangle {
			seed = append(seed, other)
		}
	}

	c := e.store.growCavity(seed, pos.Point)
	v := e.store.NewVertex(pos)

	for _, t := range c.triangles {
		e.store.RemoveTriangle(t)
	}

	e.fanCavity(c, v)
	e.redistributePoints(c)
	return v, nil
}

// fanCavity creates one new triangle per border edge, connecting it to the
// new vertex v, and wires each new triangle's radial edges to its fan
// neighbors.
func (e *Engine) fanCavity(c *cavity, v VID) {
	var firstRadial EID
	n := c.border.Len()
	i := 0
	for el := c.border.Head(); el != nil; el = el.Next() {
		be := el.Value
		ed := e.store.Edge(be.edge)
		a, b := ed.EV[0], ed.EV[1]

		radialA := e.store.NewEdge(a, v)
		var radialB EID
		if i == n-1 {
			radialB = firstRadial
		} else {
			radialB = e.store.NewEdge(v, b)
		}

		e.store.NewTriangle(be.edge, radialB, radialA)

		if i == 0 {
			firstRadial = radialA
		}
		i++
	}
}

// redistributePoints re-buckets any pending points spilled by the removed
// cavity triangles into their new owning triangle or edge (§4.C).
func (e *Engine) redistributePoints(c *cavity) {
	pending := e.store.DetachedPoints
	e.store.DetachedPoints = nil
	for _, p := range pending {
		e.bucketPoint(p)
	}
}

// insertHullVertex handles PLExternal: the point lies outside the current
// hull. It is appended to the hull by connecting it to every hull edge it
// can see, then legalized like any other insertion. The refinement driver
// is the only caller that should ever produce a PLExternal location in
// practice, since the driver seeds from the convex hull of the whole point
// set; it is handled here too so Engine.InsertVertex is total.
func (e *Engine) insertHullVertex(pos types.Point3) (VID, error) {
	visible := e.store.visibleHullEdges(pos.Point)
	if len(visible) == 0 {
		return NilVertex, ErrPointOutsideHull
	}

	v := e.store.NewVertex(pos)
	for _, he := range visible {
		ed := e.store.Edge(he)
		a, b := ed.EV[0], ed.EV[1]
		radialA := e.store.NewEdge(a, v)
		radialB := e.store.NewEdge(v, b)
		// v sits to the right of a->b, so the CCW triangle is (b, a, v).
		e.store.NewTriangle(he, radialA, radialB)
	}

	e.store.legalize(visible)
	e.redistributePoints(nil)
	return v, nil
}

// visibleHullEdges returns the hull edges p can see (p is strictly outside
// the hull edge's supporting line, oriented so the hull interior is on the
// left).
func (st *Store) visibleHullEdges(p types.Point) []EID {
	var out []EID
	st.LiveEdges(func(e *Edge) {
		if e.ET[0] != NilTriangle && e.ET[1] != NilTriangle {
			return // interior edge
		}
		a := st.Pos(e.EV[0]).Point
		b := st.Pos(e.EV[1]).Point
		// Hull edges are stored CCW around the triangle they still
		// border, i.e. with the triangulation's interior on the left of
		// a->b; a point that sees this edge from outside sits to the
		// right of it.
		if robust.Orient2D(a, b, p) < 0 {
			out = append(out, e.ID)
		}
	})
	return out
}
