package trig

import (
	"github.com/UMDGeoVis/mttri/algorithm/robust"
	"github.com/UMDGeoVis/mttri/predicates"
)

// ringNode is one vertex of the InflRegnBorder working list during ear
// clipping: the node's vertex plus the edge that already connects it to the
// previous node.
type ringNode struct {
	v        VID
	edgeIn   EID // edge (prev.v -> v), NilEdge only transiently
	prev, next *ringNode
}

// IsRemovable reports whether v may be removed without breaking the hull
// shape: a vertex with any incident constrained edge (nIncConstr > 0) is
// never removable here; otherwise interior vertices are always removable,
// and a hull vertex is removable only if its two
// hull-incident edges are collinear, so removing it doesn't change the
// hull's outline.
func (s *Store) IsRemovable(v VID) bool {
	if s.vertices[v].NIncConstr > 0 {
		return false
	}
	return s.hullShapeRemovable(v)
}

// hullShapeRemovable is IsRemovable without the nIncConstr gate: used
// directly by RemoveConstrainedVertex, which has already performed its own
// consent-based admissibility check for a constrained vertex.
func (s *Store) hullShapeRemovable(v VID) bool {
	if s.vertices[v].VE[0] == NilEdge {
		return false
	}
	// VE does not always hold v's hull edges, so look them up directly: a
	// hull edge has a triangle on exactly one side.
	var hull []EID
	s.LiveEdges(func(ed *Edge) {
		if (ed.EV[0] == v || ed.EV[1] == v) && (ed.ET[0] == NilTriangle) != (ed.ET[1] == NilTriangle) {
			hull = append(hull, ed.ID)
		}
	})
	if len(hull) == 0 {
		return true // interior vertex
	}
	if len(hull) != 2 {
		return false
	}
	e0, e1 := hull[0], hull[1]
	a := s.Pos(s.edges[e0].OtherVertex(v)).Point
	b := s.Pos(v).Point
	c := s.Pos(s.edges[e1].OtherVertex(v)).Point
	return robust.Orient2D(a, b, c) == 0
}

// ringAround walks the triangle fan incident on v, starting from VE[0],
// returning the ring triangles in order and the ordered list of boundary
// vertices opposite v in each. closed is false when v is on the hull.
func (s *Store) ringAround(v VID) (tris []TID, border []VID, borderEdges []EID, spokes []EID, closed bool) {
	startEdge := s.vertices[v].VE[0]
	if startEdge == NilEdge {
		return nil, nil, nil, nil, false
	}

	// Walk in one direction until we return to the start (closed) or fall
	// off the hull (open).
	visitTri := func(t TID, viaEdge EID) (nextVert VID, nextEdge EID, farEdge EID) {
		tri := &s.triangles[t]
		// The edge of t opposite v is the "far" border edge; the other
		// two edges are viaEdge and the edge into the next triangle.
		var other EID
		for _, e := range tri.TE {
			if e != viaEdge && e != NilEdge {
				ed := &s.edges[e]
				if ed.EV[0] == v || ed.EV[1] == v {
					other = e
				} else {
					farEdge = e
				}
			}
		}
		return s.edges[other].OtherVertex(v), other, farEdge
	}

	// Enter the fan through the triangle left of v->w so that the walk
	// turns CCW around v and border comes out CCW, as earClip needs.
	first := s.edges[startEdge].ET[1]
	if s.edges[startEdge].EV[0] == v {
		first = s.edges[startEdge].ET[0]
	}

	visited := map[TID]bool{}
	spokes = append(spokes, startEdge)
	edgeCur := startEdge
	for {
		ed := &s.edges[edgeCur]
		var t TID
		if len(tris) == 0 && first != NilTriangle {
			t = first
		} else if ed.ET[0] != NilTriangle && !visited[ed.ET[0]] {
			t = ed.ET[0]
		} else if ed.ET[1] != NilTriangle && !visited[ed.ET[1]] {
			t = ed.ET[1]
		} else {
			break
		}
		visited[t] = true
		tris = append(tris, t)
		nextVert, nextEdge, farEdge := visitTri(t, edgeCur)
		border = append(border, nextVert)
		borderEdges = append(borderEdges, farEdge)
		edgeCur = nextEdge
		spokes = append(spokes, edgeCur)
		if edgeCur == startEdge {
			return tris, border, borderEdges, spokes, true
		}
	}
	return tris, border, borderEdges, spokes, false
}

// RemoveVertex implements §4.E.3: collect the triangle fan around v, ear
// clip the resulting polygon hole, and drain the swap queue to restore
// Delaunay. useCircumcircleTest selects OkTriangle's decimation variant
// (Delaunay-respecting ears, avoiding a later swap pass for the exact
// error computation) instead of the refinement variant (plain
// point-in-triangle).
func (e *Engine) RemoveVertex(v VID, useCircumcircleTest bool) error {
	if !e.store.IsRemovable(v) {
		return ErrVertexNotRemovable
	}
	return e.removeVertexUnchecked(v, useCircumcircleTest)
}

// removeVertexUnchecked is RemoveVertex without the IsRemovable gate, for
// RemoveConstrainedVertex: the consent-gated nIncConstr ∈ {1,2} cases have
// already had their own admissibility check (operator consent, or a
// synthesized replacement constraint) performed by the caller, so the
// generic "nIncConstr must be 0" rule IsRemovable enforces would otherwise
// always reject the very vertex §4.H is asking to remove.
func (e *Engine) removeVertexUnchecked(v VID, useCircumcircleTest bool) error {
	if !e.store.hullShapeRemovable(v) {
		return ErrVertexNotRemovable
	}

	tris, border, borderEdges, spokes, closed := e.store.ringAround(v)
	if len(border) < 2 {
		return ErrVertexNotRemovable
	}

	for _, t := range tris {
		e.store.RemoveTriangle(t)
	}
	for _, ei := range spokes {
		if ei != NilEdge && e.store.edges[ei].live() {
			e.store.RemoveEdge(ei)
		}
	}
	e.store.RemoveVertex(v)

	if !closed {
		// Hull case: the bridge between the two chain ends becomes the
		// new hull edge.
		bridge := e.store.NewEdge(border[len(border)-1], border[0])
		borderEdges = append(borderEdges, bridge)
	}

	newEdges := e.earClip(border, borderEdges, useCircumcircleTest)
	e.store.legalize(newEdges)
	e.redistributePoints(nil)
	return nil
}

// earClip triangulates the closed polygon (verts, edges) using the
// ears algorithm from §4.E.3: repeatedly clip a convex, empty ear,
// replacing two consecutive edges with one new closing edge, until three
// vertices remain. It returns every newly created edge so the caller can
// seed the Delaunay swap-queue optimization.
func (e *Engine) earClip(verts []VID, edges []EID, useCircumcircleTest bool) []EID {
	n := len(verts)
	nodes := make([]*ringNode, n)
	for i, v := range verts {
		nodes[i] = &ringNode{v: v}
	}
	for i := range nodes {
		nodes[i].edgeIn = edges[i]
		nodes[i].prev = nodes[(i-1+n)%n]
		nodes[i].next = nodes[(i+1)%n]
	}

	var newEdges []EID
	cur := nodes[0]
	remaining := n
	for remaining > 3 {
		v0, v1, v2 := cur.prev.v, cur.v, cur.next.v
		p0 := e.store.Pos(v0).Point
		p1 := e.store.Pos(v1).Point
		p2 := e.store.Pos(v2).Point

		if robust.Orient2D(p0, p1, p2) > 0 && e.okTriangle(v0, v1, v2, cur, useCircumcircleTest) {
			closeEdge := e.store.NewEdge(v2, v0)
			// cur.edgeIn is v0->v1 and cur.next.edgeIn is v1->v2.
			e.store.NewTriangle(cur.edgeIn, cur.next.edgeIn, closeEdge)
			newEdges = append(newEdges, closeEdge)

			cur.next.edgeIn = closeEdge
			cur.prev.next = cur.next
			cur.next.prev = cur.prev
			remaining--
			cur = cur.prev
			continue
		}
		cur = cur.next
	}

	// Close the final triangle with whatever three edges remain.
	a, b, c := cur, cur.next, cur.next.next
	e.store.NewTriangle(a.edgeIn, b.edgeIn, c.edgeIn)

	return newEdges
}

// okTriangle implements the two OkTriangle variants from §4.E.3.
func (e *Engine) okTriangle(v0, v1, v2 VID, cur *ringNode, useCircumcircleTest bool) bool {
	p0 := e.store.Pos(v0).Point
	p1 := e.store.Pos(v1).Point
	p2 := e.store.Pos(v2).Point

	for n := cur.next.next; n != cur.prev; n = n.next {
		q := e.store.Pos(n.v).Point
		if useCircumcircleTest {
			if robust.InCircle(p0, p1, p2, q) > 0 {
				return false
			}
		} else if predicates.PointStrictlyInTriangle(q, p0, p1, p2, 1e-12) {
			return false
		}
	}
	return true
}

// bucketPoint relocates a pending point spilled by a cavity or ring
// removal, recomputing its real error against the new surface (§4.C).
func (e *Engine) bucketPoint(p PendingPoint) {
	e.BucketInputPoint(p.PID, p.Pos)
}
