package trig

import "github.com/UMDGeoVis/mttri/algorithm/robust"

// FlipEdge replaces the shared edge of e's two triangles with the other
// diagonal of the quad they form, the same primitive as the teacher's
// cdt.TriSoup.FlipEdge, adapted to operate on Store's Edge/Triangle records
// instead of TriSoup's local-edge-index triangles. It refuses to flip a
// constrained edge, a hull edge (only one incident triangle), or a flip
// that would invert either resulting triangle.
func (s *Store) FlipEdge(e EID) (EID, bool) {
	ed := &s.edges[e]
	if ed.Marks.Has(MarkConstrained) {
		return NilEdge, false
	}
	t1, t2 := ed.ET[0], ed.ET[1]
	if t1 == NilTriangle || t2 == NilTriangle {
		return NilEdge, false
	}

	apex1 := apexOf(&s.triangles[t1], ed.EV[0], ed.EV[1])
	apex2 := apexOf(&s.triangles[t2], ed.EV[0], ed.EV[1])
	if apex1 == NilVertex || apex2 == NilVertex {
		return NilEdge, false
	}

	// ET[0] (apex1) is left of EV[0]->EV[1], so the quad is convex exactly
	// when EV[0] is right of apex1->apex2 and EV[1] is left of it.
	v0, v1 := ed.EV[0], ed.EV[1]
	pa := s.Pos(apex1).Point
	pb := s.Pos(apex2).Point
	p0 := s.Pos(v0).Point
	p1 := s.Pos(v1).Point
	if robust.Orient2D(pa, pb, p0) >= 0 || robust.Orient2D(pa, pb, p1) <= 0 {
		return NilEdge, false
	}

	// Gather the quad's four outer edges before the two triangles are
	// removed, keyed by which pair of vertices they connect.
	outerOf := func(t TID, skip EID) [2]EID {
		var out [2]EID
		n := 0
		for _, te := range s.triangles[t].TE {
			if te != skip {
				out[n] = te
				n++
			}
		}
		return out
	}
	outer1 := outerOf(t1, e)
	outer2 := outerOf(t2, e)

	s.RemoveTriangle(t1)
	s.RemoveTriangle(t2)
	s.RemoveEdge(e)

	newDiag := s.NewEdge(apex1, apex2)
	s.buildTriFromVerts(apex1, v0, apex2, newDiag, append(outer1[:], outer2[:]...))
	s.buildTriFromVerts(apex2, v1, apex1, newDiag, append(outer1[:], outer2[:]...))

	return newDiag, true
}

// buildTriFromVerts creates the triangle (a,b,c) in CCW order, using
// newDiag for the a-c edge and picking whichever candidate already
// connects the other two vertex pairs.
func (s *Store) buildTriFromVerts(a, b, c VID, newDiag EID, candidates []EID) {
	eAB := s.edgeAmong(candidates, a, b)
	eBC := s.edgeAmong(candidates, b, c)
	if eAB == NilEdge {
		eAB = s.NewEdge(a, b)
	}
	if eBC == NilEdge {
		eBC = s.NewEdge(b, c)
	}
	s.NewTriangle(eAB, eBC, newDiag)
}

func (s *Store) edgeAmong(candidates []EID, a, b VID) EID {
	key := NewEdgeKey(a, b)
	for _, e := range candidates {
		ed := &s.edges[e]
		if NewEdgeKey(ed.EV[0], ed.EV[1]) == key {
			return e
		}
	}
	return NilEdge
}

func apexOf(t *Triangle, a, b VID) VID {
	for _, v := range t.V {
		if v != a && v != b {
			return v
		}
	}
	return NilVertex
}

// legalize restores the Delaunay property in the neighborhood of edges,
// the same BFS swap-queue loop as the teacher's cdt.LegalizeAround: flip
// any illegal edge, then re-check the four edges of the new diamond.
func (s *Store) legalize(seed []EID) {
	queue := append([]EID(nil), seed...)
	processed := map[EID]bool{}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if processed[e] {
			continue
		}
		processed[e] = true

		if int(e) >= len(s.edges) || !s.edges[e].live() {
			continue
		}
		ed := &s.edges[e]
		if ed.Marks.Has(MarkConstrained) || ed.ET[0] == NilTriangle || ed.ET[1] == NilTriangle {
			continue
		}
		if !s.isIllegal(e) {
			continue
		}

		newDiag, ok := s.FlipEdge(e)
		if !ok {
			continue
		}

		ndTri := s.edges[newDiag].ET
		for _, t := range ndTri {
			if t == NilTriangle {
				continue
			}
			for _, te := range s.triangles[t].TE {
				if te != newDiag && !processed[te] {
					queue = append(queue, te)
				}
			}
		}
	}
}

// isIllegal reports whether e violates the Delaunay criterion: either
// apex sees the other triangle's far vertex inside its circumcircle.
func (s *Store) isIllegal(e EID) bool {
	ed := &s.edges[e]
	t1, t2 := ed.ET[0], ed.ET[1]
	apex1 := apexOf(&s.triangles[t1], ed.EV[0], ed.EV[1])
	apex2 := apexOf(&s.triangles[t2], ed.EV[0], ed.EV[1])

	a := s.Pos(ed.EV[0]).Point
	b := s.Pos(ed.EV[1]).Point
	p1 := s.Pos(apex1).Point
	p2 := s.Pos(apex2).Point

	return robust.InCircle(a, b, p1, p2) > 0
}
