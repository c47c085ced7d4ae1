package trig

import "github.com/UMDGeoVis/mttri/types"

// Store is the mesh's vertex/edge/triangle arena (§4.B). Indices are dense
// slice positions, recycled from a free list once a slot's detach leaves it
// unreferenced, the same scheme as the teacher's cdt.TriSoup but with
// first-class Edge records instead of an edge-to-triangle side table, so
// that edges can carry their own marks and point-list.
type Store struct {
	vertices []Vertex
	edges    []Edge
	triangles []Triangle

	edgeIndex map[EdgeKey]EID

	vertexFree   []VID
	edgeFree     []EID
	triangleFree []TID

	edgeFreeCap     int
	triangleFreeCap int

	// DetachedPoints accumulates the point-lists spilled by DetachTriangle;
	// the driver that called the mutation drains this queue to re-bucket
	// them (§3.5, §4.C).
	DetachedPoints []PendingPoint
}

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithEdgeFreeListCap bounds how many detached edge slots are kept for
// reuse; beyond the cap, detached slots are discarded rather than recycled
// (grounded in the original C++ engine's garbage-collected arena, which
// defaults this cap to 255).
func WithEdgeFreeListCap(n int) StoreOption {
	return func(s *Store) { s.edgeFreeCap = n }
}

// WithTriangleFreeListCap is the triangle-arena analogue of
// WithEdgeFreeListCap.
func WithTriangleFreeListCap(n int) StoreOption {
	return func(s *Store) { s.triangleFreeCap = n }
}

// NewStore builds an empty mesh store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		edgeIndex:       make(map[EdgeKey]EID),
		edgeFreeCap:     255,
		triangleFreeCap: 255,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NumVertices, NumEdges and NumTriangles report arena length, including any
// detached-but-not-yet-recycled slots.
func (s *Store) NumVertices() int  { return len(s.vertices) }
func (s *Store) NumEdges() int     { return len(s.edges) }
func (s *Store) NumTriangles() int { return len(s.triangles) }

func (s *Store) Vertex(id VID) *Vertex     { return &s.vertices[id] }
func (s *Store) Edge(id EID) *Edge         { return &s.edges[id] }
func (s *Store) Triangle(id TID) *Triangle { return &s.triangles[id] }

// LiveVertices, LiveEdges and LiveTriangles iterate over the arenas in index
// order, skipping detached slots; used by export and validation.
func (s *Store) LiveVertices(fn func(*Vertex)) {
	for i := range s.vertices {
		if s.vertices[i].live() {
			fn(&s.vertices[i])
		}
	}
}

func (s *Store) LiveEdges(fn func(*Edge)) {
	for i := range s.edges {
		if s.edges[i].live() {
			fn(&s.edges[i])
		}
	}
}

func (s *Store) LiveTriangles(fn func(*Triangle)) {
	for i := range s.triangles {
		if s.triangles[i].live() {
			fn(&s.triangles[i])
		}
	}
}

// NewVertex allocates a vertex record. VE starts empty; the caller wires it
// once the vertex's first incident edge exists.
func (s *Store) NewVertex(pos types.Point3) VID {
	v := Vertex{Pos: pos, VE: [2]EID{NilEdge, NilEdge}}
	if n := len(s.vertexFree); n > 0 {
		id := s.vertexFree[n-1]
		s.vertexFree = s.vertexFree[:n-1]
		v.ID = id
		s.vertices[id] = v
		return id
	}
	v.ID = VID(len(s.vertices))
	s.vertices = append(s.vertices, v)
	return v.ID
}

// RemoveVertex frees a vertex slot. The caller must have already detached
// every edge incident on it (VE[0] and VE[1] must be NilEdge).
func (s *Store) RemoveVertex(id VID) {
	s.vertices[id].Marks.Set(MarkDeleted)
	s.vertexFree = append(s.vertexFree, id)
}

// NewEdge allocates an edge between a and b with no incident triangles yet,
// wiring each endpoint's VE slots. It returns the existing edge ID if the
// pair is already connected (invariant 7: no two edges share an unordered
// endpoint pair).
func (s *Store) NewEdge(a, b VID) EID {
	key := NewEdgeKey(a, b)
	if id, ok := s.edgeIndex[key]; ok {
		return id
	}

	e := Edge{EV: [2]VID{a, b}, ET: [2]TID{NilTriangle, NilTriangle}}
	var id EID
	if n := len(s.edgeFree); n > 0 {
		id = s.edgeFree[n-1]
		s.edgeFree = s.edgeFree[:n-1]
		e.ID = id
		s.edges[id] = e
	} else {
		id = EID(len(s.edges))
		e.ID = id
		s.edges = append(s.edges, e)
	}

	s.edgeIndex[key] = id
	s.linkVertexEdge(a, id)
	s.linkVertexEdge(b, id)
	return id
}

func (s *Store) linkVertexEdge(v VID, e EID) {
	ve := &s.vertices[v].VE
	if ve[0] == NilEdge {
		ve[0] = e
	} else if ve[1] == NilEdge {
		ve[1] = e
	}
	// With both slots taken, e is not recorded; a slot is only refilled by
	// an edge linked after one of the two is unlinked.
}

func (s *Store) unlinkVertexEdge(v VID, e EID) {
	ve := &s.vertices[v].VE
	if ve[0] == e {
		ve[0] = NilEdge
	} else if ve[1] == e {
		ve[1] = NilEdge
	}
}

// FindEdge returns the edge between a and b, if one exists.
func (s *Store) FindEdge(a, b VID) (EID, bool) {
	id, ok := s.edgeIndex[NewEdgeKey(a, b)]
	return id, ok
}

// DetachEdge implements §3.5: clears any VE slot on either endpoint that
// still references e, clears any TE slot on either adjacent triangle that
// still references e, and removes it from the edge index. It does not free
// the slot — RemoveEdge does that once the caller is done inspecting it.
func (s *Store) DetachEdge(e EID) {
	ed := &s.edges[e]
	s.unlinkVertexEdge(ed.EV[0], e)
	s.unlinkVertexEdge(ed.EV[1], e)

	for _, t := range ed.ET {
		if t == NilTriangle || !s.triangles[t].live() {
			continue
		}
		tri := &s.triangles[t]
		for i, te := range tri.TE {
			if te == e {
				tri.TE[i] = NilEdge
			}
		}
	}

	delete(s.edgeIndex, NewEdgeKey(ed.EV[0], ed.EV[1]))
}

// RemoveEdge detaches and frees e in one call.
func (s *Store) RemoveEdge(e EID) {
	s.DetachEdge(e)
	s.edges[e].Marks.Set(MarkDeleted)
	if len(s.edgeFree) < s.edgeFreeCap {
		s.edgeFree = append(s.edgeFree, e)
	}
}

// NewTriangle allocates a triangle from three edges already in CCW order
// (edge i connects V[i] to V[(i+1)%3]); V is derived once here and cached,
// consistent with TE by construction, matching invariant 4.
func (s *Store) NewTriangle(e0, e1, e2 EID) TID {
	v := deriveTV(&s.edges[e0], &s.edges[e1], &s.edges[e2])

	tri := Triangle{V: v, TE: [3]EID{e0, e1, e2}}
	var id TID
	if n := len(s.triangleFree); n > 0 {
		id = s.triangleFree[n-1]
		s.triangleFree = s.triangleFree[:n-1]
		tri.ID = id
		s.triangles[id] = tri
	} else {
		id = TID(len(s.triangles))
		tri.ID = id
		s.triangles = append(s.triangles, tri)
	}

	for i, e := range tri.TE {
		ed := &s.edges[e]
		// ET[0] is to the left of EV[0]->EV[1]; a triangle referencing an
		// edge whose stored orientation disagrees attaches on ET[1].
		if ed.EV[0] == tri.V[i] {
			ed.ET[0] = id
		} else {
			ed.ET[1] = id
		}
	}

	return id
}

// deriveTV reconstructs V[0..2] from three CCW edges by intersecting each
// consecutive pair's endpoint sets, per GetTV's definition in the data
// model: TE[i]'s CCW endpoints are (V[i], V[(i+1)%3]).
func deriveTV(e0, e1, e2 *Edge) [3]VID {
	edges := [3]*Edge{e0, e1, e2}
	var v [3]VID
	for i := 0; i < 3; i++ {
		prev := edges[(i+2)%3]
		cur := edges[i]
		v[i] = sharedVertex(prev, cur)
	}
	return v
}

func sharedVertex(a, b *Edge) VID {
	if a.EV[0] == b.EV[0] || a.EV[0] == b.EV[1] {
		return a.EV[0]
	}
	return a.EV[1]
}

// DetachTriangle implements §3.5: clears any TE backreference from t's
// three edges, and spills t's point-list to DetachedPoints.
func (s *Store) DetachTriangle(t TID) {
	tri := &s.triangles[t]
	for _, e := range tri.TE {
		if e == NilEdge || !s.edges[e].live() {
			continue
		}
		ed := &s.edges[e]
		if ed.ET[0] == t {
			ed.ET[0] = NilTriangle
		} else if ed.ET[1] == t {
			ed.ET[1] = NilTriangle
		}
	}
	s.DetachedPoints = append(s.DetachedPoints, tri.Points...)
	tri.Points = nil
}

// RemoveTriangle detaches and frees t in one call.
func (s *Store) RemoveTriangle(t TID) {
	s.DetachTriangle(t)
	s.triangles[t].Marks.Set(MarkDeleted)
	if len(s.triangleFree) < s.triangleFreeCap {
		s.triangleFree = append(s.triangleFree, t)
	}
}

// GetTV returns the i-th vertex of triangle t (i in 0..2).
func (s *Store) GetTV(t TID, i int) VID { return s.triangles[t].V[i] }

// GetTT returns the neighbor of t across local edge i, or NilTriangle on
// the hull.
func (s *Store) GetTT(t TID, i int) TID {
	e := s.triangles[t].TE[i]
	if e == NilEdge {
		return NilTriangle
	}
	return s.edges[e].OtherTriangle(t)
}

// Pos is a convenience accessor for a vertex's planar+elevation position.
func (s *Store) Pos(v VID) types.Point3 { return s.vertices[v].Pos }
