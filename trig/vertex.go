package trig

import "github.com/UMDGeoVis/mttri/types"

// Vertex is a terrain sample: a planar position, an elevation, and the
// per-vertex MT bookkeeping (§3.1). VE holds up to two incident edges, the
// first ones linked that are still attached; for a hull vertex they are not
// necessarily its hull edges. The full incident-edge fan
// is recovered by walking ET/TE from there, the same way the teacher's
// TriSoup recovers a vertex's triangle fan by walking neighbor links.
type Vertex struct {
	ID    VID
	Pos   types.Point3
	Error float64 // approximation error this vertex corrects, if inserted
	Marks Marks
	VE    [2]EID

	// NIncConstr counts constrained edges incident to this vertex. A
	// vertex with NIncConstr == 0 is freely removable; 1 or 2 triggers
	// the constraint engine's extended-optimization removal path; more
	// than 2 makes the vertex permanently non-removable (§4.H).
	NIncConstr int
}

func (v *Vertex) live() bool { return !v.Marks.Has(MarkDeleted) }
