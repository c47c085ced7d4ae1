// Package trig implements the multi-triangulation terrain engine: a mesh
// store with explicit vertex/edge/triangle records, point location,
// influence-region insertion and removal, refinement and decimation
// drivers, a constraint engine, an MT history tracer, and the ordered
// indexes the drivers use to pick their next update.
package trig

// VID, EID and TID are dense arena indices into a Store's vertex, edge and
// triangle tables. They are never reused while a record is live; once a
// record is detached its index may be handed back out by a later New* call,
// so holding an index across a detach is a bug, not a race.
type (
	VID int
	EID int
	TID int
)

const (
	NilVertex   VID = -1
	NilEdge     EID = -1
	NilTriangle TID = -1
)

// Marks is the bitset of per-edge/per-triangle flags. Every algorithm that
// sets one of these must clear it again before returning control to the
// caller, with the sole exception of MarkConstrained, which is persistent.
type Marks uint16

const (
	MarkToDelete Marks = 1 << iota
	MarkInflBorder
	MarkInflBorderAux
	MarkVisited
	MarkNewTriangle
	MarkNewEdge
	MarkMTDeleted
	MarkSwapEdgeQueue
	MarkConstrained
	MarkRechecked
	MarkCopied

	// MarkDeleted is engine-internal bookkeeping (not one of the eleven
	// spec marks): it flags an arena slot that has been detached but not
	// yet recycled, so Store never hands a live reference to it.
	MarkDeleted
)

func (m Marks) Has(f Marks) bool { return m&f != 0 }
func (m *Marks) Set(f Marks)     { *m |= f }
func (m *Marks) Clear(f Marks)   { *m &^= f }

// EdgeKey canonically identifies an edge by its two endpoint vertex IDs,
// ordered (min, max), independent of triangle winding.
type EdgeKey struct {
	A, B VID
}

// NewEdgeKey builds a canonical EdgeKey.
func NewEdgeKey(a, b VID) EdgeKey {
	if a > b {
		a, b = b, a
	}
	return EdgeKey{A: a, B: b}
}

// PointLocationKind is the four-way classification a locator returns,
// matching the PL_TRIANGLE / PL_EDGE / PL_VERTEX / PL_EXTERNAL cases used
// throughout insertion and removal.
type PointLocationKind int

const (
	PLTriangle PointLocationKind = iota
	PLEdge
	PLVertex
	PLExternal
)

// Location is the result of a point-location walk.
type Location struct {
	Kind PointLocationKind
	Tri  TID // valid for PLTriangle and PLEdge
	Edge EID // valid for PLEdge
	Vert VID // valid for PLVertex
}
