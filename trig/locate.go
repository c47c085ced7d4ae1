package trig

import (
	"github.com/UMDGeoVis/mttri/algorithm/robust"
	"github.com/UMDGeoVis/mttri/types"
)

// Locator walks the triangulation from a starting triangle toward a query
// point, the same scheme as the teacher's cdt.Locator: at each step it
// computes the three edge orientations, crosses the first "outside" edge,
// and stops when the point is inside or on an edge of the current
// triangle. It additionally classifies a point that walks off the hull as
// PLExternal instead of erroring, and can resolve PLVertex when the point
// coincides with one of the triangle's corners.
type Locator struct {
	s    *Store
	last TID
}

// NewLocator builds a locator over s, starting its next walk from start.
func NewLocator(s *Store, start TID) *Locator {
	return &Locator{s: s, last: start}
}

// Locate finds which triangle, edge or vertex contains p, walking from the
// locator's last successful result for amortized O(1) cost between nearby
// queries.
func (l *Locator) Locate(p types.Point) Location {
	return l.LocateFrom(l.last, p)
}

// LocateFrom walks from an explicit starting triangle.
func (l *Locator) LocateFrom(start TID, p types.Point) Location {
	cur := start
	visited := make(map[TID]bool)
	maxSteps := l.s.NumTriangles()*2 + 8

	for step := 0; step < maxSteps; step++ {
		if cur == NilTriangle || !l.s.triangles[cur].live() {
			return Location{Kind: PLExternal}
		}
		if visited[cur] {
			// Cycle guard: the walk has looped without converging
			// (severely malformed input); report external rather than
			// spin forever.
			return Location{Kind: PLExternal}
		}
		visited[cur] = true

		tri := &l.s.triangles[cur]
		a := l.s.Pos(tri.V[0]).Point
		b := l.s.Pos(tri.V[1]).Point
		c := l.s.Pos(tri.V[2]).Point

		if samePlanarPoint(p, a) {
			l.last = cur
			return Location{Kind: PLVertex, Vert: tri.V[0]}
		}
		if samePlanarPoint(p, b) {
			l.last = cur
			return Location{Kind: PLVertex, Vert: tri.V[1]}
		}
		if samePlanarPoint(p, c) {
			l.last = cur
			return Location{Kind: PLVertex, Vert: tri.V[2]}
		}

		o0 := robust.Orient2D(a, b, p) // edge V[0]->V[1], local index 0
		o1 := robust.Orient2D(b, c, p) // edge V[1]->V[2], local index 1
		o2 := robust.Orient2D(c, a, p) // edge V[2]->V[0], local index 2

		orient := [3]int{o0, o1, o2} // indexed by local edge (TE[i] = V[i]->V[i+1])

		outside := -1
		onEdge := -1
		for i, o := range orient {
			if o < 0 {
				outside = i
				break
			}
			if o == 0 {
				onEdge = i
			}
		}

		if outside == -1 {
			l.last = cur
			if onEdge != -1 {
				e := tri.TE[onEdge]
				return Location{Kind: PLEdge, Tri: cur, Edge: e}
			}
			return Location{Kind: PLTriangle, Tri: cur}
		}

		next := l.s.GetTT(cur, outside)
		if next == NilTriangle {
			l.last = cur
			return Location{Kind: PLExternal}
		}
		cur = next
	}

	return Location{Kind: PLExternal}
}

func samePlanarPoint(a, b types.Point) bool {
	return a.X == b.X && a.Y == b.Y
}
