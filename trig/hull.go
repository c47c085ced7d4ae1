package trig

import (
	"sort"

	"github.com/UMDGeoVis/mttri/algorithm/robust"
	"github.com/UMDGeoVis/mttri/types"
)

// ConvexHull computes the convex hull of the xy-projection of pts using a
// monotone chain (Andrew's algorithm), with robust.Orient2D as the turn
// test. Returned indices are into pts, in CCW order, with no repeated point.
func ConvexHull(pts []types.Point3) []int {
	n := len(pts)
	if n < 3 {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := pts[order[i]], pts[order[j]]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	cross := func(o, a, b int) int {
		return robust.Orient2D(pts[o].Point, pts[a].Point, pts[b].Point)
	}

	build := func(order []int) []int {
		var hull []int
		for _, p := range order {
			for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
				hull = hull[:len(hull)-1]
			}
			hull = append(hull, p)
		}
		return hull
	}

	lower := build(order)
	rev := make([]int, n)
	for i, v := range order {
		rev[n-1-i] = v
	}
	upper := build(rev)

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}
