package trig

import (
	"fmt"

	"github.com/UMDGeoVis/mttri/cdt"
	"github.com/UMDGeoVis/mttri/types"
)

// BuildBoundedDomain constructs the starting triangulation for a refinement
// run whose domain is an arbitrary perimeter with holes, instead of the
// input's convex hull. It reuses the PSLG-based CDT builder to get an
// initial constrained triangulation of the boundary, drapes that boundary
// onto the surface implied by the interior terrain samples (an inverse-
// distance-weighted average, since a digitized perimeter/hole ring has no
// elevation of its own), then hands the draped triangulation to the
// decimation-style loader and inserts the interior samples one at a time
// exactly as BuildInitial does for the convex case.
func (e *Engine) BuildBoundedDomain(outer []types.Point, holes [][]types.Point, interior []types.Point3) error {
	m, err := cdt.BuildTerrainMesh(outer, holes, cdt.DefaultBuildOptions(), cdt.IDWElevation(interior, 2))
	if err != nil {
		return fmt.Errorf("mttri: building bounded domain: %w", err)
	}

	pts := make([]types.Point3, m.Mesh.NumVertices())
	for i := range pts {
		pts[i] = m.Vertex3(types.VertexID(i))
	}
	tris := make([][3]int, m.Mesh.NumTriangles())
	for i, t := range m.Mesh.GetTriangles() {
		tris[i] = [3]int{int(t[0]), int(t[1]), int(t[2])}
	}

	var segs [][2]int
	for i := 0; i+1 < len(outer); i++ {
		segs = append(segs, findBoundarySegment(pts, outer[i], outer[i+1]))
	}
	if len(outer) > 0 {
		segs = append(segs, findBoundarySegment(pts, outer[len(outer)-1], outer[0]))
	}
	for _, hole := range holes {
		for i := 0; i+1 < len(hole); i++ {
			segs = append(segs, findBoundarySegment(pts, hole[i], hole[i+1]))
		}
		if len(hole) > 0 {
			segs = append(segs, findBoundarySegment(pts, hole[len(hole)-1], hole[0]))
		}
	}

	if err := e.LoadTriangulation(pts, tris, segs); err != nil {
		return err
	}

	e.inputPoints = append(pts, interior...)
	for i, p := range interior {
		e.BucketInputPoint(len(pts)+i, p)
		if e.refineOpts.Policy == SelectRandom {
			e.allPending = append(e.allPending, len(pts)+i)
		}
	}
	return nil
}

func findBoundarySegment(pts []types.Point3, a, b types.Point) [2]int {
	ai, bi := -1, -1
	for i, p := range pts {
		if p.X == a.X && p.Y == a.Y {
			ai = i
		}
		if p.X == b.X && p.Y == b.Y {
			bi = i
		}
	}
	return [2]int{ai, bi}
}
