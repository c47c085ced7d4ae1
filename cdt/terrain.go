package cdt

import (
	"github.com/UMDGeoVis/mttri/mesh"
	"github.com/UMDGeoVis/mttri/types"
)

// ElevationSampler produces a terrain elevation for a 2D boundary point. A
// bounded refinement domain's perimeter and hole rings carry no elevation
// of their own (they come from a digitizer or a GIS perimeter layer, not a
// terrain scan), so BuildTerrainMesh drapes each one onto the surface
// implied by the interior samples instead of leaving the boundary flat.
type ElevationSampler func(types.Point) float64

// IDWElevation returns an ElevationSampler that estimates the elevation at
// any point as the inverse-distance-weighted average of the given terrain
// samples, falling back to the nearest sample's elevation if p coincides
// with it. power controls how quickly influence falls off with distance;
// 2 is the usual default for terrain draping.
func IDWElevation(samples []types.Point3, power float64) ElevationSampler {
	return func(p types.Point) float64 {
		if len(samples) == 0 {
			return 0
		}
		var wsum, zsum float64
		for _, s := range samples {
			dx, dy := p.X-s.X, p.Y-s.Y
			d2 := dx*dx + dy*dy
			if d2 == 0 {
				return s.Z
			}
			w := 1.0
			for i := 0.0; i < power; i++ {
				w /= d2
			}
			wsum += w
			zsum += w * s.Z
		}
		if wsum == 0 {
			return 0
		}
		return zsum / wsum
	}
}

// BuildTerrainMesh builds a CDT the same way Build does, then attaches a z
// coordinate to every exported vertex by calling sample at its (x,y)
// position. It returns the 2-D mesh unchanged (Build's output has no
// elevation concept) alongside the parallel per-vertex elevation slice,
// since mesh.Mesh itself carries only types.Point positions.
func BuildTerrainMesh(outer []types.Point, holes [][]types.Point, opts BuildOptions, sample ElevationSampler) (*Mesh3, error) {
	built, err := Build(outer, holes, nil, opts)
	if err != nil {
		return nil, err
	}

	z := make([]float64, built.NumVertices())
	for i := range z {
		z[i] = sample(built.GetVertex(types.VertexID(i)))
	}
	return &Mesh3{Mesh: built, Z: z}, nil
}

// Mesh3 pairs a 2-D mesh.Mesh with a parallel per-vertex elevation slice,
// the minimal extension BuildTerrainMesh needs to hand a draped boundary
// back to a caller that works in Point3.
type Mesh3 struct {
	Mesh *mesh.Mesh
	Z    []float64
}

// Vertex3 returns vertex id's full 3-D position.
func (m *Mesh3) Vertex3(id types.VertexID) types.Point3 {
	p := m.Mesh.GetVertex(id)
	return types.NewPoint3(p.X, p.Y, m.Z[id])
}
