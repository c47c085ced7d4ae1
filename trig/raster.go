package trig

import (
	"image/png"
	"io"

	"github.com/UMDGeoVis/mttri/intersections"
	"github.com/UMDGeoVis/mttri/mesh"
	"github.com/UMDGeoVis/mttri/rasterize"
	"github.com/UMDGeoVis/mttri/types"
)

// ToMesh exports the current live triangulation into the teacher mesh
// representation, for reuse of its PNG rasterizer as a second diagnostic
// export alongside WriteTri/WriteCdt (§6 is ASCII-only; this is additional
// tooling the original ASCII interface doesn't require).
func (e *Engine) ToMesh() (*mesh.Mesh, error) {
	pts, tris := e.bfsExport()

	m := mesh.NewMesh()
	ids := make([]types.VertexID, len(pts))
	for i, p := range pts {
		id, err := m.AddVertex(p.XY())
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	for _, t := range tris {
		if err := m.AddTriangle(ids[t[0]], ids[t[1]], ids[t[2]]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RenderPNG rasterizes the current triangulation to a PNG, color-grading
// nothing beyond the rasterizer's default triangle/edge styling — callers
// wanting error-driven color grading should walk LiveTriangles themselves
// and build a custom rasterize.Option palette.
func (e *Engine) RenderPNG(w io.Writer, width, height int, opts ...rasterize.Option) error {
	m, err := e.ToMesh()
	if err != nil {
		return err
	}
	img, err := rasterize.Rasterize(m, opts...)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// RegionHasTriangles reports whether any live triangle intersects box, for
// a caller narrowing a refinement/decimation run to a sub-area before
// committing to it (e.g. a viewport preview).
func (e *Engine) RegionHasTriangles(box types.AABB) (bool, error) {
	m, err := e.ToMesh()
	if err != nil {
		return false, err
	}
	return intersections.MeshIntersectsAABB(m, box), nil
}
