package trig

import (
	"fmt"
	"io"

	"github.com/UMDGeoVis/mttri/formatting"
	"github.com/UMDGeoVis/mttri/types"
	"github.com/UMDGeoVis/mttri/validation"
)

// TriangleFault pairs a live triangle with the validation error it failed,
// positioned by its canonical vertex key rather than a mesh.Mesh index
// (which is only stable for the snapshot Validate exported it from).
type TriangleFault struct {
	Triangle types.Triangle
	Err      error
}

// Validate exports the live triangulation and runs validation.ValidateTriangle
// over every triangle against cfg, collecting every triangle that fails a
// check instead of stopping at the first one — a refinement/decimation run
// in progress is expected to have degenerate or duplicate triangles
// momentarily, so this is a diagnostic sweep, not a precondition gate.
func (e *Engine) Validate(cfg validation.Config) ([]TriangleFault, error) {
	m, err := e.ToMesh()
	if err != nil {
		return nil, err
	}

	var faults []TriangleFault
	for _, tri := range m.GetTriangles() {
		a := m.GetVertex(tri.V1())
		b := m.GetVertex(tri.V2())
		c := m.GetVertex(tri.V3())
		if err := validation.ValidateTriangle(tri, a, b, c, cfg, m); err != nil {
			faults = append(faults, TriangleFault{Triangle: tri, Err: err})
		}
	}
	return faults, nil
}

// WriteValidationReport writes one line per fault, formatted with the
// teacher's own triangle stringer, so a failing triangle can be cross-
// referenced against a .tri export by vertex IDs.
func WriteValidationReport(w io.Writer, faults []TriangleFault) error {
	for _, f := range faults {
		if _, err := fmt.Fprintf(w, "%s: %s\n", formatting.TriangleString(f.Triangle), f.Err); err != nil {
			return err
		}
	}
	return nil
}
