package trig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/UMDGeoVis/mttri/validation"
)

func TestValidateCleanTriangulationReportsNoFaults(t *testing.T) {
	e := NewEngine()
	if _, err := e.BuildInitial(squarePts()); err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}

	faults, err := e.Validate(validation.Config{
		Epsilon:                  1e-9,
		ErrorOnDuplicateTriangle: true,
	})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(faults) != 0 {
		t.Fatalf("expected no faults on a clean triangulation, got %d: %+v", len(faults), faults)
	}
}

func TestWriteValidationReportFormatsOneLinePerFault(t *testing.T) {
	e := NewEngine()
	if _, err := e.BuildInitial(squarePts()); err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}
	m, err := e.ToMesh()
	if err != nil {
		t.Fatalf("ToMesh: %v", err)
	}
	faults := []TriangleFault{
		{Triangle: m.GetTriangle(0), Err: validation.Errors().Degenerate},
	}

	var buf bytes.Buffer
	if err := WriteValidationReport(&buf, faults); err != nil {
		t.Fatalf("WriteValidationReport: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 report line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "degenerate") {
		t.Fatalf("expected the degenerate-triangle error in the report line, got %q", lines[0])
	}
}
