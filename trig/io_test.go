package trig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/UMDGeoVis/mttri/types"
)

func TestReadPTSRoundTrip(t *testing.T) {
	src := "3\n0 0 0\n1 0 0\n0 1 2.5\n"
	got, err := ReadPTS(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadPTS: %v", err)
	}
	want := &PTSFile{Points: []types.Point3{
		types.NewPoint3(0, 0, 0),
		types.NewPoint3(1, 0, 0),
		types.NewPoint3(0, 1, 2.5),
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ReadPTS mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTriParsesBodyAndTriangles(t *testing.T) {
	src := "4\n0 0 0\n1 0 0\n1 1 0\n0 1 0\n2\n0 1 2\n0 2 3\n"
	got, err := ReadTri(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTri: %v", err)
	}
	if len(got.Points) != 4 || len(got.Triangles) != 2 {
		t.Fatalf("unexpected shape: %+v", got)
	}
	if got.Triangles[0] != [3]int{0, 1, 2} || got.Triangles[1] != [3]int{0, 2, 3} {
		t.Fatalf("unexpected triangles: %v", got.Triangles)
	}
}

func TestWriteTriRedensifiesVertexIDs(t *testing.T) {
	e := NewEngine()
	pts := []types.Point3{
		types.NewPoint3(0, 0, 0),
		types.NewPoint3(10, 0, 0),
		types.NewPoint3(10, 10, 0),
		types.NewPoint3(0, 10, 0),
	}
	if _, err := e.BuildInitial(pts); err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}

	var buf bytes.Buffer
	if err := e.WriteTri(&buf); err != nil {
		t.Fatalf("WriteTri: %v", err)
	}

	rt, err := ReadTri(&buf)
	if err != nil {
		t.Fatalf("round-trip ReadTri: %v", err)
	}
	if len(rt.Points) != 4 {
		t.Fatalf("expected 4 points after renumbering, got %d", len(rt.Points))
	}
	if len(rt.Triangles) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(rt.Triangles))
	}
	for _, tri := range rt.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(rt.Points) {
				t.Fatalf("triangle index %d out of the renumbered [0,%d) range", idx, len(rt.Points))
			}
		}
	}
}
