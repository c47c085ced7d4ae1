package robust

import (
	"testing"

	"github.com/UMDGeoVis/mttri/types"
)

func TestClassifySegmentsProperCrossing(t *testing.T) {
	p := types.Point{X: 0, Y: 0}
	q := types.Point{X: 4, Y: 4}
	r := types.Point{X: 0, Y: 4}
	s := types.Point{X: 4, Y: 0}
	if got := ClassifySegments(p, q, r, s); got != ProperInter {
		t.Fatalf("expected ProperInter, got %v", got)
	}
}

func TestClassifySegmentsNoIntersection(t *testing.T) {
	p := types.Point{X: 0, Y: 0}
	q := types.Point{X: 1, Y: 0}
	r := types.Point{X: 0, Y: 5}
	s := types.Point{X: 1, Y: 5}
	if got := ClassifySegments(p, q, r, s); got != NoInter {
		t.Fatalf("expected NoInter, got %v", got)
	}
}

func TestClassifySegmentsSharedEndpoint(t *testing.T) {
	p := types.Point{X: 0, Y: 0}
	q := types.Point{X: 2, Y: 2}
	r := types.Point{X: 2, Y: 2}
	s := types.Point{X: 4, Y: 0}
	if got := ClassifySegments(p, q, r, s); got != Only1CV {
		t.Fatalf("expected Only1CV for a shared endpoint, got %v", got)
	}
}

func TestClassifySegmentsCollinearOverlap(t *testing.T) {
	p := types.Point{X: 0, Y: 0}
	q := types.Point{X: 4, Y: 0}
	r := types.Point{X: 2, Y: 0}
	s := types.Point{X: 6, Y: 0}
	got := ClassifySegments(p, q, r, s)
	if got != UponNoCV && got != UponAnd1CV && got != UponAnd2CV {
		t.Fatalf("expected one of the collinear-overlap relations, got %v", got)
	}
}
