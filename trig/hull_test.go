package trig

import (
	"testing"

	"github.com/UMDGeoVis/mttri/types"
)

func TestConvexHullSquareWithInteriorPoint(t *testing.T) {
	pts := []types.Point3{
		types.NewPoint3(0, 0, 0),
		types.NewPoint3(10, 0, 0),
		types.NewPoint3(10, 10, 0),
		types.NewPoint3(0, 10, 0),
		types.NewPoint3(5, 5, 1), // interior, must not appear in the hull
	}

	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("expected 4 hull points, got %d: %v", len(hull), hull)
	}
	for _, idx := range hull {
		if idx == 4 {
			t.Fatalf("interior point 4 must not be on the hull, got %v", hull)
		}
	}
}

func TestConvexHullTriangle(t *testing.T) {
	pts := []types.Point3{
		types.NewPoint3(0, 0, 0),
		types.NewPoint3(4, 0, 0),
		types.NewPoint3(2, 4, 0),
	}
	hull := ConvexHull(pts)
	if len(hull) != 3 {
		t.Fatalf("expected 3 hull points for a triangle, got %d", len(hull))
	}
}
