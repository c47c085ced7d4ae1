package trig

import (
	"testing"

	"github.com/UMDGeoVis/mttri/types"
)

func TestInsertVertexGrowsCavityForInteriorPoint(t *testing.T) {
	e := NewEngine()
	if _, err := e.BuildInitial(squarePts()); err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}
	loc := NewLocator(e.Store(), 0)

	before := e.Store().NumVertices()
	pos := types.NewPoint3(5, 5, 1)
	v, err := e.InsertVertex(loc.Locate(pos.Point), pos)
	if err != nil {
		t.Fatalf("InsertVertex: %v", err)
	}
	if v == NilVertex {
		t.Fatalf("expected a live vertex id")
	}
	if got := e.Store().NumVertices(); got != before+1 {
		t.Fatalf("expected %d vertices after insertion, got %d", before+1, got)
	}

	count := 0
	e.Store().LiveTriangles(func(*Triangle) { count++ })
	if count != 4 {
		t.Fatalf("expected a 4-triangle fan around the new interior vertex, got %d", count)
	}
}

func TestInsertVertexOnHullExtendsTriangulation(t *testing.T) {
	e := NewEngine()
	if _, err := e.BuildInitial(squarePts()); err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}
	loc := NewLocator(e.Store(), 0)

	before := e.Store().NumVertices()
	// Outside the square's hull entirely, below the bottom edge.
	pos := types.NewPoint3(5, -5, 0)
	v, err := e.InsertVertex(loc.Locate(pos.Point), pos)
	if err != nil {
		t.Fatalf("InsertVertex: %v", err)
	}
	if v == NilVertex {
		t.Fatalf("expected a live vertex id")
	}
	if got := e.Store().NumVertices(); got != before+1 {
		t.Fatalf("expected %d vertices after hull extension, got %d", before+1, got)
	}
}

func TestInsertVertexRejectsDuplicateLocation(t *testing.T) {
	e := NewEngine()
	if _, err := e.BuildInitial(squarePts()); err != nil {
		t.Fatalf("BuildInitial: %v", err)
	}
	loc := NewLocator(e.Store(), 0)

	_, err := e.InsertVertex(loc.Locate(types.Point{X: 0, Y: 0}), types.NewPoint3(0, 0, 0))
	if err != ErrDuplicateVertex {
		t.Fatalf("expected ErrDuplicateVertex, got %v", err)
	}
}
