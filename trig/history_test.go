package trig

import "testing"

func TestHistoryMaxNormTracksWorstTriangle(t *testing.T) {
	h := NewHistory(Refining, NormMax, Termination{Mode: TerminateByCount, UpdLev: 10})
	h.RecordInitial([]CreatedTriangle{
		{Tri: 0, Error: 1.0},
		{Tri: 1, Error: 4.0},
	})
	if got := h.TotError(); got != 4.0 {
		t.Fatalf("expected max error 4.0, got %v", got)
	}

	h.RecordUpdate([]TID{1}, []CreatedTriangle{{Tri: 2, Error: 2.0}})
	if got := h.TotError(); got != 2.0 {
		t.Fatalf("expected max error 2.0 after removing the 4.0 triangle, got %v", got)
	}
}

func TestHistoryMedNormRunningMean(t *testing.T) {
	h := NewHistory(Coarsening, NormMed, Termination{Mode: TerminateByCount, UpdLev: 10})
	h.RecordInitial([]CreatedTriangle{
		{Tri: 0, Error: 2.0},
		{Tri: 1, Error: 4.0},
	})
	if got := h.TotError(); got != 3.0 {
		t.Fatalf("expected mean 3.0, got %v", got)
	}
}

func TestHistoryShouldTerminateByCount(t *testing.T) {
	h := NewHistory(Refining, NormMax, Termination{Mode: TerminateByCount, UpdLev: 1})
	h.RecordInitial(nil)
	if h.ShouldTerminate() {
		t.Fatalf("should not terminate before any update")
	}
	h.RecordUpdate(nil, []CreatedTriangle{{Tri: 0, Error: 1}})
	if !h.ShouldTerminate() {
		t.Fatalf("expected termination once nUpd reaches UpdLev")
	}
}
