package trig

// Mode records whether a history was built by refinement or decimation;
// it propagates into the emitted .tri/.cdt file and fixes which direction
// the error norm moves.
type Mode int

const (
	Refining Mode = iota
	Coarsening
)

// Norm selects how the tracer folds per-triangle error into totError.
type Norm int

const (
	NormMax Norm = iota
	NormMed
	NormSQM
)

// Update is one atomic MT step: the set of triangles it deleted and the
// set it created, each created triangle's geometry and error.
type Update struct {
	Deleted []TID
	Created []CreatedTriangle
}

// CreatedTriangle is the per-triangle record an Update keeps for later
// reconstruction at an arbitrary level of detail.
type CreatedTriangle struct {
	Tri   TID
	V     [3]VID
	Error float64
}

// Termination is the predicate consulted before every driver step.
type Termination struct {
	Mode    TerminationMode
	UpdLev  int
	ErrLev  float64
}

type TerminationMode int

const (
	TerminateByCount TerminationMode = iota
	TerminateByError
)

// History is the MT tracer (§4.I). It owns nUpd, totError under the chosen
// norm, and the update log.
type History struct {
	Mode Mode
	norm Norm
	term Termination

	Updates []Update
	nUpd    int

	maxTree   *OrderedIndex // per-triangle error, max-first, for NormMax
	medN      int
	medMean   float64
	sqmN      int
	sqmMeanSq float64
}

// NewHistory builds a tracer. The initial triangulation should be recorded
// via RecordInitial before any RecordUpdate call.
func NewHistory(mode Mode, norm Norm, term Termination) *History {
	h := &History{Mode: mode, norm: norm, term: term}
	if norm == NormMax {
		h.maxTree = NewOrderedIndex(true)
	}
	return h
}

// RecordInitial stamps the bottom of the MT: every triangle of the initial
// triangulation, with no deletions.
func (h *History) RecordInitial(created []CreatedTriangle) {
	h.Updates = append(h.Updates, Update{Created: created})
	for _, c := range created {
		h.addError(c.Tri, c.Error)
	}
}

// RecordUpdate appends one atomic update and folds its error delta into
// totError, then increments nUpd.
func (h *History) RecordUpdate(deleted []TID, created []CreatedTriangle) {
	h.Updates = append(h.Updates, Update{Deleted: deleted, Created: created})
	for _, t := range deleted {
		h.removeError(t)
	}
	for _, c := range created {
		h.addError(c.Tri, c.Error)
	}
	h.nUpd++
}

func (h *History) addError(t TID, e float64) {
	switch h.norm {
	case NormMax:
		h.maxTree.Insert(IndexItem{Key: int(t), Error: e})
	case NormMed:
		h.medN++
		h.medMean += (e - h.medMean) / float64(h.medN)
	case NormSQM:
		h.sqmN++
		h.sqmMeanSq += (e*e - h.sqmMeanSq) / float64(h.sqmN)
	}
}

func (h *History) removeError(t TID) {
	switch h.norm {
	case NormMax:
		h.maxTree.Remove(int(t))
	case NormMed:
		if h.medN > 1 {
			// Exact removal needs the removed value; callers that care
			// about bit-exact MED/SQM should track per-triangle error
			// themselves and call removeErrorValue instead.
			h.medN--
		} else {
			h.medN = 0
			h.medMean = 0
		}
	case NormSQM:
		if h.sqmN > 1 {
			h.sqmN--
		} else {
			h.sqmN = 0
			h.sqmMeanSq = 0
		}
	}
}

// removeErrorValue is the exact MED/SQM decrement blend: mean' = (n*mean -
// x) / (n-1), the n±1 blend formula named in §4.I.
func (h *History) removeErrorValue(e float64) {
	switch h.norm {
	case NormMed:
		if h.medN <= 1 {
			h.medN, h.medMean = 0, 0
			return
		}
		h.medMean = (float64(h.medN)*h.medMean - e) / float64(h.medN-1)
		h.medN--
	case NormSQM:
		if h.sqmN <= 1 {
			h.sqmN, h.sqmMeanSq = 0, 0
			return
		}
		h.sqmMeanSq = (float64(h.sqmN)*h.sqmMeanSq - e*e) / float64(h.sqmN-1)
		h.sqmN--
	}
}

// TotError reports the current global error under the chosen norm.
func (h *History) TotError() float64 {
	switch h.norm {
	case NormMax:
		if h.maxTree.Len() == 0 {
			return 0
		}
		item, _ := h.maxTree.Pop()
		h.maxTree.Insert(item)
		return item.Error
	case NormMed:
		return h.medMean
	case NormSQM:
		return h.sqmMeanSq
	default:
		return 0
	}
}

// ShouldTerminate reports whether the driver's termination predicate has
// fired.
func (h *History) ShouldTerminate() bool {
	switch h.term.Mode {
	case TerminateByCount:
		return h.nUpd >= h.term.UpdLev
	case TerminateByError:
		if h.Mode == Refining {
			return h.TotError() <= h.term.ErrLev
		}
		return h.TotError() >= h.term.ErrLev
	default:
		return false
	}
}
