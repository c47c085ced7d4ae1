package trig

import (
	"math"
	"math/rand"

	"github.com/UMDGeoVis/mttri/algorithm/robust"
	"github.com/UMDGeoVis/mttri/types"
)

// Engine owns the mesh store, the locator, the MT history tracer, and the
// ordered indexes that drive refinement/decimation selection. It is the
// single point of mutation (§5): nothing in this package spawns a
// goroutine, and no Engine field is meant to be touched from more than one
// goroutine at a time.
type Engine struct {
	store   *Store
	locator *Locator
	history *History

	refineOpts   RefineOptions
	decimateOpts DecimateOptions

	pendingByError *OrderedIndex // error-driven refinement candidates
	removableTree  *OrderedIndex // decimation's ElimVtxTree

	inputPoints []types.Point3 // parsed .pts records, indexed by PID
	allPending  []int          // PIDs still pending, for the random refinement policy
	rng         *rand.Rand
}

// Option configures an Engine at construction, the same functional-options
// pattern as mesh.Option.
type Option func(*Engine)

func WithRefineOptions(o RefineOptions) Option {
	return func(e *Engine) { e.refineOpts = o }
}

func WithDecimateOptions(o DecimateOptions) Option {
	return func(e *Engine) { e.decimateOpts = o }
}

func WithStoreOptions(opts ...StoreOption) Option {
	return func(e *Engine) { e.store = NewStore(opts...) }
}

func WithHistory(mode Mode, norm Norm, term Termination) Option {
	return func(e *Engine) { e.history = NewHistory(mode, norm, term) }
}

// NewEngine builds an Engine ready for either BuildInitial (refinement) or
// LoadTriangulation (decimation).
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		store:          NewStore(),
		pendingByError: NewOrderedIndex(true),
		removableTree:  NewOrderedIndex(false),
		rng:            rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.history == nil {
		// No WithHistory option: the update count is unbounded, so a
		// driver runs until it has no candidate left.
		e.history = NewHistory(Refining, NormMax, Termination{Mode: TerminateByCount, UpdLev: math.MaxInt})
	}
	return e
}

func (e *Engine) Store() *Store     { return e.store }
func (e *Engine) History() *History { return e.history }

// surfaceZ evaluates the current surface's elevation at p within triangle
// t, for real-error computation (§4.C).
func (e *Engine) surfaceZ(t TID, p types.Point) (float64, bool) {
	tri := e.store.Triangle(t)
	a := e.store.Pos(tri.V[0])
	b := e.store.Pos(tri.V[1])
	c := e.store.Pos(tri.V[2])
	return robust.TriangleZ(a, b, c, p)
}

func (e *Engine) popMaxErrorPending() (PendingPoint, bool) {
	item, ok := e.pendingByError.Pop()
	if !ok {
		return PendingPoint{}, false
	}
	return PendingPoint{
		PID:   item.Key,
		Pos:   types.NewPoint3(item.X, item.Y, item.Z),
		Error: item.Error,
	}, true
}

func (e *Engine) popNextRandomPending() (PendingPoint, bool) {
	if len(e.allPending) == 0 {
		return PendingPoint{}, false
	}
	pid := e.allPending[0]
	e.allPending = e.allPending[1:]
	p := e.inputPoints[pid]
	return PendingPoint{PID: pid, Pos: p, Error: p.Z}, true
}
