package trig

import "errors"

var (
	ErrDuplicateVertex    = errors.New("mttri: point coincides with an existing vertex")
	ErrPointOutsideHull   = errors.New("mttri: point is not visible from any hull edge")
	ErrVertexNotRemovable = errors.New("mttri: vertex has more than two incident constraints or borders a feature that must not break")
	ErrConstraintCrossesConstraint = errors.New("mttri: constraint edge would cross an existing constrained edge")
	ErrConstraintVertexInside      = errors.New("mttri: constraint edge passes through an existing vertex")
	ErrEmptyEngine                 = errors.New("mttri: engine has no triangulation to operate on")
	ErrNoCandidates                = errors.New("mttri: no further candidate to select")
	ErrMalformedFile               = errors.New("mttri: malformed input file")
)
