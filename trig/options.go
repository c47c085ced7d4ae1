package trig

import "fmt"

// RunOptions collects the full option table of §6 in one place, for a CLI
// front end to populate from flags and hand to NewEngine/BuildInitial.
type RunOptions struct {
	Constrained bool // use the .seg/.cdt constraint list, if one was loaded
	Random      bool // SelectRandom instead of SelectErrorDriven/decimation default

	Simultaneous bool // DecimateIndependentSet batching instead of one-at-a-time

	Termination TerminationMode
	NumUpd      int
	ErrorLevel  float64

	Norm Norm

	MaxDegree      int // 0 means unbounded
	MaxDegreeSet   bool

	ExtendOptimization bool // allow RemoveConstrainedVertex at all
	AllowFeaturesDel   bool
	AllowChainBrk      bool
}

// ParseNorm maps the CLI's MAX/MED/SQM spelling to a Norm.
func ParseNorm(s string) (Norm, error) {
	switch s {
	case "MAX":
		return NormMax, nil
	case "MED":
		return NormMed, nil
	case "SQM":
		return NormSQM, nil
	default:
		return 0, fmt.Errorf("mttri: unknown norm %q (want MAX, MED or SQM)", s)
	}
}

// ParseTermination maps the CLI's NUPD/ERR spelling to a TerminationMode.
func ParseTermination(s string) (TerminationMode, error) {
	switch s {
	case "NUPD":
		return TerminateByCount, nil
	case "ERR":
		return TerminateByError, nil
	default:
		return 0, fmt.Errorf("mttri: unknown termination mode %q (want NUPD or ERR)", s)
	}
}

// RefineEngineOptions builds the Engine construction options for a refinement
// run from o, given the already-chosen Mode.
func (o RunOptions) RefineEngineOptions() []Option {
	policy := SelectErrorDriven
	if o.Random {
		policy = SelectRandom
	}
	term := Termination{Mode: o.Termination, UpdLev: o.NumUpd, ErrLev: o.ErrorLevel}
	return []Option{
		WithRefineOptions(RefineOptions{Policy: policy}),
		WithHistory(Refining, o.Norm, term),
	}
}

// DecimateEngineOptions is the decimation analogue of RefineEngineOptions.
func (o RunOptions) DecimateEngineOptions() []Option {
	policy := SelectErrorDriven
	if o.Simultaneous {
		policy = SelectIndependentSet
	}
	term := Termination{Mode: o.Termination, UpdLev: o.NumUpd, ErrLev: o.ErrorLevel}
	return []Option{
		WithDecimateOptions(DecimateOptions{
			Policy:     policy,
			KDegree:    o.MaxDegree,
			KDegreeSet: o.MaxDegreeSet,
		}),
		WithHistory(Coarsening, o.Norm, term),
	}
}

// ConstraintOptions projects the constraint-engine consent gates out of the
// shared option table.
func (o RunOptions) ConstraintOptions() ConstraintOptions {
	return ConstraintOptions{
		AllowFeaturesDel: o.ExtendOptimization && o.AllowFeaturesDel,
		AllowChainBrk:    o.ExtendOptimization && o.AllowChainBrk,
	}
}
