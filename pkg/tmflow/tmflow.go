package tmflow

import (
	"context"

	"github.com/hybberish/tmflow/internal/tmflow/core"
	"github.com/hybberish/tmflow/internal/tmflow/diagnostics"
)

// Problem bundles everything describing one ODE initial value problem:
// the vector field, the state variables it is defined over, and the
// initial box/remainder data, per spec §4.7/§6.
type Problem struct {
	Vars      *VariableSet
	StateVars []VariableID
	Field     PolynomialVector

	// OdeVarBox is the small interval used internally during Picard
	// refinement; InitialBox is the actual initial condition box. See
	// DESIGN.md for why these remain two distinct fields.
	OdeVarBox         IntervalVector
	InitialBox        IntervalVector
	InitialRemainders IntervalVector

	TimeHorizon Interval
}

// Result is the ordered output of one Integrate call: one Flowpipe and
// one enclosing Box per time sub-interval, including the initial
// (identity, zero-length) flowpipe at index 0.
type Result struct {
	Flowpipes []Flowpipe
	Boxes     []Box
}

// Integrate runs Taylor Model flowpipe construction across problem's
// time horizon using cfg's tunables, returning the ordered flowpipes and
// their box enclosures (spec §4.7). If cfg.DiagnosticsEnabled is set, a
// finite-difference Jacobian cross-check runs at every step and logs a
// warning (never fails the run) on divergence, per SPEC_FULL §2.
//
// Errors are always of type *Error; use errors.As or (*Error).Is against
// a sentinel built with the wanted Code to distinguish kinds.
func Integrate(ctx context.Context, problem Problem, cfg *Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, wrapError(err)
	}

	var checker core.JacobianChecker
	if cfg.DiagnosticsEnabled {
		jc := diagnostics.DefaultJacobianCheck()
		checker = jc
	}

	in := core.DriverInput{
		Vars:              problem.Vars,
		Field:             problem.Field,
		StateVars:         problem.StateVars,
		OdeVarBox:         problem.OdeVarBox,
		InitialBox:        problem.InitialBox,
		InitialRemainders: problem.InitialRemainders,
		TimeHorizon:       problem.TimeHorizon,
		StepSize:          cfg.StepSize,
		StepEpsilon:       cfg.StepEpsilon,
		Order:             cfg.Order,
		Search: core.ContractiveSearchParams{
			MaxTries:         cfg.MaxTries,
			WidenScale:       cfg.WidenScale,
			ExtraRefinements: cfg.ExtraRefinements,
		},
		DiagnosticsEnabled: cfg.DiagnosticsEnabled,
		JacobianChecker:    checker,
	}

	driver, err := core.NewDriver(in)
	if err != nil {
		return Result{}, wrapError(err)
	}

	flowpipes, boxes, err := driver.Integrate(ctx)
	if err != nil {
		return Result{}, wrapError(err)
	}

	return Result{Flowpipes: flowpipes, Boxes: boxes}, nil
}
