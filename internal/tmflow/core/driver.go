package core

import (
	"context"
	"log"
	"math"
)

// DriverInput bundles every input to one TM integration run, per spec
// §4.7/§6.
type DriverInput struct {
	Vars      *VariableSet
	Field     PolynomialVector // F, the ODE's right-hand side, length n
	StateVars []VariableID     // ordered state-vars, length n

	// OdeVarBox is the small state-variable interval used during Picard
	// refinement (conceptually "change since step start"); InitialBox is
	// the original domain of the state variables, used only at
	// box-construction time. These are intentionally two distinct
	// inputs -- see spec §9 "ode_var_box vs initial_box" and DESIGN.md.
	OdeVarBox  IntervalVector
	InitialBox IntervalVector

	InitialRemainders IntervalVector

	TimeHorizon Interval
	StepSize    float64
	StepEpsilon float64

	Order  int
	Search ContractiveSearchParams

	// DiagnosticsEnabled runs a numeric finite-difference cross-check of
	// the Lie-derivative Jacobian at each step and logs a warning if it
	// diverges from the symbolic one beyond tolerance (SPEC_FULL §2).
	DiagnosticsEnabled bool
	JacobianChecker    JacobianChecker
}

// JacobianChecker is implemented by internal/tmflow/diagnostics so that
// core does not need to import it directly (avoiding an import cycle
// between core and a package that itself depends on core's types).
type JacobianChecker interface {
	Check(F PolynomialVector, stateVars []VariableID, at []float64) error
}

// Driver owns the growing ordered list of flowpipes produced by one
// integration run, per spec §3's lifecycle note ("the driver owns the
// growing ordered list of flowpipes").
type Driver struct {
	in DriverInput
}

// NewDriver validates the driver's preconditions (spec §4.7: n = len(F),
// time_horizon.lower = 0, Delta >= 0) and returns a ready-to-run Driver.
func NewDriver(in DriverInput) (*Driver, error) {
	n := len(in.StateVars)
	if n != len(in.Field) {
		return nil, errInvalidInput("state variable count %d does not match vector field length %d", n, len(in.Field))
	}
	if len(in.OdeVarBox) != n {
		return nil, errInvalidInput("ode variable box length %d does not match state count %d", len(in.OdeVarBox), n)
	}
	if len(in.InitialBox) != n {
		return nil, errInvalidInput("initial box length %d does not match state count %d", len(in.InitialBox), n)
	}
	if len(in.InitialRemainders) != n {
		return nil, errInvalidInput("initial remainders length %d does not match state count %d", len(in.InitialRemainders), n)
	}
	if in.TimeHorizon.Lo != 0 {
		return nil, errInvalidInput("time horizon must start at 0 exactly, got %g", in.TimeHorizon.Lo)
	}
	if in.TimeHorizon.Hi < 0 {
		return nil, errInvalidInput("time horizon must end >= 0, got %g", in.TimeHorizon.Hi)
	}
	if in.StepSize <= 0 {
		return nil, errInvalidInput("step_size must be > 0, got %g", in.StepSize)
	}
	if in.StepEpsilon < 0 {
		return nil, errInvalidInput("step_epsilon must be >= 0, got %g", in.StepEpsilon)
	}
	if in.Order < 0 {
		return nil, errNegativeOrder(in.Order)
	}
	if err := in.Search.Validate(); err != nil {
		return nil, err
	}
	return &Driver{in: in}, nil
}

// stepSizes returns the ordered list of per-step durations, implementing
// spec §4.7's partitioning rule: full = floor(Delta/delta), final =
// Delta - full*delta; both "final < epsilon" and "final < delta" must
// hold to drop the final step.
func (d *Driver) stepSizes() []float64 {
	delta := d.in.TimeHorizon.Hi
	step := d.in.StepSize
	full := int(math.Floor(delta / step))
	final := delta - float64(full)*step

	ignoreLast := final < d.in.StepEpsilon && final < step

	sizes := make([]float64, 0, full+1)
	for i := 0; i < full; i++ {
		sizes = append(sizes, step)
	}
	if !ignoreLast {
		sizes = append(sizes, final)
	}
	return sizes
}

// Integrate runs TM integration across the entire time horizon,
// returning the ordered list of flowpipes and their parallel list of box
// enclosures, per spec §4.7/§6. ctx is checked between steps so a
// caller can cancel a long-running integration; it carries no other
// semantics (there is no I/O in the core, per spec §5).
func (d *Driver) Integrate(ctx context.Context) ([]Flowpipe, []Box, error) {
	in := d.in
	p0 := IdentityVector(in.Vars)
	flowpipes := []Flowpipe{{Poly: p0, Remainder: in.InitialRemainders}}

	for _, stepSize := range d.stepSizes() {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		prev := flowpipes[len(flowpipes)-1]

		taylor, err := TaylorExpand(prev.Poly, in.StateVars, in.Field, in.Vars, in.Order)
		if err != nil {
			return nil, nil, err
		}

		if in.DiagnosticsEnabled && in.JacobianChecker != nil {
			at := make([]float64, len(in.StateVars))
			for i, v := range in.InitialBox {
				at[i] = (v.Lo + v.Hi) / 2
			}
			if err := in.JacobianChecker.Check(in.Field, in.StateVars, at); err != nil {
				log.Printf("tmflow: jacobian diagnostic warning: %v", err)
			}
		}

		tau, err := NewInterval(0, stepSize)
		if err != nil {
			return nil, nil, err
		}

		// The initial remainder estimate for the search is the
		// user-supplied InitialRemainders at every step, not the
		// previous step's remainder -- spec §4.7 step 3's note and the
		// corresponding Open Question in §9.
		remainder, err := ContractiveSearch(taylor, in.Field, in.StateVars, in.Vars, in.OdeVarBox, in.InitialRemainders, tau, in.Order, in.Search)
		if err != nil {
			return nil, nil, err
		}

		fixedPoly := SubstScalarVec(taylor, in.Vars.T(), stepSize)
		flowpipes = append(flowpipes, Flowpipe{Poly: fixedPoly, Remainder: remainder})
	}

	boxes := make([]Box, len(flowpipes))
	assignment := make(map[VariableID]Interval, len(in.StateVars))
	for i, v := range in.StateVars {
		assignment[v] = in.InitialBox[i]
	}
	for i, fp := range flowpipes {
		enclosure, err := EvalIntervalVec(fp.Poly, assignment)
		if err != nil {
			return nil, nil, err
		}
		summed, err := enclosure.Add(fp.Remainder)
		if err != nil {
			return nil, nil, err
		}
		boxes[i] = Box(summed)
	}

	return flowpipes, boxes, nil
}
