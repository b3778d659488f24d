package tmflow

import (
	"context"
	"errors"
	"testing"
)

func buildDefaultProblem(t *testing.T) Problem {
	t.Helper()
	return buildProblemWithRemainders(t, [2]float64{-0.1, 0.1}, [2]float64{-0.1, 0.1})
}

func buildProblemWithRemainders(t *testing.T, remainderX, remainderY [2]float64) Problem {
	t.Helper()
	vars, err := NewVariableSet([]string{"x", "y"})
	if err != nil {
		t.Fatalf("NewVariableSet failed: %v", err)
	}
	x, err := Var(vars, "x")
	if err != nil {
		t.Fatalf("Var(x) failed: %v", err)
	}
	y, err := Var(vars, "y")
	if err != nil {
		t.Fatalf("Var(y) failed: %v", err)
	}
	xSq, err := Pow(x, 2)
	if err != nil {
		t.Fatalf("Pow failed: %v", err)
	}
	field := PolynomialVector{Add(Const(vars, 1), y), ScalarMul(-1, xSq)}

	odeVarBox, err := newIntervalVector(t, [2]float64{-0.002, 0.002}, [2]float64{-0.0021, 0.0021})
	if err != nil {
		t.Fatalf("building ode var box failed: %v", err)
	}
	initialRemainders, err := newIntervalVector(t, remainderX, remainderY)
	if err != nil {
		t.Fatalf("building initial remainders failed: %v", err)
	}
	initialBox, err := newIntervalVector(t, [2]float64{-1.0, 1.0}, [2]float64{-0.5, 0.5})
	if err != nil {
		t.Fatalf("building initial box failed: %v", err)
	}
	horizon, err := NewInterval(0, 0.1)
	if err != nil {
		t.Fatalf("NewInterval failed: %v", err)
	}

	return Problem{
		Vars:              vars,
		StateVars:         vars.StateVars(),
		Field:             field,
		OdeVarBox:         odeVarBox,
		InitialBox:        initialBox,
		InitialRemainders: initialRemainders,
		TimeHorizon:       horizon,
	}
}

func newIntervalVector(t *testing.T, bounds ...[2]float64) (IntervalVector, error) {
	t.Helper()
	iv := make(IntervalVector, len(bounds))
	for i, b := range bounds {
		interval, err := NewInterval(b[0], b[1])
		if err != nil {
			return nil, err
		}
		iv[i] = interval
	}
	return iv, nil
}

func TestIntegrateDefaultScenarioProducesSixFlowpipes(t *testing.T) {
	problem := buildDefaultProblem(t)
	result, err := Integrate(context.Background(), problem, DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if len(result.Flowpipes) != 6 {
		t.Errorf("len(result.Flowpipes) = %d, want 6 (seed + 5 steps of 0.02 over [0, 0.1])", len(result.Flowpipes))
	}
	if len(result.Boxes) != len(result.Flowpipes) {
		t.Errorf("len(result.Boxes) = %d, want %d", len(result.Boxes), len(result.Flowpipes))
	}
}

func TestIntegrateCoarserStepProducesFiveFlowpipes(t *testing.T) {
	problem := buildDefaultProblem(t)
	cfg := DefaultConfig().WithStepSize(0.03).WithStepEpsilon(0.001)

	result, err := Integrate(context.Background(), problem, cfg)
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	// 0.1 / 0.03 = 3 full steps + a 0.01 remainder, width 0.01 > epsilon
	// 0.001, so it is kept: 1 seed + 3 full + 1 final = 5.
	if len(result.Flowpipes) != 5 {
		t.Errorf("len(result.Flowpipes) = %d, want 5", len(result.Flowpipes))
	}
}

func TestIntegrateZeroWidthHorizonYieldsSeedOnly(t *testing.T) {
	problem := buildDefaultProblem(t)
	horizon, err := NewInterval(0, 0)
	if err != nil {
		t.Fatalf("NewInterval failed: %v", err)
	}
	problem.TimeHorizon = horizon

	result, err := Integrate(context.Background(), problem, DefaultConfig())
	if err != nil {
		t.Fatalf("Integrate failed: %v", err)
	}
	if len(result.Flowpipes) != 1 {
		t.Errorf("len(result.Flowpipes) = %d, want 1", len(result.Flowpipes))
	}
}

func TestIntegrateOrderZero(t *testing.T) {
	problem := buildDefaultProblem(t)
	cfg := DefaultConfig().WithOrder(0)

	result, err := Integrate(context.Background(), problem, cfg)
	if err != nil {
		t.Fatalf("Integrate at order 0 failed: %v", err)
	}
	if len(result.Flowpipes) != 6 {
		t.Errorf("len(result.Flowpipes) = %d, want 6", len(result.Flowpipes))
	}
}

func TestIntegrateForcedContractivenessFailure(t *testing.T) {
	// The degenerate [0,0] remainder cannot enclose the field's nonzero
	// [0,delta] integral term at any step, so with only one try and no
	// widening budget the search never reaches a contractive candidate.
	problem := buildProblemWithRemainders(t, [2]float64{0, 0}, [2]float64{0, 0})
	cfg := DefaultConfig().WithWidenScale(1.5).WithMaxTries(1)

	_, err := Integrate(context.Background(), problem, cfg)
	if err == nil {
		t.Fatal("expected a contractiveness failure with an unforgiving search budget, got nil")
	}
	var tmErr *Error
	if !errors.As(err, &tmErr) {
		t.Fatalf("error %v is not a *Error", err)
	}
	if tmErr.Code != ErrContractivenessFailure {
		t.Errorf("error Code = %v, want ErrContractivenessFailure", tmErr.Code)
	}
}

func TestIntegrateRejectsInvalidConfig(t *testing.T) {
	problem := buildDefaultProblem(t)
	cfg := DefaultConfig().WithOrder(-1)

	if _, err := Integrate(context.Background(), problem, cfg); err == nil {
		t.Fatal("expected a validation error for a negative order, got nil")
	}
}
