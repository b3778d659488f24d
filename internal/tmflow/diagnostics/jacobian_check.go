// Package diagnostics numerically cross-validates parts of the Taylor
// Model engine that would otherwise only be checked symbolically. It
// occupies the "error/diagnostics" budget line from spec §2 and is
// consulted optionally by internal/tmflow/core.Driver when
// DriverInput.DiagnosticsEnabled is set.
package diagnostics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/hybberish/tmflow/internal/tmflow/core"
)

// JacobianCheck numerically cross-checks the symbolic Jacobian of a
// vector field F against a central-difference finite-difference
// approximation, at a concrete point. It implements
// core.JacobianChecker.
type JacobianCheck struct {
	// Step is the finite-difference perturbation size. Zero selects a
	// sane default.
	Step float64
	// Tolerance bounds the per-entry difference between the symbolic and
	// numeric Jacobians: an entry passes when it is within Tolerance
	// either absolutely or relatively (floats.EqualApprox). Zero selects a
	// default of 1e-3.
	Tolerance float64
}

// DefaultJacobianCheck returns a JacobianCheck with reasonable defaults.
func DefaultJacobianCheck() JacobianCheck {
	return JacobianCheck{Step: 1e-6, Tolerance: 1e-3}
}

// Check evaluates F's symbolic Jacobian (via core.Jacobian +
// core.EvalPoint) and a central finite-difference numeric Jacobian of F,
// both at the point `at` (ordered to match stateVars), and returns an
// error describing the largest mismatching entry if the two disagree by
// more than Tolerance.
func (c JacobianCheck) Check(F core.PolynomialVector, stateVars []core.VariableID, at []float64) error {
	if len(at) != len(stateVars) {
		return fmt.Errorf("jacobian check: point has %d coordinates, want %d", len(at), len(stateVars))
	}

	step := c.Step
	if step == 0 {
		step = 1e-6
	}
	tol := c.Tolerance
	if tol == 0 {
		tol = 1e-3
	}

	n := len(F)
	m := len(stateVars)

	symbolic := core.Jacobian(F, stateVars)
	symbolicAt := mat.NewDense(n, m, nil)
	assignment := make(map[core.VariableID]float64, m)
	for i, v := range stateVars {
		assignment[v] = at[i]
	}
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			symbolicAt.Set(i, j, core.EvalPoint(symbolic[i][j], assignment))
		}
	}

	numeric := mat.NewDense(n, m, nil)
	for j := range stateVars {
		plus := append([]float64(nil), at...)
		minus := append([]float64(nil), at...)
		plus[j] += step
		minus[j] -= step

		plusAssignment := pointAssignment(stateVars, plus)
		minusAssignment := pointAssignment(stateVars, minus)

		for i := 0; i < n; i++ {
			fPlus := core.EvalPoint(F[i], plusAssignment)
			fMinus := core.EvalPoint(F[i], minusAssignment)
			numeric.Set(i, j, (fPlus-fMinus)/(2*step))
		}
	}

	symFlat := rowMajor(symbolicAt)
	numFlat := rowMajor(numeric)

	if floats.EqualApprox(symFlat, numFlat, tol) {
		return nil
	}

	dist := floats.Distance(symFlat, numFlat, 2)
	worstI, worstJ := worstEntry(symbolicAt, numeric)
	return fmt.Errorf(
		"jacobian mismatch (L2 distance %g > tolerance %g); worst entry (%d,%d): symbolic=%g numeric=%g",
		dist, tol, worstI, worstJ, symbolicAt.At(worstI, worstJ), numeric.At(worstI, worstJ),
	)
}

func rowMajor(m *mat.Dense) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, m.RawRowView(i)...)
	}
	return out
}

func worstEntry(a, b *mat.Dense) (int, int) {
	r, c := a.Dims()
	worst, wi, wj := -1.0, 0, 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d := a.At(i, j) - b.At(i, j)
			if d < 0 {
				d = -d
			}
			if d > worst {
				worst, wi, wj = d, i, j
			}
		}
	}
	return wi, wj
}

func pointAssignment(stateVars []core.VariableID, at []float64) map[core.VariableID]float64 {
	out := make(map[core.VariableID]float64, len(stateVars))
	for i, v := range stateVars {
		out[v] = at[i]
	}
	return out
}

