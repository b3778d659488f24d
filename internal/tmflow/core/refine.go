package core

import "sync"

// RefineOnce performs one-shot remainder refinement, per spec §4.5: it
// forms the Picard image of T and F, then for each component j
// evaluates that image under the assignment
// {state-var_i -> X_i, t -> tau, s -> I[j]}, producing the refined
// component I'[j]. Other variables share assignments across components;
// only the s-binding varies per component.
//
// Spec §5 explicitly allows parallelizing this per-component loop since
// components are independent; for n > 1 one goroutine per component is
// started and joined with a sync.WaitGroup, matching the teacher's
// codes.ReedSolomon batch-encoding goroutine pattern (independent
// per-row work, no shared mutable state).
func RefineOnce(T PolynomialVector, F PolynomialVector, stateVars []VariableID, vars *VariableSet, X IntervalVector, I IntervalVector, tau Interval, k int) (IntervalVector, error) {
	picardImage, err := Picard(T, F, stateVars, vars, k)
	if err != nil {
		return nil, err
	}
	if len(picardImage) != len(I) || len(picardImage) != len(X) {
		return nil, errInvalidInput("refine: length mismatch among picard image (%d), remainder candidate (%d), and state box (%d)", len(picardImage), len(I), len(X))
	}

	n := len(picardImage)
	out := make(IntervalVector, n)

	baseAssignment := make(map[VariableID]Interval, n+2)
	for i, v := range stateVars {
		baseAssignment[v] = X[i]
	}
	baseAssignment[vars.T()] = tau

	if n <= 1 {
		for j := 0; j < n; j++ {
			assignment := cloneAssignment(baseAssignment)
			assignment[vars.S()] = I[j]
			v, err := EvalInterval(picardImage[j], assignment)
			if err != nil {
				return nil, err
			}
			out[j] = v
		}
		return out, nil
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for j := 0; j < n; j++ {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			assignment := cloneAssignment(baseAssignment)
			assignment[vars.S()] = I[j]
			v, err := EvalInterval(picardImage[j], assignment)
			if err != nil {
				errs[j] = err
				return
			}
			out[j] = v
		}(j)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func cloneAssignment(m map[VariableID]Interval) map[VariableID]Interval {
	out := make(map[VariableID]Interval, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
