package core

// ContractiveSearchParams bundles the widening-loop tunables from spec
// §4.6/§6: max_tries, widen_scale, extra_refinements.
type ContractiveSearchParams struct {
	MaxTries         int
	WidenScale       float64
	ExtraRefinements int
}

// Validate checks the preconditions spec §4.6 requires: max_tries >= 1,
// widen_scale > 1, extra_refinements >= 0.
func (p ContractiveSearchParams) Validate() error {
	if p.MaxTries < 1 {
		return errBadTries(p.MaxTries)
	}
	if p.WidenScale <= 1 {
		return errBadScale(p.WidenScale)
	}
	if p.ExtraRefinements < 0 {
		return errInvalidInput("extra_refinements must be >= 0, got %d", p.ExtraRefinements)
	}
	return nil
}

// ContractiveSearch runs the widening loop described in spec §4.6: a
// TRYING(Icand, attempt) state that refines the current candidate and
// either transitions to CONTRACTIVE(I') on success, widens and retries
// on failure (while attempts remain), or terminates FAIL. On success, it
// applies ExtraRefinements additional refinements without further
// subset checking, and returns OK(I).
//
// On FAIL it returns a *ContractivenessFailureError carrying I0Last (the
// last tested candidate; no widening is applied after the last try) and
// I1Last (that candidate's Picard image) so the diagnostic matches the
// last subset test actually performed, per spec §4.6.
func ContractiveSearch(T PolynomialVector, F PolynomialVector, stateVars []VariableID, vars *VariableSet, X IntervalVector, I0 IntervalVector, tau Interval, k int, params ContractiveSearchParams) (IntervalVector, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, errNegativeOrder(k)
	}

	candidate := I0
	var lastImage IntervalVector

	for attempt := 0; attempt < params.MaxTries; attempt++ {
		image, err := RefineOnce(T, F, stateVars, vars, X, candidate, tau, k)
		if err != nil {
			return nil, err
		}
		lastImage = image

		if image.Subset(candidate) {
			return extraRefine(T, F, stateVars, vars, X, image, tau, k, params.ExtraRefinements)
		}

		if attempt+1 < params.MaxTries {
			candidate = candidate.Widen(params.WidenScale)
		}
	}

	// candidate widens only when attempts remain (attempt+1 < MaxTries),
	// so on loop exit it already holds the last *tested* value -- the
	// pre-widening I0Last spec §4.6 wants in the diagnostic. The
	// original source widens unconditionally before checking the try
	// count and must divide the final widening back out for reporting;
	// this implementation's conditional widening makes that correction
	// unnecessary.
	return nil, errContractivenessFailure(candidate, lastImage, params.MaxTries)
}

func extraRefine(T PolynomialVector, F PolynomialVector, stateVars []VariableID, vars *VariableSet, X IntervalVector, I IntervalVector, tau Interval, k int, extraRefinements int) (IntervalVector, error) {
	current := I
	for i := 0; i < extraRefinements; i++ {
		refined, err := RefineOnce(T, F, stateVars, vars, X, current, tau, k)
		if err != nil {
			return nil, err
		}
		current = refined
	}
	return current, nil
}
