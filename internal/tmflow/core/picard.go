package core

// Picard computes the Picard operator image of the Taylor polynomial
// vector T, per spec §4.4:
//
//  1. substitute each state-var in F by the corresponding component of
//     T, yielding F(T) in (state-vars, t);
//  2. add the placeholder s to each component, then integrate with
//     respect to t symbolically (t^e -> t^(e+1)/(e+1), s -> s*t);
//  3. truncate to total degree <= k;
//  4. prefix (add) the state-var vector, so the result equals
//     state-var + integral_0^t (F(T)+s) dtau componentwise.
func Picard(T PolynomialVector, F PolynomialVector, stateVars []VariableID, vars *VariableSet, k int) (PolynomialVector, error) {
	if len(stateVars) != len(F) || len(F) != len(T) {
		return nil, errInvalidInput("Picard operator needs matching lengths: state vars %d, field %d, taylor vector %d", len(stateVars), len(F), len(T))
	}

	substituted := F
	for i, v := range stateVars {
		substituted = SubstVec(substituted, v, T[i])
	}

	s := vars.S()
	integrated := make(PolynomialVector, len(substituted))
	for i, comp := range substituted {
		withS := Add(comp, VarPolynomial(vars, s))
		integrated[i] = integrateWrtT(withS, vars)
	}

	truncated, err := TruncateVec(integrated, k)
	if err != nil {
		return nil, err
	}

	result := make(PolynomialVector, len(stateVars))
	for i, v := range stateVars {
		result[i] = Add(VarPolynomial(vars, v), truncated[i])
	}
	return result, nil
}

// integrateWrtT returns the formal antiderivative of p with respect to
// t: for each term c * m(state-vars) * t^e * s^f, it maps
// t^e -> t^(e+1)/(e+1); the s variable passes through additively, since
// the source integrand treats "+s" as a constant-in-t offset whose
// antiderivative contributes an s*t term. This matches
// original_source/src/python/tm_integration.py's
// `sympy.integrate(e + s, t)` exactly: sympy.integrate treats any
// symbol other than the integration variable as a constant, so a bare
// s term (t-exponent 0) integrates to s*t, and an s*t^e term integrates
// to s*t^(e+1)/(e+1).
func integrateWrtT(p *Polynomial, vars *VariableSet) *Polynomial {
	t := vars.T()
	out := ZeroPolynomial(vars)
	for _, term := range p.terms {
		e := term.mono[t]
		newMono := term.mono.clone()
		newMono[t] = e + 1
		out.addTerm(newMono, term.coeff/float64(e+1))
	}
	return out
}
