package core

// factorial returns i! for small non-negative i (order is always a
// small truncation bound in this domain, so no big.Int is needed).
func factorial(i int) float64 {
	f := 1.0
	for k := 2; k <= i; k++ {
		f *= float64(k)
	}
	return f
}

// TaylorExpand computes the order-k Taylor polynomial in time of the ODE
// flow by iterated Lie differentiation, per spec §4.3.
//
// Given the current flowpipe's polynomial vector p0 (in state-vars only
// at step 1; in state-vars and t thereafter), the ordered state
// variables, the vector field F, and truncation order k, it builds the
// sequence L0, L1, ..., Lk where L0 = p0 and
//
//	L[i+1] = truncate(Jacobian(L[i], state-vars) . F, k-i-1)
//
// and returns
//
//	Tk(x, t) = sum_{i=0}^{k} L[i](x) * t^i / i!
//
// after expansion. Truncating at decreasing order (k, k-1, ..., 0) is
// intentional -- see spec §4.3's rationale -- and this implementation
// does not special-case an all-zero Li early exit; every Li is computed
// explicitly, which a reader can confirm yields the same result as any
// short-circuiting variant (spec §4.3 "tie-break" clause).
func TaylorExpand(p0 PolynomialVector, stateVars []VariableID, F PolynomialVector, vars *VariableSet, k int) (PolynomialVector, error) {
	if len(stateVars) != len(F) {
		return nil, errInvalidInput("state variable count %d does not match vector field length %d", len(stateVars), len(F))
	}
	if k < 0 {
		return nil, errNegativeOrder(k)
	}

	lieDers := make([]PolynomialVector, 0, k+1)
	lieDers = append(lieDers, p0)

	for i := k - 1; i >= 0; i-- {
		prev := lieDers[len(lieDers)-1]
		jac := Jacobian(prev, stateVars)

		next := make(PolynomialVector, len(prev))
		for row := range jac {
			sum := ZeroPolynomial(vars)
			for col, partial := range jac[row] {
				sum = Add(sum, Mul(partial, F[col]))
			}
			next[row] = sum
		}

		truncated, err := TruncateVec(next, i)
		if err != nil {
			return nil, err
		}
		lieDers = append(lieDers, truncated)
	}

	t := vars.T()
	result := make(PolynomialVector, len(p0))
	for j := range result {
		result[j] = ZeroPolynomial(vars)
	}
	for i, Li := range lieDers {
		tPow := ZeroPolynomial(vars)
		tMono := Monomial{}
		if i > 0 {
			tMono[t] = i
		}
		tPow.addTerm(tMono, 1.0/factorial(i))
		for j := range result {
			result[j] = Add(result[j], Mul(Li[j], tPow))
		}
	}
	return result, nil
}
