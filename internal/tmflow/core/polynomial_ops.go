package core

import "fmt"

// Add returns p+q. p and q must share the same variable registry.
func Add(p, q *Polynomial) *Polynomial {
	out := p.Clone()
	for _, t := range q.terms {
		out.addTerm(t.mono, t.coeff)
	}
	return out
}

// Sub returns p-q.
func Sub(p, q *Polynomial) *Polynomial {
	out := p.Clone()
	for _, t := range q.terms {
		out.addTerm(t.mono, -t.coeff)
	}
	return out
}

// ScalarMul returns c*p.
func ScalarMul(c float64, p *Polynomial) *Polynomial {
	out := ZeroPolynomial(p.vars)
	if c == 0 {
		return out
	}
	for _, t := range p.terms {
		out.addTerm(t.mono, c*t.coeff)
	}
	return out
}

// Mul returns p*q, distributing fully (spec §4.2: "Expansion must
// distribute products so that degree is well-defined before
// truncation").
func Mul(p, q *Polynomial) *Polynomial {
	out := ZeroPolynomial(p.vars)
	for _, tp := range p.terms {
		for _, tq := range q.terms {
			out.addTerm(tp.mono.mul(tq.mono), tp.coeff*tq.coeff)
		}
	}
	return out
}

// AddVec adds two polynomial vectors of equal length componentwise.
func AddVec(p, q PolynomialVector) (PolynomialVector, error) {
	if len(p) != len(q) {
		return nil, fmt.Errorf("polynomial vector length mismatch: %d vs %d", len(p), len(q))
	}
	out := make(PolynomialVector, len(p))
	for i := range p {
		out[i] = Add(p[i], q[i])
	}
	return out, nil
}

// Truncate drops every monomial whose total degree exceeds k, returning
// the expanded, collected result. Fails with a negative-order error if
// k < 0. A polynomial with no variables is returned unchanged (the
// constant-only case), per spec §4.2.
func Truncate(p *Polynomial, k int) (*Polynomial, error) {
	if k < 0 {
		return nil, errNegativeOrder(k)
	}
	out := ZeroPolynomial(p.vars)
	for _, t := range p.terms {
		if t.mono.Degree() <= k {
			out.addTerm(t.mono, t.coeff)
		}
	}
	return out, nil
}

// TruncateVec truncates every component of a polynomial vector to order
// k.
func TruncateVec(pv PolynomialVector, k int) (PolynomialVector, error) {
	out := make(PolynomialVector, len(pv))
	for i, p := range pv {
		tp, err := Truncate(p, k)
		if err != nil {
			return nil, err
		}
		out[i] = tp
	}
	return out, nil
}

// Subst substitutes the polynomial q for the variable `v` everywhere it
// appears in p, returning the expanded result, per spec §4.2.
func Subst(p *Polynomial, v VariableID, q *Polynomial) *Polynomial {
	out := ZeroPolynomial(p.vars)
	for _, t := range p.terms {
		exp, hasV := t.mono[v]
		if !hasV || exp == 0 {
			out.addTerm(t.mono, t.coeff)
			continue
		}
		rest := t.mono.clone()
		delete(rest, v)

		qPow, err := PolyPow(q, exp)
		if err != nil {
			// exp is a non-negative monomial exponent by construction,
			// so PolyPow never fails here; panic would indicate a
			// broken invariant upstream.
			panic(err)
		}
		restPoly := ZeroPolynomial(p.vars)
		restPoly.addTerm(rest, t.coeff)
		term := Mul(restPoly, qPow)
		for _, tt := range term.terms {
			out.addTerm(tt.mono, tt.coeff)
		}
	}
	return out
}

// SubstVec substitutes q for v in every component of pv.
func SubstVec(pv PolynomialVector, v VariableID, q *Polynomial) PolynomialVector {
	out := make(PolynomialVector, len(pv))
	for i, p := range pv {
		out[i] = Subst(p, v, q)
	}
	return out
}

// SubstScalar substitutes the concrete scalar value for variable v
// everywhere in p (a special case of Subst used for fixing t=delta_i at
// the end of each driver step, spec §4.7 invariant I3).
func SubstScalar(p *Polynomial, v VariableID, value float64) *Polynomial {
	return Subst(p, v, ConstPolynomial(p.vars, value))
}

// SubstScalarVec applies SubstScalar to every component.
func SubstScalarVec(pv PolynomialVector, v VariableID, value float64) PolynomialVector {
	out := make(PolynomialVector, len(pv))
	for i, p := range pv {
		out[i] = SubstScalar(p, v, value)
	}
	return out
}

// PolyPow raises p to a non-negative integer power by repeated
// multiplication.
func PolyPow(p *Polynomial, exp int) (*Polynomial, error) {
	if exp < 0 {
		return nil, fmt.Errorf("polynomial power exponent must be non-negative, got %d", exp)
	}
	result := ConstPolynomial(p.vars, 1)
	for i := 0; i < exp; i++ {
		result = Mul(result, p)
	}
	return result, nil
}

// PartialDerivative returns d p / d v, the symbolic partial derivative
// of p with respect to variable v.
func PartialDerivative(p *Polynomial, v VariableID) *Polynomial {
	out := ZeroPolynomial(p.vars)
	for _, t := range p.terms {
		exp, ok := t.mono[v]
		if !ok || exp == 0 {
			continue
		}
		newMono := t.mono.clone()
		if exp == 1 {
			delete(newMono, v)
		} else {
			newMono[v] = exp - 1
		}
		out.addTerm(newMono, t.coeff*float64(exp))
	}
	return out
}

// Jacobian returns the n x m matrix of partial derivatives d Pi / d
// varsj for a polynomial vector P of length n and an ordered variable
// list vars of length m, per spec §4.2.
func Jacobian(P PolynomialVector, vars []VariableID) [][]*Polynomial {
	out := make([][]*Polynomial, len(P))
	for i, p := range P {
		row := make([]*Polynomial, len(vars))
		for j, v := range vars {
			row[j] = PartialDerivative(p, v)
		}
		out[i] = row
	}
	return out
}

// EvalPoint evaluates p at a concrete scalar assignment of every
// variable that appears in p, per spec §4.2.
func EvalPoint(p *Polynomial, assignment map[VariableID]float64) float64 {
	sum := 0.0
	for _, t := range p.terms {
		term := t.coeff
		for v, e := range t.mono {
			if e == 0 {
				continue
			}
			val, ok := assignment[v]
			if !ok {
				val = 0
			}
			for k := 0; k < e; k++ {
				term *= val
			}
		}
		sum += term
	}
	return sum
}

// EvalPointVec evaluates every component of pv at the same assignment.
func EvalPointVec(pv PolynomialVector, assignment map[VariableID]float64) []float64 {
	out := make([]float64, len(pv))
	for i, p := range pv {
		out[i] = EvalPoint(p, assignment)
	}
	return out
}
