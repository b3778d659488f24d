package core

// EvalInterval evaluates a polynomial under an assignment of each free
// variable to an interval, producing an interval, per spec §2 item 3 and
// §4.5. Variables absent from the assignment are treated as the
// degenerate interval [0,0]. Evaluation is Horner-free term-by-term
// accumulation (sound, since interval addition and multiplication are
// each sound and the term ordering does not affect soundness).
func EvalInterval(p *Polynomial, assignment map[VariableID]Interval) (Interval, error) {
	acc := Point(0)
	for _, t := range p.terms {
		term := Point(t.coeff)
		for v, e := range t.mono {
			if e == 0 {
				continue
			}
			val, ok := assignment[v]
			if !ok {
				val = Point(0)
			}
			pw, err := val.Pow(e)
			if err != nil {
				return Interval{}, err
			}
			term = term.Mul(pw)
		}
		acc = acc.Add(term)
	}
	return acc, nil
}

// EvalIntervalVec evaluates every component of pv under the same
// assignment, always returning a flat IntervalVector of length
// len(pv) -- this is the "avoid the ambiguity" resolution to the Open
// Question in spec §9 about nested evaluator output: EvalIntervalVec
// never produces a nested structure, so callers never need to flatten.
func EvalIntervalVec(pv PolynomialVector, assignment map[VariableID]Interval) (IntervalVector, error) {
	out := make(IntervalVector, len(pv))
	for i, p := range pv {
		v, err := EvalInterval(p, assignment)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
