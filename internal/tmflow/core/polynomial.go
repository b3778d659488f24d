package core

import (
	"fmt"
	"sort"
	"strings"
)

// Polynomial is a sparse multivariate polynomial: a mapping from
// monomial to nonzero scalar coefficient, per spec §3. The zero
// polynomial has an empty term map. Polynomials are immutable -- every
// operation below returns a new, fully expanded, normalized value.
type Polynomial struct {
	vars  *VariableSet
	terms map[string]polyTerm
}

type polyTerm struct {
	mono  Monomial
	coeff float64
}

// ZeroPolynomial returns the additive identity.
func ZeroPolynomial(vars *VariableSet) *Polynomial {
	return &Polynomial{vars: vars, terms: map[string]polyTerm{}}
}

// ConstPolynomial returns the constant polynomial c.
func ConstPolynomial(vars *VariableSet, c float64) *Polynomial {
	p := ZeroPolynomial(vars)
	if c != 0 {
		p.terms[""] = polyTerm{mono: Monomial{}, coeff: c}
	}
	return p
}

// VarPolynomial returns the degree-1 polynomial equal to the given
// variable (e.g. the identity component pj = state-varj used to seed
// the driver's first flowpipe, spec §4.7).
func VarPolynomial(vars *VariableSet, id VariableID) *Polynomial {
	p := ZeroPolynomial(vars)
	m := Monomial{id: 1}
	p.terms[m.key()] = polyTerm{mono: m, coeff: 1}
	return p
}

// NewPolynomial builds a polynomial from explicit (monomial, coefficient)
// terms, collecting like terms and dropping zero coefficients.
func NewPolynomial(vars *VariableSet, terms map[string]float64, monomials map[string]Monomial) *Polynomial {
	p := ZeroPolynomial(vars)
	for k, c := range terms {
		if c == 0 {
			continue
		}
		p.addTerm(monomials[k], c)
	}
	return p
}

// Variables returns the variable registry this polynomial is defined
// over.
func (p *Polynomial) Variables() *VariableSet { return p.vars }

// IsZero reports whether p has no nonzero terms.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Degree returns the maximum total degree among p's terms, or -1 for
// the zero polynomial.
func (p *Polynomial) Degree() int {
	d := -1
	for _, t := range p.terms {
		if td := t.mono.Degree(); td > d {
			d = td
		}
	}
	return d
}

// addTerm accumulates coeff into the term keyed by m, dropping it if the
// running coefficient becomes (or stays) zero.
func (p *Polynomial) addTerm(m Monomial, coeff float64) {
	k := m.key()
	if existing, ok := p.terms[k]; ok {
		coeff += existing.coeff
	}
	if coeff == 0 {
		delete(p.terms, k)
		return
	}
	p.terms[k] = polyTerm{mono: m.clone(), coeff: coeff}
}

// Clone returns an independent copy of p.
func (p *Polynomial) Clone() *Polynomial {
	out := ZeroPolynomial(p.vars)
	for k, t := range p.terms {
		out.terms[k] = polyTerm{mono: t.mono.clone(), coeff: t.coeff}
	}
	return out
}

// sortedKeys returns the term keys in a deterministic order (by total
// degree descending, then lexicographically by key) so that String and
// any other deterministic-printing code base their choice of order on
// it, per spec §3 ("an ordering is chosen for deterministic printing").
func (p *Polynomial) sortedKeys() []string {
	keys := make([]string, 0, len(p.terms))
	for k := range p.terms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, dj := p.terms[keys[i]].mono.Degree(), p.terms[keys[j]].mono.Degree()
		if di != dj {
			return di > dj
		}
		return keys[i] < keys[j]
	})
	return keys
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	keys := p.sortedKeys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		t := p.terms[k]
		parts = append(parts, monomialTermString(p.vars, t.mono, t.coeff))
	}
	return strings.Join(parts, " + ")
}

func monomialTermString(vars *VariableSet, m Monomial, coeff float64) string {
	if len(m) == 0 {
		return fmt.Sprintf("%g", coeff)
	}
	ids := make([]int, 0, len(m))
	for v := range m {
		ids = append(ids, int(v))
	}
	sort.Ints(ids)
	var b strings.Builder
	if coeff != 1 {
		fmt.Fprintf(&b, "%g*", coeff)
	}
	for i, id := range ids {
		if i > 0 {
			b.WriteByte('*')
		}
		e := m[VariableID(id)]
		if e == 1 {
			b.WriteString(vars.Name(VariableID(id)))
		} else {
			fmt.Fprintf(&b, "%s^%d", vars.Name(VariableID(id)), e)
		}
	}
	return b.String()
}

// PolynomialVector is an ordered sequence of polynomials of length n,
// one per state variable, per spec §3.
type PolynomialVector []*Polynomial

// Clone returns an independent deep copy.
func (pv PolynomialVector) Clone() PolynomialVector {
	out := make(PolynomialVector, len(pv))
	for i, p := range pv {
		out[i] = p.Clone()
	}
	return out
}

func (pv PolynomialVector) String() string {
	parts := make([]string, len(pv))
	for i, p := range pv {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// IdentityVector returns the polynomial vector (state-var_1, ...,
// state-var_n), the seed p0 used for the driver's first flowpipe
// (spec §4.7).
func IdentityVector(vars *VariableSet) PolynomialVector {
	ids := vars.StateVars()
	out := make(PolynomialVector, len(ids))
	for i, id := range ids {
		out[i] = VarPolynomial(vars, id)
	}
	return out
}
