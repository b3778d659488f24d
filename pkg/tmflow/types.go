package tmflow

import (
	"github.com/hybberish/tmflow/internal/tmflow/core"
	"github.com/hybberish/tmflow/internal/tmflow/utils"
)

// Interval is a sound floating-point enclosure [Lo, Hi].
type Interval = core.Interval

// IntervalVector is an ordered, fixed-length vector of intervals.
type IntervalVector = core.IntervalVector

// Polynomial is a sparse multivariate polynomial over the module's
// fixed variable list.
type Polynomial = core.Polynomial

// PolynomialVector is an ordered sequence of polynomials, one per state
// variable.
type PolynomialVector = core.PolynomialVector

// VariableID is a small integer identity for a registered Variable.
type VariableID = core.VariableID

// VariableSet is the ordered, immutable registry of state-vars, t and s
// for one integration problem.
type VariableSet = core.VariableSet

// Flowpipe is a Taylor Model whose domain is the initial state box times
// one time sub-interval.
type Flowpipe = core.Flowpipe

// Box is an axis-aligned interval-vector enclosure of a Flowpipe.
type Box = core.Box

// Config bundles the tunable integration parameters from spec §6.
type Config = utils.Config

// NewInterval builds an interval, failing if lo > hi.
func NewInterval(lo, hi float64) (Interval, error) {
	return core.NewInterval(lo, hi)
}

// NewVariableSet builds the ordered variable registry for an ODE with
// the given state-variable names.
func NewVariableSet(stateNames []string) (*VariableSet, error) {
	return core.NewVariableSet(stateNames)
}

// DefaultConfig returns the configuration used by the worked example in
// spec §8.
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}

// Var returns the degree-1 polynomial equal to the named variable.
func Var(vars *VariableSet, name string) (*Polynomial, error) {
	id, ok := vars.Lookup(name)
	if !ok {
		return nil, &Error{Code: ErrInvalidInput, Message: "unknown variable " + name}
	}
	return core.VarPolynomial(vars, id), nil
}

// Const returns the constant polynomial c.
func Const(vars *VariableSet, c float64) *Polynomial {
	return core.ConstPolynomial(vars, c)
}

// Add returns p+q.
func Add(p, q *Polynomial) *Polynomial { return core.Add(p, q) }

// Sub returns p-q.
func Sub(p, q *Polynomial) *Polynomial { return core.Sub(p, q) }

// Mul returns p*q.
func Mul(p, q *Polynomial) *Polynomial { return core.Mul(p, q) }

// ScalarMul returns c*p.
func ScalarMul(c float64, p *Polynomial) *Polynomial { return core.ScalarMul(c, p) }

// Pow raises p to a non-negative integer power.
func Pow(p *Polynomial, exp int) (*Polynomial, error) { return core.PolyPow(p, exp) }
