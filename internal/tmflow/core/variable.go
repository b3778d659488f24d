// Package core implements the Taylor Model integration engine: interval
// arithmetic, multivariate polynomial algebra, the Taylor expander, the
// Picard operator, the contractive remainder search, and the flowpipe
// driver.
package core

import "fmt"

// VariableKind distinguishes the three roles a Variable can play in a
// Taylor Model expression: a state variable of the ODE, the distinguished
// time variable t, or the remainder placeholder s used during Picard
// refinement.
type VariableKind int

const (
	// StateVar is one of the n ODE state variables (x, y, ...).
	StateVar VariableKind = iota
	// TimeVar is the distinguished time variable t.
	TimeVar
	// RemainderVar is the remainder placeholder s.
	RemainderVar
)

func (k VariableKind) String() string {
	switch k {
	case StateVar:
		return "state"
	case TimeVar:
		return "time"
	case RemainderVar:
		return "remainder"
	default:
		return "unknown"
	}
}

// VariableID is a small integer identity assigned to every Variable
// known to a VariableSet. Monomials key their exponents by VariableID
// rather than by name, so polynomial arithmetic never hashes strings.
type VariableID int

// Variable is a symbolic identifier drawn from the fixed ordered list of
// state-vars, t and s described in spec §3. Variables are immutable once
// registered in a VariableSet.
type Variable struct {
	ID   VariableID
	Name string
	Kind VariableKind
}

func (v Variable) String() string {
	return v.Name
}

// VariableSet is the ordered, immutable registry of all variables known
// to one integration problem: the n state-vars (in order), followed by
// t, followed by s. It is built once via NewVariableSet and never
// mutated afterward -- every component in this package receives a
// *VariableSet by reference and treats it as read-only.
type VariableSet struct {
	vars    []Variable
	byName  map[string]VariableID
	nStates int
	t       VariableID
	s       VariableID
}

// NewVariableSet builds the registry for an ODE with the given ordered
// state-variable names. It appends the reserved "t" and "s" variables
// after the state-vars, matching the fixed ordered list {x1,...,xn,t,s}
// from spec §3.
func NewVariableSet(stateNames []string) (*VariableSet, error) {
	if len(stateNames) == 0 {
		return nil, fmt.Errorf("variable set needs at least one state variable")
	}

	seen := make(map[string]bool, len(stateNames)+2)
	for _, n := range stateNames {
		if n == "" {
			return nil, fmt.Errorf("state variable name must not be empty")
		}
		if seen[n] {
			return nil, fmt.Errorf("duplicate state variable name %q", n)
		}
		seen[n] = true
	}
	for _, reserved := range []string{"t", "s"} {
		if seen[reserved] {
			return nil, fmt.Errorf("state variable name %q collides with the reserved %s variable", reserved, reserved)
		}
	}

	vs := &VariableSet{
		vars:    make([]Variable, 0, len(stateNames)+2),
		byName:  make(map[string]VariableID, len(stateNames)+2),
		nStates: len(stateNames),
	}
	for i, n := range stateNames {
		v := Variable{ID: VariableID(i), Name: n, Kind: StateVar}
		vs.vars = append(vs.vars, v)
		vs.byName[n] = v.ID
	}
	vs.t = VariableID(len(stateNames))
	vs.vars = append(vs.vars, Variable{ID: vs.t, Name: "t", Kind: TimeVar})
	vs.byName["t"] = vs.t

	vs.s = VariableID(len(stateNames) + 1)
	vs.vars = append(vs.vars, Variable{ID: vs.s, Name: "s", Kind: RemainderVar})
	vs.byName["s"] = vs.s

	return vs, nil
}

// NumStates returns n, the number of ODE state variables.
func (vs *VariableSet) NumStates() int { return vs.nStates }

// T returns the time variable's ID.
func (vs *VariableSet) T() VariableID { return vs.t }

// S returns the remainder placeholder variable's ID.
func (vs *VariableSet) S() VariableID { return vs.s }

// StateVars returns the ordered IDs of the n state variables.
func (vs *VariableSet) StateVars() []VariableID {
	ids := make([]VariableID, vs.nStates)
	for i := range ids {
		ids[i] = VariableID(i)
	}
	return ids
}

// Lookup resolves a variable name to its ID.
func (vs *VariableSet) Lookup(name string) (VariableID, bool) {
	id, ok := vs.byName[name]
	return id, ok
}

// Name returns the variable's name for a given ID.
func (vs *VariableSet) Name(id VariableID) string {
	return vs.vars[id].Name
}

// Kind returns the variable's kind for a given ID.
func (vs *VariableSet) Kind(id VariableID) VariableKind {
	return vs.vars[id].Kind
}
