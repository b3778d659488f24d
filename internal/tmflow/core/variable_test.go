package core

import "testing"

func TestNewVariableSetOrdering(t *testing.T) {
	vs, err := NewVariableSet([]string{"x", "y", "z"})
	if err != nil {
		t.Fatalf("NewVariableSet failed: %v", err)
	}
	if vs.NumStates() != 3 {
		t.Errorf("NumStates() = %d, want 3", vs.NumStates())
	}

	xID, ok := vs.Lookup("x")
	if !ok || xID != 0 {
		t.Errorf("Lookup(x) = (%d, %v), want (0, true)", xID, ok)
	}
	if vs.T() != 3 {
		t.Errorf("T() = %d, want 3 (right after the 3 state vars)", vs.T())
	}
	if vs.S() != 4 {
		t.Errorf("S() = %d, want 4 (right after t)", vs.S())
	}
	if vs.Kind(vs.T()) != TimeVar {
		t.Errorf("Kind(T()) = %v, want TimeVar", vs.Kind(vs.T()))
	}
	if vs.Kind(xID) != StateVar {
		t.Errorf("Kind(x) = %v, want StateVar", vs.Kind(xID))
	}
}

func TestNewVariableSetRejectsReservedNames(t *testing.T) {
	for _, name := range []string{"t", "s"} {
		if _, err := NewVariableSet([]string{name}); err == nil {
			t.Errorf("expected error for reserved state variable name %q, got nil", name)
		}
	}
}

func TestNewVariableSetRejectsDuplicatesAndEmpty(t *testing.T) {
	if _, err := NewVariableSet([]string{"x", "x"}); err == nil {
		t.Error("expected error for duplicate state variable name, got nil")
	}
	if _, err := NewVariableSet([]string{}); err == nil {
		t.Error("expected error for an empty state variable list, got nil")
	}
	if _, err := NewVariableSet([]string{""}); err == nil {
		t.Error("expected error for an empty-string variable name, got nil")
	}
}

func TestVariableSetStateVars(t *testing.T) {
	vs, err := NewVariableSet([]string{"x", "y"})
	if err != nil {
		t.Fatalf("NewVariableSet failed: %v", err)
	}
	got := vs.StateVars()
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("StateVars() = %v, want [0 1]", got)
	}
}
