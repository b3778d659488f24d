package core

import "fmt"

// DivisionByZeroContainingIntervalError is returned whenever an interval
// division's divisor contains 0, per spec §4.1/§7. It carries the
// offending divisor so callers (and pkg/tmflow's structured error type)
// can report it.
type DivisionByZeroContainingIntervalError struct {
	Divisor Interval
}

func (e *DivisionByZeroContainingIntervalError) Error() string {
	return fmt.Sprintf("division by interval %s, which contains 0", e.Divisor)
}

func errDivisionByZeroContainingInterval(divisor Interval) error {
	return &DivisionByZeroContainingIntervalError{Divisor: divisor}
}

// NegativeOrderError is returned when a truncation order < 0 is passed
// into a polynomial operation, per spec §4.2/§7.
type NegativeOrderError struct {
	Order int
}

func (e *NegativeOrderError) Error() string {
	return fmt.Sprintf("truncation order must be >= 0, got %d", e.Order)
}

func errNegativeOrder(order int) error {
	return &NegativeOrderError{Order: order}
}

// ContractivenessFailureError is returned by the contractive remainder
// search when max_tries widening attempts are exhausted without finding
// a contractive remainder, per spec §4.6/§7. I0Last is the last tested
// candidate (ContractiveSearch never widens after its last try), I1Last
// is its Picard image.
type ContractivenessFailureError struct {
	I0Last, I1Last IntervalVector
	Tries          int
}

func (e *ContractivenessFailureError) Error() string {
	return fmt.Sprintf(
		"no contractive remainder found in %d tries; last candidate was\nI0 = %s\nI1 = %s\n==> is I1 a subset of I0, componentwise?",
		e.Tries, e.I0Last, e.I1Last,
	)
}

func errContractivenessFailure(i0Last, i1Last IntervalVector, tries int) error {
	return &ContractivenessFailureError{I0Last: i0Last, I1Last: i1Last, Tries: tries}
}

// InvalidInputError flags a precondition violation on the flowpipe
// driver's inputs (length mismatches, malformed time horizon), spec §7.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func errInvalidInput(reason string, args ...any) error {
	return &InvalidInputError{Reason: fmt.Sprintf(reason, args...)}
}

// BadScaleError flags widen_scale <= 1.
type BadScaleError struct {
	Scale float64
}

func (e *BadScaleError) Error() string {
	return fmt.Sprintf("widen_scale must be > 1, got %g", e.Scale)
}

func errBadScale(scale float64) error {
	return &BadScaleError{Scale: scale}
}

// BadTriesError flags max_tries < 1.
type BadTriesError struct {
	Tries int
}

func (e *BadTriesError) Error() string {
	return fmt.Sprintf("max_tries must be >= 1, got %d", e.Tries)
}

func errBadTries(tries int) error {
	return &BadTriesError{Tries: tries}
}
