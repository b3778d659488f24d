package tmflow

import (
	"errors"
	"fmt"

	"github.com/hybberish/tmflow/internal/tmflow/core"
)

// ErrorCode identifies which of spec §7's error kinds an Error
// represents. Modeled closely on the teacher's
// pkg/vybium-starks-vm/errors.go ErrorCode/VMError pattern.
type ErrorCode int

const (
	// ErrUnknown represents an error this package did not originate or
	// recognize.
	ErrUnknown ErrorCode = iota

	// ErrInvalidInput flags length mismatches, a time horizon not
	// starting at 0, or a negative horizon.
	ErrInvalidInput

	// ErrNegativeOrder flags a truncation order < 0.
	ErrNegativeOrder

	// ErrBadScale flags widen_scale <= 1.
	ErrBadScale

	// ErrBadTries flags max_tries < 1.
	ErrBadTries

	// ErrContractivenessFailure flags an exhausted widening loop. The
	// carrying Error's I0Last/I1Last fields are populated.
	ErrContractivenessFailure

	// ErrDivisionByZeroContainingInterval flags an interval division
	// whose divisor contains 0.
	ErrDivisionByZeroContainingInterval
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidInput:
		return "invalid_input"
	case ErrNegativeOrder:
		return "negative_order"
	case ErrBadScale:
		return "bad_scale"
	case ErrBadTries:
		return "bad_tries"
	case ErrContractivenessFailure:
		return "contractiveness_failure"
	case ErrDivisionByZeroContainingInterval:
		return "division_by_zero_containing_interval"
	default:
		return "unknown"
	}
}

// Error is tmflow's single structured error type, covering every spec §7
// error kind. Callers distinguish kinds via Code, or via errors.Is
// against a sentinel Error built with the matching Code (Is compares by
// Code alone, ignoring Message/Cause, matching the teacher's VMError.Is).
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error

	// I0Last, I1Last are populated only for ErrContractivenessFailure:
	// the last tested remainder candidate and its Picard image, per
	// spec §4.6/§7.
	I0Last, I1Last core.IntervalVector
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("tmflow: %s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("tmflow: %s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// wrapError translates an error from internal/tmflow/core into the
// public *Error type, preserving the original as Cause so
// errors.Unwrap/As still reach it.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var divByZero *core.DivisionByZeroContainingIntervalError
	if errors.As(err, &divByZero) {
		return &Error{Code: ErrDivisionByZeroContainingInterval, Message: divByZero.Error(), Cause: err}
	}

	var negOrder *core.NegativeOrderError
	if errors.As(err, &negOrder) {
		return &Error{Code: ErrNegativeOrder, Message: negOrder.Error(), Cause: err}
	}

	var badScale *core.BadScaleError
	if errors.As(err, &badScale) {
		return &Error{Code: ErrBadScale, Message: badScale.Error(), Cause: err}
	}

	var badTries *core.BadTriesError
	if errors.As(err, &badTries) {
		return &Error{Code: ErrBadTries, Message: badTries.Error(), Cause: err}
	}

	var contractiveness *core.ContractivenessFailureError
	if errors.As(err, &contractiveness) {
		return &Error{
			Code:    ErrContractivenessFailure,
			Message: contractiveness.Error(),
			Cause:   err,
			I0Last:  contractiveness.I0Last,
			I1Last:  contractiveness.I1Last,
		}
	}

	var invalidInput *core.InvalidInputError
	if errors.As(err, &invalidInput) {
		return &Error{Code: ErrInvalidInput, Message: invalidInput.Error(), Cause: err}
	}

	return &Error{Code: ErrUnknown, Message: err.Error(), Cause: err}
}
