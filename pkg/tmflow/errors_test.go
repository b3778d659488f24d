package tmflow

import (
	"errors"
	"testing"

	"github.com/hybberish/tmflow/internal/tmflow/core"
)

func TestWrapErrorTranslatesCoreErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{"division by zero containing interval", &core.DivisionByZeroContainingIntervalError{Divisor: core.Interval{Lo: -1, Hi: 1}}, ErrDivisionByZeroContainingInterval},
		{"negative order", &core.NegativeOrderError{Order: -1}, ErrNegativeOrder},
		{"bad scale", &core.BadScaleError{Scale: 0.5}, ErrBadScale},
		{"bad tries", &core.BadTriesError{Tries: 0}, ErrBadTries},
		{"contractiveness failure", &core.ContractivenessFailureError{Tries: 3}, ErrContractivenessFailure},
		{"invalid input", &core.InvalidInputError{Reason: "bad"}, ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := wrapError(tc.err)
			var e *Error
			if !errors.As(wrapped, &e) {
				t.Fatalf("wrapError(%v) did not produce a *Error", tc.err)
			}
			if e.Code != tc.code {
				t.Errorf("wrapError(%v).Code = %v, want %v", tc.err, e.Code, tc.code)
			}
			if !errors.Is(wrapped, tc.err) {
				t.Errorf("errors.Is(wrapped, original) = false, want true (Unwrap should expose the cause)")
			}
		})
	}
}

func TestWrapErrorNilIsNil(t *testing.T) {
	if wrapError(nil) != nil {
		t.Error("wrapError(nil) should return nil")
	}
}

func TestErrorIsComparesByCodeOnly(t *testing.T) {
	a := &Error{Code: ErrBadScale, Message: "first"}
	b := &Error{Code: ErrBadScale, Message: "second"}
	c := &Error{Code: ErrBadTries, Message: "first"}

	if !errors.Is(a, b) {
		t.Error("two *Error values with the same Code should satisfy errors.Is")
	}
	if errors.Is(a, c) {
		t.Error("two *Error values with different Codes should not satisfy errors.Is")
	}
}

func TestContractivenessFailurePreservesRemainderDiagnostics(t *testing.T) {
	core0 := &core.ContractivenessFailureError{
		I0Last: core.IntervalVector{{Lo: -1, Hi: 1}},
		I1Last: core.IntervalVector{{Lo: -2, Hi: 2}},
		Tries:  5,
	}
	wrapped := wrapError(core0)
	var e *Error
	if !errors.As(wrapped, &e) {
		t.Fatalf("wrapError did not produce a *Error")
	}
	if len(e.I0Last) != 1 || e.I0Last[0].Lo != -1 {
		t.Errorf("e.I0Last = %v, want the original failure's I0Last", e.I0Last)
	}
	if len(e.I1Last) != 1 || e.I1Last[0].Hi != 2 {
		t.Errorf("e.I1Last = %v, want the original failure's I1Last", e.I1Last)
	}
}
