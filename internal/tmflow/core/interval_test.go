package core

import (
	"math"
	"testing"
)

func TestNewInterval(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		i, err := NewInterval(-1, 1)
		if err != nil {
			t.Fatalf("NewInterval returned error: %v", err)
		}
		if i.Lo != -1 || i.Hi != 1 {
			t.Errorf("NewInterval(-1, 1) = %v, want [-1, 1]", i)
		}
	})

	t.Run("lo exceeds hi", func(t *testing.T) {
		if _, err := NewInterval(1, -1); err == nil {
			t.Fatal("expected error for lo > hi, got nil")
		}
	})
}

func TestIntervalArithmetic(t *testing.T) {
	a, _ := NewInterval(1, 2)
	b, _ := NewInterval(3, 4)

	t.Run("Add", func(t *testing.T) {
		sum := a.Add(b)
		if sum.Lo > 4 || sum.Hi < 6 {
			t.Errorf("Add(%v, %v) = %v, want enclosure of [4, 6]", a, b, sum)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		diff := a.Sub(b)
		if diff.Lo > -3 || diff.Hi < -1 {
			t.Errorf("Sub(%v, %v) = %v, want enclosure of [-3, -1]", a, b, diff)
		}
	})

	t.Run("Mul straddling zero", func(t *testing.T) {
		straddle, _ := NewInterval(-2, 3)
		prod := straddle.Mul(straddle)
		if prod.Lo > -6 || prod.Hi < 9 {
			t.Errorf("Mul(%v, %v) = %v, want enclosure of [-6, 9]", straddle, straddle, prod)
		}
	})

	t.Run("Div by zero-containing interval fails", func(t *testing.T) {
		zeroish, _ := NewInterval(-1, 1)
		if _, err := a.Div(zeroish); err == nil {
			t.Fatal("expected DivisionByZeroContainingInterval error, got nil")
		}
	})

	t.Run("Div sound", func(t *testing.T) {
		quot, err := b.Div(a)
		if err != nil {
			t.Fatalf("Div returned error: %v", err)
		}
		if quot.Lo > 1.5 || quot.Hi < 4 {
			t.Errorf("Div(%v, %v) = %v, want enclosure of [1.5, 4]", b, a, quot)
		}
	})

	t.Run("Pow even exponent straddling zero stays non-negative", func(t *testing.T) {
		straddle, _ := NewInterval(-2, 1)
		sq, err := straddle.Pow(2)
		if err != nil {
			t.Fatalf("Pow returned error: %v", err)
		}
		if sq.Lo < 0 {
			t.Errorf("Pow(%v, 2) = %v, want Lo >= 0", straddle, sq)
		}
		if sq.Hi < 4 {
			t.Errorf("Pow(%v, 2) = %v, want Hi >= 4", straddle, sq)
		}
	})

	t.Run("Pow negative exponent fails", func(t *testing.T) {
		if _, err := a.Pow(-1); err == nil {
			t.Fatal("expected error for negative exponent, got nil")
		}
	})
}

func TestIntervalSubset(t *testing.T) {
	outer, _ := NewInterval(-2, 2)
	inner, _ := NewInterval(-1, 1)

	if !inner.Subset(outer) {
		t.Errorf("%v should be a subset of %v", inner, outer)
	}
	if outer.Subset(inner) {
		t.Errorf("%v should not be a subset of %v", outer, inner)
	}
}

func TestIntervalWiden(t *testing.T) {
	i, _ := NewInterval(-1, 2)
	widened := i.Widen(2.0)

	if widened.Lo > -2 || widened.Hi < 4 {
		t.Errorf("Widen(2.0) = %v, want enclosure of [-2, 4]", widened)
	}
}

func TestIntervalVectorOps(t *testing.T) {
	v, err := IntervalVector{Point(1), Point(2)}.Add(IntervalVector{Point(3), Point(4)})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if v[0].Lo > 4 || v[0].Hi < 4 || math.Abs(v[0].Lo-4) > 1e-9 || math.Abs(v[0].Hi-4) > 1e-9 ||
		v[1].Lo > 6 || v[1].Hi < 6 || math.Abs(v[1].Lo-6) > 1e-9 || math.Abs(v[1].Hi-6) > 1e-9 {
		t.Errorf("Add = %v, want tight enclosures of [4, 6]", v)
	}

	if _, err := (IntervalVector{Point(1)}).Add(IntervalVector{Point(1), Point(2)}); err == nil {
		t.Fatal("expected length-mismatch error, got nil")
	}

	sub := IntervalVector{Point(1), Point(1)}
	sup := IntervalVector{{Lo: 0, Hi: 2}, {Lo: 0, Hi: 2}}
	if !sub.Subset(sup) {
		t.Errorf("%v should be a subset of %v", sub, sup)
	}
}
