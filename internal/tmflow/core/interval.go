package core

import (
	"fmt"
	"math"
)

// Interval is a sound enclosure [Lo, Hi] with Lo <= Hi. Endpoints may be
// +-Inf. Every arithmetic operation below rounds its result outward
// (Lo toward -Inf, Hi toward +Inf) so the returned interval always
// encloses the true Minkowski image of its operands, per spec §4.1.
type Interval struct {
	Lo, Hi float64
}

// NewInterval builds an interval, failing if lo > hi.
func NewInterval(lo, hi float64) (Interval, error) {
	if lo > hi {
		return Interval{}, fmt.Errorf("interval lower bound %g exceeds upper bound %g", lo, hi)
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

// Point returns the degenerate interval [v, v].
func Point(v float64) Interval {
	return Interval{Lo: v, Hi: v}
}

func roundDown(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Nextafter(v, math.Inf(-1))
}

func roundUp(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Nextafter(v, math.Inf(1))
}

// Width returns Hi - Lo.
func (i Interval) Width() float64 {
	return i.Hi - i.Lo
}

// Contains reports whether the scalar x lies in the interval.
func (i Interval) Contains(x float64) bool {
	return i.Lo <= x && x <= i.Hi
}

// Subset reports whether i is contained in other, componentwise on the
// endpoints: other.Lo <= i.Lo && i.Hi <= other.Hi.
func (i Interval) Subset(other Interval) bool {
	return other.Lo <= i.Lo && i.Hi <= other.Hi
}

// Add returns a sound enclosure of {a+b : a in i, b in j}.
func (i Interval) Add(j Interval) Interval {
	return Interval{Lo: roundDown(i.Lo + j.Lo), Hi: roundUp(i.Hi + j.Hi)}
}

// Sub returns a sound enclosure of {a-b : a in i, b in j}.
func (i Interval) Sub(j Interval) Interval {
	return Interval{Lo: roundDown(i.Lo - j.Hi), Hi: roundUp(i.Hi - j.Lo)}
}

// Neg returns -i.
func (i Interval) Neg() Interval {
	return Interval{Lo: -i.Hi, Hi: -i.Lo}
}

// Mul returns a sound enclosure of {a*b : a in i, b in j}.
func (i Interval) Mul(j Interval) Interval {
	candidates := [4]float64{i.Lo * j.Lo, i.Lo * j.Hi, i.Hi * j.Lo, i.Hi * j.Hi}
	lo, hi := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return Interval{Lo: roundDown(lo), Hi: roundUp(hi)}
}

// ScalarMul multiplies every point of i by the concrete scalar c.
func (i Interval) ScalarMul(c float64) Interval {
	if c >= 0 {
		return Interval{Lo: roundDown(c * i.Lo), Hi: roundUp(c * i.Hi)}
	}
	return Interval{Lo: roundDown(c * i.Hi), Hi: roundUp(c * i.Lo)}
}

// Div returns a sound enclosure of {a/b : a in i, b in j}. It fails with
// a DivisionByZeroContainingInterval-flavored error when j contains 0,
// since the reciprocal of an interval containing 0 is unbounded.
func (i Interval) Div(j Interval) (Interval, error) {
	if j.Contains(0) {
		return Interval{}, errDivisionByZeroContainingInterval(j)
	}
	candidates := [4]float64{i.Lo / j.Lo, i.Lo / j.Hi, i.Hi / j.Lo, i.Hi / j.Hi}
	lo, hi := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return Interval{Lo: roundDown(lo), Hi: roundUp(hi)}, nil
}

// Pow raises i to a non-negative integer power by repeated
// multiplication. For an even exp the lower bound is clamped at 0, since
// an even power is never negative, so the result stays tight even when i
// straddles 0.
func (i Interval) Pow(exp int) (Interval, error) {
	if exp < 0 {
		return Interval{}, fmt.Errorf("interval power exponent must be non-negative, got %d", exp)
	}
	if exp == 0 {
		return Point(1), nil
	}
	result := i
	for k := 1; k < exp; k++ {
		result = result.Mul(i)
	}
	if exp%2 == 0 && result.Lo < 0 {
		result.Lo = 0
	}
	return result, nil
}

// Widen multiplies both endpoints of i by scale (> 1), widening outward
// from the origin rather than from the interval's center -- this exact
// semantics is required by the contractive search's widening step
// (spec §4.6, Design Notes "Scaling widening semantics").
func (i Interval) Widen(scale float64) Interval {
	return Interval{Lo: roundDown(i.Lo * scale), Hi: roundUp(i.Hi * scale)}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g]", i.Lo, i.Hi)
}

// IntervalVector is an ordered, fixed-length vector of intervals, used
// both as a remainder vector (length n, one per state variable) and as a
// Box (axis-aligned enclosure, also length n).
type IntervalVector []Interval

// Subset reports whether every component of v is a subset of the
// corresponding component of other.
func (v IntervalVector) Subset(other IntervalVector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if !v[i].Subset(other[i]) {
			return false
		}
	}
	return true
}

// Widen widens every component by scale.
func (v IntervalVector) Widen(scale float64) IntervalVector {
	out := make(IntervalVector, len(v))
	for i, x := range v {
		out[i] = x.Widen(scale)
	}
	return out
}

// Add returns the componentwise sum of two equal-length vectors.
func (v IntervalVector) Add(other IntervalVector) (IntervalVector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("interval vector length mismatch: %d vs %d", len(v), len(other))
	}
	out := make(IntervalVector, len(v))
	for i := range v {
		out[i] = v[i].Add(other[i])
	}
	return out, nil
}

// Clone returns an independent copy.
func (v IntervalVector) Clone() IntervalVector {
	out := make(IntervalVector, len(v))
	copy(out, v)
	return out
}

func (v IntervalVector) String() string {
	s := "["
	for i, x := range v {
		if i > 0 {
			s += ", "
		}
		s += x.String()
	}
	return s + "]"
}
