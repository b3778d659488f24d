package core

import (
	"sort"
)

// Monomial maps a VariableID to its non-negative integer exponent.
// Variables absent from the map have exponent 0, per spec §3. The zero
// value (nil map) is the constant monomial 1.
type Monomial map[VariableID]int

// Degree returns the total degree: the sum of all exponents.
func (m Monomial) Degree() int {
	d := 0
	for _, e := range m {
		d += e
	}
	return d
}

// clone returns an independent copy with zero-exponent entries dropped.
func (m Monomial) clone() Monomial {
	out := make(Monomial, len(m))
	for v, e := range m {
		if e != 0 {
			out[v] = e
		}
	}
	return out
}

// mul returns the monomial product m*other (exponents add).
func (m Monomial) mul(other Monomial) Monomial {
	out := make(Monomial, len(m)+len(other))
	for v, e := range m {
		out[v] = e
	}
	for v, e := range other {
		out[v] += e
	}
	for v, e := range out {
		if e == 0 {
			delete(out, v)
		}
	}
	return out
}

// key returns a comparable, order-independent string key for use as a
// map key in Polynomial, since Go maps cannot be keyed by maps directly.
func (m Monomial) key() string {
	if len(m) == 0 {
		return ""
	}
	ids := make([]int, 0, len(m))
	for v, e := range m {
		if e != 0 {
			ids = append(ids, int(v))
		}
	}
	sort.Ints(ids)
	// Delimiting every id:exp pair ("#id:exp") keeps distinct exponent
	// tuples from colliding (e.g. {v1:12,v2:3} vs {v1:1,v2:23}).
	buf := make([]byte, 0, len(ids)*16)
	for _, id := range ids {
		e := m[VariableID(id)]
		buf = appendKeyPart(buf, id, e)
	}
	return string(buf)
}

func appendKeyPart(buf []byte, id, exp int) []byte {
	buf = append(buf, '#')
	buf = appendInt(buf, id)
	buf = append(buf, ':')
	buf = appendInt(buf, exp)
	return buf
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	end := len(buf) - 1
	for i, j := start, end; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}
