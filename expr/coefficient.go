// SPDX-License-Identifier: MIT
// Package: mathgen/expr
//
// coefficient.go - signed rational coefficient in display form.
//
// Representation:
//   - Sign is kept apart from the magnitude so renderers can print "+ 3/4" or "- 2".
//   - Den == 0 means "no denominator" (whole number); a present denominator is never 0.
//   - Zero is {Plus, 0, 0}. Values are not reduced (2/4 stays 2/4).

package expr

import (
	"math/big"
	"strconv"
)

// Sign is the display sign of a coefficient.
type Sign byte

const (
	// Plus marks a non-negative coefficient.
	Plus Sign = '+'
	// Minus marks a negative coefficient.
	Minus Sign = '-'
)

// String returns "+" or "-".
func (s Sign) String() string { return string(rune(s)) }

// signOf maps an integer to its display sign; zero is Plus.
func signOf(v int) Sign {
	if v < 0 {
		return Minus
	}
	return Plus
}

// abs returns |v|.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Coefficient is a signed numerator with an optional denominator.
type Coefficient struct {
	Sign Sign
	Num  int // magnitude of the numerator, ≥ 0
	Den  int // magnitude of the denominator; 0 means absent
}

// Int returns the whole-number coefficient v.
func Int(v int) Coefficient {
	return Coefficient{Sign: signOf(v), Num: abs(v)}
}

// Frac returns n/d with the sign of the quotient. It panics if d == 0, since a
// zero denominator is a programmer error rather than a runtime condition.
func Frac(n, d int) Coefficient {
	if d == 0 {
		panic("expr: Frac with zero denominator")
	}
	s := Plus
	if (n < 0) != (d < 0) && n != 0 {
		s = Minus
	}
	return Coefficient{Sign: s, Num: abs(n), Den: abs(d)}
}

// Zero returns the zero coefficient.
func Zero() Coefficient { return Coefficient{Sign: Plus} }

// One returns the coefficient +1.
func One() Coefficient { return Coefficient{Sign: Plus, Num: 1} }

// IsZero reports whether the coefficient has the value zero.
func (c Coefficient) IsZero() bool { return c.Num == 0 }

// IsFraction reports whether a denominator is present.
func (c Coefficient) IsFraction() bool { return c.Den != 0 }

// Denominator returns the denominator and whether one is present.
func (c Coefficient) Denominator() (int, bool) { return c.Den, c.Den != 0 }

// WithMagnitude returns a copy with the numerator replaced, sign and
// denominator preserved.
func (c Coefficient) WithMagnitude(n int) Coefficient {
	c.Num = abs(n)
	return c
}

// Rat returns the exact value as a big.Rat for external evaluators.
func (c Coefficient) Rat() *big.Rat {
	d := int64(1)
	if c.Den != 0 {
		d = int64(c.Den)
	}
	n := int64(c.Num)
	if c.Sign == Minus {
		n = -n
	}
	return big.NewRat(n, d)
}

// Kind implements Node.
func (Coefficient) Kind() Kind { return KindCoefficient }

// Children implements Node; a coefficient is a leaf.
func (Coefficient) Children() []Node { return nil }

// String renders "+3", "-1/4", "+0".
func (c Coefficient) String() string {
	s := c.Sign.String() + strconv.Itoa(c.Num)
	if c.Den != 0 {
		s += "/" + strconv.Itoa(c.Den)
	}
	return s
}

func (Coefficient) node() {}
