// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// impl_closeform.go - polynomial/algebraic base combined with function factors.
//
// Canonical model:
//   1) Combinator from 4 equally likely slots: 0 → '*', 1 → '/', 2,3 → none.
//   2) Factors in the fixed order trig → log → exp, one per enabled family,
//      each wrapping the first indeterminate. No family enabled → one trig factor.
//   3) Base: Algebraic(shape) when a shape is given, else Polynomial.
//
// Factors are built before the base; the draw order is part of seed replay.

package builder

import "github.com/katalvlaran/mathgen/expr"

// Combinator slots.
const (
	combinatorSlots = 4
	slotMul         = 0
	slotDiv         = 1
)

// FunctionSet enables the function families of a closed form.
type FunctionSet struct {
	Trig bool
	Log  bool
	Expo bool
}

// Empty reports whether no family is enabled.
func (s FunctionSet) Empty() bool { return !s.Trig && !s.Log && !s.Expo }

// drawCombinator picks how the base joins its factors.
func drawCombinator(cfg builderConfig) expr.Combinator {
	switch cfg.rng.Intn(combinatorSlots) {
	case slotMul:
		return expr.CombineMul
	case slotDiv:
		return expr.CombineDiv
	default:
		return expr.CombineNone
	}
}

// buildFactors wraps v in one call per enabled family, trig → log → exp.
func buildFactors(cfg builderConfig, v expr.Variable, set FunctionSet) ([]*expr.Call, error) {
	if set.Empty() {
		set.Trig = true
	}

	factors := make([]*expr.Call, 0, 3)
	if set.Trig {
		c, err := trig(cfg, Forced(v), TrigSpec{})
		if err != nil {
			return nil, err
		}
		factors = append(factors, c)
	}
	if set.Log {
		c, err := logarithm(cfg, Forced(v), 0)
		if err != nil {
			return nil, err
		}
		factors = append(factors, c)
	}
	if set.Expo {
		c, err := exponential(cfg, Forced(v))
		if err != nil {
			return nil, err
		}
		factors = append(factors, c)
	}
	return factors, nil
}

// buildClosedForm realizes the canonical model above.
func buildClosedForm(cfg builderConfig, degree int, vars []expr.Variable, set FunctionSet, shape *AlgebraicShape) (*expr.ClosedForm, error) {
	minDegree := MinPolynomialDegree
	if shape != nil {
		minDegree = MinAlgebraicDegree
	}
	if err := validateDegree(MethodClosedForm, degree, minDegree); err != nil {
		return nil, err
	}
	if err := validateVars(MethodClosedForm, vars, true); err != nil {
		return nil, err
	}

	combinator := drawCombinator(cfg)
	factors, err := buildFactors(cfg, vars[0], set)
	if err != nil {
		return nil, err
	}

	var base expr.Node
	if shape != nil {
		base, err = buildAlgebraic(cfg, degree, vars, *shape)
	} else {
		base, err = buildPolynomial(cfg, degree, vars)
	}
	if err != nil {
		return nil, err
	}

	return &expr.ClosedForm{Base: base, Combinator: combinator, Factors: factors}, nil
}

// ClosedForm returns a Constructor for a closed form of the given degree. A
// nil shape uses a polynomial base; otherwise the algebraic branch of shape.
//
// Errors: ErrNeedRandSource, ErrBadDegree, ErrBadRoot, the indeterminate
// errors (the set must be non-empty) and ErrDegenerateRange.
func ClosedForm(degree int, vars []expr.Variable, set FunctionSet, shape *AlgebraicShape) Constructor {
	vars = cloneVars(vars)
	if shape != nil {
		s := *shape
		shape = &s
	}
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodClosedForm, cfg); err != nil {
			return nil, err
		}
		cf, err := buildClosedForm(cfg, degree, vars, set, shape)
		if err != nil {
			return nil, err
		}
		return cf, nil
	}
}
