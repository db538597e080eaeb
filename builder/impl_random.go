// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// impl_random.go - random-configuration entry points (re-roll constructors).
//
// Each Random* constructor self-selects its parameters and then delegates to
// the fixed-parameter builder. It returns a fresh node every time; nothing is
// updated in place.
//
//   - degree ∈ [1, maxDegree] (default 5), indeterminates from the menu
//     (default x, xy, xyz, wxyz).
//   - Algebraic additionally draws the root index from rootVariants.
//   - ClosedForm flips trig, log and expo, then flips whether the base is
//     algebraic; an algebraic base also flips rational and proper.

package builder

import "github.com/katalvlaran/mathgen/expr"

// RandomPolynomial returns a Constructor that re-rolls degree and
// indeterminates, then builds a polynomial.
func RandomPolynomial() Constructor {
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodPolynomial, cfg); err != nil {
			return nil, err
		}
		degree := drawDegree(cfg)
		vars := drawIndeterminates(cfg)
		poly, err := buildPolynomial(cfg, degree, vars)
		if err != nil {
			return nil, err
		}
		return poly, nil
	}
}

// RandomAlgebraic returns a Constructor that re-rolls degree, indeterminates
// and root index, keeping the rational and proper flags.
func RandomAlgebraic(rational, proper bool) Constructor {
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodAlgebraic, cfg); err != nil {
			return nil, err
		}
		degree := drawDegree(cfg)
		vars := drawIndeterminates(cfg)
		shape := AlgebraicShape{Root: drawRoot(cfg), Rational: rational, Proper: proper}
		return buildAlgebraic(cfg, degree, vars, shape)
	}
}

// RandomClosedForm returns a Constructor that re-rolls every closed-form
// parameter, including whether the base is algebraic.
func RandomClosedForm() Constructor {
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodClosedForm, cfg); err != nil {
			return nil, err
		}
		degree := drawDegree(cfg)
		vars := drawIndeterminates(cfg)
		set := FunctionSet{Trig: coin(cfg.rng), Log: coin(cfg.rng), Expo: coin(cfg.rng)}

		var shape *AlgebraicShape
		if coin(cfg.rng) {
			shape = &AlgebraicShape{Root: drawRoot(cfg)}
			shape.Rational = coin(cfg.rng)
			shape.Proper = coin(cfg.rng)
		}

		cf, err := buildClosedForm(cfg, degree, vars, set, shape)
		if err != nil {
			return nil, err
		}
		return cf, nil
	}
}
