// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// impl_algebraic.go - rational and radical expressions over polynomials.
//
// Canonical model (Q has the full degree, P is the companion):
//   - Rational, root > 1:  P = root-th root(polynomial of degree), never reduced;
//     the radicand is a free operand, so one time in three it is a number in [1,10).
//   - Rational, root == 1: P = polynomial of degree uniform in [0, degree-1].
//   - Proper:   P / Q.   Improper: Q / P (the degree reversal of proper).
//   - Not rational: root-th root(polynomial of degree), no quotient; the
//     polynomial is always the radicand.
//
// Contract:
//   - degree ≥ MinAlgebraicDegree, root ≥ MinRoot, non-empty indeterminates.
//   - With root == 1 a proper quotient has deg(Num) < deg(Den), an improper
//     one deg(Num) > deg(Den).

package builder

import "github.com/katalvlaran/mathgen/expr"

// AlgebraicShape selects the algebraic branch.
type AlgebraicShape struct {
	// Root is the radical index; 1 means no radical in the rational branches.
	Root int
	// Rational builds a quotient; otherwise a single radical.
	Rational bool
	// Proper puts the lower-degree side in the numerator; otherwise the denominator.
	Proper bool
}

// buildAlgebraic realizes the canonical model above.
func buildAlgebraic(cfg builderConfig, degree int, vars []expr.Variable, shape AlgebraicShape) (expr.Node, error) {
	if err := validateDegree(MethodAlgebraic, degree, MinAlgebraicDegree); err != nil {
		return nil, err
	}
	if err := validateRoot(MethodAlgebraic, shape.Root); err != nil {
		return nil, err
	}
	if err := validateVars(MethodAlgebraic, vars, true); err != nil {
		return nil, err
	}

	full, err := buildPolynomial(cfg, degree, vars)
	if err != nil {
		return nil, err
	}
	if !shape.Rational {
		root, err := nthRoot(cfg, shape.Root, Forced(full))
		if err != nil {
			return nil, err
		}
		return root, nil
	}

	companion, err := companionOf(cfg, degree, vars, shape.Root)
	if err != nil {
		return nil, err
	}
	if shape.Proper {
		return &expr.Quotient{Num: companion, Den: full}, nil
	}
	return &expr.Quotient{Num: full, Den: companion}, nil
}

// companionOf builds the other side of a quotient: a radical over a free
// same-degree polynomial when root > 1, else a strictly lower-degree polynomial.
func companionOf(cfg builderConfig, degree int, vars []expr.Variable, root int) (expr.Node, error) {
	if root > MinRoot {
		radicand, err := buildPolynomial(cfg, degree, vars)
		if err != nil {
			return nil, err
		}
		call, err := nthRoot(cfg, root, Free(radicand))
		if err != nil {
			return nil, err
		}
		return call, nil
	}

	lower := 0
	if degree > 1 {
		lower = cfg.rng.Intn(degree)
	}
	poly, err := buildPolynomial(cfg, lower, vars)
	if err != nil {
		return nil, err
	}
	return poly, nil
}

// Algebraic returns a Constructor for the algebraic branch selected by shape.
//
// Errors: ErrNeedRandSource, ErrBadDegree (degree < 1), ErrBadRoot, the
// indeterminate errors and ErrDegenerateRange.
func Algebraic(degree int, vars []expr.Variable, shape AlgebraicShape) Constructor {
	vars = cloneVars(vars)
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodAlgebraic, cfg); err != nil {
			return nil, err
		}
		return buildAlgebraic(cfg, degree, vars, shape)
	}
}
