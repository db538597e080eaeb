// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// impl_polynomial.go - multivariate polynomial of a declared degree.
//
// Canonical model:
//   1) Sample degree+1 coefficients from the configured bounds (leading ≠ 0).
//   2) Candidate terms are all non-empty subsets of the indeterminate set.
//   3) Pick degree subsets: while the pool has more than one member, each
//      pick removes its subset; a single remaining member is reused.
//   4) Every indeterminate of every picked subset gets an exponent in [0, degree].
//   5) If no slot has exponent sum == degree, slot 0 becomes var₀^degree
//      (its other exponents are zeroed).
//   6) Coefficients 0..degree-1 pair with the slots; the last is the constant.
//
// Contract:
//   - degree ≥ 0; degree > 0 requires a non-empty, duplicate-free set.
//   - Degree 0 yields a polynomial with no terms, only the constant.
//   - len(Terms) == degree and some term reaches the degree.
//
// Complexity: O(2^n·n + degree·n) time and space for n indeterminates.

package builder

import "github.com/katalvlaran/mathgen/expr"

// buildPolynomial realizes the canonical model above.
func buildPolynomial(cfg builderConfig, degree int, vars []expr.Variable) (*expr.Polynomial, error) {
	if err := validateDegree(MethodPolynomial, degree, MinPolynomialDegree); err != nil {
		return nil, err
	}
	if err := validateVars(MethodPolynomial, vars, degree > 0); err != nil {
		return nil, err
	}

	coeffs, err := sampleCoefficients(cfg, degree, cfg.low, cfg.high)
	if err != nil {
		return nil, err
	}
	poly := &expr.Polynomial{
		Degree:   degree,
		Vars:     cloneVars(vars),
		Constant: coeffs[degree],
	}
	if degree == 0 {
		return poly, nil
	}

	terms := pickTerms(cfg, degree, nonEmptySubsets(vars))
	realizeDegree(terms, degree)

	poly.Terms = make([]expr.Monomial, degree)
	for i := range terms {
		poly.Terms[i] = expr.Monomial{Coeff: coeffs[i], Term: terms[i]}
	}
	return poly, nil
}

// pickTerms selects degree subsets from pool (consuming it down to one member)
// and gives each indeterminate an exponent in [0, degree].
func pickTerms(cfg builderConfig, degree int, pool [][]expr.Variable) []expr.Term {
	terms := make([]expr.Term, degree)
	for i := range terms {
		var subset []expr.Variable
		if len(pool) > 1 {
			j := cfg.rng.Intn(len(pool))
			subset = pool[j]
			pool = append(pool[:j], pool[j+1:]...)
		} else {
			subset = pool[0]
		}

		term := make(expr.Term, len(subset))
		for k, v := range subset {
			term[k] = expr.Power{Var: v, Exp: intBetween(cfg.rng, 0, degree)}
		}
		terms[i] = term
	}
	return terms
}

// realizeDegree makes sure some term has exponent sum == degree.
func realizeDegree(terms []expr.Term, degree int) {
	for _, t := range terms {
		if t.ExponentSum() == degree {
			return
		}
	}
	first := terms[0]
	first[0].Exp = degree
	for k := 1; k < len(first); k++ {
		first[k].Exp = 0
	}
}

// Polynomial returns a Constructor for a polynomial of the given degree over
// vars, with coefficients drawn from the configured bounds.
//
// Errors: ErrNeedRandSource, ErrBadDegree, ErrNoIndeterminates,
// ErrDuplicateIndeterminate, ErrTooManyIndeterminates, ErrDegenerateRange.
func Polynomial(degree int, vars []expr.Variable) Constructor {
	vars = cloneVars(vars)
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodPolynomial, cfg); err != nil {
			return nil, err
		}
		poly, err := buildPolynomial(cfg, degree, vars)
		if err != nil {
			return nil, err
		}
		return poly, nil
	}
}
