// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(con, opts...). Resolves cfg, runs con once.
//   - All public factories are listed here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into a by-value builderConfig (no global state).
//   - Determinism: same constructor, options and seed ⇒ identical expressions.
//   - Safety: never panic; constructors return sentinel errors.
//
// AI-Hints (practical):
//   - Use WithSeed(...) to freeze every stochastic path.
//   - Random* constructors are pure re-rolls: call Build again for a new expression.
//   - A builderConfig is not safe for concurrent use (shared *rand.Rand); one
//     Build call per goroutine with its own seed, see package problemset.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mathgen/expr"
)

// Constructor produces one expression from the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Draw every random value from cfg.rng, in a fixed order.
//   - Never retain or mutate the node after returning it.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(cfg builderConfig) (expr.Node, error)

// Build resolves the builder configuration from opts and runs con.
// Any constructor error is wrapped with the context "Build: %w".
//
// Complexity:
//   - Resolving options: O(len(opts)) time, O(1) space.
//   - Running con: the cost documented on the factory.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors wrapped via %w; branch with errors.Is against the
//     builder sentinels (ErrNeedRandSource, ErrBadDegree, ...).
func Build(con Constructor, opts ...BuilderOption) (expr.Node, error) {
	if con == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", MethodBuild, ErrConstructFailed)
	}

	cfg := newBuilderConfig(opts...)
	n, err := con(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	if n == nil {
		return nil, fmt.Errorf("%s: constructor returned nil: %w", MethodBuild, ErrConstructFailed)
	}
	cfg.metrics.observeExpression(n.Kind())

	return n, nil
}

// buildAs runs Build and asserts the concrete node type.
func buildAs[T expr.Node](con Constructor, opts []BuilderOption) (T, error) {
	var zero T
	n, err := Build(con, opts...)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected %s node: %w", MethodBuild, n.Kind(), ErrConstructFailed)
	}
	return t, nil
}

// BuildPolynomial is Build(Polynomial(degree, vars), opts...) with a typed result.
func BuildPolynomial(degree int, vars []expr.Variable, opts ...BuilderOption) (*expr.Polynomial, error) {
	return buildAs[*expr.Polynomial](Polynomial(degree, vars), opts)
}

// BuildAlgebraic is Build(Algebraic(degree, vars, shape), opts...). The result
// is an *expr.Quotient for rational shapes and an *expr.Call otherwise.
func BuildAlgebraic(degree int, vars []expr.Variable, shape AlgebraicShape, opts ...BuilderOption) (expr.Node, error) {
	return Build(Algebraic(degree, vars, shape), opts...)
}

// BuildClosedForm is Build(ClosedForm(degree, vars, set, shape), opts...) with a typed result.
func BuildClosedForm(degree int, vars []expr.Variable, set FunctionSet, shape *AlgebraicShape, opts ...BuilderOption) (*expr.ClosedForm, error) {
	return buildAs[*expr.ClosedForm](ClosedForm(degree, vars, set, shape), opts)
}

// =============================================================================
// Expression factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Fail with ErrNeedRandSource when no RNG is configured.
//   - Draw in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// Coefficient draws one coefficient from [low, high) (impl_coefficient.go).
// Complexity: O(|low|+|high|).
//func Coefficient(low, high int) Constructor

// NthRoot, Trig, Log and Exponential wrap an Operand (impl_functions.go).
// Complexity: O(1) draws plus the operand supplied by the caller.
//func NthRoot(root int, op Operand) Constructor
//func Trig(op Operand, spec TrigSpec) Constructor
//func Log(op Operand, base int) Constructor
//func Exponential(op Operand) Constructor

// Polynomial builds a degree-d polynomial over vars (impl_polynomial.go).
// Complexity: O(2^n·n + d·n) for n indeterminates.
//func Polynomial(degree int, vars []expr.Variable) Constructor

// Algebraic builds a quotient or radical of polynomials (impl_algebraic.go).
// Complexity: two polynomial builds.
//func Algebraic(degree int, vars []expr.Variable, shape AlgebraicShape) Constructor

// ClosedForm combines a base with trig/log/exp factors (impl_closeform.go).
// Complexity: one base build plus ≤ 3 wrappers.
//func ClosedForm(degree int, vars []expr.Variable, set FunctionSet, shape *AlgebraicShape) Constructor

// RandomPolynomial, RandomAlgebraic and RandomClosedForm re-roll their own
// parameters before building (impl_random.go).
//func RandomPolynomial() Constructor
//func RandomAlgebraic(rational, proper bool) Constructor
//func RandomClosedForm() Constructor
