// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` with a Method* prefix.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrNeedRandSource indicates that a constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Every expression constructor is stochastic, so every one checks this.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadDegree indicates a degree (polynomial degree, algebraic degree, or
// trig power) below the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrBadDegree) { /* report invalid degree */ }.
var ErrBadDegree = errors.New("builder: invalid degree")

// ErrNoIndeterminates indicates an empty indeterminate set where terms or a
// function operand are required (degree > 0, closed forms).
var ErrNoIndeterminates = errors.New("builder: indeterminate set is empty")

// ErrDuplicateIndeterminate indicates a repeated or empty symbol in the
// indeterminate set.
var ErrDuplicateIndeterminate = errors.New("builder: duplicate or empty indeterminate")

// ErrTooManyIndeterminates indicates more than MaxIndeterminates symbols.
var ErrTooManyIndeterminates = errors.New("builder: too many indeterminates")

// ErrBadRoot indicates a root index below MinRoot.
var ErrBadRoot = errors.New("builder: invalid root index")

// ErrBadBase indicates a logarithm base that is neither 0 (natural) nor ≥ MinLogBase.
var ErrBadBase = errors.New("builder: invalid logarithm base")

// ErrDegenerateRange indicates that the coefficient bounds cannot supply a
// candidate pool even after the fallback widening (e.g., low == high).
// Usage: if errors.Is(err, ErrDegenerateRange) { /* widen WithBounds */ }.
var ErrDegenerateRange = errors.New("builder: degenerate coefficient range")

// ErrBoundsTooWide indicates a coefficient bound outside ±MaxBoundMagnitude.
var ErrBoundsTooWide = errors.New("builder: coefficient bounds too wide")

// ErrConstructFailed indicates a structural failure of the build itself, such
// as a nil constructor or a missing operand for a forced wrapper.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates that a value meant for configuration was
// rejected where a panic is not appropriate (e.g., NewMetrics(nil)).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps a sentinel with the given method context.
// It returns an error of the form "<Method>: <formatted message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	// Build the inner message using fmt.Sprintf
	inner := fmt.Sprintf(format, args...)
	// Prefix with the method name and keep the sentinel for errors.Is
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority when several validations fail:
//    • ErrNeedRandSource       : checked first.
//    • ErrBadDegree / ErrBadRoot / ErrBadBase : scalar parameters next.
//    • ErrNoIndeterminates / ErrDuplicateIndeterminate / ErrTooManyIndeterminates.
//    • ErrBoundsTooWide / ErrDegenerateRange : surface on the first coefficient draw.
//
// 2) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error strings.
