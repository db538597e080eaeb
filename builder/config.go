// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are documented; no package globals are mutated.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng        = nil                  (constructors return ErrNeedRandSource)
//   • low/high   = -10 / 10             (coefficient range [low, high))
//   • logger     = slog.Default()       (fallback diagnostics)
//   • metrics    = nil                  (no-op)
//   • menu       = x, xy, xyz, wxyz     (Random* indeterminate sets)
//   • maxDegree  = 5                    (Random* degree ∈ [1, maxDegree])
//
// AI-Hints:
//   • Set WithSeed for reproducible expressions in tests and worksheets.
//   • A *rand.Rand is not goroutine-safe: give each goroutine its own config.

package builder

import (
	"log/slog"
	"math/rand" // RNG for every stochastic choice

	"github.com/katalvlaran/mathgen/expr"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers); the RNG,
// logger and metrics are shared pointers.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness available”.
	rng *rand.Rand

	// Coefficient bounds; order-insensitive, swapped at sampling time.
	low  int
	high int

	// Diagnostics for recoverable sampling shortfalls.
	logger *slog.Logger
	// Optional Prometheus counters; nil disables.
	metrics *Metrics

	// Indeterminate sets offered to the Random* constructors.
	menu [][]expr.Variable
	// Upper bound of the degree drawn by the Random* constructors.
	maxDegree int
}

// defaultIndeterminateMenu is the fixed menu used by the random-configuration
// entry points: {x, xy, xyz, wxyz}.
var defaultIndeterminateMenu = []string{"x", "xy", "xyz", "wxyz"}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		low:       DefaultLowBound,
		high:      DefaultHighBound,
		logger:    slog.Default(),
		metrics:   nil,
		menu:      menuOf(defaultIndeterminateMenu),
		maxDegree: DefaultMaxDegree,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// menuOf converts compact symbol strings into indeterminate sets.
func menuOf(sets []string) [][]expr.Variable {
	out := make([][]expr.Variable, len(sets))
	for i, s := range sets {
		out[i] = expr.Vars(s)
	}
	return out
}
