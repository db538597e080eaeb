// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible expressions.
//   • WithBounds accepts reversed bounds; a degenerate range (low == high) is
//     reported at build time as ErrDegenerateRange, not here.

package builder

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/mathgen/expr"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before expression construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for the builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBounds sets the coefficient range [low, high). Order-insensitive.
// Panics if either bound lies outside ±MaxBoundMagnitude.
func WithBounds(low, high int) BuilderOption {
	if err := validateBounds("WithBounds", low, high); err != nil {
		panic(fmt.Sprintf("builder: WithBounds(%d, %d): %v", low, high, err))
	}
	return func(c *builderConfig) {
		c.low, c.high = low, high
	}
}

// WithLogger routes sampling diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithMetrics attaches Prometheus counters. A nil m disables metrics.
func WithMetrics(m *Metrics) BuilderOption {
	return func(c *builderConfig) {
		c.metrics = m
	}
}

// WithIndeterminateMenu replaces the indeterminate sets offered to the
// Random* constructors. Each entry is a compact symbol string ("xy").
// Panics on an empty menu or an entry with empty/duplicate symbols.
func WithIndeterminateMenu(sets ...string) BuilderOption {
	if len(sets) == 0 {
		panic("builder: WithIndeterminateMenu()")
	}
	for _, s := range sets {
		if err := validateVars("WithIndeterminateMenu", expr.Vars(s), true); err != nil {
			panic(fmt.Sprintf("builder: WithIndeterminateMenu(%q): %v", s, err))
		}
	}
	menu := menuOf(sets)
	return func(c *builderConfig) {
		c.menu = menu
	}
}

// WithMaxDegree sets the upper bound of the degree drawn by the Random*
// constructors. Panics if d < 1.
func WithMaxDegree(d int) BuilderOption {
	if d < minRandomDegree {
		panic("builder: WithMaxDegree(d<1)")
	}
	return func(c *builderConfig) {
		c.maxDegree = d
	}
}
