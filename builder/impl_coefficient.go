// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// impl_coefficient.go - coefficient sampler.
//
// Canonical model:
//   - A working pool of round((|low|+|high|)/2) distinct integers is drawn from [low, high).
//   - If that pool cannot be drawn (too small a range, size rounding to 0) or
//     holds no non-zero value, bounds are multiplied by FallbackFactor and
//     FallbackPoolSize values are drawn instead. This is logged and counted,
//     never returned as an error unless the widened range is still empty.
//   - Outcome kind per call, drawn from 5 equally likely slots:
//       slots 2,3,4 (60%) whole number: the pool value or 0, equally likely;
//       slot 0      (20%) unit fraction 1/d, d ≠ 0; |d| == 1 collapses to +1;
//       slot 1      (20%) fraction n/d, d ≠ 0; n == 0 → 0; |n| == |d| → +1.
//   - "Resample until non-zero" is realized as a uniform draw over the pool's
//     non-zero members, which has the same distribution and always terminates.
//
// Contract:
//   - Both bounds lie within ±MaxBoundMagnitude (ErrBoundsTooWide otherwise).
//   - Denominators are never zero.
//   - The first element of a coefficient list is never zero (magnitude forced to 1).
//
// Complexity: O(pool size) per coefficient.

package builder

import (
	"log/slog"

	"github.com/katalvlaran/mathgen/expr"
)

// Outcome slots of a single coefficient draw.
const (
	coeffSlots       = 5
	slotUnitFraction = 0
	slotFraction     = 1
)

// Coefficient forms, used as metric label values.
const (
	formInteger      = "integer"
	formUnitFraction = "unit_fraction"
	formFraction     = "fraction"
)

// coefficientPool is the per-call working pool of candidate integers.
type coefficientPool struct {
	values  []int
	nonZero []int
}

// drawPool samples k distinct candidates from [low, high); ok is false when
// the range is too small or every candidate is zero.
func drawPool(cfg builderConfig, low, high, k int) (coefficientPool, bool) {
	values, ok := sampleDistinct(cfg.rng, low, high, k)
	if !ok {
		return coefficientPool{}, false
	}
	nonZero := make([]int, 0, len(values))
	for _, v := range values {
		if v != 0 {
			nonZero = append(nonZero, v)
		}
	}
	if len(nonZero) == 0 {
		return coefficientPool{}, false
	}

	return coefficientPool{values: values, nonZero: nonZero}, true
}

// newCoefficientPool resolves the working pool for [low, high), applying the
// fallback widening once when needed.
func newCoefficientPool(cfg builderConfig, low, high int) (coefficientPool, error) {
	if err := validateBounds(MethodCoefficient, low, high); err != nil {
		return coefficientPool{}, err
	}
	if low > high {
		low, high = high, low
	}

	size := halfEvenPoolSize(low, high)
	if pool, ok := drawPool(cfg, low, high, size); ok {
		return pool, nil
	}

	// Recoverable shortfall: widen and retry once with fixed parameters.
	wideLow, wideHigh := low*FallbackFactor, high*FallbackFactor
	if cfg.logger != nil {
		cfg.logger.Warn("coefficient range too small, widening",
			slog.Int("low", low),
			slog.Int("high", high),
			slog.Int("pool", size),
			slog.Int("widened_low", wideLow),
			slog.Int("widened_high", wideHigh),
		)
	}
	cfg.metrics.observeFallback()

	if pool, ok := drawPool(cfg, wideLow, wideHigh, FallbackPoolSize); ok {
		return pool, nil
	}

	return coefficientPool{}, builderErrorf(MethodCoefficient, ErrDegenerateRange,
		"range [%d,%d) cannot supply %d distinct values, widened [%d,%d) cannot supply %d",
		low, high, size, wideLow, wideHigh, FallbackPoolSize)
}

// pick returns a uniformly chosen pool member (with replacement).
func (p coefficientPool) pick(cfg builderConfig) int {
	return p.values[cfg.rng.Intn(len(p.values))]
}

// pickNonZero returns a uniformly chosen non-zero pool member.
func (p coefficientPool) pickNonZero(cfg builderConfig) int {
	return p.nonZero[cfg.rng.Intn(len(p.nonZero))]
}

// sampleCoefficient draws one coefficient from [low, high).
func sampleCoefficient(cfg builderConfig, low, high int) (expr.Coefficient, error) {
	pool, err := newCoefficientPool(cfg, low, high)
	if err != nil {
		return expr.Coefficient{}, err
	}

	var (
		c    expr.Coefficient
		form string
	)
	switch slot := cfg.rng.Intn(coeffSlots); slot {
	case slotUnitFraction:
		form = formUnitFraction
		d := pool.pickNonZero(cfg)
		if absInt(d) == 1 {
			c = expr.One()
		} else {
			c = expr.Frac(1, d)
		}
	case slotFraction:
		form = formFraction
		n := pool.pick(cfg)
		d := pool.pickNonZero(cfg)
		switch {
		case n == 0:
			c = expr.Zero()
		case absInt(n) == absInt(d):
			c = expr.One()
		default:
			c = expr.Frac(n, d)
		}
	default:
		form = formInteger
		v := 0
		if coin(cfg.rng) {
			v = pool.pick(cfg)
		}
		c = expr.Int(v)
	}
	cfg.metrics.observeCoefficient(form)

	return c, nil
}

// sampleCoefficients draws degree+1 coefficients; the leading one is never zero.
func sampleCoefficients(cfg builderConfig, degree, low, high int) ([]expr.Coefficient, error) {
	if err := validateDegree(MethodCoefficients, degree, MinPolynomialDegree); err != nil {
		return nil, err
	}

	coeffs := make([]expr.Coefficient, degree+1)
	for i := range coeffs {
		c, err := sampleCoefficient(cfg, low, high)
		if err != nil {
			return nil, err
		}
		if i == 0 && c.IsZero() {
			c = c.WithMagnitude(1)
		}
		coeffs[i] = c
	}

	return coeffs, nil
}

// Coefficient returns a Constructor producing one coefficient from [low, high).
func Coefficient(low, high int) Constructor {
	return func(cfg builderConfig) (expr.Node, error) {
		if err := requireRand(MethodCoefficient, cfg); err != nil {
			return nil, err
		}
		c, err := sampleCoefficient(cfg, low, high)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// SampleCoefficient resolves opts and draws one coefficient from [low, high).
// It never panics; see ErrNeedRandSource, ErrBoundsTooWide and ErrDegenerateRange.
func SampleCoefficient(low, high int, opts ...BuilderOption) (expr.Coefficient, error) {
	cfg := newBuilderConfig(opts...)
	if err := requireRand(MethodCoefficient, cfg); err != nil {
		return expr.Coefficient{}, err
	}
	return sampleCoefficient(cfg, low, high)
}

// SampleCoefficients resolves opts and draws degree+1 coefficients from
// [low, high) with a non-zero leading element.
func SampleCoefficients(degree, low, high int, opts ...BuilderOption) ([]expr.Coefficient, error) {
	cfg := newBuilderConfig(opts...)
	if err := requireRand(MethodCoefficients, cfg); err != nil {
		return nil, err
	}
	return sampleCoefficients(cfg, degree, low, high)
}
