// SPDX-License-Identifier: MIT
// Package: mathgen/builder
//
// metrics.go - optional Prometheus counters for the builders.
//
// Contract:
//   - A nil *Metrics is a valid no-op; every observe* method is nil-safe.
//   - NewMetrics registers on the given Registerer and reuses collectors that
//     are already registered under the same descriptors.

package builder

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mathgen/expr"
)

// Metric names and labels.
const (
	metricsNamespace = "mathgen"

	labelKind = "kind"
	labelForm = "form"
)

// Metrics counts generated expressions, sampled coefficients and sampling fallbacks.
type Metrics struct {
	expressions  *prometheus.CounterVec
	coefficients *prometheus.CounterVec
	fallbacks    prometheus.Counter
}

// NewMetrics creates the builder counters and registers them on reg.
//
// Errors: ErrOptionViolation for a nil reg; registration errors other than
// AlreadyRegisteredError are returned as is.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		return nil, builderErrorf("NewMetrics", ErrOptionViolation, "registerer is nil")
	}

	m := &Metrics{
		expressions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "expressions_generated_total",
			Help:      "Expressions returned by Build, by root node kind.",
		}, []string{labelKind}),
		coefficients: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "coefficients_sampled_total",
			Help:      "Coefficients drawn by the sampler, by form.",
		}, []string{labelForm}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sampling_fallbacks_total",
			Help:      "Coefficient pools that needed the widened fallback range.",
		}),
	}

	var err error
	if m.expressions, err = register(reg, m.expressions); err != nil {
		return nil, err
	}
	if m.coefficients, err = register(reg, m.coefficients); err != nil {
		return nil, err
	}
	if m.fallbacks, err = register(reg, m.fallbacks); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, returning the existing collector when an identical
// one is already registered.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (m *Metrics) observeExpression(k expr.Kind) {
	if m == nil {
		return
	}
	m.expressions.WithLabelValues(k.String()).Inc()
}

func (m *Metrics) observeCoefficient(form string) {
	if m == nil {
		return
	}
	m.coefficients.WithLabelValues(form).Inc()
}

func (m *Metrics) observeFallback() {
	if m == nil {
		return
	}
	m.fallbacks.Inc()
}
