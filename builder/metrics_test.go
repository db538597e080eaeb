package builder

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathgen/expr"
)

func TestMetrics_CountsBuildsAndCoefficients(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = Build(Polynomial(2, expr.Vars("x")), WithSeed(1), WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.expressions.WithLabelValues(expr.KindPolynomial.String())))
	sampled := 0.0
	for _, form := range []string{formInteger, formUnitFraction, formFraction} {
		sampled += testutil.ToFloat64(m.coefficients.WithLabelValues(form))
	}
	assert.Equal(t, 3.0, sampled, "degree+1 coefficients")
	assert.Equal(t, 0.0, testutil.ToFloat64(m.fallbacks))
}

func TestMetrics_CountsFallback(t *testing.T) {
	t.Parallel()

	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	quiet := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	_, err = SampleCoefficient(0, 1, WithSeed(1), WithMetrics(m), WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks))
}

func TestMetrics_ReusesRegisteredCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	first, err := NewMetrics(reg)
	require.NoError(t, err)
	second, err := NewMetrics(reg)
	require.NoError(t, err)

	first.observeFallback()
	second.observeFallback()
	assert.Equal(t, 2.0, testutil.ToFloat64(first.fallbacks))
}

func TestMetrics_NilSafety(t *testing.T) {
	t.Parallel()

	_, err := NewMetrics(nil)
	assert.True(t, errors.Is(err, ErrOptionViolation))

	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeExpression(expr.KindCall)
		m.observeCoefficient(formInteger)
		m.observeFallback()
	})
}
