package problemset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/mathgen/builder"
	"github.com/katalvlaran/mathgen/expr"
	"github.com/katalvlaran/mathgen/problemset"
)

// constants builds degree-0 polynomials over a tiny range: at most four
// distinct renderings (+1, +2, +1/2, +2/1).
func constants() (builder.Constructor, problemset.Option) {
	return builder.Polynomial(0, nil), problemset.WithBuilderOptions(builder.WithBounds(1, 3))
}

func TestGenerate_ValidAndIndexed(t *testing.T) {
	t.Parallel()

	set, err := problemset.Generate(context.Background(), 40, builder.RandomClosedForm(), problemset.WithSeed(9))
	require.NoError(t, err)
	require.Len(t, set, 40)

	ids := map[uuid.UUID]bool{}
	for i, p := range set {
		assert.Equal(t, i, p.Index)
		require.NoError(t, expr.Validate(p.Expr))
		assert.Equal(t, problemset.Fingerprint(p.Expr), p.Fingerprint)
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
	}
}

func TestGenerate_IndependentOfWorkers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	con := builder.RandomAlgebraic(true, true)
	one, err := problemset.Generate(ctx, 30, con, problemset.WithSeed(5), problemset.WithWorkers(1))
	require.NoError(t, err)
	many, err := problemset.Generate(ctx, 30, con, problemset.WithSeed(5), problemset.WithWorkers(8))
	require.NoError(t, err)

	if diff := cmp.Diff(one, many); diff != "" {
		t.Fatalf("worker count changed the batch (-1 worker +8 workers):\n%s", diff)
	}

	other, err := problemset.Generate(ctx, 30, con, problemset.WithSeed(6))
	require.NoError(t, err)
	assert.NotEqual(t, one[0].ID, other[0].ID, "different seeds, different ids")
}

func TestGenerate_Unique(t *testing.T) {
	t.Parallel()

	con, bounds := constants()
	set, err := problemset.Generate(context.Background(), 3, con, bounds, problemset.WithUnique(200))
	require.NoError(t, err)
	seen := map[uint64]bool{}
	for _, p := range set {
		assert.False(t, seen[p.Fingerprint], "duplicate %s", p.Expr)
		seen[p.Fingerprint] = true
	}

	_, err = problemset.Generate(context.Background(), 10, con, bounds, problemset.WithUnique(20))
	require.Error(t, err)
	assert.True(t, errors.Is(err, problemset.ErrTooManyDuplicates), err.Error())
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	_, err := problemset.Generate(context.Background(), 0, builder.RandomPolynomial())
	assert.True(t, errors.Is(err, problemset.ErrBadCount))

	_, err = problemset.Generate(context.Background(), 3, builder.Polynomial(-1, expr.Vars("x")))
	assert.True(t, errors.Is(err, builder.ErrBadDegree))

	_, err = problemset.Generate(context.Background(), 3, nil)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = problemset.Generate(ctx, 3, builder.RandomPolynomial())
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestProblems_MatchesGenerate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	con := builder.RandomPolynomial()
	set, err := problemset.Generate(ctx, 10, con, problemset.WithSeed(3))
	require.NoError(t, err)

	var lazy []problemset.Problem
	for p, err := range problemset.Problems(ctx, 10, con, problemset.WithSeed(3)) {
		require.NoError(t, err)
		lazy = append(lazy, p)
		if len(lazy) == 4 {
			break
		}
	}
	require.Len(t, lazy, 4)
	assert.Empty(t, cmp.Diff(set[:4], lazy))
}

func TestProblems_UniqueAndErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	con, bounds := constants()
	set, err := problemset.Generate(ctx, 3, con, bounds, problemset.WithUnique(200))
	require.NoError(t, err)

	i := 0
	for p, err := range problemset.Problems(ctx, 3, con, bounds, problemset.WithUnique(200)) {
		require.NoError(t, err)
		assert.Equal(t, set[i].Fingerprint, p.Fingerprint)
		i++
	}
	assert.Equal(t, 3, i)

	for _, err := range problemset.Problems(ctx, 0, con) {
		assert.True(t, errors.Is(err, problemset.ErrBadCount))
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	calls := 0
	for _, err := range problemset.Problems(cancelled, 5, con) {
		calls++
		assert.True(t, errors.Is(err, context.Canceled))
	}
	assert.Equal(t, 1, calls)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { problemset.WithWorkers(0) })
	assert.Panics(t, func() { problemset.WithUnique(0) })
	assert.Panics(t, func() { problemset.WithTracer(nil) })
}

// TracingSuite checks the Generate span with an in-memory exporter.
type TracingSuite struct {
	suite.Suite
	exporter *tracetest.InMemoryExporter
	provider *sdktrace.TracerProvider
}

func (s *TracingSuite) SetupTest() {
	s.exporter = tracetest.NewInMemoryExporter()
	s.provider = sdktrace.NewTracerProvider(sdktrace.WithSyncer(s.exporter))
}

func (s *TracingSuite) TearDownTest() {
	s.Require().NoError(s.provider.Shutdown(context.Background()))
}

func (s *TracingSuite) attrs(span tracetest.SpanStub) map[attribute.Key]attribute.Value {
	out := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes {
		out[kv.Key] = kv.Value
	}
	return out
}

func (s *TracingSuite) TestSuccessSpan() {
	con, bounds := constants()
	_, err := problemset.Generate(context.Background(), 3, con, bounds,
		problemset.WithWorkers(2), problemset.WithUnique(200),
		problemset.WithTracer(s.provider.Tracer("test")))
	s.Require().NoError(err)

	spans := s.exporter.GetSpans()
	s.Require().Len(spans, 1)
	span := spans[0]
	s.Equal("problemset.generate", span.Name)
	s.Equal(codes.Ok, span.Status.Code)

	attrs := s.attrs(span)
	s.Equal(int64(3), attrs["problemset.count"].AsInt64())
	s.Equal(int64(2), attrs["problemset.workers"].AsInt64())
	s.True(attrs["problemset.unique"].AsBool())
	_, ok := attrs["problemset.rerolls"]
	s.True(ok, "rerolls recorded")
}

func (s *TracingSuite) TestErrorSpan() {
	_, err := problemset.Generate(context.Background(), 2, builder.Polynomial(-1, nil),
		problemset.WithTracer(s.provider.Tracer("test")))
	s.Require().Error(err)

	spans := s.exporter.GetSpans()
	s.Require().Len(spans, 1)
	s.Equal(codes.Error, spans[0].Status.Code)
	s.NotEmpty(spans[0].Events, "error recorded as event")
}

func TestTracingSuite(t *testing.T) {
	suite.Run(t, new(TracingSuite))
}
