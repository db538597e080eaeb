package builder

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mathgen/expr"
)

func TestHalfEvenPoolSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		low, high, want int
	}{
		{-10, 10, 10},
		{1, 10, 6},  // 5.5 → 6
		{-3, 4, 4},  // 3.5 → 4
		{-5, 0, 2},  // 2.5 → 2
		{0, 1, 0},   // 0.5 → 0
		{5, 5, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, halfEvenPoolSize(tc.low, tc.high), "halfEvenPoolSize(%d,%d)", tc.low, tc.high)
	}
}

func TestSampleDistinct(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		got, ok := sampleDistinct(rng, -4, 6, 10)
		require.True(t, ok)
		require.Len(t, got, 10)
		seen := map[int]bool{}
		for _, v := range got {
			assert.GreaterOrEqual(t, v, -4)
			assert.Less(t, v, 6)
			assert.False(t, seen[v], "duplicate %d in %v", v, got)
			seen[v] = true
		}
	}

	_, ok := sampleDistinct(rng, 0, 3, 4)
	assert.False(t, ok, "k larger than the range")
	_, ok = sampleDistinct(rng, 0, 3, 0)
	assert.False(t, ok, "k < 1")
	_, ok = sampleDistinct(rng, 5, 5, 1)
	assert.False(t, ok, "empty range")
}

func TestNonEmptySubsets(t *testing.T) {
	t.Parallel()

	got := nonEmptySubsets(expr.Vars("xyz"))
	want := [][]expr.Variable{
		{"x"}, {"y"}, {"z"},
		{"x", "y"}, {"x", "z"}, {"y", "z"},
		{"x", "y", "z"},
	}
	assert.Equal(t, want, got)
	assert.Len(t, nonEmptySubsets(expr.Vars("wxyz")), 15)
	assert.Empty(t, nonEmptySubsets(nil))
}

func TestDrawRoot_Distribution(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSeed(11))

	const draws = 89000
	counts := map[int]int{}
	for i := 0; i < draws; i++ {
		r := drawRoot(cfg)
		require.GreaterOrEqual(t, r, 2)
		require.LessOrEqual(t, r, 10)
		counts[r]++
	}
	high := 0
	for r := 5; r <= 10; r++ {
		high += counts[r]
	}
	// Expected 54000 / 20000 / 10000 / 5000; allow a generous band.
	assert.InDelta(t, 54000, counts[2], 1500)
	assert.InDelta(t, 20000, counts[3], 1000)
	assert.InDelta(t, 10000, counts[4], 800)
	assert.InDelta(t, 5000, high, 600)
}

func TestDrawDegreeAndIndeterminates(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSeed(3), WithMaxDegree(3), WithIndeterminateMenu("ab"))

	for i := 0; i < 100; i++ {
		d := drawDegree(cfg)
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 3)
		assert.Equal(t, []expr.Variable{"a", "b"}, drawIndeterminates(cfg))
	}
}

func TestCoefficientPool_FallbackLogsAndRecovers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg := newBuilderConfig(WithSeed(1), WithLogger(logger))

	// round((0+1)/2) = 0 ⇒ unusable pool ⇒ widened to [0,5) with 5 values.
	pool, err := newCoefficientPool(cfg, 0, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, pool.values)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, pool.nonZero)

	out := buf.String()
	assert.True(t, strings.Contains(out, "level=WARN"), out)
	assert.True(t, strings.Contains(out, "widened_high=5"), out)
}

func TestCoefficientPool_DegenerateRange(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSeed(1), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	_, err := newCoefficientPool(cfg, 5, 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDegenerateRange), err.Error())
}

func TestCoefficientPool_BoundMagnitude(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSeed(1))

	cases := []struct {
		name      string
		low, high int
	}{
		{"low below", -MaxBoundMagnitude - 1, 10},
		{"high above", -10, MaxBoundMagnitude + 1},
		{"huge symmetric", -20_000_000, 20_000_000},
		{"min int", math.MinInt, 0},
	}
	for _, tc := range cases {
		_, err := newCoefficientPool(cfg, tc.low, tc.high)
		require.Error(t, err, tc.name)
		assert.True(t, errors.Is(err, ErrBoundsTooWide), "%s: %v", tc.name, err)
	}

	pool, err := newCoefficientPool(cfg, MaxBoundMagnitude, -MaxBoundMagnitude)
	require.NoError(t, err)
	assert.Len(t, pool.values, MaxBoundMagnitude)
}

func TestCoefficientPool_SwapsBounds(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSeed(9))

	pool, err := newCoefficientPool(cfg, 10, -10)
	require.NoError(t, err)
	assert.Len(t, pool.values, 10)
	for _, v := range pool.values {
		assert.GreaterOrEqual(t, v, -10)
		assert.Less(t, v, 10)
	}
}

func TestRealizeDegree(t *testing.T) {
	t.Parallel()

	terms := []expr.Term{
		{{Var: "x", Exp: 1}, {Var: "y", Exp: 0}},
		{{Var: "y", Exp: 1}},
	}
	realizeDegree(terms, 3)
	assert.Equal(t, 3, terms[0].ExponentSum())
	assert.Equal(t, expr.Term{{Var: "x", Exp: 3}, {Var: "y", Exp: 0}}, terms[0])
	assert.Equal(t, 1, terms[1].ExponentSum(), "other slots untouched")

	realized := []expr.Term{{{Var: "x", Exp: 0}}, {{Var: "x", Exp: 2}}}
	realizeDegree(realized, 2)
	assert.Equal(t, 0, realized[0].ExponentSum(), "no correction when already realized")
}

func TestPickTerms_ReusesSingleton(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSeed(5))

	terms := pickTerms(cfg, 4, nonEmptySubsets(expr.Vars("x")))
	require.Len(t, terms, 4)
	for _, term := range terms {
		require.Len(t, term, 1)
		assert.Equal(t, expr.Variable("x"), term[0].Var)
		assert.GreaterOrEqual(t, term[0].Exp, 0)
		assert.LessOrEqual(t, term[0].Exp, 4)
	}
}

func TestPickTerms_ConsumesPool(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSeed(5))

	// "xy" has 3 subsets; 2 picks must be distinct.
	terms := pickTerms(cfg, 2, nonEmptySubsets(expr.Vars("xy")))
	require.Len(t, terms, 2)
	assert.NotEqual(t, varsOf(terms[0]), varsOf(terms[1]))
}

func varsOf(t expr.Term) []expr.Variable {
	out := make([]expr.Variable, len(t))
	for i, p := range t {
		out[i] = p.Var
	}
	return out
}
