// Package builder provides internal helper functions used by the expression
// constructors.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Every draw goes through the caller's *rand.Rand; no hidden sources.
//   - Working pools are local to one call and never shared.
package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mathgen/expr"
)

// intBetween returns a uniform integer in the closed interval [lo, hi].
//
// Complexity: O(1).
func intBetween(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

// coin returns true with probability 1/2.
func coin(rng *rand.Rand) bool {
	return rng.Intn(2) == 1
}

// halfEvenPoolSize computes round((|low| + |high|) / 2) with ties to even,
// the pool-size rule of the coefficient sampler.
func halfEvenPoolSize(low, high int) int {
	return int(math.RoundToEven(float64(absInt(low)+absInt(high)) / 2))
}

// absInt returns |v|.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sampleDistinct draws k distinct integers from [low, high) using Floyd's
// algorithm. ok is false when the range holds fewer than k values or k < 1.
//
// Complexity: O(k) time and space, independent of the range width.
func sampleDistinct(rng *rand.Rand, low, high, k int) (values []int, ok bool) {
	n := high - low
	if k < 1 || k > n {
		return nil, false
	}

	var (
		j, t int
		seen = make(map[int]struct{}, k)
	)
	values = make([]int, 0, k)
	for j = n - k; j < n; j++ {
		t = rng.Intn(j + 1)
		if _, dup := seen[t]; dup {
			t = j
		}
		seen[t] = struct{}{}
		values = append(values, low+t)
	}

	return values, true
}

// nonEmptySubsets enumerates every non-empty subset of vars, ordered by size
// and then lexicographically by position (x, y, xy for vars "xy").
//
// Complexity: O(2^n · n) time and space; n ≤ MaxIndeterminates.
func nonEmptySubsets(vars []expr.Variable) [][]expr.Variable {
	n := len(vars)
	out := make([][]expr.Variable, 0, (1<<n)-1)
	idx := make([]int, 0, n)

	var combine func(start, size int)
	combine = func(start, size int) {
		if len(idx) == size {
			subset := make([]expr.Variable, size)
			for i, p := range idx {
				subset[i] = vars[p]
			}
			out = append(out, subset)
			return
		}
		for p := start; p < n; p++ {
			idx = append(idx, p)
			combine(p+1, size)
			idx = idx[:len(idx)-1]
		}
	}

	for size := 1; size <= n; size++ {
		combine(0, size)
	}

	return out
}

// cloneVars copies an indeterminate set so results never alias caller slices.
func cloneVars(vars []expr.Variable) []expr.Variable {
	if vars == nil {
		return nil
	}
	out := make([]expr.Variable, len(vars))
	copy(out, vars)
	return out
}
