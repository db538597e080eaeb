// Package builder provides validation helpers to enforce
// parameter contracts in expression constructors.
//
// Each function returns a sentinel wrapped via builderErrorf
// when its precondition is violated.
package builder

import "github.com/katalvlaran/mathgen/expr"

// requireRand ensures the resolved config carries an RNG.
//
// Complexity: O(1) time and space.
func requireRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "rng is required")
	}

	return nil
}

// validateDegree ensures that the provided degree is ≥ min.
// Returns "<Method>: degree must be ≥ <min>, got <got>: builder: invalid degree" otherwise.
//
// Complexity: O(1) time and space.
func validateDegree(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadDegree, "degree must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateRoot enforces root ≥ MinRoot.
func validateRoot(method string, root int) error {
	if root < MinRoot {
		return builderErrorf(method, ErrBadRoot, "root must be ≥ %d, got %d", MinRoot, root)
	}

	return nil
}

// validateBase enforces base == 0 (natural) or base ≥ MinLogBase.
func validateBase(method string, base int) error {
	if base != 0 && base < MinLogBase {
		return builderErrorf(method, ErrBadBase, "base must be 0 or ≥ %d, got %d", MinLogBase, base)
	}

	return nil
}

// validateBounds enforces -MaxBoundMagnitude ≤ low, high ≤ MaxBoundMagnitude.
// Comparing against both limits avoids negating math.MinInt.
func validateBounds(method string, low, high int) error {
	for _, v := range [...]int{low, high} {
		if v < -MaxBoundMagnitude || v > MaxBoundMagnitude {
			return builderErrorf(method, ErrBoundsTooWide,
				"bounds [%d,%d) exceed ±%d", low, high, MaxBoundMagnitude)
		}
	}

	return nil
}

// validateVars checks an indeterminate set: no empty or repeated symbols, at
// most MaxIndeterminates entries, and non-empty when required is true.
//
// Complexity: O(n) time and space.
func validateVars(method string, vars []expr.Variable, required bool) error {
	if len(vars) == 0 {
		if required {
			return builderErrorf(method, ErrNoIndeterminates, "at least one indeterminate is required")
		}
		return nil
	}
	if len(vars) > MaxIndeterminates {
		return builderErrorf(method, ErrTooManyIndeterminates, "%d indeterminates exceed %d", len(vars), MaxIndeterminates)
	}

	seen := make(map[expr.Variable]struct{}, len(vars))
	for _, v := range vars {
		if v == "" {
			return builderErrorf(method, ErrDuplicateIndeterminate, "empty symbol in %v", vars)
		}
		if _, dup := seen[v]; dup {
			return builderErrorf(method, ErrDuplicateIndeterminate, "%q repeated in %v", v, vars)
		}
		seen[v] = struct{}{}
	}

	return nil
}
