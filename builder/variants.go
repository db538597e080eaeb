// Package builder defines the weighted tables that drive the random-configuration
// constructors. These definitions are not exposed publicly but steer the draws
// in impl_random.go.
package builder

import "github.com/katalvlaran/mathgen/expr"

// rootVariant is one candidate of the weighted root-index distribution.
// When hi > lo the index is drawn uniformly from [lo, hi]; otherwise it is lo.
type rootVariant struct {
	// cumWeight is the cumulative weight up to and including this candidate.
	cumWeight int
	// lo and hi delimit the candidate's root indices (inclusive).
	lo, hi int
}

// rootVariants holds the root-index distribution, cumulative weights 5/15/35/89:
//
//	uniform 5..10  5/89
//	4             10/89
//	3             20/89
//	2             54/89
var rootVariants = []rootVariant{
	{cumWeight: 5, lo: 5, hi: 10},
	{cumWeight: 15, lo: 4, hi: 4},
	{cumWeight: 35, lo: 3, hi: 3},
	{cumWeight: 89, lo: 2, hi: 2},
}

// rootTotalWeight is the last cumulative weight of rootVariants.
var rootTotalWeight = rootVariants[len(rootVariants)-1].cumWeight

// drawRoot samples a root index from rootVariants.
//
// Complexity: O(len(rootVariants)).
func drawRoot(cfg builderConfig) int {
	r := cfg.rng.Intn(rootTotalWeight)
	for _, v := range rootVariants {
		if r < v.cumWeight {
			if v.hi > v.lo {
				return intBetween(cfg.rng, v.lo, v.hi)
			}
			return v.lo
		}
	}
	// Unreachable: r < rootTotalWeight.
	return rootVariants[len(rootVariants)-1].lo
}

// drawDegree samples the random-configuration degree in [1, cfg.maxDegree].
func drawDegree(cfg builderConfig) int {
	return intBetween(cfg.rng, minRandomDegree, cfg.maxDegree)
}

// drawIndeterminates picks one set from the configured menu.
func drawIndeterminates(cfg builderConfig) []expr.Variable {
	return cloneVars(cfg.menu[cfg.rng.Intn(len(cfg.menu))])
}
