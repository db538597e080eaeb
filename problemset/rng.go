// Package problemset - RNG utilities for per-problem streams.
//
// This file centralizes deterministic random generation for batch generation.
//
// Goals:
//   - Determinism: same batch seed ⇒ identical problems for any worker count.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every problem attempt owns its stream.
package problemset

import "math/rand"

// defaultBatchSeed is the fixed seed used when callers pass seed==0.
const defaultBatchSeed int64 = 1

// normalizeSeed applies the seed==0 policy.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultBatchSeed
	}
	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring streams are uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// problemRNG returns the stream of one problem attempt. It depends only on
// (batch seed, index, attempt), never on scheduling.
//
// Complexity: O(1).
func problemRNG(batch int64, index, attempt int) *rand.Rand {
	perProblem := deriveSeed(batch, uint64(index))
	return rand.New(rand.NewSource(deriveSeed(perProblem, uint64(attempt))))
}
