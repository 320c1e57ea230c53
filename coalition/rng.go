// Package coalition - RNG utilities shared by the exact/hybrid sampler.
//
// This file centralizes deterministic random generation for coalition
// sampling, adapted from the same pattern the teacher package uses for its
// heuristic solvers (tsp/rng.go):
//
// Goals:
//   - Determinism: same seed => identical coalitions across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors when needed.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Do not share one across goroutines;
//     a single explanation call is sequential (spec §5), so this is only a
//     concern across concurrent ExplainOne calls.
package coalition

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 => defaultRNGSeed; otherwise the seed is used verbatim.
// Complexity: O(1).
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche mix, used to give each antithetic
// pair its own derived draw stream (the pair's complement row needs no draw).
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

// deriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier, consuming one draw from base first to decorrelate
// consecutive derivations.
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := base.Int63()

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher-Yates shuffle of a using rng.
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// randomSubset draws a uniformly random s-subset of {0,...,p-1} by
// shuffling the full index range and taking the first s elements.
// Complexity: O(p) time, O(p) space.
func randomSubset(p, s int, rng *rand.Rand) []int {
	idx := make([]int, p)
	for i := range idx {
		idx[i] = i
	}
	shuffleIntsInPlace(idx, rng)
	chosen := append([]int(nil), idx[:s]...)

	return chosen
}
