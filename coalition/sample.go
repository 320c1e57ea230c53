// Package coalition: Sample draws the residual, non-enumerated middle-size
// coalition mass (spec §4.3 "Sampling"), optionally as antithetic
// (z, ¬z) pairs (spec §4.3 "Paired (antithetic) sampling").
package coalition

import "math/rand"

// sampleableSizes returns the coalition sizes NOT covered by ExactSizes(p, d):
// {d+1, ..., p-d-1}. Symmetric around p/2, so the complement of any
// sampleable size is itself sampleable — required for paired sampling to
// stay within the sampled region.
func sampleableSizes(p, d int) []int {
	lo, hi := d+1, p-d-1
	if lo > hi {
		return nil
	}
	sizes := make([]int, 0, hi-lo+1)
	for s := lo; s <= hi; s++ {
		sizes = append(sizes, s)
	}

	return sizes
}

// weightedPick draws one size from sizes, with probability proportional to
// fullWeights[size], via a manual cumulative-distribution walk over
// rng.Float64() (the same hand-rolled style as the RNG helpers in this
// package; no distribution-sampling library is needed for a one-shot
// discrete draw over at most p-1 outcomes).
// Complexity: O(len(sizes)) time, O(1) extra space.
func weightedPick(sizes []int, fullWeights map[int]float64, total float64, rng *rand.Rand) int {
	if total <= 0 {
		return sizes[0]
	}
	target := rng.Float64() * total
	var cum float64
	for _, s := range sizes {
		cum += fullWeights[s]
		if target <= cum {
			return s
		}
	}

	return sizes[len(sizes)-1]
}

// Sample draws m (rounded up to an even count when paired) coalition
// indicator rows from the sampleable middle layer of degree d, returning a
// Layer whose per-row weight makes A_exact + layer.A() an unbiased
// estimator of the full A matrix (spec §4.3, §8 invariant 2).
//
// Stage 1 (Validate): p, d, m, rng.
// Stage 2 (Prepare): sampleable sizes and their total residual mass.
// Stage 3 (Draw): for each (pair of) row(s), pick a size proportional to
// its weight, then a uniformly random subset of that size; paired mode
// also emits the complement.
//
// Complexity: O(m·p) time, O(m·p) memory.
func Sample(p, d, m int, paired bool, fullWeights map[int]float64, rng *rand.Rand) (*Layer, error) {
	if p < 1 {
		return nil, ErrInvalidP
	}
	if d < 0 || d >= p {
		return nil, ErrInvalidDegree
	}
	if m < 1 {
		return nil, ErrInvalidM
	}
	if rng == nil {
		return nil, ErrNilRNG
	}

	sizes := sampleableSizes(p, d)
	if len(sizes) == 0 {
		return nil, ErrNoSampleableSizes
	}

	var remainingMass float64
	for _, s := range sizes {
		remainingMass += fullWeights[s]
	}

	mm := m
	if paired && mm%2 != 0 {
		mm++
	}
	if paired && mm < 2 {
		return nil, ErrInvalidM
	}

	perRowWeight := remainingMass / float64(mm)

	layer := &Layer{P: p}
	draw := func() {
		s := weightedPick(sizes, fullWeights, remainingMass, rng)
		idx := randomSubset(p, s, rng)
		z := make([]float64, p)
		for _, i := range idx {
			z[i] = 1.0
		}
		layer.Z = append(layer.Z, z)
		layer.Weights = append(layer.Weights, perRowWeight)
	}

	if !paired {
		for i := 0; i < mm; i++ {
			draw()
		}

		return layer, nil
	}

	for pairIdx := 0; pairIdx < mm/2; pairIdx++ {
		// Decorrelate the pair's size/subset draw from a fresh derived
		// stream so antithetic pairing does not bias later draws.
		pairRNG := deriveRNG(rng, uint64(pairIdx))
		s := weightedPick(sizes, fullWeights, remainingMass, pairRNG)
		idx := randomSubset(p, s, pairRNG)

		z := make([]float64, p)
		for _, i := range idx {
			z[i] = 1.0
		}
		zc := make([]float64, p)
		for i := 0; i < p; i++ {
			zc[i] = 1.0 - z[i]
		}

		layer.Z = append(layer.Z, z, zc)
		layer.Weights = append(layer.Weights, perRowWeight, perRowWeight)
	}

	return layer, nil
}
