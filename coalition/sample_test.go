// SPDX-License-Identifier: MIT
package coalition_test

import (
	"testing"

	"github.com/katalvlaran-labs/shapkit/coalition"
	"github.com/katalvlaran-labs/shapkit/kernel"
	"github.com/stretchr/testify/require"
)

func TestSample_RoundsUpToEvenWhenPaired(t *testing.T) {
	p, d := 6, 1
	w, err := kernel.FullRange(p)
	require.NoError(t, err)
	rng := coalition.RNGFromSeed(1)

	layer, err := coalition.Sample(p, d, 3, true, w, rng)
	require.NoError(t, err)
	require.Equal(t, 4, layer.M())
}

// TestSample_PairedSymmetry exercises spec §8 invariant 4: for every
// sampled pair (z, ¬z), both rows appear with equal weight and z+¬z
// reconstructs the all-ones row.
func TestSample_PairedSymmetry(t *testing.T) {
	p, d := 6, 1
	w, err := kernel.FullRange(p)
	require.NoError(t, err)
	rng := coalition.RNGFromSeed(7)

	layer, err := coalition.Sample(p, d, 8, true, w, rng)
	require.NoError(t, err)
	require.Equal(t, 8, layer.M())

	for i := 0; i+1 < layer.M(); i += 2 {
		require.Equal(t, layer.Weights[i], layer.Weights[i+1])
		for j := 0; j < p; j++ {
			require.Equal(t, 1.0, layer.Z[i][j]+layer.Z[i+1][j])
		}
	}
}

func TestSample_NoDegenerateRows(t *testing.T) {
	p, d := 8, 1
	w, err := kernel.FullRange(p)
	require.NoError(t, err)
	rng := coalition.RNGFromSeed(42)

	layer, err := coalition.Sample(p, d, 64, true, w, rng)
	require.NoError(t, err)
	for _, z := range layer.Z {
		var sum float64
		for _, v := range z {
			sum += v
		}
		require.NotEqual(t, 0.0, sum)
		require.NotEqual(t, float64(p), sum)
	}
}

// TestSample_Reproducible exercises spec §8 invariant 5: same seed, same
// inputs -> bit-identical rows and weights.
func TestSample_Reproducible(t *testing.T) {
	p, d := 7, 1
	w, err := kernel.FullRange(p)
	require.NoError(t, err)

	rng1 := coalition.RNGFromSeed(99)
	l1, err := coalition.Sample(p, d, 16, true, w, rng1)
	require.NoError(t, err)

	rng2 := coalition.RNGFromSeed(99)
	l2, err := coalition.Sample(p, d, 16, true, w, rng2)
	require.NoError(t, err)

	require.Equal(t, l1.Z, l2.Z)
	require.Equal(t, l1.Weights, l2.Weights)
}

func TestSample_NoSampleableSizes(t *testing.T) {
	p, d := 4, 2 // d >= floor(p/2): fully exact, nothing left to sample
	w, err := kernel.FullRange(p)
	require.NoError(t, err)
	rng := coalition.RNGFromSeed(1)

	_, err = coalition.Sample(p, d, 4, false, w, rng)
	require.ErrorIs(t, err, coalition.ErrNoSampleableSizes)
}
