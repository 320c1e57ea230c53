// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/katalvlaran-labs/shapkit/linalg"
	"github.com/stretchr/testify/require"
)

// TestConstrainedSolve_EfficiencyHolds exercises spec §8 invariant 1
// (efficiency: Σβ = c) on a well-conditioned symmetric A.
func TestConstrainedSolve_EfficiencyHolds(t *testing.T) {
	a, err := linalg.NewDense(3, 3)
	require.NoError(t, err)
	vals := [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}
	for i := range vals {
		for j := range vals[i] {
			require.NoError(t, a.Set(i, j, vals[i][j]))
		}
	}

	b, err := linalg.NewDense(3, 1)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 1))
	require.NoError(t, b.Set(1, 0, 2))
	require.NoError(t, b.Set(2, 0, 3))

	beta, err := linalg.ConstrainedSolve(a, b, []float64{5.0}, -1)
	require.NoError(t, err)

	var sum float64
	for i := 0; i < 3; i++ {
		v, _ := beta.At(i, 0)
		sum += v
	}
	require.InDelta(t, 5.0, sum, 1e-9)
}

// TestConstrainedSolve_RankDeficient mirrors spec §8 boundary case 4
// ("Degenerate A"): a rank-1 A must still yield a finite, constraint-
// satisfying β via the pseudoinverse.
func TestConstrainedSolve_RankDeficient(t *testing.T) {
	a, err := linalg.Ones(3, 3)
	require.NoError(t, err)

	b, err := linalg.NewDense(3, 1)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 1))
	require.NoError(t, b.Set(1, 0, 1))
	require.NoError(t, b.Set(2, 0, 1))

	beta, err := linalg.ConstrainedSolve(a, b, []float64{2.25}, -1)
	require.NoError(t, err)

	var sum float64
	for i := 0; i < 3; i++ {
		v, _ := beta.At(i, 0)
		require.False(t, v != v, "beta must be finite, not NaN")
		sum += v
	}
	require.InDelta(t, 2.25, sum, 1e-9)
}

// TestConstrainedSolve_MultiOutputBroadcast exercises the K>1 broadcast of
// spec §4.1 ("s ... broadcast across K columns").
func TestConstrainedSolve_MultiOutputBroadcast(t *testing.T) {
	a, err := linalg.Identity(2)
	require.NoError(t, err)

	b, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 1))
	require.NoError(t, b.Set(1, 0, 1))
	require.NoError(t, b.Set(0, 1, 3))
	require.NoError(t, b.Set(1, 1, 3))

	beta, err := linalg.ConstrainedSolve(a, b, []float64{4.0, 10.0}, -1)
	require.NoError(t, err)

	for col, want := range []float64{4.0, 10.0} {
		var sum float64
		for i := 0; i < 2; i++ {
			v, _ := beta.At(i, col)
			sum += v
		}
		require.InDelta(t, want, sum, 1e-9)
	}
}
