// SPDX-License-Identifier: MIT
// Package linalg_test contains unit tests for universal Matrix operations.
package linalg_test

import (
	"testing"

	"github.com/katalvlaran-labs/shapkit/linalg"
	"github.com/stretchr/testify/require"
)

func TestAdd_Succeeds(t *testing.T) {
	a, err := linalg.NewDense(2, 3)
	require.NoError(t, err)
	b, err := linalg.NewDense(2, 3)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, a.Set(i, j, float64(i*3+j+1)))
			require.NoError(t, b.Set(i, j, float64(6-(i*3+j))))
		}
	}

	sum, err := linalg.Add(a, b)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := sum.At(i, j)
			require.NoError(t, err)
			require.Equal(t, 7.0, v)
		}
	}
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a, _ := linalg.NewDense(2, 2)
	b, _ := linalg.NewDense(3, 2)
	_, err := linalg.Add(a, b)
	require.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestMul_Identity(t *testing.T) {
	id, err := linalg.Identity(3)
	require.NoError(t, err)

	m, err := linalg.NewDense(3, 3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, m.Set(i, j, float64(i*3+j)))
		}
	}

	prod, err := linalg.Mul(id, m)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			got, _ := prod.At(i, j)
			want, _ := m.At(i, j)
			require.InDelta(t, want, got, 1e-12)
		}
	}
}

func TestTranspose(t *testing.T) {
	m, err := linalg.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 5))
	require.NoError(t, m.Set(1, 2, 9))

	tr, err := linalg.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	require.Equal(t, 2, tr.Cols())
	v, _ := tr.At(1, 0)
	require.Equal(t, 5.0, v)
	v, _ = tr.At(2, 1)
	require.Equal(t, 9.0, v)
}

func TestScale(t *testing.T) {
	m, err := linalg.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 2))
	require.NoError(t, m.Set(1, 1, 3))

	scaled, err := linalg.Scale(m, 2.0)
	require.NoError(t, err)
	v, _ := scaled.At(0, 0)
	require.Equal(t, 4.0, v)
	v, _ = scaled.At(1, 1)
	require.Equal(t, 6.0, v)
}

func TestOuterAdd(t *testing.T) {
	dst, err := linalg.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, linalg.OuterAdd(dst, []float64{1, 0}, 0.5))
	v, _ := dst.At(0, 0)
	require.Equal(t, 0.5, v)
	v, _ = dst.At(0, 1)
	require.Equal(t, 0.0, v)
	v, _ = dst.At(1, 1)
	require.Equal(t, 0.0, v)

	require.NoError(t, linalg.OuterAdd(dst, []float64{1, 1}, 1.0))
	v, _ = dst.At(0, 0)
	require.Equal(t, 1.5, v)
	v, _ = dst.At(1, 1)
	require.Equal(t, 1.0, v)
}
