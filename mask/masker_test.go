// SPDX-License-Identifier: MIT
package mask_test

import (
	"testing"

	"github.com/katalvlaran-labs/shapkit/mask"
	"github.com/stretchr/testify/require"
)

// sumPredict is a toy linear model: f(row) = sum of the row's float64
// values. Used to make masked-expectation arithmetic easy to check by hand.
func sumPredict(x mask.Table, _ mask.PredictContext) (mask.Prediction, error) {
	rows, cols := x.Rows(), x.Cols()
	data := make([]float64, rows)
	for i := 0; i < rows; i++ {
		var sum float64
		for j := 0; j < cols; j++ {
			v, err := x.At(i, j)
			if err != nil {
				return mask.Prediction{}, err
			}
			sum += v.(float64)
		}
		data[i] = sum
	}

	return mask.Prediction{Rows: rows, Cols: 1, Data: data}, nil
}

func TestEvaluate_KeepsXWhereZOne(t *testing.T) {
	// x = [10, 20], bg = single row [1, 2]. z=[1,0] keeps x[0], masks x[1].
	bg, err := mask.NewMatrixTable(1, 2, []float64{1, 2})
	require.NoError(t, err)

	vz, err := mask.Evaluate(
		[]interface{}{10.0, 20.0}, bg, nil,
		[][]float64{{1, 0}}, sumPredict, mask.PredictContext{}, mask.Options{},
	)
	require.NoError(t, err)
	v, _ := vz.At(0, 0)
	require.Equal(t, 12.0, v) // 10 (kept) + 2 (background)
}

func TestEvaluate_AveragesOverBackground(t *testing.T) {
	bg, err := mask.NewMatrixTable(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	vz, err := mask.Evaluate(
		[]interface{}{10.0, 20.0}, bg, nil,
		[][]float64{{0, 0}}, sumPredict, mask.PredictContext{}, mask.Options{},
	)
	require.NoError(t, err)
	v, _ := vz.At(0, 0)
	// all-zero z: both features come from background, averaged: (1+2+3+4)/2
	require.Equal(t, 5.0, v)
}

func TestEvaluate_WeightedBackground(t *testing.T) {
	bg, err := mask.NewMatrixTable(2, 1, []float64{0, 10})
	require.NoError(t, err)

	vz, err := mask.Evaluate(
		[]interface{}{99.0}, bg, []float64{3, 1},
		[][]float64{{0}}, sumPredict, mask.PredictContext{}, mask.Options{},
	)
	require.NoError(t, err)
	v, _ := vz.At(0, 0)
	require.InDelta(t, (3*0.0+1*10.0)/4.0, v, 1e-12)
}

func TestEvaluate_BatchingMatchesUnbatched(t *testing.T) {
	bg, err := mask.NewMatrixTable(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	require.NoError(t, err)
	x := []interface{}{100.0, 200.0, 300.0}
	z := [][]float64{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}, {0, 1, 1},
	}

	unbatched, err := mask.Evaluate(x, bg, nil, z, sumPredict, mask.PredictContext{}, mask.Options{})
	require.NoError(t, err)

	batched, err := mask.Evaluate(x, bg, nil, z, sumPredict, mask.PredictContext{}, mask.Options{BatchSize: 2})
	require.NoError(t, err)

	for i := 0; i < len(z); i++ {
		a, _ := unbatched.At(i, 0)
		b, _ := batched.At(i, 0)
		require.InDelta(t, a, b, 1e-12)
	}
}

func TestEvaluate_HeterogeneousPathMatchesHomogeneous(t *testing.T) {
	bgMat, err := mask.NewMatrixTable(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	bgRow, err := mask.NewRowTable(2, 2, []interface{}{1.0, 2.0, 3.0, 4.0})
	require.NoError(t, err)

	z := [][]float64{{1, 0}, {0, 1}}
	x := []interface{}{10.0, 20.0}

	vMat, err := mask.Evaluate(x, bgMat, nil, z, sumPredict, mask.PredictContext{}, mask.Options{})
	require.NoError(t, err)
	vRow, err := mask.Evaluate(x, bgRow, nil, z, sumPredict, mask.PredictContext{}, mask.Options{})
	require.NoError(t, err)

	for i := range z {
		a, _ := vMat.At(i, 0)
		b, _ := vRow.At(i, 0)
		require.InDelta(t, a, b, 1e-12)
	}
}

func TestEvaluate_PredictionShapeMismatch(t *testing.T) {
	bg, err := mask.NewMatrixTable(1, 1, []float64{1})
	require.NoError(t, err)

	bad := func(x mask.Table, _ mask.PredictContext) (mask.Prediction, error) {
		return mask.Prediction{Rows: x.Rows() + 1, Cols: 1, Data: make([]float64, x.Rows()+1)}, nil
	}

	_, err = mask.Evaluate([]interface{}{1.0}, bg, nil, [][]float64{{1}}, bad, mask.PredictContext{}, mask.Options{})
	require.ErrorIs(t, err, mask.ErrPredictionShapeMismatch)
}

func TestEvaluate_InvalidPredictionKind(t *testing.T) {
	bg, err := mask.NewMatrixTable(1, 1, []float64{1})
	require.NoError(t, err)

	bad := func(x mask.Table, _ mask.PredictContext) (mask.Prediction, error) {
		return mask.Prediction{Rows: x.Rows(), Cols: 2, Data: []float64{1}}, nil
	}

	_, err = mask.Evaluate([]interface{}{1.0}, bg, nil, [][]float64{{1}}, bad, mask.PredictContext{}, mask.Options{})
	require.ErrorIs(t, err, mask.ErrInvalidPredictionKind)
}

func TestEvaluate_InvalidShape(t *testing.T) {
	bg, err := mask.NewMatrixTable(1, 2, []float64{1, 2})
	require.NoError(t, err)

	_, err = mask.Evaluate([]interface{}{1.0}, bg, nil, [][]float64{{1, 0}}, sumPredict, mask.PredictContext{}, mask.Options{})
	require.ErrorIs(t, err, mask.ErrInvalidShape)
}
