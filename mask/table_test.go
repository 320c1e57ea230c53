// SPDX-License-Identifier: MIT
package mask_test

import (
	"testing"

	"github.com/katalvlaran-labs/shapkit/mask"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixTable_ShapeMismatch(t *testing.T) {
	_, err := mask.NewMatrixTable(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, mask.ErrInvalidShape)
}

func TestNewRowTable_ShapeMismatch(t *testing.T) {
	_, err := mask.NewRowTable(2, 2, []interface{}{1, 2, 3})
	require.ErrorIs(t, err, mask.ErrInvalidShape)
}

func TestMatrixTable_OutOfBounds(t *testing.T) {
	m, err := mask.NewMatrixTable(1, 1, []float64{1})
	require.NoError(t, err)
	_, err = m.At(5, 0)
	require.ErrorIs(t, err, mask.ErrIndexOutOfBounds)
}
