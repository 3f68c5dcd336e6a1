// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orgindex/matrix"
)

// TestNewDense_InvalidDimensions verifies that non-positive shapes are rejected.
func TestNewDense_InvalidDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"NegativeRows", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDense(tc.rows, tc.cols)
			assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

// TestDense_AtSetBounds checks that out-of-range indices return ErrOutOfRange.
func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDense_NumericPolicy checks that NaN is always rejected and Inf only
// when the matrix was built WithAllowInf.
func TestDense_NumericPolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	loose, err := matrix.NewSquare(1, matrix.WithAllowInf())
	require.NoError(t, err)
	assert.NoError(t, loose.Set(0, 0, math.Inf(1)))
	assert.ErrorIs(t, loose.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
}

// TestDense_RowCopy verifies Row returns a copy, not a view.
func TestDense_RowCopy(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 1))
	require.NoError(t, m.Set(1, 2, 2))

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 2}, row)

	row[0] = 99
	v, _ := m.At(1, 0)
	assert.Equal(t, 1.0, v)
}
