// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise kernels over square distance tables.
//   - Operate directly on the flat row-major buffer.
//
// Determinism:
//   - Fixed loop orders (flat 0..n-1 or i→j).

package matrix

import "math"

const (
	opMinInPlace   = "MinInPlace"
	opClampMin     = "ClampMin"
	opFillDiagonal = "FillDiagonal"
	opRowMin       = "RowMin"
)

// MinInPlace overwrites dst with the elementwise minimum of dst and src.
// Both operands must share the same shape.
// Complexity: O(r*c).
func MinInPlace(dst, src *Dense) error {
	if dst == nil || src == nil {
		return matrixErrorf(opMinInPlace, ErrNilMatrix)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opMinInPlace, err)
	}

	for k, v := range src.data {
		if v < dst.data[k] {
			dst.data[k] = v
		}
	}

	return nil
}

// ClampMin raises every off-diagonal element below lo to lo. The diagonal is
// left untouched so self-pair sentinels survive. lo must be finite.
// Complexity: O(r*c).
func ClampMin(m *Dense, lo float64) error {
	if m == nil {
		return matrixErrorf(opClampMin, ErrNilMatrix)
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) {
		return matrixErrorf(opClampMin, ErrNaNInf)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c
		for j = 0; j < m.c; j++ {
			if i != j && m.data[base+j] < lo {
				m.data[base+j] = lo
			}
		}
	}

	return nil
}

// FillDiagonal sets every diagonal element of a square matrix to v,
// honouring the numeric policy of m.
// Complexity: O(n).
func FillDiagonal(m *Dense, v float64) error {
	if m == nil {
		return matrixErrorf(opFillDiagonal, ErrNilMatrix)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opFillDiagonal, err)
	}
	for i := 0; i < m.r; i++ {
		if err := m.Set(i, i, v); err != nil {
			return matrixErrorf(opFillDiagonal, err)
		}
	}

	return nil
}

// RowMin returns the smallest element of row i, skipping column skip
// (pass -1 to consider every column). Returns +Inf when nothing is left.
// Complexity: O(c).
func RowMin(m *Dense, i, skip int) (float64, error) {
	if m == nil {
		return 0, matrixErrorf(opRowMin, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return 0, matrixErrorf(opRowMin, denseErrorf(ctxRow, i, 0, ErrOutOfRange))
	}
	best := math.Inf(1)
	base := i * m.c
	for j := 0; j < m.c; j++ {
		if j == skip {
			continue
		}
		if v := m.data[base+j]; v < best {
			best = v
		}
	}

	return best, nil
}
