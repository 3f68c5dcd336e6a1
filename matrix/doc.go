// SPDX-License-Identifier: MIT

// Package matrix provides the fixed-shape numeric matrix used for
// inter-aggregate distance computations.
//
// What:
//
//   - Dense is a row-major float64 matrix with error-returning accessors.
//   - Shapes are fixed at construction; nothing reshapes or broadcasts.
//   - Set rejects NaN under the numeric policy. +Inf is accepted because
//     distance matrices use it as the "no self pair" sentinel on the diagonal.
//   - Elementwise kernels (MinInPlace, ClampMin) and row helpers (Row, RowMin)
//     cover what the organization metrics need.
//
// Complexity:
//
//   - NewDense: O(r*c) zero-init; At/Set: O(1).
//   - MinInPlace, ClampMin: O(r*c); Row, RowMin: O(c).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols <= 0.
//   - ErrOutOfRange: index outside the matrix.
//   - ErrDimensionMismatch: operands of different shapes.
//   - ErrNonSquare: a square matrix was required.
//   - ErrNaNInf: NaN (or Inf where forbidden) passed in.
//   - ErrNilMatrix: nil operand.
package matrix
