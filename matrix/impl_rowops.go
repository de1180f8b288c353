// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations (in place) and transpose.
//
// Purpose:
//   - Building blocks for Gaussian-style manipulation chosen by the caller.
//     No pivoting or row selection is performed here.
//   - Transpose materializes a fresh C×R copy and never mutates its input.

package matrix

import "fmt"

// rowErrorf tags a row-operation failure with its row arguments.
func rowErrorf(op string, r1, r2 int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", op, r1, r2, err)
}

// SwapRows exchanges every element of row r1 with row r2.
// Both rows are bounds-checked before any element moves; r1 == r2 is a no-op.
// Complexity: O(c).
func (m *Dense[T]) SwapRows(r1, r2 int) error {
	if err := ValidateRow(m, r1); err != nil {
		return rowErrorf(opSwapRows, r1, r2, err)
	}
	if err := ValidateRow(m, r2); err != nil {
		return rowErrorf(opSwapRows, r1, r2, err)
	}
	if r1 == r2 {
		return nil
	}

	a := m.data[r1*m.c : (r1+1)*m.c]
	b := m.data[r2*m.c : (r2+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return nil
}

// AddRowMultiple performs target[col] += multiplier * source[col] for every column.
// source == target is allowed and scales that row by (1+multiplier).
// Complexity: O(c).
func (m *Dense[T]) AddRowMultiple(source, target int, multiplier T) error {
	if err := ValidateRow(m, source); err != nil {
		return rowErrorf(opAddRowMult, source, target, err)
	}
	if err := ValidateRow(m, target); err != nil {
		return rowErrorf(opAddRowMult, source, target, err)
	}

	src := m.data[source*m.c : (source+1)*m.c]
	dst := m.data[target*m.c : (target+1)*m.c]
	for j := range dst {
		dst[j] += multiplier * src[j]
	}

	return nil
}

// ScaleRow multiplies every element of row by multiplier in place.
// Complexity: O(c).
func (m *Dense[T]) ScaleRow(row int, multiplier T) error {
	if err := ValidateRow(m, row); err != nil {
		return fmt.Errorf("Dense.%s(%d): %w", opScaleRow, row, err)
	}

	r := m.data[row*m.c : (row+1)*m.c]
	for j := range r {
		r[j] *= multiplier
	}

	return nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// result[i][j] = m[j][i]. The original is never mutated.
//
// Errors:
//   - ErrNilMatrix / ErrEmptyMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Transpose() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.transpose(), nil
}

// transpose is the unchecked kernel behind Transpose.
func (m *Dense[T]) transpose() *Dense[T] {
	res := newLike(m, m.c, m.r)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}
