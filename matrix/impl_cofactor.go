// SPDX-License-Identifier: MIT

// Package matrix - cofactor algebra: minors, determinant, adjugate, inverse.
//
// Purpose:
//   - Minor and determinant form a mutually recursive pair: det(A) expands
//     along row 0 into signed determinants of row-0 minors.
//   - Inverse composes them: cofactor matrix → transpose (adjugate) → ÷ det.
//
// Complexity & policy:
//   - Cofactor expansion is O(n!) for the determinant and O(n²·(n-1)!) for
//     the inverse. This is the intended algorithm for small matrices; there
//     is no LU or elimination fallback, so results never depend on a pivot
//     choice.
//   - No division happens inside the determinant, so exact element types
//     (integers) give exact determinants.
//
// AI-Hints:
//   - A zero coefficient a[0][i] skips its whole subtree; sparse first rows
//     are much cheaper. SwapRows to move a sparse row to the top flips the sign.

package matrix

import "fmt"

// minor is the unchecked kernel behind Minor. Caller guarantees
// 0≤row<r, 0≤col<c, r>1, c>1.
// Walks the source row-major, skips the deleted row and column and packs
// the rest in original relative order.
func (m *Dense[T]) minor(row, col int) *Dense[T] {
	res := newLike(m, m.r-1, m.c-1)
	var i, j, base, out int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[out] = m.data[base+j]
			out++
		}
	}

	return res
}

// Minor returns the (R−1)×(C−1) matrix obtained by deleting row and col.
// MAIN DESCRIPTION:
//   - Classical matrix minor; rectangular inputs are allowed.
//
// Errors:
//   - ErrNilMatrix / ErrEmptyMatrix.
//   - ErrOutOfRange when row or col is outside the matrix.
//   - ErrInvalidOperation when the matrix has a single row or a single column.
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func (m *Dense[T]) Minor(row, col int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateRow(m, row); err != nil {
		return nil, denseErrorf(opMinor, row, col, err)
	}
	if err := ValidateCol(m, col); err != nil {
		return nil, denseErrorf(opMinor, row, col, err)
	}
	if err := ValidateHasMinor(m); err != nil {
		return nil, denseErrorf(opMinor, row, col, err)
	}

	return m.minor(row, col), nil
}

// determinant is the unchecked recursive kernel. Caller guarantees a
// non-empty square receiver.
func (m *Dense[T]) determinant() T {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	// First-row expansion; accumulation starts at the first non-skipped term.
	acc := zeroOf[T]()
	started := false
	for i := 0; i < m.c; i++ {
		a := m.data[i]
		if a == 0 {
			continue // contributes nothing; its minor is never built
		}
		term := signed(i, a*m.minor(0, i).determinant())
		if !started {
			acc, started = term, true
		} else {
			acc += term
		}
	}

	return acc // T(0) when every first-row coefficient is zero
}

// Determinant returns det(m) by recursive cofactor expansion along row 0.
// MAIN DESCRIPTION:
//   - 1×1: the element. 2×2: a00·a11 − a01·a10.
//   - n≥3: Σ sign(i)·a[0][i]·det(minor(0,i)), sign(i)=+1 for even i, −1 for odd.
//
// Behavior highlights:
//   - Terms with a[0][i] == T(0) are skipped entirely; this never changes the result.
//
// Errors:
//   - ErrNilMatrix / ErrEmptyMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!) worst case, Space O(n²) along the recursion path.
func (m *Dense[T]) Determinant() (T, error) {
	if err := ValidateNotNil(m); err != nil {
		return zeroOf[T](), matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zeroOf[T](), matrixErrorf(opDeterminant, err)
	}

	return m.determinant(), nil
}

// Cofactor returns sign(row+col)·det(minor(row, col)) for a square matrix.
// Errors: ErrNonSquare, ErrOutOfRange, ErrInvalidOperation (1×1 has no minor).
func (m *Dense[T]) Cofactor(row, col int) (T, error) {
	if err := ValidateNotNil(m); err != nil {
		return zeroOf[T](), matrixErrorf(opCofactor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return zeroOf[T](), matrixErrorf(opCofactor, err)
	}
	mn, err := m.Minor(row, col)
	if err != nil {
		return zeroOf[T](), matrixErrorf(opCofactor, err)
	}

	return signed(row+col, mn.determinant()), nil
}

// cofactors builds the cofactor matrix C[i][j] = sign(i+j)·det(minor(i,j)).
// Caller guarantees a square receiver with n ≥ 2.
func (m *Dense[T]) cofactors() *Dense[T] {
	n := m.r
	res := newLike(m, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = signed(i+j, m.minor(i, j).determinant())
		}
	}

	return res
}

// adjugate returns the transposed cofactor matrix.
// By convention the adjugate of any 1×1 matrix is [1], so that
// adj(A) = det(A)·A⁻¹ holds for every size.
func (m *Dense[T]) adjugate() *Dense[T] {
	if m.r == 1 {
		res := newLike(m, 1, 1)
		res.data[0] = oneOf[T]()
		return res
	}
	return m.cofactors().transpose()
}

// CofactorMatrix returns the matrix of cofactors of a square matrix.
// The cofactor matrix of a 1×1 matrix is [1], matching Adjugate.
// Errors: ErrNilMatrix / ErrEmptyMatrix, ErrNonSquare.
func (m *Dense[T]) CofactorMatrix() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if m.r == 1 {
		return m.adjugate(), nil
	}

	return m.cofactors(), nil
}

// Adjugate returns adj(m), the transpose of the cofactor matrix.
// Errors: ErrNilMatrix / ErrEmptyMatrix, ErrNonSquare.
func (m *Dense[T]) Adjugate() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return m.adjugate(), nil
}

// Inverse computes m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Adjugate method: cofactor matrix, transpose, divide by the determinant.
//
// Implementation:
//   - Stage 1: ValidateNotNil, ValidateSquare (checked before any expansion).
//   - Stage 2: det(m); ErrSingular when it equals T(0).
//   - Stage 3: adj(m) ÷ det element-wise.
//
// Errors:
//   - ErrNilMatrix / ErrEmptyMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Exponential (n² minors, each expanded recursively). Small matrices only.
//
// Notes:
//   - Integer element types truncate on the final division; use a float or
//     complex T when the inverse is not itself integral.
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det := m.determinant()
	if det == 0 {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det=%v: %w", det, ErrSingular))
	}

	res, err := Div(m.adjugate(), det)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}
