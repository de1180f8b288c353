// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Let method-based operations compose with the package-level arithmetic
//     (Add/Sub/Mul take matrices as arguments; so do the facades below).
//
// AI-Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Inverse(A) and A.Inverse() are the same kernel; pick whichever reads better.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](rows, cols, opts...)
}

// NewIdentity returns I_n (n×n; T(1) on the diagonal, T(0) elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Number](n int, opts ...Option) (*Dense[T], error) {
	I, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	one := oneOf[T]()
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape and policy as m.
func ZerosLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newLike(m, m.r, m.c), nil
}

// IdentityLike returns I with dimension Rows(m); requires a square m.
func IdentityLike[T Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	I := newLike(m, m.r, m.c)
	one := oneOf[T]()
	for i := 0; i < m.r; i++ {
		I.data[i*m.c+i] = one
	}

	return I, nil
}

// ---------- Structural / cofactor facades ----------

// Transpose returns mᵀ. Thin wrapper over (*Dense).Transpose.
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}

	return m.Transpose()
}

// Minor returns m without the given row and column.
func Minor[T Number](m *Dense[T], row, col int) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opMinor, ErrNilMatrix)
	}

	return m.Minor(row, col)
}

// Determinant returns det(m) by cofactor expansion.
func Determinant[T Number](m *Dense[T]) (T, error) {
	if m == nil {
		return zeroOf[T](), matrixErrorf(opDeterminant, ErrNilMatrix)
	}

	return m.Determinant()
}

// Inverse returns m⁻¹ by the adjugate method.
func Inverse[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}

	return m.Inverse()
}
