// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on Dense values: element-wise addition,
// subtraction, negation, scalar scaling/division, matrix multiplication and
// equality. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical arithmetic kernels used across the package.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - Operands are never mutated; every result is freshly allocated and
//     inherits the numeric policy of the left operand.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opNeg         = "Neg"
	opMul         = "Mul"
	opScale       = "Scale"
	opDiv         = "Div"
	opApproxEqual = "ApproxEqual"
	opTranspose   = "Transpose"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
	opSwapRows    = "SwapRows"
	opAddRowMult  = "AddRowMultiple"
	opScaleRow    = "ScaleRow"
	opSerialize   = "Serialize"
	opEncode      = "Encode"
	opDeserialize = "Deserialize"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// checkResult enforces the strict NaN/Inf policy res inherited from its
// left operand; lax results pass through untouched.
func checkResult[T Number](tag string, res *Dense[T]) (*Dense[T], error) {
	if !res.validateNaNInf {
		return res, nil
	}
	for idx, v := range res.data {
		if nonFinite(v) {
			return nil, matrixErrorf(tag, fmt.Errorf("result[%d]: %w", idx, ErrNaNInf))
		}
	}

	return res, nil
}

// validateBinary checks both operands are usable. Shape checks are left to the caller.
func validateBinary[T Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are usable and have identical shapes.
//   - Stage 2: single flat loop 0..n-1 over the backing slices.
//
// Errors:
//   - ErrNilMatrix/ErrEmptyMatrix (unusable input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	res := newLike(a, a.r, a.c)
	for idx := range a.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return checkResult(opAdd, res)
}

// Sub computes A − B as A + (−1)·B, so it shares Add's dimension check.
// Errors: as Add. Complexity: O(r*c), two result allocations.
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	negB, err := Neg(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res, err := Add(a, negB)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return res, nil
}

// Neg returns −A, i.e. Scale(A, −1).
func Neg[T Number](a *Dense[T]) (*Dense[T], error) {
	res, err := Scale(a, T(-1))
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return res, nil
}

// Scale returns k·A element-wise. No dimension check applies.
// Errors: ErrNilMatrix/ErrEmptyMatrix, ErrNaNInf (strict result only).
// Complexity: O(r*c).
func Scale[T Number](a *Dense[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newLike(a, a.r, a.c)
	for idx, v := range a.data {
		res.data[idx] = v * k
	}

	return checkResult(opScale, res)
}

// Div returns A/k element-wise.
// Division by a zero k follows T's own semantics (±Inf/NaN for floats,
// a runtime panic for integers); guarding is the caller's responsibility.
// A strict result (WithValidateNaNInf on a) reports ErrNaNInf instead.
func Div[T Number](a *Dense[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opDiv, err)
	}

	res := newLike(a, a.r, a.c)
	for idx, v := range a.data {
		res.data[idx] = v / k
	}

	return checkResult(opDiv, res)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k; each C[i,j] starts from the k=0 product and adds the
//     remaining terms left to right, so no separate zero seed is summed in.
//
// Returns:
//   - *Dense: new C with shape (A.Rows × B.Cols).
//
// Errors:
//   - ErrNilMatrix/ErrEmptyMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateBinary(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.r, a.c, b.c
	res := newLike(a, aRows, bCols)
	var (
		i, j, k         int
		rowOffsetA, out int
		acc             T
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * inner
		for j = 0; j < bCols; j++ {
			acc = a.data[rowOffsetA] * b.data[j] // k = 0 term
			for k = 1; k < inner; k++ {
				acc += a.data[rowOffsetA+k] * b.data[k*bCols+j]
			}
			res.data[out] = acc
			out++
		}
	}

	return checkResult(opMul, res)
}

// Equal reports whether a and b have the same shape and pairwise equal elements.
// Two nil matrices are equal; nil never equals a non-nil matrix.
// Complexity: O(r*c), early exit on the first difference.
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx, v := range a.data {
		if b.data[idx] != v {
			return false
		}
	}

	return true
}

// EqualScalar reports whether a equals k·I: a is square, every diagonal
// element equals k and every off-diagonal element equals T(0).
func EqualScalar[T Number](a *Dense[T], k T) bool {
	if a == nil || !a.IsSquare() {
		return false
	}
	zero := zeroOf[T]()
	var want T
	for idx, v := range a.data {
		want = zero
		if idx/a.c == idx%a.c {
			want = k
		}
		if v != want {
			return false
		}
	}

	return true
}

// ApproxEqual checks element-wise |a-b| ≤ eps for identical shapes.
// Returns (true,nil) if every element satisfies the relation; (false,nil)
// otherwise. NaN is never close to anything.
//
// Policy:
//   - eps comes from WithEpsilon (default DefaultEpsilon).
//   - a and b must be usable; shape differences are (false, nil), not errors.
//
// AI-Hints:
//   - Use for floating round-trips and A·A⁻¹ ≈ I checks; Equal stays exact.
func ApproxEqual[T Number](a, b *Dense[T], opts ...Option) (bool, error) {
	if err := validateBinary(a, b); err != nil {
		return false, matrixErrorf(opApproxEqual, err)
	}
	if a.r != b.r || a.c != b.c {
		return false, nil
	}
	eps := gatherOptions(opts...).eps
	for idx, v := range a.data {
		if !(magnitude(v-b.data[idx]) <= eps) { // NaN-safe comparison
			return false, nil
		}
	}

	return true, nil
}
