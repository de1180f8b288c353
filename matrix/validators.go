// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/empty/shape/index checks here.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly and callers still match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//   - Shape validators take Shaped so one implementation serves every T.
//   - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil and not the empty
// 0×0 value left behind by Move.
//
// Returns ErrNilMatrix for nil, ErrEmptyMatrix for 0×0.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil[T Number](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return validatorErrorf("ValidateNotNil", ErrEmptyMatrix)
	}

	return nil
}

// ValidateShape ensures rows and cols are both positive and that rows*cols
// fits in an int, so the element count always equals R×C.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateShape", ErrOutOfRange)
	}
	if rows > math.MaxInt/cols {
		return validatorErrorf("ValidateShape: rows*cols overflows int", ErrOutOfRange)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows.
// Assumes non-nil operands. Complexity: O(1).
func ValidateMulCompatible(a, b Shaped) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNonSquare if not square. Complexity: O(1).
func ValidateSquare(m Shaped) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateRow checks 0 ≤ row < m.Rows().
func ValidateRow(m Shaped, row int) error {
	if row < 0 || row >= m.Rows() {
		return validatorErrorf(fmt.Sprintf("ValidateRow(%d)", row), ErrOutOfRange)
	}

	return nil
}

// ValidateCol checks 0 ≤ col < m.Cols().
func ValidateCol(m Shaped, col int) error {
	if col < 0 || col >= m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateCol(%d)", col), ErrOutOfRange)
	}

	return nil
}

// ValidateHasMinor checks that a minor is definable: more than one row and
// more than one column. Errors: ErrInvalidOperation.
func ValidateHasMinor(m Shaped) error {
	if m.Rows() < 2 || m.Cols() < 2 {
		return validatorErrorf("ValidateHasMinor", ErrInvalidOperation)
	}

	return nil
}
