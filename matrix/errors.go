// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// context via %w) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with "Op(args): %w" so callers
// still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/empty operand -> index -> shape (square, mismatch) -> structural
// (invalid operation) -> numeric (singular, NaN/Inf).

var (
	// ErrOutOfRange indicates that a row, column or flat index is outside valid
	// bounds, or that a requested shape has a non-positive dimension.
	// Public accessors MUST return this, never clamp or wrap the index.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when inversion is requested on a matrix whose
	// determinant equals the additive identity.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidOperation is returned when an operation is undefined for the
	// receiver's shape (a minor of a matrix with a single row or column).
	ErrInvalidOperation = errors.New("matrix: invalid operation")

	// ErrFormat signals malformed or truncated text during deserialization.
	ErrFormat = errors.New("matrix: malformed matrix text")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEmptyMatrix indicates a 0×0 matrix left behind by Move was used as an operand.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrNaNInf signals a NaN or ±Inf value was rejected by the strict numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
