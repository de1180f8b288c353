// Package matrix implements a generic dense matrix with cofactor algebra.
//
// The matrix package provides:
//
//   - Dense[T], a row-major R×C container over any signed integer, float or
//     complex element type, with bounds-checked (row, col) and flat-index access.
//   - Arithmetic: Add, Sub, Neg, Mul, Scale, Div, exact Equal/EqualScalar and
//     tolerance-based ApproxEqual.
//   - In-place row operations (SwapRows, AddRowMultiple, ScaleRow) and Transpose.
//   - Minor extraction, recursive determinant, cofactors, adjugate and the
//     adjugate-method Inverse.
//   - Text I/O: Serialize (tab/newline body), Encode (header + body) and
//     Deserialize (header + whitespace-separated values).
//
// Every failure is a wrapped sentinel (ErrOutOfRange, ErrDimensionMismatch,
// ErrNonSquare, ErrSingular, ErrInvalidOperation, ErrFormat, ...) to be
// matched with errors.Is. Nothing panics on user input, except integer
// division by zero, which keeps Go's own semantics.
//
// Cofactor expansion is exponential in n. The package targets small and
// moderate matrices where exact, pivot-free results matter more than speed.
//
//	A, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 2}})
//	inv, _ := A.Inverse() // [[0.5 0] [0 0.5]]
package matrix
