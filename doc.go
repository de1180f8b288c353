// Package lvmat is a small toolkit for exact dense matrix algebra in Go:
// generic matrices over signed integers, floats and complex numbers, with
// determinants and inverses computed by cofactor expansion.
//
// What is inside?
//
//	matrix/         Dense[T] storage, arithmetic, row operations, minors,
//	                determinant, cofactors, adjugate, inverse, text I/O
//	internal/config TOML + environment configuration for the CLI
//	cmd/lvmat/      command-line front end (det, inv, transpose, minor,
//	                add, sub, mul, scale, eq)
//	examples/       runnable scenarios built on matrix/
//
// Why cofactors?
//
//   - No pivoting, no division until the final step: integer inputs stay
//     exact, and the determinant of a unimodular matrix is exactly ±1.
//   - The price is O(n!) time, so the package targets small matrices.
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]int{{2, 1}, {1, 1}})
//	inv, _ := A.Inverse() // [[1 -1] [-1 2]]
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat
