// SPDX-License-Identifier: MIT

// Package matrix: element constraint and shape interface.
// This file intentionally contains ONLY type declarations shared by storage,
// validators and kernels.
package matrix

// Signed is the set of signed integer element types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Complex is the set of complex element types.
type Complex interface {
	~complex64 | ~complex128
}

// Number is the element constraint of Dense.
// Every member supports + - * / and ==, has T(0) as additive identity and
// T(1) as multiplicative identity, and can represent -1.
//
// Notes:
//   - Unsigned integers are excluded: -1 is not representable, so the
//     cofactor sign and Sub (defined as a + (-1)·b) are not expressible.
//   - Integer types truncate on division; Inverse and Div assume a field.
type Number interface {
	Signed | Float | Complex
}

// Shaped is implemented by anything exposing a row/column count.
// Validators consume Shaped so one check serves every element type.
//
// Complexity notes: both methods are expected O(1).
type Shaped interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int
}
