// SPDX-License-Identifier: MIT

// Package matrix: numeric helpers shared by kernels.
//
// Purpose:
//   - Name the identities of T in one place (zero, one) and the cofactor sign.
//   - Provide type-set generic predicates (finite check) and the reflective
//     fallbacks needed by text parsing and tolerance comparison, which cannot
//     be written with operators alone.
package matrix

import (
	"math"
	"math/cmplx"
	"reflect"
	"strconv"
)

// zeroOf returns the additive identity of T.
func zeroOf[T Number]() T { return T(0) }

// oneOf returns the multiplicative identity of T.
func oneOf[T Number]() T { return T(1) }

// signed returns v for even k and -v for odd k.
// Used by cofactor expansion: sign(i) along a row, sign(i+j) per cell.
// Negation is 0-v rather than -1·v so a zero float cofactor stays +0.
func signed[T Number](k int, v T) T {
	if k%2 == 0 {
		return v
	}

	return zeroOf[T]() - v
}

// nonFinite reports whether v is NaN or ±Inf.
// v-v is 0 for every finite value and NaN for NaN/±Inf (component-wise for
// complex), so the test needs no knowledge of the concrete type. Integers
// always yield false.
func nonFinite[T Number](v T) bool {
	return v-v != 0
}

// magnitude returns |v| as float64 for any member of Number, including
// named types (~float64 etc.) that a plain type switch would miss.
func magnitude[T Number](v T) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return math.Abs(float64(rv.Int()))
	case reflect.Float32, reflect.Float64:
		return math.Abs(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		return cmplx.Abs(rv.Complex())
	}

	return math.NaN()
}

// parseElem parses one token using T's standard textual numeric syntax.
// Integers: strconv.ParseInt base 10 at T's bit size; floats: ParseFloat;
// complex: ParseComplex (accepts the "(1+2i)" form fmt prints).
// The whole token must be consumed; "1.5" is not an int.
func parseElem[T Number](tok string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	bits := rv.Type().Bits()
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(tok, 10, bits)
		if err != nil {
			return v, err
		}
		rv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(tok, bits)
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(tok, bits)
		if err != nil {
			return v, err
		}
		rv.SetComplex(c)
	}

	return v, nil
}
