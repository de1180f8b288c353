// SPDX-License-Identifier: MIT

// Package matrix - text serialization.
//
// Formats:
//   - Serialize (body only): R lines, C values per line separated by a single
//     '\t', every line terminated by '\n'. No header.
//   - Encode (header + body): "<rows> <cols>\n" followed by the Serialize body.
//   - Deserialize: "<rows> <cols> v00 v01 ... v(R-1)(C-1)", every token
//     separated by arbitrary whitespace (spaces, tabs, newlines).
//
// Notes:
//   - Serialize and Deserialize are intentionally asymmetric: Serialize
//     never writes the header Deserialize requires. Encode is the
//     round-trip-safe writer.
//   - Values are written with fmt's %v, which is the shortest exact form
//     for floats, so Encode → Deserialize reproduces every element bit for bit.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// appendBody appends the Serialize form of m to dst.
func (m *Dense[T]) appendBody(dst []byte) []byte {
	for i, v := range m.data {
		dst = fmt.Append(dst, v)
		if (i+1)%m.c == 0 {
			dst = append(dst, '\n')
		} else {
			dst = append(dst, '\t')
		}
	}

	return dst
}

// WriteTo writes m in the Serialize format; it implements io.WriterTo.
func (m *Dense[T]) WriteTo(w io.Writer) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSerialize, err)
	}
	n, err := w.Write(m.appendBody(nil))
	if err != nil {
		return int64(n), matrixErrorf(opSerialize, err)
	}

	return int64(n), nil
}

// Serialize writes m row-major: tab between values, newline after each row.
// Errors: ErrNilMatrix / ErrEmptyMatrix, or the writer's error.
func Serialize[T Number](w io.Writer, m *Dense[T]) error {
	_, err := m.WriteTo(w)

	return err
}

// Encode writes the "<rows> <cols>" header line followed by the Serialize body.
// Deserialize reads the result back to an equal matrix.
func Encode[T Number](w io.Writer, m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opEncode, err)
	}
	buf := strconv.AppendInt(nil, int64(m.r), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(m.c), 10)
	buf = append(buf, '\n')
	if _, err := w.Write(m.appendBody(buf)); err != nil {
		return matrixErrorf(opEncode, err)
	}

	return nil
}

// ParseValue parses a single element in the syntax Deserialize accepts.
// Errors: ErrFormat wrapping the strconv failure.
func ParseValue[T Number](tok string) (T, error) {
	v, err := parseElem[T](tok)
	if err != nil {
		return v, fmt.Errorf("ParseValue(%q): %w: %w", tok, ErrFormat, err)
	}

	return v, nil
}

// deserializeInitialCap bounds the first allocation made from a header.
const deserializeInitialCap = 1 << 12

// formatErrorf tags a deserialization failure with the token position.
func formatErrorf(pos int, tok string, err error) error {
	return fmt.Errorf("%s: token %d %q: %w", opDeserialize, pos, tok, err)
}

// Deserialize reads "<rows> <cols>" then rows*cols values in row-major order.
// MAIN DESCRIPTION:
//   - Token-by-token parse with T's standard numeric syntax (see parseElem).
//
// Errors:
//   - ErrFormat when the stream ends early, a header or value fails to parse,
//     or the underlying reader fails.
//   - ErrFormat together with ErrOutOfRange when the header is non-positive
//     or rows*cols overflows int.
//   - ErrNaNInf when strict validation (WithValidateNaNInf) rejects a value.
//
// Notes:
//   - Reading stops right after the last value; trailing input is not consumed
//     beyond the scanner's buffer and is not validated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c); storage grows with the values read, so a
//     short stream behind a huge header fails with ErrFormat cheaply.
func Deserialize[T Number](r io.Reader, opts ...Option) (*Dense[T], error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	pos := 0
	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", formatErrorf(pos, "", fmt.Errorf("%w: %w", ErrFormat, err))
			}
			return "", formatErrorf(pos, "", fmt.Errorf("unexpected end of input: %w", ErrFormat))
		}
		pos++
		return sc.Text(), nil
	}

	var dims [2]int
	for k := range dims {
		tok, err := next()
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, formatErrorf(pos, tok, fmt.Errorf("%w: %w", ErrFormat, err))
		}
		dims[k] = n
	}

	rows, cols := dims[0], dims[1]
	if err := ValidateShape(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: header %dx%d: %w: %w", opDeserialize, rows, cols, ErrFormat, err)
	}
	o := gatherOptions(opts...)

	// Storage tracks the tokens read; the header alone never sizes it.
	n := rows * cols
	data := make([]T, 0, min(n, deserializeInitialCap))
	for len(data) < n {
		tok, err := next()
		if err != nil {
			return nil, err
		}
		v, err := parseElem[T](tok)
		if err != nil {
			return nil, formatErrorf(pos, tok, fmt.Errorf("%w: %w", ErrFormat, err))
		}
		if o.validateNaNInf && nonFinite(v) {
			return nil, formatErrorf(pos, tok, ErrNaNInf)
		}
		data = append(data, v)
	}
	m := &Dense[T]{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}

	return m, nil
}
