// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula row*cols + col.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Offer a flat-index addressing scheme that shares the (row, col) mapping.
//   - Model exclusive ownership: Clone deep copies, Move transfers the buffer.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Kernels in this package operate on the flat data slice directly.
//   - Use AtIndex/SetIndex with Len() to walk every element without (row, col) math.
//   - A moved-from matrix is a valid 0×0 value: every accessor reports ErrOutOfRange.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/AtIndex/SetIndex: O(1); Clone: O(r*c); Move: O(1).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"      // ctor tag used in error wrappers
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxAtIndex  = "AtIndex"  // flat accessor tag
	ctxSetIndex = "SetIndex" // flat accessor tag
	ctxIndex    = "Index"    // row-major mapping tag
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // assignment tag
	ctxFromRows = "NewFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
//
// AI-Hints:
//   - Prefer to wrap at the nearest detection site for precise coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// denseIndexErrorf is the flat-index sibling of denseErrorf.
func denseIndexErrorf(method string, i int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, i, err)
}

// Dense is a concrete row-major matrix over T.
//   - r,c hold dimensions (rows, cols); both are ≥1 except for a moved-from value (0×0).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection on writes.
type Dense[T Number] struct {
	r, c           int  // row and column counts
	data           []T  // contiguous row-major storage (len == r*c)
	validateNaNInf bool // numeric guard: reject NaN/Inf on writes when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Shaped       = (*Dense[float64])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and numeric policy from opts.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrOutOfRange.
//   - Stage 2: allocate zero-filled buffer (make() writes T(0) everywhere).
//   - Stage 3: resolve options into the per-instance policy.
//
// Errors:
//   - ErrOutOfRange when rows ≤ 0 or cols ≤ 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - NewZeros is an intention-revealing alias; NewIdentity adds the diagonal.
func NewDense[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	o := gatherOptions(opts...)

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newLike allocates a zero rows×cols result inheriting src's numeric policy.
// Internal: callers have already validated the shape.
func newLike[T Number](src *Dense[T], rows, cols int) *Dense[T] {
	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		validateNaNInf: src.validateNaNInf,
	}
}

// NewFromRows builds a matrix from a rectangular row literal (values copied).
// Errors:
//   - ErrOutOfRange when there are no rows or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//   - ErrNaNInf when strict validation is on and a value is not finite.
//
// Complexity: O(r*c).
func NewFromRows[T Number](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 {
		return nil, denseErrorf(ctxFromRows, 0, 0, ErrOutOfRange)
	}
	m, err := NewDense[T](len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, denseErrorf(ctxFromRows, i, len(row), ErrDimensionMismatch)
		}
		for j, v := range row {
			if m.validateNaNInf && nonFinite(v) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Len returns the stored element count (always Rows()*Cols()).
func (m *Dense[T]) Len() int { return len(m.data) }

// IsSquare reports whether Rows() == Cols(). A moved-from 0×0 value is not square.
func (m *Dense[T]) IsSquare() bool { return m.r > 0 && m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap with coordinates and method name.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// Index returns the flat offset of (row, col), the same mapping At/Set use.
// The result is a valid argument for AtIndex/SetIndex.
func (m *Dense[T]) Index(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxIndex, row, col, err)
	}

	return off, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates; never panics on out-of-range.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values under strict policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && nonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// AtIndex returns the element at flat offset i (row-major) or ErrOutOfRange.
func (m *Dense[T]) AtIndex(i int) (T, error) {
	if i < 0 || i >= len(m.data) {
		var zero T
		return zero, denseIndexErrorf(ctxAtIndex, i, ErrOutOfRange)
	}

	return m.data[i], nil
}

// SetIndex stores v at flat offset i (row-major).
// Errors: ErrOutOfRange, ErrNaNInf (strict policy only).
func (m *Dense[T]) SetIndex(i int, v T) error {
	if i < 0 || i >= len(m.data) {
		return denseIndexErrorf(ctxSetIndex, i, ErrOutOfRange)
	}
	if m.validateNaNInf && nonFinite(v) {
		return denseIndexErrorf(ctxSetIndex, i, ErrNaNInf)
	}
	m.data[i] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the clone never affect the original.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Move transfers ownership of the storage to a new Dense and leaves m as a
// valid empty 0×0 matrix.
// MAIN DESCRIPTION:
//   - O(1) hand-off: no element is copied.
//
// Behavior highlights:
//   - After Move, m.Rows()==m.Cols()==m.Len()==0 and every accessor on m
//     reports ErrOutOfRange; kernels reject m with ErrEmptyMatrix.
//   - The numeric policy travels with the buffer.
func (m *Dense[T]) Move() *Dense[T] {
	out := &Dense[T]{
		r:              m.r,
		c:              m.c,
		data:           m.data,
		validateNaNInf: m.validateNaNInf,
	}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// CopyFrom overwrites m's elements with src's (assignment semantics).
// Errors:
//   - ErrNilMatrix / ErrEmptyMatrix on an unusable src.
//   - ErrDimensionMismatch when shapes differ; m is left untouched.
//
// Notes:
//   - Self-assignment is a no-op. m keeps its own numeric policy; a strict m
//     rejects a non-finite src element with ErrNaNInf and is left untouched.
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if err := ValidateNotNil(src); err != nil {
		return denseErrorf(ctxCopyFrom, m.r, m.c, err)
	}
	if m == src {
		return nil
	}
	if err := ValidateSameShape(m, src); err != nil {
		return denseErrorf(ctxCopyFrom, src.r, src.c, err)
	}
	if m.validateNaNInf {
		for i, v := range src.data {
			if nonFinite(v) {
				return denseIndexErrorf(ctxCopyFrom, i, ErrNaNInf)
			}
		}
	}
	copy(m.data, src.data)

	return nil
}

// String renders rows as lines with comma-separated values for diagnostics.
// Not a wire format; see Serialize/Encode.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprint(&b, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// MAIN DESCRIPTION:
//   - In-place map with policy enforcement and deterministic order.
//
// Behavior highlights:
//   - Early error aborts; elements written before the error remain updated.
//
// Returns:
//   - error: ErrNaNInf when f produced a non-finite value (strict policy only).
//
// Notes:
//   - For all-or-nothing semantics, transform a Clone and CopyFrom on success.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && nonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
