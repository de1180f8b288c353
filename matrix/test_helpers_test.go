// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep integer fixtures exact so equality assertions need no tolerance.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// mustRows builds a matrix from a row literal or fails the test.
func mustRows[T matrix.Number](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustDense allocates an r×c zero matrix or fails the test.
func mustDense[T matrix.Number](tb testing.TB, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustIdentity allocates I_n or fails the test.
func mustIdentity[T matrix.Number](tb testing.TB, n int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.NewIdentity[T](n)
	require.NoError(tb, err)

	return m
}

// fillRandInt fills m with deterministic small integers in [-9, 9].
func fillRandInt(tb testing.TB, m *matrix.Dense[int], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Len(); i++ {
		require.NoError(tb, m.SetIndex(i, rng.Intn(19)-9))
	}
}

// fillRandFloat fills m with deterministic values in [-1, 1).
func fillRandFloat(tb testing.TB, m *matrix.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Len(); i++ {
		require.NoError(tb, m.SetIndex(i, rng.Float64()*2-1))
	}
}

// requireRows asserts m equals the literal want, element by element.
func requireRows[T matrix.Number](tb testing.TB, want [][]T, m *matrix.Dense[T]) {
	tb.Helper()
	require.Equal(tb, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(tb, len(row), m.Cols(), "cols")
		for j, w := range row {
			got, err := m.At(i, j)
			require.NoError(tb, err)
			require.Equalf(tb, w, got, "at (%d,%d)", i, j)
		}
	}
}
