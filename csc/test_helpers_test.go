// SPDX-License-Identifier: MIT
// Package csc_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the csc tests.
//   • Keep all fixtures well-formed so failures point at the code under test.

package csc_test

import (
	"testing"

	"github.com/katalvlaran/cscutil/csc"
	"github.com/stretchr/testify/require"
)

// MustCompressed builds a Compressed from literal arrays, with NZMax equal
// to len(values), and fails the test if the result is malformed.
func MustCompressed(t testing.TB, rows, cols int, colPtr, rowIdx []int, values []float64) *csc.Compressed {
	t.Helper()
	m := &csc.Compressed{
		Rows:   rows,
		Cols:   cols,
		NZMax:  len(values),
		ColPtr: colPtr,
		RowIdx: rowIdx,
		Values: values,
	}
	require.NoError(t, csc.ValidateCompressed(m))

	return m
}

// scenario3x2 is the 3×2 fixture:
//
//	col0 = {row0: 5}, col1 = {row1: 2, row2: 7}
func scenario3x2(t testing.TB) *csc.Compressed {
	return MustCompressed(t, 3, 2, []int{0, 1, 3}, []int{0, 1, 2}, []float64{5, 2, 7})
}

// banded builds an n×n tridiagonal CSC matrix with deterministic values.
// Complexity: O(n).
func banded(t testing.TB, n int) *csc.Compressed {
	t.Helper()
	colPtr := make([]int, n+1)
	rowIdx := make([]int, 0, 3*n)
	values := make([]float64, 0, 3*n)
	for j := 0; j < n; j++ {
		colPtr[j] = len(values)
		for i := j - 1; i <= j+1; i++ {
			if i < 0 || i >= n {
				continue
			}
			rowIdx = append(rowIdx, i)
			values = append(values, float64(i*n+j+1))
		}
	}
	colPtr[n] = len(values)

	return MustCompressed(t, n, n, colPtr, rowIdx, values)
}
