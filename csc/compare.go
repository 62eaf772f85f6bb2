// SPDX-License-Identifier: MIT

package csc

import "math"

// Equal reports whether a and b hold the same sparse structure and values
// within an absolute tolerance (DefaultTolerance unless WithTolerance).
//
// Implementation:
//   - Stage 1: reject when Cols differ (and Rows, under WithStrictShape),
//     or when the stored counts ColPtr[n] differ.
//   - Stage 2: for each column j, reject when ColPtr[j] differs.
//   - Stage 3: for each position i in a's column j, reject when RowIdx[i]
//     differs or |a.Values[i]-b.Values[i]| > tol.
//
// Behavior highlights:
//   - Short-circuits on the first mismatch, column then storage order.
//   - Rows is not compared by default: two matrices that differ only in
//     Rows compare equal. Use WithStrictShape to close that gap.
//   - Comparing ColPtr[n] up front means every position read from b lies
//     inside b's logical prefix.
//   - Two nil matrices are equal; nil and non-nil are not.
//
// Complexity:
//   - Time O(cols + nnz), Space O(1).
func Equal(a, b *Compressed, opts ...Option) bool {
	if a == nil || b == nil {
		return a == b
	}
	o := gatherOptions(opts...)

	if a.Cols != b.Cols {
		return false
	}
	if o.strictShape && a.Rows != b.Rows {
		return false
	}
	if a.ColPtr[a.Cols] != b.ColPtr[b.Cols] {
		return false
	}

	var i, j int
	for j = 0; j < a.Cols; j++ {
		if a.ColPtr[j] != b.ColPtr[j] {
			return false
		}
		for i = a.ColPtr[j]; i < a.ColPtr[j+1]; i++ {
			if a.RowIdx[i] != b.RowIdx[i] || math.Abs(a.Values[i]-b.Values[i]) > o.tol {
				return false
			}
		}
	}

	return true
}
