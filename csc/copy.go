// SPDX-License-Identifier: MIT

package csc

import "fmt"

const ctxCopy = "Copy"

// Copy overwrites dst with the contents of src.
//
// Implementation:
//   - Stage 1 (Validate): both non-nil; dst has at least src.Cols+1 column
//     pointers and at least src.NZMax row/value slots.
//   - Stage 2 (Execute): copy ColPtr[:Cols+1], RowIdx[:NZMax], Values[:NZMax].
//   - Stage 3 (Finalize): dst.NZMax = src.NZMax.
//
// Behavior highlights:
//   - The full declared capacity of src is copied, not just NNZ.
//   - dst.Rows and dst.Cols are left as allocated by the caller.
//   - On error dst is not modified.
//   - Idempotent: repeating the call yields the same dst.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrCapacity (wrapped).
//
// Complexity:
//   - Time O(cols + nzmax), Space O(1).
func Copy(dst, src *Compressed) error {
	if dst == nil || src == nil {
		return fmt.Errorf("%s: %w", ctxCopy, ErrNilMatrix)
	}
	if len(dst.ColPtr) < src.Cols+1 {
		return fmt.Errorf("%s: need %d column pointers, have %d: %w",
			ctxCopy, src.Cols+1, len(dst.ColPtr), ErrDimensionMismatch)
	}
	if len(dst.RowIdx) < src.NZMax || len(dst.Values) < src.NZMax {
		return fmt.Errorf("%s: need %d slots, have %d: %w",
			ctxCopy, src.NZMax, min(len(dst.RowIdx), len(dst.Values)), ErrCapacity)
	}

	copy(dst.ColPtr, src.ColPtr[:src.Cols+1])
	copy(dst.RowIdx, src.RowIdx[:src.NZMax])
	copy(dst.Values, src.Values[:src.NZMax])
	dst.NZMax = src.NZMax

	return nil
}
