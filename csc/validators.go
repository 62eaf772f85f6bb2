// SPDX-License-Identifier: MIT
// Package: csc
//
// Purpose:
//  - Provide a single source of truth for the structural invariants of
//    Compressed and Triplet values.
//  - Operations in this package assume these invariants and do not call the
//    validators themselves; call them at the boundary where data enters.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.
//  - ValidateCompressed is O(cols + nnz); ValidateTriplet is O(nz).

package csc

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateCompressed checks the CSC invariants in a fixed order:
// NotNil → Shape → Storage lengths → ColPtr → Row bounds.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrCapacity, ErrColPtr, ErrOutOfRange.
//
// Complexity: O(cols + nnz).
func ValidateCompressed(m *Compressed) error {
	if m == nil {
		return validatorErrorf("ValidateCompressed", ErrNilMatrix)
	}
	if m.Rows < 0 || m.Cols < 0 || m.NZMax < 0 {
		return validatorErrorf("ValidateCompressed", ErrInvalidDimensions)
	}
	if len(m.RowIdx) < m.NZMax || len(m.Values) < m.NZMax {
		return validatorErrorf("ValidateCompressed: storage", ErrCapacity)
	}
	if len(m.ColPtr) != m.Cols+1 {
		return validatorErrorf("ValidateCompressed: len(ColPtr)", ErrColPtr)
	}
	if m.ColPtr[0] != 0 {
		return validatorErrorf("ValidateCompressed: ColPtr[0]", ErrColPtr)
	}

	var j int
	for j = 0; j < m.Cols; j++ {
		if m.ColPtr[j+1] < m.ColPtr[j] {
			return validatorErrorf(fmt.Sprintf("ValidateCompressed: ColPtr[%d]", j+1), ErrColPtr)
		}
	}
	if m.ColPtr[m.Cols] > m.NZMax {
		return validatorErrorf("ValidateCompressed: ColPtr[n] > NZMax", ErrColPtr)
	}

	nnz := m.ColPtr[m.Cols]
	for k := 0; k < nnz; k++ {
		if m.RowIdx[k] < 0 || m.RowIdx[k] >= m.Rows {
			return validatorErrorf(fmt.Sprintf("ValidateCompressed: RowIdx[%d]", k), ErrOutOfRange)
		}
	}

	return nil
}

// ValidateTriplet checks NotNil → Shape → Storage lengths → entry bounds.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrCapacity, ErrOutOfRange.
//
// Complexity: O(nz).
func ValidateTriplet(t *Triplet) error {
	if t == nil {
		return validatorErrorf("ValidateTriplet", ErrNilMatrix)
	}
	if t.Rows < 0 || t.Cols < 0 || t.NZMax < 0 || t.NZ < 0 {
		return validatorErrorf("ValidateTriplet", ErrInvalidDimensions)
	}
	if t.NZ > t.NZMax || len(t.RowIdx) < t.NZMax || len(t.ColIdx) < t.NZMax || len(t.Values) < t.NZMax {
		return validatorErrorf("ValidateTriplet: storage", ErrCapacity)
	}
	for k := 0; k < t.NZ; k++ {
		if t.RowIdx[k] < 0 || t.RowIdx[k] >= t.Rows || t.ColIdx[k] < 0 || t.ColIdx[k] >= t.Cols {
			return validatorErrorf(fmt.Sprintf("ValidateTriplet: entry %d", k), ErrOutOfRange)
		}
	}

	return nil
}
