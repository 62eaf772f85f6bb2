// SPDX-License-Identifier: MIT

// Package csc - column-major dense buffers & CSC materialisation.
//
// Purpose:
//   - Dense holds rows*cols values column-major: cell (i, j) at Data[j*Rows+i].
//   - ToDense expands a Compressed matrix in one forward pass.
//
// Complexity quicksheet:
//   - ToDense: O(rows*cols) zero-init + O(nnz + cols) walk; At: O(1).
package csc

import "fmt"

const ctxAt = "At" // method tag used in error wrappers

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a column-major matrix of float64 values.
// len(Data) == Rows*Cols; cells not set explicitly are 0.
type Dense struct {
	Rows, Cols int       // row and column counts (>= 0)
	Data       []float64 // column-major storage, offset j*Rows + i
}

// NewDense returns a zero rows×cols Dense. Empty shapes are allowed.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange wrapped with coordinates on invalid indices.
// Complexity: O(1).
func (d *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= d.Rows || col < 0 || col >= d.Cols {
		return 0, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return d.Data[col*d.Rows+row], nil
}

// ToDense materialises m into a newly allocated column-major buffer.
//
// Implementation:
//   - Stage 1: allocate Rows*Cols zeros.
//   - Stage 2: walk positions 0..NNZ-1 in storage order; before each write,
//     advance the column cursor while ColPtr[cur+1] <= pos. The cursor
//     never moves backward, and empty columns are skipped by the advance.
//   - Stage 3: write Values[pos] at (RowIdx[pos], cur).
//
// Behavior highlights:
//   - Only the logical prefix is read; spare capacity past ColPtr[Cols]
//     is never touched.
//   - A matrix with Rows*Cols == 0 yields an empty buffer.
//   - m must satisfy the CSC invariants (see ValidateCompressed); this is
//     not re-checked.
//
// Complexity:
//   - Time O(rows*cols + nnz + cols), Space O(rows*cols).
func ToDense(m *Compressed) *Dense {
	d := &Dense{Rows: m.Rows, Cols: m.Cols, Data: make([]float64, m.Rows*m.Cols)}

	nnz := m.ColPtr[m.Cols]
	j := 0 // column cursor
	for pos := 0; pos < nnz; pos++ {
		for m.ColPtr[j+1] <= pos {
			j++
		}
		d.Data[j*m.Rows+m.RowIdx[pos]] = m.Values[pos]
	}

	return d
}
