// SPDX-License-Identifier: MIT

// Package csc: sparse matrix layouts.
// A sparse value is either Compressed (CSC) or Triplet (coordinate form).
// The two share field names but not meaning, so they are separate types
// behind the sealed Sparse interface rather than one record read two ways.
package csc

import "fmt"

// Form names the storage layout of a Sparse value.
type Form int

const (
	// FormCompressed is compressed-sparse-column storage.
	FormCompressed Form = iota
	// FormTriplet is uncompressed (row, col, value) storage.
	FormTriplet
)

// String returns a short name for the layout.
func (f Form) String() string {
	switch f {
	case FormCompressed:
		return "compressed"
	case FormTriplet:
		return "triplet"
	default:
		return "unknown"
	}
}

// Sparse is implemented only by *Compressed and *Triplet.
type Sparse interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)

	// Form reports which layout the value uses.
	Form() Form

	sparse()
}

// Compile-time assertions for variant membership.
var (
	_ Sparse = (*Compressed)(nil)
	_ Sparse = (*Triplet)(nil)
)

// Compressed is a matrix in compressed-sparse-column form.
//   - ColPtr has Cols+1 non-decreasing entries with ColPtr[0] == 0 and
//     ColPtr[Cols] <= NZMax; positions ColPtr[j]..ColPtr[j+1]-1 hold column j.
//   - RowIdx and Values are parallel, allocated with at least NZMax slots.
//     Only the first ColPtr[Cols] slots are meaningful; the rest is spare
//     capacity and must not be interpreted.
//   - Row indices within a column are not required to be sorted.
type Compressed struct {
	Rows, Cols int       // matrix shape (m, n)
	NZMax      int       // capacity of RowIdx/Values
	ColPtr     []int     // column pointers, len Cols+1
	RowIdx     []int     // row index per stored entry
	Values     []float64 // value per stored entry
}

// NewCompressed allocates an empty rows×cols CSC matrix with room for nzmax
// entries. All column pointers start at zero.
// Complexity: O(cols + nzmax).
func NewCompressed(rows, cols, nzmax int) (*Compressed, error) {
	if rows < 0 || cols < 0 || nzmax < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Compressed{
		Rows:   rows,
		Cols:   cols,
		NZMax:  nzmax,
		ColPtr: make([]int, cols+1),
		RowIdx: make([]int, nzmax),
		Values: make([]float64, nzmax),
	}, nil
}

// Dims returns the number of rows and columns.
func (m *Compressed) Dims() (rows, cols int) { return m.Rows, m.Cols }

// Form returns FormCompressed.
func (m *Compressed) Form() Form { return FormCompressed }

func (m *Compressed) sparse() {}

// NNZ returns the number of stored entries, ColPtr[Cols].
func (m *Compressed) NNZ() int {
	return m.ColPtr[m.Cols]
}

// Triplet is a matrix in coordinate form: entry k < NZ sits at
// (RowIdx[k], ColIdx[k]) with value Values[k]. No ordering is implied.
type Triplet struct {
	Rows, Cols int       // matrix shape
	NZMax      int       // capacity of RowIdx/ColIdx/Values
	NZ         int       // number of populated entries
	RowIdx     []int     // row index per entry
	ColIdx     []int     // column index per entry
	Values     []float64 // value per entry
}

// NewTriplet allocates an empty rows×cols triplet matrix with room for
// nzmax entries.
func NewTriplet(rows, cols, nzmax int) (*Triplet, error) {
	if rows < 0 || cols < 0 || nzmax < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Triplet{
		Rows:   rows,
		Cols:   cols,
		NZMax:  nzmax,
		RowIdx: make([]int, nzmax),
		ColIdx: make([]int, nzmax),
		Values: make([]float64, nzmax),
	}, nil
}

// Dims returns the number of rows and columns.
func (t *Triplet) Dims() (rows, cols int) { return t.Rows, t.Cols }

// Form returns FormTriplet.
func (t *Triplet) Form() Form { return FormTriplet }

func (t *Triplet) sparse() {}

// Append stores (row, col, v) in the next free slot.
// Returns ErrOutOfRange for indices outside the shape and ErrCapacity when
// all NZMax slots are in use.
func (t *Triplet) Append(row, col int, v float64) error {
	if row < 0 || row >= t.Rows || col < 0 || col >= t.Cols {
		return fmt.Errorf("Triplet.Append(%d,%d): %w", row, col, ErrOutOfRange)
	}
	if t.NZ >= t.NZMax || t.NZ >= len(t.RowIdx) || t.NZ >= len(t.ColIdx) || t.NZ >= len(t.Values) {
		return fmt.Errorf("Triplet.Append(%d,%d): %w", row, col, ErrCapacity)
	}
	t.RowIdx[t.NZ] = row
	t.ColIdx[t.NZ] = col
	t.Values[t.NZ] = v
	t.NZ++

	return nil
}
