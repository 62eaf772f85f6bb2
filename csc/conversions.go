// SPDX-License-Identifier: MIT

// Package csc - adapters between layouts.
//
//   - FromDense: Dense → Compressed (drops exact zeros).
//   - (*Triplet).Compress: Triplet → Compressed.
//   - (*Dense).ToGonum / DenseFromGonum: bridge to gonum's row-major mat.Dense.
package csc

import (
	"gonum.org/v1/gonum/mat"
)

// FromDense builds a Compressed matrix holding every nonzero cell of d.
// Rows ascend within each column and NZMax equals the stored count, so
// ToDense(FromDense(d)) reproduces d exactly.
// Complexity: O(rows*cols).
func FromDense(d *Dense) *Compressed {
	nnz := 0
	for _, v := range d.Data {
		if v != 0 {
			nnz++
		}
	}

	m := &Compressed{
		Rows:   d.Rows,
		Cols:   d.Cols,
		NZMax:  nnz,
		ColPtr: make([]int, d.Cols+1),
		RowIdx: make([]int, nnz),
		Values: make([]float64, nnz),
	}

	k := 0
	var i, j int
	for j = 0; j < d.Cols; j++ {
		m.ColPtr[j] = k
		for i = 0; i < d.Rows; i++ {
			v := d.Data[j*d.Rows+i]
			if v == 0 {
				continue
			}
			m.RowIdx[k] = i
			m.Values[k] = v
			k++
		}
	}
	m.ColPtr[d.Cols] = k

	return m
}

// Compress converts t into CSC form.
//
// Implementation:
//   - Stage 1: count entries per column.
//   - Stage 2: prefix-sum the counts into ColPtr.
//   - Stage 3: scatter entries; within a column they keep triplet order.
//
// Behavior highlights:
//   - Duplicate (row, col) pairs stay separate entries; nothing is summed.
//   - The result has NZMax == t.NZ.
//
// Complexity:
//   - Time O(nz + cols), Space O(nz + cols).
func (t *Triplet) Compress() *Compressed {
	m := &Compressed{
		Rows:   t.Rows,
		Cols:   t.Cols,
		NZMax:  t.NZ,
		ColPtr: make([]int, t.Cols+1),
		RowIdx: make([]int, t.NZ),
		Values: make([]float64, t.NZ),
	}

	var k int
	for k = 0; k < t.NZ; k++ {
		m.ColPtr[t.ColIdx[k]+1]++
	}
	for j := 0; j < t.Cols; j++ {
		m.ColPtr[j+1] += m.ColPtr[j]
	}

	next := make([]int, t.Cols)
	copy(next, m.ColPtr[:t.Cols])
	for k = 0; k < t.NZ; k++ {
		p := next[t.ColIdx[k]]
		m.RowIdx[p] = t.RowIdx[k]
		m.Values[p] = t.Values[k]
		next[t.ColIdx[k]]++
	}

	return m
}

// ToGonum copies d into a gonum row-major *mat.Dense.
// gonum does not represent empty matrices, so a shape with zero rows or
// columns returns ErrInvalidDimensions.
// Complexity: O(rows*cols).
func (d *Dense) ToGonum() (*mat.Dense, error) {
	if d.Rows == 0 || d.Cols == 0 {
		return nil, ErrInvalidDimensions
	}

	g := mat.NewDense(d.Rows, d.Cols, nil)
	var i, j int
	for j = 0; j < d.Cols; j++ {
		for i = 0; i < d.Rows; i++ {
			g.Set(i, j, d.Data[j*d.Rows+i])
		}
	}

	return g, nil
}

// DenseFromGonum copies any gonum matrix into a column-major Dense.
// Complexity: O(rows*cols).
func DenseFromGonum(a mat.Matrix) *Dense {
	r, c := a.Dims()
	d := &Dense{Rows: r, Cols: c, Data: make([]float64, r*c)}
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			d.Data[j*r+i] = a.At(i, j)
		}
	}

	return d
}
