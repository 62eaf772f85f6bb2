// SPDX-License-Identifier: MIT

// Package csc - diagnostic rendering.
//
// Purpose:
//   - Render sparse, dense and vector values in a stable, line-oriented text
//     form for debugging a solver. Not intended for machine parsing.
//   - Gate all output behind one capability fixed at construction
//     (WithDebug), instead of checking a flag at every call site.
//
// Formats:
//
//	PrintCompressed:  "<label> :\n" then "\t[%3d,%3d] = %.6g\n" per entry
//	PrintTriplet:     "<label> :\n" then "\t[%3d, %3d] = %.6g\n" per entry
//	PrintDense:       "<label> = \n\t" then "% .5f,  " per cell,
//	                  "% .5f;  " for the last cell of a row, rows joined by "\n\t"
//	PrintVector:      PrintDense as a 1×n matrix
//
// Sparse values use six significant digits with trailing zeros removed,
// the same rendering as a C "%g".
//
// Write errors from the sink are ignored.
package csc

import (
	"fmt"
	"io"
)

// ---------- Formatting literals ----------
const (
	_fmtSparseHeader = "%s :\n"
	_fmtCompressed   = "\t[%3d,%3d] = %.6g\n"
	_fmtTriplet      = "\t[%3d, %3d] = %.6g\n"
	_fmtDenseHeader  = "%s = \n\t"
	_fmtDenseCell    = "% .5f,  "
	_fmtDenseLast    = "% .5f;  "
	_fmtDenseRowSep  = "\n\t"
	_fmtDenseEnd     = "\n"
)

// Printer renders matrices to an io.Writer.
// A Printer built with WithDebug(false) renders nothing.
type Printer struct {
	w       io.Writer
	enabled bool
}

// NewPrinter returns a Printer writing to w.
// Only WithDebug is meaningful here; other options are ignored.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	o := gatherOptions(opts...)

	return &Printer{w: w, enabled: o.debug && w != nil}
}

// Enabled reports whether the Printer writes anything.
func (p *Printer) Enabled() bool { return p.enabled }

// Print renders s in the format matching its layout.
func (p *Printer) Print(s Sparse, label string) {
	switch m := s.(type) {
	case *Compressed:
		p.PrintCompressed(m, label)
	case *Triplet:
		p.PrintTriplet(m, label)
	}
}

// PrintCompressed writes the label line, then one line per stored entry in
// storage order. Columns without entries produce no lines.
// Complexity: O(cols + nnz).
func (p *Printer) PrintCompressed(m *Compressed, label string) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, _fmtSparseHeader, label)

	var i, j int
	for j = 0; j < m.Cols; j++ {
		for i = m.ColPtr[j]; i < m.ColPtr[j+1]; i++ {
			fmt.Fprintf(p.w, _fmtCompressed, m.RowIdx[i], j, m.Values[i])
		}
	}
}

// PrintTriplet writes the label line, then one line per populated entry
// (k < NZ) in storage order.
// Complexity: O(nz).
func (p *Printer) PrintTriplet(t *Triplet, label string) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, _fmtSparseHeader, label)

	for k := 0; k < t.NZ; k++ {
		fmt.Fprintf(p.w, _fmtTriplet, t.RowIdx[k], t.ColIdx[k], t.Values[k])
	}
}

// PrintDense writes a rows×cols column-major buffer row by row with five
// decimals. Cell (i, j) is read from data[j*rows+i].
// Complexity: O(rows*cols).
func (p *Printer) PrintDense(data []float64, rows, cols int, label string) {
	if !p.enabled {
		return
	}
	fmt.Fprintf(p.w, _fmtDenseHeader, label)

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if j < cols-1 {
				fmt.Fprintf(p.w, _fmtDenseCell, data[j*rows+i])
			} else {
				fmt.Fprintf(p.w, _fmtDenseLast, data[j*rows+i])
			}
		}
		if i < rows-1 {
			io.WriteString(p.w, _fmtDenseRowSep)
		}
	}
	io.WriteString(p.w, _fmtDenseEnd)
}

// PrintVector writes the first n values of v as a single row.
func (p *Printer) PrintVector(v []float64, n int, label string) {
	p.PrintDense(v, 1, n, label)
}

// PrintMatrix writes d via PrintDense.
func (p *Printer) PrintMatrix(d *Dense, label string) {
	p.PrintDense(d.Data, d.Rows, d.Cols, label)
}
