// SPDX-License-Identifier: MIT

// Package csc offers compressed-sparse-column matrices and the diagnostics
// layer a solver needs around them.
//
// The csc package provides:
//
//   - Compressed (CSC) and Triplet sparse layouts behind the sealed Sparse
//     variant, so the representation is explicit in the type.
//   - ToDense / FromDense conversion to a column-major Dense buffer, plus a
//     bridge to gonum's mat.Dense.
//   - Copy, a deep copy into a pre-allocated destination with checked capacity.
//   - Equal, structural equality with an absolute numeric tolerance.
//   - Printer, stable text rendering of sparse, dense and vector values.
//
// Matrices are owned by the caller. Apart from the constructors and
// FromDense/Compress, nothing here allocates a sparse matrix; operations only
// read from (or, for Copy, write into) caller-provided values.
//
// Structural invariants (see ValidateCompressed) are assumed, not re-checked,
// by ToDense, Equal and the printers. Violating them is a caller bug.
package csc
