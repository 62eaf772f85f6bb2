// SPDX-License-Identifier: MIT
// Package csc: sentinel error set.
// Every error returned by this package is one of these sentinels, possibly
// wrapped with fmt.Errorf("ctx: %w", ErrX). Match with errors.Is.
// Equal and the printers never return errors: "not equal" is a normal result.

package csc

import "errors"

var (
	// ErrInvalidDimensions is returned when rows, cols or nzmax is negative.
	ErrInvalidDimensions = errors.New("csc: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("csc: index out of range")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("csc: nil matrix")

	// ErrColPtr signals a malformed column-pointer array: wrong length,
	// ColPtr[0] != 0, a decreasing step, or ColPtr[n] > NZMax.
	ErrColPtr = errors.New("csc: malformed column pointers")

	// ErrCapacity signals that row/value storage is shorter than NZMax
	// (or, for Copy, shorter than the source's NZMax).
	ErrCapacity = errors.New("csc: insufficient capacity")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. a Copy destination with fewer column pointers than the source.
	ErrDimensionMismatch = errors.New("csc: dimension mismatch")
)
