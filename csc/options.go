// SPDX-License-Identifier: MIT

// Package csc: functional configuration for comparison and printing.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options are resolved once per call (Equal) or once per Printer
//     (NewPrinter); there is no package-level mutable state.
//   - The debug gate is a capability captured at construction time, not a
//     parameter of each render call.
package csc

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute tolerance Equal applies to values.
	// Two values a, b match when |a-b| <= DefaultTolerance.
	DefaultTolerance = 1e-6

	// DefaultStrictShape controls whether Equal also compares Rows.
	// false keeps the column-only comparison.
	DefaultStrictShape = false

	// DefaultDebug enables rendering in Printer.
	DefaultDebug = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "csc: WithTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol         float64 // >= 0; DefaultTolerance
	strictShape bool    // DefaultStrictShape
	debug       bool    // DefaultDebug
}

// WithTolerance sets the absolute tolerance used by Equal.
// Panics when tol is NaN, ±Inf or negative.
//
// AI-Hints:
//   - Zero demands bitwise-equal values (modulo signed zero).
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithStrictShape makes Equal reject matrices whose Rows differ.
// By default Rows is not compared and only column structure, row indices
// and values decide equality.
func WithStrictShape() Option {
	return func(o *Options) { o.strictShape = true }
}

// WithDebug enables or disables rendering for a Printer.
// A disabled Printer accepts every call and writes nothing.
func WithDebug(enabled bool) Option {
	return func(o *Options) { o.debug = enabled }
}

// gatherOptions applies user options over the defaults, last writer wins.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:         DefaultTolerance,
		strictShape: DefaultStrictShape,
		debug:       DefaultDebug,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
