// SPDX-License-Identifier: MIT

// Package settings holds the solver knobs the csc layer travels with and
// their compiled-in defaults.
//
// ApplyDefaults is pure assignment into caller-owned memory. LoadEnv overlays
// values from the environment (and optional dotenv files) on top.
package settings

// Defaults (single source of truth).
const (
	// DefaultMaxIter is the maximum number of solver iterations.
	DefaultMaxIter = 2500

	// DefaultEps is the convergence tolerance.
	DefaultEps = 1e-5

	// DefaultAlpha is the relaxation parameter.
	DefaultAlpha = 1.6

	// DefaultVerbose enables solver diagnostics.
	DefaultVerbose = true

	// DefaultWarmStart reuses the previous solution as the starting point.
	DefaultWarmStart = false
)

// Settings is the configuration record owned by the solver.
type Settings struct {
	MaxIter   int     // maximum iterations to take
	Eps       float64 // convergence tolerance
	Alpha     float64 // relaxation parameter
	Verbose   bool    // print diagnostics
	WarmStart bool    // start from the previous solution
}

// ApplyDefaults overwrites every field of s with its Default constant,
// regardless of prior content.
func ApplyDefaults(s *Settings) {
	s.MaxIter = DefaultMaxIter
	s.Eps = DefaultEps
	s.Alpha = DefaultAlpha
	s.Verbose = DefaultVerbose
	s.WarmStart = DefaultWarmStart
}

// New returns Settings populated with the defaults.
func New() *Settings {
	s := &Settings{}
	ApplyDefaults(s)

	return s
}
