// Package cscutil is the sparse-matrix substrate of a solver: the
// compressed-sparse-column layout, its conversions and the diagnostics
// around it.
//
// Under the hood, everything is organized under two subpackages:
//
//	csc/       — Compressed & Triplet layouts, ToDense/FromDense, Copy, Equal, Printer
//	settings/  — solver knobs, compiled-in defaults and an env/dotenv overlay
//
// The Printer's debug capability is usually fed from the solver settings:
//
//	s := settings.New()
//	_ = settings.LoadEnv(s, ".env")
//	p := csc.NewPrinter(os.Stderr, csc.WithDebug(s.Verbose))
//	p.PrintCompressed(A, "A")
//
// Nothing here performs sparse arithmetic or persists matrices.
package cscutil
