// SPDX-License-Identifier: MIT

// Package conformance is the per-dimension check battery for the vector and
// matrix packages, packaged as a library so both `go test` and the
// vecmat-check command can drive it.
//
// What:
//
//   - For every dimension N in the configured range it instantiates the
//     vector checks (creation, addition, subtraction, scaling, dot product,
//     length, normalization, equality, round trip) and the matrix checks
//     (creation, addition, subtraction, scaling, column selection, row
//     selection, identity, associativity, transpose, equality, round trip).
//   - All vector checks run before any matrix check, dimension by dimension.
//
// Failures:
//
//	A failing check returns an error wrapping ErrCheckFailed with the
//	observed and expected values. A check that panics is recovered and
//	reported as ErrCheckPanicked; Run never crashes.
//
// Usage:
//
//	rep := conformance.Run(conformance.WithDims(1, 4), conformance.WithFailFast(false))
//	for _, r := range rep.Failures() {
//		fmt.Println(r)
//	}
package conformance
