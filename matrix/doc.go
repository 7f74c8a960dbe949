// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage shared by the numeric kernels
// of this module, plus its plain-text file format.
//
// The package provides:
//
//   - Matrix, a small interface (shape, bounds-checked At/Set, Clone) that kernels
//     accept when they only read.
//   - Dense, the concrete float64 storage with live row access for hot loops,
//     deterministic random fill and top-left preserving Resize.
//   - Mul, the naive product used as a reference and as the single-column fallback.
//   - Load/Read/Write for the "rows [cols]" text format.
//
// Errors are sentinels from errors.go, wrapped with the failing operation so callers
// match them with errors.Is.
package matrix
