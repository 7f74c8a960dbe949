// Package winograd multiplies dense matrices with Winograd's inner-product identity,
// which trades half of the inner multiplications for precomputed row and column factors.
//
// Three execution modes share one engine:
//   - Sequential: factors, result and odd-dimension correction on the calling goroutine.
//   - ForkJoin: every repeat forks Options.Threads workers over row/column ranges for the
//     factors, joins, then forks them again over row ranges for the result.
//   - Pipelined: four long-lived stages (row factors, column factors, result, correction)
//     hand work to each other through single-slot signals for Options.Repeats iterations.
//
// All modes produce bit-identical results for the same inputs.
package winograd
