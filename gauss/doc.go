// Package gauss solves square linear systems given as augmented matrices [A | b]
// by Gaussian elimination without pivoting, sequentially or with phase-parallel workers.
//
// Both solvers normalise each pivot row, eliminate the rows below it and finish with
// back substitution. The input is reduced in place: after a call the left block of aug
// is upper unit-triangular. A zero pivot is not detected; the result is then undefined
// (typically ±Inf or NaN entries) rather than an error.
package gauss
