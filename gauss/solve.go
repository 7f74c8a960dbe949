package gauss

import (
	"github.com/katalvlaran/kernels/matrix"
)

const (
	opValidate = "Validate"
	opSolve    = "Solve"
)

// minUnknowns is the smallest system either solver accepts.
const minUnknowns = 2

// Validate reports whether aug is an n×(n+1) augmented matrix with n ≥ 2.
//
// Errors: matrix.ErrNilMatrix for a nil pointer, ErrNotAugmented for any other shape.
func Validate(aug *matrix.Dense) error {
	if aug == nil {
		return gaussErrorf(opValidate, matrix.ErrNilMatrix)
	}
	if aug.Rows() < minUnknowns || aug.Cols() != aug.Rows()+1 {
		return gaussErrorf(opValidate, ErrNotAugmented)
	}

	return nil
}

// IsAugmented is the boolean form of Validate.
func IsAugmented(aug *matrix.Dense) bool { return Validate(aug) == nil }

// Solve reduces aug in place and returns the solution vector x of A·x = b.
//
// Implementation:
//   - Stage 1: for each pivot i, divide row i (columns i..n) by a(i,i), then subtract
//     a(k,i)·row i from every row k > i.
//   - Stage 2: x(n-1) = a(n-1,n); for i = n-2..0, x(i) = a(i,n) − Σ_{j>i} a(i,j)·x(j).
//
// Complexity: O(n³) time, O(n) extra space.
func Solve(aug *matrix.Dense) ([]float64, error) {
	if err := Validate(aug); err != nil {
		return nil, gaussErrorf(opSolve, err)
	}

	var (
		a     = aug.RowViews()
		n     = len(a)
		i, j  int
		k     int
		pivot float64
		f     float64
	)

	// Stage 1: forward elimination.
	for i = 0; i < n; i++ {
		pivot = a[i][i]
		for j = i; j <= n; j++ {
			a[i][j] /= pivot
		}
		for k = i + 1; k < n; k++ {
			f = a[k][i]
			for j = i; j <= n; j++ {
				a[k][j] -= f * a[i][j]
			}
		}
	}

	// Stage 2: back substitution.
	x := make([]float64, n)
	for i = n - 1; i >= 0; i-- {
		x[i] = a[i][n]
		for j = i + 1; j < n; j++ {
			x[i] -= a[i][j] * x[j]
		}
	}

	return x, nil
}
