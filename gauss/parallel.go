package gauss

import (
	"github.com/katalvlaran/kernels/matrix"
	"github.com/katalvlaran/kernels/parallel"
)

const opSolveParallel = "SolveParallel"

// Options configures SolveParallel.
type Options struct {
	// Threads is the number of workers per phase. Values ≤ 0 select DefaultThreads.
	Threads int
}

// DefaultThreads returns one less than the CPU count (at least 1), capped at the
// number of columns of aug so no worker is left without a column in the widest phase.
func DefaultThreads(aug *matrix.Dense) int {
	t := parallel.DefaultWorkers() - 1
	if t < 1 {
		t = 1
	}
	if aug != nil && aug.Cols() > 0 && t > aug.Cols() {
		t = aug.Cols()
	}

	return t
}

// SolveParallel is Solve with every phase split across opts.Threads goroutines.
//
// Implementation (fresh goroutines per phase, joined before the next one starts):
//   - Divide: the pivot value is read first, then columns i..n of row i are split.
//   - Eliminate: rows i+1..n-1 are split; each worker updates its own rows.
//   - Assign: x(k) = a(k,n) for all k, split by row.
//   - Substitute: for i = n-2..0 the columns i+1..n-1 are split; each worker sums
//     a(i,j)·x(j) over its range into its own slot, and after the join the slots are
//     subtracted from x(i) in worker order.
//
// Determinism: for a fixed Threads value, repeated calls on equal inputs return
// bit-identical results. Results agree with Solve only up to floating-point
// reassociation, since the substitute phase sums each range before subtracting it.
//
// Complexity: O(n³) work, O(n) extra space, 4 joins per pivot row at most.
func SolveParallel(aug *matrix.Dense, opts Options) ([]float64, error) {
	if err := Validate(aug); err != nil {
		return nil, gaussErrorf(opSolveParallel, err)
	}

	var (
		threads = opts.Threads
		a       = aug.RowViews()
		n       = len(a)
		x       = make([]float64, n)
		i, w    int
		err     error
	)
	if threads <= 0 {
		threads = DefaultThreads(aug)
	}
	partials := make([]float64, threads)

	// Stage 1: forward elimination, two phases per pivot.
	for i = 0; i < n; i++ {
		pivotRow := a[i]
		pivot := pivotRow[i]

		err = parallel.ForEach(parallel.SplitFrom(i, n+1, threads), func(_ int, r parallel.Range) error {
			for j := r.Start; j < r.End; j++ {
				pivotRow[j] /= pivot
			}
			return nil
		})
		if err != nil {
			return nil, gaussErrorf(opSolveParallel, err)
		}

		col := i
		err = parallel.ForEach(parallel.SplitFrom(i+1, n, threads), func(_ int, r parallel.Range) error {
			for k := r.Start; k < r.End; k++ {
				row := a[k]
				f := row[col]
				for j := col; j <= n; j++ {
					row[j] -= f * pivotRow[j]
				}
			}
			return nil
		})
		if err != nil {
			return nil, gaussErrorf(opSolveParallel, err)
		}
	}

	// Stage 2: back substitution.
	err = parallel.Run(n, threads, func(_ int, r parallel.Range) error {
		for k := r.Start; k < r.End; k++ {
			x[k] = a[k][n]
		}
		return nil
	})
	if err != nil {
		return nil, gaussErrorf(opSolveParallel, err)
	}

	for i = n - 2; i >= 0; i-- {
		row := a[i]
		target := i
		clear(partials)
		err = parallel.ForEach(parallel.SplitFrom(i+1, n, threads), func(worker int, r parallel.Range) error {
			var partial float64
			for j := r.Start; j < r.End; j++ {
				partial += row[j] * x[j]
			}
			partials[worker] = partial
			return nil
		})
		if err != nil {
			return nil, gaussErrorf(opSolveParallel, err)
		}
		for w = range partials {
			x[target] -= partials[w]
		}
	}

	return x, nil
}
