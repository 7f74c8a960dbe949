package tsp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/kernels/matrix"
)

// minVertices is the smallest graph the colony runs on.
const minVertices = 3

// Classify inspects dist and returns its GraphStatus without running the solver.
//
// Order of checks:
//  1. nil or non-square ⇒ GraphInvalid.
//  2. n < 3 ⇒ GraphSmall.
//  3. any negative or non-finite off-diagonal weight ⇒ GraphInvalid.
//  4. any zero off-diagonal weight ⇒ GraphIncomplete (over the whole matrix).
//  5. any d(u,v) != d(v,u) ⇒ GraphDirected, otherwise GraphNormal.
//
// The diagonal is ignored.
//
// Complexity: O(n²).
func Classify(dist matrix.Matrix) GraphStatus {
	status, _ := classify(dist)

	return status
}

// checkSquare rejects nil (including a typed nil *matrix.Dense) and non-square
// matrices. Shape failures are reported as ErrNonSquare.
func checkSquare(dist matrix.Matrix) error {
	err := matrix.ValidateSquare(dist)
	if errors.Is(err, matrix.ErrNonSquare) {
		return fmt.Errorf("%dx%d: %w", dist.Rows(), dist.Cols(), ErrNonSquare)
	}

	return err
}

// classify is Classify plus the sentinel that explains a non-runnable status.
func classify(dist matrix.Matrix) (GraphStatus, error) {
	if err := checkSquare(dist); err != nil {
		return GraphInvalid, fmt.Errorf("classify: %w", err)
	}
	var n = dist.Rows()
	if n < minVertices {
		return GraphSmall, fmt.Errorf("classify: %d vertices: %w", n, ErrGraphTooSmall)
	}

	var (
		i, j       int
		w, back    float64
		err        error
		incomplete bool
		directed   bool
	)

	// Stage 1: weights and completeness over the full matrix.
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if w, err = dist.At(i, j); err != nil {
				return GraphInvalid, fmt.Errorf("classify: %w", err)
			}
			switch {
			case math.IsNaN(w) || math.IsInf(w, 0):
				return GraphInvalid, fmt.Errorf("classify: d(%d,%d)=%v: %w", i, j, w, ErrInvalidWeight)
			case w < 0:
				return GraphInvalid, fmt.Errorf("classify: d(%d,%d)=%v: %w", i, j, w, ErrNegativeWeight)
			case w == 0:
				incomplete = true
			}
		}
	}
	if incomplete {
		return GraphIncomplete, fmt.Errorf("classify: %w", ErrIncompleteGraph)
	}

	// Stage 2: symmetry on the upper triangle.
	for i = 0; i < n && !directed; i++ {
		for j = i + 1; j < n; j++ {
			w, _ = dist.At(i, j)
			back, _ = dist.At(j, i)
			if w != back {
				directed = true
				break
			}
		}
	}
	if directed {
		return GraphDirected, nil
	}

	return GraphNormal, nil
}
