package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kernels/matrix"
)

// costScale is the rounding grid for reported tour costs.
const costScale = 1e9

// TourCost returns the length of a closed 0-based tour over dist, rounded to 1e-9.
//
// Contract:
//   - tour lists vertex indices and repeats its first vertex at the end (len ≥ 2).
//   - Each edge tour[i]→tour[i+1] is read as dist(tour[i], tour[i+1]); direction matters.
//   - Indices outside [0,n) yield ErrInvalidTour; non-finite weights yield ErrInvalidWeight.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if err := checkSquare(dist); err != nil {
		return 0, fmt.Errorf("TourCost: %w", err)
	}
	if len(tour) < 2 || tour[0] != tour[len(tour)-1] {
		return 0, fmt.Errorf("TourCost: open or empty tour: %w", ErrInvalidTour)
	}

	var (
		n    = dist.Rows()
		sum  float64
		i    int
		u, v int
		w    float64
		err  error
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("TourCost: edge %d->%d: %w", u, v, ErrInvalidTour)
		}
		if w, err = dist.At(u, v); err != nil {
			return 0, fmt.Errorf("TourCost: %w", err)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("TourCost: edge %d->%d: %w", u, v, ErrInvalidWeight)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 snaps x to the 1e-9 grid so repeated sums of the same edges compare equal.
func round1e9(x float64) float64 {
	return math.Round(x*costScale) / costScale
}
