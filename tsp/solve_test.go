package tsp_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/kernels/matrix"
	"github.com/katalvlaran/kernels/tsp"
	"github.com/stretchr/testify/require"
)

// square4 is the classic four-city instance; its optimal tour costs 80.
var square4 = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// randomSymmetric builds an n×n complete symmetric graph with integer weights in [lo,hi].
func randomSymmetric(t *testing.T, n int, lo, hi int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := float64(lo + rng.Intn(hi-lo+1))
			require.NoError(t, m.Set(i, j, w))
			require.NoError(t, m.Set(j, i, w))
		}
	}

	return m
}

// bruteForce returns the optimal closed-tour cost by enumerating permutations fixed at 0.
func bruteForce(t *testing.T, m *matrix.Dense) float64 {
	t.Helper()
	n := m.Rows()
	rest := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		rest = append(rest, v)
	}
	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			tour := append(append([]int{0}, rest...), 0)
			c, err := tsp.TourCost(m, tour)
			require.NoError(t, err)
			best = math.Min(best, c)
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

// requireValidTour checks the 1-based closed form and that Cost matches the tour.
func requireValidTour(t *testing.T, dist *matrix.Dense, res tsp.TSResult) {
	t.Helper()
	n := dist.Rows()
	require.Len(t, res.Tour, n+1)
	require.Equal(t, res.Tour[0], res.Tour[n])

	seen := slices.Clone(res.Tour[:n])
	slices.Sort(seen)
	for i, v := range seen {
		require.Equal(t, i+1, v, "tour %v is not a permutation of 1..%d", res.Tour, n)
	}

	c, err := tsp.TourCost(dist, res.ZeroBased())
	require.NoError(t, err)
	require.InDelta(t, c, res.Cost, 1e-9)
}

func TestSolveSquare4FindsOptimum(t *testing.T) {
	dist := dense(t, square4)
	for _, multi := range []bool{false, true} {
		opts := tsp.DefaultOptions()
		opts.Multithreaded = multi
		opts.Passes = 200

		res, err := tsp.Solve(dist, opts)
		require.NoError(t, err)
		require.Equal(t, tsp.GraphNormal, res.Status)
		requireValidTour(t, dist, res)
		require.Equal(t, 80.0, res.Cost, "multithreaded=%v tour=%v", multi, res.Tour)
	}
}

func TestSolveMatchesBruteForceOnSmallGraphs(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		dist := randomSymmetric(t, 5, 5, 10, seed)
		want := bruteForce(t, dist)

		for _, multi := range []bool{false, true} {
			opts := tsp.DefaultOptions()
			opts.Multithreaded = multi
			opts.Seed = seed

			res, err := tsp.Solve(dist, opts)
			require.NoError(t, err)
			requireValidTour(t, dist, res)
			require.Equal(t, want, res.Cost, "seed=%d multithreaded=%v", seed, multi)
		}
	}
}

func TestSolveLargerGraphNeverBeatsOptimum(t *testing.T) {
	dist := randomSymmetric(t, 8, 1, 50, 42)
	want := bruteForce(t, dist)

	opts := tsp.DefaultOptions()
	opts.Repeats = 3
	opts.Passes = 100
	opts.Attractiveness = tsp.AttractInverse
	opts.Multithreaded = true

	res, err := tsp.Solve(dist, opts)
	require.NoError(t, err)
	requireValidTour(t, dist, res)
	require.GreaterOrEqual(t, res.Cost, want)
}

func TestSolveRejectsBadGraphs(t *testing.T) {
	cases := []struct {
		name   string
		dist   matrix.Matrix
		status tsp.GraphStatus
		err    error
	}{
		{"nil", nil, tsp.GraphInvalid, matrix.ErrNilMatrix},
		{"typed nil", (*matrix.Dense)(nil), tsp.GraphInvalid, matrix.ErrNilMatrix},
		{"2x2", dense(t, [][]float64{{0, 1}, {1, 0}}), tsp.GraphSmall, tsp.ErrGraphTooSmall},
		{"non-square", dense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), tsp.GraphInvalid, tsp.ErrNonSquare},
		{"missing edge", dense(t, [][]float64{{0, 1, 0}, {1, 0, 2}, {3, 2, 0}}), tsp.GraphIncomplete, tsp.ErrIncompleteGraph},
		{"negative", dense(t, [][]float64{{0, 1, 1}, {1, 0, -2}, {1, -2, 0}}), tsp.GraphInvalid, tsp.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tsp.Solve(tc.dist, tsp.DefaultOptions())
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, tc.status, res.Status)
			require.Nil(t, res.Tour)
			require.Equal(t, tc.status, tsp.Classify(tc.dist))
		})
	}
}

func TestClassifyChecksCompletenessBeforeSymmetry(t *testing.T) {
	// Asymmetric in the upper-left pair, missing edge in the last row.
	dist := dense(t, [][]float64{
		{0, 1, 4},
		{2, 0, 5},
		{4, 0, 0},
	})
	require.Equal(t, tsp.GraphIncomplete, tsp.Classify(dist))
}

func TestSolveDirectedGraphRuns(t *testing.T) {
	dist := dense(t, [][]float64{
		{0, 1, 9, 9},
		{9, 0, 1, 9},
		{9, 9, 0, 1},
		{1, 9, 9, 0},
	})
	require.Equal(t, tsp.GraphDirected, tsp.Classify(dist))

	opts := tsp.DefaultOptions()
	opts.Attractiveness = tsp.AttractInverse
	opts.Passes = 50
	res, err := tsp.Solve(dist, opts)
	require.NoError(t, err)
	require.Equal(t, tsp.GraphDirected, res.Status)
	requireValidTour(t, dist, res)
	require.Equal(t, 4.0, res.Cost)
}

func TestSolveIsReproducible(t *testing.T) {
	dist := randomSymmetric(t, 7, 1, 30, 7)

	single := tsp.DefaultOptions()
	single.Repeats = 3
	single.Passes = 50
	single.Seed = 99

	multi := tsp.DefaultOptions()
	multi.Multithreaded = true
	multi.Passes = 40
	multi.Seed = 99

	for _, opts := range []tsp.Options{single, multi} {
		first, err := tsp.Solve(dist, opts)
		require.NoError(t, err)
		second, err := tsp.Solve(dist, opts)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestSolveMoreWorkersThanPasses(t *testing.T) {
	dist := dense(t, square4)
	opts := tsp.DefaultOptions()
	opts.Multithreaded = true
	opts.Workers = 8
	opts.Passes = 3

	res, err := tsp.Solve(dist, opts)
	require.NoError(t, err)
	requireValidTour(t, dist, res)
}

func TestSolveRejectsBadOptions(t *testing.T) {
	dist := dense(t, square4)
	mutations := map[string]func(*tsp.Options){
		"repeats":     func(o *tsp.Options) { o.Repeats = 0 },
		"workers":     func(o *tsp.Options) { o.Workers = 0 },
		"passes":      func(o *tsp.Options) { o.Passes = -1 },
		"pheromone":   func(o *tsp.Options) { o.InitialPheromone = 0 },
		"evaporation": func(o *tsp.Options) { o.Evaporation = 1.5 },
		"deposit":     func(o *tsp.Options) { o.Deposit = math.NaN() },
		"attract":     func(o *tsp.Options) { o.Attractiveness = 7 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			opts := tsp.DefaultOptions()
			mutate(&opts)
			_, err := tsp.Solve(dist, opts)
			require.ErrorIs(t, err, tsp.ErrBadOptions)
		})
	}
}

func TestTourCost(t *testing.T) {
	dist := dense(t, square4)

	c, err := tsp.TourCost(dist, []int{0, 1, 3, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 80.0, c)

	_, err = tsp.TourCost(dist, []int{0, 1, 2})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = tsp.TourCost(dist, []int{0, 4, 0})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
	_, err = tsp.TourCost(nil, []int{0, 0})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.NotPanics(t, func() {
		_, err = tsp.TourCost(typedNil, []int{0, 0})
	})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = tsp.TourCost(dense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrNonSquare)
}

func TestGraphStatusString(t *testing.T) {
	require.Equal(t, "directed", tsp.GraphDirected.String())
	require.Equal(t, "unknown", tsp.GraphStatus(42).String())
	require.True(t, tsp.GraphNormal.Runnable())
	require.False(t, tsp.GraphIncomplete.Runnable())
}
