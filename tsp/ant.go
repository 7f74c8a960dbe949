package tsp

import "math/rand"

// ant builds tours for a single worker. Its buffers are reused across walks,
// so an ant must never be shared between goroutines.
type ant struct {
	c   *colony
	rng *rand.Rand

	unvisited []int     // ascending vertex ids not yet on the path
	prob      []float64 // transition weights aligned with unvisited
	path      []int
	local     tourBest
}

func newAnt(c *colony, rng *rand.Rand) *ant {
	return &ant{
		c:         c,
		rng:       rng,
		unvisited: make([]int, 0, c.n),
		prob:      make([]float64, 0, c.n),
		path:      make([]int, 0, c.n),
	}
}

// walk constructs one Hamiltonian path starting at start and returns it with the
// cost of its closure. The returned slice is reused by the next walk.
//
// Implementation:
//   - Stage 1: all vertices except start are candidates, kept in ascending order.
//   - Stage 2: at each step, draw u ∈ [0,1) and pick the first candidate whose
//     cumulative normalized weight reaches u; rounding shortfall picks the last one.
//   - Stage 3: when every weight is zero (fully evaporated row) pick uniformly.
//
// Complexity: O(n²) per walk.
func (a *ant) walk(start int) ([]int, float64) {
	var (
		n    = a.c.n
		v    int
		cur  = start
		pick int
	)

	// Stage 1: reset buffers.
	a.path = append(a.path[:0], start)
	a.unvisited = a.unvisited[:0]
	for v = 0; v < n; v++ {
		if v != start {
			a.unvisited = append(a.unvisited, v)
		}
	}

	// Stage 2: roulette steps until every vertex is on the path.
	for len(a.unvisited) > 0 {
		pick = a.choose(cur)
		cur = a.unvisited[pick]
		a.path = append(a.path, cur)
		a.unvisited = append(a.unvisited[:pick], a.unvisited[pick+1:]...)
	}

	return a.path, a.c.tourCost(a.path)
}

// choose returns the index into unvisited of the next vertex after cur.
func (a *ant) choose(cur int) int {
	var (
		sum float64
		w   float64
		i   int
	)
	a.prob = a.prob[:0]
	for _, v := range a.unvisited {
		w = a.c.weight(cur, v)
		a.prob = append(a.prob, w)
		sum += w
	}
	if !(sum > 0) {
		return a.rng.Intn(len(a.unvisited))
	}

	var (
		u   = a.rng.Float64()
		acc float64
	)
	for i = range a.prob {
		acc += a.prob[i] / sum
		if acc >= u {
			return i
		}
	}

	return len(a.prob) - 1
}

// run performs passes construction passes; each pass starts one walk at every vertex.
// Finished tours reinforce the shared delta and compete for the ant's local best.
func (a *ant) run(passes int) {
	var (
		p, s int
		path []int
		cost float64
	)
	for p = 0; p < passes; p++ {
		for s = 0; s < a.c.n; s++ {
			path, cost = a.walk(s)
			a.c.depositTour(path, cost)
			a.local.offer(path, cost)
		}
	}
}
