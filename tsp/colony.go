package tsp

import (
	"math"
	"sync"

	"github.com/katalvlaran/kernels/matrix"
)

// colony is the shared state of one Solve call.
//
// Ownership:
//   - dist and pheromone are written only between blocks, by the coordinating goroutine.
//   - delta is written by workers during a block, always under mu.
//   - best is updated only under mu.
type colony struct {
	n    int
	dist []float64 // row-major n×n copy of the input

	pheromone []float64
	delta     []float64

	attract     Attractiveness
	deposit     float64
	evaporation float64

	mu   sync.Mutex
	best tourBest
}

// tourBest is the cheapest tour observed so far. Its zero value is "no tour yet".
type tourBest struct {
	path []int // 0-based, open (length n)
	cost float64
	ok   bool
}

// offer replaces b with (path, cost) when cost is strictly lower. path is copied.
func (b *tourBest) offer(path []int, cost float64) {
	if b.ok && cost >= b.cost {
		return
	}
	b.path = append(b.path[:0], path...)
	b.cost = cost
	b.ok = true
}

// newColony copies dist into flat storage and seeds pheromone on every existing edge.
func newColony(dist matrix.Matrix, opts Options) *colony {
	var n = dist.Rows()
	c := &colony{
		n:           n,
		dist:        make([]float64, n*n),
		pheromone:   make([]float64, n*n),
		delta:       make([]float64, n*n),
		attract:     opts.Attractiveness,
		deposit:     opts.Deposit,
		evaporation: opts.Evaporation,
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w, _ = dist.At(i, j)
			c.dist[i*n+j] = w
			if i != j && w != 0 {
				c.pheromone[i*n+j] = opts.InitialPheromone
			}
		}
	}

	return c
}

// weight is the unnormalized transition weight of edge u→v.
func (c *colony) weight(u, v int) float64 {
	var (
		idx = u*c.n + v
		d   = c.dist[idx]
	)
	if c.attract == AttractInverse {
		return c.pheromone[idx] / d
	}

	return c.pheromone[idx] * d
}

// tourCost sums the closed tour over the cached distances, rounded to 1e-9.
func (c *colony) tourCost(path []int) float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(path); i++ {
		sum += c.dist[path[i]*c.n+path[i+1]]
	}
	sum += c.dist[path[len(path)-1]*c.n+path[0]]

	return round1e9(sum)
}

// depositTour adds Deposit/cost to delta for every edge of the closed tour.
func (c *colony) depositTour(path []int, cost float64) {
	if !(cost > 0) {
		return
	}
	var (
		amount = c.deposit / cost
		i      int
		last   = len(path) - 1
	)

	c.mu.Lock()
	for i = 0; i < last; i++ {
		c.delta[path[i]*c.n+path[i+1]] += amount
	}
	c.delta[path[last]*c.n+path[0]] += amount
	c.mu.Unlock()
}

// evaporate applies pheromone = pheromone × evaporation + delta on existing edges
// and clears delta. Called between blocks only.
func (c *colony) evaporate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var i int
	for i = range c.pheromone {
		if c.dist[i] != 0 {
			c.pheromone[i] = c.pheromone[i]*c.evaporation + c.delta[i]
		}
		c.delta[i] = 0
	}
}

// merge folds worker-local bests into the shared best in worker order, so a tie
// between workers keeps the lower worker id.
func (c *colony) merge(locals []tourBest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var w int
	for w = range locals {
		if locals[w].ok {
			c.best.offer(locals[w].path, locals[w].cost)
		}
	}
}

// result converts the shared best into the public 1-based closed form.
func (c *colony) result(status GraphStatus) TSResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.best.ok {
		return TSResult{Cost: math.Inf(1), Status: status}
	}
	tour := make([]int, 0, c.n+1)
	for _, v := range c.best.path {
		tour = append(tour, v+1)
	}
	tour = append(tour, c.best.path[0]+1)

	return TSResult{Tour: tour, Cost: c.best.cost, Status: status}
}
