package tsp

import (
	"fmt"

	"github.com/katalvlaran/kernels/matrix"
	"github.com/katalvlaran/kernels/parallel"
)

// Solve runs the ant colony over dist and returns the best closed tour found.
//
// Contract:
//   - dist must classify as GraphNormal or GraphDirected; any other status is returned
//     in TSResult.Status together with the matching sentinel, and no tour is built.
//   - opts must pass validation, else ErrBadOptions.
//   - dist is read once into private storage and never modified.
//
// Implementation:
//   - Stage 1: classify the graph and validate options.
//   - Stage 2: seed pheromone, derive one RNG stream per worker.
//   - Stage 3: for each of opts.Repeats blocks: evaporate (from the second block on),
//     run the block (inline, or forked over Workers goroutines sharing the colony),
//     then merge worker-local bests in worker order.
//
// Determinism: with a fixed Seed, single-threaded runs are reproducible; multithreaded
// runs are reproducible when Repeats == 1 (Delta summation order only affects later blocks).
//
// Complexity: O(Repeats · Passes · n³) time, O(n²) space.
func Solve(dist matrix.Matrix, opts Options) (TSResult, error) {
	// Stage 1: input gates.
	status, err := classify(dist)
	if err != nil {
		return TSResult{Status: status}, err
	}
	if err = validateOptions(opts); err != nil {
		return TSResult{Status: status}, err
	}

	// Stage 2: shared colony plus per-worker ants.
	var (
		c       = newColony(dist, opts)
		workers = 1
	)
	if opts.Multithreaded {
		workers = opts.Workers
	}
	var (
		shares = parallel.Split(opts.Passes, workers)
		rngs   = workerRNGs(rngFromSeed(opts.Seed), workers)
		ants   = make([]*ant, workers)
		locals = make([]tourBest, workers)
		w      int
		block  int
	)
	for w = 0; w < workers; w++ {
		ants[w] = newAnt(c, rngs[w])
	}

	// Stage 3: blocks.
	for block = 0; block < opts.Repeats; block++ {
		if block > 0 {
			c.evaporate()
		}
		if workers == 1 {
			ants[0].run(shares[0].Len())
		} else {
			err = parallel.ForEach(shares, func(worker int, r parallel.Range) error {
				ants[worker].run(r.Len())
				return nil
			})
			if err != nil {
				return TSResult{Status: status}, fmt.Errorf("Solve: block %d: %w", block, err)
			}
		}
		for w = range ants {
			locals[w] = ants[w].local
		}
		c.merge(locals)
	}

	return c.result(status), nil
}
