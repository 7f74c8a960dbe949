// Package tsp provides a probabilistic Travelling Salesman heuristic (ant colony)
// over a dense distance matrix, in single-threaded and multi-threaded form.
//
// Model:
//   - The graph is an n×n matrix.Matrix with n ≥ 3; a zero off-diagonal entry means
//     "no edge". Complete symmetric graphs are the expected input; complete but
//     asymmetric graphs run and report GraphDirected.
//   - Pheromone holds per-edge desirability; Delta collects reinforcement for the
//     current block and is folded into Pheromone (with evaporation) between blocks.
//
// Algorithm (one block):
//   - Passes × n tour constructions, one per start vertex per pass. Each step picks the
//     next vertex by roulette over pheromone(u,v) × attractiveness(u,v).
//   - Every finished tour adds Deposit/cost to Delta for each traversed edge.
//   - The best tour seen so far is kept; ties keep the earlier tour.
//
// Concurrency:
//   - Multithreaded mode forks Options.Workers goroutines per block; they share one
//     colony (Pheromone read-only during a block, Delta under a mutex). Each worker keeps
//     a local best that is merged into the shared best after the block barrier.
//   - Each worker owns its *rand.Rand, derived deterministically from Options.Seed.
//
// Validation never panics: Solve reports a GraphStatus plus a sentinel error from types.go.
package tsp
