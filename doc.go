// Package kernels is a set of parallel numeric kernels with a benchmark driver.
//
// It brings together:
//
//   - tsp: ant colony heuristic for the Travelling Salesman Problem, single-threaded
//     or with workers sharing one pheromone matrix
//   - gauss: Gaussian elimination on augmented systems, sequential or phase-parallel
//   - winograd: Winograd matrix product in sequential, fork-join and pipelined modes
//   - matrix: dense storage and the plain-text matrix file format
//   - parallel: index partitioning, fork-join helpers and single-slot signals
//   - bench: HCL benchmark plans, timing statistics, YAML reports and bar charts
//
// The kernels never log and never panic on user input; every failure is a sentinel
// error matched with errors.Is. The kernels command (cmd/kernels) drives them:
//
//	kernels -samples 5 winograd -rows 512 -cols 512
//	kernels -report out.yaml plan bench.hcl
//
//	go install github.com/katalvlaran/kernels/cmd/kernels@latest
package kernels
