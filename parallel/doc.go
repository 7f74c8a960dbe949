// Package parallel holds the small concurrency toolkit shared by the kernels:
//
//   - Split / SplitFrom: the index range partitioner. Integer arithmetic only;
//     the remainder goes to the first ranges so every index is covered exactly once.
//   - ForEach: fork one goroutine per range, join all of them, return the first error.
//     Each call is a full barrier: nothing after ForEach observes a running worker.
//   - Signal: a single-slot latch used to hand work between persistent pipeline stages.
//
// Nothing here keeps global state; worker counts are always passed per call.
package parallel
