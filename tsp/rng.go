package tsp

import "math/rand"

// fallbackSeed replaces a zero Options.Seed so default runs stay reproducible.
const fallbackSeed int64 = 1

// rngFromSeed returns the root stream for one Solve call.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = fallbackSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mixSeed folds a worker id into a parent seed with the SplitMix64 finalizer,
// so neighbouring worker ids land on unrelated streams.
func mixSeed(parent int64, worker uint64) int64 {
	x := uint64(parent) ^ (worker + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// workerRNGs derives one private stream per worker from root.
// *rand.Rand is not safe for concurrent use; each worker gets its own.
//
// Complexity: O(workers).
func workerRNGs(root *rand.Rand, workers int) []*rand.Rand {
	out := make([]*rand.Rand, workers)

	var w int
	for w = 0; w < workers; w++ {
		out[w] = rand.New(rand.NewSource(mixSeed(root.Int63(), uint64(w))))
	}

	return out
}
