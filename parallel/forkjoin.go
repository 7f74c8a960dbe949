package parallel

import "golang.org/x/sync/errgroup"

// ForEach runs fn once per range, each on its own goroutine, and waits for all of them.
// Empty ranges are skipped. The worker argument is the index of the range in ranges.
//
// The first non-nil error is returned after every goroutine has finished; the others
// keep running to completion because kernels cannot be interrupted mid-phase.
func ForEach(ranges []Range, fn func(worker int, r Range) error) error {
	var g errgroup.Group
	for i, r := range ranges {
		if r.Empty() {
			continue
		}
		i, r := i, r
		g.Go(func() error { return fn(i, r) })
	}

	return g.Wait()
}

// Run is ForEach over Split(count, parts).
func Run(count, parts int, fn func(worker int, r Range) error) error {
	return ForEach(Split(count, parts), fn)
}
