package parallel

import "runtime"

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices in r (never negative).
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}

	return r.End - r.Start
}

// Empty reports whether r covers no index.
func (r Range) Empty() bool { return r.Len() == 0 }

// DefaultWorkers returns the number of logical CPUs usable by the process.
func DefaultWorkers() int { return runtime.NumCPU() }

// Split partitions [0, count) into parts contiguous ranges.
//
// Contract:
//   - parts < 1 is treated as 1; count < 0 as 0.
//   - len(result) == parts; ranges are ordered and adjacent.
//   - The first count%parts ranges hold one extra index, so sizes differ by at most one.
//   - When parts > count the trailing ranges are empty.
//
// Complexity: O(parts).
func Split(count, parts int) []Range {
	return SplitFrom(0, count, parts)
}

// SplitFrom partitions [lo, hi) exactly like Split partitions [0, hi-lo).
func SplitFrom(lo, hi, parts int) []Range {
	if parts < 1 {
		parts = 1
	}
	count := hi - lo
	if count < 0 {
		count = 0
	}
	var (
		out   = make([]Range, parts)
		q     = count / parts
		rem   = count % parts
		start = lo
		size  int
		i     int
	)
	for i = 0; i < parts; i++ {
		size = q
		if i < rem {
			size++
		}
		out[i] = Range{Start: start, End: start + size}
		start += size
	}

	return out
}
