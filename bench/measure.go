package bench

import (
	"context"
	"time"

	"github.com/katalvlaran/kernels/internal/ctxlog"
	"gonum.org/v1/gonum/stat"
)

// Measure calls fn samples times and returns the wall-clock duration of each call.
// It stops at the first error or when ctx is done, returning the samples taken so far.
func Measure(ctx context.Context, samples int, fn func() error) ([]time.Duration, error) {
	logger := ctxlog.FromContext(ctx)
	out := make([]time.Duration, 0, samples)

	var (
		i     int
		start time.Time
		d     time.Duration
	)
	for i = 0; i < samples; i++ {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		start = time.Now()
		if err := fn(); err != nil {
			return out, err
		}
		d = time.Since(start)
		logger.Debug("Sample finished.", "sample", i, "elapsed", d)
		out = append(out, d)
	}

	return out, nil
}

// Summarize returns the mean and sample standard deviation of samples.
// The deviation is zero for fewer than two samples.
func Summarize(samples []time.Duration) (mean, stddev time.Duration) {
	if len(samples) == 0 {
		return 0, 0
	}
	xs := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s)
	}
	if len(xs) == 1 {
		return samples[0], 0
	}
	m, sd := stat.MeanStdDev(xs, nil)

	return time.Duration(m), time.Duration(sd)
}
