package bench

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/katalvlaran/kernels/gauss"
	"github.com/katalvlaran/kernels/internal/ctxlog"
	"github.com/katalvlaran/kernels/matrix"
	"github.com/katalvlaran/kernels/tsp"
	"github.com/katalvlaran/kernels/winograd"
	"gonum.org/v1/gonum/mat"
)

// Variant names for tsp and gauss; winograd variants are winograd.Mode names.
const (
	VariantSingle     = "single"
	VariantMulti      = "multi"
	VariantSequential = "sequential"
	VariantParallel   = "parallel"
)

// Result is the timing summary of one variant of one run.
type Result struct {
	Run      string          `yaml:"run"`
	Kernel   string          `yaml:"kernel"`
	Variant  string          `yaml:"variant"`
	Samples  []time.Duration `yaml:"samples"`
	Mean     time.Duration   `yaml:"mean"`
	StdDev   time.Duration   `yaml:"stddev"`
	Output   string          `yaml:"output,omitempty"`
	Residual float64         `yaml:"residual,omitempty"`
}

func newResult(run Run, variant string, samples []time.Duration, output string) Result {
	mean, sd := Summarize(samples)

	return Result{
		Run:     run.Name,
		Kernel:  run.Kernel,
		Variant: variant,
		Samples: samples,
		Mean:    mean,
		StdDev:  sd,
		Output:  output,
	}
}

// variants lists the variants the run executes, honouring Mode.
func (r Run) variants() ([]string, error) {
	var all []string
	switch r.Kernel {
	case KernelTSP:
		all = []string{VariantSingle, VariantMulti}
	case KernelGauss:
		all = []string{VariantSequential, VariantParallel}
	case KernelWinograd:
		if r.Mode != "" {
			m, err := winograd.ParseMode(r.Mode)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrBadPlan, err)
			}
			return []string{m.String()}, nil
		}
		return []string{winograd.Sequential.String(), winograd.ForkJoin.String(), winograd.Pipelined.String()}, nil
	default:
		return nil, fmt.Errorf("%q: %w", r.Kernel, ErrUnknownKernel)
	}
	if r.Mode == "" {
		return all, nil
	}
	for _, v := range all {
		if v == r.Mode {
			return []string{v}, nil
		}
	}

	return nil, fmt.Errorf("mode %q for %s: %w", r.Mode, r.Kernel, ErrBadPlan)
}

// RunPlan executes every run of plan in order and concatenates their results.
func RunPlan(ctx context.Context, plan *Plan) ([]Result, error) {
	var results []Result
	for _, run := range plan.Runs {
		rs, err := Execute(ctx, run, plan.Dir)
		if err != nil {
			return results, err
		}
		results = append(results, rs...)
	}

	return results, nil
}

// Execute runs every selected variant of run. Relative inputs resolve against dir.
func Execute(ctx context.Context, run Run, dir string) ([]Result, error) {
	run.normalize()
	if err := run.Validate(); err != nil {
		return nil, err
	}
	variants, err := run.variants()
	if err != nil {
		return nil, benchErrorf("run "+run.Name, err)
	}

	logger := ctxlog.FromContext(ctx).With("run", run.Name, "kernel", run.Kernel)
	logger.Info("Run started.", "variants", variants, "samples", run.Samples, "repeat", run.Repeat)
	ctx = ctxlog.WithLogger(ctx, logger)

	var results []Result
	switch run.Kernel {
	case KernelTSP:
		results, err = executeTSP(ctx, run, dir, variants)
	case KernelGauss:
		results, err = executeGauss(ctx, run, dir, variants)
	case KernelWinograd:
		results, err = executeWinograd(ctx, run, dir, variants)
	}
	if err != nil {
		return nil, benchErrorf("run "+run.Name, err)
	}
	for _, r := range results {
		logger.Info("Variant finished.", "variant", r.Variant, "mean", r.Mean, "stddev", r.StdDev)
	}

	return results, nil
}

func loadInput(dir, path string) (*matrix.Dense, error) {
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}

	return matrix.Load(path)
}

func executeTSP(ctx context.Context, run Run, dir string, variants []string) ([]Result, error) {
	dist, err := loadInput(dir, run.Inputs[0])
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		opts := tsp.DefaultOptions()
		opts.Repeats = run.Repeat
		opts.Seed = run.Seed
		opts.Multithreaded = v == VariantMulti
		if run.Threads > 0 {
			opts.Workers = run.Threads
		}

		var res tsp.TSResult
		samples, err := Measure(ctx, run.Samples, func() error {
			var err error
			res, err = tsp.Solve(dist, opts)
			return err
		})
		if err != nil {
			return nil, err
		}
		if res.Status == tsp.GraphDirected {
			ctxlog.FromContext(ctx).Warn("Distance matrix is asymmetric; edges are read in tour direction.")
		}
		results = append(results, newResult(run, v, samples, fmt.Sprintf("tour=%v cost=%g", res.Tour, res.Cost)))
	}

	return results, nil
}

// executeGauss times Repeat solves per sample. Each solve works on a fresh copy of the
// input, and the copy is part of the measured time.
func executeGauss(ctx context.Context, run Run, dir string, variants []string) ([]Result, error) {
	aug, err := loadInput(dir, run.Inputs[0])
	if err != nil {
		return nil, err
	}
	if err = gauss.Validate(aug); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		solve := gauss.Solve
		if v == VariantParallel {
			opts := gauss.Options{Threads: run.Threads}
			solve = func(a *matrix.Dense) ([]float64, error) { return gauss.SolveParallel(a, opts) }
		}

		var x []float64
		samples, err := Measure(ctx, run.Samples, func() error {
			var err error
			for r := 0; r < run.Repeat; r++ {
				if x, err = solve(aug.Copy()); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		res := newResult(run, v, samples, fmt.Sprintf("x=%.6g", x))
		if res.Residual, err = Residual(aug, x); err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

func executeWinograd(ctx context.Context, run Run, dir string, variants []string) ([]Result, error) {
	a, b, err := winogradInputs(run, dir)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		mode, err := winograd.ParseMode(v)
		if err != nil {
			return nil, err
		}
		opts := winograd.Options{Mode: mode, Repeats: run.Repeat, Threads: run.Threads}

		var c *matrix.Dense
		samples, err := Measure(ctx, run.Samples, func() error {
			var err error
			c, err = winograd.Multiply(a, b, opts)
			return err
		})
		if err != nil {
			return nil, err
		}
		rows, cols := c.Shape()
		results = append(results, newResult(run, v, samples, fmt.Sprintf("%dx%d", rows, cols)))
	}

	return results, nil
}

// winogradInputs loads both factors or, without inputs, draws a Rows×Cols and a
// Cols×Rows matrix of integers in [-100,100] from Seed.
func winogradInputs(run Run, dir string) (*matrix.Dense, *matrix.Dense, error) {
	if len(run.Inputs) == 2 {
		a, err := loadInput(dir, run.Inputs[0])
		if err != nil {
			return nil, nil, err
		}
		b, err := loadInput(dir, run.Inputs[1])
		if err != nil {
			return nil, nil, err
		}
		return a, b, nil
	}

	seed := run.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	a, err := matrix.NewDense(run.Rows, run.Cols)
	if err != nil {
		return nil, nil, err
	}
	b, err := matrix.NewDense(run.Cols, run.Rows)
	if err != nil {
		return nil, nil, err
	}
	a.FillRandom(rng)
	b.FillRandom(rng)

	return a, b, nil
}

// Residual returns ‖A·x − b‖∞ for the augmented system aug = [A | b].
func Residual(aug *matrix.Dense, x []float64) (float64, error) {
	n := aug.Rows()
	if aug.Cols() != n+1 || len(x) != n {
		return 0, benchErrorf("Residual", matrix.ErrDimensionMismatch)
	}

	a := mat.NewDense(n, n, nil)
	b := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		row, err := aug.Row(i)
		if err != nil {
			return 0, benchErrorf("Residual", err)
		}
		a.SetRow(i, row[:n])
		b.SetVec(i, row[n])
	}

	var r mat.VecDense
	r.MulVec(a, mat.NewVecDense(n, x))
	r.SubVec(&r, b)

	return mat.Norm(&r, math.Inf(1)), nil
}
