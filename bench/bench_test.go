package bench_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/kernels/bench"
	"github.com/katalvlaran/kernels/matrix"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	tspInput = `4
0 10 15 20
10 0 35 25
15 35 0 30
20 25 30 0
`
	gaussInput = `3 4
2 1 -1 8
-3 -1 2 -11
-2 1 2 -3
`
)

// writeInputs stores the fixture matrices in a temp dir and returns it.
func writeInputs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dist.txt"), []byte(tspInput), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "system.txt"), []byte(gaussInput), 0o600))

	return dir
}

const planSrc = `
run "tour" {
  kernel  = "ant"
  inputs  = ["dist.txt"]
  samples = 2
  seed    = 3
}

run "linear" {
  kernel  = "gauss"
  inputs  = ["system.txt"]
  threads = 2
}

run "product" {
  kernel  = "winograd"
  rows    = 6
  cols    = 5
  mode    = "conveyor"
  repeat  = 2
}
`

func TestParsePlanDecodesRuns(t *testing.T) {
	plan, err := bench.ParsePlan([]byte(planSrc), "/plans/demo.hcl")
	require.NoError(t, err)
	require.Equal(t, "/plans", plan.Dir)
	require.Len(t, plan.Runs, 3)

	tour := plan.Runs[0]
	require.Equal(t, "tour", tour.Name)
	require.Equal(t, bench.KernelTSP, tour.Kernel)
	require.Equal(t, []string{"dist.txt"}, tour.Inputs)
	require.Equal(t, 2, tour.Samples)
	require.Equal(t, 1, tour.Repeat)
	require.Equal(t, int64(3), tour.Seed)

	require.Equal(t, 2, plan.Runs[1].Threads)
	require.Equal(t, 6, plan.Runs[2].Rows)
}

func TestParsePlanRejectsBadRuns(t *testing.T) {
	block := func(name string, attrs ...string) string {
		return "run \"" + name + "\" {\n  " + strings.Join(attrs, "\n  ") + "\n}\n"
	}
	cases := map[string]struct {
		src string
		err error
	}{
		"unknown kernel": {block("x", `kernel = "fft"`), bench.ErrUnknownKernel},
		"missing input":  {block("x", `kernel = "gauss"`), bench.ErrBadPlan},
		"bad mode":       {block("x", `kernel = "tsp"`, `inputs = ["d"]`, `mode = "turbo"`), bench.ErrBadPlan},
		"bad winograd":   {block("x", `kernel = "winograd"`, `mode = "strassen"`, `rows = 2`, `cols = 2`), bench.ErrBadPlan},
		"duplicate": {
			block("x", `kernel = "winograd"`, `rows = 2`, `cols = 2`) + block("x", `kernel = "winograd"`, `rows = 2`, `cols = 2`),
			bench.ErrBadPlan,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := bench.ParsePlan([]byte(tc.src), "bad.hcl")
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := bench.ParsePlan([]byte(`run "x" {`), "broken.hcl")
	require.Error(t, err)
}

func TestRunPlanExecutesEveryVariant(t *testing.T) {
	dir := writeInputs(t)
	planPath := filepath.Join(dir, "plan.hcl")
	require.NoError(t, os.WriteFile(planPath, []byte(planSrc), 0o600))

	plan, err := bench.LoadPlan(planPath)
	require.NoError(t, err)

	results, err := bench.RunPlan(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, results, 5) // tsp single+multi, gauss sequential+parallel, winograd pipelined

	byVariant := map[string]bench.Result{}
	for _, r := range results {
		byVariant[r.Run+"/"+r.Variant] = r
		require.NotEmpty(t, r.Samples)
	}

	require.Contains(t, byVariant["tour/single"].Output, "cost=80")
	require.Contains(t, byVariant["tour/multi"].Output, "cost=80")
	require.Len(t, byVariant["tour/single"].Samples, 2)
	require.InDelta(t, 0, byVariant["linear/parallel"].Residual, 1e-9)
	require.Equal(t, "6x6", byVariant["product/pipelined"].Output)
}

func TestExecuteHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench.Execute(ctx, bench.Run{Name: "c", Kernel: "winograd", Rows: 3, Cols: 3}, "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecuteRejectsUnknownVariant(t *testing.T) {
	dir := writeInputs(t)
	for _, run := range []bench.Run{
		{Name: "t", Kernel: "tsp", Inputs: []string{"dist.txt"}, Mode: "turbo"},
		{Name: "g", Kernel: "gauss", Inputs: []string{"system.txt"}, Mode: "multi"},
		{Name: "w", Kernel: "winograd", Rows: 2, Cols: 2, Mode: "strassen"},
	} {
		results, err := bench.Execute(context.Background(), run, dir)
		require.ErrorIs(t, err, bench.ErrBadPlan, run.Name)
		require.Nil(t, results)
	}
}

func TestSummarize(t *testing.T) {
	mean, sd := bench.Summarize([]time.Duration{2 * time.Millisecond, 4 * time.Millisecond})
	require.Equal(t, 3*time.Millisecond, mean)
	require.InDelta(t, float64(1414213), float64(sd), 2)

	mean, sd = bench.Summarize([]time.Duration{time.Second})
	require.Equal(t, time.Second, mean)
	require.Zero(t, sd)

	mean, sd = bench.Summarize(nil)
	require.Zero(t, mean)
	require.Zero(t, sd)
}

func TestResidual(t *testing.T) {
	aug, err := matrix.NewDenseFrom([][]float64{{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3}})
	require.NoError(t, err)

	r, err := bench.Residual(aug, []float64{2, 3, -1})
	require.NoError(t, err)
	require.InDelta(t, 0, r, 1e-12)

	r, err = bench.Residual(aug, []float64{2, 3, 0})
	require.NoError(t, err)
	require.InDelta(t, 2, r, 1e-12)

	_, err = bench.Residual(aug, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestWriteReportAndChart(t *testing.T) {
	results := []bench.Result{
		{Run: "a", Kernel: "gauss", Variant: "sequential", Samples: []time.Duration{time.Millisecond}, Mean: time.Millisecond},
		{Run: "a", Kernel: "gauss", Variant: "parallel", Samples: []time.Duration{2 * time.Millisecond}, Mean: 2 * time.Millisecond},
	}

	var buf bytes.Buffer
	require.NoError(t, bench.WriteReport(&buf, results))

	var doc struct {
		Results []map[string]any `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Results, 2)
	require.Equal(t, "parallel", doc.Results[1]["variant"])
	require.Equal(t, "2ms", doc.Results[1]["mean"])

	chart := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, bench.WriteChart(chart, results))
	info, err := os.Stat(chart)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	require.ErrorIs(t, bench.WriteChart(chart, nil), bench.ErrBadPlan)
}
