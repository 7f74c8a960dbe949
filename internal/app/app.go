package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/katalvlaran/kernels/bench"
	"github.com/katalvlaran/kernels/internal/ctxlog"
)

// App executes a single configured command.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns an App printing results to outW and logging to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{outW: outW, logger: logger, config: cfg}
}

// Run executes the command, prints a result table and writes the optional report and chart.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	results, err := a.execute(ctx)
	if err != nil {
		return err
	}
	if err = a.printResults(results); err != nil {
		return err
	}

	if a.config.ReportPath != "" {
		if err = writeReportFile(a.config.ReportPath, results); err != nil {
			return err
		}
		a.logger.Info("Report written.", "path", a.config.ReportPath)
	}
	if a.config.ChartPath != "" {
		if err = bench.WriteChart(a.config.ChartPath, results); err != nil {
			return err
		}
		a.logger.Info("Chart written.", "path", a.config.ChartPath)
	}

	return nil
}

func (a *App) execute(ctx context.Context) ([]bench.Result, error) {
	cfg := a.config
	if cfg.Command == CommandPlan {
		plan, err := bench.LoadPlan(cfg.Inputs[0])
		if err != nil {
			return nil, err
		}
		a.logger.Debug("Plan loaded.", "path", cfg.Inputs[0], "runs", len(plan.Runs))

		return bench.RunPlan(ctx, plan)
	}

	run := bench.Run{
		Name:    cfg.Command,
		Kernel:  cfg.Command,
		Inputs:  cfg.Inputs,
		Mode:    cfg.Mode,
		Samples: cfg.Samples,
		Repeat:  cfg.Repeat,
		Threads: cfg.Threads,
		Seed:    cfg.Seed,
		Rows:    cfg.Rows,
		Cols:    cfg.Cols,
	}

	return bench.Execute(ctx, run, "")
}

func (a *App) printResults(results []bench.Result) error {
	tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tVARIANT\tMEAN\tSTDDEV\tOUTPUT")
	for _, r := range results {
		out := r.Output
		if r.Residual != 0 {
			out = fmt.Sprintf("%s residual=%.3g", out, r.Residual)
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\t%v\t%s\n", r.Run, r.Variant, r.Mean, r.StdDev, out)
	}

	return tw.Flush()
}

func writeReportFile(path string, results []bench.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return bench.WriteReport(f, results)
}
