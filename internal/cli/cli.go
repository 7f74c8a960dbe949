package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/kernels/internal/app"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the validated app.Config,
// true when the program should exit cleanly (help, no command), or an *ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("kernels", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
kernels - benchmark driver for parallel numeric kernels.

Usage:
  kernels [options] tsp DIST_FILE
  kernels [options] gauss AUGMENTED_FILE
  kernels [options] winograd [A_FILE B_FILE]
  kernels [options] plan PLAN.hcl

Without -mode every variant of the kernel is run. winograd without files multiplies
random -rows x -cols and -cols x -rows matrices.

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	modeFlag := flagSet.String("mode", "", "Run a single variant (tsp: single|multi, gauss: sequential|parallel, winograd: sequential|forkjoin|pipelined).")
	samplesFlag := flagSet.Int("samples", 1, "Timed invocations per variant.")
	repeatFlag := flagSet.Int("repeat", 1, "Kernel repeat count (tsp blocks, winograd products, gauss solves).")
	threadsFlag := flagSet.Int("threads", 0, "Worker count for parallel variants. 0 selects a default.")
	seedFlag := flagSet.Int64("seed", 0, "Random seed for tsp and random winograd inputs.")
	rowsFlag := flagSet.Int("rows", 0, "Rows of the random winograd left factor.")
	colsFlag := flagSet.Int("cols", 0, "Columns of the random winograd left factor.")
	reportFlag := flagSet.String("report", "", "Write a YAML report to this path.")
	chartFlag := flagSet.String("chart", "", "Write a bar chart of mean times to this path (.png, .svg, .pdf).")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() == 0 {
		slog.Debug("No command provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if *samplesFlag < 1 || *repeatFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "samples and repeat must be at least 1"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Command:    flagSet.Arg(0),
		Inputs:     flagSet.Args()[1:],
		LogFormat:  logFormat,
		LogLevel:   logLevel,
		Mode:       *modeFlag,
		Samples:    *samplesFlag,
		Repeat:     *repeatFlag,
		Threads:    *threadsFlag,
		Seed:       *seedFlag,
		Rows:       *rowsFlag,
		Cols:       *colsFlag,
		ReportPath: *reportFlag,
		ChartPath:  *chartFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
