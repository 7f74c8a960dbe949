package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/kernels/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_BadFlag(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-log-level=loud", "tsp", "x"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_GaussEndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "system.txt")
	require.NoError(t, os.WriteFile(input, []byte("3 4\n2 1 -1 8\n-3 -1 2 -11\n-2 1 2 -3\n"), 0o600))
	report := filepath.Join(dir, "report.yaml")

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), out, logs, []string{"-report", report, "-threads", "2", "gauss", input})
	require.NoError(t, err)
	require.Contains(t, out.String(), "sequential")
	require.Contains(t, out.String(), "parallel")
	require.Contains(t, out.String(), "x=[2 3 -1]")
	require.Contains(t, logs.String(), "Run started.")

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	require.Contains(t, string(data), "kernel: gauss")
}
