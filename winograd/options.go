package winograd

import (
	"fmt"
	"strings"
)

// Mode selects how Multiply schedules its work.
type Mode int

const (
	// Sequential runs every stage on the calling goroutine.
	Sequential Mode = iota
	// ForkJoin splits each stage across Options.Threads goroutines.
	ForkJoin
	// Pipelined runs the four stages as concurrent goroutines.
	Pipelined
)

// String returns the canonical mode name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case ForkJoin:
		return "forkjoin"
	case Pipelined:
		return "pipelined"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a case-insensitive name (or a common alias) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequential", "seq", "single":
		return Sequential, nil
	case "forkjoin", "fork-join", "parallel":
		return ForkJoin, nil
	case "pipelined", "pipeline", "conveyor":
		return Pipelined, nil
	}

	return 0, fmt.Errorf("ParseMode(%q): %w", s, ErrUnknownMode)
}

// Options configures Multiply.
type Options struct {
	Mode Mode

	// Repeats is how many times the whole product is recomputed (for timing). Must be ≥ 1.
	Repeats int

	// Threads is the ForkJoin worker count; ≤ 0 selects parallel.DefaultWorkers().
	Threads int
}

// DefaultOptions returns a single sequential product.
func DefaultOptions() Options {
	return Options{Mode: Sequential, Repeats: 1}
}

func (o Options) validate() error {
	if o.Repeats < 1 {
		return fmt.Errorf("Repeats=%d: %w", o.Repeats, ErrBadOptions)
	}
	if o.Mode < Sequential || o.Mode > Pipelined {
		return fmt.Errorf("Mode=%d: %w", int(o.Mode), ErrBadOptions)
	}

	return nil
}
