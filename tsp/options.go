package tsp

import (
	"fmt"
	"math"
)

// Attractiveness selects the heuristic factor multiplied with pheromone when
// computing transition weights.
type Attractiveness int

const (
	// AttractDistance weights an edge by pheromone × distance.
	AttractDistance Attractiveness = iota
	// AttractInverse weights an edge by pheromone / distance (classic visibility).
	AttractInverse
)

// Defaults.
const (
	DefaultRepeats          = 1
	DefaultWorkers          = 4
	DefaultPasses           = 1000
	DefaultInitialPheromone = 0.2
	DefaultEvaporation      = 0.64
	DefaultDeposit          = 10.0
)

// Options configures one Solve call. Start from DefaultOptions and override fields.
type Options struct {
	// Repeats is the number of blocks; pheromone is updated between consecutive blocks.
	Repeats int

	// Multithreaded runs each block on Workers goroutines sharing the colony.
	Multithreaded bool

	// Workers is the goroutine count in multithreaded mode.
	Workers int

	// Passes is the number of construction passes per block (each pass builds one tour
	// per start vertex). In multithreaded mode the passes are split across workers.
	Passes int

	// InitialPheromone is written on every existing edge before the first block.
	InitialPheromone float64

	// Evaporation multiplies pheromone before the block's Delta is added. Must be in [0,1].
	Evaporation float64

	// Deposit is the reinforcement constant Q; a tour of cost L adds Q/L per edge.
	Deposit float64

	// Attractiveness selects the distance factor of transition weights.
	Attractiveness Attractiveness

	// Seed drives every random stream; 0 selects a fixed default seed.
	Seed int64
}

// DefaultOptions returns the reference configuration: one block of 1000 passes,
// four workers when multithreaded, pheromone 0.2, evaporation 0.64, deposit 10.
func DefaultOptions() Options {
	return Options{
		Repeats:          DefaultRepeats,
		Workers:          DefaultWorkers,
		Passes:           DefaultPasses,
		InitialPheromone: DefaultInitialPheromone,
		Evaporation:      DefaultEvaporation,
		Deposit:          DefaultDeposit,
		Attractiveness:   AttractDistance,
	}
}

// validateOptions checks every field independently of the graph.
func validateOptions(o Options) error {
	switch {
	case o.Repeats < 1:
		return fmt.Errorf("Repeats=%d: %w", o.Repeats, ErrBadOptions)
	case o.Workers < 1:
		return fmt.Errorf("Workers=%d: %w", o.Workers, ErrBadOptions)
	case o.Passes < 1:
		return fmt.Errorf("Passes=%d: %w", o.Passes, ErrBadOptions)
	case !(o.InitialPheromone > 0) || math.IsInf(o.InitialPheromone, 0):
		return fmt.Errorf("InitialPheromone=%g: %w", o.InitialPheromone, ErrBadOptions)
	case !(o.Evaporation >= 0 && o.Evaporation <= 1):
		return fmt.Errorf("Evaporation=%g: %w", o.Evaporation, ErrBadOptions)
	case !(o.Deposit > 0) || math.IsInf(o.Deposit, 0):
		return fmt.Errorf("Deposit=%g: %w", o.Deposit, ErrBadOptions)
	case o.Attractiveness != AttractDistance && o.Attractiveness != AttractInverse:
		return fmt.Errorf("Attractiveness=%d: %w", o.Attractiveness, ErrBadOptions)
	}

	return nil
}
