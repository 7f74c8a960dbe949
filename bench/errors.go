package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrBadPlan is returned for plan entries that cannot be executed as written.
	ErrBadPlan = errors.New("bench: invalid plan")

	// ErrUnknownKernel is returned for a kernel name outside tsp, gauss and winograd.
	ErrUnknownKernel = errors.New("bench: unknown kernel")
)

func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
