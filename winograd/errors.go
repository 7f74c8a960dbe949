package winograd

import (
	"errors"
	"fmt"
)

var (
	// ErrBadOptions is returned for Repeats < 1 or an unknown Mode.
	ErrBadOptions = errors.New("winograd: invalid options")

	// ErrUnknownMode is returned by ParseMode for an unrecognised name.
	ErrUnknownMode = errors.New("winograd: unknown mode")
)

func winogradErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
