package gauss

import (
	"errors"
	"fmt"
)

// ErrNotAugmented is returned when the input is not an n×(n+1) augmented matrix with n ≥ 2.
var ErrNotAugmented = errors.New("gauss: matrix is not an n x (n+1) augmented system")

// gaussErrorf tags err with the operation that produced it.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
