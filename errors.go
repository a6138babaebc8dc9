package sift

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned for a negative k, an unknown tie-break
	// policy or an unknown output preset. Validation happens before any
	// element of the input is consumed.
	ErrInvalidConfig = errors.New("sift: invalid configuration")
	// ErrInvalidOption is returned for an unrecognized output preset. It
	// wraps ErrInvalidConfig, so errors.Is matches either sentinel.
	ErrInvalidOption = fmt.Errorf("%w: unrecognized output", ErrInvalidConfig)
)
