package ring

import "errors"

// ErrNonPositive is returned when a modulus or integer argument is < 1.
var ErrNonPositive = errors.New("ring: argument must be >= 1")
