package tonnetz

import "errors"

var (
	// ErrModulus is returned when the modulus is < 1.
	ErrModulus = errors.New("tonnetz: modulus must be >= 1")
	// ErrNilTonic is returned when a signal network is built without a tonic.
	ErrNilTonic = errors.New("tonnetz: nil tonic signal")
)
