package signal

import "errors"

var (
	// ErrEmpty is returned when a signal would have no samples.
	ErrEmpty = errors.New("signal: empty sample sequence")
	// ErrNonFinite is returned when a sample has a NaN or infinite part.
	ErrNonFinite = errors.New("signal: non-finite sample")
	// ErrLengthMismatch is returned by pointwise operations on signals of
	// different length.
	ErrLengthMismatch = errors.New("signal: length mismatch")
	// ErrNilSignal is returned when a nil *Signal is passed.
	ErrNilSignal = errors.New("signal: nil signal")
)
