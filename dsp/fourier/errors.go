package fourier

import "errors"

var (
	// ErrNilSignal is returned when a nil signal is transformed.
	ErrNilSignal = errors.New("fourier: nil signal")
	// ErrNilNetwork is returned when a nil network is synthesized.
	ErrNilNetwork = errors.New("fourier: nil network")
	// ErrEmptySpectrum is returned when an empty spectrum is inverted.
	ErrEmptySpectrum = errors.New("fourier: empty spectrum")
	// ErrUnknownMethod is returned for an unsupported Method value.
	ErrUnknownMethod = errors.New("fourier: unknown method")
)
