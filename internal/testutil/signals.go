package testutil

import (
	"math/rand"
)

// DeterministicNoise generates complex white noise with a fixed seed. Both
// parts lie in [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(re, im)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []complex128 {
	out := make([]complex128, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value complex128, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Real lifts real values to complex samples with zero imaginary part.
func Real(values ...float64) []complex128 {
	out := make([]complex128, len(values))
	for i, v := range values {
		out[i] = complex(v, 0)
	}
	return out
}
