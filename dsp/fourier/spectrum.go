package fourier

import (
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tonnetz/dsp/core"
)

// Spectrum holds the Fourier coefficients of a length-N signal, indexed by
// frequency k in [0, N).
type Spectrum []complex128

// Len returns the number of coefficients.
func (x Spectrum) Len() int { return len(x) }

// At returns the coefficient of frequency k modulo N. An empty spectrum
// yields 0.
func (x Spectrum) At(k int) complex128 {
	n := len(x)
	if n == 0 {
		return 0
	}
	return x[((k%n)+n)%n]
}

// Coefficients returns a copy of the coefficients.
func (x Spectrum) Coefficients() []complex128 {
	out := make([]complex128, len(x))
	copy(out, x)
	return out
}

// Map returns the coefficients keyed by frequency index.
func (x Spectrum) Map() map[int]complex128 {
	out := make(map[int]complex128, len(x))
	for k, c := range x {
		out[k] = c
	}
	return out
}

// Magnitude returns |X[k]| for every frequency.
func (x Spectrum) Magnitude() []float64 {
	if len(x) == 0 {
		return nil
	}
	re, im := parts(x)
	out := make([]float64, len(x))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for every frequency.
func (x Spectrum) Power() []float64 {
	if len(x) == 0 {
		return nil
	}
	re, im := parts(x)
	out := make([]float64, len(x))
	vecmath.Power(out, re, im)
	return out
}

// PowerDB returns 10*log10(|X[k]|^2). Empty bins map to -Inf.
func (x Spectrum) PowerDB() []float64 {
	out := x.Power()
	for i, p := range out {
		out[i] = core.LinearPowerToDB(p)
	}
	return out
}

// Phase returns arg(X[k]) in radians.
func (x Spectrum) Phase() []float64 {
	out := make([]float64, len(x))
	for i, c := range x {
		out[i] = cmplx.Phase(c)
	}
	return out
}

func parts(x Spectrum) (re, im []float64) {
	re = make([]float64, len(x))
	im = make([]float64, len(x))
	for i, c := range x {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}
