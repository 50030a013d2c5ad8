package signal

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-tonnetz/dsp/core"
	"github.com/cwbudde/algo-tonnetz/ring"
)

// Signal is an immutable periodic sequence of complex samples.
type Signal struct {
	samples []complex128
	// units depends only on len(samples) and is shared between derived signals.
	units []int
}

// New creates a Signal from a copy of samples.
func New(samples []complex128) (*Signal, error) {
	if len(samples) == 0 {
		return nil, ErrEmpty
	}
	for i, z := range samples {
		if !core.IsFinite(z) {
			return nil, fmt.Errorf("%w at index %d: %v", ErrNonFinite, i, z)
		}
	}
	units, err := ring.Units(len(samples))
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	out := make([]complex128, len(samples))
	copy(out, samples)
	return &Signal{samples: out, units: units}, nil
}

// FromReal wraps real samples with zero imaginary part.
func FromReal(samples []float64) (*Signal, error) {
	z := make([]complex128, len(samples))
	for i, v := range samples {
		z[i] = complex(v, 0)
	}
	return New(z)
}

// Character returns the length-n signal t -> exp(2*pi*i*multiplier*t/n).
//
// The phase multiplier*t is reduced modulo n before evaluation, so
// Character(1, n).ScaleTime(m) and Character(m, n) are identical.
func Character(multiplier, n int) (*Signal, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: character length %d", ErrEmpty, n)
	}
	units, err := ring.Units(n)
	if err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}
	out := make([]complex128, n)
	step := 2 * math.Pi / float64(n)
	m := ring.Mod(multiplier, n)
	for t := range out {
		out[t] = cmplx.Rect(1, step*float64((m*t)%n))
	}
	return &Signal{samples: out, units: units}, nil
}

// derive builds a signal of the same length as s from owned samples.
func (s *Signal) derive(samples []complex128) *Signal {
	return &Signal{samples: samples, units: s.units}
}

// Len returns the sample count N.
func (s *Signal) Len() int { return len(s.samples) }

// Samples returns a copy of the samples.
func (s *Signal) Samples() []complex128 {
	out := make([]complex128, len(s.samples))
	copy(out, s.samples)
	return out
}

// Units returns the residues in [0, N) coprime to N.
func (s *Signal) Units() []int {
	out := make([]int, len(s.units))
	copy(out, s.units)
	return out
}

// At returns the sample at idx modulo N. Negative indices wrap.
func (s *Signal) At(idx int) complex128 {
	return s.samples[ring.Mod(idx, len(s.samples))]
}

// ScaleTime returns the signal t -> s((multiplier*t) mod N).
//
// For multipliers coprime to N this permutes the samples. Any other
// multiplier folds the time axis and repeats content; both are valid.
func (s *Signal) ScaleTime(multiplier int) *Signal {
	n := len(s.samples)
	out := make([]complex128, n)
	m := ring.Mod(multiplier, n)
	for i := range out {
		out[i] = s.samples[(m*i)%n]
	}
	return s.derive(out)
}

// Real returns the real parts of the samples.
//
// With normalize set every value is divided by the peak absolute real value
// plus the configured epsilon (see core.WithEpsilon), which keeps the result
// in [-1, 1] and maps an all-zero signal to zeros.
func (s *Signal) Real(normalize bool, opts ...core.ProcessorOption) []float64 {
	re, _ := split(s.samples)
	if !normalize {
		return re
	}

	cfg := core.ApplyProcessorOptions(opts...)
	peak := 0.0
	for _, v := range re {
		if av := math.Abs(v); av > peak {
			peak = av
		}
	}
	out := make([]float64, len(re))
	vecmath.ScaleBlock(out, re, 1/(peak+cfg.Epsilon))
	return out
}

// Scale returns the signal multiplied sample-wise by the constant c.
func (s *Signal) Scale(c complex128) *Signal {
	n := len(s.samples)
	re, im := split(s.samples)
	outRe := make([]float64, n)
	outIm := make([]float64, n)
	tmp := make([]float64, n)

	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	vecmath.ScaleBlock(outRe, re, real(c))
	vecmath.ScaleBlock(tmp, im, -imag(c))
	vecmath.AddBlockInPlace(outRe, tmp)

	vecmath.ScaleBlock(outIm, re, imag(c))
	vecmath.ScaleBlock(tmp, im, real(c))
	vecmath.AddBlockInPlace(outIm, tmp)

	return s.derive(join(outRe, outIm))
}

// Add returns the pointwise sum s + o.
func (s *Signal) Add(o *Signal) (*Signal, error) {
	if o == nil {
		return nil, ErrNilSignal
	}
	if len(o.samples) != len(s.samples) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(s.samples), len(o.samples))
	}
	re, im := split(s.samples)
	ore, oim := split(o.samples)
	vecmath.AddBlockInPlace(re, ore)
	vecmath.AddBlockInPlace(im, oim)
	return s.derive(join(re, im)), nil
}

// Mul returns the pointwise product s * o.
func (s *Signal) Mul(o *Signal) (*Signal, error) {
	if o == nil {
		return nil, ErrNilSignal
	}
	if len(o.samples) != len(s.samples) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(s.samples), len(o.samples))
	}
	out := make([]complex128, len(s.samples))
	for i := range out {
		out[i] = s.samples[i] * o.samples[i]
	}
	return s.derive(out), nil
}

// Equal reports whether s and o have the same length and every sample pair
// lies within eps.
func (s *Signal) Equal(o *Signal, eps float64) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.samples) != len(o.samples) {
		return false
	}
	for i := range s.samples {
		if !core.ComplexNearlyEqual(s.samples[i], o.samples[i], eps) {
			return false
		}
	}
	return true
}

// String formats the samples like a slice of complex values.
func (s *Signal) String() string {
	return fmt.Sprint(s.samples)
}

func split(z []complex128) (re, im []float64) {
	re = make([]float64, len(z))
	im = make([]float64, len(z))
	for i, c := range z {
		re[i] = real(c)
		im[i] = imag(c)
	}
	return re, im
}

func join(re, im []float64) []complex128 {
	out := make([]complex128, len(re))
	for i := range out {
		out[i] = complex(re[i], im[i])
	}
	return out
}
