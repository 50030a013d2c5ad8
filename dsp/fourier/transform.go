package fourier

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	gfourier "gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-tonnetz/dsp/signal"
)

// Transform returns the spectrum X[k] = sum_n s(n)*exp(-2*pi*i*k*n/N) for
// k in [0, N). No normalization is applied.
func Transform(s *signal.Signal, opts ...Option) (Spectrum, error) {
	if s == nil {
		return nil, ErrNilSignal
	}
	cfg := applyOptions(opts)
	out, err := run(s.Samples(), cfg.method, false)
	if err != nil {
		return nil, err
	}
	return Spectrum(out), nil
}

// Inverse reconstructs the signal s(n) = 1/N * sum_k X[k]*exp(2*pi*i*k*n/N).
func Inverse(x Spectrum, opts ...Option) (*signal.Signal, error) {
	if len(x) == 0 {
		return nil, ErrEmptySpectrum
	}
	cfg := applyOptions(opts)
	out, err := run(x.Coefficients(), cfg.method, true)
	if err != nil {
		return nil, err
	}
	return signal.New(out)
}

func run(in []complex128, m Method, inverse bool) ([]complex128, error) {
	n := len(in)
	switch m {
	case MethodDirect:
		return direct(in, inverse), nil
	case MethodGonum:
		return viaGonum(in, inverse), nil
	case MethodPlan:
		return viaPlan(in, inverse)
	case MethodAuto:
		if n == 1 {
			return []complex128{in[0]}, nil
		}
		if isPowerOfTwo(n) {
			if out, err := viaPlan(in, inverse); err == nil {
				return out, nil
			}
		}
		return viaGonum(in, inverse), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}

// direct evaluates the defining sum. Twiddles are indexed by k*n mod N to
// keep the phase argument small.
func direct(in []complex128, inverse bool) []complex128 {
	n := len(in)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	twiddle := make([]complex128, n)
	for j := range twiddle {
		twiddle[j] = cmplx.Rect(1, sign*2*math.Pi*float64(j)/float64(n))
	}

	out := make([]complex128, n)
	for k := range out {
		var acc complex128
		for t, v := range in {
			acc += v * twiddle[(k*t)%n]
		}
		out[k] = acc
	}
	if inverse {
		scale(out, 1/float64(n))
	}
	return out
}

func viaPlan(in []complex128, inverse bool) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(in))
	if err != nil {
		return nil, fmt.Errorf("fourier: failed to create FFT plan: %w", err)
	}
	out := make([]complex128, len(in))
	if inverse {
		if err := plan.Inverse(out, in); err != nil {
			return nil, fmt.Errorf("fourier: inverse FFT failed: %w", err)
		}
		return out, nil
	}
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("fourier: forward FFT failed: %w", err)
	}
	return out, nil
}

// viaGonum runs gonum's unnormalized complex FFT, which handles any length.
func viaGonum(in []complex128, inverse bool) []complex128 {
	fft := gfourier.NewCmplxFFT(len(in))
	out := make([]complex128, len(in))
	if inverse {
		fft.Sequence(out, in)
		scale(out, 1/float64(len(in)))
		return out
	}
	return fft.Coefficients(out, in)
}

func scale(z []complex128, f float64) {
	c := complex(f, 0)
	for i := range z {
		z[i] *= c
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
