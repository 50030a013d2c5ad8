package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tonnetz/dsp/core"
)

// MaxInt16 is the full-scale value of signed 16-bit PCM.
const MaxInt16 = math.MaxInt16

// Generator renders periodic signals to fixed-rate waveforms.
type Generator struct {
	cfg core.ProcessorConfig
}

// NewGenerator creates a configured renderer. The default output rate is
// 44100 Hz.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{cfg: core.ApplyProcessorOptions(opts...)}
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Render plays s back at signalRate samples per second for duration seconds
// and resamples it to the generator rate.
//
// Output sample i holds the normalized real part of
// s.At(floor(i*signalRate/sampleRate)), so the result has
// floor(duration*sampleRate) values in [-1, 1].
func (g *Generator) Render(s *Signal, signalRate, duration float64) ([]float64, error) {
	if s == nil {
		return nil, ErrNilSignal
	}
	if signalRate <= 0 || math.IsNaN(signalRate) || math.IsInf(signalRate, 0) {
		return nil, fmt.Errorf("render signal rate must be > 0: %f", signalRate)
	}
	if duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return nil, fmt.Errorf("render duration must be >= 0: %f", duration)
	}

	normalized := s.Real(true, core.WithEpsilon(g.cfg.Epsilon))
	n := len(normalized)
	ratio := signalRate / g.cfg.SampleRate

	out := make([]float64, int(math.Floor(duration*g.cfg.SampleRate)))
	for i := range out {
		idx := int(math.Floor(float64(i)*ratio)) % n
		out[i] = normalized[idx]
	}
	return out, nil
}

// Quantize16 converts samples in [-1, 1] to signed 16-bit PCM. Values
// outside the range are clipped; the fractional part is truncated.
func Quantize16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, v := range samples {
		out[i] = int16(core.Clamp(v, -1, 1) * MaxInt16)
	}
	return out
}

// FromPCM16 wraps decoded 16-bit PCM as a Signal scaled to [-1, 1].
func FromPCM16(samples []int16) (*Signal, error) {
	z := make([]complex128, len(samples))
	for i, v := range samples {
		z[i] = complex(float64(v)/MaxInt16, 0)
	}
	return New(z)
}
