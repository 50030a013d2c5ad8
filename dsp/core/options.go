package core

// DefaultEpsilon guards normalization against division by zero.
const DefaultEpsilon = 1e-8

// ProcessorConfig defines common signal processing settings.
type ProcessorConfig struct {
	// SampleRate is the output rate in Hz used when rendering signals.
	SampleRate float64
	// Epsilon is added to peak values before dividing by them.
	Epsilon float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns CD-rate defaults.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		Epsilon:    DefaultEpsilon,
	}
}

// WithSampleRate sets the rendering sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithEpsilon sets the normalization guard.
func WithEpsilon(eps float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if eps > 0 {
			cfg.Epsilon = eps
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
