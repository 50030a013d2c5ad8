package fourier

// Method selects the transform backend.
type Method int

const (
	// MethodAuto uses an algo-fft plan for power-of-two lengths and gonum
	// otherwise. A failed plan falls back to gonum.
	MethodAuto Method = iota
	// MethodDirect evaluates the defining sum in O(N^2).
	MethodDirect
	// MethodPlan forces an algo-fft plan and reports planning errors.
	MethodPlan
	// MethodGonum forces gonum's complex FFT.
	MethodGonum
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodDirect:
		return "direct"
	case MethodPlan:
		return "plan"
	case MethodGonum:
		return "gonum"
	default:
		return "unknown"
	}
}

type config struct {
	method Method
}

// Option configures a transform.
type Option func(*config)

// WithMethod selects the transform backend.
func WithMethod(m Method) Option {
	return func(c *config) {
		c.method = m
	}
}

func applyOptions(opts []Option) config {
	c := config{method: MethodAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
