package tonnetz

type config struct {
	loops bool
	zero  bool
}

// Option configures network construction.
type Option func(*config)

// WithLoops keeps edges whose source and target coincide.
func WithLoops(on bool) Option {
	return func(c *config) {
		c.loops = on
	}
}

// WithZero makes residue 0 a source vertex.
func WithZero(on bool) Option {
	return func(c *config) {
		c.zero = on
	}
}

func applyOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
