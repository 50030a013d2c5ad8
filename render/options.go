package render

type config struct {
	clusters bool
	clock    bool
	radius   float64
	name     string
}

// Option configures rendering.
type Option func(*config)

// WithClusters groups nodes into one frame per unit orbit d*U(N).
// Enabled by default.
func WithClusters(on bool) Option {
	return func(c *config) {
		c.clusters = on
	}
}

// WithClockLayout pins every residue to its position on a clock face and
// switches the layout engine to neato.
func WithClockLayout(on bool) Option {
	return func(c *config) {
		c.clock = on
	}
}

// WithRadius sets the clock face radius in inches. Non-positive values are
// ignored.
func WithRadius(r float64) Option {
	return func(c *config) {
		if r > 0 {
			c.radius = r
		}
	}
}

// WithName sets the DOT graph identifier.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

func applyOptions(opts []Option) config {
	c := config{clusters: true, radius: 3, name: "tonnetz"}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
