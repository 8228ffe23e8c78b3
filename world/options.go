package world

// Option customizes a World at construction time.
type Option func(*config)

type config struct {
	step  uint64
	scale uint64
}

func defaultConfig() config {
	return config{step: 4, scale: 1}
}

// WithStep sets the planner lattice spacing. Both shape components passed
// to New must be divisible by it. Panics on a zero step, which would make
// the lattice degenerate.
func WithStep(step uint64) Option {
	if step == 0 {
		panic("world: WithStep(0)")
	}
	return func(c *config) {
		c.step = step
	}
}

// WithScale sets the number of world units a single grid cell spans.
// Panics on a zero scale.
func WithScale(scale uint64) Option {
	if scale == 0 {
		panic("world: WithScale(0)")
	}
	return func(c *config) {
		c.scale = scale
	}
}
