package thetastar

// Option customizes a Planner at construction time.
type Option func(*config)

type config struct {
	openSetCapacity      int
	reachabilityPrecheck bool
}

func defaultConfig() config {
	return config{openSetCapacity: 4096, reachabilityPrecheck: true}
}

// WithOpenSetCapacity preallocates the open set's backing storage. Panics on
// a non-positive capacity.
func WithOpenSetCapacity(n int) Option {
	if n <= 0 {
		panic("thetastar: WithOpenSetCapacity(n<=0)")
	}
	return func(c *config) {
		c.openSetCapacity = n
	}
}

// WithReachabilityPrecheck toggles the reach.Reachable fast-fail run before
// the open set is seeded. Disabling it never changes the answer FindPath
// returns, only how quickly an unreachable target is rejected.
func WithReachabilityPrecheck(enabled bool) Option {
	return func(c *config) {
		c.reachabilityPrecheck = enabled
	}
}
