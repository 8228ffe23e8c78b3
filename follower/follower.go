package follower

import (
	"github.com/katalvlaran/thetanav/pos"
	"github.com/katalvlaran/thetanav/thetastar"
	"github.com/katalvlaran/thetanav/world"
)

// Follower drives an agent toward a target, caching the path a
// thetastar.Planner returns across ticks.
type Follower struct {
	conv    pos.Converter
	planner *thetastar.Planner

	hasTarget     bool
	targetWorld   pos.WorldPos
	targetPlanner pos.PlannerPos

	path        []pos.WorldPos
	recomputeIn int
}

// New builds a Follower bound to w; opts configure the underlying
// thetastar.Planner.
func New(w *world.World, opts ...thetastar.Option) *Follower {
	return &Follower{
		conv:    pos.Converter{Scale: int64(w.Scale())},
		planner: thetastar.New(w, opts...),
	}
}

// SetTarget records a new destination and forces the next Next call to
// recompute, discarding whatever path is cached.
func (f *Follower) SetTarget(target pos.WorldPos) {
	f.targetWorld = target
	f.targetPlanner = f.conv.ToPlanner(target)
	f.recomputeIn = 0
	f.hasTarget = true
	f.path = nil
}

// Next advances the follower by one tick and returns the waypoint the agent
// should move toward, or ok=false if the agent has arrived, no target is
// set, or no path could be found.
func (f *Follower) Next(current pos.WorldPos, w *world.World, speed, dt float64) (pos.WorldPos, bool) {
	_ = w // bound at New; passed per-tick to match the caller's own world handle

	if !f.hasTarget {
		return pos.WorldPos{}, false
	}

	step := speed * dt
	if pos.WorldDistance(current, f.targetWorld) < step {
		return pos.WorldPos{}, false
	}

	if f.recomputeIn == 0 {
		f.path = nil
	}
	f.recomputeIn--

	if len(f.path) == 0 {
		startPlanner := f.conv.ToPlanner(current)
		path, ok := f.planner.FindPath(startPlanner, f.targetPlanner, f.targetWorld)
		if !ok {
			f.path = nil
			return pos.WorldPos{}, false
		}
		f.path = path
	}

	for len(f.path) > 0 && pos.WorldDistance(f.path[len(f.path)-1], current) < step {
		f.path = f.path[:len(f.path)-1]
	}
	if len(f.path) == 0 {
		return pos.WorldPos{}, false
	}
	return f.path[len(f.path)-1], true
}

// ClearPath empties the cached path, forcing a full recompute on the next
// Next call.
func (f *Follower) ClearPath() {
	f.path = nil
}

// RecomputeInOneTurn lets the next Next call use the cached path one more
// time, then forces a recompute on the call after that.
func (f *Follower) RecomputeInOneTurn() {
	f.recomputeIn = 1
}
