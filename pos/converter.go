package pos

import "math"

// Converter projects between WorldPos, PlannerPos, and GridPos for a given
// grid Scale (the number of world units a single planner cell spans).
//
// Scale == 0 is treated as 1 (no scaling) so a zero-value Converter is
// usable without explicit construction.
type Converter struct {
	// Scale is the number of world units per planner cell. A Scale other
	// than 1 makes ToPlanner snap to the centre of the corresponding
	// square, per the "planner cell represents the centre of its grid
	// square" rule.
	Scale int64
}

func (c Converter) scale() int64 {
	if c.Scale == 0 {
		return 1
	}
	return c.Scale
}

// ToPlanner truncates w to integer lattice coordinates. When Scale != 1,
// SCALE/2 is added after the division so the result names the centre of
// the planner cell rather than its origin corner.
func (c Converter) ToPlanner(w WorldPos) PlannerPos {
	s := c.scale()
	x := int64(w.X) / s
	y := int64(w.Y) / s
	if s != 1 {
		x += s / 2
		y += s / 2
	}
	return PlannerPos{X: x, Y: y}
}

// ToWorld expands a planner cell back to world units (the cell's origin
// corner, not its centre — callers reconstructing a path overwrite the
// final waypoint with the caller-supplied exact target, per the planner's
// reconstruction step).
func (c Converter) ToWorld(p PlannerPos) WorldPos {
	s := c.scale()
	return WorldPos{X: float64(p.X * s), Y: float64(p.Y * s)}
}

// ToGrid reinterprets a non-negative PlannerPos as a GridPos. A negative
// component is illegal input to the occupancy grid (preventing it is the
// caller's responsibility); ToGrid reports ok=false rather than wrapping.
func (c Converter) ToGrid(p PlannerPos) (g GridPos, ok bool) {
	if p.X < 0 || p.Y < 0 {
		return GridPos{}, false
	}
	return GridPos{X: uint64(p.X), Y: uint64(p.Y)}, true
}

// WorldToGrid composes ToPlanner and ToGrid.
func (c Converter) WorldToGrid(w WorldPos) (GridPos, bool) {
	return c.ToGrid(c.ToPlanner(w))
}

// GridToPlanner reinterprets a GridPos as the (always non-negative)
// PlannerPos it came from.
func GridToPlanner(g GridPos) PlannerPos {
	return PlannerPos{X: int64(g.X), Y: int64(g.Y)}
}

// Distance returns the Euclidean distance between two planner cells. The
// planner's heuristic and edge costs are both this function: it is
// admissible and consistent for any-angle motion, so Theta* never needs to
// reopen closed nodes beyond the priority queue's own lazy-duplicate
// mechanism.
func Distance(a, b PlannerPos) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Hypot(dx, dy)
}

// WorldDistance returns the Euclidean distance between two world positions.
func WorldDistance(a, b WorldPos) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Hypot(dx, dy)
}
