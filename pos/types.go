package pos

// WorldPos is the agent's continuous position, a pair of 64-bit floats.
type WorldPos struct {
	X, Y float64
}

// PlannerPos is a signed lattice coordinate, the space the planner searches.
type PlannerPos struct {
	X, Y int64
}

// GridPos is an unsigned index into a World's occupancy array.
type GridPos struct {
	X, Y uint64
}

// Add returns a+b.
func (a PlannerPos) Add(b PlannerPos) PlannerPos {
	return PlannerPos{a.X + b.X, a.Y + b.Y}
}

// Equal reports whether a and b name the same planner cell.
func (a PlannerPos) Equal(b PlannerPos) bool {
	return a.X == b.X && a.Y == b.Y
}

// Equal reports whether a and b name the same world position, to exact
// floating-point precision (no epsilon tolerance — callers that need
// fuzzy comparison should do it themselves).
func (a WorldPos) Equal(b WorldPos) bool {
	return a.X == b.X && a.Y == b.Y
}
