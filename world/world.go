package world

import (
	"github.com/katalvlaran/thetanav/pos"
)

// Tag is the occupancy state of a single grid cell. Values are an external
// contract shared with the observation provider and must not be renumbered.
type Tag int

const (
	// NoInfo marks a cell that has never been observed.
	NoInfo Tag = -1
	// Empty marks an observed, traversable cell.
	Empty Tag = 0
	// Obstacle marks a cell the planner must not cross.
	Obstacle Tag = 1
	// Gem marks an observed, traversable cell carrying a pickup.
	Gem Tag = 2
)

// World is a fixed-shape occupancy grid. It is mutated only through
// Incorporate; every other method is a read.
type World struct {
	width, height uint64
	step          uint64
	scale         uint64
	tags          [][]Tag // tags[y][x]

	// EnemyKing is an opaque passthrough the planner never reads; callers
	// may use it to track an adversary's last known position.
	EnemyKing *pos.WorldPos
}

// New allocates a World of the given (width, height) shape, every cell
// initialised to NoInfo. Both shape components must be divisible by the
// configured Step (default 4); ErrShapeNotDivisible is returned otherwise.
func New(shape [2]uint64, opts ...Option) (*World, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := shape[0], shape[1]
	if w%cfg.step != 0 || h%cfg.step != 0 {
		return nil, ErrShapeNotDivisible
	}

	tags := make([][]Tag, h)
	for y := range tags {
		row := make([]Tag, w)
		for x := range row {
			row[x] = NoInfo
		}
		tags[y] = row
	}

	return &World{width: w, height: h, step: cfg.step, scale: cfg.scale, tags: tags}, nil
}

// Shape returns the World's (width, height).
func (w *World) Shape() (width, height uint64) {
	return w.width, w.height
}

// Step returns the planner lattice spacing this World was built with.
func (w *World) Step() uint64 {
	return w.step
}

// Scale returns the number of world units a single grid cell spans.
func (w *World) Scale() uint64 {
	return w.scale
}

func (w *World) inBounds(p pos.GridPos) bool {
	return p.X < w.width && p.Y < w.height
}

// IsObstacle reports whether p is in bounds and tagged Obstacle.
func (w *World) IsObstacle(p pos.GridPos) bool {
	if !w.inBounds(p) {
		return false
	}
	return w.tags[p.Y][p.X] == Obstacle
}

// IsObstacleOrOut reports true if p is out of bounds, or in bounds and
// tagged Obstacle. Used for neighbour filtering, where "off the map" and
// "blocked" are equivalent for routing purposes.
func (w *World) IsObstacleOrOut(p pos.GridPos) bool {
	if !w.inBounds(p) {
		return true
	}
	return w.tags[p.Y][p.X] == Obstacle
}

// FreeNeighboursOf returns the (up to four) 4-connected neighbours of p at
// distance Step that are not obstacle-or-out. p's components smaller than
// Step underflow in the uint64 subtraction below; the result simply fails
// the bounds check and is filtered, so the caller need only ensure p itself
// is in bounds.
func (w *World) FreeNeighboursOf(p pos.GridPos) []pos.GridPos {
	candidates := [4]pos.GridPos{
		{X: p.X + w.step, Y: p.Y},
		{X: p.X - w.step, Y: p.Y},
		{X: p.X, Y: p.Y + w.step},
		{X: p.X, Y: p.Y - w.step},
	}

	out := make([]pos.GridPos, 0, 4)
	for _, c := range candidates {
		if !w.IsObstacleOrOut(c) {
			out = append(out, c)
		}
	}
	return out
}

// GetMap returns a deep copy of the occupancy grid, tags[y][x].
func (w *World) GetMap() [][]Tag {
	out := make([][]Tag, w.height)
	for y := range out {
		row := make([]Tag, w.width)
		copy(row, w.tags[y])
		out[y] = row
	}
	return out
}

// Incorporate merges a rectangular local observation into the World,
// anchored so that its centre sits at anchor and extends viewRange cells in
// every direction. Every cell of local tagged Obstacle (excluding a margin
// of Step/2 cells around the edge of local, which exists only so the square
// painted below never reads outside local's interior) inflates into a
// (Step+1) x (Step+1) square of Obstacle in the World, centred on the
// corresponding destination cell. Non-obstacle tags are not copied: this is
// an inflation-only pass, so a cell the World has already observed as Empty
// or Gem is never overwritten back to NoInfo by a stale re-observation.
func (w *World) Incorporate(local [][]Tag, anchor pos.GridPos, viewRange uint64) {
	if len(local) == 0 || len(local[0]) == 0 {
		return
	}

	startX := saturatingSub(anchor.X, viewRange)
	startY := saturatingSub(anchor.Y, viewRange)

	lh := uint64(len(local))
	lw := uint64(len(local[0]))
	margin := w.step / 2
	if margin*2 >= lh || margin*2 >= lw {
		return
	}

	half := w.step / 2
	for ly := margin; ly < lh-margin; ly++ {
		for lx := margin; lx < lw-margin; lx++ {
			if local[ly][lx] != Obstacle {
				continue
			}
			dx := startX + lx
			dy := startY + ly
			w.paintObstacleSquare(dx, dy, half)
		}
	}
}

func (w *World) paintObstacleSquare(cx, cy, half uint64) {
	loX := saturatingSub(cx, half)
	loY := saturatingSub(cy, half)
	hiX := cx + half
	hiY := cy + half

	for y := loY; y <= hiY; y++ {
		if y >= w.height {
			continue
		}
		for x := loX; x <= hiX; x++ {
			if x >= w.width {
				continue
			}
			w.tags[y][x] = Obstacle
		}
	}
}

func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
