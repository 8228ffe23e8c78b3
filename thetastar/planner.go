package thetastar

import (
	"math"

	"github.com/katalvlaran/thetanav/bresenham"
	"github.com/katalvlaran/thetanav/pos"
	"github.com/katalvlaran/thetanav/posmap"
	"github.com/katalvlaran/thetanav/priority"
	"github.com/katalvlaran/thetanav/reach"
	"github.com/katalvlaran/thetanav/world"
)

var noParent = pos.PlannerPos{X: -1, Y: -1}

// Planner runs Theta* searches against a fixed World, reusing its open set
// and maps across calls.
type Planner struct {
	cfg  config
	w    *world.World
	conv pos.Converter

	open    *priority.Queue[pos.PlannerPos]
	parents *posmap.Map[pos.PlannerPos]
	costs   *posmap.Map[float64]
}

// New builds a Planner over w. The World's own Scale configures the
// Planner's Converter, since planner-cell-to-world-position is a property
// of the World it searches, not of the search itself.
func New(w *world.World, opts ...Option) *Planner {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	width, height := w.Shape()
	return &Planner{
		cfg:     cfg,
		w:       w,
		conv:    pos.Converter{Scale: int64(w.Scale())},
		open:    priority.New[pos.PlannerPos](cfg.openSetCapacity),
		parents: posmap.New[pos.PlannerPos](width, height, noParent),
		costs:   posmap.New[float64](width, height, math.Inf(1)),
	}
}

// FindPath searches from start to target, both planner cells, and reports
// the path as a reversed list of world positions: the first element is
// worldTarget itself (substituted verbatim for precision), the last element
// is the first step away from start. ok is false if target is out of
// bounds or provably unreachable.
func (p *Planner) FindPath(start, target pos.PlannerPos, worldTarget pos.WorldPos) (path []pos.WorldPos, ok bool) {
	p.open.Clear()
	p.parents.Clear()
	p.costs.Clear()

	targetGrid, inBounds := p.conv.ToGrid(target)
	if !inBounds || p.w.IsObstacleOrOut(targetGrid) {
		return nil, false
	}

	if p.cfg.reachabilityPrecheck && !reach.Reachable(p.w, start, target) {
		return nil, false
	}

	p.open.Push(start, 0)
	p.costs.Set(start, 0)

	for {
		current, popped := p.open.Pop()
		if !popped {
			break
		}
		if current.Equal(target) {
			break
		}
		p.expand(current, target)
	}

	if !p.parents.IsSet(target) {
		return nil, false
	}

	return p.reconstruct(start, target, worldTarget), true
}

func (p *Planner) expand(current, target pos.PlannerPos) {
	currentGrid, ok := p.conv.ToGrid(current)
	if !ok {
		return
	}

	for _, nbGrid := range p.w.FreeNeighboursOf(currentGrid) {
		neighbour := pos.GridToPlanner(nbGrid)

		src := current
		if parent, isSet := p.parents.GetIfSet(current); isSet && !bresenham.PathIsBlocked(parent, neighbour, p.w) {
			src = parent
		}
		if neighbour.Equal(src) {
			continue
		}

		srcCost := p.costs.GetOr(src, math.Inf(1))
		g := srcCost + pos.Distance(src, neighbour)

		if g < p.costs.GetOr(neighbour, math.Inf(1)) {
			p.costs.Set(neighbour, g)
			p.parents.Set(neighbour, src)
			h := pos.Distance(neighbour, target)
			p.open.Push(neighbour, g+h)
		}
	}
}

func (p *Planner) reconstruct(start, target pos.PlannerPos, worldTarget pos.WorldPos) []pos.WorldPos {
	var out []pos.WorldPos
	cur := target
	for !cur.Equal(start) {
		out = append(out, p.conv.ToWorld(cur))
		cur, _ = p.parents.GetIfSet(cur)
	}
	if len(out) > 0 {
		out[0] = worldTarget
	}
	return out
}
