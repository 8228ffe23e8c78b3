package reach

import (
	"github.com/katalvlaran/thetanav/pos"
	"github.com/katalvlaran/thetanav/posmap"
	"github.com/katalvlaran/thetanav/world"
)

// Reachable reports whether to lies in the same 4-connected component as
// from on w's Step lattice. to is first checked for being in bounds and not
// itself an obstacle, and from for having no negative component; either
// failing makes the answer false without a flood fill. from itself may be an
// obstacle or lie past the far edge: the fill starts from its free
// neighbours, the same cells a search starting there would expand.
func Reachable(w *world.World, from, to pos.PlannerPos) bool {
	var conv pos.Converter

	fromGrid, ok := conv.ToGrid(from)
	if !ok {
		return false
	}
	toGrid, ok := conv.ToGrid(to)
	if !ok || w.IsObstacleOrOut(toGrid) {
		return false
	}

	width, height := w.Shape()
	visited := posmap.New[bool](width, height, false)
	visited.Set(pos.GridToPlanner(fromGrid), true)

	stack := []pos.GridPos{fromGrid}
	for len(stack) > 0 {
		top := len(stack) - 1
		cur := stack[top]
		stack = stack[:top]

		if cur == toGrid {
			return true
		}

		for _, nb := range w.FreeNeighboursOf(cur) {
			p := pos.GridToPlanner(nb)
			if visited.IsSet(p) {
				continue
			}
			visited.Set(p, true)
			stack = append(stack, nb)
		}
	}
	return false
}
