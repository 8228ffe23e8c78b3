package thetastar_test

import (
	"testing"

	"github.com/katalvlaran/thetanav/pos"
	"github.com/katalvlaran/thetanav/world"
)

func mustWorld(t *testing.T) *world.World {
	t.Helper()
	w, err := world.New([2]uint64{1000, 1000}, world.WithStep(4))
	if err != nil {
		t.Fatalf("world.New() error = %v", err)
	}
	return w
}

// paintObstacle inflates a single observed obstacle cell centred exactly on
// (cx, cy) into a Step/2-radius square. Both coordinates must be >= the
// view range used here (4) so Incorporate's anchor clipping near the world
// edge never shifts the destination off-centre.
func paintObstacle(w *world.World, cx, cy uint64) {
	const viewRange = 4
	size := 2*viewRange + 1
	local := make([][]world.Tag, size)
	for y := range local {
		local[y] = make([]world.Tag, size)
	}
	local[viewRange][viewRange] = world.Obstacle
	w.Incorporate(local, pos.GridPos{X: cx, Y: cy}, viewRange)
}

// paintColumn paints a solid vertical obstacle band of world-x width 5,
// centred on cx, spanning world-y in [y0, y1] inclusive (y1-y0 must be > 3).
// It works by tagging a single interior column of a tall local observation
// and letting Incorporate's own Step/2 inflation produce the full band,
// rather than trying to hand-paint every cell.
func paintColumn(w *world.World, cx, y0, y1 uint64) {
	lh := y1 - y0 + 1
	local := make([][]world.Tag, lh)
	for y := range local {
		local[y] = make([]world.Tag, 5)
		local[y][2] = world.Obstacle
	}
	w.Incorporate(local, pos.GridPos{X: cx - 2, Y: y0}, 0)
}
