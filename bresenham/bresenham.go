package bresenham

import (
	"github.com/katalvlaran/thetanav/pos"
	"github.com/katalvlaran/thetanav/world"
)

// PathIsBlocked reports whether any grid cell rasterised by the segment
// p0-p1 is an obstacle in w. A cell that falls out of bounds is treated as
// non-blocking: both endpoints are already known to be in bounds by the
// time the planner calls this, and the intermediate lattice points of a
// segment between two in-bounds points never leave the non-negative
// quadrant.
func PathIsBlocked(p0, p1 pos.PlannerPos, w *world.World) bool {
	dx := abs64(p1.X - p0.X)
	dy := abs64(p1.Y - p0.Y)

	if dx > dy {
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		return lowBlocked(p0, p1, w)
	}

	if p0.Y > p1.Y {
		p0, p1 = p1, p0
	}
	return highBlocked(p0, p1, w)
}

// lowBlocked iterates the driving X axis; used when |dx| > |dy|.
func lowBlocked(p0, p1 pos.PlannerPos, w *world.World) bool {
	dx := p1.X - p0.X
	dy := abs64(p1.Y - p0.Y)
	d := 2*dy - dx

	yInc := int64(1)
	if p0.Y > p1.Y {
		yInc = -1
	}

	y := p0.Y
	for x := p0.X; x <= p1.X; x++ {
		if blocked(x, y, w) {
			return true
		}
		if d <= 0 {
			d += 2 * dy
		} else {
			y += yInc
			d += 2 * (dy - dx)
		}
	}
	return false
}

// highBlocked iterates the driving Y axis; used when |dy| >= |dx|.
func highBlocked(p0, p1 pos.PlannerPos, w *world.World) bool {
	dy := p1.Y - p0.Y
	dx := abs64(p1.X - p0.X)
	d := 2*dx - dy

	xInc := int64(1)
	if p0.X > p1.X {
		xInc = -1
	}

	x := p0.X
	for y := p0.Y; y <= p1.Y; y++ {
		if blocked(x, y, w) {
			return true
		}
		if d <= 0 {
			d += 2 * dx
		} else {
			x += xInc
			d += 2 * (dx - dy)
		}
	}
	return false
}

func blocked(x, y int64, w *world.World) bool {
	if x < 0 || y < 0 {
		return false
	}
	return w.IsObstacle(pos.GridPos{X: uint64(x), Y: uint64(y)})
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
