// Command navdemo walks an agent across a world it discovers incrementally,
// printing the waypoint the follower hands back each tick.
//
// Scenario:
//   - World shape (200, 200), Step 4.
//   - The agent starts at (4, 4) and is sent toward (180, 4).
//   - After a few ticks, a vertical wall is incorporated directly ahead of
//     it (mirroring a sensor sweep revealing new terrain mid-route); the
//     follower is told to recompute, and the printed path detours around it.
package main

import (
	"fmt"

	"github.com/katalvlaran/thetanav/follower"
	"github.com/katalvlaran/thetanav/pos"
	"github.com/katalvlaran/thetanav/world"
)

func main() {
	w, err := world.New([2]uint64{200, 200}, world.WithStep(4))
	if err != nil {
		fmt.Println("failed to build world:", err)
		return
	}

	f := follower.New(w)
	f.SetTarget(pos.WorldPos{X: 180, Y: 4})

	const speed, dt = 60.0, 1.0 / 30.0
	current := pos.WorldPos{X: 4, Y: 4}

	fmt.Printf("start %v -> target %v\n", current, pos.WorldPos{X: 180, Y: 4})

	for tick := 0; tick < 200; tick++ {
		if tick == 5 {
			revealWall(w)
			f.RecomputeInOneTurn()
			fmt.Println("  observed a wall ahead, scheduling a recompute")
		}

		waypoint, ok := f.Next(current, w, speed, dt)
		if !ok {
			fmt.Printf("tick %3d: arrived (or unreachable) at %v\n", tick, current)
			return
		}
		// Move at most one tick's worth of distance toward the waypoint.
		stride := speed * dt
		if d := pos.WorldDistance(current, waypoint); d > stride {
			current = pos.WorldPos{
				X: current.X + (waypoint.X-current.X)*stride/d,
				Y: current.Y + (waypoint.Y-current.Y)*stride/d,
			}
		} else {
			current = waypoint
		}
		fmt.Printf("tick %3d: heading to %v\n", tick, waypoint)
	}

	fmt.Println("gave up after 200 ticks without arriving")
}

// revealWall incorporates a local observation describing a vertical wall
// across the agent's route, the same shape an observation provider would
// hand the World after a sensor sweep.
func revealWall(w *world.World) {
	const viewRange = 10
	size := 2*viewRange + 1
	local := make([][]world.Tag, size)
	for y := range local {
		local[y] = make([]world.Tag, size)
		local[y][viewRange] = world.Obstacle
	}
	w.Incorporate(local, pos.GridPos{X: 40, Y: 4}, viewRange)
}
