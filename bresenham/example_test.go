package bresenham_test

import (
	"fmt"

	"github.com/katalvlaran/thetanav/bresenham"
	"github.com/katalvlaran/thetanav/pos"
	"github.com/katalvlaran/thetanav/world"
)

// ExamplePathIsBlocked demonstrates that a painted obstacle blocks a
// segment that crosses it but not one that passes clear of it.
func ExamplePathIsBlocked() {
	w, _ := world.New([2]uint64{20, 20}, world.WithStep(4))
	paintObstacle(w, 5, 4)

	fmt.Println(bresenham.PathIsBlocked(pos.PlannerPos{X: 0, Y: 4}, pos.PlannerPos{X: 10, Y: 4}, w))
	fmt.Println(bresenham.PathIsBlocked(pos.PlannerPos{X: 0, Y: 15}, pos.PlannerPos{X: 10, Y: 15}, w))
	// Output:
	// true
	// false
}
