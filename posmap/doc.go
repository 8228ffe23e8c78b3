// Package posmap provides a dense, sentinel-cleared map from pos.PlannerPos
// to an arbitrary comparable value, backed by a flat slice sized to a
// World's shape.
//
// What:
//
//   - Map[T] stores one T per planner cell in row-major order.
//   - A caller-chosen sentinel marks "unset"; Clear refills every cell
//     with it in one linear pass, which is why thetastar.Planner can
//     reuse the same Map across searches instead of reallocating.
//
// Why a sentinel instead of a second presence bitmap: the planner only
// ever asks two questions — "what value does this cell hold" and "has it
// been written since the last clear" — and a value the domain can never
// legitimately hold (+Inf for costs, {-1,-1} for parents) answers both
// with a single comparison.
//
// Complexity: Get/Set/IsSet are O(1); Clear is O(W*H).
package posmap
