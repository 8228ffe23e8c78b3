// Package pos defines the three coordinate spaces the navigation core moves
// between — WorldPos, PlannerPos, and GridPos — and the Converter that
// projects across them.
//
// What:
//
//   - WorldPos: the agent's continuous position, in whatever units the
//     embedder's world uses.
//   - PlannerPos: signed lattice coordinates the planner searches over.
//   - GridPos: unsigned indices into a World's occupancy array.
//   - Converter: truncation-based conversions between the three, honoring
//     an optional Scale so a planner cell can represent more than one
//     world unit per side.
//
// Why:
//
//   - Keeping the planner's inner loop on PlannerPos (pure integers) avoids
//     float comparisons where the search never needs them; floating-point
//     arithmetic is reserved for costs, not positions.
//   - GridPos is unsigned because it indexes directly into a World's
//     backing slice; Converter.ToGrid reports ok=false instead of wrapping
//     when a PlannerPos has a negative component.
//
// Complexity: every conversion and Distance call is O(1).
package pos
