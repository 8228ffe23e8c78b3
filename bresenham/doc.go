// Package bresenham provides an integer-only line-of-sight test over a
// world.World, used both by the Theta* search to decide whether a parent's
// line of sight reaches a candidate neighbour, and by callers validating a
// reconstructed path.
//
// The algorithm is the textbook Bresenham rasteriser split into a "low"
// branch (driving axis X) and a "high" branch (driving axis Y), with an
// endpoint swap up front so both branches always iterate in the increasing
// direction along their driving axis. This keeps the decision-variable
// update identical regardless of which endpoint was passed first, which is
// what makes the test symmetric in its two arguments.
package bresenham
