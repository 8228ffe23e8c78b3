// Package follower wraps a thetastar.Planner in a small state machine that
// trusts a cached path across ticks instead of recomputing on every call.
//
// What:
//
//   - Follower caches the reversed waypoint list a search returns and pops
//     trailing entries as the agent reaches them.
//   - Recomputation is explicit: it happens when the cache runs dry, when
//     ClearPath is called, or when a scheduled turn (RecomputeInOneTurn)
//     expires. Obstacle discovery can move the optimum, so a caller that
//     knows the map changed must ask for a recompute rather than relying on
//     the follower to notice on its own.
//
// Why cache at all: Theta* is expensive enough that recomputing every tick
// dominates runtime for a moving agent; the follower amortizes that cost
// across however many ticks the cached path remains valid.
package follower
