// Package thetanav is an in-memory, any-angle pathfinding core for a
// mutable 2-D occupancy grid.
//
// What it brings together:
//
//	- pos        — WorldPos/PlannerPos/GridPos and the conversions between them
//	- priority   — a duplicate-tolerant min-heap keyed by float64 cost
//	- posmap     — a dense, sentinel-cleared map keyed by PlannerPos
//	- world      — the occupancy grid, with Step/2 obstacle inflation on merge
//	- bresenham  — an integer-only line-of-sight test
//	- reach      — a reachability pre-check so a planner can fail fast
//	- thetastar  — the any-angle (Theta*) search itself
//	- follower   — a stateful wrapper that caches a path across ticks
//
// Single-threaded, cooperative, no I/O, no logging: every operation runs to
// completion before returning, and a caller that mutates a World while a
// search is in flight must serialise that itself.
//
//	go get github.com/katalvlaran/thetanav
package thetanav
