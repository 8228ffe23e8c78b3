// Package thetastar implements Theta*, an any-angle extension of A* that
// lets a path segment skip straight past intermediate lattice cells
// whenever the two endpoints have a clear line of sight, instead of always
// hugging the grid.
//
// A Planner owns its open set, parent map, and cost map across calls:
// FindPath clears and reuses them rather than reallocating, the same
// reuse-across-calls shape a Dijkstra runner would have if it
// were built to answer many queries against one graph instead of one query
// per call.
//
// Complexity: O(N log N) in the number of expanded lattice cells N, plus an
// O(L) Bresenham check per line-of-sight test, where L is the Chebyshev
// distance between the two checked cells.
package thetastar
