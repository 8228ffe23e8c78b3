// Package world holds the occupancy grid a planner searches over: a dense
// array of integer tags, an obstacle-inflation merge for incremental
// observation, and the handful of queries the planner needs to expand a
// frontier.
//
// What:
//
//   - World wraps a rectangular tag grid, shape fixed at construction and
//     divisible by Step (the planner's lattice spacing).
//   - Incorporate merges a caller-supplied local observation into the grid,
//     inflating every observed obstacle by Step/2 so the planner — which
//     only ever expands cells on the Step lattice — never threads a path
//     between two lattice points with an obstacle sitting between them.
//
// Why inflate rather than copy obstacles verbatim: the planner's graph is
// coarser than the observation grid, so a thin obstacle that falls strictly
// between two adjacent lattice cells would otherwise be invisible to it.
//
// Tag values are an external contract (an observation provider on the other
// side of this package encodes them) and must not be renumbered.
package world
