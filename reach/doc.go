// Package reach answers one question cheaply: can an agent ever get from A
// to B on a world.World's Step lattice, without running a full search to
// find out.
//
// What:
//
//   - Reachable flood-fills the 4-connected component containing from and
//     reports whether to falls inside it.
//
// This is adapted from a connected-components flood fill over a dense grid
// (the kind of grid-as-graph analysis this module's sibling packages no
// longer need a generic graph type for): rather than grouping cells by a
// stored value, a cell here is traversable iff it is not world.Obstacle,
// matching the planner's own free_neighbours_of predicate exactly so the
// two never disagree about what counts as blocked.
//
// The result is never cached: a World mutates under Incorporate, and a
// stale component cache would silently desync from it. Reachable is purely
// an optimization for thetastar.Planner — dropping it changes how fast an
// unreachable target is rejected, never the answer a full search would give.
package reach
