// Package priority implements a generic, duplicate-tolerant min-priority
// queue keyed by a float64 cost.
//
// What:
//
//   - Queue[T] is a binary min-heap over (value T, cost float64) pairs.
//   - Push never decreases a prior entry's key; it inserts unconditionally.
//     Stale entries are left in place and filtered by the caller (here,
//     thetastar's relaxation test) rather than removed eagerly.
//
// Why:
//
//   - Lazy deletion via reinsertion is cheaper for this workload than
//     maintaining handles for decrease-key, because the planner's pop step
//     already re-checks the dominant cost and discards stale entries for
//     free.
//
// Complexity: Push and Pop are O(log N); Len and Clear are O(1). Clear keeps
// the backing storage for reuse rather than releasing it.
package priority
