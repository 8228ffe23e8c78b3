package priority

import "errors"

// ErrNaNCost indicates Push was called with a NaN cost. The queue's
// ordering is undefined once a NaN cost is admitted (NaN compares false
// against everything), so Push panics with this sentinel rather than
// silently corrupting the heap invariant for every future Pop.
var ErrNaNCost = errors.New("priority: cost must not be NaN")
