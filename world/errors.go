package world

import "errors"

// ErrShapeNotDivisible indicates a World was constructed with a width or
// height that is not a multiple of its Step.
var ErrShapeNotDivisible = errors.New("world: shape must be divisible by step")
