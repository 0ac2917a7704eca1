package morphism

import "errors"

// ErrDimensionMismatch indicates GraphImage was given an MHGraph with a
// vertex outside the domain of the vertex map being applied.
var ErrDimensionMismatch = errors.New("morphism: vertex-set sizes are incompatible with the requested map")
