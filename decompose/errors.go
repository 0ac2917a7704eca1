package decompose

import "errors"

// ErrPostconditionViolated indicates simplification produced an MHGraph
// that does not meet decompose's precondition (every hyperedge size >= 2,
// every vertex degree >= 2) — a bug in the simplification fixed point,
// never a valid input-dependent outcome.
var ErrPostconditionViolated = errors.New("decompose: simplified graph violates size/degree precondition")
