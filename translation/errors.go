package translation

import "errors"

// Sentinel errors for the translation package.
var (
	// ErrBadMultiplicity indicates CNFsFromHEdge was asked for m < 1.
	ErrBadMultiplicity = errors.New("translation: multiplicity must be >= 1")

	// ErrTrivialCNF indicates MHGraphFromCNF was given a CNF that
	// tautologically reduces to {{TRUE}} or {{FALSE}}; neither has a
	// well-defined supporting MHGraph.
	ErrTrivialCNF = errors.New("translation: CNF reduces to a trivial constant, has no supporting MHGraph")
)
