package hgraph

import "errors"

// Sentinel errors for the hgraph package. Callers should branch with
// errors.Is, per the same policy as symbolic.
var (
	// ErrEmpty indicates a constructor received an empty collection where
	// a non-empty one is required (HEdge, HGraph, MHGraph).
	ErrEmpty = errors.New("hgraph: empty collection")

	// ErrInvalidVertex indicates a vertex id below 1 was requested.
	ErrInvalidVertex = errors.New("hgraph: vertex must be >= 1")

	// ErrTooManyVertices indicates an Edge (simple-graph edge) was given
	// more than two distinct vertices.
	ErrTooManyVertices = errors.New("hgraph: edge may join at most 2 vertices")

	// ErrBadMultiplicity indicates a non-positive multiplicity was
	// requested for a hyperedge.
	ErrBadMultiplicity = errors.New("hgraph: multiplicity must be >= 1")

	// ErrNotSimpleGraph indicates an MHGraph/HGraph could not be narrowed
	// to a Graph because it has multi-edges or an edge of size > 2.
	ErrNotSimpleGraph = errors.New("hgraph: not convertible to a simple Graph")

	// ErrNotHGraph indicates an MHGraph could not be narrowed to an HGraph
	// because some hyperedge has multiplicity != 1.
	ErrNotHGraph = errors.New("hgraph: not convertible to an HGraph (multiplicities present)")
)
