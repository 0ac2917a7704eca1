// Package hgraph implements the graph core of mhgraphsat: Vertex, Edge,
// Graph, HEdge, HGraph, and MHGraph, together with the structural queries
// decompose needs (degree, star, link, sphere, union, min/max-degree
// selection).
//
// All types are immutable values. MHGraph is a multiset of HEdges: value
// equality holds iff the multiset contents (hyperedge -> multiplicity)
// match, independent of construction order. Conversions between Graph,
// HGraph, and MHGraph are defined only when the source satisfies the
// target's restrictions (Graph: no multi-edges, every edge size <= 2;
// HGraph: no multiplicities).
//
// Errors:
//
//	ErrEmpty          - a constructor was given an empty collection.
//	ErrInvalidVertex  - a vertex id < 1 was requested.
//	ErrTooManyVertices - an Edge was given more than 2 distinct vertices.
//	ErrBadMultiplicity - a non-positive multiplicity was requested.
//	ErrNotSimpleGraph  - an MHGraph could not be narrowed to a Graph.
//	ErrNotHGraph       - an MHGraph could not be narrowed to an HGraph.
//
// A vertex repeated in a hyperedge's input is deduplicated, not rejected.
package hgraph
