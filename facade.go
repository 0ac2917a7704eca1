package mhgraphsat

import (
	"github.com/katalvlaran/mhgraphsat/decompose"
	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// MHGraph, Vertex, HEdge and CNF are re-exported for callers that only
// need the value types and don't want to import hgraph/symbolic directly.
type (
	MHGraph = hgraph.MHGraph
	Vertex  = hgraph.Vertex
	HEdge   = hgraph.HEdge
	CNF     = symbolic.CNF
)

// NewMHGraph re-exports hgraph.NewMHGraph.
func NewMHGraph(hedges ...[]int) (MHGraph, error) {
	return hgraph.NewMHGraph(hedges...)
}

// Decompose decides mhgraph_sat(G) using a fresh decompose.Engine (the
// default GiniOracle, no hyperbolic-only restriction). Each call builds its
// own Engine, so no cache is shared across calls — callers making many
// Decompose calls against related MHGraphs should construct and reuse a
// single *decompose.Engine instead.
func Decompose(g MHGraph) (bool, error) {
	return decompose.NewEngine().Decompose(g)
}
