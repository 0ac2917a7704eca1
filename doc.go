// Package mhgraphsat decides satisfiability of every CNF formula supported
// by a multi-hyper-graph (MHG), by recursive structural decomposition.
//
// 🚀 What is mhgraphsat?
//
//	A research library translating between propositional CNF and
//	multi-hyper-graphs, then deciding mhgraph_sat(G) — "is every CNF this
//	MHG supports satisfiable?" — without ever enumerating that CNF set
//	when the recursive decomposition can avoid it.
//
// ✨ How it works
//
//   - symbolic/hgraph  — the value types: Variable/Literal/Clause/CNF on
//     one side, Vertex/Edge/HEdge/HGraph/MHGraph on the other
//   - translation      — the CNF⇄MHG correspondence and over-saturation
//   - morphism         — subgraph/isomorphism search driving the
//     rewrite-rule engine
//   - propositional    — pointwise AND/OR/NOT, lifted to graphs
//   - satoracle        — the external cnf_sat oracle adapter (in-process
//     DPLL via go-air/gini, brute-force fallback, Minisat subprocess)
//   - decompose        — the engine itself: simplify at leaves/loops,
//     split a max-degree vertex's link into every two-partition, recurse
//
// Under the hood, everything is organized under seven subpackages:
//
//	symbolic/       — propositional values: Variable, Literal, Clause, CNF
//	hgraph/         — graph values: Vertex, Edge, HEdge, Graph, HGraph, MHGraph
//	translation/    — CNF <-> MHGraph translation, counting, over-saturation
//	morphism/       — VertexMap/InjectiveVertexMap/Morphism, subgraph & iso search
//	propositional/  — pointwise and graph-lifted Boolean operations
//	satoracle/      — the cnf_sat oracle adapter and DIMACS emission
//	decompose/      — the decomposition engine and rewrite-rule library
//
// Quick example: is a triangle (K3) satisfiable as a 2-uniform MHG?
//
//	g, _ := hgraph.NewMHGraph([]int{1, 2}, []int{1, 3}, []int{2, 3})
//	sat, _ := mhgraphsat.Decompose(g)
//	fmt.Println(sat) // true
//
// This package is a thin facade: it re-exports the value types consumers
// reach for most often and a convenience wrapper over decompose.Engine.
// Library code that wants caching across many calls, a custom oracle, or
// engine-scoped logging should construct its own *decompose.Engine
// directly rather than go through this facade.
package mhgraphsat
