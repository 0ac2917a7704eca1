// Package decompose implements the decomposition engine: the
// research contribution that decides mhgraph_sat(G) by recursive
// structural case analysis — simplifying leaves and loops, splitting the
// link of a maximum-degree vertex into every two-partition, and
// recursing — without enumerating every supported CNF when it can avoid
// doing so.
//
// Engine holds the mutable state a single decomposition run needs: a
// bounded LRU memo of Decompose results keyed on canonical MHGraph string
// plus the hyperbolic-only flag, unbounded memos for SimplifyAtLoops and
// the satisfiability predicate, the satoracle.Oracle to delegate
// individual CNF checks to, and an optional structured logger. All of
// these are Engine-scoped rather than global, so independent Engines
// never share state.
package decompose
