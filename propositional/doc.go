// Package propositional implements the pointwise Boolean algebra on
// symbolic.Clause and symbolic.CNF values: AND/OR/NOT, with every
// result passed through tautological reduction, plus the graph-lifted
// graph_or/graph_and operators that coerce MHGraphs and CNF sets
// interchangeably.
package propositional
