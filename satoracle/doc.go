// Package satoracle implements the SAT oracle adapter: a predicate
// cnf_sat : CNF -> bool that tautologically reduces its input, short
// circuits on trivial constants, and otherwise delegates to an external
// Minisat-class DPLL solver via a DIMACS-style contract, plus a brute-force
// fallback oracle for testing small formulas and an Engine exposing the
// memoized mhgraph_sat predicate.
package satoracle
