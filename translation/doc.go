// Package translation implements the CNF <-> MHGraph translation layer:
// enumerating every CNF a given MHGraph supports, deriving the MHGraph
// that supports a given CNF, counting supported CNFs, and testing
// over-saturation.
//
// Enumeration functions return iter.Seq[symbolic.CNF] — Go 1.23's
// range-over-func iterator — so callers can pull lazily and short-circuit
// (for ... break) without ever materializing a combinatorially large
// sequence in full.
//
// Combinatorics (binomial coefficients, choosing m of 2^k clauses) is
// delegated to gonum.org/v1/gonum/stat/combin.
package translation
