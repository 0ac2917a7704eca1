// Package cnfsimplify implements two non-tautological CNF simplifications
// that the core reduction rules of the symbolic package do not attempt:
// collapsing two clauses at Hamming distance 1 over the same hyperedge
// into their shared, shorter implicant, and dropping any clause that is a
// superset of another (subsumption). Both are exponential in the worst
// case and are intended for small formulas.
package cnfsimplify
