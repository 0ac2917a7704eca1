// Package symbolic implements the symbolic core of mhgraphsat: Variable,
// Bool, Literal, Clause, CNF, and partial Assignment, together with their
// constructors and the tautological-reduction algebra.
//
// All types here are immutable values. Equality and hashing for Clause and
// CNF ignore insertion order — two Clauses (or CNFs) built from the same
// literals (or clauses) in a different order compare equal and produce the
// same canonical String(). Constructors are idempotent: Lit(Lit(x)) equals
// Lit(x), NewClause given an already-built Clause as its only argument
// returns it unchanged, and CNFFromClauses(f.Clauses()) equals f.
//
// Errors:
//
//	ErrEmpty        - a constructor was given an empty collection.
//	ErrZeroValue    - a Variable or Int literal of value zero was requested.
//	ErrNegativeVar  - a Variable below 1 was requested.
//
// Neg and AbsoluteValue are total and never fail.
package symbolic
