// Package symbolic: tautological reduction and partial assignment.
//
// ReduceClause and ReduceCNF implement a four-rule tautological clause
// reduction and its CNF-level fixed point, applied in a fixed rule order.
// AssignClause/AssignCNF/Assign implement partial assignment, always
// followed by a reduction to fixed point.
package symbolic

// trueLit and falseLit are the Bool literals of the two trivial,
// single-literal clauses that ReduceClause can collapse onto.
var (
	trueLit, _  = Lit(TRUE)
	falseLit, _ = Lit(FALSE)
)

// ReduceClause applies the four tautological-reduction rules to c, in
// order:
//
//  1. If Bool(TRUE) ∈ c, return {Bool(TRUE)}.
//  2. If c == {Bool(FALSE)}, return {Bool(FALSE)}.
//  3. Drop Bool(FALSE) from c.
//  4. If c contains both a literal and its negation, return {Bool(TRUE)}.
//
// Otherwise c is returned unchanged (modulo the FALSE-literal drop in step
// 3). Idempotent.
func ReduceClause(c Clause) Clause {
	if c.Has(trueLit) {
		clause, _ := ClauseFromLiterals([]Literal{trueLit})
		return clause
	}
	if c.Len() == 1 && c.Has(falseLit) {
		clause, _ := ClauseFromLiterals([]Literal{falseLit})
		return clause
	}

	lits := make([]Literal, 0, c.Len())
	for _, l := range c.Literals() {
		if l.Equal(falseLit) {
			continue
		}
		lits = append(lits, l)
	}
	if len(lits) == 0 {
		// Every literal was Bool(FALSE); the clause had no other members.
		clause, _ := ClauseFromLiterals([]Literal{falseLit})
		return clause
	}

	for _, l := range lits {
		if containsLiteral(lits, Neg(l)) {
			clause, _ := ClauseFromLiterals([]Literal{trueLit})
			return clause
		}
	}

	clause, _ := ClauseFromLiterals(lits)
	return clause
}

func containsLiteral(lits []Literal, target Literal) bool {
	for _, l := range lits {
		if l.Equal(target) {
			return true
		}
	}
	return false
}

// trivialTrueCNF and trivialFalseCNF are the two degenerate CNFs that
// ReduceCNF's fixed point can terminate on.
func trivialTrueCNF() CNF {
	c, _ := ClauseFromLiterals([]Literal{trueLit})
	f, _ := CNFFromClauses([]Clause{c})
	return f
}

func trivialFalseCNF() CNF {
	c, _ := ClauseFromLiterals([]Literal{falseLit})
	f, _ := CNFFromClauses([]Clause{c})
	return f
}

// ReduceCNF applies ReduceClause to every clause, then recurses to a fixed
// point:
//
//  1. Reduce every clause.
//  2. If any clause is {Bool(FALSE)}, return {{Bool(FALSE)}}.
//  3. If the only clause is {Bool(TRUE)}, return {{Bool(TRUE)}}.
//  4. Else drop all {Bool(TRUE)} clauses and recurse.
//  5. Fixed point reached, return.
func ReduceCNF(f CNF) CNF {
	reducedClauses := make([]Clause, 0, f.Len())
	for _, c := range f.Clauses() {
		reducedClauses = append(reducedClauses, ReduceClause(c))
	}

	for _, c := range reducedClauses {
		if c.Len() == 1 && c.Has(falseLit) {
			return trivialFalseCNF()
		}
	}

	if len(reducedClauses) == 1 && reducedClauses[0].Len() == 1 && reducedClauses[0].Has(trueLit) {
		return trivialTrueCNF()
	}

	kept := make([]Clause, 0, len(reducedClauses))
	for _, c := range reducedClauses {
		if c.Len() == 1 && c.Has(trueLit) {
			continue
		}
		kept = append(kept, c)
	}

	if len(kept) == 0 {
		// Every clause was a dropped tautology: the CNF is vacuously true.
		return trivialTrueCNF()
	}

	next, _ := CNFFromClauses(kept)
	if next.Equal(f) {
		return next
	}
	return ReduceCNF(next)
}

// AssignInLit resolves l under the single-variable assignment v := b: Bool
// literals pass through unchanged; Int(v) becomes Bool(b); Int(-v) becomes
// Bool(¬b); any other Int literal passes through unchanged.
func AssignInLit(l Literal, v Variable, b Bool) Literal {
	if l.IsBool() {
		return l
	}
	n, _ := l.IntValue()
	if n == int(v) {
		return FromBool(b)
	}
	if n == -int(v) {
		return FromBool(!b)
	}
	return l
}

// AssignInClause maps AssignInLit over c pointwise, then reduces.
func AssignInClause(c Clause, v Variable, b Bool) Clause {
	lits := make([]Literal, 0, c.Len())
	for _, l := range c.Literals() {
		lits = append(lits, AssignInLit(l, v, b))
	}
	clause, _ := ClauseFromLiterals(lits)
	return ReduceClause(clause)
}

// AssignInCNF maps AssignInClause over f pointwise, then reduces the
// result to a fixed point.
func AssignInCNF(f CNF, v Variable, b Bool) CNF {
	clauses := make([]Clause, 0, f.Len())
	for _, c := range f.Clauses() {
		clauses = append(clauses, AssignInClause(c, v, b))
	}
	next, _ := CNFFromClauses(clauses)
	return ReduceCNF(next)
}

// Assign folds AssignInCNF over every (Variable, Bool) pair in mapping. An
// empty mapping is equivalent to ReduceCNF(f).
func Assign(f CNF, mapping Assignment) CNF {
	result := ReduceCNF(f)
	for v, b := range mapping {
		result = AssignInCNF(result, v, b)
	}
	return result
}
