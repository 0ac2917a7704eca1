package propositional

import (
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// OrClause returns the disjunction of a and b: the set union of their
// literals, tautologically reduced.
func OrClause(a, b symbolic.Clause) symbolic.Clause {
	lits := append(a.Literals(), b.Literals()...)
	merged, _ := symbolic.ClauseFromLiterals(lits)
	return symbolic.ReduceClause(merged)
}

// NotClause returns the De Morgan negation of c as a CNF: the conjunction
// of the negation of every literal of c, each as its own unit clause.
func NotClause(c symbolic.Clause) symbolic.CNF {
	lits := c.Literals()
	unitClauses := make([]symbolic.Clause, len(lits))
	for i, l := range lits {
		uc, _ := symbolic.ClauseFromLiterals([]symbolic.Literal{symbolic.Neg(l)})
		unitClauses[i] = uc
	}
	cnf, _ := symbolic.CNFFromClauses(unitClauses)
	return symbolic.ReduceCNF(cnf)
}
