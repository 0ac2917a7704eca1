package propositional

import (
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// CnfAnd returns the conjunction of a and b: the set union of their
// clauses, tautologically reduced.
func CnfAnd(a, b symbolic.CNF) symbolic.CNF {
	clauses := append(a.Clauses(), b.Clauses()...)
	merged, _ := symbolic.CNFFromClauses(clauses)
	return symbolic.ReduceCNF(merged)
}

// CnfOr returns the disjunction of a and b, computed by distributing OR
// over AND: the Cartesian product of a's and b's clauses, paired with
// OrClause, tautologically reduced.
func CnfOr(a, b symbolic.CNF) symbolic.CNF {
	ac, bc := a.Clauses(), b.Clauses()
	product := make([]symbolic.Clause, 0, len(ac)*len(bc))
	for _, c1 := range ac {
		for _, c2 := range bc {
			product = append(product, OrClause(c1, c2))
		}
	}
	merged, _ := symbolic.CNFFromClauses(product)
	return symbolic.ReduceCNF(merged)
}

// CnfNot returns the De Morgan negation of f: the disjunction, folded via
// CnfOr, of NotClause(c) for every clause c of f.
func CnfNot(f symbolic.CNF) symbolic.CNF {
	clauses := f.Clauses()
	acc := NotClause(clauses[0])
	for _, c := range clauses[1:] {
		acc = CnfOr(acc, NotClause(c))
	}
	return acc
}
