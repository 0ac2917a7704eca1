package cnfsimplify

import (
	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

func literalSet(c symbolic.Clause) map[symbolic.Literal]struct{} {
	lits := c.Literals()
	set := make(map[symbolic.Literal]struct{}, len(lits))
	for _, l := range lits {
		set[l] = struct{}{}
	}
	return set
}

// hedgeOfClause returns the hyperedge formed by the absolute value of
// every literal in c.
func hedgeOfClause(c symbolic.Clause) (hgraph.HEdge, error) {
	lits := c.Literals()
	ids := make([]int, 0, len(lits))
	for _, l := range lits {
		abs := symbolic.AbsoluteValue(l)
		n, ok := abs.IntValue()
		if !ok {
			continue
		}
		ids = append(ids, n)
	}
	return hgraph.NewHEdge(ids...)
}

// differingLits returns the symmetric difference of c1 and c2's literal
// sets — twice the Hamming distance between the two clauses.
func differingLits(c1, c2 symbolic.Clause) []symbolic.Literal {
	s1, s2 := literalSet(c1), literalSet(c2)
	var out []symbolic.Literal
	for l := range s1 {
		if _, ok := s2[l]; !ok {
			out = append(out, l)
		}
	}
	for l := range s2 {
		if _, ok := s1[l]; !ok {
			out = append(out, l)
		}
	}
	return out
}

// equivalentSmallerClause returns the intersection of c1 and c2's
// literals — the shorter clause logically equivalent to c1 ∨ c2 when the
// two differ by exactly one variable's sign over the same hyperedge.
func equivalentSmallerClause(c1, c2 symbolic.Clause) symbolic.Clause {
	s1, s2 := literalSet(c1), literalSet(c2)
	var shared []symbolic.Literal
	for l := range s1 {
		if _, ok := s2[l]; ok {
			shared = append(shared, l)
		}
	}
	out, _ := symbolic.ClauseFromLiterals(shared)
	return out
}

// ReduceDistanceOneClauses repeatedly finds a pair of clauses supported on
// the same hyperedge that differ in exactly one literal's sign, and
// replaces the pair by their shared, shorter implicant, until no such pair
// remains. NP-hard in general; not intended for formulas with more than a
// handful of variables.
func ReduceDistanceOneClauses(f symbolic.CNF) symbolic.CNF {
	clauses := f.Clauses()
	for i := 0; i < len(clauses); i++ {
		for j := i + 1; j < len(clauses); j++ {
			h1, err1 := hedgeOfClause(clauses[i])
			h2, err2 := hedgeOfClause(clauses[j])
			if err1 != nil || err2 != nil || !h1.Equal(h2) {
				continue
			}
			if len(differingLits(clauses[i], clauses[j])) != 2 {
				continue
			}
			next := make([]symbolic.Clause, 0, len(clauses)-1)
			for k, c := range clauses {
				if k == i || k == j {
					continue
				}
				next = append(next, c)
			}
			next = append(next, equivalentSmallerClause(clauses[i], clauses[j]))
			reducedCNF, _ := symbolic.CNFFromClauses(next)
			return ReduceDistanceOneClauses(reducedCNF)
		}
	}
	return f
}

// subset reports whether every literal of c1 also appears in c2.
func subset(c1, c2 symbolic.Clause) bool {
	for _, l := range c1.Literals() {
		if !c2.Has(l) {
			return false
		}
	}
	return true
}

// SubclauseReduction repeatedly finds a pair of distinct clauses c1, c2
// where every literal of c1 appears in c2, and drops c2 (c1 ∧ c2 is
// equivalent to c1 alone), until no such pair remains.
func SubclauseReduction(f symbolic.CNF) symbolic.CNF {
	clauses := f.Clauses()
	for i, c1 := range clauses {
		for j, c2 := range clauses {
			if i == j {
				continue
			}
			if subset(c1, c2) {
				next := make([]symbolic.Clause, 0, len(clauses)-1)
				for k, c := range clauses {
					if k == j {
						continue
					}
					next = append(next, c)
				}
				reducedCNF, _ := symbolic.CNFFromClauses(next)
				return SubclauseReduction(reducedCNF)
			}
		}
	}
	return f
}

// Reduce applies ReduceDistanceOneClauses followed by SubclauseReduction.
func Reduce(f symbolic.CNF) symbolic.CNF {
	return SubclauseReduction(ReduceDistanceOneClauses(f))
}
