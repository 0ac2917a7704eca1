package satoracle

import (
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// BruteForceOracle decides satisfiability by exhaustive assignment search:
// generate every total assignment over f's variables and check whether any
// of them reduces f to {{TRUE}}. Intended for testing small formulas only
// — its cost is exponential in the number of distinct variables.
type BruteForceOracle struct{}

// variablesOf returns the distinct variables appearing in f, in no
// particular order.
func variablesOf(f symbolic.CNF) []symbolic.Variable {
	seen := make(map[int]struct{})
	var out []symbolic.Variable
	for _, l := range symbolic.Lits(f) {
		n, ok := l.IntValue()
		if !ok {
			continue
		}
		if n < 0 {
			n = -n
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		v, _ := symbolic.NewVariable(n)
		out = append(out, v)
	}
	return out
}

// GenerateAssignments returns every total Boolean assignment over vars,
// one bit per variable, 2^|vars| assignments in total, built eagerly into
// a single slice.
func GenerateAssignments(vars []symbolic.Variable) []symbolic.Assignment {
	n := len(vars)
	total := 1 << n
	out := make([]symbolic.Assignment, 0, total)
	for mask := 0; mask < total; mask++ {
		assignment := make(symbolic.Assignment, n)
		for i, v := range vars {
			if mask&(1<<i) != 0 {
				assignment[v] = symbolic.TRUE
			} else {
				assignment[v] = symbolic.FALSE
			}
		}
		out = append(out, assignment)
	}
	return out
}

// isTriviallyTrue reports whether f has already reduced to {{TRUE}}.
func isTriviallyTrue(f symbolic.CNF) bool {
	clauses := f.Clauses()
	if len(clauses) != 1 {
		return false
	}
	lits := clauses[0].Literals()
	if len(lits) != 1 || !lits[0].IsBool() {
		return false
	}
	b, _ := lits[0].BoolValue()
	return b == symbolic.TRUE
}

// Sat tries every assignment of f's variables, returning true as soon as
// one reduces f to {{TRUE}}.
func (BruteForceOracle) Sat(f symbolic.CNF) (bool, error) {
	vars := variablesOf(f)
	for _, assignment := range GenerateAssignments(vars) {
		if isTriviallyTrue(symbolic.Assign(f, assignment)) {
			return true, nil
		}
	}
	return false, nil
}
