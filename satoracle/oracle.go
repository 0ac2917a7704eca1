package satoracle

import (
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// Oracle decides satisfiability of a CNF already known to be non-trivial
// (neither {{TRUE}} nor {{FALSE}}).
type Oracle interface {
	Sat(f symbolic.CNF) (bool, error)
}

// CnfSat implements cnf_sat: tautologically reduce f, short-circuit on a
// trivial result, else delegate to oracle.
func CnfSat(oracle Oracle, f symbolic.CNF) (bool, error) {
	reduced := symbolic.ReduceCNF(f)
	clauses := reduced.Clauses()
	if len(clauses) == 1 {
		lits := clauses[0].Literals()
		if len(lits) == 1 && lits[0].IsBool() {
			b, _ := lits[0].BoolValue()
			return b == symbolic.TRUE, nil
		}
	}
	return oracle.Sat(reduced)
}
