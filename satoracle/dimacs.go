package satoracle

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// DIMACS renders the tautological reduction of f as DIMACS-style clause
// text: one line per clause, literals as signed nonzero integers
// separated by spaces, each line terminated by a trailing "0". Two
// sentinel forms replace the usual body: the empty string means f is
// trivially satisfiable ({{TRUE}}); the lone string "0" means f is
// trivially unsatisfiable ({{FALSE}}). Pure: performs no I/O.
func DIMACS(f symbolic.CNF) string {
	reduced := symbolic.ReduceCNF(f)
	clauses := reduced.Clauses()
	if len(clauses) == 1 {
		lits := clauses[0].Literals()
		if len(lits) == 1 && lits[0].IsBool() {
			if b, _ := lits[0].BoolValue(); b == symbolic.TRUE {
				return ""
			}
			return "0"
		}
	}

	var sb strings.Builder
	for _, c := range clauses {
		for _, l := range c.Literals() {
			n, _ := l.IntValue()
			sb.WriteString(strconv.Itoa(n))
			sb.WriteByte(' ')
		}
		sb.WriteString("0\n")
	}
	return sb.String()
}
