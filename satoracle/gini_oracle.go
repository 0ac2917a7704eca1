package satoracle

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// GiniOracle decides satisfiability in-process via go-air/gini, a
// Minisat-class CDCL solver. f is assumed already tautologically reduced
// and non-trivial (CnfSat guarantees this before calling Sat).
type GiniOracle struct{}

// Sat feeds f's clauses to a fresh gini solver instance and returns its
// verdict. A one-shot instance per call, matching the oracle's assumed
// per-call thread-safety contract.
func (GiniOracle) Sat(f symbolic.CNF) (bool, error) {
	g := gini.New()
	for _, c := range f.Clauses() {
		for _, l := range c.Literals() {
			n, ok := l.IntValue()
			if !ok {
				return false, ErrOracleFailed
			}
			g.Add(z.Dimacs2Lit(n))
		}
		g.Add(0)
	}
	switch g.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	default:
		return false, ErrOracleFailed
	}
}
