package propositional

import (
	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/symbolic"
	"github.com/katalvlaran/mhgraphsat/translation"
)

// Operand is either an MHGraph or a set of CNFs — the two shapes graph_or
// and graph_and accept. A tagged sum rather than an "any" parameter plus
// type switch, so the two cases are checked at construction rather than
// at every call site.
type Operand struct {
	isGraph bool
	graph   hgraph.MHGraph
	cnfs    map[string]symbolic.CNF
}

// FromGraph wraps an MHGraph as an Operand.
func FromGraph(g hgraph.MHGraph) Operand {
	return Operand{isGraph: true, graph: g}
}

// FromCNFSet wraps a set of CNFs as an Operand.
func FromCNFSet(cnfs []symbolic.CNF) Operand {
	set := make(map[string]symbolic.CNF, len(cnfs))
	for _, c := range cnfs {
		set[c.String()] = c
	}
	return Operand{cnfs: set}
}

// cnfSet coerces o to a set of CNFs, materializing translation.CNFsFromMHGraph
// when o wraps an MHGraph.
func (o Operand) cnfSet() []symbolic.CNF {
	if !o.isGraph {
		out := make([]symbolic.CNF, 0, len(o.cnfs))
		for _, c := range o.cnfs {
			out = append(out, c)
		}
		return out
	}
	var out []symbolic.CNF
	for c := range translation.CNFsFromMHGraph(o.graph, translation.WithRandomization(false)) {
		out = append(out, c)
	}
	return out
}

// GraphOr computes the disjunction of the Cartesian product of the CNFs
// supported by a and b (each coerced from an MHGraph to its full CNF set
// when necessary), tautologically reducing every result.
func GraphOr(a, b Operand) []symbolic.CNF {
	as, bs := a.cnfSet(), b.cnfSet()
	seen := make(map[string]symbolic.CNF, len(as)*len(bs))
	for _, x := range as {
		for _, y := range bs {
			r := CnfOr(x, y)
			seen[r.String()] = r
		}
	}
	out := make([]symbolic.CNF, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	return out
}

// GraphAnd computes the conjunction of a and b as a CNF set, via the
// Cartesian product of their supported CNFs paired with CnfAnd. Callers
// with two MHGraph operands should prefer GraphAndMHGraphs, which returns
// the cheaper multiset-union MHGraph directly instead of materializing
// CNFs.
func GraphAnd(a, b Operand) []symbolic.CNF {
	as, bs := a.cnfSet(), b.cnfSet()
	seen := make(map[string]symbolic.CNF, len(as)*len(bs))
	for _, x := range as {
		for _, y := range bs {
			r := CnfAnd(x, y)
			seen[r.String()] = r
		}
	}
	out := make([]symbolic.CNF, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	return out
}

// GraphAndMHGraphs returns the conjunction of two MHGraphs as a single
// MHGraph — the multiset union — matching graph_and's MHGraph/MHGraph
// overload, which short-circuits the CNF-level computation entirely.
func GraphAndMHGraphs(g1, g2 hgraph.MHGraph) hgraph.MHGraph {
	return hgraph.GraphUnion(g1, g2)
}
