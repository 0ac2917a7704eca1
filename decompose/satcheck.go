package decompose

import (
	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/propositional"
	"github.com/katalvlaran/mhgraphsat/symbolic"
	"github.com/katalvlaran/mhgraphsat/translation"
)

// SatcheckPartition decides satisfiability of one entangled partition term:
// sphr is sphr(G,v) (assumed non-empty and not over-saturated — the caller,
// decomposeAtVertex, handles those cases before ever reaching here), and
// (h1, h2) is a two-partition of link(G,v).
func (e *Engine) SatcheckPartition(sphr, h1, h2 hgraph.MHGraph) (bool, error) {
	e.logger.WithFields(map[string]any{
		"sphr": sphr.String(), "h1": h1.String(), "h2": h2.String(),
	}).Trace("satcheck partition")

	// 1. Over-saturation filter.
	ov1 := translation.IsOversaturated(h1)
	ov2 := translation.IsOversaturated(h2)
	switch {
	case ov1 && ov2:
		return false, nil
	case ov1:
		return e.Decompose(hgraph.GraphUnion(sphr, h2))
	case ov2:
		return e.Decompose(hgraph.GraphUnion(sphr, h1))
	}

	// 2. Heuristic independent check.
	d1, err := e.Decompose(hgraph.GraphUnion(sphr, h1))
	if err != nil {
		return false, err
	}
	if d1 {
		return true, nil
	}
	d2, err := e.Decompose(hgraph.GraphUnion(sphr, h2))
	if err != nil {
		return false, err
	}
	if d2 {
		return true, nil
	}

	// 3. Entangled check: the partition fails (false) as soon as some xs in
	// cnfs(sphr) has both some xh1 in cnfs(h1) with xs∧xh1 unsat and some
	// xh2 in cnfs(h2) with xs∧xh2 also unsat.
	h1CNFs := collectCNFs(h1)
	h2CNFs := collectCNFs(h2)
	for xs := range translation.CNFsFromMHGraph(sphr, translation.WithRandomization(false)) {
		anyUnsatH1 := false
		for _, xh1 := range h1CNFs {
			sat1, err := e.oracle.CnfSat(propositional.CnfAnd(xs, xh1))
			if err != nil {
				return false, err
			}
			if !sat1 {
				anyUnsatH1 = true
				break
			}
		}
		if !anyUnsatH1 {
			continue
		}
		anyUnsatH2 := false
		for _, xh2 := range h2CNFs {
			sat2, err := e.oracle.CnfSat(propositional.CnfAnd(xs, xh2))
			if err != nil {
				return false, err
			}
			if !sat2 {
				anyUnsatH2 = true
				break
			}
		}
		if anyUnsatH2 {
			return false, nil
		}
	}
	return true, nil
}

// collectCNFs materializes a graph's lazily-produced CNF sequence: the
// entangled check must range over h1's and h2's CNFs once per outer xs, so
// re-walking the lazy sequence on every iteration would be quadratically
// wasteful.
func collectCNFs(g hgraph.MHGraph) []symbolic.CNF {
	var out []symbolic.CNF
	for c := range translation.CNFsFromMHGraph(g, translation.WithRandomization(false)) {
		out = append(out, c)
	}
	return out
}
