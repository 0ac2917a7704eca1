package decompose

import (
	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/symbolic"
	"github.com/katalvlaran/mhgraphsat/translation"
)

// GroupCNFsByMHGraph partitions a set of non-trivial CNFs by the MHGraph
// each one maps to under mhgraph_from_cnf, mirroring the round-trip
// property that every CNF a well-formed MHGraph supports maps back to that
// same MHGraph. CNFs that fail to translate (the trivial TRUE/FALSE CNFs)
// are silently skipped — callers wanting those should filter on
// symbolic.CNF equality against the trivial constants before calling.
func GroupCNFsByMHGraph(cnfs []symbolic.CNF) map[string][]symbolic.CNF {
	groups := make(map[string][]symbolic.CNF)
	for _, c := range cnfs {
		g, err := translation.MHGraphFromCNF(c)
		if err != nil {
			continue
		}
		groups[g.String()] = append(groups[g.String()], c)
	}
	return groups
}

// IsCompleteCNFSet reports whether cnfSet contains every CNF
// cnfs_from_mhgraph(graph) enumerates — i.e. cnfSet is the complete support
// set of graph, not a strict subset gathered from some other source (such
// as a rewrite rule's unioned children).
func IsCompleteCNFSet(cnfSet []symbolic.CNF, graph hgraph.MHGraph) bool {
	present := make(map[string]struct{}, len(cnfSet))
	for _, c := range cnfSet {
		present[c.String()] = struct{}{}
	}
	for c := range translation.CNFsFromMHGraph(graph, translation.WithRandomization(false)) {
		if _, ok := present[c.String()]; !ok {
			return false
		}
	}
	return true
}
