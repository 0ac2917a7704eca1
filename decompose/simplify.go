package decompose

import "github.com/katalvlaran/mhgraphsat/hgraph"

// findLeaf returns a degree-1 vertex and its unique incident hyperedge, if
// one exists.
func findLeaf(g hgraph.MHGraph) (hgraph.Vertex, hgraph.HEdge, bool) {
	for _, v := range g.Vertices() {
		if hgraph.Degree(v, g) != 1 {
			continue
		}
		for _, it := range g.Items() {
			if it.HEdge.Has(v) {
				return v, it.HEdge, true
			}
		}
	}
	return 0, hgraph.HEdge{}, false
}

// dropHEdge removes one hyperedge entirely from g's multiset.
func dropHEdge(g hgraph.MHGraph, h hgraph.HEdge) hgraph.MHGraph {
	multiset := make(map[hgraph.HEdge]int)
	for _, it := range g.Items() {
		if it.HEdge.Equal(h) {
			continue
		}
		multiset[it.HEdge] = it.Mult
	}
	out, _ := hgraph.MHGraphFromMultiset(multiset)
	return out
}

// SimplifyAtLeaves repeatedly drops the unique incident hyperedge of any
// degree-1 vertex until no such vertex remains. If this empties G
// entirely, the graph is vacuously satisfiable.
func SimplifyAtLeaves(g hgraph.MHGraph) Result {
	for {
		_, h, found := findLeaf(g)
		if !found {
			return GraphResult(g)
		}
		g = dropHEdge(g, h)
		if g.Len() == 0 {
			return BoolResult(true)
		}
	}
}

// loopsOf returns every size-1 hyperedge ("loop") of g.
func loopsOf(g hgraph.MHGraph) []hgraph.MultisetEntry {
	var out []hgraph.MultisetEntry
	for _, it := range g.Items() {
		if it.HEdge.Size() == 1 {
			out = append(out, it)
		}
	}
	return out
}

// SimplifyAtLoops implements the loop-projection step: a double loop (one
// vertex looped with multiplicity >= 2) is unsatisfiable; a graph with no
// loop is returned unchanged; a graph that is exactly a single loop is
// vacuously satisfiable; otherwise the loop imposes a sign at its vertex,
// equivalent to replacing G by sphr(G,v) ∪ link(G,v).
func SimplifyAtLoops(g hgraph.MHGraph) Result {
	loops := loopsOf(g)
	if len(loops) == 0 {
		return GraphResult(g)
	}
	for _, loop := range loops {
		if loop.Mult >= 2 {
			return BoolResult(false)
		}
	}

	v := loops[0].HEdge.Vertices()[0]
	if g.Len() == 1 {
		return BoolResult(true)
	}

	sphr, sphrOK := hgraph.Sphr(g, v)
	link, linkOK := hgraph.Link(g, v)
	switch {
	case sphrOK && linkOK:
		return GraphResult(hgraph.GraphUnion(sphr, link))
	case sphrOK:
		return GraphResult(sphr)
	case linkOK:
		return GraphResult(link)
	default:
		return BoolResult(true)
	}
}

// SimplifyAtLeavesAndLoops alternates SimplifyAtLeaves and SimplifyAtLoops
// to a joint fixed point, returning as soon as either step yields a
// definitive Bool. Each MHG -> MHG step strictly decreases
// (|V(G)|, total multiplicity) lexicographically, so the recursion
// terminates.
func SimplifyAtLeavesAndLoops(g hgraph.MHGraph) Result {
	leafResult := SimplifyAtLeaves(g)
	if leafResult.IsBool() {
		return leafResult
	}
	afterLeaves := leafResult.Graph()
	if !afterLeaves.Equal(g) {
		return SimplifyAtLeavesAndLoops(afterLeaves)
	}

	loopResult := SimplifyAtLoops(afterLeaves)
	if loopResult.IsBool() {
		return loopResult
	}
	afterLoops := loopResult.Graph()
	if afterLoops.Equal(afterLeaves) {
		return GraphResult(afterLoops)
	}
	return SimplifyAtLeavesAndLoops(afterLoops)
}
