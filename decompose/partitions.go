package decompose

import (
	"iter"

	"github.com/katalvlaran/mhgraphsat/hgraph"
)

// partitionPair is an unordered bipartition of a link's elements into two
// non-empty MHGraphs.
type partitionPair [2]hgraph.MHGraph

// flattenMultiset expands an MHGraph's (hedge, multiplicity) items into one
// slice entry per unit of multiplicity, so that a bitmask over the slice
// indices corresponds to a bipartition of the underlying multiset.
func flattenMultiset(g hgraph.MHGraph) []hgraph.HEdge {
	var out []hgraph.HEdge
	for _, it := range g.Items() {
		for i := 0; i < it.Mult; i++ {
			out = append(out, it.HEdge)
		}
	}
	return out
}

func mhgraphFromHEdges(hedges []hgraph.HEdge) (hgraph.MHGraph, bool) {
	if len(hedges) == 0 {
		return hgraph.MHGraph{}, false
	}
	multiset := make(map[hgraph.HEdge]int, len(hedges))
	for _, h := range hedges {
		multiset[h]++
	}
	g, err := hgraph.MHGraphFromMultiset(multiset)
	if err != nil {
		return hgraph.MHGraph{}, false
	}
	return g, true
}

// ComputeAllTwoPartitions yields every unordered bipartition of
// link(G, v)'s multiset into two non-empty parts. Elements are flattened
// respecting multiplicity, so a hyperedge appearing with multiplicity m is
// treated as m distinguishable slots; a bitmask over those slots (with
// element 0 fixed to part 1) enumerates every unordered bipartition exactly
// once. If hyperbolicOnly is true, only "maximally hyperbolic" partitions
// with ||part1| - |part2|| <= 1 are yielded.
//
// Lazy: the caller may stop iterating at any point (e.g. on the first term
// that already decides the enclosing conjunction/disjunction).
func ComputeAllTwoPartitions(link hgraph.MHGraph, hyperbolicOnly bool) iter.Seq[partitionPair] {
	elems := flattenMultiset(link)
	n := len(elems)
	return func(yield func(partitionPair) bool) {
		if n < 2 {
			return
		}
		// Element 0 is always in part1: this halves the bitmask space and
		// avoids yielding both (H1,H2) and (H2,H1) for the same split.
		total := 1 << (n - 1)
		for mask := 0; mask < total; mask++ {
			var part1, part2 []hgraph.HEdge
			part1 = append(part1, elems[0])
			for i := 1; i < n; i++ {
				if mask&(1<<(i-1)) != 0 {
					part1 = append(part1, elems[i])
				} else {
					part2 = append(part2, elems[i])
				}
			}
			if len(part2) == 0 {
				continue // both parts must be non-empty.
			}
			if hyperbolicOnly {
				diff := len(part1) - len(part2)
				if diff < 0 {
					diff = -diff
				}
				if diff > 1 {
					continue
				}
			}
			g1, ok1 := mhgraphFromHEdges(part1)
			g2, ok2 := mhgraphFromHEdges(part2)
			if !ok1 || !ok2 {
				continue
			}
			if !yield(partitionPair{g1, g2}) {
				return
			}
		}
	}
}
