package morphism

import (
	"iter"

	"github.com/katalvlaran/mhgraphsat/hgraph"
)

// heuristicSignature summarizes the cheap-to-compute invariants used to
// gate subgraph search before any candidate morphism is built: vertex
// count, hyperedge count ignoring multiplicity, size-2 hyperedge count,
// size-3 hyperedge count, and total multiplicity.
type heuristicSignature struct {
	vertices  int
	hedges    int
	size2     int
	size3     int
	totalMult int
}

func signatureOf(g hgraph.MHGraph) heuristicSignature {
	sig := heuristicSignature{vertices: len(g.Vertices())}
	for _, it := range g.Items() {
		sig.hedges++
		sig.totalMult += it.Mult
		switch it.HEdge.Size() {
		case 2:
			sig.size2++
		case 3:
			sig.size3++
		}
	}
	return sig
}

// passesHeuristicGate reports whether g1 could possibly embed into g2: none
// of g1's invariants may exceed g2's corresponding invariant. Failing this
// gate proves no Morphism exists; passing it is necessary but not
// sufficient.
func passesHeuristicGate(g1, g2 hgraph.MHGraph) bool {
	s1, s2 := signatureOf(g1), signatureOf(g2)
	return s1.vertices <= s2.vertices &&
		s1.hedges <= s2.hedges &&
		s1.size2 <= s2.size2 &&
		s1.size3 <= s2.size3 &&
		s1.totalMult <= s2.totalMult
}

// isImmediateSubgraph reports whether image's hyperedges are each present
// in target at no less than image's multiplicity.
func isImmediateSubgraph(image, target hgraph.MHGraph) bool {
	for _, it := range image.Items() {
		if target.Multiplicity(it.HEdge) < it.Mult {
			return false
		}
	}
	return true
}

// SubgraphSearch reports whether g1 embeds into g2 and, if so, enumerates
// every witnessing Morphism (returnAll) or just the first one found.
// Candidates failing the cheap heuristic gate are never enumerated.
func SubgraphSearch(g1, g2 hgraph.MHGraph, returnAll bool) (bool, iter.Seq[Morphism]) {
	if !passesHeuristicGate(g1, g2) {
		return false, nil
	}

	candidates := func(yield func(Morphism) bool) {
		for vm := range GenerateVertexMaps(g1, g2, true) {
			ivm := InjectiveVertexMap{VertexMap: vm}
			image, err := GraphImage(ivm, g1)
			if err != nil {
				continue
			}
			if !isImmediateSubgraph(image, g2) {
				continue
			}
			if !yield(Morphism{InjectiveVertexMap: ivm}) {
				return
			}
		}
	}

	if !returnAll {
		for m := range candidates {
			found := m
			return true, func(yield func(Morphism) bool) { yield(found) }
		}
		return false, nil
	}

	// The first candidate answers whether g1 embeds into g2 even if the
	// caller never pulls from the sequence; the returned sequence then
	// re-enumerates the candidates lazily from the start.
	for range candidates {
		return true, candidates
	}
	return false, nil
}

// IsomorphismSearch reports whether g1 and g2 are isomorphic — g2 embeds
// into g1 with no multiplicity slack (subgraph_search(g2,g1,false)) and g1
// embeds into g2 (subgraph_search(g1,g2,returnAll)) — returning the
// witnessing Morphisms in the latter direction per returnAll.
func IsomorphismSearch(g1, g2 hgraph.MHGraph, returnAll bool) (bool, iter.Seq[Morphism]) {
	backOK, _ := SubgraphSearch(g2, g1, false)
	if !backOK {
		return false, nil
	}
	return SubgraphSearch(g1, g2, returnAll)
}

// UniqueUpToIsomorphism filters seq, a lazily-pulled sequence of MHGraphs,
// keeping only the first representative of each isomorphism class. O(n^2)
// worst case: every kept representative is compared against every new
// candidate.
func UniqueUpToIsomorphism(seq iter.Seq[hgraph.MHGraph]) iter.Seq[hgraph.MHGraph] {
	return func(yield func(hgraph.MHGraph) bool) {
		var representatives []hgraph.MHGraph
		for g := range seq {
			isNew := true
			for _, rep := range representatives {
				if iso, _ := IsomorphismSearch(rep, g, false); iso {
					isNew = false
					break
				}
			}
			if !isNew {
				continue
			}
			representatives = append(representatives, g)
			if !yield(g) {
				return
			}
		}
	}
}
