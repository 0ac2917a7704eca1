package decompose

import (
	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/translation"
)

// decomposeAtVertex implements decompose_at_vertex(G, v): split G's link at
// v into every two-partition and conjoin the per-partition verdicts, with
// two special cases to avoid an unnecessary satcheck: an empty sphr
// ("star graph") and an over-saturated sphr. A link with fewer than two
// elements yields no partition, so the conjunction is vacuously true.
func (e *Engine) decomposeAtVertex(g hgraph.MHGraph, v hgraph.Vertex) (bool, error) {
	sphr, sphrOK := hgraph.Sphr(g, v)
	link, linkOK := hgraph.Link(g, v)
	if !linkOK {
		// v has no non-loop incident hyperedge after simplification; the
		// precondition guarantees degree(v) >= 2, so this cannot happen,
		// but fail closed rather than looping.
		return false, ErrPostconditionViolated
	}

	if !sphrOK {
		// star graph: every hyperedge of G passes through v.
		for pair := range ComputeAllTwoPartitions(link, e.hyperbolicOnly) {
			d1, err := e.Decompose(pair[0])
			if err != nil {
				return false, err
			}
			if d1 {
				continue
			}
			d2, err := e.Decompose(pair[1])
			if err != nil {
				return false, err
			}
			if !d2 {
				return false, nil
			}
		}
		return true, nil
	}

	if translation.IsOversaturated(sphr) {
		return false, nil
	}

	for pair := range ComputeAllTwoPartitions(link, e.hyperbolicOnly) {
		ok, err := e.SatcheckPartition(sphr, pair[0], pair[1])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
