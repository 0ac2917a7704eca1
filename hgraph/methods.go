package hgraph

// Degree returns the sum of multiplicities of hyperedges of g containing
// v.
func Degree(v Vertex, g MHGraph) int {
	total := 0
	for _, it := range g.Items() {
		if it.HEdge.Has(v) {
			total += it.Mult
		}
	}
	return total
}

// Star returns the multiset of hyperedges of g containing v, with
// multiplicity, as an MHGraph. Returns false if no hyperedge of g contains
// v (an empty star is not a valid MHGraph).
func Star(g MHGraph, v Vertex) (MHGraph, bool) {
	multiset := make(map[HEdge]int)
	for _, it := range g.Items() {
		if it.HEdge.Has(v) {
			multiset[it.HEdge] = it.Mult
		}
	}
	if len(multiset) == 0 {
		return MHGraph{}, false
	}
	mhg, _ := MHGraphFromMultiset(multiset)
	return mhg, true
}

// Link returns { h \ {v} : h in star(g,v), h != {v} } with multiplicity —
// the projection of the star away from v, dropping loops at v. Returns
// false if the result would be empty (every hyperedge through v is a loop
// at v, or v is isolated).
func Link(g MHGraph, v Vertex) (MHGraph, bool) {
	multiset := make(map[HEdge]int)
	for _, it := range g.Items() {
		if !it.HEdge.Has(v) {
			continue
		}
		if it.HEdge.Size() == 1 {
			continue // loop at v, dropped.
		}
		remaining := make([]Vertex, 0, it.HEdge.Size()-1)
		for _, x := range it.HEdge.Vertices() {
			if x != v {
				remaining = append(remaining, x)
			}
		}
		h, _ := HEdgeFromVertices(remaining)
		multiset[h] += it.Mult
	}
	if len(multiset) == 0 {
		return MHGraph{}, false
	}
	mhg, _ := MHGraphFromMultiset(multiset)
	return mhg, true
}

// Sphr returns the hyperedges of g not containing v, with multiplicity.
// Complementary to Star: g = Star(g,v) ⊎ Sphr(g,v). Returns false if every
// hyperedge of g contains v.
func Sphr(g MHGraph, v Vertex) (MHGraph, bool) {
	multiset := make(map[HEdge]int)
	for _, it := range g.Items() {
		if !it.HEdge.Has(v) {
			multiset[it.HEdge] = it.Mult
		}
	}
	if len(multiset) == 0 {
		return MHGraph{}, false
	}
	mhg, _ := MHGraphFromMultiset(multiset)
	return mhg, true
}

// GraphUnion returns the multiset sum of g1 and g2.
func GraphUnion(g1, g2 MHGraph) MHGraph {
	multiset := make(map[HEdge]int)
	for _, it := range g1.Items() {
		multiset[it.HEdge] += it.Mult
	}
	for _, it := range g2.Items() {
		multiset[it.HEdge] += it.Mult
	}
	mhg, _ := MHGraphFromMultiset(multiset)
	return mhg
}

// PickMaxDegreeVertex returns the vertex of g with maximum degree,
// breaking ties in favor of the smallest vertex id.
func PickMaxDegreeVertex(g MHGraph) Vertex {
	best := Vertex(0)
	bestDeg := -1
	for _, v := range g.Vertices() { // Vertices() is sorted ascending.
		d := Degree(v, g)
		if d > bestDeg {
			bestDeg = d
			best = v
		}
	}
	return best
}

// PickMinDegreeVertex returns the vertex of g with minimum degree,
// breaking ties in favor of the smallest vertex id.
func PickMinDegreeVertex(g MHGraph) Vertex {
	best := Vertex(0)
	bestDeg := -1
	for _, v := range g.Vertices() {
		d := Degree(v, g)
		if bestDeg == -1 || d < bestDeg {
			bestDeg = d
			best = v
		}
	}
	return best
}

// ToGraph narrows an MHGraph to a simple Graph. Fails with
// ErrNotSimpleGraph unless every hedge has multiplicity 1 and size <= 2.
func ToGraph(g MHGraph) (Graph, error) {
	edges := make(map[string]Edge, g.Len())
	for _, it := range g.Items() {
		if it.Mult != 1 || it.HEdge.Size() > 2 {
			return Graph{}, ErrNotSimpleGraph
		}
		e := Edge{h: it.HEdge}
		edges[e.String()] = e
	}
	return Graph{edges: edges}, nil
}

// ToHGraph narrows an MHGraph to an HGraph. Fails with ErrNotHGraph unless
// every hedge has multiplicity exactly 1.
func ToHGraph(g MHGraph) (HGraph, error) {
	hedges := make(map[string]HEdge, g.Len())
	for _, it := range g.Items() {
		if it.Mult != 1 {
			return HGraph{}, ErrNotHGraph
		}
		hedges[it.HEdge.String()] = it.HEdge
	}
	return HGraph{hedges: hedges}, nil
}

// FromHGraph widens an HGraph to an MHGraph (every hedge at multiplicity
// 1).
func FromHGraph(g HGraph) MHGraph {
	multiset := make(map[HEdge]int, len(g.hedges))
	for _, h := range g.hedges {
		multiset[h] = 1
	}
	mhg, _ := MHGraphFromMultiset(multiset)
	return mhg
}

// FromGraph widens a Graph to an MHGraph (every edge at multiplicity 1).
func FromGraph(g Graph) MHGraph {
	multiset := make(map[HEdge]int, len(g.edges))
	for _, e := range g.edges {
		multiset[e.h] = 1
	}
	mhg, _ := MHGraphFromMultiset(multiset)
	return mhg
}
