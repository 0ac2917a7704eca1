package morphism

import (
	"github.com/katalvlaran/mhgraphsat/hgraph"
)

// VertexMap is a total function tau: V(from) -> V(to). Constructing one
// directly checks nothing beyond domain/codomain membership; NewVertexMap
// is the validating constructor.
type VertexMap struct {
	from hgraph.MHGraph
	to   hgraph.MHGraph
	tau  map[hgraph.Vertex]hgraph.Vertex
}

// NewVertexMap builds a VertexMap from g1 to g2 out of tau, reporting ok =
// false (not an error) if dom(tau) != V(g1) or img(tau) is not a subset of
// V(g2). Evaluated at enumeration scale, so absence is an expected outcome.
func NewVertexMap(g1, g2 hgraph.MHGraph, tau map[hgraph.Vertex]hgraph.Vertex) (VertexMap, bool) {
	domain := g1.Vertices()
	if len(tau) != len(domain) {
		return VertexMap{}, false
	}
	codomain := make(map[hgraph.Vertex]struct{}, len(g2.Vertices()))
	for _, v := range g2.Vertices() {
		codomain[v] = struct{}{}
	}
	for _, v := range domain {
		img, ok := tau[v]
		if !ok {
			return VertexMap{}, false
		}
		if _, ok := codomain[img]; !ok {
			return VertexMap{}, false
		}
	}
	cp := make(map[hgraph.Vertex]hgraph.Vertex, len(tau))
	for k, v := range tau {
		cp[k] = v
	}
	return VertexMap{from: g1, to: g2, tau: cp}, true
}

// Apply returns tau(v) and true iff v is in the domain of m.
func (m VertexMap) Apply(v hgraph.Vertex) (hgraph.Vertex, bool) {
	img, ok := m.tau[v]
	return img, ok
}

// From returns the source graph the map was built against.
func (m VertexMap) From() hgraph.MHGraph { return m.from }

// To returns the target graph the map was built against.
func (m VertexMap) To() hgraph.MHGraph { return m.to }

// InjectiveVertexMap is a VertexMap whose tau is injective.
type InjectiveVertexMap struct {
	VertexMap
}

// NewInjectiveVertexMap builds a VertexMap and additionally checks
// injectivity; ok is false if the underlying VertexMap fails to build or
// tau identifies two distinct source vertices.
func NewInjectiveVertexMap(g1, g2 hgraph.MHGraph, tau map[hgraph.Vertex]hgraph.Vertex) (InjectiveVertexMap, bool) {
	vm, ok := NewVertexMap(g1, g2, tau)
	if !ok {
		return InjectiveVertexMap{}, false
	}
	seen := make(map[hgraph.Vertex]struct{}, len(vm.tau))
	for _, img := range vm.tau {
		if _, dup := seen[img]; dup {
			return InjectiveVertexMap{}, false
		}
		seen[img] = struct{}{}
	}
	return InjectiveVertexMap{VertexMap: vm}, true
}

// GraphImage applies ι to every vertex of every hyperedge of g (which must
// be expressed over ι's source vertex set), preserving multiplicity.
// Because ι is injective, no hyperedge collapses under the map.
func GraphImage(iota InjectiveVertexMap, g hgraph.MHGraph) (hgraph.MHGraph, error) {
	multiset := make(map[hgraph.HEdge]int)
	for _, it := range g.Items() {
		vs := it.HEdge.Vertices()
		mapped := make([]int, len(vs))
		for i, v := range vs {
			img, ok := iota.Apply(v)
			if !ok {
				return hgraph.MHGraph{}, ErrDimensionMismatch
			}
			mapped[i] = int(img)
		}
		h, err := hgraph.NewHEdge(mapped...)
		if err != nil {
			return hgraph.MHGraph{}, err
		}
		multiset[h] += it.Mult
	}
	return hgraph.MHGraphFromMultiset(multiset)
}

// Morphism is an InjectiveVertexMap under which every hyperedge of its
// source graph's image (ignoring multiplicity) is a hyperedge of the
// target graph.
type Morphism struct {
	InjectiveVertexMap
}

// NewMorphism builds an InjectiveVertexMap from g1 to g2 and checks that
// graph_image(tau, g1), with multiplicities ignored, embeds into g2's
// hyperedge set.
func NewMorphism(g1, g2 hgraph.MHGraph, tau map[hgraph.Vertex]hgraph.Vertex) (Morphism, bool) {
	ivm, ok := NewInjectiveVertexMap(g1, g2, tau)
	if !ok {
		return Morphism{}, false
	}
	image, err := GraphImage(ivm, g1)
	if err != nil {
		return Morphism{}, false
	}
	for _, it := range image.Items() {
		if g2.Multiplicity(it.HEdge) == 0 {
			return Morphism{}, false
		}
	}
	return Morphism{InjectiveVertexMap: ivm}, true
}
