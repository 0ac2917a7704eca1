package hgraph

import (
	"sort"
	"strconv"
	"strings"
)

// Vertex is a positive integer identifying a vertex. Identity only.
type Vertex int

// NewVertex validates and constructs a Vertex. n must be >= 1.
func NewVertex(n int) (Vertex, error) {
	if n < 1 {
		return 0, ErrInvalidVertex
	}
	return Vertex(n), nil
}

func sortedVertices(vs []Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	copy(out, vs)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func uniqueVertices(vs []int) ([]Vertex, error) {
	seen := make(map[int]struct{}, len(vs))
	out := make([]Vertex, 0, len(vs))
	for _, n := range vs {
		v, err := NewVertex(n)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, v)
	}
	return sortedVertices(out), nil
}

// HEdge (hyperedge) is a non-empty set of distinct Vertices of any
// cardinality >= 1. Internally backed by its canonical sorted, comma-
// joined string plus a cached vertex count, rather than a slice, so that
// HEdge stays comparable and usable as a map key (needed by MHGraph's
// multiset representation).
type HEdge struct {
	key  string // sorted, unique vertex ids, comma-joined
	size int
}

func joinVertices(vs []Vertex) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

// NewHEdge constructs an HEdge from a collection of (possibly duplicated)
// vertex ids. Idempotent; rejects empty input and vertex ids < 1.
func NewHEdge(vs ...int) (HEdge, error) {
	if len(vs) == 0 {
		return HEdge{}, ErrEmpty
	}
	unique, err := uniqueVertices(vs)
	if err != nil {
		return HEdge{}, err
	}
	return HEdge{key: joinVertices(unique), size: len(unique)}, nil
}

// HEdgeFromVertices constructs an HEdge from a slice of already-validated
// Vertices, deduplicating.
func HEdgeFromVertices(vs []Vertex) (HEdge, error) {
	if len(vs) == 0 {
		return HEdge{}, ErrEmpty
	}
	seen := make(map[Vertex]struct{}, len(vs))
	out := make([]Vertex, 0, len(vs))
	for _, v := range vs {
		if v < 1 {
			return HEdge{}, ErrInvalidVertex
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sorted := sortedVertices(out)
	return HEdge{key: joinVertices(sorted), size: len(sorted)}, nil
}

// Size returns the number of vertices in the hyperedge.
func (h HEdge) Size() int { return h.size }

// Vertices returns the hyperedge's vertices in sorted order, decoded from
// the canonical key.
func (h HEdge) Vertices() []Vertex {
	if h.key == "" {
		return nil
	}
	tokens := strings.Split(h.key, ",")
	out := make([]Vertex, len(tokens))
	for i, tok := range tokens {
		n, _ := strconv.Atoi(tok)
		out[i] = Vertex(n)
	}
	return out
}

// Has reports whether v is a member of h.
func (h HEdge) Has(v Vertex) bool {
	for _, x := range h.Vertices() {
		if x == v {
			return true
		}
	}
	return false
}

// Equal reports whether h and other contain exactly the same vertices.
func (h HEdge) Equal(other HEdge) bool {
	return h.key == other.key
}

// String renders the canonical key: sorted vertex ids joined by ",", e.g.
// "1,2,3".
func (h HEdge) String() string { return h.key }

// Edge is an unordered set of 1 or 2 distinct Vertices — the simple-graph
// restriction of HEdge.
type Edge struct {
	h HEdge
}

// NewEdge constructs an Edge from 1 or 2 distinct vertex ids.
func NewEdge(vs ...int) (Edge, error) {
	h, err := NewHEdge(vs...)
	if err != nil {
		return Edge{}, err
	}
	if h.Size() > 2 {
		return Edge{}, ErrTooManyVertices
	}
	return Edge{h: h}, nil
}

// HEdge returns the underlying hyperedge view of the edge.
func (e Edge) HEdge() HEdge { return e.h }

func (e Edge) String() string { return e.h.String() }

// Graph is a non-empty set of Edges (a simple, loopless-or-looped,
// multi-edge-free graph).
type Graph struct {
	edges map[string]Edge
}

// NewGraph constructs a Graph from a non-empty collection of edges, each
// given as 1 or 2 vertex ids.
func NewGraph(edges ...[]int) (Graph, error) {
	if len(edges) == 0 {
		return Graph{}, ErrEmpty
	}
	set := make(map[string]Edge, len(edges))
	for _, vs := range edges {
		e, err := NewEdge(vs...)
		if err != nil {
			return Graph{}, err
		}
		set[e.String()] = e
	}
	return Graph{edges: set}, nil
}

// Edges returns the graph's edges in canonical sorted order.
func (g Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// HGraph is a non-empty set of HEdges (an MHGraph without multiplicities).
type HGraph struct {
	hedges map[string]HEdge
}

// NewHGraph constructs an HGraph from a non-empty collection of hedges,
// each given as a collection of vertex ids.
func NewHGraph(hedges ...[]int) (HGraph, error) {
	if len(hedges) == 0 {
		return HGraph{}, ErrEmpty
	}
	set := make(map[string]HEdge, len(hedges))
	for _, vs := range hedges {
		h, err := NewHEdge(vs...)
		if err != nil {
			return HGraph{}, err
		}
		set[h.String()] = h
	}
	return HGraph{hedges: set}, nil
}

// HGraphFromHEdges constructs an HGraph directly from a slice of HEdges.
func HGraphFromHEdges(hedges []HEdge) (HGraph, error) {
	if len(hedges) == 0 {
		return HGraph{}, ErrEmpty
	}
	set := make(map[string]HEdge, len(hedges))
	for _, h := range hedges {
		set[h.String()] = h
	}
	return HGraph{hedges: set}, nil
}

// HEdges returns the HGraph's hedges in canonical sorted order.
func (g HGraph) HEdges() []HEdge {
	out := make([]HEdge, 0, len(g.hedges))
	for _, h := range g.hedges {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Vertices returns the union of vertices across every hedge, sorted.
func (g HGraph) Vertices() []Vertex {
	seen := make(map[Vertex]struct{})
	for _, h := range g.hedges {
		for _, v := range h.Vertices() {
			seen[v] = struct{}{}
		}
	}
	out := make([]Vertex, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return sortedVertices(out)
}

// MHGraph is a non-empty multiset of HEdges: every member hedge carries a
// positive integer multiplicity. Two MHGraphs are equal iff their
// multiset contents match, independent of construction order.
type MHGraph struct {
	mult map[string]int
	hed  map[string]HEdge
}

// NewMHGraph constructs an MHGraph from a non-empty collection of hedges,
// each given as a collection of vertex ids; repeated hedges accumulate
// multiplicity (mirroring a Counter over hyperedges).
func NewMHGraph(hedges ...[]int) (MHGraph, error) {
	if len(hedges) == 0 {
		return MHGraph{}, ErrEmpty
	}
	mult := make(map[string]int, len(hedges))
	hed := make(map[string]HEdge, len(hedges))
	for _, vs := range hedges {
		h, err := NewHEdge(vs...)
		if err != nil {
			return MHGraph{}, err
		}
		key := h.String()
		mult[key]++
		hed[key] = h
	}
	return MHGraph{mult: mult, hed: hed}, nil
}

// MHGraphFromMultiset constructs an MHGraph directly from a hyperedge ->
// multiplicity multiset, preserving the given multiplicities exactly
// (rather than treating repetition in a list as the source of
// multiplicity). Every multiplicity must be >= 1.
func MHGraphFromMultiset(multiset map[HEdge]int) (MHGraph, error) {
	if len(multiset) == 0 {
		return MHGraph{}, ErrEmpty
	}
	mult := make(map[string]int, len(multiset))
	hed := make(map[string]HEdge, len(multiset))
	for h, m := range multiset {
		if m < 1 {
			return MHGraph{}, ErrBadMultiplicity
		}
		key := h.String()
		mult[key] += m
		hed[key] = h
	}
	return MHGraph{mult: mult, hed: hed}, nil
}

// Items returns the MHGraph's (hedge, multiplicity) pairs in canonical
// sorted order (by hedge key).
func (g MHGraph) Items() []MultisetEntry {
	keys := make([]string, 0, len(g.mult))
	for k := range g.mult {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]MultisetEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, MultisetEntry{HEdge: g.hed[k], Mult: g.mult[k]})
	}
	return out
}

// MultisetEntry pairs a hyperedge with its multiplicity in an MHGraph.
type MultisetEntry struct {
	HEdge HEdge
	Mult  int
}

// Multiplicity returns the multiplicity of h in g (0 if absent).
func (g MHGraph) Multiplicity(h HEdge) int {
	return g.mult[h.String()]
}

// Len returns the number of distinct hedges (ignoring multiplicity).
func (g MHGraph) Len() int { return len(g.mult) }

// Vertices returns the union of vertices across every hedge, sorted.
func (g MHGraph) Vertices() []Vertex {
	seen := make(map[Vertex]struct{})
	for _, h := range g.hed {
		for _, v := range h.Vertices() {
			seen[v] = struct{}{}
		}
	}
	out := make([]Vertex, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return sortedVertices(out)
}

// Equal reports whether g and other have the same (hedge -> multiplicity)
// multiset contents.
func (g MHGraph) Equal(other MHGraph) bool {
	if len(g.mult) != len(other.mult) {
		return false
	}
	for k, m := range g.mult {
		if other.mult[k] != m {
			return false
		}
	}
	return true
}

// String renders the canonical key: "(hedge)^multiplicity" tokens sorted
// by hedge key and joined by ",", e.g. "(1,2)^2,(1,3)^1". This is an internal hash/equality key only; the core
// neither parses nor emits any external superscript-multiplicity textual
// notation a caller might use to display an MHGraph.
func (g MHGraph) String() string {
	items := g.Items()
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = "(" + it.HEdge.String() + ")^" + strconv.Itoa(it.Mult)
	}
	return strings.Join(parts, ",")
}
