package decompose

import (
	"fmt"

	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/morphism"
)

// Rule is a hand-authored reduction rule: wherever Pattern appears as a
// subgraph of some MHGraph via a witness morphism ι such that
// degree(ι(Free), G) == degree(Free, Pattern), ApplyRule replaces the
// matched copy of Pattern by each of Children in turn.
type Rule struct {
	Name     string
	Pattern  hgraph.MHGraph
	Free     hgraph.Vertex
	Children []hgraph.MHGraph
}

func mustMHGraph(hedges ...[]int) hgraph.MHGraph {
	g, err := hgraph.NewMHGraph(hedges...)
	if err != nil {
		panic(fmt.Sprintf("decompose: invalid rule literal: %v", err))
	}
	return g
}

func mustVertex(n int) hgraph.Vertex {
	v, err := hgraph.NewVertex(n)
	if err != nil {
		panic(fmt.Sprintf("decompose: invalid rule vertex: %v", err))
	}
	return v
}

func repeat(hedge []int, n int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = hedge
	}
	return out
}

func pop2(n int) Rule {
	if n < 2 {
		panic("decompose: pop2(n) requires n > 1")
	}
	return Rule{
		Name:     fmt.Sprintf("POP2(%d)", n),
		Pattern:  mustMHGraph(repeat([]int{1, 2}, n)...),
		Free:     mustVertex(1),
		Children: []hgraph.MHGraph{mustMHGraph(repeat([]int{2}, n/2)...)},
	}
}

func pop3(n int) Rule {
	if n < 2 {
		panic("decompose: pop3(n) requires n > 1")
	}
	return Rule{
		Name:     fmt.Sprintf("POP3(%d)", n),
		Pattern:  mustMHGraph(repeat([]int{1, 2, 3}, n)...),
		Free:     mustVertex(1),
		Children: []hgraph.MHGraph{mustMHGraph(repeat([]int{2, 3}, n/2)...)},
	}
}

// KnownRules returns the fixed-order library of reduction rules, matching
// the original's EDGE_SMOOTH / HEDGE_SMOOTH / R1 / R2 / R4 / R5 / R7,
// followed by the parameterized Pop2/Pop3 families
// (pop2(2..4), pop3(2..8)).
func KnownRules() []Rule {
	rules := []Rule{
		{
			Name:     "EDGE_SMOOTH",
			Pattern:  mustMHGraph([]int{1, 2}, []int{1, 3}),
			Free:     mustVertex(1),
			Children: []hgraph.MHGraph{mustMHGraph([]int{2, 3})},
		},
		{
			Name:     "HEDGE_SMOOTH",
			Pattern:  mustMHGraph([]int{1, 2, 3}, []int{1, 2, 4}),
			Free:     mustVertex(1),
			Children: []hgraph.MHGraph{mustMHGraph([]int{2, 3, 4})},
		},
		{
			Name:     "R1",
			Pattern:  mustMHGraph([]int{1, 2, 3}, []int{1, 2}),
			Free:     mustVertex(1),
			Children: []hgraph.MHGraph{mustMHGraph([]int{2, 3})},
		},
		{
			Name:    "R2",
			Pattern: mustMHGraph([]int{1, 2, 3}, []int{1, 2}, []int{1, 3}),
			Free:    mustVertex(1),
			Children: []hgraph.MHGraph{
				mustMHGraph([]int{2}),
				mustMHGraph([]int{3}),
			},
		},
		{
			Name:    "R4",
			Pattern: mustMHGraph([]int{1, 2, 3}, []int{1, 2, 4}, []int{1, 3, 4}),
			Free:    mustVertex(1),
			Children: []hgraph.MHGraph{
				mustMHGraph([]int{2, 3}),
				mustMHGraph([]int{2, 4}),
				mustMHGraph([]int{3, 4}),
			},
		},
		{
			Name:     "R5",
			Pattern:  mustMHGraph([]int{1, 2, 3}, []int{1, 4}),
			Free:     mustVertex(1),
			Children: []hgraph.MHGraph{mustMHGraph([]int{2, 3, 4})},
		},
		{
			Name:     "R7",
			Pattern:  mustMHGraph([]int{1, 2, 3}, []int{1, 2, 3}, []int{1, 2}, []int{1, 3}),
			Free:     mustVertex(1),
			Children: []hgraph.MHGraph{mustMHGraph(repeat([]int{2, 3}, 3)...)},
		},
	}
	for n := 2; n <= 4; n++ {
		rules = append(rules, pop2(n))
	}
	for n := 2; n <= 8; n++ {
		rules = append(rules, pop3(n))
	}
	return rules
}

// ApplyRule applies rule to g if it matches, returning the rewritten
// children; returns []hgraph.MHGraph{g} unchanged if no witness morphism of
// rule.Pattern into g preserves the free vertex's degree.
func ApplyRule(g hgraph.MHGraph, rule Rule) []hgraph.MHGraph {
	isSubgraph, morphs := morphism.SubgraphSearch(rule.Pattern, g, true)
	if !isSubgraph {
		return []hgraph.MHGraph{g}
	}

	for m := range morphs {
		mappedFree, ok := m.Apply(rule.Free)
		if !ok {
			continue
		}
		if hgraph.Degree(mappedFree, g) != hgraph.Degree(rule.Free, rule.Pattern) {
			continue
		}

		mappedParent, err := morphism.GraphImage(m.InjectiveVertexMap, rule.Pattern)
		if err != nil {
			continue
		}

		out := make([]hgraph.MHGraph, 0, len(rule.Children))
		for _, child := range rule.Children {
			mappedChild, err := morphism.GraphImage(m.InjectiveVertexMap, child)
			if err != nil {
				continue
			}
			out = append(out, replaceSubgraph(g, mappedParent, mappedChild))
		}
		if len(out) > 0 {
			return out
		}
	}
	return []hgraph.MHGraph{g}
}

// replaceSubgraph computes g - parent + child over the multiset
// representation: subtract parent's multiplicities (floored at zero), add
// child's.
func replaceSubgraph(g, parent, child hgraph.MHGraph) hgraph.MHGraph {
	multiset := make(map[hgraph.HEdge]int)
	for _, it := range g.Items() {
		multiset[it.HEdge] = it.Mult
	}
	for _, it := range parent.Items() {
		multiset[it.HEdge] -= it.Mult
		if multiset[it.HEdge] <= 0 {
			delete(multiset, it.HEdge)
		}
	}
	for _, it := range child.Items() {
		multiset[it.HEdge] += it.Mult
	}
	if len(multiset) == 0 {
		return hgraph.MHGraph{}
	}
	out, err := hgraph.MHGraphFromMultiset(multiset)
	if err != nil {
		return hgraph.MHGraph{}
	}
	return out
}

// ReductionNode is one node of the reduction tree MakeTree builds: a
// matched MHGraph plus the children produced by the first KnownRules entry
// that fired, recursively reduced.
type ReductionNode struct {
	MHGraph  hgraph.MHGraph
	Rule     string
	Children []*ReductionNode
}

// MakeTree builds a reduction tree rooted at g: at each node, the first
// rule (in KnownRules order) that actually rewrites g fires, and each
// rewritten child becomes a subtree; a node none of the rules can rewrite
// is a leaf (a normal form).
func MakeTree(g hgraph.MHGraph) *ReductionNode {
	node := &ReductionNode{MHGraph: g}
	for _, rule := range KnownRules() {
		rewritten := ApplyRule(g, rule)
		if len(rewritten) == 1 && rewritten[0].Equal(g) {
			continue
		}
		node.Rule = rule.Name
		for _, child := range rewritten {
			node.Children = append(node.Children, MakeTree(child))
		}
		return node
	}
	return node
}
