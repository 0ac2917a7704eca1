package translation

import (
	"iter"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// LitsFromVertex returns the positive and negative literal corresponding
// to v: (Int(v), Int(-v)).
func LitsFromVertex(v hgraph.Vertex) (pos, neg symbolic.Literal) {
	pos, _ = symbolic.Int(int(v))
	neg, _ = symbolic.Int(-int(v))
	return pos, neg
}

// ClausesFromHEdge returns the exactly 2^|h| clauses obtained by choosing a
// sign, independently, for every vertex of h.
func ClausesFromHEdge(h hgraph.HEdge) []symbolic.Clause {
	vs := h.Vertices()
	k := len(vs)
	n := 1 << k
	clauses := make([]symbolic.Clause, 0, n)
	for mask := 0; mask < n; mask++ {
		lits := make([]symbolic.Literal, k)
		for i, vtx := range vs {
			signed := int(vtx)
			if mask&(1<<i) != 0 {
				signed = -signed
			}
			lit, _ := symbolic.Int(signed)
			lits[i] = lit
		}
		c, _ := symbolic.ClauseFromLiterals(lits)
		clauses = append(clauses, c)
	}
	return clauses
}

// CNFsFromHEdge returns the C(2^|h|, m) CNFs formed by choosing m distinct
// clauses from ClausesFromHEdge(h). If m > 2^|h| the returned sequence is
// empty. Fails with ErrBadMultiplicity for m < 1.
func CNFsFromHEdge(h hgraph.HEdge, m int) (iter.Seq[symbolic.CNF], error) {
	if m < 1 {
		return nil, ErrBadMultiplicity
	}
	clauses := ClausesFromHEdge(h)
	n := len(clauses)
	if m > n {
		return func(func(symbolic.CNF) bool) {}, nil
	}
	combos := combin.Combinations(n, m)
	return func(yield func(symbolic.CNF) bool) {
		for _, combo := range combos {
			selected := make([]symbolic.Clause, m)
			for i, idx := range combo {
				selected[i] = clauses[idx]
			}
			cnf, _ := symbolic.CNFFromClauses(selected)
			if !yield(cnf) {
				return
			}
		}
	}, nil
}

// NumberOfCNFs returns product_{(h,m) in g} C(2^|h|, m); 0 if g is
// over-saturated at any hedge.
func NumberOfCNFs(g hgraph.MHGraph) int {
	product := 1
	for _, it := range g.Items() {
		n := 1 << it.HEdge.Size()
		if it.Mult > n {
			return 0
		}
		product *= combin.Binomial(n, it.Mult)
	}
	return product
}

// IsOversaturated reports whether g has any hedge h of size k whose
// multiplicity exceeds 2^k.
func IsOversaturated(g hgraph.MHGraph) bool {
	for _, it := range g.Items() {
		if it.Mult > (1 << it.HEdge.Size()) {
			return true
		}
	}
	return false
}

// config controls CNFsFromMHGraph's enumeration order.
type config struct {
	randomize bool
	rng       *rand.Rand
}

// Option configures CNFsFromMHGraph.
type Option func(*config)

// WithRandomization enables or disables shuffled enumeration order.
// Default: enabled, so two calls over the same MHGraph do not hand callers
// CNFs in a fixed, predictable order.
func WithRandomization(enabled bool) Option {
	return func(c *config) { c.randomize = enabled }
}

// WithSeed fixes the shuffle's PRNG seed, for deterministic tests. Implies
// WithRandomization(true).
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.randomize = true
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

func defaultConfig() *config {
	return &config{randomize: true, rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// edgeChoices pairs one hedge's candidate clauses with every size-`mult`
// combination of their indices — one term of the outer Cartesian product
// CNFsFromMHGraph/CNFsFromMHGraphParallel walk.
type edgeChoices struct {
	clauses []symbolic.Clause
	combos  [][]int
}

// buildChoices prepares the per-hedge choice sets shared by
// CNFsFromMHGraph and CNFsFromMHGraphParallel, applying cfg's
// randomization to each hedge's combination order independently.
func buildChoices(g hgraph.MHGraph, cfg *config) []edgeChoices {
	items := g.Items()
	choices := make([]edgeChoices, len(items))
	for i, it := range items {
		clauses := ClausesFromHEdge(it.HEdge)
		combos := combin.Combinations(len(clauses), it.Mult)
		if cfg.randomize {
			cfg.rng.Shuffle(len(combos), func(a, b int) { combos[a], combos[b] = combos[b], combos[a] })
		}
		choices[i] = edgeChoices{clauses: clauses, combos: combos}
	}
	return choices
}

func mergeChoice(acc []symbolic.Clause, choice edgeChoices, combo []int) []symbolic.Clause {
	merged := make([]symbolic.Clause, 0, len(acc)+len(combo))
	merged = append(merged, acc...)
	for _, idx := range combo {
		merged = append(merged, choice.clauses[idx])
	}
	return merged
}

// CNFsFromMHGraph returns the lazy Cartesian product, over g's (hedge,
// multiplicity) items, of CNFsFromHEdge(h,m), with the selected clause
// sets unioned across edges into a single CNF per combination. Empty if g
// is over-saturated. The enumeration order is randomized unless
// WithRandomization(false) is given.
func CNFsFromMHGraph(g hgraph.MHGraph, opts ...Option) iter.Seq[symbolic.CNF] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if IsOversaturated(g) {
		return func(func(symbolic.CNF) bool) {}
	}

	choices := buildChoices(g, cfg)

	return func(yield func(symbolic.CNF) bool) {
		var recurse func(i int, acc []symbolic.Clause) bool
		recurse = func(i int, acc []symbolic.Clause) bool {
			if i == len(choices) {
				cnf, _ := symbolic.CNFFromClauses(acc)
				return yield(cnf)
			}
			for _, combo := range choices[i].combos {
				if !recurse(i+1, mergeChoice(acc, choices[i], combo)) {
					return false
				}
			}
			return true
		}
		recurse(0, nil)
	}
}

// MHGraphFromCNF tautologically reduces c; if the result is the trivial
// {{TRUE}} or {{FALSE}}, fails with ErrTrivialCNF. Otherwise returns the
// multiset of {|l| : l in clause} over clauses, with multiplicity given by
// repeated clauses producing the same hedge.
func MHGraphFromCNF(c symbolic.CNF) (hgraph.MHGraph, error) {
	reduced := symbolic.ReduceCNF(c)
	clauses := reduced.Clauses()
	if len(clauses) == 1 {
		lits := clauses[0].Literals()
		if len(lits) == 1 && lits[0].IsBool() {
			return hgraph.MHGraph{}, ErrTrivialCNF
		}
	}

	multiset := make(map[hgraph.HEdge]int)
	for _, cl := range clauses {
		vertexIDs := make([]int, 0, cl.Len())
		for _, l := range cl.Literals() {
			abs := symbolic.AbsoluteValue(l)
			n, _ := abs.IntValue()
			vertexIDs = append(vertexIDs, n)
		}
		h, err := hgraph.NewHEdge(vertexIDs...)
		if err != nil {
			return hgraph.MHGraph{}, err
		}
		multiset[h]++
	}
	return hgraph.MHGraphFromMultiset(multiset)
}
