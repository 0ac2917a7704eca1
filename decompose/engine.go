package decompose

import (
	"fmt"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/satoracle"
)

const defaultCacheCapacity = 1024

// Engine owns every piece of mutable state a decomposition run touches: the
// bounded decompose memo, the unbounded simplify-at-loops memo, the
// satoracle.Engine used for leaf-level CNF satisfiability, and an
// engine-scoped logger. Values are never shared implicitly across Engines —
// construct one Engine per independent decomposition task.
type Engine struct {
	oracle         *satoracle.Engine
	hyperbolicOnly bool

	decomposeCache *lru
	loopsCache     sync.Map // string -> Result

	logger *log.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithHyperbolicOnly restricts ComputeAllTwoPartitions to maximally
// hyperbolic bipartitions (||part1|-|part2|| <= 1) throughout the Engine's
// decomposition calls.
func WithHyperbolicOnly() Option {
	return func(e *Engine) { e.hyperbolicOnly = true }
}

// WithCacheSize overrides the default 1024-entry decompose LRU capacity.
func WithCacheSize(n int) Option {
	return func(e *Engine) { e.decomposeCache = newLRU(n) }
}

// WithOracle supplies the satoracle.Oracle backing leaf-level CNF checks,
// wrapped in a fresh satoracle.Engine.
func WithOracle(oracle satoracle.Oracle) Option {
	return func(e *Engine) { e.oracle = satoracle.NewEngine(oracle) }
}

// WithLogger attaches a *logrus.Logger for engine-scoped trace/debug
// logging. Defaults to a discard logger so library consumers pay nothing
// unless they opt in.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func discardLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

// NewEngine constructs a decomposition Engine. Without WithOracle, it
// defaults to satoracle.GiniOracle, the in-process DPLL oracle.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		oracle:         satoracle.NewEngine(satoracle.GiniOracle{}),
		decomposeCache: newLRU(defaultCacheCapacity),
		logger:         discardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) cacheKey(g hgraph.MHGraph) string {
	if e.hyperbolicOnly {
		return "h:" + g.String()
	}
	return "f:" + g.String()
}

// Decompose decides mhgraph_sat(G) by recursive structural case analysis:
// simplify at leaves and loops to a fixed point; if that already yields a
// Bool, return it; otherwise split the link of a maximum-degree vertex into
// every two-partition and recurse. Memoized by an LRU (capacity 1024 unless
// WithCacheSize overrides it) keyed on the canonical (simplified) MHGraph
// string plus the hyperbolicOnly flag.
func (e *Engine) Decompose(g hgraph.MHGraph) (bool, error) {
	simplified := e.simplifyAtLeavesAndLoopsCached(g)
	if simplified.IsBool() {
		return simplified.Bool(), nil
	}
	gPrime := simplified.Graph()

	key := e.cacheKey(gPrime)
	if cached, ok := e.decomposeCache.get(key); ok {
		e.logger.WithField("mhgraph", gPrime.String()).Debug("decompose cache hit")
		return cached.Bool(), nil
	}

	verdict, err := e.decompose(gPrime)
	if err != nil {
		return false, err
	}
	e.decomposeCache.put(key, BoolResult(verdict))
	return verdict, nil
}

func (e *Engine) decompose(g hgraph.MHGraph) (bool, error) {
	e.logger.WithField("mhgraph", g.String()).Trace("decompose")

	simplified := e.simplifyAtLeavesAndLoopsCached(g)
	if simplified.IsBool() {
		return simplified.Bool(), nil
	}
	gPrime := simplified.Graph()

	if err := checkDecomposePrecondition(gPrime); err != nil {
		return false, err
	}

	v := hgraph.PickMaxDegreeVertex(gPrime)
	return e.decomposeAtVertex(gPrime, v)
}

// checkDecomposePrecondition asserts every hyperedge has size >= 2 and
// every vertex has degree >= 2, the post-condition
// simplify_at_leaves_and_loops's fixed point guarantees whenever it does
// not already resolve to a Bool.
func checkDecomposePrecondition(g hgraph.MHGraph) error {
	for _, it := range g.Items() {
		if it.HEdge.Size() < 2 {
			return fmt.Errorf("%w: hyperedge %s has size < 2", ErrPostconditionViolated, it.HEdge)
		}
	}
	for _, v := range g.Vertices() {
		if hgraph.Degree(v, g) < 2 {
			return fmt.Errorf("%w: vertex %d has degree < 2", ErrPostconditionViolated, v)
		}
	}
	return nil
}

// simplifyAtLeavesAndLoopsCached memoizes SimplifyAtLoops unboundedly (via
// the Engine's loopsCache), since it is the inner step re-evaluated on
// every SimplifyAtLeavesAndLoops fixed-point iteration across the whole
// decomposition search tree.
func (e *Engine) simplifyAtLeavesAndLoopsCached(g hgraph.MHGraph) Result {
	leafResult := SimplifyAtLeaves(g)
	if leafResult.IsBool() {
		return leafResult
	}
	afterLeaves := leafResult.Graph()
	if !afterLeaves.Equal(g) {
		return e.simplifyAtLeavesAndLoopsCached(afterLeaves)
	}

	loopResult := e.simplifyAtLoopsCached(afterLeaves)
	if loopResult.IsBool() {
		return loopResult
	}
	afterLoops := loopResult.Graph()
	if afterLoops.Equal(afterLeaves) {
		return GraphResult(afterLoops)
	}
	return e.simplifyAtLeavesAndLoopsCached(afterLoops)
}

func (e *Engine) simplifyAtLoopsCached(g hgraph.MHGraph) Result {
	key := g.String()
	if v, ok := e.loopsCache.Load(key); ok {
		return v.(Result)
	}
	result := SimplifyAtLoops(g)
	e.loopsCache.Store(key, result)
	return result
}
