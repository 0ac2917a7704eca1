package satoracle

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/symbolic"
	"github.com/katalvlaran/mhgraphsat/translation"
)

// Engine holds an Oracle plus the unbounded memo of mhgraph_sat verdicts
// keyed by the canonical MHGraph string. Caches are process-local to one
// Engine value; callers parallelizing across MHGraphs should either give
// each worker its own Engine or front a shared one with external
// synchronization (the Engine's own cache is already mutex-protected).
type Engine struct {
	oracle Oracle

	mu       sync.Mutex
	satCache map[string]bool
}

// NewEngine builds an Engine around the given Oracle.
func NewEngine(oracle Oracle) *Engine {
	return &Engine{oracle: oracle, satCache: make(map[string]bool)}
}

// CnfSat exposes the Engine's underlying Oracle for a single CNF check,
// without the MHGraphSAT-level memoization — used by callers (such as the
// decomposition engine's entangled-partition check) that need to test many
// distinct CNFs built from pieces of a larger MHGraph rather than the
// MHGraph's own full CNF set.
func (e *Engine) CnfSat(f symbolic.CNF) (bool, error) {
	return CnfSat(e.oracle, f)
}

// MHGraphSAT implements mhgraph_sat(G): G has at least one supported CNF
// (number_of_cnfs(G) > 0) and every CNF it supports is satisfiable. The
// verdict is memoized unboundedly, keyed on G's canonical string.
func (e *Engine) MHGraphSAT(g hgraph.MHGraph) (bool, error) {
	key := g.String()
	e.mu.Lock()
	if v, ok := e.satCache[key]; ok {
		e.mu.Unlock()
		return v, nil
	}
	e.mu.Unlock()

	verdict, err := e.computeMHGraphSAT(g)
	if err != nil {
		return false, err
	}

	e.mu.Lock()
	e.satCache[key] = verdict
	e.mu.Unlock()
	return verdict, nil
}

func (e *Engine) computeMHGraphSAT(g hgraph.MHGraph) (bool, error) {
	if translation.IsOversaturated(g) {
		return false, nil
	}
	for c := range translation.CNFsFromMHGraph(g, translation.WithRandomization(false)) {
		ok, err := CnfSat(e.oracle, c)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// BruteForceParallel checks satisfiability of every CNF supported by g by
// fanning a bounded worker pool out over the lazily-produced sequence,
// short-circuiting (canceling outstanding workers) as soon as any CNF is
// found unsatisfiable. This is one of the two admissible parallel
// map-over-sequence points: independent CNFs tested concurrently,
// publishing only the final Boolean.
func (e *Engine) BruteForceParallel(ctx context.Context, g hgraph.MHGraph, workers int) (bool, error) {
	if translation.IsOversaturated(g) {
		return false, nil
	}
	if workers < 1 {
		workers = 1
	}

	cancelCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	grp, grpCtx := errgroup.WithContext(cancelCtx)
	work := make(chan symbolic.CNF)

	grp.Go(func() error {
		defer close(work)
		for c := range translation.CNFsFromMHGraph(g, translation.WithRandomization(false)) {
			select {
			case work <- c:
			case <-grpCtx.Done():
				return nil
			}
		}
		return nil
	})

	var unsatFound sync.Once
	var unsat bool
	for i := 0; i < workers; i++ {
		grp.Go(func() error {
			for c := range work {
				ok, err := BruteForceOracle{}.Sat(c)
				if err != nil {
					return err
				}
				if !ok {
					unsatFound.Do(func() {
						unsat = true
						cancel()
					})
					return nil
				}
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return false, err
	}
	return !unsat, nil
}
