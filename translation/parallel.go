package translation

import (
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

// CNFsFromMHGraphParallel is CNFsFromMHGraph's concurrent counterpart:
// brute-force CNF enumeration over a fixed MHGraph, fanned out across a
// bounded worker pool. The outer item's combinations are distributed
// across that pool (runtime.GOMAXPROCS(0) goroutines by default; pass
// workers > 0 to override), each worker walking its share of the
// Cartesian product depth-first and publishing CNFs to the returned
// sequence. The result order is unspecified, since workers interleave.
// If the consumer stops iterating early, outstanding workers are canceled
// via context and their goroutines exit promptly.
func CNFsFromMHGraphParallel(g hgraph.MHGraph, workers int, opts ...Option) iter.Seq[symbolic.CNF] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if IsOversaturated(g) {
		return func(func(symbolic.CNF) bool) {}
	}

	choices := buildChoices(g, cfg)
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if len(choices) == 0 {
		return func(yield func(symbolic.CNF) bool) {
			cnf, _ := symbolic.CNFFromClauses(nil)
			yield(cnf)
		}
	}

	return func(yield func(symbolic.CNF) bool) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		grp, grpCtx := errgroup.WithContext(ctx)

		branches := make(chan []int)
		results := make(chan symbolic.CNF)

		grp.Go(func() error {
			defer close(branches)
			for _, combo := range choices[0].combos {
				select {
				case branches <- combo:
				case <-grpCtx.Done():
					return nil
				}
			}
			return nil
		})

		for i := 0; i < workers; i++ {
			grp.Go(func() error {
				for combo := range branches {
					acc := mergeChoice(nil, choices[0], combo)
					walkBranch(grpCtx, choices, 1, acc, results)
				}
				return nil
			})
		}

		go func() {
			grp.Wait()
			close(results)
		}()

		for cnf := range results {
			if !yield(cnf) {
				cancel()
				for range results {
					// drain until the producer goroutines observe cancellation.
				}
				return
			}
		}
	}
}

func walkBranch(ctx context.Context, choices []edgeChoices, i int, acc []symbolic.Clause, results chan<- symbolic.CNF) {
	if i == len(choices) {
		cnf, _ := symbolic.CNFFromClauses(acc)
		select {
		case results <- cnf:
		case <-ctx.Done():
		}
		return
	}
	for _, combo := range choices[i].combos {
		select {
		case <-ctx.Done():
			return
		default:
		}
		walkBranch(ctx, choices, i+1, mergeChoice(acc, choices[i], combo), results)
	}
}
