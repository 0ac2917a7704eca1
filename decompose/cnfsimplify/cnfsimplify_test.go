package cnfsimplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mhgraphsat/decompose/cnfsimplify"
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

func cnf(xss ...[]any) symbolic.CNF {
	f, _ := symbolic.NewCNF(xss...)
	return f
}

func TestReduceDistanceOneClauses(t *testing.T) {
	// (1 v 2 v -3) and (1 v 2 v 3) differ only on the sign of 3 -> (1 v 2).
	f := cnf([]any{1, 2, -3}, []any{1, 2, 3}, []any{4, 5})
	reduced := cnfsimplify.ReduceDistanceOneClauses(f)
	require.Equal(t, 2, reduced.Len())
	found := false
	for _, c := range reduced.Clauses() {
		if c.Len() == 2 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSubclauseReductionDropsSuperset(t *testing.T) {
	f := cnf([]any{1, 2}, []any{1, 2, 3})
	reduced := cnfsimplify.SubclauseReduction(f)
	assert.Equal(t, 1, reduced.Len())
	assert.Equal(t, 2, reduced.Clauses()[0].Len())
}

func TestReduceCombinesBoth(t *testing.T) {
	f := cnf([]any{1, 2, -3}, []any{1, 2, 3}, []any{1, 2})
	reduced := cnfsimplify.Reduce(f)
	assert.Equal(t, 1, reduced.Len())
}
