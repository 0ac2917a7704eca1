package propositional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mhgraphsat/hgraph"
	"github.com/katalvlaran/mhgraphsat/propositional"
	"github.com/katalvlaran/mhgraphsat/symbolic"
)

func clause(xs ...any) symbolic.Clause {
	c, _ := symbolic.NewClause(xs...)
	return c
}

func cnf(xss ...[]any) symbolic.CNF {
	f, _ := symbolic.NewCNF(xss...)
	return f
}

func TestOrClauseUnionsLiterals(t *testing.T) {
	c1 := clause(1, 2)
	c2 := clause(3)
	or := propositional.OrClause(c1, c2)
	assert.Equal(t, 3, or.Len())
}

func TestOrClauseTautologyCollapses(t *testing.T) {
	c1 := clause(1)
	c2 := clause(-1)
	or := propositional.OrClause(c1, c2)
	assert.True(t, or.Has(mustLit(t, symbolic.TRUE)))
}

func TestNotClauseDeMorgan(t *testing.T) {
	c := clause(1, 2)
	notC := propositional.NotClause(c)
	// not(1 v 2) = (not 1) and (not 2)
	assert.Equal(t, 2, notC.Len())
	for _, cl := range notC.Clauses() {
		assert.Equal(t, 1, cl.Len())
	}
}

func TestCnfAndIsClauseUnion(t *testing.T) {
	f1 := cnf([]any{1, 2})
	f2 := cnf([]any{3})
	and := propositional.CnfAnd(f1, f2)
	assert.Equal(t, 2, and.Len())
}

func TestCnfOrDistributes(t *testing.T) {
	f1 := cnf([]any{1}, []any{2})
	f2 := cnf([]any{3})
	or := propositional.CnfOr(f1, f2)
	// (1 v 3) and (2 v 3)
	assert.Equal(t, 2, or.Len())
}

func TestCnfNotOfUnitCnf(t *testing.T) {
	f := cnf([]any{1})
	notF := propositional.CnfNot(f)
	// not(1) = (-1)
	assert.Equal(t, 1, notF.Len())
	lits := notF.Clauses()[0].Literals()
	require.Len(t, lits, 1)
	n, ok := lits[0].IntValue()
	require.True(t, ok)
	assert.Equal(t, -1, n)
}

func mustLit(t *testing.T, b symbolic.Bool) symbolic.Literal {
	t.Helper()
	l, err := symbolic.Lit(b)
	require.NoError(t, err)
	return l
}

func TestGraphAndMHGraphsIsUnion(t *testing.T) {
	g1, _ := hgraph.NewMHGraph([]int{1, 2})
	g2, _ := hgraph.NewMHGraph([]int{1, 2})
	u := propositional.GraphAndMHGraphs(g1, g2)
	h12, _ := hgraph.NewHEdge(1, 2)
	assert.Equal(t, 2, u.Multiplicity(h12))
}

func TestGraphOrCoercesMHGraphs(t *testing.T) {
	g1, _ := hgraph.NewMHGraph([]int{1, 2})
	g2, _ := hgraph.NewMHGraph([]int{3, 4})
	result := propositional.GraphOr(propositional.FromGraph(g1), propositional.FromGraph(g2))
	assert.NotEmpty(t, result)
}
