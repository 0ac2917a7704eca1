package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mhgraphsat/symbolic"
)

func mustClause(t *testing.T, xs ...any) symbolic.Clause {
	t.Helper()
	c, err := symbolic.NewClause(xs...)
	require.NoError(t, err)
	return c
}

func mustCNF(t *testing.T, xss ...[]any) symbolic.CNF {
	t.Helper()
	f, err := symbolic.NewCNF(xss...)
	require.NoError(t, err)
	return f
}

func TestReduceClauseRulesInOrder(t *testing.T) {
	// Rule 1: TRUE present anywhere collapses the whole clause to {TRUE}.
	c := mustClause(t, 1, symbolic.TRUE, -2)
	reduced := symbolic.ReduceClause(c)
	assert.Equal(t, 1, reduced.Len())
	b, ok := reduced.Literals()[0].BoolValue()
	require.True(t, ok)
	assert.Equal(t, symbolic.TRUE, b)

	// Rule 2: clause is exactly {FALSE}.
	c2 := mustClause(t, symbolic.FALSE)
	reduced2 := symbolic.ReduceClause(c2)
	b2, ok := reduced2.Literals()[0].BoolValue()
	require.True(t, ok)
	assert.Equal(t, symbolic.FALSE, b2)

	// Rule 3: FALSE dropped from a larger clause.
	c3 := mustClause(t, 1, symbolic.FALSE, 2)
	reduced3 := symbolic.ReduceClause(c3)
	assert.Equal(t, 2, reduced3.Len())

	// Rule 4: complementary pair collapses to {TRUE}.
	c4 := mustClause(t, 1, -1, 2)
	reduced4 := symbolic.ReduceClause(c4)
	assert.Equal(t, 1, reduced4.Len())
	b4, ok := reduced4.Literals()[0].BoolValue()
	require.True(t, ok)
	assert.Equal(t, symbolic.TRUE, b4)

	// Otherwise: unchanged.
	c5 := mustClause(t, 1, 2, 3)
	assert.True(t, c5.Equal(symbolic.ReduceClause(c5)))
}

func TestReduceClauseIdempotent(t *testing.T) {
	c := mustClause(t, 1, -1, 2, symbolic.FALSE)
	once := symbolic.ReduceClause(c)
	twice := symbolic.ReduceClause(once)
	assert.True(t, once.Equal(twice))
}

func TestReduceCNFFixedPoint(t *testing.T) {
	f := mustCNF(t, []any{1, symbolic.FALSE}, []any{symbolic.TRUE})
	reduced := symbolic.ReduceCNF(f)
	assert.Equal(t, 1, reduced.Len())
	assert.True(t, reduced.Clauses()[0].Has(mustLit(t, 1)))

	allTrue := mustCNF(t, []any{symbolic.TRUE})
	assert.True(t, symbolic.ReduceCNF(allTrue).Equal(allTrue))
}

func mustLit(t *testing.T, x any) symbolic.Literal {
	t.Helper()
	l, err := symbolic.Lit(x)
	require.NoError(t, err)
	return l
}

func TestReduceCNFFalseDominates(t *testing.T) {
	f := mustCNF(t, []any{1, 2}, []any{symbolic.FALSE})
	reduced := symbolic.ReduceCNF(f)
	assert.Equal(t, 1, reduced.Len())
	b, ok := reduced.Clauses()[0].Literals()[0].BoolValue()
	require.True(t, ok)
	assert.Equal(t, symbolic.FALSE, b)
}

func TestAssignLaws(t *testing.T) {
	f := mustCNF(t, []any{1, 2}, []any{-1, 3})

	// assign(C, ∅) = tautologically_reduce(C)
	assigned := symbolic.Assign(f, symbolic.Assignment{})
	assert.True(t, assigned.Equal(symbolic.ReduceCNF(f)))

	v, _ := symbolic.NewVariable(1)
	assignedTrue := symbolic.Assign(f, symbolic.Assignment{v: symbolic.TRUE})
	// With var1=TRUE, clause1 becomes {TRUE} (dropped), clause2 becomes {3}.
	assert.Equal(t, 1, assignedTrue.Len())
}

func TestAssignInLit(t *testing.T) {
	v, _ := symbolic.NewVariable(2)
	pos := mustLit(t, 2)
	neg := mustLit(t, -2)
	other := mustLit(t, 5)
	boolLit := symbolic.FromBool(symbolic.TRUE)

	assert.Equal(t, symbolic.TRUE, mustBool(t, symbolic.AssignInLit(pos, v, symbolic.TRUE)))
	assert.Equal(t, symbolic.FALSE, mustBool(t, symbolic.AssignInLit(neg, v, symbolic.TRUE)))
	assert.True(t, other.Equal(symbolic.AssignInLit(other, v, symbolic.TRUE)))
	assert.True(t, boolLit.Equal(symbolic.AssignInLit(boolLit, v, symbolic.TRUE)))
}
