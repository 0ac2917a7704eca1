package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mhgraphsat/decompose"
)

func TestKnownRulesFixedOrderAndCount(t *testing.T) {
	rules := decompose.KnownRules()
	// EDGE_SMOOTH, HEDGE_SMOOTH, R1, R2, R4, R5, R7 = 7, plus pop2(2..4) = 3,
	// plus pop3(2..8) = 7.
	require.Len(t, rules, 7+3+7)
	assert.Equal(t, "EDGE_SMOOTH", rules[0].Name)
	assert.Equal(t, "HEDGE_SMOOTH", rules[1].Name)
	assert.Equal(t, "R7", rules[6].Name)
}

func TestApplyRuleEdgeSmoothRewrites(t *testing.T) {
	// {(1,2),(1,3)} matches EDGE_SMOOTH with free vertex mapped to 1
	// (degree 2 in both pattern and graph); rewrites to {(2,3)}.
	g := mhg(t, []int{1, 2}, []int{1, 3})
	rules := decompose.KnownRules()
	out := decompose.ApplyRule(g, rules[0])
	require.Len(t, out, 1)
	assert.True(t, out[0].Equal(mhg(t, []int{2, 3})))
}

func TestApplyRuleNoMatchReturnsUnchanged(t *testing.T) {
	g := mhg(t, []int{1, 2, 3}, []int{1, 2, 3})
	rules := decompose.KnownRules()
	out := decompose.ApplyRule(g, rules[0]) // EDGE_SMOOTH, a size-2 pattern.
	require.Len(t, out, 1)
	assert.True(t, out[0].Equal(g))
}

func TestMakeTreeReducesEdgeSmoothableGraphToALeaf(t *testing.T) {
	g := mhg(t, []int{1, 2}, []int{1, 3})
	tree := decompose.MakeTree(g)
	require.NotEmpty(t, tree.Rule)
	require.Len(t, tree.Children, 1)
	assert.Empty(t, tree.Children[0].Rule) // {(2,3)} is a normal form.
}
