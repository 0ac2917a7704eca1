package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mhgraphsat/decompose"
	"github.com/katalvlaran/mhgraphsat/hgraph"
)

func mhgMult(t *testing.T, vs []int, mult int) hgraph.MHGraph {
	t.Helper()
	h, err := hgraph.HEdgeFromVertices(intsToVertices(t, vs))
	require.NoError(t, err)
	g, err := hgraph.MHGraphFromMultiset(map[hgraph.HEdge]int{h: mult})
	require.NoError(t, err)
	return g
}

func TestSatcheckPartitionBothOversaturatedIsUnsat(t *testing.T) {
	engine := decompose.NewEngine()
	sphr := mhg(t, []int{4, 5})
	h1 := mhgMult(t, []int{1, 2}, 5) // 5 > 2^2: over-saturated.
	h2 := mhgMult(t, []int{1, 3}, 5)
	ok, err := engine.SatcheckPartition(sphr, h1, h2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSatcheckPartitionOneOversaturatedDelegatesToOther(t *testing.T) {
	engine := decompose.NewEngine()
	sphr := mhg(t, []int{4, 5})
	h1 := mhgMult(t, []int{1, 2}, 5) // over-saturated.
	h2 := mhg(t, []int{1, 3})
	ok, err := engine.SatcheckPartition(sphr, h1, h2)
	require.NoError(t, err)
	// decompose(sphr ∪ h2): {(4,5),(1,3)} is two disjoint edges, each
	// trivially satisfiable.
	assert.True(t, ok)
}

func TestSatcheckPartitionIndependentlySatisfiablePiecesAreSAT(t *testing.T) {
	engine := decompose.NewEngine()
	sphr := mhg(t, []int{5, 6})
	h1 := mhg(t, []int{1, 2})
	h2 := mhg(t, []int{1, 3})
	ok, err := engine.SatcheckPartition(sphr, h1, h2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSatcheckPartitionEntangledCheckDrivesResult(t *testing.T) {
	// K4 decomposed at vertex 1: sphr is the triangle on {2,3,4}, link is
	// the three singleton loops {2},{3},{4}, partitioned {2} | {3},{4}.
	// decompose(sphr∪{2}) and decompose(sphr∪{3},{4}) both reduce to a
	// double loop (false) by simplification alone, so neither heuristic
	// branch short-circuits and the entangled quantifier decides the
	// result: K4 is unsatisfiable, so SatcheckPartition must return false
	// here too.
	engine := decompose.NewEngine()
	sphr := mhg(t, []int{2, 3}, []int{2, 4}, []int{3, 4})
	h1 := mhgMult(t, []int{2}, 1)

	h3, err := hgraph.HEdgeFromVertices(intsToVertices(t, []int{3}))
	require.NoError(t, err)
	h4, err := hgraph.HEdgeFromVertices(intsToVertices(t, []int{4}))
	require.NoError(t, err)
	h2, err := hgraph.MHGraphFromMultiset(map[hgraph.HEdge]int{h3: 1, h4: 1})
	require.NoError(t, err)

	d1, err := engine.Decompose(hgraph.GraphUnion(sphr, h1))
	require.NoError(t, err)
	require.False(t, d1, "precondition: heuristic check on h1 must not short-circuit")
	d2, err := engine.Decompose(hgraph.GraphUnion(sphr, h2))
	require.NoError(t, err)
	require.False(t, d2, "precondition: heuristic check on h2 must not short-circuit")

	ok, err := engine.SatcheckPartition(sphr, h1, h2)
	require.NoError(t, err)
	assert.False(t, ok)
}
