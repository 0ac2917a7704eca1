package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mhgraphsat/decompose"
	"github.com/katalvlaran/mhgraphsat/hgraph"
)

func mhg(t *testing.T, hedges ...[]int) hgraph.MHGraph {
	t.Helper()
	g, err := hgraph.NewMHGraph(hedges...)
	require.NoError(t, err)
	return g
}

func TestSimplifyAtLeavesEmptiesToTrue(t *testing.T) {
	// A path 1-2-3: vertex 1 has degree 1 via (1,2); dropping it leaves
	// {(2,3)}, a single edge with both endpoints degree 1, which then
	// empties entirely.
	g := mhg(t, []int{1, 2}, []int{2, 3})
	result := decompose.SimplifyAtLeaves(g)
	require.True(t, result.IsBool())
	assert.True(t, result.Bool())
}

func TestSimplifyAtLeavesLeavesNonLeafGraphUnchanged(t *testing.T) {
	g := mhg(t, []int{1, 2}, []int{1, 3}, []int{2, 3})
	result := decompose.SimplifyAtLeaves(g)
	require.False(t, result.IsBool())
	assert.True(t, result.Graph().Equal(g))
}

func TestSimplifyAtLoopsDoubleLoopIsFalse(t *testing.T) {
	g := mhg(t, []int{1}, []int{1})
	result := decompose.SimplifyAtLoops(g)
	require.True(t, result.IsBool())
	assert.False(t, result.Bool())
}

func TestSimplifyAtLoopsSingleLoopIsTrue(t *testing.T) {
	g := mhg(t, []int{1})
	result := decompose.SimplifyAtLoops(g)
	require.True(t, result.IsBool())
	assert.True(t, result.Bool())
}

func TestSimplifyAtLoopsNoLoopUnchanged(t *testing.T) {
	g := mhg(t, []int{1, 2}, []int{2, 3})
	result := decompose.SimplifyAtLoops(g)
	require.False(t, result.IsBool())
	assert.True(t, result.Graph().Equal(g))
}

func TestSimplifyAtLoopsProjectsSignAtLoopedVertex(t *testing.T) {
	g := mhg(t, []int{1}, []int{1, 2})
	result := decompose.SimplifyAtLoops(g)
	require.False(t, result.IsBool())
	assert.True(t, result.Graph().Equal(mhg(t, []int{2})))
}

func TestSimplifyAtLeavesAndLoopsReachesFixedPoint(t *testing.T) {
	g := mhg(t, []int{1, 2}, []int{2, 3}, []int{3})
	result := decompose.SimplifyAtLeavesAndLoops(g)
	require.True(t, result.IsBool())
	assert.True(t, result.Bool())
}
