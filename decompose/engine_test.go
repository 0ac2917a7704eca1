package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mhgraphsat/decompose"
	"github.com/katalvlaran/mhgraphsat/hgraph"
)

func TestEngineDecomposeScenarios(t *testing.T) {
	cases := []struct {
		name     string
		hedges   [][]int
		mults    []int
		expected bool
	}{
		{"S1 triangle K3", [][]int{{1, 2}, {1, 3}, {2, 3}}, []int{1, 1, 1}, true},
		{"S2 edge mult 4", [][]int{{1, 2}}, []int{4}, false},
		{"S3 K4", [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}, []int{1, 1, 1, 1, 1, 1}, false},
		{"S4 K4 minus e", [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}}, []int{1, 1, 1, 1, 1}, true},
		{"S5 K4 as 3-uniform", [][]int{{1, 2, 3}, {1, 2, 4}, {1, 3, 4}, {2, 3, 4}}, []int{1, 1, 1, 1}, true},
		{"S6 single loop", [][]int{{1}}, []int{1}, true},
		{"S7 double loop", [][]int{{1}}, []int{2}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			multiset := make(map[hgraph.HEdge]int, len(tc.hedges))
			for i, vs := range tc.hedges {
				h, err := hgraph.HEdgeFromVertices(intsToVertices(t, vs))
				require.NoError(t, err)
				multiset[h] = tc.mults[i]
			}
			g, err := hgraph.MHGraphFromMultiset(multiset)
			require.NoError(t, err)

			engine := decompose.NewEngine()
			got, err := engine.Decompose(g)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got, tc.name)
		})
	}
}

func intsToVertices(t *testing.T, vs []int) []hgraph.Vertex {
	t.Helper()
	out := make([]hgraph.Vertex, len(vs))
	for i, n := range vs {
		v, err := hgraph.NewVertex(n)
		require.NoError(t, err)
		out[i] = v
	}
	return out
}

func TestEngineDecomposeMemoizationIsTransparent(t *testing.T) {
	g := mhg(t, []int{1, 2}, []int{1, 3}, []int{2, 3})
	engine := decompose.NewEngine()
	first, err := engine.Decompose(g)
	require.NoError(t, err)
	second, err := engine.Decompose(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEngineDecomposeHyperbolicOnlyAgreesOnTriangle(t *testing.T) {
	g := mhg(t, []int{1, 2}, []int{1, 3}, []int{2, 3})
	engine := decompose.NewEngine(decompose.WithHyperbolicOnly())
	got, err := engine.Decompose(g)
	require.NoError(t, err)
	assert.True(t, got)
}
