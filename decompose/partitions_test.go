package decompose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mhgraphsat/decompose"
	"github.com/katalvlaran/mhgraphsat/hgraph"
)

func TestComputeAllTwoPartitionsCountsAndCoversEachElement(t *testing.T) {
	// link has 3 distinguishable slots (after flattening multiplicity):
	// (1,2), (1,3), (1,3) again. Three distinguishable slots have exactly
	// 2^(3-1) - 1 = 3 non-trivial bipartitions once the all-in-one-part
	// mask (which has an empty part2) is excluded.
	link := mhg(t, []int{1, 2}, []int{1, 3}, []int{1, 3})
	var pairs [][2]hgraph.MHGraph
	for pair := range decompose.ComputeAllTwoPartitions(link, false) {
		pairs = append(pairs, pair)
	}
	assert.Len(t, pairs, 3)
	for _, p := range pairs {
		union := hgraph.GraphUnion(p[0], p[1])
		assert.Equal(t, 3, sumMult(union))
	}
}

func sumMult(g hgraph.MHGraph) int {
	total := 0
	for _, it := range g.Items() {
		total += it.Mult
	}
	return total
}

func TestComputeAllTwoPartitionsTooSmallYieldsNone(t *testing.T) {
	link := mhg(t, []int{1, 2})
	count := 0
	for range decompose.ComputeAllTwoPartitions(link, false) {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestComputeAllTwoPartitionsHyperbolicOnlyFiltersImbalanced(t *testing.T) {
	link := mhg(t, []int{1, 2}, []int{1, 3}, []int{1, 4}, []int{1, 5})
	for pair := range decompose.ComputeAllTwoPartitions(link, true) {
		diff := sumMult(pair[0]) - sumMult(pair[1])
		if diff < 0 {
			diff = -diff
		}
		require.LessOrEqual(t, diff, 1)
	}
}
