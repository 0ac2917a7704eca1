package hgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mhgraphsat/hgraph"
)

func TestHEdgeIdempotentAndOrderFree(t *testing.T) {
	h1, err := hgraph.NewHEdge(1, 2, 3)
	require.NoError(t, err)
	h2, err := hgraph.NewHEdge(3, 1, 2)
	require.NoError(t, err)
	assert.True(t, h1.Equal(h2))
	assert.Equal(t, "1,2,3", h1.String())

	h3, err := hgraph.HEdgeFromVertices(h1.Vertices())
	require.NoError(t, err)
	assert.True(t, h1.Equal(h3))

	_, err = hgraph.NewHEdge()
	assert.ErrorIs(t, err, hgraph.ErrEmpty)

	_, err = hgraph.NewHEdge(0, 1)
	assert.ErrorIs(t, err, hgraph.ErrInvalidVertex)
}

func TestEdgeRejectsTooManyVertices(t *testing.T) {
	_, err := hgraph.NewEdge(1, 2, 3)
	assert.ErrorIs(t, err, hgraph.ErrTooManyVertices)

	e, err := hgraph.NewEdge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, "1,2", e.String())
}

func TestMHGraphMultiplicityFromRepetition(t *testing.T) {
	g, err := hgraph.NewMHGraph([]int{1, 2}, []int{1, 2}, []int{1, 3})
	require.NoError(t, err)
	h12, _ := hgraph.NewHEdge(1, 2)
	assert.Equal(t, 2, g.Multiplicity(h12))
	assert.Equal(t, 2, g.Len())
}

func TestMHGraphFromMultisetPreservesMultiplicity(t *testing.T) {
	h, _ := hgraph.NewHEdge(1, 2)
	g, err := hgraph.MHGraphFromMultiset(map[hgraph.HEdge]int{h: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, g.Multiplicity(h))

	_, err = hgraph.MHGraphFromMultiset(map[hgraph.HEdge]int{h: 0})
	assert.ErrorIs(t, err, hgraph.ErrBadMultiplicity)
}

func TestMHGraphEqualIgnoresConstructionOrder(t *testing.T) {
	g1, _ := hgraph.NewMHGraph([]int{1, 2}, []int{1, 3})
	g2, _ := hgraph.NewMHGraph([]int{1, 3}, []int{1, 2})
	assert.True(t, g1.Equal(g2))
}

func TestConversions(t *testing.T) {
	g, _ := hgraph.NewMHGraph([]int{1, 2}, []int{2, 3})
	simple, err := hgraph.ToGraph(g)
	require.NoError(t, err)
	assert.Len(t, simple.Edges(), 2)

	hg, _ := hgraph.NewMHGraph([]int{1, 2, 3}, []int{2, 3})
	_, err = hgraph.ToGraph(hg)
	assert.ErrorIs(t, err, hgraph.ErrNotSimpleGraph)

	dup, _ := hgraph.NewMHGraph([]int{1, 2}, []int{1, 2})
	_, err = hgraph.ToGraph(dup)
	assert.ErrorIs(t, err, hgraph.ErrNotSimpleGraph)

	_, err = hgraph.ToHGraph(dup)
	assert.ErrorIs(t, err, hgraph.ErrNotHGraph)
}
