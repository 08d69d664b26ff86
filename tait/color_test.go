package tait

import (
	"testing"

	"github.com/r-aax/caesar-sub000/builder"
	"github.com/r-aax/caesar-sub000/core"
	"github.com/r-aax/caesar-sub000/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorEmptyGraphProperties(t *testing.T) {
	g, err := builder.Build(builder.Empty())
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.True(t, g.IsEmpty())
	assert.True(t, g.IsRegular(0))
}

func TestColorTetrahedronHistogram(t *testing.T) {
	g, err := builder.Build(builder.Tetrahedron())
	require.NoError(t, err)
	require.True(t, g.IsComplete())
	require.True(t, g.IsCubic())

	require.NoError(t, Color(g))
	assert.True(t, g.IsEdgesColoringCorrect())

	hist := g.FillEdgesColorsHistogram()
	assert.Equal(t, []int{2, 2, 2}, hist)
}

func TestColorCubeHistogram(t *testing.T) {
	g, err := builder.Build(builder.Cube())
	require.NoError(t, err)
	require.Equal(t, 8, g.Order())
	require.Equal(t, 12, g.Size())
	require.True(t, g.IsCubic())

	require.NoError(t, Color(g))
	assert.True(t, g.IsEdgesColoringCorrect())

	hist := g.FillEdgesColorsHistogram()
	assert.Equal(t, []int{4, 4, 4}, hist)
}

func TestColorPrism6(t *testing.T) {
	g, err := builder.Build(builder.Prism(6))
	require.NoError(t, err)
	require.True(t, g.IsCubic())

	require.NoError(t, Color(g))
	assert.True(t, g.IsEdgesColoringCorrect())

	hist := g.FillEdgesColorsHistogram()
	assert.Len(t, hist, 3)
}

func TestParallelEdgeReducibilityAfterUniqueReduceOnTetrahedron(t *testing.T) {
	g, err := builder.Build(builder.Tetrahedron())
	require.NoError(t, err)

	h := history.New()
	e := g.GetUniqueReducibleEdge()
	require.NotNil(t, e)
	require.NoError(t, g.ReduceByUniqueEdge(e, h))

	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.True(t, g.HasParallelEdges())
}

func TestFullReduceRestoreIdentityOnPrism5(t *testing.T) {
	g1, err := builder.Build(builder.Prism(5))
	require.NoError(t, err)
	g2 := g1.Clone()

	h := history.New()
	_, err = g1.FullReduce(h)
	require.NoError(t, err)
	require.True(t, g1.IsMinimalCubic())

	require.NoError(t, g1.RestoreAll(h))
	assert.True(t, core.IsStronglyIsomorphic(g1, g2))
}

func TestGreedyColoringOfPrism6UsesThreeColors(t *testing.T) {
	g, err := builder.Build(builder.Prism(6))
	require.NoError(t, err)

	colors := g.EdgesColoringGreedy()
	assert.Equal(t, 3, colors)
	assert.True(t, g.IsEdgesColoringCorrect())
}

func TestColorIsValidAcrossSeveralPrisms(t *testing.T) {
	for _, k := range []int{3, 4, 5, 6, 7} {
		g, err := builder.Build(builder.Prism(k))
		require.NoError(t, err)
		require.NoError(t, Color(g))
		assert.True(t, g.IsEdgesColoringCorrect(), "prism k=%d", k)

		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Color, 0)
			assert.LessOrEqual(t, e.Color, 2)
		}
	}
}
