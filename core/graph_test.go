package core

import (
	"testing"

	"github.com/r-aax/caesar-sub000/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edgelessGraph(t *testing.T, n int) *Graph {
	t.Helper()
	g := NewGraph()
	for i := 0; i < n; i++ {
		g.NewVertex()
	}
	return g
}

func prismGraph(t *testing.T, k int) *Graph {
	t.Helper()
	g := edgelessGraph(t, 2*k)
	require.NoError(t, g.AddCycle(0, k-1))
	require.NoError(t, g.AddCycle(k, 2*k-1))
	for i := 0; i < k; i++ {
		a, err := g.FindVertexByID(i)
		require.NoError(t, err)
		b, err := g.FindVertexByID(i + k)
		require.NoError(t, err)
		g.AddEdge(a, b)
	}
	g.ArrangeObjectsIncreasingIDs()
	return g
}

func TestGraphEmptyAndEdgeless(t *testing.T) {
	g := NewGraph()
	assert.True(t, g.IsEmpty())
	assert.True(t, g.IsEdgeless())
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())
	assert.True(t, g.IsRegular(0))
}

func TestGraphComplete4IsCubic(t *testing.T) {
	g := k4(t)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 6, g.Size())
	assert.True(t, g.IsComplete())
	assert.True(t, g.IsRegular(3))
	assert.True(t, g.IsCubic())
}

func TestGraphPrismIsCubicAndCanonical(t *testing.T) {
	g := prismGraph(t, 4)
	assert.Equal(t, 8, g.Order())
	assert.Equal(t, 12, g.Size())
	assert.True(t, g.IsCubic())

	for i, v := range g.Vertices() {
		assert.Equal(t, i, v.ID)
	}
}

func TestGraphAddUniqueEdgeNoOp(t *testing.T) {
	g := NewGraph()
	v1, v2 := g.NewVertex(), g.NewVertex()
	e1 := g.AddUniqueEdge(v1, v2)
	assert.NotNil(t, e1)
	e2 := g.AddUniqueEdge(v1, v2)
	assert.Nil(t, e2)
	assert.Equal(t, 1, g.Size())
}

func TestGraphRemoveEdgeAndVertex(t *testing.T) {
	g := NewGraph()
	v1, v2, v3 := g.NewVertex(), g.NewVertex(), g.NewVertex()
	g.AddEdge(v1, v2)
	g.AddEdge(v1, v3)

	require.NoError(t, g.RemoveEdge(v1.FindEdge(v2)))
	assert.Equal(t, 1, g.Size())
	assert.Equal(t, 1, v1.Degree())

	require.NoError(t, g.RemoveVertex(v1))
	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 0, g.Size())
}

func TestGraphGlueTwoIncidentEdges(t *testing.T) {
	g := NewGraph()
	a, v, b := g.NewVertex(), g.NewVertex(), g.NewVertex()
	g.AddEdge(a, v)
	g.AddEdge(v, b)

	newEdge, e1ID, e2ID, err := g.GlueTwoIncidentEdges(v)
	require.NoError(t, err)
	assert.Equal(t, a, newEdge.GetA())
	assert.Equal(t, b, newEdge.GetB())
	assert.Equal(t, 0, e1ID) // edge toward a (smaller id far endpoint)
	assert.Equal(t, 1, e2ID)
	assert.Equal(t, 2, g.Order())
}

func TestGraphGlueTwoIncidentEdgesRequiresDegreeTwo(t *testing.T) {
	g := k4(t)
	_, _, _, err := g.GlueTwoIncidentEdges(g.Vertices()[0])
	assert.ErrorIs(t, err, ErrDegreeMismatch)
}

func TestGraphBubbleCubicGraphVertex(t *testing.T) {
	g := k4(t)
	v := g.Vertices()[0]
	before := g.Order()
	w, err := g.BubbleCubicGraphVertex(v)
	require.NoError(t, err)
	assert.Equal(t, before+1, g.Order())
	assert.Equal(t, 2, w.Degree())
	assert.Equal(t, 3, v.Degree())
}

func TestGraphBubbleRequiresDegreeThree(t *testing.T) {
	g := NewGraph()
	v1, v2 := g.NewVertex(), g.NewVertex()
	g.AddEdge(v1, v2)
	_, err := g.BubbleCubicGraphVertex(v1)
	assert.ErrorIs(t, err, ErrDegreeMismatch)
}

func TestGraphFullReduceReachesMinimalCubic(t *testing.T) {
	g := k4(t)
	h := history.New()
	steps, err := g.FullReduce(h)
	require.NoError(t, err)
	assert.True(t, steps > 0)
	assert.True(t, g.IsMinimalCubic())
	assert.True(t, g.HasParallelEdges())
}

func TestGraphFullReduceRestoreRoundTrip(t *testing.T) {
	g1 := prismGraph(t, 5)
	g2 := g1.Clone()

	h := history.New()
	_, err := g1.FullReduce(h)
	require.NoError(t, err)
	assert.True(t, g1.IsMinimalCubic())

	require.NoError(t, g1.RestoreAll(h))
	assert.True(t, IsStronglyIsomorphic(g1, g2))
}

func TestGraphClone(t *testing.T) {
	g := prismGraph(t, 4)
	clone := g.Clone()
	assert.True(t, IsStronglyIsomorphic(g, clone))

	clone.RemoveVertex(clone.Vertices()[0])
	assert.NotEqual(t, g.Order(), clone.Order())
}
