package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func k4(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	vs := make([]*Vertex, 4)
	for i := range vs {
		vs[i] = g.NewVertex()
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			g.AddEdge(vs[i], vs[j])
		}
	}
	return g
}

func TestEdgeIsLoop(t *testing.T) {
	g := NewGraph()
	v1, v2 := g.NewVertex(), g.NewVertex()
	e := g.AddEdge(v1, v2)
	assert.False(t, e.IsLoop())

	loop := &Edge{ID: 99, Color: UnpaintedColor, ends: [2]*Vertex{v1, v1}}
	assert.True(t, loop.IsLoop())
}

func TestEdgeArrangeVerticesIncreasingIDs(t *testing.T) {
	g := NewGraph()
	v1, v2 := g.NewVertex(), g.NewVertex() // v1.ID=0, v2.ID=1
	e := g.AddEdge(v2, v1)                 // added reversed
	assert.Equal(t, v1, e.GetA())
	assert.Equal(t, v2, e.GetB())
}

func TestEdgeIsUniqueReducibleEdgeOnK4(t *testing.T) {
	g := k4(t)
	for _, e := range g.Edges() {
		assert.True(t, e.IsUniqueReducibleEdge(), "edge %d should be unique-reducible in K4", e.ID)
		assert.False(t, e.IsParallelReducibleEdge())
	}
}

func TestEdgeIsParallelReducibleEdge(t *testing.T) {
	g := NewGraph()
	v1, v2, x, y := g.NewVertex(), g.NewVertex(), g.NewVertex(), g.NewVertex()
	e1 := g.AddEdge(v1, v2)
	g.AddEdge(v1, v2) // parallel sibling
	g.AddEdge(v1, x)
	g.AddEdge(v2, y)

	assert.True(t, e1.IsParallelReducibleEdge())
	assert.False(t, e1.IsUniqueReducibleEdge())
}

func TestEdgeIsParallelReducibleEdgeFailsWhenOuterNeighborsCoincide(t *testing.T) {
	g := NewGraph()
	v1, v2, x := g.NewVertex(), g.NewVertex(), g.NewVertex()
	e1 := g.AddEdge(v1, v2)
	g.AddEdge(v1, v2)
	g.AddEdge(v1, x)
	g.AddEdge(v2, x) // same outer neighbor on both sides

	assert.False(t, e1.IsParallelReducibleEdge())
}

func TestEdgeGreedyPaint(t *testing.T) {
	g := NewGraph()
	v1, v2, v3 := g.NewVertex(), g.NewVertex(), g.NewVertex()
	e1 := g.AddEdge(v1, v2)
	e2 := g.AddEdge(v1, v3)
	e1.Color = 0

	e2.GreedyPaint()
	assert.Equal(t, 1, e2.Color)
}

func TestEdgeOtherRejectsForeignVertex(t *testing.T) {
	g := NewGraph()
	v1, v2, v3 := g.NewVertex(), g.NewVertex(), g.NewVertex()
	e := g.AddEdge(v1, v2)

	_, err := e.Other(v3)
	assert.Error(t, err)
}
