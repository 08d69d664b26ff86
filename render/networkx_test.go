package render

import (
	"strings"
	"testing"

	"github.com/r-aax/caesar-sub000/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteNetworkXEmitsNodesAndColoredEdges(t *testing.T) {
	g := core.NewGraph()
	v0, v1, v2 := g.NewVertex(), g.NewVertex(), g.NewVertex()
	e0 := g.AddEdge(v0, v1)
	e1 := g.AddEdge(v1, v2)
	e0.Color = 0
	e1.Color = 1

	var buf strings.Builder
	require.NoError(t, WriteNetworkX(&buf, g))
	out := buf.String()

	assert.Contains(t, out, "import networkx as nx")
	assert.Contains(t, out, "g.add_node(0)")
	assert.Contains(t, out, "g.add_node(2)")
	assert.Contains(t, out, "g.add_edge(0, 1, color='red')")
	assert.Contains(t, out, "g.add_edge(1, 2, color='blue')")
	assert.Contains(t, out, "nx.draw(")
}

func TestColorNameFallsBackToBlack(t *testing.T) {
	assert.Equal(t, "black", colorName(-1))
	assert.Equal(t, "black", colorName(99))
	assert.Equal(t, "red", colorName(0))
}
