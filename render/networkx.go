// File: networkx.go
// Role: a presentation-only seam, outside the coloring core, that
// emits a textual networkx/matplotlib script describing a colored
// graph for visualization.
// AI-HINT (file):
//   - This mirrors the original project's Python code generator
//     (graph_visualization): same node/edge emission order, same fixed
//     five-color palette, same nx.draw() call. It is not meant to
//     generalize beyond that one fixed layout.

package render

import (
	"fmt"
	"io"
	"text/template"

	"github.com/r-aax/caesar-sub000/core"
)

// networkxColors is the fixed palette indexed by edge color. A color
// outside this range is rendered as "black".
var networkxColors = [...]string{"red", "blue", "green", "magenta", "yellow"}

func colorName(c int) string {
	if c < 0 || c >= len(networkxColors) {
		return "black"
	}
	return networkxColors[c]
}

type networkxEdge struct {
	A, B  int
	Color string
}

type networkxData struct {
	VertexIDs []int
	Edges     []networkxEdge
}

const networkxTemplateSource = `# --------------------------------------------------------------------------------------
# This code is generated from caesar-sub000 for running in Jupyter Notebook.

import networkx as nx
import matplotlib.pyplot as plt

g = nx.Graph()

{{range .VertexIDs}}g.add_node({{.}})
{{end}}
{{range .Edges}}g.add_edge({{.A}}, {{.B}}, color='{{.Color}}')
{{end}}
_, edge_colors=zip(*nx.get_edge_attributes(g, 'color').items())
plt.figure(1, figsize=(8, 8))
nx.draw(g, with_labels=True, font_size=8, font_color='white', node_size=180, node_color='black', edge_color=edge_colors, width=4)
plt.show()
# End of code generated from caesar-sub000.
# --------------------------------------------------------------------------------------
`

var networkxTemplate = template.Must(template.New("networkx").Parse(networkxTemplateSource))

// WriteNetworkX writes a networkx/matplotlib Python script describing
// g's current vertex and edge coloring to w, in the order g.Vertices()
// and g.Edges() currently hold them (canonicalize g first if a stable
// identifier order is wanted).
func WriteNetworkX(w io.Writer, g *core.Graph) error {
	data := networkxData{
		VertexIDs: make([]int, 0, g.Order()),
		Edges:     make([]networkxEdge, 0, g.Size()),
	}
	for _, v := range g.Vertices() {
		data.VertexIDs = append(data.VertexIDs, v.ID)
	}
	for _, e := range g.Edges() {
		data.Edges = append(data.Edges, networkxEdge{
			A:     e.GetA().ID,
			B:     e.GetB().ID,
			Color: colorName(e.Color),
		})
	}
	if err := networkxTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render.WriteNetworkX: %w", err)
	}
	return nil
}
