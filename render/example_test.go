package render_test

import (
	"fmt"
	"strings"

	"github.com/r-aax/caesar-sub000/builder"
	"github.com/r-aax/caesar-sub000/render"
	"github.com/r-aax/caesar-sub000/tait"
)

// ExampleWriteNetworkX colors a tetrahedron and writes the networkx
// script describing it, then checks the script imports networkx.
func ExampleWriteNetworkX() {
	g, err := builder.Build(builder.Tetrahedron())
	if err != nil {
		panic(err)
	}
	if err := tait.Color(g); err != nil {
		panic(err)
	}

	var buf strings.Builder
	if err := render.WriteNetworkX(&buf, g); err != nil {
		panic(err)
	}

	fmt.Println(strings.Contains(buf.String(), "import networkx as nx"))
	// Output:
	// true
}
