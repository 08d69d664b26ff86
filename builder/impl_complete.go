// File: impl_complete.go
// Role: Complete(n) -- the complete simple graph K_n.
// Determinism:
//   - Vertices get ids 0..n-1 in ascending order; edges are emitted for
//     every pair (i,j), i<j, in lexicographic order.

package builder

import (
	"fmt"

	"github.com/r-aax/caesar-sub000/core"
)

const minCompleteVertices = 1

// Complete returns a Constructor that builds K_n: n vertices, every
// pair joined by exactly one edge. Requires n >= 1. K_4 is the
// smallest cubic complete graph and a canonical Tait-coloring fixture.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCompleteVertices {
			return fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteVertices, ErrTooFewVertices)
		}
		vs := make([]*core.Vertex, n)
		for i := range vs {
			vs[i] = g.NewVertex()
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(vs[i], vs[j])
			}
		}
		return nil
	}
}

// Tetrahedron returns a Constructor building K_4: the 4-vertex, 3-
// regular complete graph, isomorphic to a tetrahedron's edge graph.
func Tetrahedron() Constructor { return Complete(4) }
