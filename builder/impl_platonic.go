// File: impl_platonic.go
// Role: Prism(k) -- the k-gonal prism graph, and Cube as its k=4
// specialization. A prism is always cubic: every rim vertex has degree
// 2 from its own cycle plus 1 rung edge.
// Determinism:
//   - Rim 1 gets ids 0..k-1, rim 2 gets ids k..2k-1; rung i joins
//     vertex i to vertex i+k, for i in 0..k-1.

package builder

import (
	"fmt"

	"github.com/r-aax/caesar-sub000/core"
)

const minPrismRimSize = 3

// Prism returns a Constructor that builds the k-gonal prism graph:
// two k-cycles on disjoint vertex sets, joined rung by corresponding
// rung. Requires k >= 3.
func Prism(k int) Constructor {
	return func(g *core.Graph) error {
		if k < minPrismRimSize {
			return fmt.Errorf("Prism: k=%d < min=%d: %w", k, minPrismRimSize, ErrTooFewVertices)
		}
		for i := 0; i < 2*k; i++ {
			g.NewVertex()
		}
		if err := g.AddCycle(0, k-1); err != nil {
			return fmt.Errorf("Prism: rim 1: %w", err)
		}
		if err := g.AddCycle(k, 2*k-1); err != nil {
			return fmt.Errorf("Prism: rim 2: %w", err)
		}
		for i := 0; i < k; i++ {
			a, err := g.FindVertexByID(i)
			if err != nil {
				return fmt.Errorf("Prism: rung %d: %w", i, err)
			}
			b, err := g.FindVertexByID(i + k)
			if err != nil {
				return fmt.Errorf("Prism: rung %d: %w", i, err)
			}
			g.AddEdge(a, b)
		}
		return nil
	}
}

// Cube returns a Constructor that builds the cube graph Q_3: the
// 4-gonal prism, 8 vertices, 12 edges, cubic.
func Cube() Constructor { return Prism(4) }
