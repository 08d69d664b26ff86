// File: impl_edgeless.go
// Role: Empty, Edgeless(n), Trivial -- the vertex-only topologies.

package builder

import (
	"fmt"

	"github.com/r-aax/caesar-sub000/core"
)

// Empty returns a Constructor that adds no vertices and no edges.
func Empty() Constructor {
	return func(g *core.Graph) error { return nil }
}

// Trivial returns a Constructor that adds exactly one isolated vertex.
func Trivial() Constructor {
	return func(g *core.Graph) error {
		g.NewVertex()
		return nil
	}
}

// Edgeless returns a Constructor that adds n isolated vertices and no
// edges. Requires n >= 0.
func Edgeless(n int) Constructor {
	return func(g *core.Graph) error {
		if n < 0 {
			return fmt.Errorf("Edgeless: n=%d < 0: %w", n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.NewVertex()
		}
		return nil
	}
}
