// File: impl_cycle.go
// Role: Cyclic(n) -- the n-vertex simple cycle C_n.

package builder

import (
	"fmt"

	"github.com/r-aax/caesar-sub000/core"
)

const minCycleVertices = 3

// Cyclic returns a Constructor that builds C_n: n vertices 0..n-1
// joined in a ring, edge (i,i+1) for i<n-1 plus the closing edge
// (0,n-1). Requires n >= 3.
func Cyclic(n int) Constructor {
	return func(g *core.Graph) error {
		if n < minCycleVertices {
			return fmt.Errorf("Cyclic: n=%d < min=%d: %w", n, minCycleVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.NewVertex()
		}
		return g.AddCycle(0, n-1)
	}
}
