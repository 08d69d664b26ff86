// File: api.go
// Role: the builder package's single public entry-point and the
// Constructor type every topology factory returns.
// Determinism:
//   - Build applies constructors in call order, then canonicalizes (G5)
//     so the result's identifier layout never depends on which
//     topology produced it.
// AI-HINT (file):
//   - There is no configuration object here (no directed/weighted/loop
//     flags): the domain is fixed to simple, undirected, loopless
//     cubic-candidate multigraphs, so a config-options layer would have
//     no work left to do.

package builder

import (
	"fmt"

	"github.com/r-aax/caesar-sub000/core"
)

// Constructor applies one deterministic mutation to g. Constructors
// validate their own parameters and return sentinel errors; they never
// panic.
type Constructor func(g *core.Graph) error

// Build creates a fresh graph and applies each constructor to it in
// order, then canonicalizes the result (ArrangeObjectsIncreasingIDs).
// The first constructor error is wrapped with "Build: %w" and returned
// immediately; no partial cleanup is attempted.
func Build(cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	g.ArrangeObjectsIncreasingIDs()
	return g, nil
}
