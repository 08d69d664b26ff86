// File: errors.go
// Role: sentinel errors for bicolor cycle construction and recoloring.

package bicolor

import "errors"

var (
	// ErrEqualColors is returned by Build when the seed edge's color
	// equals the requested second color: a bicolor cycle needs two
	// distinct colors to alternate between.
	ErrEqualColors = errors.New("seed edge color equals the requested second color")
	// ErrUnpaintedSeed is returned by Build when the seed edge has not
	// been painted yet (color < 0): a cycle can only be built over an
	// already-colored subgraph.
	ErrUnpaintedSeed = errors.New("seed edge is unpainted")
	// ErrBrokenAlternation is returned by Build when, walking from the
	// seed, no incident edge of the required next color exists at some
	// vertex -- a structural inconsistency in the coloring the cycle is
	// being built over.
	ErrBrokenAlternation = errors.New("no incident edge of the required color found while walking the cycle")
	// ErrEdgeNotInCycle is returned by SwitchColorsBetween when one of
	// the two named edges is not part of the cycle.
	ErrEdgeNotInCycle = errors.New("edge is not part of this bicolor cycle")
)
