// File: cycle.go
// Role: BicolorCycle (C8) -- a closed walk of edges alternating between
// two colors, the Kempe-chain recoloring primitive the Tait colorer
// uses to restore-and-repaint each reduction step.
// Determinism:
//   - Build always starts at seed.GetA() and walks toward seed.GetB();
//     the resulting edge order is deterministic for a fixed coloring.
// AI-HINT (file):
//   - SwitchColorsBetween flips strictly the edges between the two
//     named edges in storage order (exclusive of both boundaries); it
//     does not wrap around the cycle. Build always stores edges in
//     walk order starting from the seed, so "between" is unambiguous.

package bicolor

import "github.com/r-aax/caesar-sub000/core"

// Cycle is a sequence of edges, recorded in walk order starting from a
// seed edge, whose colors strictly alternate between two fixed values
// (BC2) and whose length is even (BC3). Consecutive edges in the walk
// share a vertex (BC1).
type Cycle struct {
	edges  []*core.Edge
	ids    map[int]struct{}
	color1 int
	color2 int
}

// Build walks a bicolor cycle starting at seed, alternating between
// seed's current color and otherColor. Pre: seed.Color != otherColor
// and seed.Color >= 0 (the seed must already be painted).
func Build(seed *core.Edge, otherColor int) (*Cycle, error) {
	if seed.Color < 0 {
		return nil, ErrUnpaintedSeed
	}
	if seed.Color == otherColor {
		return nil, ErrEqualColors
	}

	sum := seed.Color + otherColor
	start := seed.GetA()

	c := &Cycle{
		edges:  []*core.Edge{seed},
		ids:    map[int]struct{}{seed.ID: {}},
		color1: seed.Color,
		color2: otherColor,
	}

	v := seed.GetB()
	want := otherColor
	for v != start {
		next := findIncidentEdgeOfColor(v, want)
		if next == nil {
			return nil, ErrBrokenAlternation
		}
		c.edges = append(c.edges, next)
		c.ids[next.ID] = struct{}{}

		nv, err := next.Other(v)
		if err != nil {
			return nil, err
		}
		v = nv
		want = sum - want
	}
	return c, nil
}

func findIncidentEdgeOfColor(v *core.Vertex, color int) *core.Edge {
	for _, e := range v.Edges() {
		if e.Color == color {
			return e
		}
	}
	return nil
}

// Len returns the number of edges in the cycle.
func (c *Cycle) Len() int { return len(c.edges) }

// Edges returns the cycle's edges in walk order. Callers must not
// mutate the returned slice.
func (c *Cycle) Edges() []*core.Edge { return c.edges }

// Has reports whether e is part of this cycle.
func (c *Cycle) Has(e *core.Edge) bool {
	_, ok := c.ids[e.ID]
	return ok
}

// SumColors returns the sum of the cycle's two colors; 3-SumColors is
// the one color among {0,1,2} this cycle never uses.
func (c *Cycle) SumColors() int { return c.color1 + c.color2 }

// SwitchColors flips every edge in the cycle to the other of the two
// cycle colors. Applying it twice is the identity (P6).
func (c *Cycle) SwitchColors() {
	sum := c.SumColors()
	for _, e := range c.edges {
		e.Color = sum - e.Color
	}
}

// SwitchColorsBetween flips only the edges strictly between e1 and e2
// in walk order (exclusive of e1 and e2 themselves), leaving the rest
// of the cycle untouched. Both edges must belong to the cycle.
func (c *Cycle) SwitchColorsBetween(e1, e2 *core.Edge) error {
	idx1, idx2 := -1, -1
	for i, e := range c.edges {
		if e == e1 {
			idx1 = i
		}
		if e == e2 {
			idx2 = i
		}
	}
	if idx1 < 0 || idx2 < 0 {
		return ErrEdgeNotInCycle
	}

	lo, hi := idx1, idx2
	if lo > hi {
		lo, hi = hi, lo
	}
	sum := c.SumColors()
	for i := lo + 1; i < hi; i++ {
		c.edges[i].Color = sum - c.edges[i].Color
	}
	return nil
}
