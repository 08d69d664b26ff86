// File: color.go
// Role: Tait Colorer (C10) -- the top-level procedure that stitches
// full-reduce, trivial coloring of the minimal cubic graph, and
// history-driven restore-and-repaint into a proper 3-edge-coloring of
// any connected cubic multigraph.
// Determinism:
//   - Full-reduce picks reducible edges in global-edge-list order
//     (core.Graph's Sec 5 guarantee); the resulting coloring depends on
//     that order, but that a valid coloring exists does not.
// AI-HINT (file):
//   - Case A's fallthrough to Case B: after cyc.SwitchColors(), r1's
//     color equals the old other-color, which findKempeChain skips. Its
//     candidate equal to r1's old color rebuilds the same two-color
//     cycle Case A already built (colors now swapped), which again lacks
//     r2, so there only the third color can succeed.
package tait

import (
	"github.com/r-aax/caesar-sub000/bicolor"
	"github.com/r-aax/caesar-sub000/core"
	"github.com/r-aax/caesar-sub000/history"
)

// Color computes a Tait edge 3-coloring of g in place. Pre: g is a
// connected cubic multigraph. Post: every edge's color is in {0,1,2}
// and, for every vertex, its three incident edges carry pairwise
// distinct colors (P1). Returns ErrColoringInfeasible if g is a bridged
// cubic multigraph with no Tait coloring.
func Color(g *core.Graph) error {
	h := history.New()
	if _, err := g.FullReduce(h); err != nil {
		return err
	}

	for i, e := range g.Edges() {
		e.Color = i
	}

	for !h.IsEmpty() {
		step, err := h.Peek()
		if err != nil {
			return err
		}
		if step.IsReduceByParallelEdge() {
			if err := restoreAndRepaintParallel(g, step); err != nil {
				return err
			}
		} else {
			if err := restoreAndRepaintUnique(g, step); err != nil {
				return err
			}
		}
		if _, err := h.Pop(); err != nil {
			return err
		}
	}

	g.ArrangeObjectsIncreasingIDs()
	return nil
}

// restoreAndRepaintParallel implements Sec 4.6.1: the sole result
// edge's color is inherited by both hanging-side edges, and the two
// restored parallel edges are greedy-painted in turn for the two
// remaining colors.
func restoreAndRepaintParallel(g *core.Graph, step history.Step) error {
	r, err := g.FindEdgeByID(step.ResultE1ID)
	if err != nil {
		return err
	}
	c := r.Color

	if err := g.RestoreStepParallel(step); err != nil {
		return err
	}

	side1, err := g.FindEdgeByID(step.V1E1ID)
	if err != nil {
		return err
	}
	side1.Color = c

	side2, err := g.FindEdgeByID(step.V2E1ID)
	if err != nil {
		return err
	}
	side2.Color = c

	parallel1, err := g.FindEdgeByID(step.EID)
	if err != nil {
		return err
	}
	parallel1.GreedyPaint()

	parallel2, err := g.FindEdgeByID(step.V1E2ID)
	if err != nil {
		return err
	}
	parallel2.GreedyPaint()

	return nil
}

// restoreAndRepaintUnique implements Sec 4.6.2: a bicolor cycle through
// both result edges is found (Case A when their colors already differ,
// Case B via a Kempe-chain search otherwise), the edges strictly between
// the two result edges on that cycle are flipped (the result edges keep
// their colors and are removed by the structural inversion), the step is
// inverted structurally, the new central edge gets the one color the
// cycle never used, and the four side edges are greedy-painted, those
// with only one color left first.
func restoreAndRepaintUnique(g *core.Graph, step history.Step) error {
	r1, err := g.FindEdgeByID(step.ResultE1ID)
	if err != nil {
		return err
	}
	r2, err := g.FindEdgeByID(step.ResultE2ID)
	if err != nil {
		return err
	}

	var bc *bicolor.Cycle
	if r1.Color != r2.Color {
		cyc, err := bicolor.Build(r1, r2.Color)
		if err != nil {
			return err
		}
		if cyc.Has(r2) {
			bc = cyc
		} else {
			cyc.SwitchColors()
			bc, err = findKempeChain(r1, r2)
			if err != nil {
				return err
			}
		}
	} else {
		bc, err = findKempeChain(r1, r2)
		if err != nil {
			return err
		}
	}

	eColor := 3 - bc.SumColors()
	if err := bc.SwitchColorsBetween(r1, r2); err != nil {
		return err
	}

	if err := g.RestoreStepUnique(step); err != nil {
		return err
	}

	center, err := g.FindEdgeByID(step.EID)
	if err != nil {
		return err
	}
	center.Color = eColor

	// Two passes over the side ids: first only sides with at least three
	// painted edges around them (one color left), then the rest.
	for i, id := range [8]int{step.V1E1ID, step.V1E2ID, step.V2E1ID, step.V2E2ID, step.V1E1ID, step.V1E2ID, step.V2E1ID, step.V2E2ID} {
		side, err := g.FindEdgeByID(id)
		if err != nil {
			return err
		}
		painted := 0
		for _, v := range [2]*core.Vertex{side.GetA(), side.GetB()} {
			for _, ve := range v.Edges() {
				if ve.Color >= 0 {
					painted++
				}
			}
		}
		if side.Color != core.UnpaintedColor || (i < 4 && painted < 3) {
			continue
		}
		side.GreedyPaint()
	}
	return nil
}

// findKempeChain tries each color other than r1's current one, in
// {0,1,2} order, and returns the first bicolor cycle seeded at r1 that
// also contains r2. Exactly one of the two candidates works for any
// cubic multigraph that admits a Tait coloring.
func findKempeChain(r1, r2 *core.Edge) (*bicolor.Cycle, error) {
	for color := 0; color < 3; color++ {
		if color == r1.Color {
			continue
		}
		cyc, err := bicolor.Build(r1, color)
		if err != nil {
			continue
		}
		if cyc.Has(r2) {
			return cyc, nil
		}
	}
	return nil, ErrColoringInfeasible
}
