// File: graph_restore.go
// Role: identifier-exact inverses of the two reduction operations,
// driven by a ReduceHistoryStep popped off a ReduceHistory.
// AI-HINT (file):
//   - RestoreStepUnique/RestoreStepParallel rely on the far-endpoint
//     correspondence the reduce side already set up (r.GetA() is always
//     the neighbor reachable via the step's "E1" side, r.GetB() via its
//     "E2" side) -- see graph_reduce.go's field-swap comment.

package core

import "github.com/r-aax/caesar-sub000/history"

// RestoreStepUnique inverts a unique-edge reduction: it recreates v1,
// v2 with their original identifiers, reconnects them to the two
// result edges' original far endpoints with the original side-edge
// identifiers, adds the central edge back, and removes the two result
// edges. Pre: step is a unique-edge step (!step.IsReduceByParallelEdge())
// and both result edges are present in g.
func (g *Graph) RestoreStepUnique(step history.Step) error {
	r1, err := g.FindEdgeByID(step.ResultE1ID)
	if err != nil {
		return errorf("Graph.RestoreStepUnique", ErrHistoryMismatch, "result edge 1 missing")
	}
	r2, err := g.FindEdgeByID(step.ResultE2ID)
	if err != nil {
		return errorf("Graph.RestoreStepUnique", ErrHistoryMismatch, "result edge 2 missing")
	}

	a1, b1 := r1.GetA(), r1.GetB()
	a2, b2 := r2.GetA(), r2.GetB()

	v1 := g.NewVertexWithID(step.V1ID)
	v2 := g.NewVertexWithID(step.V2ID)

	g.AddEdgeWithID(v1, a1, step.V1E1ID)
	g.AddEdgeWithID(v1, b1, step.V1E2ID)
	g.AddEdgeWithID(v2, a2, step.V2E1ID)
	g.AddEdgeWithID(v2, b2, step.V2E2ID)
	g.AddEdgeWithID(v1, v2, step.EID)

	if err := g.RemoveEdge(r1); err != nil {
		return err
	}
	if err := g.RemoveEdge(r2); err != nil {
		return err
	}
	return nil
}

// RestoreStepParallel inverts a parallel-edge reduction: it recreates
// v1, v2, reconnects them to the single result edge's two far
// endpoints with the original hanging-edge identifiers, adds back both
// parallel edges between v1 and v2, and removes the result edge. Pre:
// step.IsReduceByParallelEdge() and the result edge is present in g.
func (g *Graph) RestoreStepParallel(step history.Step) error {
	r, err := g.FindEdgeByID(step.ResultE1ID)
	if err != nil {
		return errorf("Graph.RestoreStepParallel", ErrHistoryMismatch, "result edge missing")
	}

	a, b := r.GetA(), r.GetB()

	v1 := g.NewVertexWithID(step.V1ID)
	v2 := g.NewVertexWithID(step.V2ID)

	g.AddEdgeWithID(v1, a, step.V1E1ID)
	g.AddEdgeWithID(v2, b, step.V2E1ID)
	g.AddEdgeWithID(v1, v2, step.EID)
	g.AddEdgeWithID(v1, v2, step.V1E2ID)

	return g.RemoveEdge(r)
}

// RestoreStep dispatches to RestoreStepUnique or RestoreStepParallel
// based on step.IsReduceByParallelEdge, then pops h.
func (g *Graph) RestoreStep(h *history.History) error {
	step, err := h.Peek()
	if err != nil {
		return err
	}
	if step.IsReduceByParallelEdge() {
		if err := g.RestoreStepParallel(step); err != nil {
			return err
		}
	} else {
		if err := g.RestoreStepUnique(step); err != nil {
			return err
		}
	}
	_, err = h.Pop()
	return err
}

// RestoreAll pops and inverts every step of h, in order, until h is
// empty, then canonicalizes the graph.
func (g *Graph) RestoreAll(h *history.History) error {
	for !h.IsEmpty() {
		if err := g.RestoreStep(h); err != nil {
			return err
		}
	}
	g.ArrangeObjectsIncreasingIDs()
	return nil
}
