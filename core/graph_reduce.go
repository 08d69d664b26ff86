// File: graph_reduce.go
// Role: the two cubic-graph reduction operations and the full-reduce
// loop that drives a connected cubic multigraph down to its minimal
// fixed point (two vertices, three parallel edges), pushing a
// ReduceHistoryStep for every reduction performed.
// Determinism:
//   - GetUniqueReducibleEdge/GetParallelReducibleEdge return the first
//     matching edge in current global-edge-list order (Sec 5): the
//     final coloring depends on this order, the existence of a valid
//     coloring does not.
// AI-HINT (file):
//   - ReduceByParallelEdge's field-swap-on-reversed-glue is the single
//     most error-prone line in this file: get it wrong and restore will
//     silently reconnect the wrong pair of side edges.

package core

import "github.com/r-aax/caesar-sub000/history"

// GetUniqueReducibleEdge returns the first edge in global-edge-list
// order for which IsUniqueReducibleEdge is true, or nil if none exists.
func (g *Graph) GetUniqueReducibleEdge() *Edge {
	for _, e := range g.edges {
		if e.IsUniqueReducibleEdge() {
			return e
		}
	}
	return nil
}

// GetParallelReducibleEdge returns the first edge in global-edge-list
// order for which IsParallelReducibleEdge is true, or nil if none
// exists.
func (g *Graph) GetParallelReducibleEdge() *Edge {
	for _, e := range g.edges {
		if e.IsParallelReducibleEdge() {
			return e
		}
	}
	return nil
}

// ReduceByUniqueEdge removes e and contracts each of its two endpoints
// (now degree 2) into a single new edge apiece, pushing a Step onto h
// that records enough to invert the operation exactly. Pre:
// e.IsUniqueReducibleEdge().
func (g *Graph) ReduceByUniqueEdge(e *Edge, h *history.History) error {
	if !e.IsUniqueReducibleEdge() {
		return errorf("Graph.ReduceByUniqueEdge", ErrNotReduceable, "edge is not unique-reducible")
	}
	v1, v2, eID := e.GetA(), e.GetB(), e.ID

	if err := g.RemoveEdge(e); err != nil {
		return err
	}

	newE1, v1E1ID, v1E2ID, err := g.GlueTwoIncidentEdges(v1)
	if err != nil {
		return err
	}
	newE2, v2E1ID, v2E2ID, err := g.GlueTwoIncidentEdges(v2)
	if err != nil {
		return err
	}

	h.Push(history.Step{
		V1ID: v1.ID, V2ID: v2.ID, EID: eID,
		V1E1ID: v1E1ID, V1E2ID: v1E2ID,
		V2E1ID: v2E1ID, V2E2ID: v2E2ID,
		ResultE1ID: newE1.ID, ResultE2ID: newE2.ID,
	})
	return nil
}

// ReduceByParallelEdge removes e and its duplicate parallel sibling,
// then contracts both now-leaf endpoints into a single new edge,
// pushing a Step onto h. Pre: e.IsParallelReducibleEdge().
func (g *Graph) ReduceByParallelEdge(e *Edge, h *history.History) error {
	if !e.IsParallelReducibleEdge() {
		return errorf("Graph.ReduceByParallelEdge", ErrNotReduceable, "edge is not parallel-reducible")
	}
	v1, v2, eID := e.GetA(), e.GetB(), e.ID

	if err := g.RemoveEdge(e); err != nil {
		return err
	}

	var dup *Edge
	for _, ve := range v1.edges {
		if other, err := ve.Other(v1); err == nil && other == v2 {
			dup = ve
			break
		}
	}
	if dup == nil {
		return errorf("Graph.ReduceByParallelEdge", ErrStructuralInconsistency, "expected duplicate parallel edge not found")
	}
	dupID := dup.ID
	if err := g.RemoveEdge(dup); err != nil {
		return err
	}

	v1E1ID, v2E1ID := v1.edges[0].ID, v2.edges[0].ID

	newE, isReversed, err := g.GlueTwoHangingEdges(v1, v2)
	if err != nil {
		return err
	}

	v1ID, v2ID := v1.ID, v2.ID
	if isReversed {
		v1ID, v2ID = v2ID, v1ID
		v1E1ID, v2E1ID = v2E1ID, v1E1ID
	}

	h.Push(history.Step{
		V1ID: v1ID, V2ID: v2ID, EID: eID,
		V1E1ID: v1E1ID, V1E2ID: dupID,
		V2E1ID: v2E1ID, V2E2ID: dupID,
		ResultE1ID: newE.ID, ResultE2ID: newE.ID,
	})
	return nil
}

// FullReduce repeatedly reduces the graph -- preferring a unique-edge
// reduction over a parallel-edge one whenever both are available --
// until neither reducible edge remains, pushing one Step per reduction
// onto h. It returns the number of reductions performed. Each step
// strictly decreases the vertex count, so the loop always terminates.
func (g *Graph) FullReduce(h *history.History) (int, error) {
	count := 0
	for {
		if e := g.GetUniqueReducibleEdge(); e != nil {
			if err := g.ReduceByUniqueEdge(e, h); err != nil {
				return count, err
			}
			count++
			continue
		}
		if e := g.GetParallelReducibleEdge(); e != nil {
			if err := g.ReduceByParallelEdge(e, h); err != nil {
				return count, err
			}
			count++
			continue
		}
		break
	}
	return count, nil
}
