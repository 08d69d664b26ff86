// File: edge.go
// Role: Edge (C3) -- identifier, color, ordered endpoint pair, and the
// two cubic-graph reducibility predicates this algorithm hinges on.
// AI-HINT (file):
//   - IsUniqueReducibleEdge / IsParallelReducibleEdge are the edge
//     patterns the full-reduce loop scans for; get the degree-3 and
//     distinctness checks exactly right or reduction silently mis-fires.

package core

import "sort"

// UnpaintedColor is the sentinel color value meaning "not yet painted".
const UnpaintedColor = -1

// Edge is a single edge of a Graph: a stable identifier, a current
// color (UnpaintedColor until painted), and exactly two endpoint
// references. After ArrangeVerticesIncreasingIDs, ends[0].ID <=
// ends[1].ID (invariant E2).
type Edge struct {
	ID    int
	Color int
	ends  [2]*Vertex
}

// IsLoop reports whether both endpoints are the same vertex. Invariant
// G1 forbids this from ever being true for an edge added through the
// public Graph API.
func (e *Edge) IsLoop() bool { return e.ends[0] == e.ends[1] }

// IsIncident reports whether v is one of e's two endpoints.
func (e *Edge) IsIncident(v *Vertex) bool {
	return e.ends[0] == v || e.ends[1] == v
}

// GetEnd returns endpoint i (0 or 1). Any other index returns nil.
func (e *Edge) GetEnd(i int) *Vertex {
	if i != 0 && i != 1 {
		return nil
	}
	return e.ends[i]
}

// GetA returns the first endpoint.
func (e *Edge) GetA() *Vertex { return e.ends[0] }

// GetB returns the second endpoint.
func (e *Edge) GetB() *Vertex { return e.ends[1] }

// Other returns the endpoint of e opposite to v. v must be one of e's
// endpoints (E1); otherwise the precondition-violation error kind is
// surfaced as ErrEdgeNotFound.
func (e *Edge) Other(v *Vertex) (*Vertex, error) {
	switch v {
	case e.ends[0]:
		return e.ends[1], nil
	case e.ends[1]:
		return e.ends[0], nil
	default:
		return nil, errorf("Edge.Other", ErrEdgeNotFound, "vertex is not an endpoint of this edge")
	}
}

// ArrangeVerticesIncreasingIDs sorts the endpoint pair so the smaller
// identifier comes first (invariant E2).
func (e *Edge) ArrangeVerticesIncreasingIDs() {
	if e.ends[0] != nil && e.ends[1] != nil && e.ends[0].ID > e.ends[1].ID {
		e.ends[0], e.ends[1] = e.ends[1], e.ends[0]
	}
}

// IsUniqueReducibleEdge reports whether this edge is the center of a
// unique-edge reduction: both endpoints have degree 3 and neither
// endpoint has parallel edges (P2).
func (e *Edge) IsUniqueReducibleEdge() bool {
	a, b := e.ends[0], e.ends[1]
	if a.Degree() != 3 || b.Degree() != 3 {
		return false
	}
	return !a.HasParallelEdges() && !b.HasParallelEdges()
}

// IsParallelReducibleEdge reports whether this edge is one of exactly
// two parallel edges joining two degree-3 endpoints whose remaining
// (non-parallel) neighbors are distinct vertices (P2).
func (e *Edge) IsParallelReducibleEdge() bool {
	a, b := e.ends[0], e.ends[1]
	if a.Degree() != 3 || b.Degree() != 3 {
		return false
	}

	var aCount int
	var otherOfA *Vertex
	for _, ae := range a.edges {
		n, err := ae.Other(a)
		if err != nil {
			continue
		}
		if n == b {
			aCount++
		} else {
			otherOfA = n
		}
	}

	var bCount int
	var otherOfB *Vertex
	for _, be := range b.edges {
		n, err := be.Other(b)
		if err != nil {
			continue
		}
		if n == a {
			bCount++
		} else {
			otherOfB = n
		}
	}

	return aCount == 2 && bCount == 2 && otherOfA != otherOfB
}

// GreedyPaint assigns this edge the smallest non-negative color absent
// from the union of colors already painted on edges incident to either
// endpoint.
func (e *Edge) GreedyPaint() {
	used := ColorableSet{}
	paint := func(v *Vertex) {
		for _, ve := range v.edges {
			if ve.Color >= 0 {
				used.Paint(ve.Color)
			}
		}
	}
	paint(e.ends[0])
	paint(e.ends[1])
	e.Color = used.FirstFreeColor()
}

// sortEdgesByID stably sorts a slice of edges by identifier; used by
// Graph.ArrangeObjectsIncreasingIDs for the global edge list (G5).
func sortEdgesByID(edges []*Edge) {
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })
}
