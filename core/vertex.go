// File: vertex.go
// Role: Vertex (C2) -- identifier plus ordered incident-edge references.
// Determinism:
//   - ArrangeEdgesIncreasingIDs is a stable sort; callers that need a
//     deterministic incidence order must call it explicitly or rely on
//     Graph.ArrangeObjectsIncreasingIDs (G5).
// AI-HINT (file):
//   - Vertex never mutates the owning Graph's vertex/edge catalogs; it
//     only edits its own incidence slice. Graph owns add/remove.

package core

import "sort"

// Vertex is a single node of a Graph: a stable identifier plus the
// ordered list of edges currently incident to it. A Vertex never
// outlives the Graph that created it (invariant V1): every edge in its
// incidence list must reference this vertex as one of its two
// endpoints.
type Vertex struct {
	ID    int
	edges []*Edge
}

// Degree returns the number of edges incident to v, counting parallel
// edges individually.
func (v *Vertex) Degree() int { return len(v.edges) }

// IsIsolated reports whether v has no incident edges.
func (v *Vertex) IsIsolated() bool { return len(v.edges) == 0 }

// IsLeaf reports whether v has exactly one incident edge.
func (v *Vertex) IsLeaf() bool { return len(v.edges) == 1 }

// Edges returns the incidence list. Callers must not mutate the
// returned slice; it aliases v's internal storage.
func (v *Vertex) Edges() []*Edge { return v.edges }

// IsAdjacent reports whether some edge incident to v connects it to u.
// Linear in v's degree.
func (v *Vertex) IsAdjacent(u *Vertex) bool {
	return v.FindEdge(u) != nil
}

// FindEdge returns the first incident edge whose opposite endpoint is
// u, or nil if none. Linear in v's degree.
func (v *Vertex) FindEdge(u *Vertex) *Edge {
	for _, e := range v.edges {
		if other, err := e.Other(v); err == nil && other == u {
			return e
		}
	}
	return nil
}

// Neighbour returns the endpoint of e opposite to v. e must be incident
// to v (E1); otherwise ErrEdgeNotFound is returned wrapping the
// precondition-violation error kind.
func (v *Vertex) Neighbour(e *Edge) (*Vertex, error) {
	return e.Other(v)
}

// HasParallelEdges reports whether two distinct edges incident to v
// share the same opposite endpoint. Quadratic in v's degree.
func (v *Vertex) HasParallelEdges() bool {
	for i := 0; i < len(v.edges); i++ {
		oi, err := v.edges[i].Other(v)
		if err != nil {
			continue
		}
		for j := i + 1; j < len(v.edges); j++ {
			oj, err := v.edges[j].Other(v)
			if err == nil && oi == oj {
				return true
			}
		}
	}
	return false
}

// IsEdgesColoringCorrect reports whether all incident edges with a
// non-negative color carry pairwise distinct colors (invariant V2).
func (v *Vertex) IsEdgesColoringCorrect() bool {
	seen := ColorableSet{}
	for _, e := range v.edges {
		if e.Color < 0 {
			continue
		}
		if seen.IsPainted(e.Color) {
			return false
		}
		seen.Paint(e.Color)
	}
	return true
}

// ArrangeEdgesIncreasingIDs stably sorts the incidence list by edge
// identifier, the per-vertex half of canonicalization (G5).
func (v *Vertex) ArrangeEdgesIncreasingIDs() {
	sort.SliceStable(v.edges, func(i, j int) bool {
		return v.edges[i].ID < v.edges[j].ID
	})
}

// addEdge appends e to the incidence list. Internal: callers (Graph)
// are responsible for maintaining E1 on the Edge side.
func (v *Vertex) addEdge(e *Edge) {
	v.edges = append(v.edges, e)
}

// removeEdge detaches the first occurrence of e from the incidence
// list. Internal: a no-op if e is not present.
func (v *Vertex) removeEdge(e *Edge) {
	for i, ve := range v.edges {
		if ve == e {
			v.edges = append(v.edges[:i], v.edges[i+1:]...)
			return
		}
	}
}
