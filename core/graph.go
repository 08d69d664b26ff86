// File: graph.go
// Role: Graph (C4) -- owning container, identifier allocation, canonical
// arrangement (G5), and structural queries.
// Determinism:
//   - NewVertex/AddEdge hand out strictly increasing identifiers; the
//     *WithID variants accept an explicit identifier and advance the
//     allocator past it so it is never reused.
// Concurrency:
//   - None. A *Graph is owned by exactly one caller for its entire
//     lifetime (see SPEC_FULL.md Sec 5); there is no internal locking.
// AI-HINT (file):
//   - Vertices/edges are never removed from the catalogs except through
//     RemoveVertex/RemoveEdge in graph_mutate.go; everything here only
//     adds to, reads, or reorders the catalogs.

package core

import "sort"

// Graph is the sole owner of a set of vertices and edges. It maintains
// two monotonic identifier allocators and, after
// ArrangeObjectsIncreasingIDs, the canonical ordering G5 describes.
type Graph struct {
	vertices []*Vertex
	edges    []*Edge

	vertexByID map[int]*Vertex
	edgeByID   map[int]*Edge

	maxVertexID int
	maxEdgeID   int
}

// NewGraph returns an empty graph: no vertices, no edges.
func NewGraph() *Graph {
	return &Graph{
		vertexByID: make(map[int]*Vertex),
		edgeByID:   make(map[int]*Edge),
	}
}

// Order returns |V|.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns |E|.
func (g *Graph) Size() int { return len(g.edges) }

// Vertices returns the owned vertex list. Callers must not mutate the
// returned slice; it aliases g's internal storage.
func (g *Graph) Vertices() []*Vertex { return g.vertices }

// Edges returns the owned edge list. Callers must not mutate the
// returned slice; it aliases g's internal storage.
func (g *Graph) Edges() []*Edge { return g.edges }

// IsEmpty reports whether the graph has no vertices at all.
func (g *Graph) IsEmpty() bool { return len(g.vertices) == 0 }

// IsEdgeless reports whether the graph has no edges, regardless of
// order.
func (g *Graph) IsEdgeless() bool { return len(g.edges) == 0 }

// IsTrivial reports whether the graph has exactly one vertex (and,
// since loops are forbidden by G1, necessarily no edges).
func (g *Graph) IsTrivial() bool { return len(g.vertices) == 1 }

// IsComplete reports whether every pair of distinct vertices is
// adjacent. O(V^2) in the worst case.
func (g *Graph) IsComplete() bool {
	n := len(g.vertices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.vertices[i].IsAdjacent(g.vertices[j]) {
				return false
			}
		}
	}
	return true
}

// IsRegular reports whether every vertex has degree exactly d.
func (g *Graph) IsRegular(d int) bool {
	for _, v := range g.vertices {
		if v.Degree() != d {
			return false
		}
	}
	return true
}

// IsCubic reports whether the graph is 3-regular.
func (g *Graph) IsCubic() bool { return g.IsRegular(3) }

// IsMinimalCubic reports whether the graph is the fixed point of
// full-reduce: two vertices joined by three parallel edges.
func (g *Graph) IsMinimalCubic() bool { return g.Order() == 2 && g.Size() == 3 }

// HasParallelEdges reports whether any two distinct edges in the graph
// share the same pair of endpoints.
func (g *Graph) HasParallelEdges() bool {
	for _, v := range g.vertices {
		if v.HasParallelEdges() {
			return true
		}
	}
	return false
}

// IsEdgesColoringCorrect reports whether every vertex's incident edges
// carry pairwise distinct non-negative colors (P1, checked vertex by
// vertex).
func (g *Graph) IsEdgesColoringCorrect() bool {
	for _, v := range g.vertices {
		if !v.IsEdgesColoringCorrect() {
			return false
		}
	}
	return true
}

// FindVertexByID returns the vertex with the given identifier.
func (g *Graph) FindVertexByID(id int) (*Vertex, error) {
	v, ok := g.vertexByID[id]
	if !ok {
		return nil, errorf("Graph.FindVertexByID", ErrVertexNotFound, "")
	}
	return v, nil
}

// FindEdgeByID returns the edge with the given identifier.
func (g *Graph) FindEdgeByID(id int) (*Edge, error) {
	e, ok := g.edgeByID[id]
	if !ok {
		return nil, errorf("Graph.FindEdgeByID", ErrEdgeNotFound, "")
	}
	return e, nil
}

// NewVertex allocates a fresh vertex with the next available identifier.
func (g *Graph) NewVertex() *Vertex {
	id := g.maxVertexID
	g.maxVertexID++
	return g.newVertexWithID(id)
}

// NewVertexWithID allocates a vertex with an explicit identifier,
// advancing the allocator past it so the identifier is never reused.
// Used when reconstructing a graph from reduction history.
func (g *Graph) NewVertexWithID(id int) *Vertex {
	if id >= g.maxVertexID {
		g.maxVertexID = id + 1
	}
	return g.newVertexWithID(id)
}

func (g *Graph) newVertexWithID(id int) *Vertex {
	v := &Vertex{ID: id}
	g.vertices = append(g.vertices, v)
	g.vertexByID[id] = v
	return v
}

// AddEdge appends a new edge between a and b with the next available
// identifier. Endpoints are stored in identifier-increasing order (E2).
// It does not check for parallel edges or loops; AddUniqueEdge rejects
// parallels only, so callers that must forbid loops check themselves.
func (g *Graph) AddEdge(a, b *Vertex) *Edge {
	id := g.maxEdgeID
	g.maxEdgeID++
	return g.addEdgeWithID(a, b, id)
}

// AddEdgeWithID appends a new edge with an explicit identifier,
// advancing the allocator past it. Used during history restoration.
func (g *Graph) AddEdgeWithID(a, b *Vertex, id int) *Edge {
	if id >= g.maxEdgeID {
		g.maxEdgeID = id + 1
	}
	return g.addEdgeWithID(a, b, id)
}

func (g *Graph) addEdgeWithID(a, b *Vertex, id int) *Edge {
	e := &Edge{ID: id, Color: UnpaintedColor, ends: [2]*Vertex{a, b}}
	e.ArrangeVerticesIncreasingIDs()
	a.addEdge(e)
	b.addEdge(e)
	g.edges = append(g.edges, e)
	g.edgeByID[id] = e
	return e
}

// AddUniqueEdge adds an edge between a and b only if they are not
// already adjacent; returns nil if they already are.
func (g *Graph) AddUniqueEdge(a, b *Vertex) *Edge {
	if a.IsAdjacent(b) {
		return nil
	}
	return g.AddEdge(a, b)
}

// AddCycle adds the edges (i,i+1), (i+1,i+2), ..., (j-1,j), (i,j)
// between already-existing vertices identified by i..j.
func (g *Graph) AddCycle(i, j int) error {
	for id := i; id < j; id++ {
		va, err := g.FindVertexByID(id)
		if err != nil {
			return errorf("Graph.AddCycle", ErrVertexNotFound, "")
		}
		vb, err := g.FindVertexByID(id + 1)
		if err != nil {
			return errorf("Graph.AddCycle", ErrVertexNotFound, "")
		}
		g.AddEdge(va, vb)
	}
	vi, err := g.FindVertexByID(i)
	if err != nil {
		return errorf("Graph.AddCycle", ErrVertexNotFound, "")
	}
	vj, err := g.FindVertexByID(j)
	if err != nil {
		return errorf("Graph.AddCycle", ErrVertexNotFound, "")
	}
	g.AddEdge(vi, vj)
	return nil
}

// ArrangeObjectsIncreasingIDs canonicalizes the graph (G5): every
// vertex's incidence list is sorted by edge identifier, every edge's
// endpoint pair is sorted by vertex identifier, and the global vertex
// and edge lists are sorted by identifier. max{Vertex,Edge}ID are
// refreshed from the sorted lists' tails.
func (g *Graph) ArrangeObjectsIncreasingIDs() {
	for _, v := range g.vertices {
		v.ArrangeEdgesIncreasingIDs()
	}
	for _, e := range g.edges {
		e.ArrangeVerticesIncreasingIDs()
	}
	sort.SliceStable(g.vertices, func(i, j int) bool { return g.vertices[i].ID < g.vertices[j].ID })
	sortEdgesByID(g.edges)

	if n := len(g.vertices); n > 0 {
		g.maxVertexID = g.vertices[n-1].ID + 1
	} else {
		g.maxVertexID = 0
	}
	if n := len(g.edges); n > 0 {
		g.maxEdgeID = g.edges[n-1].ID + 1
	} else {
		g.maxEdgeID = 0
	}
}

// Clone returns a deep copy of g: fresh vertices and edges with the
// same identifiers, colors, topology, and allocator state. The clone
// shares no pointers with g.
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for _, v := range g.vertices {
		clone.NewVertexWithID(v.ID)
	}
	for _, e := range g.edges {
		a, _ := clone.FindVertexByID(e.GetA().ID)
		b, _ := clone.FindVertexByID(e.GetB().ID)
		ne := clone.AddEdgeWithID(a, b, e.ID)
		ne.Color = e.Color
	}
	clone.maxVertexID = g.maxVertexID
	clone.maxEdgeID = g.maxEdgeID
	return clone
}

// IsStronglyIsomorphic reports whether a and b are identifier-identical
// up to canonical ordering: after both are canonicalized they must have
// the same vertex identifier sequence and the same (id, endpoint-ids)
// tuples for every edge. This is a round-trip test helper, not a
// general graph isomorphism check (SPEC_FULL.md Sec 9).
func IsStronglyIsomorphic(a, b *Graph) bool {
	a.ArrangeObjectsIncreasingIDs()
	b.ArrangeObjectsIncreasingIDs()

	if len(a.vertices) != len(b.vertices) || len(a.edges) != len(b.edges) {
		return false
	}
	for i := range a.vertices {
		if a.vertices[i].ID != b.vertices[i].ID {
			return false
		}
	}
	for i := range a.edges {
		ea, eb := a.edges[i], b.edges[i]
		if ea.ID != eb.ID {
			return false
		}
		if ea.GetA().ID != eb.GetA().ID || ea.GetB().ID != eb.GetB().ID {
			return false
		}
	}
	return true
}
