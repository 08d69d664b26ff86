// File: graph_mutate.go
// Role: structural mutation primitives used by reduction and
// restoration: RemoveEdge/RemoveVertex, the two glue operations, and
// BubbleCubicGraphVertex (the glue-incident-edges inverse).
// AI-HINT (file):
//   - GlueTwoIncidentEdges assigns e1/e2 by the identifier of the far
//     endpoint, not by incidence-list position -- get the ordering
//     backwards and ReduceHistoryStep bookkeeping silently corrupts.

package core

// RemoveEdge detaches e from both endpoints' incidence lists and from
// the global edge catalog. Pre: e belongs to g.
func (g *Graph) RemoveEdge(e *Edge) error {
	if _, ok := g.edgeByID[e.ID]; !ok {
		return errorf("Graph.RemoveEdge", ErrEdgeNotFound, "")
	}
	e.GetA().removeEdge(e)
	e.GetB().removeEdge(e)
	delete(g.edgeByID, e.ID)
	for i, ge := range g.edges {
		if ge == e {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}
	return nil
}

// RemoveVertex removes v and every edge incident to it. Pre: v belongs
// to g.
func (g *Graph) RemoveVertex(v *Vertex) error {
	if _, ok := g.vertexByID[v.ID]; !ok {
		return errorf("Graph.RemoveVertex", ErrVertexNotFound, "")
	}
	incident := append([]*Edge(nil), v.edges...)
	for _, e := range incident {
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}
	delete(g.vertexByID, v.ID)
	for i, gv := range g.vertices {
		if gv == v {
			g.vertices = append(g.vertices[:i], g.vertices[i+1:]...)
			break
		}
	}
	return nil
}

// GlueTwoIncidentEdges contracts a degree-2 vertex v: its two incident
// edges (v,a) and (v,b) are removed along with v itself, and a single
// new edge (a,b) is added in their place. The returned e1ID/e2ID name
// the removed edge whose far endpoint has the smaller identifier first
// -- e1ID is the edge toward min(a.ID, b.ID), e2ID toward the other --
// which is exactly the bookkeeping a ReduceHistoryStep needs to invert
// this call later. Pre: v.Degree() == 2.
func (g *Graph) GlueTwoIncidentEdges(v *Vertex) (newEdge *Edge, e1ID, e2ID int, err error) {
	if v.Degree() != 2 {
		return nil, 0, 0, errorf("Graph.GlueTwoIncidentEdges", ErrDegreeMismatch, "vertex must have degree 2")
	}
	ea, eb := v.edges[0], v.edges[1]
	a, _ := ea.Other(v)
	b, _ := eb.Other(v)

	if a.ID < b.ID {
		e1ID, e2ID = ea.ID, eb.ID
	} else {
		e1ID, e2ID = eb.ID, ea.ID
	}

	if err = g.RemoveEdge(ea); err != nil {
		return nil, 0, 0, err
	}
	if err = g.RemoveEdge(eb); err != nil {
		return nil, 0, 0, err
	}
	if err = g.RemoveVertex(v); err != nil {
		return nil, 0, 0, err
	}
	newEdge = g.AddEdge(a, b)
	return newEdge, e1ID, e2ID, nil
}

// GlueTwoHangingEdges contracts two leaves v1, v2 into a single new
// edge between their respective (sole) neighbors a and b. isReversed
// reports whether a's identifier exceeds b's -- the caller (reduction
// bookkeeping) uses this to decide whether to swap the history record's
// v1/v2 and side-edge fields. Pre: v1.IsLeaf() && v2.IsLeaf().
func (g *Graph) GlueTwoHangingEdges(v1, v2 *Vertex) (newEdge *Edge, isReversed bool, err error) {
	if !v1.IsLeaf() || !v2.IsLeaf() {
		return nil, false, errorf("Graph.GlueTwoHangingEdges", ErrDegreeMismatch, "both vertices must be leaves")
	}
	e1, e2 := v1.edges[0], v2.edges[0]
	a, _ := e1.Other(v1)
	b, _ := e2.Other(v2)
	isReversed = a.ID > b.ID

	if err = g.RemoveEdge(e1); err != nil {
		return nil, false, err
	}
	if err = g.RemoveEdge(e2); err != nil {
		return nil, false, err
	}
	newEdge = g.AddEdge(a, b)
	if err = g.RemoveVertex(v1); err != nil {
		return nil, false, err
	}
	if err = g.RemoveVertex(v2); err != nil {
		return nil, false, err
	}
	return newEdge, isReversed, nil
}

// BubbleCubicGraphVertex is the inverse primitive of
// GlueTwoIncidentEdges: given a degree-3 vertex v, it splits v's first
// incident edge (v,u) by inserting a fresh degree-2 vertex w in its
// middle, replacing (v,u) with (v,w) and (w,u). v's own degree is
// unchanged; w is returned. Pre: v.Degree() == 3.
func (g *Graph) BubbleCubicGraphVertex(v *Vertex) (*Vertex, error) {
	if v.Degree() != 3 {
		return nil, errorf("Graph.BubbleCubicGraphVertex", ErrDegreeMismatch, "vertex must have degree 3")
	}
	e := v.edges[0]
	u, err := e.Other(v)
	if err != nil {
		return nil, err
	}
	if err := g.RemoveEdge(e); err != nil {
		return nil, err
	}
	w := g.NewVertex()
	g.AddEdge(v, w)
	g.AddEdge(w, u)
	return w, nil
}

// BubbleAnyCubicGraphVertex applies BubbleCubicGraphVertex to the first
// degree-3 vertex found in the graph's current vertex order. It returns
// ErrDegreeMismatch if no such vertex exists.
func (g *Graph) BubbleAnyCubicGraphVertex() (*Vertex, error) {
	for _, v := range g.vertices {
		if v.Degree() == 3 {
			return g.BubbleCubicGraphVertex(v)
		}
	}
	return nil, errorf("Graph.BubbleAnyCubicGraphVertex", ErrDegreeMismatch, "no degree-3 vertex in graph")
}
