// Package core provides the undirected cubic-multigraph data model this
// toolkit colors: Vertex and Edge types carrying stable integer
// identifiers, and a Graph that owns them, allocates their identifiers,
// and exposes the structural mutation primitives (add/remove, the two
// glue operations, bubble) that the reduction and restoration
// algorithms are built from.
//
// Canonical ordering. After ArrangeObjectsIncreasingIDs, every vertex's
// incidence list is sorted by edge identifier, every edge's endpoint
// pair is sorted by vertex identifier, and the global vertex/edge lists
// are sorted by identifier. Reduction and restoration do not maintain
// this ordering step by step -- callers canonicalize when they need it
// (factories do it once at the end; RestoreAll does it once at the
// end).
//
// Concurrency. None: a *Graph is owned by exactly one caller for its
// entire lifetime. There is no locking anywhere in this package.
//
// Errors: ErrVertexNotFound, ErrEdgeNotFound, ErrLoopEdge,
// ErrDegreeMismatch, ErrNotReduceable, ErrStructuralInconsistency,
// ErrHistoryMismatch.
package core
