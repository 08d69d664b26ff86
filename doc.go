// Package caesarsub000 is the root of a toolkit for in-place edge
// 3-coloring of cubic (3-regular) multigraphs.
//
// What is this?
//
//	A library that takes any connected cubic multigraph and produces a
//	proper Tait edge 3-coloring by:
//
//	  - Reducing the graph to its minimal fixed point (two vertices, three
//	    parallel edges) via unique-edge and parallel-edge reductions
//	  - Trivially coloring that minimal graph
//	  - Walking the reduction history backwards, restoring and repainting
//	    each step via bicolor-cycle (Kempe-chain) recoloring
//
// Everything is organized under focused subpackages:
//
//	core/      - Vertex, Edge, Graph: the owning data model, its
//	             reduce/restore/glue mutation primitives, and the
//	             greedy baseline coloring
//	history/   - the reversible LIFO reduction history
//	bicolor/   - BicolorCycle extraction and recoloring
//	builder/   - graph construction factories (empty/edgeless/complete/
//	             cyclic/prism and their named specializations)
//	tait/      - the top-level coloring algorithm
//	render/    - a textual networkx-style emitter for colored graphs
//	cmd/caesar - a thin CLI driver exercising the above
//
// The core is single-threaded and synchronous by design: a *core.Graph is
// owned by exactly one caller for its entire lifetime; there is no
// built-in locking and no persistence.
package caesarsub000
