// Package render emits a textual networkx/matplotlib Python script
// describing a colored graph, for visualization outside the coloring
// core. It has no dependency on the core's algorithms, only on the
// data it reads (vertex and edge identifiers, edge colors).
package render
