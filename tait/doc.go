// Package tait implements the top-level Tait edge 3-coloring algorithm
// for connected cubic multigraphs: full-reduce to the minimal cubic
// graph, trivially color it, then pop the reduction history one step at
// a time, restoring structure and repainting via bicolor-cycle
// recoloring (the Kempe-chain argument) so every step preserves a valid
// 3-coloring.
//
// Color is the single entry point. It returns ErrColoringInfeasible for
// bridged cubic multigraphs (e.g. the Petersen graph) that do not admit
// a Tait coloring; every other error it returns is a core, history, or
// bicolor sentinel, either wrapped or returned as is.
package tait
