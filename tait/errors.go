// File: errors.go
// Role: sentinel errors for the top-level Tait colorer.

package tait

import "errors"

// ErrColoringInfeasible is returned by Color when, during Case B of
// restore-and-repaint along a unique-edge step, neither candidate
// bicolor cycle seeded at the first result edge contains the second.
// This happens only for bridged cubic multigraphs that do not admit a
// Tait edge 3-coloring (e.g. members of the Petersen-graph family); no
// heuristic repair is attempted.
var ErrColoringInfeasible = errors.New("tait: no valid bicolor cycle found; graph does not admit a Tait coloring")
