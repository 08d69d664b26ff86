// Package bicolor implements BicolorCycle: a closed walk of edges whose
// colors strictly alternate between two fixed values, built by walking
// outward from a seed edge. This is the Kempe-chain primitive the tait
// package uses to recolor a pair of same-colored edges into distinct
// colors during restore-and-repaint.
//
// Errors: ErrEqualColors, ErrUnpaintedSeed, ErrBrokenAlternation (Build);
// ErrEdgeNotInCycle (SwitchColorsBetween).
package bicolor
