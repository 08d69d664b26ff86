// Package history implements the reversible reduction history a cubic
// multigraph full-reduce pass accumulates: a LIFO stack of immutable
// Steps, each recording exactly the identifiers a restore pass needs to
// invert one reduction.
//
// Errors: ErrEmpty on Peek/Pop against an empty History.
package history
