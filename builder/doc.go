// Package builder assembles core.Graph fixtures from a small set of
// deterministic topology factories (Empty, Trivial, Edgeless, Complete,
// Cyclic, Prism, and the named specializations Tetrahedron and Cube),
// composed through a single entry-point, Build.
//
// Every factory returns a Constructor; Build applies them in order to
// a fresh graph and canonicalizes the result. Constructors validate
// their own parameters and return sentinel errors; they never panic.
package builder
