// Package graph is the L1 layer of the walk engine: a compact, immutable,
// CSR-like in-memory graph supporting constant-time neighbor iteration and
// O(log degree) weighted edge lookup.
//
// A Graph is built once from an edge list via Build and is never mutated
// afterward — every exported method is a pure read. Neighbor slices are
// sorted ascending by node id; this ordering is a contract, not an
// implementation detail, because it fixes which alias-table slot (see
// package alias) corresponds to which neighbor.
//
// Node ids are dense integers in [0,N). An optional label dictionary
// (label ↔ id) supports translation at the boundary, and an optional
// per-node type tag supports the heterogeneous transition builder in
// package transition.
package graph
