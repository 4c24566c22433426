// Package builder constructs synthetic edge lists for tests and examples:
// cycles, paths, stars, grids, and Erdős–Rényi-style random sparse graphs.
// Every constructor emits a deterministic []graph.RawEdge, the same input
// contract graph.Build accepts, rather than mutating a graph in place.
package builder
