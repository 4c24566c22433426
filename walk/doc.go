// Package walk drives parallel second-order random walks over a graph's
// precomputed transition tables, and reduces walks to (central, context,
// count) co-occurrence triples for downstream embedding training.
//
// A Driver holds one graph and one set of transition tables; per-walk state
// is confined to the walk slice itself and a per-worker RNG, so any number
// of walks can proceed concurrently without coordination beyond the output
// slot each belongs to.
package walk
