// Package hn2v is a biased random-walk engine for building node-embedding
// training corpora over homogeneous and heterogeneous graphs.
//
// The engine is layered bottom-up:
//
//	graph/      — immutable CSR-like adjacency store (L1)
//	alias/      — Vose's-method O(1) weighted sampling primitive (L2)
//	transition/ — node2vec and HN2V second-order transition tables (L3)
//	walk/       — parallel second-order walk driver and co-occurrence
//	              reduction (L4)
//
// Supporting packages read external input (ingest/edgelist,
// ingest/neo4j), persist built transition tables (cache), resolve run
// configuration (config), and expose a command-line front end
// (cmd/hn2vwalk). package builder synthesizes small graphs for tests and
// examples.
//
// This package declares no symbols of its own; it exists to hold the
// module-level doc comment.
package hn2v
