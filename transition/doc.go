// Package transition builds the first-step and second-order alias tables a
// walk driver samples from: one node-keyed table per node (the first step of
// any walk) and one edge-keyed table per directed edge (every step after
// the first, biased by the p/q/γ parameters of the chosen mode).
//
// Homogeneous mode reduces to node2vec's p/q bias. Heterogeneous mode layers
// a per-neighbor type-mixing factor on top, controlled by γ, before the same
// p/q bias is applied. Both modes are resolved once at Build time into a
// single tagged Tables value; per-step sampling code never branches on mode.
package transition
