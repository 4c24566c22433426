// Package alias implements Vose's alias method: an O(k) construction and
// O(1) sampler for a discrete distribution over k outcomes.
//
// A Table is the pair (J, Q) from the classical presentation: J holds alias
// indices, Q holds per-slot acceptance probabilities in [0,1]. Draw samples
// two uniforms and returns either the slot index or its alias in one
// branch, with exactly two RNG calls per draw.
package alias
