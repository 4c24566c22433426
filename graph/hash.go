package graph

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/codahale/thyrse"
)

// Hash returns a stable digest of the graph's identity: its directedness,
// its canonical (sorted) directed edge list, and its label dictionary.
// Labels and edges are mixed in node-id order, so the id mapping is part of
// the digest: two graphs with the same edges and the same label-to-id
// mapping hash identically whatever order the edges were given in, while
// an input order that assigns different first-seen ids (without
// WithNodeOrder) hashes differently. Callers can key cached derived
// artifacts (alias tables, see package cache) on this value.
//
// The digest is built as a thyrse transcript rather than a single
// crypto/sha256 sum so that later layers (package transition) can extend
// the same transcript with mode, parameters, and alias-table bytes without
// redefining the canonical encoding of the graph itself.
func (g *Graph) Hash() string {
	return hex.EncodeToString(g.transcript().Derive("graph-identity", nil, 32))
}

// Transcript returns a fresh, unfinalized thyrse protocol already mixed
// with this graph's identity, so that package transition can continue the
// same transcript with mode/parameter/alias-table fields instead of hashing
// the graph twice.
func (g *Graph) Transcript() *thyrse.Protocol {
	return g.transcript()
}

// transcript builds (but does not finalize) the thyrse protocol identifying
// this graph, so that callers needing to mix in additional fields (mode,
// p/q/gamma, alias tables) can continue the same transcript instead of
// hashing the graph twice.
func (g *Graph) transcript() *thyrse.Protocol {
	p := thyrse.New("hn2v.graph-identity")

	var directedByte [1]byte
	if g.directed {
		directedByte[0] = 1
	}
	p.Mix("directed", directedByte[:])

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(g.N()))
	p.Mix("node-count", lenBuf[:])

	for _, label := range g.labels {
		p.Mix("label", []byte(label))
	}

	buf := make([]byte, 16)
	for u := int32(0); u < g.N(); u++ {
		lo, hi := g.offsets[u], g.offsets[u+1]
		for i := lo; i < hi; i++ {
			binary.LittleEndian.PutUint32(buf[0:4], uint32(u))
			binary.LittleEndian.PutUint32(buf[4:8], uint32(g.nbrs[i]))
			binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(g.weights[i]))
			p.Mix("edge", buf)
		}
	}

	return p
}
