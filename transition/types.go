package transition

import (
	"time"

	"github.com/katalvlaran/hn2v/alias"
)

// Mode selects the transition-weighting scheme at construction; per-step
// sampling code is monomorphic over it afterward.
type Mode int

const (
	// Homogeneous is plain node2vec p/q biasing.
	Homogeneous Mode = iota
	// Heterogeneous layers a γ-controlled type-mixing factor under the same
	// p/q biasing (HN2V).
	Heterogeneous
)

func (m Mode) String() string {
	switch m {
	case Homogeneous:
		return "homogeneous"
	case Heterogeneous:
		return "heterogeneous"
	default:
		return "unknown"
	}
}

// Params holds the numeric bias parameters. Gamma is only consulted in
// Heterogeneous mode.
type Params struct {
	P     float64
	Q     float64
	Gamma float64
}

// validate rejects out-of-range bias parameters before Build does any work.
func (p Params) validate(mode Mode) error {
	if p.P <= 0 {
		return ErrInvalidP
	}
	if p.Q <= 0 {
		return ErrInvalidQ
	}
	if mode == Heterogeneous && p.Gamma < 0 {
		return ErrInvalidGamma
	}
	return nil
}

// Tables is the complete set of alias tables a walk driver samples from.
// Node holds one first-step table per node, indexed by node id. Edge holds
// one second-order table per directed edge, indexed by the same absolute
// position graph.Graph uses internally for that edge (see graph.Graph.EdgeID)
// — so the walk driver, standing at node v having arrived from u, looks up
// its table via the CSR index of (u,v) rather than a map keyed on a pair.
//
// Trap marks which nodes have no outgoing table (zero out-degree); Node and
// Edge entries for a trap node are left as the Table zero value and must not
// be sampled.
type Tables struct {
	Mode   Mode
	Params Params

	Node []alias.Table
	Edge []alias.Table
	Trap []bool
}

// IsTrap reports whether node n has no first-step table.
func (t *Tables) IsTrap(n int32) bool {
	if n < 0 || int(n) >= len(t.Trap) {
		return true
	}
	return t.Trap[n]
}

// Diagnostics is the structured report Build returns in place of writing to
// a process-wide logger — the core layers report outcomes to their direct
// caller instead of logging themselves.
type Diagnostics struct {
	TrapsSkipped int
	NodesBuilt   int
	EdgesBuilt   int
	Duration     time.Duration
}
