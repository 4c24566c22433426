package graph

import "errors"

// Sentinel errors for graph construction and lookup. Callers branch with
// errors.Is; none of these are wrapped with formatted strings at the
// definition site — context is attached with %w at the call site.
var (
	// ErrNegativeWeight indicates an edge was supplied with a negative weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrDuplicateEdge indicates a duplicate directed edge was supplied while
	// strict mode (WithStrictEdges) is enabled.
	ErrDuplicateEdge = errors.New("graph: duplicate directed edge")
)
