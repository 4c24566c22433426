package graph

// NodeID is a dense integer node identifier in [0, N).
type NodeID = int32

// RawEdge is one row of the external edge-list input contract: an iterable
// of (u_label, v_label, weight?). Weight of 0 is treated as "not provided"
// and defaults to 1, matching the convention that weight(u,v) > 0 for every
// present edge.
type RawEdge struct {
	From   string
	To     string
	Weight float64
}

// Graph is the immutable CSR-like adjacency store.
//
// offsets has length N+1; the neighbors of node n occupy
// nbrs[offsets[n]:offsets[n+1]], sorted ascending by neighbor id, with a
// parallel weight in weights at the same positions. Both slices are built
// once in Build and never mutated, so Graph is safe for unsynchronized
// concurrent reads from any number of goroutines.
type Graph struct {
	directed bool

	offsets []int32
	nbrs    []int32
	weights []float64

	labels    []string       // id -> label, populated by Build for every node
	labelToID map[string]int32

	types     []int16 // id -> type id, populated by Build for every node
	typeNames []string // type id -> type name

	hasTraps bool // true iff at least one node has degree 0
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	directed    bool
	strict      bool
	typeFn      func(label string) string
	nodeOrder   []string // explicit label ordering; if nil, first-seen order is used
}

// WithDirected builds the graph from the edge list as given, without adding
// the mirror edge for each input row. Without this option, Build treats
// every input row as an undirected edge and stores both directed records.
func WithDirected() Option {
	return func(c *buildConfig) { c.directed = true }
}

// WithStrictEdges rejects duplicate directed edges with ErrDuplicateEdge
// instead of the default policy of accumulating their weights.
func WithStrictEdges() Option {
	return func(c *buildConfig) { c.strict = true }
}

// WithTypeFunc supplies an explicit type_of(node) -> tag function. Without
// it, the first character of the label is used as the type tag — a
// convenient default for labels like "g1"/"p1", kept as the fallback when
// no explicit function is given.
func WithTypeFunc(fn func(label string) string) Option {
	return func(c *buildConfig) { c.typeFn = fn }
}

// WithNodeOrder fixes the dense id assigned to each label, in the given
// order. Labels encountered in the edge list that are absent from order are
// appended afterward in first-seen order. Without this option, ids are
// assigned in first-seen order alone.
func WithNodeOrder(order []string) Option {
	return func(c *buildConfig) { c.nodeOrder = order }
}

// N returns the number of nodes.
func (g *Graph) N() int32 { return int32(len(g.offsets) - 1) }

// Directed reports whether the graph was built with WithDirected.
func (g *Graph) Directed() bool { return g.directed }

// HasTraps reports whether at least one node has zero out-degree. This is a
// graph-wide boolean computed once at build time.
func (g *Graph) HasTraps() bool { return g.hasTraps }

// Label returns the label of node n, or "" if n is out of range.
func (g *Graph) Label(n NodeID) string {
	if g.labels == nil || n < 0 || int(n) >= len(g.labels) {
		return ""
	}
	return g.labels[n]
}

// ID resolves a label to its dense node id.
func (g *Graph) ID(label string) (NodeID, bool) {
	id, ok := g.labelToID[label]
	return id, ok
}
