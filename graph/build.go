package graph

import (
	"fmt"
	"sort"
)

// directedRecord is one (from,to,weight) tuple before CSR compaction.
type directedRecord struct {
	from, to int32
	weight   float64
}

// Build normalizes a raw edge list so its CSR invariants hold: neighbor
// slices sorted ascending, undirected symmetry (unless WithDirected), and
// exactly one directed record per (from,to) pair.
//
// Weight of 0 on an input row means "not provided" and defaults to 1.
// Negative weights fail with ErrNegativeWeight. Duplicate directed edges
// accumulate weight unless WithStrictEdges is set, in which case they fail
// with ErrDuplicateEdge.
//
// Complexity: O(E log E) for the sort that fixes neighbor ordering.
func Build(edges []RawEdge, opts ...Option) (*Graph, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	labelToID := make(map[string]int32, len(cfg.nodeOrder)+2*len(edges))
	labels := make([]string, 0, len(cfg.nodeOrder)+2*len(edges))

	internLabel := func(label string) int32 {
		if id, ok := labelToID[label]; ok {
			return id
		}
		id := int32(len(labels))
		labelToID[label] = id
		labels = append(labels, label)
		return id
	}

	for _, label := range cfg.nodeOrder {
		internLabel(label)
	}

	records := make([]directedRecord, 0, 2*len(edges))
	for _, e := range edges {
		w := e.Weight
		if w == 0 {
			w = 1
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: (%s,%s)=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		u := internLabel(e.From)
		v := internLabel(e.To)
		records = append(records, directedRecord{from: u, to: v, weight: w})
		if !cfg.directed && u != v {
			records = append(records, directedRecord{from: v, to: u, weight: w})
		}
	}

	n := int32(len(labels))

	sort.Slice(records, func(i, j int) bool {
		if records[i].from != records[j].from {
			return records[i].from < records[j].from
		}
		return records[i].to < records[j].to
	})

	// Compact duplicates: either accumulate weight or reject, per cfg.strict.
	compacted := records[:0:0]
	for i := 0; i < len(records); {
		j := i + 1
		w := records[i].weight
		for j < len(records) && records[j].from == records[i].from && records[j].to == records[i].to {
			if cfg.strict {
				return nil, fmt.Errorf("%w: (%d,%d)", ErrDuplicateEdge, records[i].from, records[i].to)
			}
			w += records[j].weight
			j++
		}
		compacted = append(compacted, directedRecord{from: records[i].from, to: records[i].to, weight: w})
		i = j
	}
	records = compacted

	offsets := make([]int32, n+1)
	for _, r := range records {
		offsets[r.from+1]++
	}
	for i := int32(0); i < n; i++ {
		offsets[i+1] += offsets[i]
	}

	nbrs := make([]int32, len(records))
	weights := make([]float64, len(records))
	cursor := append([]int32(nil), offsets[:n]...)
	for _, r := range records {
		slot := cursor[r.from]
		nbrs[slot] = r.to
		weights[slot] = r.weight
		cursor[r.from]++
	}

	var hasTraps bool
	for i := int32(0); i < n; i++ {
		if offsets[i+1] == offsets[i] {
			hasTraps = true
			break
		}
	}

	g := &Graph{
		directed:  cfg.directed,
		offsets:   offsets,
		nbrs:      nbrs,
		weights:   weights,
		labels:    labels,
		labelToID: labelToID,
		hasTraps:  hasTraps,
	}
	g.assignTypes(cfg.typeFn)

	return g, nil
}

// assignTypes populates g.types/g.typeNames. With no explicit typeFn, the
// type tag is derived from the first character of the node's label — a
// brittle but convenient fallback when no explicit type_of function is
// supplied.
func (g *Graph) assignTypes(typeFn func(string) string) {
	fn := typeFn
	if fn == nil {
		fn = firstCharType
	}

	nameToID := make(map[string]int16)
	types := make([]int16, len(g.labels))
	names := make([]string, 0, 8)
	for i, label := range g.labels {
		tag := fn(label)
		id, ok := nameToID[tag]
		if !ok {
			id = int16(len(names))
			nameToID[tag] = id
			names = append(names, tag)
		}
		types[i] = id
	}
	g.types = types
	g.typeNames = names
}

// firstCharType is the default type_of implementation: the first byte of
// the label, e.g. "g42" -> "g". Empty labels map to the empty type.
func firstCharType(label string) string {
	if label == "" {
		return ""
	}
	return label[:1]
}
