package transition

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hn2v/alias"
)

// Build computes the complete set of first-step and second-order alias
// tables for g under mode and params. Node and edge construction are
// data-parallel across nodes with no shared mutable state beyond each
// goroutine's own write-once rows of Node/Edge, distributed across
// GOMAXPROCS workers via an errgroup.
//
// A node with zero out-degree contributes no table and is counted as a trap
// rather than failing the whole build.
func Build(ctx context.Context, g graphView, mode Mode, params Params) (*Tables, Diagnostics, error) {
	if err := params.validate(mode); err != nil {
		return nil, Diagnostics{}, err
	}

	n := g.N()
	tbl := &Tables{
		Mode:   mode,
		Params: params,
		Node:   make([]alias.Table, n),
		Edge:   make([]alias.Table, totalDirectedEdges(g)),
		Trap:   make([]bool, n),
	}

	var trapCount, nodesBuilt, edgesBuilt int64
	start := time.Now()

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.GOMAXPROCS(0))

	for v := int32(0); v < n; v++ {
		v := v
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if g.Degree(v) == 0 {
				tbl.Trap[v] = true
				atomic.AddInt64(&trapCount, 1)
				return nil
			}

			factors := typeFactors(g, mode, params.Gamma, v)
			nbrs := g.Neighbors(v)
			weights := g.NeighborWeights(v)

			nodeWeights := make([]float64, len(nbrs))
			for i := range nbrs {
				nodeWeights[i] = weights[i] * factor(factors, i)
			}
			nodeTable, err := alias.NewFromWeights(nodeWeights)
			if err != nil {
				tbl.Trap[v] = true
				atomic.AddInt64(&trapCount, 1)
				return nil
			}
			tbl.Node[v] = nodeTable
			atomic.AddInt64(&nodesBuilt, 1)

			prev := v
			for _, cur := range nbrs {
				edgeID, ok := g.EdgeID(prev, cur)
				if !ok {
					continue // unreachable: cur came from g.Neighbors(prev)
				}
				if g.Degree(cur) == 0 {
					continue // cur is itself a trap; leave Edge[edgeID] zero-valued
				}

				curNbrs := g.Neighbors(cur)
				curWeights := g.NeighborWeights(cur)
				curFactors := typeFactors(g, mode, params.Gamma, cur)

				edgeWeights := make([]float64, len(curNbrs))
				for j, x := range curNbrs {
					w := curWeights[j] * factor(curFactors, j)
					switch {
					case x == prev:
						w /= params.P
					case g.HasEdge(prev, x):
						// unchanged: distance-1 from prev
					default:
						w /= params.Q
					}
					edgeWeights[j] = w
				}

				edgeTable, err := alias.NewFromWeights(edgeWeights)
				if err != nil {
					continue // all-zero weights also fail cur's own node table, so cur is a trap and this entry is never sampled
				}
				tbl.Edge[edgeID] = edgeTable
				atomic.AddInt64(&edgesBuilt, 1)
			}
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, Diagnostics{}, err
	}

	return tbl, Diagnostics{
		TrapsSkipped: int(trapCount),
		NodesBuilt:   int(nodesBuilt),
		EdgesBuilt:   int(edgesBuilt),
		Duration:     time.Since(start),
	}, nil
}

func factor(factors []float64, i int) float64 {
	if factors == nil {
		return 1
	}
	return factors[i]
}

// totalDirectedEdges sums out-degree over every node, the size package graph
// allocates its CSR neighbor array to — giving Build the matching size for
// Tables.Edge without graphView exposing the raw edge count directly.
func totalDirectedEdges(g graphView) int32 {
	var total int32
	for v := int32(0); v < g.N(); v++ {
		total += g.Degree(v)
	}
	return total
}
