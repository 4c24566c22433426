package walk

import (
	"context"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hn2v/transition"
)

// Driver samples second-order random walks from a graph and its
// precomputed transition tables. A Driver is immutable after construction
// and safe for concurrent use by any number of goroutines — every method
// only reads g and tbl, and writes exclusively to its own disjoint output
// slots.
type Driver struct {
	g   graphView
	tbl *transition.Tables
}

// NewDriver validates tbl against g and returns a ready Driver.
func NewDriver(g graphView, tbl *transition.Tables) (*Driver, error) {
	if tbl == nil || int32(len(tbl.Node)) != g.N() {
		return nil, ErrNotPreprocessed
	}
	return &Driver{g: g, tbl: tbl}, nil
}

// Walks runs numWalksPerStart epochs of walks, one per entry of starts per
// epoch, each of at most length nodes. Work is split across workers
// goroutines (GOMAXPROCS if workers <= 0); output rows are assembled into
// their canonical (epoch, start-index) position regardless of completion
// order or worker count, so Walks(workers=1) and any other worker count
// agree on row placement — only the per-row RNG stream (and hence content)
// depends on workers, exactly for the rows that stream touches.
//
// ctx is checked between walks, never mid-walk: a cancellation discards the
// whole partial result rather than returning a half-filled one.
func (d *Driver) Walks(ctx context.Context, starts []int32, numWalksPerStart, length int, seed int64, workers int) (Result, error) {
	if length < 2 {
		return Result{}, ErrInvalidLength
	}
	if len(starts) == 0 {
		starts = allNodes(d.g)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	// A node with edges but an all-zero transition distribution is marked a
	// trap by package transition and also ends walks early.
	ragged := d.g.HasTraps()
	for _, trap := range d.tbl.Trap {
		ragged = ragged || trap
	}
	if numWalksPerStart <= 0 {
		return Result{Rows: nil, Length: length, IsRagged: ragged}, nil
	}

	numStarts := len(starts)
	rows := make([][]int32, numWalksPerStart*numStarts)

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	for epoch := 0; epoch < numWalksPerStart; epoch++ {
		epoch := epoch
		perm := permRange(numStarts, rngFromSeed(epochSeed(seed, epoch)))
		chunkSize := (numStarts + workers - 1) / workers

		for w := 0; chunkSize > 0 && w*chunkSize < numStarts; w++ {
			w := w
			lo := w * chunkSize
			hi := lo + chunkSize
			if hi > numStarts {
				hi = numStarts
			}
			chunk := perm[lo:hi]

			grp.Go(func() error {
				rng := deriveWorkerRNG(seed, w, epoch)
				for _, startIdx := range chunk {
					if err := ctx.Err(); err != nil {
						return err
					}
					rows[epoch*numStarts+startIdx] = d.oneWalk(starts[startIdx], length, rng)
				}
				return nil
			})
		}
	}

	if err := grp.Wait(); err != nil {
		return Result{}, err
	}

	return Result{Rows: rows, Length: length, IsRagged: ragged}, nil
}

// oneWalk samples a single walk starting at start: the first step draws
// from the node table, every later step draws from the edge table keyed by
// (previous, current).
func (d *Driver) oneWalk(start int32, length int, rng *rand.Rand) []int32 {
	w := make([]int32, 1, length)
	w[0] = start

	for len(w) < length {
		cur := w[len(w)-1]
		if d.tbl.IsTrap(cur) {
			break
		}

		nbrs := d.g.Neighbors(cur)
		var idx int
		if len(w) == 1 {
			idx = d.tbl.Node[cur].Draw(rng)
		} else {
			prev := w[len(w)-2]
			edgeID, ok := d.g.EdgeID(prev, cur)
			if !ok {
				break // unreachable: cur was reached via this exact edge
			}
			idx = d.tbl.Edge[edgeID].Draw(rng)
		}
		w = append(w, nbrs[idx])
	}
	return w
}

func allNodes(g graphView) []int32 {
	n := g.N()
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i)
	}
	return out
}
