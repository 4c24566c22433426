package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/hn2v/graph"
)

const (
	minCycleNodes = 3
	minPathNodes  = 1
	minStarNodes  = 2
)

// Cycle returns the edge list of an n-vertex simple cycle C_n, vertices
// labeled "0".."n-1", edges emitted in ascending i, closing i=n-1 to 0.
func Cycle(n int) ([]graph.RawEdge, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleNodes, ErrTooFewVertices)
	}
	edges := make([]graph.RawEdge, n)
	for i := 0; i < n; i++ {
		edges[i] = graph.RawEdge{From: label(i), To: label((i + 1) % n), Weight: 1}
	}
	return edges, nil
}

// Path returns the edge list of an n-vertex simple path 0-1-...-(n-1).
func Path(n int) ([]graph.RawEdge, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < %d: %w", n, minPathNodes, ErrTooFewVertices)
	}
	if n == 1 {
		return nil, nil // single isolated vertex has no edges; callers use WithNodeOrder
	}
	edges := make([]graph.RawEdge, n-1)
	for i := 0; i < n-1; i++ {
		edges[i] = graph.RawEdge{From: label(i), To: label(i + 1), Weight: 1}
	}
	return edges, nil
}

// Star returns the edge list of an n-vertex star: center "0" connected to
// every leaf "1".."n-1".
func Star(n int) ([]graph.RawEdge, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < %d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	edges := make([]graph.RawEdge, n-1)
	for i := 1; i < n; i++ {
		edges[i-1] = graph.RawEdge{From: label(0), To: label(i), Weight: 1}
	}
	return edges, nil
}

// Grid returns the edge list of a rows x cols 4-neighbor lattice, vertices
// labeled "r,c".
func Grid(rows, cols int) ([]graph.RawEdge, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid: rows=%d cols=%d: %w", rows, cols, ErrTooFewVertices)
	}
	var edges []graph.RawEdge
	cell := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, graph.RawEdge{From: cell(r, c), To: cell(r, c+1), Weight: 1})
			}
			if r+1 < rows {
				edges = append(edges, graph.RawEdge{From: cell(r, c), To: cell(r+1, c), Weight: 1})
			}
		}
	}
	return edges, nil
}

// Complete returns the edge list of the complete graph K_n.
func Complete(n int) ([]graph.RawEdge, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Complete: n=%d < %d: %w", n, minStarNodes, ErrTooFewVertices)
	}
	edges := make([]graph.RawEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, graph.RawEdge{From: label(i), To: label(j), Weight: 1})
		}
	}
	return edges, nil
}

// Bipartite returns the edge list of the complete bipartite graph K_{nA,nB},
// with the two sides distinguishable by label prefix ("a"/"b") so the
// default first-character type convention reads them as two node types —
// a convenient heterogeneous-mode fixture.
func Bipartite(nA, nB int) ([]graph.RawEdge, error) {
	if nA < 1 || nB < 1 {
		return nil, fmt.Errorf("Bipartite: nA=%d nB=%d: %w", nA, nB, ErrTooFewVertices)
	}
	edges := make([]graph.RawEdge, 0, nA*nB)
	for i := 0; i < nA; i++ {
		for j := 0; j < nB; j++ {
			edges = append(edges, graph.RawEdge{From: fmt.Sprintf("a%d", i), To: fmt.Sprintf("b%d", j), Weight: 1})
		}
	}
	return edges, nil
}

// RandomSparse samples an Erdős–Rényi-style graph over n vertices with
// independent edge probability p, iterating unordered pairs {i,j}, i<j, in
// ascending order so the trial sequence (and hence the result, for a fixed
// rng state) is deterministic.
//
// rng must be non-nil whenever 0 < p < 1; p==0 and p==1 are allowed with a
// nil rng since no trial is stochastic in either extreme.
func RandomSparse(n int, p float64, rng *rand.Rand) ([]graph.RawEdge, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	var edges []graph.RawEdge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == 1:
				edges = append(edges, graph.RawEdge{From: label(i), To: label(j), Weight: 1})
			case p == 0:
				// no trial: zero probability of inclusion
			case rng.Float64() < p:
				edges = append(edges, graph.RawEdge{From: label(i), To: label(j), Weight: 1})
			}
		}
	}
	return edges, nil
}

func label(i int) string { return fmt.Sprintf("%d", i) }
