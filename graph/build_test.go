package graph_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/katalvlaran/hn2v/graph"
)

func triangle(t require.TestingT) *graph.Graph {
	g, err := graph.Build([]graph.RawEdge{
		{From: "A", To: "B"},
		{From: "B", To: "C"},
		{From: "A", To: "C"},
	})
	require.NoError(t, err)
	return g
}

func TestBuild_UndirectedSymmetry(t *testing.T) {
	g := triangle(t)
	require.Equal(t, int32(3), g.N())

	for u := int32(0); u < g.N(); u++ {
		for _, v := range g.Neighbors(u) {
			assert.True(t, g.HasEdge(v, u), "symmetry: %d->%d present but not %d->%d", u, v, v, u)
			assert.Equal(t, g.Weight(u, v), g.Weight(v, u))
		}
	}
}

func TestBuild_NeighborsSortedAscending(t *testing.T) {
	g := triangle(t)
	for u := int32(0); u < g.N(); u++ {
		nbrs := g.Neighbors(u)
		for i := 1; i < len(nbrs); i++ {
			assert.Less(t, nbrs[i-1], nbrs[i])
		}
	}
}

func TestBuild_DefaultWeightIsOne(t *testing.T) {
	g := triangle(t)
	a, _ := g.ID("A")
	b, _ := g.ID("B")
	assert.Equal(t, 1.0, g.Weight(a, b))
}

func TestBuild_NegativeWeightRejected(t *testing.T) {
	_, err := graph.Build([]graph.RawEdge{{From: "A", To: "B", Weight: -1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrNegativeWeight))
}

func TestBuild_DuplicateEdgeAccumulatesByDefault(t *testing.T) {
	g, err := graph.Build([]graph.RawEdge{
		{From: "A", To: "B", Weight: 2},
		{From: "A", To: "B", Weight: 3},
	}, graph.WithDirected())
	require.NoError(t, err)
	a, _ := g.ID("A")
	b, _ := g.ID("B")
	assert.Equal(t, 5.0, g.Weight(a, b))
}

func TestBuild_StrictRejectsDuplicateEdge(t *testing.T) {
	_, err := graph.Build([]graph.RawEdge{
		{From: "A", To: "B"},
		{From: "A", To: "B"},
	}, graph.WithDirected(), graph.WithStrictEdges())
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrDuplicateEdge))
}

func TestBuild_DirectedModeDoesNotSymmetrize(t *testing.T) {
	g, err := graph.Build([]graph.RawEdge{{From: "A", To: "B"}}, graph.WithDirected())
	require.NoError(t, err)
	a, _ := g.ID("A")
	b, _ := g.ID("B")
	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(b, a))
}

func TestBuild_HasTraps(t *testing.T) {
	g, err := graph.Build([]graph.RawEdge{{From: "0", To: "1"}, {From: "1", To: "2"}}, graph.WithDirected())
	require.NoError(t, err)
	assert.True(t, g.HasTraps(), "node 2 has no outgoing edges in directed mode")

	g2 := triangle(t)
	assert.False(t, g2.HasTraps())
}

func TestBuild_DefaultTypeIsFirstCharacter(t *testing.T) {
	g, err := graph.Build([]graph.RawEdge{{From: "g0", To: "p1"}})
	require.NoError(t, err)
	g0, _ := g.ID("g0")
	p1, _ := g.ID("p1")
	assert.Equal(t, "g", g.NodeType(g0))
	assert.Equal(t, "p", g.NodeType(p1))
}

func TestBuild_ExplicitTypeFunc(t *testing.T) {
	g, err := graph.Build([]graph.RawEdge{{From: "gene-1", To: "prot-1"}}, graph.WithTypeFunc(func(label string) string {
		if len(label) >= 4 && label[:4] == "gene" {
			return "gene"
		}
		return "other"
	}))
	require.NoError(t, err)
	n, _ := g.ID("gene-1")
	assert.Equal(t, "gene", g.NodeType(n))
}

func TestHash_OrderIndependent(t *testing.T) {
	g1, err := graph.Build([]graph.RawEdge{{From: "A", To: "B"}, {From: "B", To: "C"}})
	require.NoError(t, err)
	// Ids are assigned in first-seen order and are part of the digest, so the
	// reordered input pins the same id mapping with WithNodeOrder.
	g2, err := graph.Build([]graph.RawEdge{{From: "B", To: "C"}, {From: "A", To: "B"}}, graph.WithNodeOrder([]string{"A", "B", "C"}))
	require.NoError(t, err)
	assert.Equal(t, g1.Hash(), g2.Hash())
}

func TestHash_DiffersOnWeight(t *testing.T) {
	g1, err := graph.Build([]graph.RawEdge{{From: "A", To: "B", Weight: 1}})
	require.NoError(t, err)
	g2, err := graph.Build([]graph.RawEdge{{From: "A", To: "B", Weight: 2}})
	require.NoError(t, err)
	assert.NotEqual(t, g1.Hash(), g2.Hash())
}

// TestProperty_NeighborsAlwaysSortedAndSymmetric generates random undirected
// edge lists and checks that neighbor slices stay sorted and symmetric.
func TestProperty_NeighborsAlwaysSortedAndSymmetric(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		numNodes := rapid.IntRange(1, 12).Draw(rt, "numNodes")
		numEdges := rapid.IntRange(0, 30).Draw(rt, "numEdges")
		rng := rand.New(rand.NewSource(int64(numNodes*1000 + numEdges)))

		edges := make([]graph.RawEdge, 0, numEdges)
		for i := 0; i < numEdges; i++ {
			u := rng.Intn(numNodes)
			v := rng.Intn(numNodes)
			w := float64(1 + rng.Intn(5))
			edges = append(edges, graph.RawEdge{From: labelOf(u), To: labelOf(v), Weight: w})
		}

		g, err := graph.Build(edges)
		if err != nil {
			rt.Fatalf("Build: %v", err)
		}

		for u := int32(0); u < g.N(); u++ {
			nbrs := g.Neighbors(u)
			for i := 1; i < len(nbrs); i++ {
				if nbrs[i-1] >= nbrs[i] {
					rt.Fatalf("neighbors of %d not strictly increasing: %v", u, nbrs)
				}
			}
			for _, v := range nbrs {
				if !g.HasEdge(v, u) {
					rt.Fatalf("symmetry violated: %d->%d without %d->%d", u, v, v, u)
				}
			}
		}
	})
}

func labelOf(i int) string {
	return string(rune('A' + i))
}
