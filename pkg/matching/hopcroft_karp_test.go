package matching

import (
	"fmt"
	"testing"

	"github.com/lintang-b-s/bipartite-matching/pkg/datastructure"
	"github.com/lintang-b-s/bipartite-matching/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type edgePair struct {
	i, j datastructure.Index
}

func buildGraph(t *testing.T, v1, v2 int, edges []edgePair) *datastructure.BipartiteGraph {
	t.Helper()
	g, err := datastructure.NewBipartiteGraph(v1, v2)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.i, e.j))
	}
	return g
}

// kuhnMaximumMatchingSize is a plain augmenting path matcher used as the reference size.
func kuhnMaximumMatchingSize(g *datastructure.BipartiteGraph) int {
	matchOf := make([]int, g.NumberOfVertices())
	for i := range matchOf {
		matchOf[i] = -1
	}

	var tryKuhn func(u datastructure.Index, used []bool) bool
	tryKuhn = func(u datastructure.Index, used []bool) bool {
		for k := 0; k < g.GetVertexEdgesSize(u); k++ {
			v := g.GetEdgeOfVertex(u, k).GetTo()
			if used[v] {
				continue
			}
			used[v] = true
			if matchOf[v] == -1 || tryKuhn(datastructure.Index(matchOf[v]), used) {
				matchOf[v] = int(u)
				return true
			}
		}
		return false
	}

	size := 0
	for u := 0; u < g.NumberOfV1(); u++ {
		if tryKuhn(datastructure.Index(u), make([]bool, g.NumberOfVertices())) {
			size++
		}
	}
	return size
}

func assertValidMatching(t *testing.T, g *datastructure.BipartiteGraph, m *Matching) {
	t.Helper()
	require.NoError(t, m.CheckConsistentPairing())

	endpoints := make(map[datastructure.Index]struct{})
	for _, e := range m.Edges() {
		assert.True(t, g.IsV1(e.GetFrom()))
		assert.False(t, g.IsV1(e.GetTo()))

		ok, err := g.IsEdge(e.GetFrom(), e.GetTo())
		require.NoError(t, err)
		assert.True(t, ok, "matched pair %v is not an edge", e)

		for _, u := range []datastructure.Index{e.GetFrom(), e.GetTo()} {
			_, shared := endpoints[u]
			assert.False(t, shared, "vertex %d is used by two matched edges", u)
			endpoints[u] = struct{}{}
		}
	}
	assert.Len(t, m.Edges(), m.Size())
}

func TestHopcroftKarpRerouteSmallGraph(t *testing.T) {
	g := buildGraph(t, 2, 2, []edgePair{{0, 0}, {0, 1}, {1, 0}})
	v1Set, v2Set := DefaultPartition(g)

	m, phases, err := NewHopcroftKarp(g, zaptest.NewLogger(t), true).FindMaximumMatching(v1Set, v2Set)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Size())
	assert.Equal(t, 2, phases)
	assert.Equal(t, []datastructure.Edge{
		datastructure.NewEdge(0, 3),
		datastructure.NewEdge(1, 2),
	}, m.Edges())
	assertValidMatching(t, g, m)
}

func TestHopcroftKarpNoEdges(t *testing.T) {
	g := buildGraph(t, 3, 3, nil)
	v1Set, v2Set := DefaultPartition(g)

	m, phases, err := FindMaximumMatching(g, v1Set, v2Set)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 0, phases)
	assert.Empty(t, m.Edges())
}

func TestHopcroftKarpAugmentingPathOfLengthFive(t *testing.T) {
	// path 0 - 3 - 1 - 4 - 2 - 5. starting the searches from v1 vertex 2 makes the first
	// phase match {2,4} and {1,3}, leaving 0 free behind a length 5 augmenting path.
	g := buildGraph(t, 3, 3, []edgePair{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}})
	v1Set := []datastructure.Index{2, 1, 0}
	v2Set := []datastructure.Index{3, 4, 5}

	m, phases, err := NewHopcroftKarp(g, zaptest.NewLogger(t), true).FindMaximumMatching(v1Set, v2Set)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Size())
	assert.Equal(t, 2, phases)
	assert.Equal(t, []datastructure.Edge{
		datastructure.NewEdge(0, 3),
		datastructure.NewEdge(1, 4),
		datastructure.NewEdge(2, 5),
	}, m.Edges())
	assertValidMatching(t, g, m)
}

func TestHopcroftKarpFirstPhaseFindsDisjointPaths(t *testing.T) {
	g := buildGraph(t, 3, 3, []edgePair{{0, 0}, {1, 1}, {2, 2}})
	v1Set, v2Set := DefaultPartition(g)

	m, phases, err := FindMaximumMatching(g, v1Set, v2Set)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Size())
	assert.Equal(t, 1, phases)
}

func TestHopcroftKarpIsolatedVerticesStayFree(t *testing.T) {
	g := buildGraph(t, 3, 4, []edgePair{{0, 2}, {2, 2}, {2, 3}})
	v1Set, v2Set := DefaultPartition(g)

	m, _, err := FindMaximumMatching(g, v1Set, v2Set)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())
	assert.True(t, m.IsFree(1))
	assert.True(t, m.IsFree(3))
	assert.True(t, m.IsFree(4))
	assertValidMatching(t, g, m)
}

func TestHopcroftKarpIdempotent(t *testing.T) {
	g, err := generator.NewRandomBipartite(generator.RandomBipartiteConfig{
		V1: 40, V2: 35, EdgeProbability: 0.08, Seed: 7,
	})
	require.NoError(t, err)
	v1Set, v2Set := DefaultPartition(g)

	hk := NewHopcroftKarp(g, zaptest.NewLogger(t), true)
	first, firstPhases, err := hk.FindMaximumMatching(v1Set, v2Set)
	require.NoError(t, err)
	second, secondPhases, err := hk.FindMaximumMatching(v1Set, v2Set)
	require.NoError(t, err)

	assert.Equal(t, first.Size(), second.Size())
	assert.Equal(t, firstPhases, secondPhases)
	assert.Equal(t, first.Edges(), second.Edges())
}

func TestHopcroftKarpMatchesReferenceOnRandomGraphs(t *testing.T) {
	cases := []generator.RandomBipartiteConfig{
		{V1: 5, V2: 5, EdgeProbability: 0.3, Seed: 1},
		{V1: 20, V2: 10, EdgeProbability: 0.15, Seed: 2},
		{V1: 10, V2: 30, EdgeProbability: 0.1, Seed: 3},
		{V1: 60, V2: 60, EdgeProbability: 0.03, Seed: 4},
		{V1: 100, V2: 80, EdgeProbability: 0.02, Seed: 5},
		{V1: 200, V2: 200, EdgeProbability: 0.01, Seed: 6},
		{V1: 50, V2: 50, EdgeProbability: 1, Seed: 8},
	}
	for _, cfg := range cases {
		t.Run(fmt.Sprintf("v1=%d,v2=%d,p=%v", cfg.V1, cfg.V2, cfg.EdgeProbability), func(t *testing.T) {
			g, err := generator.NewRandomBipartite(cfg)
			require.NoError(t, err)
			v1Set, v2Set := DefaultPartition(g)

			m, _, err := NewHopcroftKarp(g, zaptest.NewLogger(t), true).FindMaximumMatching(v1Set, v2Set)
			require.NoError(t, err)

			assert.Equal(t, kuhnMaximumMatchingSize(g), m.Size())
			assertValidMatching(t, g, m)
		})
	}
}

func TestHopcroftKarpPlantedPerfectMatching(t *testing.T) {
	g, err := generator.NewRandomBipartite(generator.RandomBipartiteConfig{
		V1: 500, V2: 500, EdgeProbability: 0.004, Seed: 11, PlantMatching: true,
	})
	require.NoError(t, err)
	v1Set, v2Set := DefaultPartition(g)

	m, phases, err := FindMaximumMatching(g, v1Set, v2Set)
	require.NoError(t, err)
	assert.Equal(t, 500, m.Size())
	// O(sqrt(V)) phases
	assert.LessOrEqual(t, phases, 2*32+2)
	assertValidMatching(t, g, m)
}

func TestHopcroftKarpInvalidPartition(t *testing.T) {
	g := buildGraph(t, 2, 2, []edgePair{{0, 0}})
	cases := []struct {
		name         string
		v1Set, v2Set []datastructure.Index
	}{
		{"wrong sizes", []datastructure.Index{0}, []datastructure.Index{1, 2, 3}},
		{"swapped sides", []datastructure.Index{2, 3}, []datastructure.Index{0, 1}},
		{"duplicate vertex", []datastructure.Index{0, 0}, []datastructure.Index{2, 3}},
		{"out of range", []datastructure.Index{0, 1}, []datastructure.Index{2, 4}},
		{"overlap", []datastructure.Index{0, 1}, []datastructure.Index{1, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, phases, err := FindMaximumMatching(g, tc.v1Set, tc.v2Set)
			assert.ErrorIs(t, err, ErrInvalidPartition)
			assert.Nil(t, m)
			assert.Equal(t, 0, phases)
		})
	}
}

func TestValidateResultDetectsNonMaximumMatching(t *testing.T) {
	g := buildGraph(t, 2, 2, []edgePair{{0, 0}, {0, 1}, {1, 0}})
	v1Set, _ := DefaultPartition(g)

	hk := NewHopcroftKarp(g, zaptest.NewLogger(t), false)
	hk.matching = NewMatching(g.NumberOfVertices(), g.NumberOfV1())
	hk.matching.Toggle(0, 2)
	assert.Error(t, hk.validateResult(v1Set))

	hk.matching.Toggle(0, 2)
	hk.matching.Toggle(0, 3)
	hk.matching.Toggle(1, 2)
	assert.NoError(t, hk.validateResult(v1Set))
}

func TestValidateResultDetectsNonEdge(t *testing.T) {
	g := buildGraph(t, 2, 2, []edgePair{{0, 0}})
	v1Set, _ := DefaultPartition(g)

	hk := NewHopcroftKarp(g, zaptest.NewLogger(t), false)
	hk.matching = NewMatching(g.NumberOfVertices(), g.NumberOfV1())
	hk.matching.Toggle(1, 3)
	assert.Error(t, hk.validateResult(v1Set))
}

func TestHopcroftKarpNilLogger(t *testing.T) {
	g := buildGraph(t, 2, 2, []edgePair{{0, 0}, {0, 1}, {1, 0}})
	v1Set, v2Set := DefaultPartition(g)

	var m *Matching
	var err error
	require.NotPanics(t, func() {
		m, _, err = NewHopcroftKarp(g, nil, true).FindMaximumMatching(v1Set, v2Set)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Size())
}
