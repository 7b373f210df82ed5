package generator

import (
	"fmt"

	"github.com/lintang-b-s/bipartite-matching/pkg/datastructure"
	"golang.org/x/exp/rand"
)

type RandomBipartiteConfig struct {
	V1              int
	V2              int
	EdgeProbability float64 // probability of each (v1, v2) pair becoming an edge
	Seed            uint64
	// PlantMatching adds a hidden matching of size min(V1, V2) first, so the maximum
	// matching size of the generated graph is known.
	PlantMatching bool
}

type pair struct {
	i, j datastructure.Index
}

// NewRandomBipartite builds an Erdos-Renyi style bipartite graph. Edges are inserted in a
// shuffled order so adjacency order carries no structure.
func NewRandomBipartite(cfg RandomBipartiteConfig) (*datastructure.BipartiteGraph, error) {
	if cfg.EdgeProbability < 0 || cfg.EdgeProbability > 1 {
		return nil, fmt.Errorf("edge probability %v not in [0, 1]: %w", cfg.EdgeProbability, datastructure.ErrInvalidArgument)
	}
	graph, err := datastructure.NewBipartiteGraph(cfg.V1, cfg.V2)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	planted := make(map[pair]struct{})
	if cfg.PlantMatching {
		perm := rng.Perm(cfg.V2)
		for i := 0; i < cfg.V1 && i < cfg.V2; i++ {
			planted[pair{datastructure.Index(i), datastructure.Index(perm[i])}] = struct{}{}
		}
	}

	pairs := make([]pair, 0, len(planted))
	for i := 0; i < cfg.V1; i++ {
		for j := 0; j < cfg.V2; j++ {
			p := pair{datastructure.Index(i), datastructure.Index(j)}
			if _, ok := planted[p]; ok || rng.Float64() < cfg.EdgeProbability {
				pairs = append(pairs, p)
			}
		}
	}

	rng.Shuffle(len(pairs), func(a, b int) { pairs[a], pairs[b] = pairs[b], pairs[a] })

	for _, p := range pairs {
		if err := graph.AddEdge(p.i, p.j); err != nil {
			return nil, err
		}
	}
	return graph, nil
}
