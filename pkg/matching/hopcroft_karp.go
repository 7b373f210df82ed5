package matching

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/bipartite-matching/pkg"
	"github.com/lintang-b-s/bipartite-matching/pkg/datastructure"
	"go.uber.org/zap"
)

var ErrInvalidPartition = errors.New("partition does not match the graph's v1/v2 split")

// HopcroftKarp computes a maximum cardinality matching. Each phase builds a level graph
// by bfs from the free v1 vertices, alternating unmatched (even level) and matched (odd
// level) edges, then runs one dfs per free v1 vertex along level+1 edges. The dfs runs of a
// phase share the visited array, so the augmenting paths they find are vertex-disjoint
// shortest augmenting paths [Hopcroft & Karp, An n^5/2 algorithm for maximum matchings in
// bipartite graphs].
type HopcroftKarp struct {
	graph    *datastructure.BipartiteGraph
	logger   *zap.Logger
	debug    bool
	level    []int
	visited  []bool
	matching *Matching
}

func NewHopcroftKarp(graph *datastructure.BipartiteGraph, logger *zap.Logger, debug bool) *HopcroftKarp {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HopcroftKarp{
		graph:   graph,
		logger:  logger,
		debug:   debug,
		level:   make([]int, graph.NumberOfVertices()),
		visited: make([]bool, graph.NumberOfVertices()),
	}
}

// FindMaximumMatching runs Hopcroft-Karp on graph without logging or self checks.
func FindMaximumMatching(graph *datastructure.BipartiteGraph, v1Set, v2Set []datastructure.Index) (*Matching, int, error) {
	return NewHopcroftKarp(graph, zap.NewNop(), false).FindMaximumMatching(v1Set, v2Set)
}

// DefaultPartition returns the v1 and v2 vertex ids of graph in ascending order.
func DefaultPartition(graph *datastructure.BipartiteGraph) ([]datastructure.Index, []datastructure.Index) {
	v1Set := make([]datastructure.Index, 0, graph.NumberOfV1())
	v2Set := make([]datastructure.Index, 0, graph.NumberOfV2())
	for u := 0; u < graph.NumberOfVertices(); u++ {
		if graph.IsV1(datastructure.Index(u)) {
			v1Set = append(v1Set, datastructure.Index(u))
		} else {
			v2Set = append(v2Set, datastructure.Index(u))
		}
	}
	return v1Set, v2Set
}

// FindMaximumMatching returns the maximum matching and the number of phases it took.
// v1Set and v2Set must be exactly the graph's own partition; they also fix the order in
// which free v1 vertices start their searches.
func (hk *HopcroftKarp) FindMaximumMatching(v1Set, v2Set []datastructure.Index) (*Matching, int, error) {
	if err := hk.validatePartition(v1Set, v2Set); err != nil {
		return nil, 0, err
	}

	hk.matching = NewMatching(hk.graph.NumberOfVertices(), hk.graph.NumberOfV1())

	phases := 0
	for hk.bfsComputeLevelGraph(v1Set) {
		augmented := hk.augment(v1Set)
		phases++
		hk.logger.Debug("hopcroft-karp phase done",
			zap.Int("phase", phases),
			zap.Int("augmentingPaths", augmented),
			zap.Int("matchingSize", hk.matching.Size()))
	}

	if hk.debug {
		if err := hk.validateResult(v1Set); err != nil {
			hk.logger.Error("incorrect maximum matching result!!!", zap.Error(err))
		}
	}

	hk.logger.Sugar().Infof("maximum matching with %d edge(s) found in %d phase(s)", hk.matching.Size(), phases)
	return hk.matching, phases, nil
}

func (hk *HopcroftKarp) validatePartition(v1Set, v2Set []datastructure.Index) error {
	if len(v1Set) != hk.graph.NumberOfV1() || len(v2Set) != hk.graph.NumberOfV2() {
		return fmt.Errorf("got |V1|=%d, |V2|=%d, graph has %d and %d: %w",
			len(v1Set), len(v2Set), hk.graph.NumberOfV1(), hk.graph.NumberOfV2(), ErrInvalidPartition)
	}

	seen := make([]bool, hk.graph.NumberOfVertices())
	check := func(u datastructure.Index, wantV1 bool) error {
		if int(u) >= hk.graph.NumberOfVertices() {
			return fmt.Errorf("vertex %d out of range: %w", u, ErrInvalidPartition)
		}
		if hk.graph.IsV1(u) != wantV1 {
			return fmt.Errorf("vertex %d is on the wrong side: %w", u, ErrInvalidPartition)
		}
		if seen[u] {
			return fmt.Errorf("vertex %d listed twice: %w", u, ErrInvalidPartition)
		}
		seen[u] = true
		return nil
	}

	for _, u := range v1Set {
		if err := check(u, true); err != nil {
			return err
		}
	}
	for _, u := range v2Set {
		if err := check(u, false); err != nil {
			return err
		}
	}
	return nil
}

func (hk *HopcroftKarp) resetPhaseState() {
	for i := range hk.level {
		hk.level[i] = pkg.INVALID_LEVEL
		hk.visited[i] = false
	}
}

// eligible: on even levels only edges outside the matching, on odd levels only matched edges.
func (hk *HopcroftKarp) eligible(u, v datastructure.Index, level int) bool {
	inMatching := hk.matching.Contains(u, v)
	if level%2 == 0 {
		return !inMatching
	}
	return inMatching
}

// bfsComputeLevelGraph layers the graph from the free v1 vertices. returns true once a
// completed level contains a free v2 vertex, false if the frontier runs empty first.
func (hk *HopcroftKarp) bfsComputeLevelGraph(v1Set []datastructure.Index) bool {
	hk.resetPhaseState()

	frontier := make([]datastructure.Index, 0)
	for _, u := range v1Set {
		if hk.matching.IsFree(u) {
			hk.level[u] = 0
			frontier = append(frontier, u)
		}
	}

	currentLevel := 0
	for len(frontier) > 0 {
		nextFrontier := make([]datastructure.Index, 0)
		for _, u := range frontier {
			hk.graph.ForEachVertexEdges(u, func(e datastructure.Edge) {
				v := e.GetTo()
				if hk.level[v] != pkg.INVALID_LEVEL || !hk.eligible(u, v, currentLevel) {
					return
				}
				hk.level[v] = currentLevel + 1
				nextFrontier = append(nextFrontier, v)
			})
		}
		currentLevel++

		for _, v := range nextFrontier {
			if !hk.graph.IsV1(v) && hk.matching.IsFree(v) {
				return true
			}
		}
		frontier = nextFrontier
	}

	return false
}

// augment runs one dfs per v1 vertex that is still free and returns the number of
// augmenting paths applied.
func (hk *HopcroftKarp) augment(v1Set []datastructure.Index) int {
	augmented := 0
	for _, u := range v1Set {
		if !hk.matching.IsFree(u) || hk.visited[u] || hk.level[u] != 0 {
			continue
		}
		if hk.dfsAugmentingPath(u) {
			augmented++
		}
	}
	return augmented
}

// dfsAugmentingPath. perform dfs from u along level+1 edges until a free v2 vertex is
// reached, then toggle every edge of the path on the way back. depth is bounded by the
// length of the phase's shortest augmenting path.
func (hk *HopcroftKarp) dfsAugmentingPath(u datastructure.Index) bool {
	hk.visited[u] = true

	if !hk.graph.IsV1(u) && hk.matching.IsFree(u) {
		return true
	}

	uLevel := hk.level[u]
	for i := 0; i < hk.graph.GetVertexEdgesSize(u); i++ {
		v := hk.graph.GetEdgeOfVertex(u, i).GetTo()
		if hk.visited[v] || hk.level[v] != uLevel+1 || !hk.eligible(u, v, uLevel) {
			continue
		}

		if hk.dfsAugmentingPath(v) {
			hk.matching.Toggle(u, v)
			return true
		}
	}

	return false
}

// validateResult checks that the matching is a valid matching of the graph and that no
// augmenting path is left (Berge's theorem: a matching is maximum iff none exists).
func (hk *HopcroftKarp) validateResult(v1Set []datastructure.Index) error {
	if err := hk.matching.CheckConsistentPairing(); err != nil {
		return err
	}

	for _, e := range hk.matching.Edges() {
		exists, err := hk.graph.IsEdge(e.GetFrom(), e.GetTo())
		if err != nil {
			return err
		}
		reverseExists, err := hk.graph.IsEdge(e.GetTo(), e.GetFrom())
		if err != nil {
			return err
		}
		if !exists || !reverseExists {
			return fmt.Errorf("matched pair %d-%d is not an edge of the graph", e.GetFrom(), e.GetTo())
		}
	}

	if hk.bfsComputeLevelGraph(v1Set) {
		return fmt.Errorf("augmenting path left after %d edge(s) matched", hk.matching.Size())
	}
	return nil
}
