package datastructure

import (
	"fmt"
	"iter"
	"math"
)

type Index uint32

// Edge is one directed adjacency entry. An undirected edge between V1 vertex i and
// V2 vertex j is stored twice: (i, j) in the list of i and (j, i) in the list of j.
type Edge struct {
	start Index
	end   Index
}

func NewEdge(start, end Index) Edge {
	return Edge{start: start, end: end}
}

func (e Edge) GetFrom() Index {
	return e.start
}

func (e Edge) GetTo() Index {
	return e.end
}

func (e Edge) String() string {
	return fmt.Sprintf("%d %d", e.start, e.end)
}

// BipartiteGraph. vertices [0, v1) belong to V1, vertices [v1, v1+v2) belong to V2.
type BipartiteGraph struct {
	adjacencyList [][]Edge
	v1            int
	v2            int
	n             int // number of vertices
	m             int // number of undirected edges
}

func NewBipartiteGraph(v1, v2 int) (*BipartiteGraph, error) {
	if v1 <= 0 || v2 <= 0 {
		return nil, fmt.Errorf("partition sizes v1=%d, v2=%d must both be positive: %w", v1, v2, ErrInvalidArgument)
	}

	if uint64(v1)+uint64(v2) > math.MaxUint32 {
		return nil, fmt.Errorf("v1=%d plus v2=%d vertices do not fit in a uint32 index: %w", v1, v2, ErrInvalidArgument)
	}

	n := v1 + v2
	adjacencyList := make([][]Edge, n)
	for i := range adjacencyList {
		adjacencyList[i] = make([]Edge, 0)
	}
	return &BipartiteGraph{
		adjacencyList: adjacencyList,
		v1:            v1,
		v2:            v2,
		n:             n,
	}, nil
}

func (g *BipartiteGraph) NumberOfVertices() int {
	return g.n
}

func (g *BipartiteGraph) NumberOfEdges() int {
	return g.m
}

func (g *BipartiteGraph) NumberOfV1() int {
	return g.v1
}

func (g *BipartiteGraph) NumberOfV2() int {
	return g.v2
}

// IsV1 reports whether u lies in the first partition.
func (g *BipartiteGraph) IsV1(u Index) bool {
	return int(u) < g.v1
}

// LocalV2 converts a global V2 vertex id back to its index inside V2.
func (g *BipartiteGraph) LocalV2(u Index) Index {
	return u - Index(g.v1)
}

func (g *BipartiteGraph) checkIndex(u Index) error {
	if int(u) >= g.n {
		return fmt.Errorf("vertex %d not in [0, %d): %w", u, g.n, ErrOutOfRange)
	}
	return nil
}

// AddEdge adds the edge between V1 vertex i and V2 vertex jLocal (local to V2, converted to
// the global id jLocal+v1).
func (g *BipartiteGraph) AddEdge(i, jLocal Index) error {
	if int(i) >= g.v1 {
		return fmt.Errorf("v1 vertex %d not in [0, %d): %w", i, g.v1, ErrOutOfRange)
	}
	if int(jLocal) >= g.v2 {
		return fmt.Errorf("v2 vertex %d (global %d) not in [%d, %d): %w", jLocal, int(jLocal)+g.v1, g.v1, g.n, ErrOutOfRange)
	}
	j := jLocal + Index(g.v1)

	if g.hasEdge(i, j) {
		return fmt.Errorf("there's already an edge from %d to %d: %w", i, j, ErrDuplicateEdge)
	}
	if g.hasEdge(j, i) {
		return fmt.Errorf("there's already an edge from %d to %d: %w", j, i, ErrDuplicateEdge)
	}

	g.adjacencyList[i] = append(g.adjacencyList[i], NewEdge(i, j))
	g.adjacencyList[j] = append(g.adjacencyList[j], NewEdge(j, i))
	g.m++
	return nil
}

// IsEdge is one-directional: it only looks at the adjacency list of i.
func (g *BipartiteGraph) IsEdge(i, j Index) (bool, error) {
	if err := g.checkIndex(i); err != nil {
		return false, err
	}
	if err := g.checkIndex(j); err != nil {
		return false, err
	}
	return g.hasEdge(i, j), nil
}

func (g *BipartiteGraph) hasEdge(i, j Index) bool {
	for _, e := range g.adjacencyList[i] {
		if e.end == j {
			return true
		}
	}
	return false
}

// EdgesOf returns the edges incident to i in insertion order. The sequence can be ranged
// over any number of times.
func (g *BipartiteGraph) EdgesOf(i Index) (iter.Seq[Edge], error) {
	if err := g.checkIndex(i); err != nil {
		return nil, err
	}
	edges := g.adjacencyList[i]
	return func(yield func(Edge) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}, nil
}

func (g *BipartiteGraph) GetVertexEdgesSize(u Index) int {
	return len(g.adjacencyList[u])
}

func (g *BipartiteGraph) GetEdgeOfVertex(u Index, idx int) Edge {
	return g.adjacencyList[u][idx]
}

func (g *BipartiteGraph) ForEachVertexEdges(u Index, handle func(e Edge)) {
	for _, e := range g.adjacencyList[u] {
		handle(e)
	}
}

// ForEachEdge visits every undirected edge once, from its V1 endpoint.
func (g *BipartiteGraph) ForEachEdge(handle func(e Edge)) {
	for u := 0; u < g.v1; u++ {
		for _, e := range g.adjacencyList[u] {
			handle(e)
		}
	}
}
