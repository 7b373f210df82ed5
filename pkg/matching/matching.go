package matching

import (
	"fmt"

	"github.com/lintang-b-s/bipartite-matching/pkg"
	"github.com/lintang-b-s/bipartite-matching/pkg/datastructure"
)

// Matching stores, for every vertex, its matched partner or NO_MATCH.
type Matching struct {
	mate []int
	v1   int
	size int
}

func NewMatching(numberOfVertices, v1 int) *Matching {
	mate := make([]int, numberOfVertices)
	for i := range mate {
		mate[i] = pkg.NO_MATCH
	}
	return &Matching{
		mate: mate,
		v1:   v1,
	}
}

func (m *Matching) Size() int {
	return m.size
}

func (m *Matching) IsFree(u datastructure.Index) bool {
	return m.mate[u] == pkg.NO_MATCH
}

// Mate returns the partner of u, ok is false when u is free.
func (m *Matching) Mate(u datastructure.Index) (datastructure.Index, bool) {
	if m.mate[u] == pkg.NO_MATCH {
		return 0, false
	}
	return datastructure.Index(m.mate[u]), true
}

func (m *Matching) Contains(u, v datastructure.Index) bool {
	return m.mate[u] == int(v) && m.mate[v] == int(u)
}

// Toggle removes {u,v} from the matching if present, else inserts it.
// Along an augmenting path an endpoint may already have been rematched by the deeper
// edge, so removal only clears the sides that still point at each other.
func (m *Matching) Toggle(u, v datastructure.Index) {
	if m.mate[u] == int(v) || m.mate[v] == int(u) {
		if m.mate[u] == int(v) {
			m.mate[u] = pkg.NO_MATCH
		}
		if m.mate[v] == int(u) {
			m.mate[v] = pkg.NO_MATCH
		}
		m.size--
		return
	}
	m.mate[u] = int(v)
	m.mate[v] = int(u)
	m.size++
}

// Edges returns the matched edges as (v1 vertex, global v2 vertex), sorted by the v1 vertex.
func (m *Matching) Edges() []datastructure.Edge {
	edges := make([]datastructure.Edge, 0, m.size)
	for u := 0; u < m.v1; u++ {
		if m.mate[u] != pkg.NO_MATCH {
			edges = append(edges, datastructure.NewEdge(datastructure.Index(u), datastructure.Index(m.mate[u])))
		}
	}
	return edges
}

// CheckConsistentPairing verifies mate[u] = v <=> mate[v] = u and that the size counter
// agrees with the number of matched v1 vertices.
func (m *Matching) CheckConsistentPairing() error {
	matched := 0
	for u, v := range m.mate {
		if v == pkg.NO_MATCH {
			continue
		}
		if m.mate[v] != u {
			return fmt.Errorf("inconsistent pairing: u=%d->v=%d but v=%d->u=%d", u, v, v, m.mate[v])
		}
		if (u < m.v1) == (v < m.v1) {
			return fmt.Errorf("matched pair %d-%d lies inside one partition", u, v)
		}
		if u < m.v1 {
			matched++
		}
	}
	if matched != m.size {
		return fmt.Errorf("matching size %d but %d matched v1 vertices", m.size, matched)
	}
	return nil
}
