package builder

import "github.com/katalvlaran/linegraph/core"

// Dipole constructs the dipole multigraph D_k: two vertices joined by k
// parallel edges, edge i minted in order. k == 0 yields two isolated
// vertices. Dipoles are the canonical probe for multigraph handling —
// every pair of their edges shares both endpoints.
//
// vw and ew supply weights by mint index; nil means zero values.
// Returns ErrNegativeCount if k < 0.
// Complexity: O(k) time and memory.
func Dipole[N, E any](k int, vw VertexWeightFn[N], ew EdgeWeightFn[E]) (*core.Graph[N, E], error) {
	if k < 0 {
		return nil, ErrNegativeCount
	}

	g := core.NewGraph[N, E](core.WithVertexCapacity(2), core.WithEdgeCapacity(k))
	u := g.AddVertex(vertexWeightOrZero(vw, 0))
	v := g.AddVertex(vertexWeightOrZero(vw, 1))
	var i int
	for i = 0; i < k; i++ {
		_, _ = g.AddEdge(u, v, edgeWeightOrZero(ew, i))
	}

	return g, nil
}
