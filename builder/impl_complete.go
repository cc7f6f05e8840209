package builder

import "github.com/katalvlaran/linegraph/core"

// Complete constructs the complete graph K_n: vertices 0..n-1 with one
// edge per unordered pair, enumerated lexicographically — (0,1), (0,2),
// ..., (0,n-1), (1,2), ... — so edge indices are predictable.
//
// vw and ew supply weights by mint index; nil means zero values.
// Returns ErrNegativeCount if n < 0.
// Complexity: O(n²) time and memory (n·(n-1)/2 edges).
func Complete[N, E any](n int, vw VertexWeightFn[N], ew EdgeWeightFn[E]) (*core.Graph[N, E], error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	g := core.NewGraph[N, E](core.WithVertexCapacity(n), core.WithEdgeCapacity(n*(n-1)/2))
	var i, j, eidx int
	for i = 0; i < n; i++ {
		g.AddVertex(vertexWeightOrZero(vw, i))
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			_, _ = g.AddEdge(core.VertexID(i), core.VertexID(j), edgeWeightOrZero(ew, eidx))
			eidx++
		}
	}

	return g, nil
}
