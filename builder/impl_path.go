package builder

import "github.com/katalvlaran/linegraph/core"

// Path constructs the path graph P_n: vertices 0..n-1 in a chain, with
// edge i joining vertices i and i+1 (n-1 edges total). n == 0 yields the
// empty graph; n == 1 a single isolated vertex.
//
// vw and ew supply weights by mint index; nil means zero values.
// Returns ErrNegativeCount if n < 0.
// Complexity: O(n) time and memory.
func Path[N, E any](n int, vw VertexWeightFn[N], ew EdgeWeightFn[E]) (*core.Graph[N, E], error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}

	g := core.NewGraph[N, E](core.WithVertexCapacity(n), core.WithEdgeCapacity(maxInt(n-1, 0)))
	var i int
	for i = 0; i < n; i++ {
		g.AddVertex(vertexWeightOrZero(vw, i))
	}
	for i = 0; i+1 < n; i++ {
		_, _ = g.AddEdge(core.VertexID(i), core.VertexID(i+1), edgeWeightOrZero(ew, i))
	}

	return g, nil
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
