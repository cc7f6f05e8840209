package builder

import "github.com/katalvlaran/linegraph/core"

// Cycle constructs the cycle graph C_n: vertices 0..n-1 with edge i
// joining vertices i and (i+1) mod n, so edge n-1 closes the ring.
//
// vw and ew supply weights by mint index; nil means zero values.
// Returns ErrTooFewVertices if n < 3 (a 2-cycle is a parallel pair —
// build that explicitly with Dipole(2) if it is what you mean).
// Complexity: O(n) time and memory.
func Cycle[N, E any](n int, vw VertexWeightFn[N], ew EdgeWeightFn[E]) (*core.Graph[N, E], error) {
	if n < 3 {
		return nil, ErrTooFewVertices
	}

	g := core.NewGraph[N, E](core.WithVertexCapacity(n), core.WithEdgeCapacity(n))
	var i int
	for i = 0; i < n; i++ {
		g.AddVertex(vertexWeightOrZero(vw, i))
	}
	for i = 0; i < n; i++ {
		_, _ = g.AddEdge(core.VertexID(i), core.VertexID((i+1)%n), edgeWeightOrZero(ew, i))
	}

	return g, nil
}
