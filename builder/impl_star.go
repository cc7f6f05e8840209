package builder

import "github.com/katalvlaran/linegraph/core"

// Star constructs the star graph S_d: vertex 0 is the center, vertices
// 1..d are leaves, and edge i joins the center with leaf i+1. The center
// has degree d; every leaf has degree 1. d == 0 yields a lone center.
//
// vw and ew supply weights by mint index (the center is vertex index 0);
// nil means zero values.
// Returns ErrNegativeCount if d < 0.
// Complexity: O(d) time and memory.
func Star[N, E any](d int, vw VertexWeightFn[N], ew EdgeWeightFn[E]) (*core.Graph[N, E], error) {
	if d < 0 {
		return nil, ErrNegativeCount
	}

	g := core.NewGraph[N, E](core.WithVertexCapacity(d+1), core.WithEdgeCapacity(d))
	center := g.AddVertex(vertexWeightOrZero(vw, 0))
	var i int
	for i = 0; i < d; i++ {
		leaf := g.AddVertex(vertexWeightOrZero(vw, i+1))
		_, _ = g.AddEdge(center, leaf, edgeWeightOrZero(ew, i))
	}

	return g, nil
}
