// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/AddVertices/VertexCount/
//       Vertices/VertexWeight/Degree.
// Determinism:
//   - VertexIDs are handed out sequentially (0, 1, 2, ...).
//   - Vertices() returns IDs in ascending order.

package core

// AddVertex appends a new vertex carrying weight and returns its handle.
// The i-th call on a fresh Graph returns VertexID(i).
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddVertex(weight N) VertexID {
	id := VertexID(len(g.vertexWeights))
	g.vertexWeights = append(g.vertexWeights, weight)
	g.incident = append(g.incident, nil)

	return id
}

// AddVertices appends one vertex per weight, in argument order, and
// returns the assigned handles.
// Complexity: O(k) amortized for k weights.
func (g *Graph[N, E]) AddVertices(weights ...N) []VertexID {
	ids := make([]VertexID, len(weights))
	for i, w := range weights {
		ids[i] = g.AddVertex(w)
	}

	return ids
}

// VertexCount reports the number of vertices.
// Complexity: O(1).
func (g *Graph[N, E]) VertexCount() int { return len(g.vertexWeights) }

// Vertices returns all vertex handles in ascending order.
// The returned slice is owned by the caller.
// Complexity: O(V).
func (g *Graph[N, E]) Vertices() []VertexID {
	ids := make([]VertexID, len(g.vertexWeights))
	for i := range ids {
		ids[i] = VertexID(i)
	}

	return ids
}

// VertexWeight returns the weight attached to vertex id.
// Panics if id is outside [0, VertexCount), like slice indexing.
// Complexity: O(1).
func (g *Graph[N, E]) VertexWeight(id VertexID) N {
	return g.vertexWeights[id]
}

// Degree reports the number of incident-list entries for vertex id.
// A self-loop contributes one entry; parallel edges contribute one each.
// Panics if id is outside [0, VertexCount).
// Complexity: O(1).
func (g *Graph[N, E]) Degree(id VertexID) int {
	return len(g.incident[id])
}
