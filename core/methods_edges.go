// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/EdgeCount/Edges/EdgeAt/Incident.
// Determinism:
//   - EdgeIDs are handed out sequentially (0, 1, 2, ...).
//   - Edges() returns edges in insertion order.
//   - Incident(v) returns edge IDs in insertion order, loops once.

package core

import "fmt"

// AddEdge creates a new undirected edge u—v carrying weight and returns
// its handle. Self-loops (u == v) and parallel edges are always allowed;
// a loop is recorded once in its vertex's incident list.
//
// Returns ErrVertexNotFound (wrapped with the offending endpoint) if
// either endpoint is outside [0, VertexCount).
// Complexity: O(1) amortized.
func (g *Graph[N, E]) AddEdge(u, v VertexID, weight E) (EdgeID, error) {
	n := VertexID(len(g.vertexWeights))
	if u < 0 || u >= n {
		return 0, fmt.Errorf("%w: endpoint %d", ErrVertexNotFound, u)
	}
	if v < 0 || v >= n {
		return 0, fmt.Errorf("%w: endpoint %d", ErrVertexNotFound, v)
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge[E]{U: u, V: v, Weight: weight})

	// Record incidence; a self-loop appears once, not twice.
	g.incident[u] = append(g.incident[u], id)
	if u != v {
		g.incident[v] = append(g.incident[v], id)
	}

	return id, nil
}

// EdgeCount reports the number of edges.
// Complexity: O(1).
func (g *Graph[N, E]) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of all edges in insertion order.
// The returned slice is owned by the caller; mutating it does not
// affect the graph.
// Complexity: O(E).
func (g *Graph[N, E]) Edges() []Edge[E] {
	out := make([]Edge[E], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeAt returns the edge stored under id.
// Panics if id is outside [0, EdgeCount), like slice indexing.
// Complexity: O(1).
func (g *Graph[N, E]) EdgeAt(id EdgeID) Edge[E] {
	return g.edges[id]
}

// Incident returns a copy of the edge handles incident to vertex id,
// in insertion order. A self-loop appears exactly once; parallel edges
// appear once per edge. The returned slice is owned by the caller.
// Panics if id is outside [0, VertexCount).
// Complexity: O(deg(id)).
func (g *Graph[N, E]) Incident(id VertexID) []EdgeID {
	out := make([]EdgeID, len(g.incident[id]))
	copy(out, g.incident[id])

	return out
}
