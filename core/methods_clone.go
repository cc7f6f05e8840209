// File: methods_clone.go
// Role: Cloning: Clone (deep copy), CloneEmpty (vertices only).
// Note: weights are copied by assignment; pointer-typed weights share
//       their referents between the original and the clone.

package core

// Clone returns a deep structural copy of g: same vertices, edges and
// incidence, with all arenas re-allocated. Mutating the clone never
// affects the original and vice versa.
// Complexity: O(V + E).
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	c := &Graph[N, E]{
		vertexWeights: make([]N, len(g.vertexWeights)),
		edges:         make([]Edge[E], len(g.edges)),
		incident:      make([][]EdgeID, len(g.incident)),
	}
	copy(c.vertexWeights, g.vertexWeights)
	copy(c.edges, g.edges)
	for i, inc := range g.incident {
		if len(inc) == 0 {
			continue
		}
		c.incident[i] = make([]EdgeID, len(inc))
		copy(c.incident[i], inc)
	}

	return c
}

// CloneEmpty returns a copy of g containing the same vertices (with
// their weights) but no edges.
// Complexity: O(V).
func (g *Graph[N, E]) CloneEmpty() *Graph[N, E] {
	c := &Graph[N, E]{
		vertexWeights: make([]N, len(g.vertexWeights)),
		incident:      make([][]EdgeID, len(g.incident)),
	}
	copy(c.vertexWeights, g.vertexWeights)

	return c
}
