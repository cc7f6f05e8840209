// Package linegraph_test: shared helpers for the transform tests.
// The isomorphism checker is brute force over vertex permutations and is
// meant for the tiny fixtures used here (≤ 7 vertices).
package linegraph_test

import (
	"github.com/katalvlaran/linegraph/core"
)

// pairKey is an unordered endpoint pair, normalized so U ≤ V.
type pairKey struct {
	u, v core.VertexID
}

// normPair builds a pairKey from arbitrary endpoint order.
func normPair(u, v core.VertexID) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{u: u, v: v}
}

// edgeMultiset counts edges per unordered endpoint pair, so parallel
// edges are distinguished from single ones. Weights are ignored.
func edgeMultiset[N, E any](g *core.Graph[N, E]) map[pairKey]int {
	out := make(map[pairKey]int, g.EdgeCount())
	for _, e := range g.Edges() {
		out[normPair(e.U, e.V)]++
	}

	return out
}

// multisetsEqual compares two edge multisets for exact equality.
func multisetsEqual(a, b map[pairKey]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, c := range a {
		if b[k] != c {
			return false
		}
	}

	return true
}

// isomorphic reports whether a and b are isomorphic as unlabelled
// undirected multigraphs (weights ignored). It tries every vertex
// permutation, mapping a's edges through it and comparing multisets.
func isomorphic[NA, EA, NB, EB any](a *core.Graph[NA, EA], b *core.Graph[NB, EB]) bool {
	n := a.VertexCount()
	if n != b.VertexCount() || a.EdgeCount() != b.EdgeCount() {
		return false
	}
	if n == 0 {
		return true
	}

	aEdges := a.Edges()
	target := edgeMultiset(b)

	perm := make([]core.VertexID, n)
	used := make([]bool, n)

	// tryAssign extends the partial permutation at position pos; once
	// complete, it maps a's edges and compares against b's multiset.
	var tryAssign func(pos int) bool
	tryAssign = func(pos int) bool {
		if pos == n {
			mapped := make(map[pairKey]int, len(aEdges))
			for _, e := range aEdges {
				mapped[normPair(perm[e.U], perm[e.V])]++
			}

			return multisetsEqual(mapped, target)
		}
		for img := 0; img < n; img++ {
			if used[img] {
				continue
			}
			used[img] = true
			perm[pos] = core.VertexID(img)
			if tryAssign(pos + 1) {
				return true
			}
			used[img] = false
		}

		return false
	}

	return tryAssign(0)
}

// graphFromPairs builds an unweighted graph on n vertices from endpoint
// pairs, the way the fixture tables below are written.
func graphFromPairs(n int, pairs [][2]core.VertexID) *core.Graph[int, int] {
	g := core.NewGraph[int, int](core.WithVertexCapacity(n), core.WithEdgeCapacity(len(pairs)))
	for i := 0; i < n; i++ {
		g.AddVertex(0)
	}
	for _, p := range pairs {
		_, _ = g.AddEdge(p[0], p[1], 0)
	}

	return g
}
