// Package linegraph implements the line-graph transformation over the
// core.Undirected read interface.
//
// For an input graph G with vertex weights N and edge weights E, the
// result L(G) is a fresh core.Graph with vertex weights E and edge
// weights N:
//
//   - vertex i of L(G) represents edge i of G and carries its weight;
//   - for every vertex v of G and every unordered pair of distinct
//     edges incident to v, L(G) gains one edge between the two
//     representing vertices, carrying v's weight.
//
// Complexity:
//
//   - Time:  O(V + E + Σ_v deg(v)²)
//   - One pass over edges to mint result vertices (E inserts).
//   - One pass over vertices; each contributes C(deg(v), 2) edge inserts.
//   - Space: O(E + Σ_v C(deg(v), 2)) for the result arenas.
//
// Notes on implementation choices:
//
//   - Result vertex handles equal input edge handles numerically, because
//     core.Graph mints dense sequential IDs; no translation map is kept.
//   - Each endpoint of a shared pair is processed independently, so two
//     parallel edges (sharing both endpoints) produce two result edges.
//   - A self-loop appears once in its vertex's incident list and never
//     pairs with itself, but pairs normally with every other edge there.
package linegraph

import "github.com/katalvlaran/linegraph/core"

// LineGraph constructs the line graph of g, swapping weight roles:
// edge weights of g become vertex weights of the result, and vertex
// weights of g become edge weights of the result.
//
// The transform is total: it never fails, requires no configuration,
// and handles the empty graph, isolated vertices, self-loops and
// parallel edges per the conventions above. A nil g is treated as the
// empty graph. g is only read; the result is freshly allocated and
// owned by the caller.
//
// Determinism: for a fixed g, the result is identical across runs —
// vertex i of the result is edge i of g, and result edges follow g's
// vertex order and per-vertex incident order.
//
// Complexity: O(V + E + Σ_v deg(v)²) time, output-sized memory.
func LineGraph[N, E any](g core.Undirected[N, E]) *core.Graph[E, N] {
	// 1) Nil input degenerates to the empty graph (total contract).
	if g == nil {
		return core.NewGraph[E, N]()
	}

	// 2) Allocate the result with one vertex slot per input edge.
	edgeCount := g.EdgeCount()
	lg := core.NewGraph[E, N](core.WithVertexCapacity(edgeCount))

	// 3) Mint one result vertex per input edge, in edge order, carrying
	//    the edge's weight. Dense sequential minting makes the handle of
	//    result vertex i numerically equal to input edge i.
	var eid core.EdgeID
	for eid = 0; eid < core.EdgeID(edgeCount); eid++ {
		lg.AddVertex(g.EdgeAt(eid).Weight)
	}

	// 4) For each input vertex v, connect every unordered pair of
	//    distinct incident edges, weighting the new edge with v's
	//    weight. Visiting each endpoint independently doubles the
	//    connection for parallel edges, which share two endpoints.
	var v core.VertexID
	var inc []core.EdgeID
	var i, j int
	for v = 0; v < core.VertexID(g.VertexCount()); v++ {
		inc = g.Incident(v) // insertion-ordered, loops once
		if len(inc) < 2 {
			// Degree 0 or 1 yields no pairs; C(deg, 2) = 0.
			continue
		}
		weight := g.VertexWeight(v)
		for i = 0; i < len(inc); i++ {
			for j = i + 1; j < len(inc); j++ {
				// Endpoints are result vertices minted in step 3, so
				// the insert cannot fail; the error is structurally nil.
				_, _ = lg.AddEdge(core.VertexID(inc[i]), core.VertexID(inc[j]), weight)
			}
		}
	}

	return lg
}
