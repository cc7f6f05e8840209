// Package core provides a compact, deterministic, in-memory undirected
// multigraph with generic vertex and edge weights, built on the
// arena+index pattern.
//
// The Graph G = (V,E) is parameterized over two weight types:
//
//   - N — the payload attached to every vertex
//   - E — the payload attached to every edge
//
// Storage model:
//
//   - Vertices and edges live in dense arrays ("arenas").
//   - Handles (VertexID, EdgeID) are plain integers assigned
//     sequentially from zero; the i-th AddVertex returns VertexID(i),
//     the i-th AddEdge returns EdgeID(i).
//   - incident[v] lists the edges touching v in insertion order.
//     A self-loop appears once; parallel edges appear once per edge.
//
// Why use core.Graph?
//
//   - Deterministic iteration — Vertices(), Edges() and Incident() are
//     slice-backed; no map iteration anywhere, so every enumeration is
//     reproducible across runs.
//   - Index-based identity — handles double as positions, which makes
//     derived-graph constructions (like the line graph) a matter of
//     integer bookkeeping rather than pointer chasing.
//   - Loops & multi-edges always on — the container never rejects a
//     well-formed edge, so transforms over it stay total.
//   - Clone support — Clone (deep copy), CloneEmpty (vertices only).
//
// Configuration Options (GraphOption):
//
//	– WithVertexCapacity(n)
//	    Pre-sizes the vertex arena; useful when |V| is known upfront.
//	– WithEdgeCapacity(m)
//	    Pre-sizes the edge arena; useful when |E| is known upfront.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(weight N) VertexID           // O(1)
//	AddVertices(weights ...N) []VertexID   // O(k)
//
//	// Edge lifecycle
//	AddEdge(u, v VertexID, weight E) (EdgeID, error) // O(1)
//
//	// Query
//	VertexCount() int          // O(1)
//	EdgeCount() int            // O(1)
//	Vertices() []VertexID      // O(V), ascending
//	Edges() []Edge[E]          // O(E), insertion order
//	VertexWeight(id) N         // O(1), panics out of range
//	EdgeAt(id) Edge[E]         // O(1), panics out of range
//	Incident(id) []EdgeID      // O(deg), insertion order, loops once
//	Degree(id) int             // O(1), loops counted once
//
//	// Cloning
//	Clone() *Graph[N, E]       // O(V+E) deep copy
//	CloneEmpty() *Graph[N, E]  // O(V) vertices only
//
// Error policy:
//
//   - AddEdge returns ErrVertexNotFound for endpoints outside the arena.
//   - Handle-taking accessors follow slice semantics and panic on
//     out-of-range handles; a handle you did not get from this Graph is
//     a programming error, not a runtime condition.
//
// Concurrency:
//
//   - No internal locking. Build a Graph from one goroutine; once built,
//     any number of goroutines may read it concurrently.
//
// The read side of the container is abstracted as the Undirected[N, E]
// interface, so algorithms written against it work with any conforming
// representation (adjacency list, matrix, or this arena store).
package core
