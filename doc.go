// Package linegraph constructs the line graph of an undirected graph:
// node weights are turned into edge weights and vice versa.
//
// 🚀 What is linegraph?
//
//	Given an undirected graph G, its line graph L(G) has one vertex per
//	edge of G, and two vertices of L(G) are connected whenever the
//	corresponding edges of G share an endpoint. The weight swap follows:
//		• each vertex of L(G) carries the weight of its edge in G
//		• each edge of L(G) carries the weight of the shared vertex in G
//
// Quick ASCII example (the triangle is its own line graph):
//
//	    A          AB
//	   ╱ ╲   ⟶    ╱  ╲
//	  B───C     BC────CA
//
// ✨ Why choose linegraph?
//
//   - Total by construction – no error surface; every well-formed graph,
//     including the empty one, self-loops and parallel edges, maps to a
//     well-defined result
//   - Deterministic – vertex i of L(G) is edge i of G, guaranteed, and
//     edge creation follows the container's insertion order
//   - Pure Go – no cgo, no hidden deps
//   - Generic – one function parameterized over both weight types; no
//     runtime polymorphism, no reflection
//
// Caveat: if two edges of G are connected by two vertices (parallel
// edges), the corresponding vertices of L(G) are likewise connected by
// two edges — one per shared endpoint.
//
// Everything is organized under two subpackages plus this root:
//
//	core/    — generic arena-backed undirected multigraph & the
//	           Undirected read interface
//	builder/ — deterministic topology generators (path, cycle,
//	           complete, star, dipole) for tests and experiments
//
//	go get github.com/katalvlaran/linegraph
package linegraph
