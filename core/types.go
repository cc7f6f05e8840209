// Package core defines the central Graph, Edge, and handle types,
// and provides deterministic primitives for building and querying
// undirected multigraphs with generic vertex and edge weights.
//
// Vertices and edges live in dense arenas and are addressed by integer
// handles (VertexID, EdgeID) assigned sequentially from zero. Every
// enumeration is slice-backed, so iteration order is the insertion order
// and is identical across runs.
//
// This file declares VertexID, EdgeID, Edge, the Undirected read
// interface, GraphOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound   - an edge endpoint references a non-existent vertex.
//	ErrNegativeCapacity - a capacity option received a negative value.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeCapacity indicates a negative value passed to a capacity option.
	ErrNegativeCapacity = errors.New("core: capacity must be non-negative")
)

// VertexID identifies a vertex within a single Graph instance.
// IDs are dense: the i-th vertex added receives VertexID(i).
// A VertexID from one Graph carries no meaning in another.
type VertexID int

// EdgeID identifies an edge within a single Graph instance.
// IDs are dense: the i-th edge added receives EdgeID(i).
type EdgeID int

// Edge represents an undirected connection between two vertices.
//
// U and V are the endpoints exactly as they were passed to AddEdge;
// they are not normalized, and U == V denotes a self-loop.
// Weight carries the generic edge payload.
type Edge[E any] struct {
	// U is the first endpoint as given at insertion.
	U VertexID

	// V is the second endpoint as given at insertion.
	V VertexID

	// Weight is the payload attached to this edge.
	Weight E
}

// Undirected is the minimal read capability required by graph transforms.
//
// N is the vertex weight type, E the edge weight type. Implementations
// must enumerate deterministically: handles are dense [0, count) ranges,
// and Incident must return a stable, insertion-ordered list in which a
// self-loop appears exactly once.
//
// Accessors taking a handle follow slice-indexing semantics: passing a
// handle outside [0, count) is a programmer error and panics.
type Undirected[N, E any] interface {
	// VertexCount reports the number of vertices.
	VertexCount() int

	// EdgeCount reports the number of edges.
	EdgeCount() int

	// VertexWeight returns the weight attached to vertex id.
	VertexWeight(id VertexID) N

	// EdgeAt returns the edge stored under id.
	EdgeAt(id EdgeID) Edge[E]

	// Incident returns the edges incident to vertex id, in insertion
	// order. Self-loops appear once; parallel edges appear repeatedly.
	Incident(id VertexID) []EdgeID
}

// graphConfig collects pre-construction settings shared by all Graph
// instantiations, so GraphOption stays free of type parameters.
type graphConfig struct {
	vertexCapacity int // initial arena capacity for vertices
	edgeCapacity   int // initial arena capacity for edges
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

// WithVertexCapacity pre-sizes the vertex arena for n vertices.
// Panics with ErrNegativeCapacity if n < 0.
func WithVertexCapacity(n int) GraphOption {
	if n < 0 {
		panic(ErrNegativeCapacity.Error())
	}

	return func(c *graphConfig) { c.vertexCapacity = n }
}

// WithEdgeCapacity pre-sizes the edge arena for m edges.
// Panics with ErrNegativeCapacity if m < 0.
func WithEdgeCapacity(m int) GraphOption {
	if m < 0 {
		panic(ErrNegativeCapacity.Error())
	}

	return func(c *graphConfig) { c.edgeCapacity = m }
}

// Graph is the core in-memory undirected multigraph.
//
// It always permits self-loops and parallel edges. Vertex weights of
// type N live in a dense arena indexed by VertexID, edges of type E in
// a dense arena indexed by EdgeID, and incident[v] records the edges
// touching v in insertion order (loops once).
//
// Graph performs no internal locking: handles are only meaningful within
// one instance, construction is single-threaded by contract, and a fully
// built Graph is safe for concurrent readers.
type Graph[N, E any] struct {
	vertexWeights []N        // arena: VertexID → weight
	edges         []Edge[E]  // arena: EdgeID → edge
	incident      [][]EdgeID // VertexID → incident edge IDs, loops once
}

// NewGraph creates an empty Graph with the given capacity options.
// Complexity: O(1) plus arena pre-allocation.
func NewGraph[N, E any](opts ...GraphOption) *Graph[N, E] {
	var cfg graphConfig
	// Apply options
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, E]{
		vertexWeights: make([]N, 0, cfg.vertexCapacity),
		edges:         make([]Edge[E], 0, cfg.edgeCapacity),
		incident:      make([][]EdgeID, 0, cfg.vertexCapacity),
	}
}

// Compile-time proof that *Graph satisfies the Undirected read interface.
var _ Undirected[int, string] = (*Graph[int, string])(nil)
