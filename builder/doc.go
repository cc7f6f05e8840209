// Package builder provides deterministic constructors for canonical
// graph topologies over core.Graph: paths, cycles, complete graphs,
// stars, and dipoles (parallel-edge bundles).
//
// Every constructor:
//
//   - mints vertices and edges in a fixed, documented order, so the
//     resulting handles are predictable (vertex i, edge i);
//   - accepts pluggable weight functions (VertexWeightFn, EdgeWeightFn)
//     keyed by that same index, with nil meaning "zero value of the
//     weight type";
//   - validates its size arguments and returns a sentinel error
//     (ErrNegativeCount, ErrTooFewVertices) instead of producing a
//     malformed graph.
//
// The generators exist to feed tests, benchmarks and examples with
// reproducible inputs; they are also handy fixtures for exploring how
// transforms such as the line graph reshape well-known topologies
// (e.g. the line graph of Star(d) is the complete graph on d vertices).
//
// Topology index conventions:
//
//	Path(n):     vertices 0..n-1; edge i joins i and i+1.
//	Cycle(n):    vertices 0..n-1; edge i joins i and (i+1) mod n.
//	Complete(n): vertices 0..n-1; edges enumerate pairs (i,j), i<j,
//	             in lexicographic order.
//	Star(d):     vertex 0 is the center; edge i joins 0 and leaf i+1.
//	Dipole(k):   two vertices 0,1; k parallel edges between them.
package builder
