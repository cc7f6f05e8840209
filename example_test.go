// Package linegraph_test provides runnable examples for the line-graph
// transform. Each example runs via “go test -run Example”, showing both
// code and expected output.
package linegraph_test

import (
	"fmt"

	"github.com/katalvlaran/linegraph"
	"github.com/katalvlaran/linegraph/builder"
	"github.com/katalvlaran/linegraph/core"
)

// ExampleLineGraph demonstrates the transform on the triangle, which is
// isomorphic to its own line graph.
// Complexity: O(V + E + Σ deg²).
func ExampleLineGraph() {
	// 1) Build the triangle C₃.
	g, err := builder.Cycle[int, int](3, nil, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Construct its line graph: one vertex per input edge, one edge
	//    per pair of input edges meeting at a vertex.
	lg := linegraph.LineGraph[int, int](g)

	// 3) The triangle has 3 edges pairing at 3 vertices — so does L(G).
	fmt.Printf("input:  V=%d E=%d\n", g.VertexCount(), g.EdgeCount())
	fmt.Printf("result: V=%d E=%d\n", lg.VertexCount(), lg.EdgeCount())
	// Output:
	// input:  V=3 E=3
	// result: V=3 E=3
}

// ExampleLineGraph_weightSwap demonstrates the weight exchange on a
// labelled 3-vertex path: edge labels surface as vertex weights, and the
// shared vertex's label surfaces as the connecting edge's weight.
func ExampleLineGraph_weightSwap() {
	// 1) A path  A —fast— B —slow— C  with string vertex labels and
	//    string edge labels.
	g := core.NewGraph[string, string]()
	ids := g.AddVertices("A", "B", "C")
	_, _ = g.AddEdge(ids[0], ids[1], "fast")
	_, _ = g.AddEdge(ids[1], ids[2], "slow")

	// 2) Transform. The two input edges meet at B.
	lg := linegraph.LineGraph[string, string](g)

	// 3) Vertex i of the result is edge i of the input.
	fmt.Println("vertex 0:", lg.VertexWeight(core.VertexID(0)))
	fmt.Println("vertex 1:", lg.VertexWeight(core.VertexID(1)))
	fmt.Println("edge 0:", lg.EdgeAt(core.EdgeID(0)).Weight)
	// Output:
	// vertex 0: fast
	// vertex 1: slow
	// edge 0: B
}

// ExampleLineGraph_parallelEdges demonstrates the documented caveat:
// edges connected by two vertices yield doubly-connected result vertices.
func ExampleLineGraph_parallelEdges() {
	// Two parallel edges between the same endpoints.
	g, err := builder.Dipole[int, int](2, nil, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	lg := linegraph.LineGraph[int, int](g)

	// Both input edges share both endpoints, so the two result vertices
	// are connected twice — once per shared endpoint.
	fmt.Printf("V=%d E=%d\n", lg.VertexCount(), lg.EdgeCount())
	for _, e := range lg.Edges() {
		fmt.Printf("%d-%d\n", e.U, e.V)
	}
	// Output:
	// V=2 E=2
	// 0-1
	// 0-1
}
