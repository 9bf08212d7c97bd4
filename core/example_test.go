package core_test

import (
	"fmt"

	"github.com/katalvlaran/waypath/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	// 1) Create an undirected graph: each AddEdge also stores the mirror arc.
	g := core.NewGraph(core.WithDirected(false))

	// 2) Add weighted edges (auto-adds vertices A, B, C):
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddVertex("E")

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	nbs, _ := g.Neighbors("B")
	for _, e := range nbs {
		fmt.Printf("%s→%s (%g)\n", e.From, e.To, e.Weight)
	}

	// Output:
	// Vertices: [A B C E]
	// Edge B→A exists? true
	// B→A (1)
	// B→C (2)
}

// ExampleFromAdjacency builds a graph from the raw adjacency-list mapping.
func ExampleFromAdjacency() {
	g, err := core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "B", Weight: 1}},
		"B": {{To: "A", Weight: 1}},
		"E": nil,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices(), g.EdgeCount())
	// Output: [A B E] 2
}
