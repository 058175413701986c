package digraph_test

import (
	"errors"
	"fmt"

	"github.com/depwalk/depwalk/pkg/digraph"
)

func ExampleGraph() {
	g := digraph.New()
	g.AddNode("app", 1)
	g.AddEdge(digraph.Edge{From: "app", To: "lib", Weight: 2})
	g.AddEdge(digraph.Edge{From: "lib", To: "core"})

	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Successors of app:", g.Successors("app"))
	w, _ := g.EdgeWeight("app", "lib")
	fmt.Println("Weight app->lib:", w)
	// Output:
	// Nodes: [app lib core]
	// Successors of app: [lib]
	// Weight app->lib: 2
}

func ExampleDFS() {
	g := digraph.New()
	g.AddEdge(digraph.Edge{From: "a", To: "b"})
	g.AddEdge(digraph.Edge{From: "a", To: "c"})
	g.AddEdge(digraph.Edge{From: "b", To: "d"})
	g.AddEdge(digraph.Edge{From: "c", To: "d"})
	g.AddEdge(digraph.Edge{From: "d", To: "e"})

	for id := range digraph.DFS(g, "a") {
		fmt.Println(id)
	}
	// Output:
	// b
	// d
	// e
	// c
}

func ExampleBFS() {
	g := digraph.New()
	g.AddEdge(digraph.Edge{From: "a", To: "b"})
	g.AddEdge(digraph.Edge{From: "a", To: "c"})
	g.AddEdge(digraph.Edge{From: "b", To: "d"})
	g.AddEdge(digraph.Edge{From: "c", To: "d"})
	g.AddEdge(digraph.Edge{From: "d", To: "e"})

	for id := range digraph.BFS(g, "a") {
		fmt.Println(id)
	}
	// Output:
	// b
	// c
	// d
	// e
}

func ExampleTopSort() {
	g := digraph.New()
	g.AddEdge(digraph.Edge{From: "shirt", To: "pants"})
	g.AddEdge(digraph.Edge{From: "pants", To: "belt"})
	g.AddEdge(digraph.Edge{From: "belt", To: "jacket"})

	order, err := digraph.TopSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output:
	// [shirt pants belt jacket]
}

func ExampleAcyclic_AddEdge() {
	a := digraph.NewAcyclic()
	_ = a.AddEdge(digraph.Edge{From: "jacket", To: "shirt"})

	err := a.AddEdge(digraph.Edge{From: "shirt", To: "jacket"})
	fmt.Println(errors.Is(err, digraph.ErrEdgeCycle))
	// Output:
	// true
}
