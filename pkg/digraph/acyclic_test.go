package digraph

import (
	"errors"
	"slices"
	"testing"
)

func TestAcyclicAddEdge(t *testing.T) {
	a := NewAcyclic()

	if err := a.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge(a->b) error = %v", err)
	}
	if err := a.AddEdge(Edge{From: "b", To: "c"}); err != nil {
		t.Fatalf("AddEdge(b->c) error = %v", err)
	}
	if got := a.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2", got)
	}
}

func TestAcyclicRejectsBackEdge(t *testing.T) {
	a := NewAcyclic()
	if err := a.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge(a->b) error = %v", err)
	}

	err := a.AddEdge(Edge{From: "b", To: "a"})
	if !errors.Is(err, ErrEdgeCycle) {
		t.Fatalf("AddEdge(b->a) error = %v, want ErrEdgeCycle", err)
	}
}

func TestAcyclicRejectsSelfLoop(t *testing.T) {
	a := NewAcyclic()
	a.AddNode("a", 0)

	if err := a.AddEdge(Edge{From: "a", To: "a"}); !errors.Is(err, ErrEdgeCycle) {
		t.Fatalf("AddEdge(a->a) error = %v, want ErrEdgeCycle", err)
	}
}

func TestAcyclicRejectionLeavesStateUnchanged(t *testing.T) {
	a := NewAcyclic()
	for _, e := range [][2]string{
		{"shirt", "pants"}, {"shirt", "socks"}, {"shirt", "vest"},
		{"pants", "tie"}, {"pants", "belt"}, {"pants", "shoes"},
		{"socks", "shoes"},
		{"tie", "jacket"}, {"belt", "jacket"}, {"vest", "jacket"}, {"shoes", "jacket"},
	} {
		if err := a.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%s->%s) error = %v", e[0], e[1], err)
		}
	}

	edgesBefore := a.Edges()
	succBefore := a.Successors("jacket")

	err := a.AddEdge(Edge{From: "jacket", To: "shirt"})
	if !errors.Is(err, ErrEdgeCycle) {
		t.Fatalf("AddEdge(jacket->shirt) error = %v, want ErrEdgeCycle", err)
	}

	if got := a.Edges(); !slices.Equal(mustPairs(got), mustPairs(edgesBefore)) {
		t.Errorf("edges changed after rejection: %v", got)
	}
	if got := a.Successors("jacket"); !slices.Equal(got, succBefore) {
		t.Errorf("Successors(jacket) = %v after rejection, want %v", got, succBefore)
	}
	if _, ok := a.EdgeWeight("jacket", "shirt"); ok {
		t.Error("rejected edge has stored metadata")
	}
}

// mustPairs flattens edges to from->to strings for order-sensitive comparison.
func mustPairs(edges []Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.From + "->" + e.To
	}
	return out
}

func TestAcyclicRejectionKeepsAutoCreatedEndpoints(t *testing.T) {
	a := NewAcyclic()
	if err := a.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatalf("AddEdge(a->b) error = %v", err)
	}

	// b->a is rejected, but a freshly referenced endpoint would persist.
	// Here both endpoints already exist, so only the node count matters.
	before := a.NodeCount()
	if err := a.AddEdge(Edge{From: "b", To: "a"}); !errors.Is(err, ErrEdgeCycle) {
		t.Fatalf("AddEdge(b->a) error = %v, want ErrEdgeCycle", err)
	}
	if got := a.NodeCount(); got != before {
		t.Errorf("NodeCount() = %d after rejection, want %d", got, before)
	}
}

func TestAcyclicInsertionOrderSensitivity(t *testing.T) {
	// A->C, B->A, B->C succeeds as a whole.
	a := NewAcyclic()
	for _, e := range [][2]string{{"A", "C"}, {"B", "A"}, {"B", "C"}} {
		if err := a.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%s->%s) error = %v", e[0], e[1], err)
		}
	}

	// The same final edge set is rejected when an intermediate step closes
	// a loop.
	b := NewAcyclic()
	if err := b.AddEdge(Edge{From: "A", To: "C"}); err != nil {
		t.Fatalf("AddEdge(A->C) error = %v", err)
	}
	if err := b.AddEdge(Edge{From: "C", To: "A"}); !errors.Is(err, ErrEdgeCycle) {
		t.Fatalf("AddEdge(C->A) error = %v, want ErrEdgeCycle", err)
	}
}

func TestAcyclicTransitiveRejection(t *testing.T) {
	a := NewAcyclic()
	if err := a.AddEdge(Edge{From: "a", To: "b"}); err != nil {
		t.Fatal(err)
	}
	if err := a.AddEdge(Edge{From: "b", To: "c"}); err != nil {
		t.Fatal(err)
	}

	// c reaches a through b, so c->a must be rejected even though no direct
	// back edge exists.
	if err := a.AddEdge(Edge{From: "c", To: "a"}); !errors.Is(err, ErrEdgeCycle) {
		t.Fatalf("AddEdge(c->a) error = %v, want ErrEdgeCycle", err)
	}
}

func TestAcyclicAlwaysSorts(t *testing.T) {
	a := NewAcyclic()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"a", "c"}} {
		if err := a.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatalf("AddEdge(%s->%s) error = %v", e[0], e[1], err)
		}
	}

	got, err := TopSort(a)
	if err != nil {
		t.Fatalf("TopSort() error = %v", err)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("TopSort() = %v, want %v", got, want)
	}
}

func TestAcyclicTraversal(t *testing.T) {
	a := NewAcyclic()
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}} {
		if err := a.AddEdge(Edge{From: e[0], To: e[1]}); err != nil {
			t.Fatal(err)
		}
	}

	if got, want := collect(DFS(a, "a")), []string{"b", "d", "c"}; !slices.Equal(got, want) {
		t.Errorf("DFS(a) = %v, want %v", got, want)
	}
	if got, want := collect(BFS(a, "a")), []string{"b", "c", "d"}; !slices.Equal(got, want) {
		t.Errorf("BFS(a) = %v, want %v", got, want)
	}
}
