// Package digraph provides an in-memory directed graph with node and edge
// metadata, lazy traversal, topological ordering, and a cycle-rejecting
// acyclic variant.
//
// # Overview
//
// The package is built around a single mutable store, [Graph], plus free
// functions that read it through small capability interfaces:
//
//   - [Graph]: nodes keyed by opaque string IDs, directed edges with
//     last-write-wins metadata, and an adjacency relation that preserves
//     insertion order.
//   - [TopSort]: Kahn's algorithm over anything implementing [Sortable].
//   - [DFS] and [BFS]: lazy traversal sequences over anything implementing
//     [Walkable].
//   - [Acyclic]: a wrapper whose [Acyclic.AddEdge] rejects any edge that
//     would close a directed cycle.
//
// # Basic Usage
//
// Create a graph with [New], add nodes with [Graph.AddNode], and edges with
// [Graph.AddEdge]. Edge insertion auto-creates missing endpoints:
//
//	g := digraph.New()
//	g.AddNode("app", 1)
//	g.AddEdge(digraph.Edge{From: "app", To: "lib"})
//	g.AddEdge(digraph.Edge{From: "lib", To: "core", Weight: 2})
//
// Query structure with [Graph.Successors], [Graph.Predecessors],
// [Graph.InDegree], [Graph.OutDegree], and related methods.
//
// # Traversal
//
// [DFS] and [BFS] return iter.Seq sequences driven entirely by the
// consumer. Nothing is visited until the caller ranges over the result,
// and breaking out of the loop abandons the walk with no cleanup:
//
//	for id := range digraph.BFS(g, "app") {
//	    fmt.Println(id)
//	}
//
// Both sequences exclude the start node and visit every reachable node
// exactly once. BFS yields nodes in discovery order (at enqueue time), so
// partial consumption still observes level order.
//
// # Ordering
//
// [TopSort] returns a permutation of all nodes in which every edge points
// forward, or [ErrCycle] if no such ordering exists. Ties break FIFO by the
// order nodes became eligible, so the output is deterministic for a given
// insertion history.
//
// # Cycle Prevention
//
// [Acyclic] guards edge insertion with a reachability probe: an edge u→v is
// rejected with [ErrEdgeCycle] whenever v already reaches u. Acceptance is
// order-sensitive; the same edge set may succeed in one insertion order and
// fail in another.
//
// # Absent Values
//
// [Graph.NodeValue] and [Graph.EdgeWeight] report absence through a
// comma-ok second result rather than overloading the zero value. Callers
// that want the historical "missing means zero" behavior can ignore the
// second result.
//
// # Concurrency
//
// Graph instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same graph.
package digraph
