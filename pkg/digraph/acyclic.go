package digraph

import "fmt"

// Acyclic is a directed graph whose edge relation is guaranteed to stay
// free of directed cycles. It wraps an unexported [Graph]; the wrapper's
// [Acyclic.AddEdge] is the only way to insert an edge, so the invariant
// cannot be bypassed by a handle to the underlying store.
//
// The zero value is not usable - use [NewAcyclic].
// Acyclic is not safe for concurrent use without external synchronization.
type Acyclic struct {
	g *Graph
}

// NewAcyclic creates an empty acyclic graph.
func NewAcyclic() *Acyclic {
	return &Acyclic{g: New()}
}

// AddNode inserts the node or overwrites its value, exactly as
// [Graph.AddNode]. Isolated nodes can never form a cycle, so no check is
// needed.
func (a *Acyclic) AddNode(id string, value int) {
	a.g.AddNode(id, value)
}

// AddEdge inserts the edge From→To unless doing so would close a directed
// cycle, i.e. unless To already reaches From (a self-loop counts: a node
// trivially reaches itself).
//
// Missing endpoints are auto-created before the check runs, and the created
// nodes persist even if the edge is then rejected. On rejection the error
// wraps [ErrEdgeCycle] and the edge and adjacency state are exactly as they
// were before the call.
//
// Acceptance is order-sensitive: an edge set that is acyclic as a whole can
// still be rejected partway through if an intermediate insertion order
// closes a loop.
func (a *Acyclic) AddEdge(e Edge) error {
	a.g.ensureNode(e.From, e.FromValue)
	a.g.ensureNode(e.To, e.ToValue)

	if Reachable(a.g, e.To, e.From) {
		return fmt.Errorf("add edge %s -> %s: %w", e.From, e.To, ErrEdgeCycle)
	}

	a.g.AddEdge(e)
	return nil
}

// HasNode reports whether a node with the given ID exists.
func (a *Acyclic) HasNode(id string) bool { return a.g.HasNode(id) }

// Nodes returns all node IDs in insertion order.
func (a *Acyclic) Nodes() []string { return a.g.Nodes() }

// NodeValue returns the node's value and true, or 0 and false if the node
// does not exist.
func (a *Acyclic) NodeValue(id string) (int, bool) { return a.g.NodeValue(id) }

// EdgeWeight returns the weight stored for the edge from→to and true, or
// 0 and false if no such edge exists.
func (a *Acyclic) EdgeWeight(from, to string) (float64, bool) { return a.g.EdgeWeight(from, to) }

// EdgeName returns the name stored for the edge from→to and true, or
// "" and false if no such edge exists.
func (a *Acyclic) EdgeName(from, to string) (string, bool) { return a.g.EdgeName(from, to) }

// Edges returns the stored edges in first-insertion order.
func (a *Acyclic) Edges() []Edge { return a.g.Edges() }

// Successors returns the destinations of the node's outgoing arcs in
// insertion order.
func (a *Acyclic) Successors(id string) []string { return a.g.Successors(id) }

// Predecessors returns the IDs of nodes with an edge into id.
func (a *Acyclic) Predecessors(id string) []string { return a.g.Predecessors(id) }

// InDegree returns the number of distinct edges into the node.
func (a *Acyclic) InDegree(id string) int { return a.g.InDegree(id) }

// OutDegree returns the number of adjacency entries leaving the node.
func (a *Acyclic) OutDegree(id string) int { return a.g.OutDegree(id) }

// NodeCount returns the number of nodes in the graph.
func (a *Acyclic) NodeCount() int { return a.g.NodeCount() }

// EdgeCount returns the number of distinct ordered pairs with a stored edge.
func (a *Acyclic) EdgeCount() int { return a.g.EdgeCount() }

// Sources returns nodes with no incoming edges, in insertion order.
func (a *Acyclic) Sources() []string { return a.g.Sources() }

// Sinks returns nodes with no outgoing edges, in insertion order.
func (a *Acyclic) Sinks() []string { return a.g.Sinks() }
