package digraph

import "errors"

var (
	// ErrCycle is returned by [TopSort] when the graph contains at least one
	// directed cycle, so no complete topological ordering exists. The partial
	// ordering computed before the cycle was detected is discarded.
	ErrCycle = errors.New("graph contains a cycle")

	// ErrEdgeCycle is returned by [Acyclic.AddEdge] when inserting the edge
	// would close a directed cycle. The rejection is clean: edge and
	// adjacency state are exactly as they were before the call.
	ErrEdgeCycle = errors.New("edge would create a cycle")
)

// Edge describes a directed connection between two nodes. From and To are
// node IDs; Name and Weight are edge metadata stored per ordered (From, To)
// pair with last-write-wins semantics.
//
// FromValue and ToValue seed the values of endpoints that [Graph.AddEdge]
// has to auto-create. They are consulted only when the endpoint does not
// exist yet and are never stored with the edge; an existing node's value is
// not touched by an edge insertion.
type Edge struct {
	From   string  // source node ID
	To     string  // destination node ID
	Name   string  // optional edge label
	Weight float64 // optional edge weight

	FromValue int // initial value if From is auto-created
	ToValue   int // initial value if To is auto-created
}

// edgeKey identifies the metadata record for an ordered node pair.
type edgeKey struct {
	from, to string
}

// edgeInfo is the stored per-pair metadata. Re-adding the same pair
// overwrites it in place.
type edgeInfo struct {
	name   string
	weight float64
}

// arc is one adjacency entry: a destination plus the edge name that was
// current when the entry was appended. Duplicate entries for the same
// destination are preserved (see [Graph.AddEdge]).
type arc struct {
	to   string
	name string
}

// Graph is a mutable directed graph with integer node values and named,
// weighted edges. Nodes are created explicitly via [Graph.AddNode] or
// implicitly by [Graph.AddEdge]; neither nodes nor edges can be removed.
//
// The zero value is not usable - use [New] to create a Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	order     []string            // node IDs in insertion order
	nodes     map[string]int      // node ID -> value
	edges     map[edgeKey]edgeInfo
	edgeOrder []edgeKey           // distinct pairs in first-insertion order
	adj       map[string][]arc    // node ID -> outgoing arcs in insertion order
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]int),
		edges: make(map[edgeKey]edgeInfo),
		adj:   make(map[string][]arc),
	}
}

// AddNode inserts the node or, if it already exists, overwrites its value
// (last write wins). The node's adjacency slot is initialized if needed, so
// the call is idempotent with respect to graph structure. There is no
// separate update operation.
func (g *Graph) AddNode(id string, value int) {
	if _, exists := g.nodes[id]; !exists {
		g.order = append(g.order, id)
	}
	g.nodes[id] = value
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
}

// ensureNode creates the node with the given value only if it is missing.
// Unlike AddNode it never overwrites an existing value.
func (g *Graph) ensureNode(id string, value int) {
	if _, exists := g.nodes[id]; !exists {
		g.AddNode(id, value)
	}
}

// AddEdge records a directed edge From→To. Missing endpoints are
// auto-created, seeded with the edge's FromValue/ToValue; endpoints that
// already exist keep their current value.
//
// Metadata (Name, Weight) is keyed by the ordered pair and overwritten if
// the pair is added again. The adjacency entry, however, is appended
// unconditionally: re-adding the same pair leaves a second structural entry
// for the destination. Traversals hide the duplicate behind their visited
// set, but [Graph.OutDegree] counts it.
func (g *Graph) AddEdge(e Edge) {
	g.ensureNode(e.From, e.FromValue)
	g.ensureNode(e.To, e.ToValue)

	key := edgeKey{from: e.From, to: e.To}
	if _, seen := g.edges[key]; !seen {
		g.edgeOrder = append(g.edgeOrder, key)
	}
	g.edges[key] = edgeInfo{name: e.Name, weight: e.Weight}
	g.adj[e.From] = append(g.adj[e.From], arc{to: e.To, name: e.Name})
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Nodes returns all node IDs in insertion order.
// The returned slice is a copy and may be modified freely.
func (g *Graph) Nodes() []string {
	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

// NodeValue returns the node's value and true, or 0 and false if the node
// does not exist.
func (g *Graph) NodeValue(id string) (int, bool) {
	v, ok := g.nodes[id]
	return v, ok
}

// EdgeWeight returns the weight stored for the edge from→to and true, or
// 0 and false if no such edge exists.
func (g *Graph) EdgeWeight(from, to string) (float64, bool) {
	info, ok := g.edges[edgeKey{from: from, to: to}]
	return info.weight, ok
}

// EdgeName returns the name stored for the edge from→to and true, or
// "" and false if no such edge exists.
func (g *Graph) EdgeName(from, to string) (string, bool) {
	info, ok := g.edges[edgeKey{from: from, to: to}]
	return info.name, ok
}

// Edges returns the stored edges, one per distinct ordered pair, in
// first-insertion order. FromValue and ToValue are always zero in the
// returned edges; they are insertion parameters, not stored state.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edgeOrder))
	for i, key := range g.edgeOrder {
		info := g.edges[key]
		out[i] = Edge{From: key.from, To: key.to, Name: info.name, Weight: info.weight}
	}
	return out
}

// Successors returns the destinations of the node's outgoing arcs in
// insertion order, including duplicates left by re-added pairs.
// Returns nil if the node has no successors or doesn't exist.
func (g *Graph) Successors(id string) []string {
	arcs := g.adj[id]
	if len(arcs) == 0 {
		return nil
	}
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.to
	}
	return out
}

// Predecessors returns the IDs of nodes with an edge into id. The result
// has one entry per distinct ordered pair; the order is not guaranteed.
// Returns nil if the node has no predecessors or doesn't exist.
func (g *Graph) Predecessors(id string) []string {
	var out []string
	for _, key := range g.edgeOrder {
		if key.to == id {
			out = append(out, key.from)
		}
	}
	return out
}

// InDegree returns the number of distinct edges into the node.
// Returns 0 if the node doesn't exist. Runs in O(E).
func (g *Graph) InDegree(id string) int {
	n := 0
	for _, key := range g.edgeOrder {
		if key.to == id {
			n++
		}
	}
	return n
}

// OutDegree returns the number of adjacency entries leaving the node,
// counting duplicates from re-added pairs. Returns 0 if the node doesn't
// exist.
func (g *Graph) OutDegree(id string) int {
	return len(g.adj[id])
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct ordered pairs with a stored edge.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Sources returns nodes with no incoming edges, in insertion order.
func (g *Graph) Sources() []string {
	var out []string
	for _, id := range g.order {
		if g.InDegree(id) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Sinks returns nodes with no outgoing edges, in insertion order.
func (g *Graph) Sinks() []string {
	var out []string
	for _, id := range g.order {
		if len(g.adj[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}
