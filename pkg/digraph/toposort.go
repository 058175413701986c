package digraph

// Sortable is the read surface topological sorting needs. [Graph] and
// [Acyclic] both satisfy it.
type Sortable interface {
	Nodes() []string
	Successors(id string) []string
	InDegree(id string) int
}

// TopSort returns a topological ordering of all nodes: a permutation in
// which every edge points from an earlier position to a later one. The
// ordering is computed with Kahn's algorithm.
//
// Ties break FIFO: the initial indegree-zero nodes enter the queue in
// Nodes() order, and every node enters the moment its last incoming edge is
// accounted for. Given a deterministic insertion history the output is
// deterministic, though not unique among valid orderings in general.
//
// Returns [ErrCycle] if the graph contains a directed cycle; no partial
// ordering is returned. An empty graph sorts to an empty slice.
func TopSort(g Sortable) ([]string, error) {
	nodes := g.Nodes()

	indegree := make(map[string]int, len(nodes))
	for _, id := range nodes {
		indegree[id] = g.InDegree(id)
	}

	queue := make([]string, 0, len(nodes))
	for _, id := range nodes {
		if indegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	result := make([]string, 0, len(nodes))
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		result = append(result, cur)

		for _, next := range g.Successors(cur) {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(result) != len(nodes) {
		return nil, ErrCycle
	}
	return result, nil
}
