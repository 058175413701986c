package digraph

import "iter"

// Walkable is the read surface traversal needs. [Graph] and [Acyclic] both
// satisfy it; so does any type exposing node membership and ordered
// successor lookup.
type Walkable interface {
	HasNode(id string) bool
	Successors(id string) []string
}

// DFS returns a lazy depth-first sequence of the nodes reachable from
// start, excluding start itself. Each reachable node is yielded exactly
// once, in the order a recursive pre-order walk would visit it: the first
// successor's subtree is exhausted before the second successor is touched.
//
// The walk is iterative and stack-based, so cycles in the graph terminate
// via the visited set rather than blowing the call stack. If start is not a
// known node the sequence is empty; that is not an error.
//
// The sequence is single-use and driven by the consumer. Breaking out of
// the range loop abandons the remaining walk.
func DFS(g Walkable, start string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !g.HasNode(start) {
			return
		}
		visited := map[string]bool{start: true}

		// Seed with start's successors reversed so the first successor is
		// popped first.
		succ := g.Successors(start)
		stack := make([]string, 0, len(succ))
		for i := len(succ) - 1; i >= 0; i-- {
			stack = append(stack, succ[i])
		}

		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[cur] {
				continue
			}
			visited[cur] = true
			if !yield(cur) {
				return
			}
			next := g.Successors(cur)
			for i := len(next) - 1; i >= 0; i-- {
				if !visited[next[i]] {
					stack = append(stack, next[i])
				}
			}
		}
	}
}

// BFS returns a lazy breadth-first sequence of the nodes reachable from
// start, excluding start itself. Each reachable node is yielded exactly
// once, level by level, in non-decreasing distance from start.
//
// Nodes are yielded at the moment they are discovered (enqueued), not when
// they are later dequeued. A consumer that stops partway through therefore
// sees a prefix of the discovery order. If start is not a known node the
// sequence is empty.
func BFS(g Walkable, start string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !g.HasNode(start) {
			return
		}
		visited := map[string]bool{start: true}
		queue := []string{start}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range g.Successors(cur) {
				if visited[next] {
					continue
				}
				visited[next] = true
				queue = append(queue, next)
				if !yield(next) {
					return
				}
			}
		}
	}
}

// Reachable reports whether a directed path exists from one node to
// another. A node trivially reaches itself. Returns false if either node is
// unknown.
//
// The probe is an iterative DFS that returns as soon as the target is
// popped, without materializing the full reachable set.
func Reachable(g Walkable, from, to string) bool {
	if !g.HasNode(from) || !g.HasNode(to) {
		return false
	}
	if from == to {
		return true
	}

	visited := make(map[string]bool)
	stack := []string{from}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == to {
			return true
		}
		if visited[cur] {
			continue
		}
		visited[cur] = true
		for _, next := range g.Successors(cur) {
			if !visited[next] {
				stack = append(stack, next)
			}
		}
	}
	return false
}
