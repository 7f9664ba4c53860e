// Package digraph: cycle detection for directed and undirected graphs.
//
// Directed mode runs a depth-first search with three-color marking: a
// back-edge into a Gray vertex (one still on the recursion path, the
// start included — so any self-loop) signals a cycle. Undirected mode
// tracks the immediate parent per recursion branch and treats any other
// visited neighbor as a cycle, so a single reciprocal edge u—v is NOT a
// cycle while a self-loop still is.
//
// Complexity:
//
//   - Time:   O(V²) (each matrix row scanned at most once)
//   - Memory: O(V)  (state slice + recursion stack)
package digraph

// Visitation state of a vertex during DFS.
const (
	white = iota // not yet visited
	gray         // on the current recursion path
	black        // fully explored
)

// IsCyclic reports whether the graph contains a cycle.
//
// With WithUndirected() the graph must satisfy IsUndirected (otherwise
// ErrNotUndirected) and the undirected back-edge rule applies. Without it
// the directed rule applies and the call cannot fail.
func (g *Graph) IsCyclic(opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if o.undirected {
		if !g.IsUndirected() {
			return false, ErrNotUndirected
		}

		return g.undirectedCyclic(), nil
	}

	return g.directedCyclic(), nil
}

// directedCyclic drives the three-color DFS from every unvisited vertex,
// in vertex order, so finished components are never re-explored.
func (g *Graph) directedCyclic() bool {
	state := make([]int, len(g.verts))
	for i := range g.verts {
		if state[i] == white && g.visitDirected(i, state) {
			return true
		}
	}

	return false
}

// visitDirected recursively explores from vertex i. A neighbor already on
// the recursion path (Gray) is a back-edge; i itself is Gray at that
// point, so w[i][i] != 0 is caught by the same rule.
func (g *Graph) visitDirected(i int, state []int) bool {
	state[i] = gray
	for j, wt := range g.w[i] {
		if wt == 0 {
			continue
		}
		switch state[j] {
		case gray:
			return true
		case white:
			if g.visitDirected(j, state) {
				return true
			}
		}
	}
	state[i] = black

	return false
}

// undirectedCyclic drives the parent-tracking DFS from every unvisited
// vertex. Requires a symmetric matrix (checked by the caller).
func (g *Graph) undirectedCyclic() bool {
	visited := make([]bool, len(g.verts))
	for i := range g.verts {
		if !visited[i] && g.visitUndirected(i, -1, visited) {
			return true
		}
	}

	return false
}

// visitUndirected recursively explores from vertex i, skipping the edge
// back to parent. Any other visited neighbor closes a cycle; a self-loop
// is a cycle outright.
func (g *Graph) visitUndirected(i, parent int, visited []bool) bool {
	visited[i] = true
	for j, wt := range g.w[i] {
		if wt == 0 {
			continue
		}
		// Self-loop: a cycle by itself.
		if j == i {
			return true
		}
		// The reciprocal half of the edge we arrived by is not a cycle.
		if j == parent {
			continue
		}
		if visited[j] {
			return true
		}
		if g.visitUndirected(j, i, visited) {
			return true
		}
	}

	return false
}
