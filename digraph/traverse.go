// Package digraph: one-step traversal and transitive closure.
//
// Children/Parents are single row/column scans. Descendants/Ancestors are
// their transitive closures, computed with an explicit worklist rather
// than recursion so call depth never limits graph size. Both closures
// require an acyclic graph: the closure of a cyclic graph has no
// termination guarantee in the reference semantics, so it is rejected
// up front with ErrCyclicGraph.
//
// Complexity:
//
//   - Children/Parents:       O(V)
//   - Descendants/Ancestors:  O(V²) time, O(V) memory
package digraph

// Children returns the vertices w with weight(id, w) != 0, in vertex
// order. A self-loop makes id its own child. Unknown id yields an empty
// slice.
func (g *Graph) Children(id string) []string {
	fi, ok := g.index[id]
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(g.verts))
	for j, wt := range g.w[fi] {
		if wt != 0 {
			out = append(out, g.verts[j])
		}
	}

	return out
}

// Parents returns the vertices u with weight(u, id) != 0, in vertex
// order. A self-loop makes id its own parent. Unknown id yields an empty
// slice.
func (g *Graph) Parents(id string) []string {
	ti, ok := g.index[id]
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(g.verts))
	for i := range g.w {
		if g.w[i][ti] != 0 {
			out = append(out, g.verts[i])
		}
	}

	return out
}

// Descendants returns every vertex reachable from id by following edges
// forward, in discovery order (children first, then their children, each
// vertex once). id itself is never included. Returns ErrCyclicGraph when
// the graph is cyclic.
func (g *Graph) Descendants(id string) ([]string, error) {
	return g.closure(id, false)
}

// Ancestors returns every vertex from which id is reachable, in discovery
// order (parents first, then their parents, each vertex once). id itself
// is never included. Returns ErrCyclicGraph when the graph is cyclic.
func (g *Graph) Ancestors(id string) ([]string, error) {
	return g.closure(id, true)
}

// closure computes the forward (reverse=false) or backward (reverse=true)
// transitive closure of id with a FIFO worklist.
func (g *Graph) closure(id string, reverse bool) ([]string, error) {
	// 1. Precondition: the closure is only defined on a DAG.
	if g.directedCyclic() {
		return nil, ErrCyclicGraph
	}

	start, ok := g.index[id]
	if !ok {
		return []string{}, nil
	}

	// 2. Breadth-first worklist over the matrix; seen guards re-entry.
	seen := make([]bool, len(g.verts))
	seen[start] = true
	out := make([]string, 0, len(g.verts))
	queue := g.step(start, reverse, seen, &out)
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		queue = append(queue, g.step(i, reverse, seen, &out)...)
	}

	return out, nil
}

// step appends the unseen neighbors of vertex i (row scan forward, column
// scan in reverse) to out in vertex order and returns their indices.
func (g *Graph) step(i int, reverse bool, seen []bool, out *[]string) []int {
	next := make([]int, 0, len(g.verts))
	for j := range g.verts {
		wt := g.w[i][j]
		if reverse {
			wt = g.w[j][i]
		}
		if wt == 0 || seen[j] {
			continue
		}
		seen[j] = true
		*out = append(*out, g.verts[j])
		next = append(next, j)
	}

	return next
}
