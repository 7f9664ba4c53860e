// Package digraph: structural predicates over the adjacency matrix.
package digraph

// IsUndirected reports whether the matrix is symmetric: for every vertex
// pair (u,v), weight(u,v) == weight(v,u). Self-loops sit on the diagonal
// and satisfy symmetry trivially. The empty graph is undirected.
// Complexity: O(V²).
func (g *Graph) IsUndirected() bool {
	for i := range g.w {
		for j := i + 1; j < len(g.w); j++ {
			if g.w[i][j] != g.w[j][i] {
				return false
			}
		}
	}

	return true
}

// VertexPairs returns every unordered vertex pair {u,v} with u preceding
// or equal to v in vertex order, including the (u,u) self-pairs. The
// result depends only on the vertex set, not on which edges exist.
// Complexity: O(V²).
func (g *Graph) VertexPairs() [][2]string {
	n := len(g.verts)
	pairs := make([][2]string, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			pairs = append(pairs, [2]string{g.verts[i], g.verts[j]})
		}
	}

	return pairs
}
