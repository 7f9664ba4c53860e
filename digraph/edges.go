// Package digraph: edge enumeration and counting.
package digraph

// Edges returns every edge with a nonzero weight, rows in vertex order
// and columns in vertex order within each row.
//
// With WithUndirected() the graph must satisfy IsUndirected (otherwise
// ErrNotUndirected); reciprocal pairs are collapsed via ToDirected first,
// so each undirected edge is reported once.
// Complexity: O(V²).
func (g *Graph) Edges(opts ...Option) ([]Edge, error) {
	o := gatherOptions(opts...)

	src := g
	if o.undirected {
		if !g.IsUndirected() {
			return nil, ErrNotUndirected
		}
		src = g.ToDirected()
	}

	edges := make([]Edge, 0, len(src.verts))
	for i, row := range src.w {
		for j, wt := range row {
			if wt != 0 {
				edges = append(edges, Edge{From: src.verts[i], To: src.verts[j], Weight: wt})
			}
		}
	}

	return edges, nil
}

// Size reports the number of edges, with the same WithUndirected()
// collapse and precondition as Edges.
// Complexity: O(V²).
func (g *Graph) Size(opts ...Option) (int, error) {
	edges, err := g.Edges(opts...)
	if err != nil {
		return 0, err
	}

	return len(edges), nil
}
