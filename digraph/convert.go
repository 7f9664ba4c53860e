// Package digraph: directed↔undirected conversion and transposition.
package digraph

// MakeUndirected returns a graph in which every edge has an equal-weight
// reciprocal. For each unordered pair (u,v), self-pairs included:
//
//   - exactly one direction nonzero ⇒ both cells take that weight,
//   - both directions nonzero      ⇒ both cells take merge(w(u,v), w(v,u)),
//   - neither                      ⇒ both cells stay 0.
//
// The merge defaults to DefaultMerge (larger of the two); override with
// WithMerge. The result always satisfies IsUndirected.
// Complexity: O(V²).
func (g *Graph) MakeUndirected(opts ...Option) *Graph {
	o := gatherOptions(opts...)
	c := g.Clone()
	for i := range c.w {
		for j := i; j < len(c.w); j++ {
			a, b := c.w[i][j], c.w[j][i]
			var m float64
			switch {
			case a != 0 && b != 0:
				m = o.merge(a, b)
			case a != 0:
				m = a
			case b != 0:
				m = b
			}
			c.w[i][j] = m
			c.w[j][i] = m
		}
	}

	return c
}

// ToDirected collapses an undirected graph into its half-matrix directed
// form: only cells w(u,v) with v at or after u in vertex order survive;
// the lower triangle is zeroed, so each reciprocal pair becomes a single
// directed entry and self-loops stay on the diagonal. A graph that is not
// IsUndirected is already directed and is returned unchanged (the
// receiver itself).
// Complexity: O(V²).
func (g *Graph) ToDirected() *Graph {
	if !g.IsUndirected() {
		return g
	}

	c := g.Clone()
	for i := range c.w {
		for j := 0; j < i; j++ {
			c.w[i][j] = 0
		}
	}

	return c
}

// Transpose returns the graph with every edge reversed: the weight of
// u→v in the result is the weight of v→u in the receiver. Applying
// Transpose twice yields a graph equal to the original.
// Complexity: O(V²).
func (g *Graph) Transpose() *Graph {
	c := g.Clone()
	for i := range c.w {
		for j := range c.w {
			c.w[i][j] = g.w[j][i]
		}
	}

	return c
}
