// Package digraph: degree queries over matrix rows and columns.
package digraph

// InDegree reports the number of edges entering id — the nonzero entries
// in id's column. With WithWeighted() it reports their weight sum instead.
// An unknown vertex has indegree 0.
// Complexity: O(V).
func (g *Graph) InDegree(id string, opts ...Option) float64 {
	o := gatherOptions(opts...)
	ti, ok := g.index[id]
	if !ok {
		return 0
	}

	var deg float64
	for i := range g.w {
		if wt := g.w[i][ti]; wt != 0 {
			if o.weighted {
				deg += wt
			} else {
				deg++
			}
		}
	}

	return deg
}

// OutDegree reports the number of edges leaving id — the nonzero entries
// in id's row. With WithWeighted() it reports their weight sum instead.
// An unknown vertex has outdegree 0.
// Complexity: O(V).
func (g *Graph) OutDegree(id string, opts ...Option) float64 {
	o := gatherOptions(opts...)
	fi, ok := g.index[id]
	if !ok {
		return 0
	}

	var deg float64
	for _, wt := range g.w[fi] {
		if wt != 0 {
			if o.weighted {
				deg += wt
			} else {
				deg++
			}
		}
	}

	return deg
}

// Degree reports InDegree + OutDegree of id. A self-loop therefore counts
// twice, both in counting and in weighted mode.
//
// With WithUndirected() the graph must satisfy IsUndirected (otherwise
// ErrNotUndirected); reciprocal pairs are first collapsed via ToDirected
// so each undirected edge contributes once rather than twice.
// Complexity: O(V), plus O(V²) for the undirected collapse.
func (g *Graph) Degree(id string, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	// 1. Undirected mode: verify symmetry, then collapse reciprocals.
	src := g
	if o.undirected {
		if !g.IsUndirected() {
			return 0, ErrNotUndirected
		}
		src = g.ToDirected()
	}

	// 2. Sum both directions on the (possibly collapsed) matrix.
	degOpts := make([]Option, 0, 1)
	if o.weighted {
		degOpts = append(degOpts, WithWeighted())
	}

	return src.InDegree(id, degOpts...) + src.OutDegree(id, degOpts...), nil
}
