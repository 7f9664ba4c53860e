// Package digraph: construction and mutation-by-copy primitives.
// Every transform returns a new snapshot; receivers are never mutated.
package digraph

// New builds a graph over the given vertex list with every weight zero.
// Duplicate IDs collapse onto their first occurrence, so the vertex order
// of the result is the order of first appearance.
// Complexity: O(V²) time and memory.
func New(vertices ...string) *Graph {
	g := &Graph{
		verts: make([]string, 0, len(vertices)),
		index: make(map[string]int, len(vertices)),
	}
	// 1. Deduplicate while preserving first-appearance order.
	for _, id := range vertices {
		if _, ok := g.index[id]; ok {
			continue
		}
		g.index[id] = len(g.verts)
		g.verts = append(g.verts, id)
	}
	// 2. Allocate the square zero matrix.
	n := len(g.verts)
	g.w = make([][]float64, n)
	for i := range g.w {
		g.w[i] = make([]float64, n)
	}

	return g
}

// Clone returns a deep copy: fresh vertex list, fresh index table, fresh
// matrix rows. No storage is aliased with the receiver.
// Complexity: O(V²).
func (g *Graph) Clone() *Graph {
	n := len(g.verts)
	c := &Graph{
		verts: make([]string, n),
		index: make(map[string]int, n),
		w:     make([][]float64, n),
	}
	copy(c.verts, g.verts)
	for id, i := range g.index {
		c.index[id] = i
	}
	for i, row := range g.w {
		c.w[i] = make([]float64, n)
		copy(c.w[i], row)
	}

	return c
}

// Order reports the number of vertices.
// Complexity: O(1).
func (g *Graph) Order() int { return len(g.verts) }

// Vertices returns the vertex IDs in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.verts))
	copy(out, g.verts)

	return out
}

// HasVertex reports whether id is a vertex of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// AddVertex returns a graph extended with a zero-weight row and column for
// id. Adding an existing vertex is a no-op: the receiver itself is
// returned (snapshots are immutable, so sharing is safe).
// Complexity: O(V²).
func (g *Graph) AddVertex(id string) *Graph {
	if g.HasVertex(id) {
		return g
	}

	n := len(g.verts)
	c := &Graph{
		verts: make([]string, n, n+1),
		index: make(map[string]int, n+1),
		w:     make([][]float64, n, n+1),
	}
	copy(c.verts, g.verts)
	for vid, i := range g.index {
		c.index[vid] = i
	}
	// 1. Extend every existing row with a zero column for id.
	for i, row := range g.w {
		c.w[i] = make([]float64, n+1)
		copy(c.w[i], row)
	}
	// 2. Append the new zero row covering all vertices plus id itself.
	c.index[id] = n
	c.verts = append(c.verts, id)
	c.w = append(c.w, make([]float64, n+1))

	return c
}

// RemoveVertex returns a graph restricted to the remaining vertices; every
// edge touching id is dropped. Removing an unknown vertex is a no-op and
// returns the receiver.
// Complexity: O(V²).
func (g *Graph) RemoveVertex(id string) *Graph {
	drop, ok := g.index[id]
	if !ok {
		return g
	}

	n := len(g.verts) - 1
	c := &Graph{
		verts: make([]string, 0, n),
		index: make(map[string]int, n),
		w:     make([][]float64, 0, n),
	}
	// 1. Rebuild the vertex list without id, preserving order.
	for _, vid := range g.verts {
		if vid == id {
			continue
		}
		c.index[vid] = len(c.verts)
		c.verts = append(c.verts, vid)
	}
	// 2. Copy the matrix, skipping the dropped row and column.
	for i, row := range g.w {
		if i == drop {
			continue
		}
		nr := make([]float64, 0, n)
		for j, wt := range row {
			if j == drop {
				continue
			}
			nr = append(nr, wt)
		}
		c.w = append(c.w, nr)
	}

	return c
}

// SetEdge returns a graph with the weight of edge from→to set to weight.
// With WithUndirected() the reciprocal cell to→from is set as well.
// If either endpoint is not a vertex of the graph the call is a no-op and
// returns the receiver.
// Complexity: O(V²) (snapshot copy).
func (g *Graph) SetEdge(from, to string, weight float64, opts ...Option) *Graph {
	o := gatherOptions(opts...)
	fi, ok := g.index[from]
	if !ok {
		return g
	}
	ti, ok := g.index[to]
	if !ok {
		return g
	}

	c := g.Clone()
	c.w[fi][ti] = weight
	if o.undirected {
		c.w[ti][fi] = weight
	}

	return c
}

// AddEdge returns a graph with a unit-weight edge from→to, but only when
// no edge is present (current weight exactly 0). An existing edge of any
// nonzero weight makes the call an idempotent no-op returning the
// receiver. WithUndirected() mirrors the write.
// Complexity: O(V²) on write, O(1) on no-op.
func (g *Graph) AddEdge(from, to string, opts ...Option) *Graph {
	if g.Weight(from, to) != 0 {
		return g
	}

	return g.SetEdge(from, to, 1, opts...)
}

// RemoveEdge returns a graph with the edge from→to cleared (weight 0).
// WithUndirected() clears the reciprocal cell as well. Idempotent.
// Complexity: O(V²).
func (g *Graph) RemoveEdge(from, to string, opts ...Option) *Graph {
	return g.SetEdge(from, to, 0, opts...)
}

// Weight reports the raw stored weight of edge from→to. An absent entry —
// either endpoint unknown — defaults to 0, never an error.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) float64 {
	fi, ok := g.index[from]
	if !ok {
		return 0
	}
	ti, ok := g.index[to]
	if !ok {
		return 0
	}

	return g.w[fi][ti]
}
