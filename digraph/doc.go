// Package digraph implements directed, weighted graphs over a dense
// adjacency matrix, together with the structural algorithms that make the
// representation useful: cycle detection, Kahn topological sort,
// ancestor/descendant closure, directed↔undirected conversion, and a
// node/link interchange form for force-directed visualization tools.
//
// Representation:
//
//	A Graph is a square |V|×|V| matrix of float64 weights keyed by an
//	insertion-ordered vertex list. A weight of exactly 0 means "no edge";
//	any other value (including negative) is an edge with that weight.
//	Self-loops are permitted and meaningful: a loop on v makes v its own
//	child and parent, constitutes a cycle, and counts twice toward
//	undirected degree.
//
// Immutability:
//
//	Graphs are immutable values. Every transform (SetEdge, AddVertex,
//	MakeUndirected, Transpose, ...) returns a new snapshot and never
//	mutates its receiver, so snapshots may be shared between goroutines
//	without locks. Where a transform is a provable no-op (AddVertex on an
//	existing vertex, ToDirected on an already-directed graph) the receiver
//	itself is returned.
//
// Determinism:
//
//	Vertex order is insertion order and is preserved by every transform.
//	Traversal order, VertexPairs, Edges, topological-sort tie-breaking and
//	the interchange forms all follow it, so equal construction histories
//	produce equal outputs.
//
// Options:
//
//	Per-call behavior is selected with functional options:
//	WithUndirected() mirrors writes / requests reciprocal-collapsed reads,
//	WithWeighted() switches degree queries from edge counts to weight
//	sums, WithMerge(fn) overrides the reciprocal-weight merge used by
//	MakeUndirected. All default to off (documented Default* constants).
//
// Errors:
//
//	ErrCyclicGraph   — Ancestors, Descendants and TopologicalSort require
//	                   an acyclic graph.
//	ErrNotUndirected — Degree, Size, Edges, ToD3 and IsCyclic reject
//	                   WithUndirected() when the matrix is asymmetric.
//
// Both are precondition violations: guard with IsCyclic / IsUndirected
// rather than treating them as recoverable runtime conditions. No other
// operation fails — lookups on unknown vertices yield zero values.
//
// Complexity:
//
//   - Space:  O(V²) per snapshot (dense matrix by design)
//   - Edge lookup: O(1); degree queries: O(V); most transforms: O(V²)
//   - IsCyclic / TopologicalSort: O(V²) (every matrix cell scanned once)
package digraph
