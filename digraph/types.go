// Package digraph: central types, sentinel errors, and per-call options.
// This file declares the Graph value, the Edge record, the sentinel error
// set, and the functional Option machinery with its documented defaults.
package digraph

import "errors"

// Sentinel errors for digraph operations. Callers match via errors.Is.
var (
	// ErrCyclicGraph indicates an operation that requires a DAG
	// (Ancestors, Descendants, TopologicalSort) was given a cyclic graph.
	ErrCyclicGraph = errors.New("digraph: graph contains a cycle")

	// ErrNotUndirected indicates undirected semantics were requested via
	// WithUndirected() but the adjacency matrix is not symmetric.
	ErrNotUndirected = errors.New("digraph: undirected semantics requested on a directed graph")
)

// Graph is an immutable directed, weighted graph over a dense adjacency
// matrix. The zero value is an empty graph with no vertices.
//
// verts holds vertex IDs in insertion order; index maps an ID to its
// row/column position; w[i][j] is the weight of the edge verts[i]→verts[j],
// with 0 meaning "no edge". Rows are never shared between snapshots.
type Graph struct {
	verts []string
	index map[string]int
	w     [][]float64
}

// Edge is one directed edge with a nonzero weight, as reported by Edges.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// MergeFunc combines the two reciprocal weights of an asymmetric pair
// during MakeUndirected.
type MergeFunc func(a, b float64) float64

// Documented defaults for per-call options.
const (
	// DefaultWeighted controls degree queries: false ⇒ count nonzero
	// entries, true ⇒ sum their weights.
	DefaultWeighted = false

	// DefaultUndirected controls edge writes (mirror to the reciprocal
	// cell) and reads (collapse reciprocal pairs before counting).
	DefaultUndirected = false
)

// DefaultMerge keeps the larger of two reciprocal weights. It is the
// MergeFunc used by MakeUndirected unless WithMerge overrides it.
func DefaultMerge(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}

// Option configures a single call. Safe to apply repeatedly (idempotent);
// last writer wins.
type Option func(*options)

// options holds the effective per-call configuration. It is unexported:
// public entry points accept ...Option and resolve them via gatherOptions.
type options struct {
	weighted   bool
	undirected bool
	merge      MergeFunc
}

// WithWeighted switches degree queries from edge counts to weight sums.
func WithWeighted() Option {
	return func(o *options) { o.weighted = true }
}

// WithUndirected requests undirected semantics for a single call:
// writes (SetEdge, AddEdge, RemoveEdge, FromD3) mirror into the reciprocal
// cell; reads (Degree, Size, Edges, ToD3, IsCyclic) first verify
// IsUndirected and collapse reciprocal pairs via ToDirected.
func WithUndirected() Option {
	return func(o *options) { o.undirected = true }
}

// WithMerge overrides the reciprocal-weight merge used by MakeUndirected.
// Passing nil has no effect (DefaultMerge is retained).
func WithMerge(fn MergeFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.merge = fn
		}
	}
}

// gatherOptions resolves option setters against the documented defaults.
// Deterministic: setters apply in order, last writer wins.
func gatherOptions(opts ...Option) options {
	o := options{
		weighted:   DefaultWeighted,
		undirected: DefaultUndirected,
		merge:      DefaultMerge,
	}
	for _, set := range opts {
		set(&o)
	}

	return o
}
