package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planekit/planekit/digraph"
)

// TestNew_ZeroMatrix verifies that a fresh graph has the given vertices,
// in order, and no edges.
func TestNew_ZeroMatrix(t *testing.T) {
	g := digraph.New("a", "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.Equal(t, 3, g.Order())
	for _, u := range g.Vertices() {
		for _, v := range g.Vertices() {
			assert.Zero(t, g.Weight(u, v), "weight(%s,%s)", u, v)
		}
	}
}

// TestNew_DuplicatesCollapse verifies duplicate IDs collapse onto their
// first occurrence.
func TestNew_DuplicatesCollapse(t *testing.T) {
	g := digraph.New("a", "b", "a", "c", "b")
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
}

// TestNew_Empty covers the zero-vertex graph.
func TestNew_Empty(t *testing.T) {
	g := digraph.New()
	assert.Empty(t, g.Vertices())
	assert.Zero(t, g.Order())
	assert.True(t, g.IsUndirected())
}

// TestClone_NoAliasing verifies that a clone shares no storage with its
// source: edits on one snapshot never show through the other.
func TestClone_NoAliasing(t *testing.T) {
	g := digraph.New("a", "b").SetEdge("a", "b", 2)
	c := g.Clone()
	require.Equal(t, 2.0, c.Weight("a", "b"))

	// Transform the clone; the source must be unaffected.
	c2 := c.SetEdge("a", "b", 9)
	assert.Equal(t, 2.0, g.Weight("a", "b"))
	assert.Equal(t, 2.0, c.Weight("a", "b"))
	assert.Equal(t, 9.0, c2.Weight("a", "b"))
}

// TestAddVertex_Extends verifies the new vertex gains a zero row and a
// zero column while existing weights survive.
func TestAddVertex_Extends(t *testing.T) {
	g := digraph.New("a", "b").SetEdge("a", "b", 1.5)
	g2 := g.AddVertex("c")

	assert.Equal(t, []string{"a", "b", "c"}, g2.Vertices())
	assert.Equal(t, 1.5, g2.Weight("a", "b"))
	for _, v := range g2.Vertices() {
		assert.Zero(t, g2.Weight("c", v))
		assert.Zero(t, g2.Weight(v, "c"))
	}
	// Source snapshot untouched.
	assert.Equal(t, []string{"a", "b"}, g.Vertices())
}

// TestAddVertex_ExistingNoOp verifies adding a present vertex returns the
// receiver unchanged.
func TestAddVertex_ExistingNoOp(t *testing.T) {
	g := digraph.New("a", "b")
	assert.Same(t, g, g.AddVertex("a"))
}

// TestRemoveVertex restricts the matrix to the remaining vertices and
// drops every edge touching the removed one.
func TestRemoveVertex(t *testing.T) {
	// a→b, b→c, c→a; removing b leaves only c→a.
	g := digraph.New("a", "b", "c").
		SetEdge("a", "b", 1).
		SetEdge("b", "c", 1).
		SetEdge("c", "a", 1)

	g2 := g.RemoveVertex("b")
	assert.Equal(t, []string{"a", "c"}, g2.Vertices())
	assert.Zero(t, g2.Weight("a", "c"))
	assert.Zero(t, g2.Weight("c", "c"))
	assert.Zero(t, g2.Weight("a", "a"))
	assert.Equal(t, 1.0, g2.Weight("c", "a"))
}

// TestRemoveVertex_UnknownNoOp verifies removing an absent vertex returns
// the receiver.
func TestRemoveVertex_UnknownNoOp(t *testing.T) {
	g := digraph.New("a")
	assert.Same(t, g, g.RemoveVertex("zz"))
}

// TestSetEdge_Directed writes one cell only.
func TestSetEdge_Directed(t *testing.T) {
	g := digraph.New("a", "b").SetEdge("a", "b", 3)
	assert.Equal(t, 3.0, g.Weight("a", "b"))
	assert.Zero(t, g.Weight("b", "a"))
}

// TestSetEdge_UndirectedMirrors writes the reciprocal cell as well.
func TestSetEdge_UndirectedMirrors(t *testing.T) {
	g := digraph.New("a", "b").SetEdge("a", "b", 3, digraph.WithUndirected())
	assert.Equal(t, 3.0, g.Weight("a", "b"))
	assert.Equal(t, 3.0, g.Weight("b", "a"))
	assert.True(t, g.IsUndirected())
}

// TestSetEdge_UnknownVertexNoOp verifies writes naming an absent endpoint
// are silent no-ops.
func TestSetEdge_UnknownVertexNoOp(t *testing.T) {
	g := digraph.New("a", "b")
	assert.Same(t, g, g.SetEdge("a", "zz", 1))
	assert.Same(t, g, g.SetEdge("zz", "b", 1))
}

// TestAddEdge_Idempotent verifies AddEdge writes weight 1 only onto a
// zero cell: repeating it, or adding over an existing heavier edge, is a
// no-op.
func TestAddEdge_Idempotent(t *testing.T) {
	g := digraph.New("a", "b")

	g1 := g.AddEdge("a", "b")
	assert.Equal(t, 1.0, g1.Weight("a", "b"))

	// Second add returns the same snapshot.
	assert.Same(t, g1, g1.AddEdge("a", "b"))

	// An existing nonzero weight is preserved, whatever it is.
	h := g.SetEdge("a", "b", 7.5)
	assert.Same(t, h, h.AddEdge("a", "b"))
	assert.Equal(t, 7.5, h.Weight("a", "b"))
}

// TestRemoveEdge_Idempotent clears a cell and stays cleared.
func TestRemoveEdge_Idempotent(t *testing.T) {
	g := digraph.New("a", "b").SetEdge("a", "b", 4, digraph.WithUndirected())

	g1 := g.RemoveEdge("a", "b")
	assert.Zero(t, g1.Weight("a", "b"))
	assert.Equal(t, 4.0, g1.Weight("b", "a"), "directed removal keeps the reciprocal")

	g2 := g.RemoveEdge("a", "b", digraph.WithUndirected())
	assert.Zero(t, g2.Weight("a", "b"))
	assert.Zero(t, g2.Weight("b", "a"))

	g3 := g2.RemoveEdge("a", "b", digraph.WithUndirected())
	assert.Equal(t, g2.Vertices(), g3.Vertices())
	assert.Zero(t, g3.Weight("a", "b"))
}

// TestWeight_UnknownDefaultsZero verifies lookups on absent vertices
// yield 0 rather than failing.
func TestWeight_UnknownDefaultsZero(t *testing.T) {
	g := digraph.New("a")
	assert.Zero(t, g.Weight("a", "zz"))
	assert.Zero(t, g.Weight("zz", "a"))
	assert.Zero(t, g.Weight("x", "y"))
	assert.False(t, g.HasVertex("zz"))
	assert.True(t, g.HasVertex("a"))
}

// TestTransforms_NeverMutateInput runs a chain of transforms and checks
// the original snapshot still reads as freshly built.
func TestTransforms_NeverMutateInput(t *testing.T) {
	g := digraph.New("a", "b", "c").SetEdge("a", "b", 2).SetEdge("b", "a", 5)

	_ = g.AddVertex("d")
	_ = g.RemoveVertex("a")
	_ = g.MakeUndirected()
	_ = g.Transpose()
	_, _ = g.TopologicalSort()

	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.Equal(t, 2.0, g.Weight("a", "b"))
	assert.Equal(t, 5.0, g.Weight("b", "a"))
	assert.Zero(t, g.Weight("b", "c"))
}
