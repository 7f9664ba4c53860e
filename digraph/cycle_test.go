package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planekit/planekit/digraph"
)

// TestIsCyclic_Chain verifies that a→b→c is acyclic until the closing
// edge c→a arrives.
func TestIsCyclic_Chain(t *testing.T) {
	g := digraph.New("a", "b", "c").
		AddEdge("a", "b").
		AddEdge("b", "c")

	cyclic, err := g.IsCyclic()
	require.NoError(t, err)
	assert.False(t, cyclic)

	closed := g.AddEdge("c", "a")
	cyclic, err = closed.IsCyclic()
	require.NoError(t, err)
	assert.True(t, cyclic)
}

// TestIsCyclic_SelfLoop verifies a single self-loop is a cycle on its
// own, in both directed and undirected mode.
func TestIsCyclic_SelfLoop(t *testing.T) {
	g := digraph.New("a", "b").SetEdge("a", "a", 0.5)

	cyclic, err := g.IsCyclic()
	require.NoError(t, err)
	assert.True(t, cyclic)

	// The diagonal is trivially symmetric, so undirected mode applies too.
	require.True(t, g.IsUndirected())
	cyclic, err = g.IsCyclic(digraph.WithUndirected())
	require.NoError(t, err)
	assert.True(t, cyclic)
}

// TestIsCyclic_DiamondAcyclic verifies re-convergent paths (a diamond)
// are not mistaken for a cycle.
func TestIsCyclic_DiamondAcyclic(t *testing.T) {
	g := digraph.New("a", "b", "c", "d").
		AddEdge("a", "b").
		AddEdge("a", "c").
		AddEdge("b", "d").
		AddEdge("c", "d")

	cyclic, err := g.IsCyclic()
	require.NoError(t, err)
	assert.False(t, cyclic)
}

// TestIsCyclic_UndirectedReciprocalNotACycle verifies a single mirrored
// edge u—v is not a cycle under the parent-skip rule, while a mirrored
// triangle is.
func TestIsCyclic_UndirectedReciprocalNotACycle(t *testing.T) {
	pair := digraph.New("a", "b").AddEdge("a", "b", digraph.WithUndirected())
	cyclic, err := pair.IsCyclic(digraph.WithUndirected())
	require.NoError(t, err)
	assert.False(t, cyclic)

	tri := digraph.New("a", "b", "c").
		AddEdge("a", "b", digraph.WithUndirected()).
		AddEdge("b", "c", digraph.WithUndirected()).
		AddEdge("c", "a", digraph.WithUndirected())
	cyclic, err = tri.IsCyclic(digraph.WithUndirected())
	require.NoError(t, err)
	assert.True(t, cyclic)
}

// TestIsCyclic_UndirectedRejectsAsymmetric verifies the precondition:
// undirected cycle detection on an asymmetric matrix fails.
func TestIsCyclic_UndirectedRejectsAsymmetric(t *testing.T) {
	g := digraph.New("a", "b").AddEdge("a", "b")
	_, err := g.IsCyclic(digraph.WithUndirected())
	assert.ErrorIs(t, err, digraph.ErrNotUndirected)
}

// TestIsCyclic_DisconnectedComponents verifies the search restarts from
// every unvisited vertex, finding a cycle hidden in a later component.
func TestIsCyclic_DisconnectedComponents(t *testing.T) {
	g := digraph.New("a", "b", "x", "y").
		AddEdge("a", "b").
		AddEdge("x", "y").
		AddEdge("y", "x")

	cyclic, err := g.IsCyclic()
	require.NoError(t, err)
	assert.True(t, cyclic)
}

// TestIsUndirected covers symmetric, asymmetric, and weight-mismatch
// matrices.
func TestIsUndirected(t *testing.T) {
	assert.True(t, digraph.New("a", "b").IsUndirected(), "no edges is symmetric")

	sym := digraph.New("a", "b").SetEdge("a", "b", 2, digraph.WithUndirected())
	assert.True(t, sym.IsUndirected())

	asym := digraph.New("a", "b").SetEdge("a", "b", 2)
	assert.False(t, asym.IsUndirected())

	// Reciprocal edges with differing weights are not undirected.
	mismatch := digraph.New("a", "b").SetEdge("a", "b", 2).SetEdge("b", "a", 3)
	assert.False(t, mismatch.IsUndirected())
}

// TestVertexPairs verifies all unordered pairs appear, self-pairs
// included, in vertex order and independent of edges.
func TestVertexPairs(t *testing.T) {
	g := digraph.New("a", "b", "c").AddEdge("b", "a")
	want := [][2]string{
		{"a", "a"}, {"a", "b"}, {"a", "c"},
		{"b", "b"}, {"b", "c"},
		{"c", "c"},
	}
	assert.Equal(t, want, g.VertexPairs())
	assert.Empty(t, digraph.New().VertexPairs())
}
