package digraph_test

import (
	"strconv"
	"testing"

	"github.com/planekit/planekit/digraph"
)

// benchChain builds a linear chain of n vertices through the interchange
// form (one matrix allocation instead of one per edge).
func benchChain(n int) *digraph.Graph {
	d := &digraph.D3Graph{
		Nodes: make([]digraph.D3Node, n),
		Links: make([]digraph.D3Link, 0, n-1),
	}
	for i := 0; i < n; i++ {
		d.Nodes[i] = digraph.D3Node{ID: "v" + strconv.Itoa(i)}
	}
	for i := 0; i+1 < n; i++ {
		d.Links = append(d.Links, digraph.D3Link{
			Source: d.Nodes[i].ID,
			Target: d.Nodes[i+1].ID,
		})
	}

	return digraph.FromD3(d)
}

func BenchmarkIsCyclic(b *testing.B) {
	g := benchChain(512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.IsCyclic(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTopologicalSort(b *testing.B) {
	g := benchChain(512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.TopologicalSort(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTranspose(b *testing.B) {
	g := benchChain(512)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Transpose()
	}
}
