// Package digraph: node/link interchange with force-directed
// visualization tooling (the D3.js force-simulation input shape).
//
// The interchange is intentionally lossy: a link carries no weight, so an
// integer edge weight w ≥ 1 is encoded as w identical links and decoded
// by counting them back. Fractional positive weights round up to ceil(w)
// links on export; negative weights emit a single link and are outside
// the round-trip contract.
package digraph

// D3Node is one distinct vertex in the interchange form.
type D3Node struct {
	ID string `json:"id"`
}

// D3Link is one unit of edge weight between two node IDs. Parallel
// identical links encode integer weights ≥ 2.
type D3Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// D3Graph is the node/link interchange form consumed by force-directed
// graph visualizers.
type D3Graph struct {
	Nodes []D3Node `json:"nodes"`
	Links []D3Link `json:"links"`
}

// ToD3 converts the graph to interchange form. Nodes appear once each in
// vertex order; every nonzero edge emits links in a decrement-by-1 loop
// that always emits at least once, so a positive weight w yields ceil(w)
// links (2.5 → 3 links) and a negative weight yields exactly one.
//
// With WithUndirected() the graph must satisfy IsUndirected (otherwise
// ErrNotUndirected) and reciprocal pairs are collapsed first, so each
// undirected edge is exported once.
// Complexity: O(V² + L) where L is the number of emitted links.
func (g *Graph) ToD3(opts ...Option) (*D3Graph, error) {
	o := gatherOptions(opts...)

	src := g
	if o.undirected {
		if !g.IsUndirected() {
			return nil, ErrNotUndirected
		}
		src = g.ToDirected()
	}

	d := &D3Graph{
		Nodes: make([]D3Node, len(src.verts)),
		Links: make([]D3Link, 0, len(src.verts)),
	}
	for i, id := range src.verts {
		d.Nodes[i] = D3Node{ID: id}
	}
	for i, row := range src.w {
		for j, wt := range row {
			if wt == 0 {
				continue
			}
			// One link per unit of weight, at least one per edge.
			for r := wt; ; r-- {
				d.Links = append(d.Links, D3Link{Source: src.verts[i], Target: src.verts[j]})
				if r-1 <= 0 {
					break
				}
			}
		}
	}

	return d, nil
}

// FromD3 rebuilds a graph from interchange form: a zero matrix over the
// listed node IDs (duplicates collapse, first appearance wins), then +1
// weight per link. With WithUndirected() each link also increments the
// reciprocal cell, except self-links which count once. Links naming an
// unlisted node ID are skipped.
// Complexity: O(V² + L).
func FromD3(d *D3Graph, opts ...Option) *Graph {
	o := gatherOptions(opts...)

	ids := make([]string, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		ids = append(ids, n.ID)
	}
	g := New(ids...)

	// g is freshly owned here, so links accumulate in place.
	for _, l := range d.Links {
		si, ok := g.index[l.Source]
		if !ok {
			continue
		}
		ti, ok := g.index[l.Target]
		if !ok {
			continue
		}
		g.w[si][ti]++
		if o.undirected && si != ti {
			g.w[ti][si]++
		}
	}

	return g
}
