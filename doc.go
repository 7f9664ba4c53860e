// Package planekit is a collection of small, independent pure-function
// libraries for 2D math and graph work:
//
//	digraph/ — directed/weighted graphs over a dense adjacency matrix:
//	           cycle detection, topological sort, ancestor/descendant
//	           closure, directed↔undirected conversion, D3 interchange
//	vec2/    — 2-component vector arithmetic
//	geom2d/  — points, circles, rectangles, segments, polygons and
//	           point-in-shape tests
//	grid/    — rectangular cell addressing and neighborhood lookup
//
// Every function in every package is stateless and referentially
// transparent: values in, values out, inputs never mutated. There is no
// I/O, no goroutines, no shared state — snapshots may be passed between
// goroutines freely.
//
//	go get github.com/planekit/planekit/digraph
package planekit
