// Package grid provides rectangular cell addressing: row-major
// index↔coordinate mapping, bounds checks, clamping, and neighborhood
// lookup under 4- or 8-directional connectivity, plus conversion between
// continuous vec2 points and the discrete cell space.
//
// A Grid is just a width and a height; it stores no cell payload. All
// functions are pure and O(1) except Neighbors, which is O(d) for d
// offsets.
package grid

import (
	"errors"

	"github.com/planekit/planekit/vec2"
)

// ErrEmptyGrid indicates a grid was requested with a non-positive width
// or height.
var ErrEmptyGrid = errors.New("grid: dimensions must be at least 1×1")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Neighbor offsets in clockwise order starting north. Conn4 is the
// orthogonal subset in the same rotation.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Cell addresses one grid cell by column (X) and row (Y).
type Cell struct {
	X, Y int
}

// Grid is a W×H rectangular cell space.
type Grid struct {
	Width, Height int
}

// New returns a Grid of the given dimensions, or ErrEmptyGrid when
// either is non-positive.
func New(width, height int) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, ErrEmptyGrid
	}

	return Grid{Width: width, Height: height}, nil
}

// Contains reports whether c lies within the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Index maps c to its row-major index y*Width+x. ok is false for cells
// outside the grid.
func (g Grid) Index(c Cell) (int, bool) {
	if !g.Contains(c) {
		return 0, false
	}

	return c.Y*g.Width + c.X, true
}

// Cell maps a row-major index back to its cell. ok is false for indices
// outside [0, Width*Height).
func (g Grid) Cell(idx int) (Cell, bool) {
	if idx < 0 || idx >= g.Width*g.Height {
		return Cell{}, false
	}

	return Cell{X: idx % g.Width, Y: idx / g.Width}, true
}

// Clamp returns the in-grid cell nearest to c.
func (g Grid) Clamp(c Cell) Cell {
	if c.X < 0 {
		c.X = 0
	} else if c.X >= g.Width {
		c.X = g.Width - 1
	}
	if c.Y < 0 {
		c.Y = 0
	} else if c.Y >= g.Height {
		c.Y = g.Height - 1
	}

	return c
}

// Neighbors returns the in-bounds neighbors of c under the given
// connectivity, in clockwise order starting north. A cell outside the
// grid has no neighbors.
func (g Grid) Neighbors(c Cell, conn Connectivity) []Cell {
	if !g.Contains(c) {
		return []Cell{}
	}

	offs := offsets4
	if conn == Conn8 {
		offs = offsets8
	}
	out := make([]Cell, 0, len(offs))
	for _, d := range offs {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.Contains(n) {
			out = append(out, n)
		}
	}

	return out
}

// CellAt maps a continuous point to the cell containing it, for square
// cells of the given size anchored at the origin. ok is false when the
// point falls outside the grid.
func (g Grid) CellAt(p vec2.Vec2, cellSize float64) (Cell, bool) {
	f := p.Scale(1 / cellSize).Floor()
	c := Cell{X: int(f.X), Y: int(f.Y)}

	return c, g.Contains(c)
}

// Center returns the continuous center point of c for square cells of
// the given size anchored at the origin.
func (c Cell) Center(cellSize float64) vec2.Vec2 {
	return vec2.New(float64(c.X), float64(c.Y)).Add(vec2.New(0.5, 0.5)).Scale(cellSize)
}
