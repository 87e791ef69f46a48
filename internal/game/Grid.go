package game

import (
	"fmt"
	"math/rand"
)

// Cell is a discrete position on the grid. Coordinates are multiples of
// the grid's cell size, so two cells are equal exactly when their
// integer coordinates are equal.
type Cell struct {
	X, Y int
}

// Grid describes the playing field: extents in coordinate units and the
// size of one snake segment. A grid is pure geometry, it holds no game
// state.
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

func NewGrid(width, height, cellSize int) (Grid, error) {
	if cellSize <= 0 {
		return Grid{}, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	if width < cellSize || height < cellSize {
		return Grid{}, fmt.Errorf("grid %dx%d smaller than one %d-unit cell", width, height, cellSize)
	}
	if width%cellSize != 0 || height%cellSize != 0 {
		return Grid{}, fmt.Errorf("grid %dx%d not divisible by cell size %d", width, height, cellSize)
	}
	return Grid{Width: width, Height: height, CellSize: cellSize}, nil
}

// Cols is the number of cells per row.
func (g Grid) Cols() int { return g.Width / g.CellSize }

// Rows is the number of cells per column.
func (g Grid) Rows() int { return g.Height / g.CellSize }

// CellCount is the total number of cells on the grid.
func (g Grid) CellCount() int { return g.Cols() * g.Rows() }

// Contains reports whether c lies inside the playing field.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Step returns the cell one segment away from c along h.
func (g Grid) Step(c Cell, h Heading) Cell {
	dx, dy := h.Delta()
	return Cell{X: c.X + dx*g.CellSize, Y: c.Y + dy*g.CellSize}
}

// RandomCell draws a cell uniformly from the grid.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{
		X: rng.Intn(g.Cols()) * g.CellSize,
		Y: rng.Intn(g.Rows()) * g.CellSize,
	}
}

// ManhattanDistance is the taxicab distance between two cells, in
// coordinate units.
func ManhattanDistance(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
