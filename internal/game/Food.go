package game

import "math/rand"

// Food occupies a single cell on the grid. The snake never mutates it;
// only the game manager moves food around, after checking the candidate
// does not land on the snake.
type Food struct {
	cell Cell
	grid Grid
	rng  *rand.Rand
}

func NewFood(grid Grid, start Cell, rng *rand.Rand) *Food {
	return &Food{cell: start, grid: grid, rng: rng}
}

// Position returns the cell the food currently occupies.
func (f *Food) Position() Cell {
	return f.cell
}

// Set moves the food to c unconditionally.
func (f *Food) Set(c Cell) {
	f.cell = c
}

// Relocate draws a fresh random candidate cell, independent of the
// food's current position. It does not check for overlap with the
// snake; the caller rejects and redraws conflicting candidates, then
// commits the survivor with Set.
func (f *Food) Relocate() Cell {
	return f.grid.RandomCell(f.rng)
}
