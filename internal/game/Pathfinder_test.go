package game

import "testing"

func cellSet(cells ...Cell) map[Cell]struct{} {
	set := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

func TestFindPathStraightLine(t *testing.T) {
	grid := mustGrid(t, 10, 10, 1)
	start := Cell{X: 0, Y: 0}
	target := Cell{X: 3, Y: 4}

	path := FindPath(grid, start, nil, target)

	wantLen := ManhattanDistance(start, target)
	if len(path) != wantLen {
		t.Fatalf("path length = %d, want %d", len(path), wantLen)
	}
	if path[len(path)-1] != target {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], target)
	}

	previous := start
	seen := cellSet(start)
	for i, step := range path {
		if !grid.Contains(step) {
			t.Errorf("step %d %v out of bounds", i, step)
		}
		if ManhattanDistance(previous, step) != grid.CellSize {
			t.Errorf("step %d %v is not one cell from %v", i, step, previous)
		}
		if _, dup := seen[step]; dup {
			t.Errorf("step %d revisits %v", i, step)
		}
		seen[step] = struct{}{}
		previous = step
	}
}

func TestFindPathArrived(t *testing.T) {
	grid := mustGrid(t, 10, 10, 1)
	here := Cell{X: 4, Y: 4}
	if path := FindPath(grid, here, nil, here); len(path) != 0 {
		t.Errorf("start == target should yield an empty path, got %v", path)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	grid := mustGrid(t, 5, 5, 1)
	// A full vertical wall at x=2 splits the grid in two.
	wall := cellSet(
		Cell{2, 0}, Cell{2, 1}, Cell{2, 2}, Cell{2, 3}, Cell{2, 4},
	)
	path := FindPath(grid, Cell{X: 0, Y: 2}, wall, Cell{X: 4, Y: 2})
	if len(path) != 0 {
		t.Errorf("blocked target should yield an empty path, got %v", path)
	}
}

func TestFindPathRoutesAroundObstacles(t *testing.T) {
	grid := mustGrid(t, 5, 5, 1)
	// Wall at x=2 with a gap at the bottom row.
	wall := cellSet(
		Cell{2, 0}, Cell{2, 1}, Cell{2, 2}, Cell{2, 3},
	)
	start := Cell{X: 0, Y: 0}
	target := Cell{X: 4, Y: 0}

	path := FindPath(grid, start, wall, target)
	if len(path) == 0 {
		t.Fatal("expected a path through the gap")
	}
	// Around the wall: down to the gap row and back up, 4 extra moves
	// over the manhattan distance.
	if want := ManhattanDistance(start, target) + 8; len(path) != want {
		t.Errorf("path length = %d, want %d", len(path), want)
	}
	for _, step := range path {
		if _, hit := wall[step]; hit {
			t.Errorf("path crosses obstacle at %v", step)
		}
	}
	if path[len(path)-1] != target {
		t.Errorf("path ends at %v, want %v", path[len(path)-1], target)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	grid := mustGrid(t, 8, 8, 1)
	blocked := cellSet(Cell{3, 3}, Cell{3, 4}, Cell{4, 3})
	start := Cell{X: 1, Y: 1}
	target := Cell{X: 6, Y: 6}

	first := FindPath(grid, start, blocked, target)
	if len(first) == 0 {
		t.Fatal("expected a path")
	}
	for i := 0; i < 10; i++ {
		again := FindPath(grid, start, blocked, target)
		if !bodiesEqual(first, again) {
			t.Fatalf("run %d differs: %v != %v", i, again, first)
		}
	}
}

func TestFindPathScaledCells(t *testing.T) {
	grid := mustGrid(t, 10, 10, 20)
	path := FindPath(grid, Cell{X: 0, Y: 0}, nil, Cell{X: 60, Y: 0})
	want := []Cell{{20, 0}, {40, 0}, {60, 0}}
	if !bodiesEqual(path, want) {
		t.Errorf("path = %v, want %v", path, want)
	}
}

func TestFindPathNeighborOrderTieBreak(t *testing.T) {
	grid := mustGrid(t, 5, 5, 1)
	// Two equally short paths exist; the up-first expansion order must
	// pick the one that leaves vertically.
	path := FindPath(grid, Cell{X: 2, Y: 2}, nil, Cell{X: 3, Y: 1})
	if len(path) != 2 {
		t.Fatalf("path length = %d, want 2", len(path))
	}
	if path[0] != (Cell{X: 2, Y: 1}) {
		t.Errorf("first step = %v, want the upward cell {2 1}", path[0])
	}
}
