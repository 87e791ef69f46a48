package game

import "testing"

func mustGrid(t *testing.T, cols, rows, size int) Grid {
	t.Helper()
	grid, err := NewGrid(cols*size, rows*size, size)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d, %d): %v", cols*size, rows*size, size, err)
	}
	return grid
}

func mustSnake(t *testing.T, grid Grid, body []Cell, heading Heading) *Snake {
	t.Helper()
	snake, err := NewSnake(grid, body, heading)
	if err != nil {
		t.Fatalf("NewSnake: %v", err)
	}
	return snake
}

func bodiesEqual(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSnakeRejectsEmptyBody(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)
	if _, err := NewSnake(grid, nil, Right); err != ErrEmptyBody {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
}

func TestSetHeadingRejectsReversal(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)
	for _, h := range Headings {
		snake := mustSnake(t, grid, []Cell{{X: 5, Y: 5}}, h)
		snake.SetHeading(h.Opposite())
		if got := snake.Heading(); got != h {
			t.Errorf("heading %v: reversal to %v was applied, got %v", h, h.Opposite(), got)
		}
	}
}

func TestSetHeadingAcceptsTurns(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)
	for _, h := range Headings {
		for _, requested := range Headings {
			if requested == h.Opposite() {
				continue
			}
			snake := mustSnake(t, grid, []Cell{{X: 5, Y: 5}}, h)
			snake.SetHeading(requested)
			if got := snake.Heading(); got != requested {
				t.Errorf("heading %v: turn to %v not applied, got %v", h, requested, got)
			}
		}
	}
}

func TestAdvanceTranslatesBody(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)
	snake := mustSnake(t, grid, []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Right)

	result := snake.Advance(Cell{X: 5, Y: 0})

	if !result.Moved || result.AteFood {
		t.Fatalf("expected moved without food, got %+v", result)
	}
	want := []Cell{{1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if got := snake.Body(); !bodiesEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
	if snake.CollidedWithWall() || snake.CollidedWithSelf() {
		t.Error("unexpected collision flags after plain move")
	}
}

func TestAdvanceGrowsOnFood(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)
	snake := mustSnake(t, grid, []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, Right)

	result := snake.Advance(Cell{X: 4, Y: 0})

	if !result.Moved || !result.AteFood {
		t.Fatalf("expected moved with food, got %+v", result)
	}
	want := []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if got := snake.Body(); !bodiesEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
	if snake.Len() != 5 {
		t.Errorf("length = %d, want 5", snake.Len())
	}
	if tail := snake.Body()[0]; tail != (Cell{X: 0, Y: 0}) {
		t.Errorf("tail moved during growth: %v", tail)
	}
}

func TestWallCollisionBoundaries(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)
	cases := []struct {
		head Cell
		want bool
	}{
		{Cell{X: 0, Y: 0}, false},
		{Cell{X: 19, Y: 19}, false},
		{Cell{X: -1, Y: 0}, true},
		{Cell{X: 0, Y: -1}, true},
		{Cell{X: 20, Y: 0}, true},
		{Cell{X: 0, Y: 20}, true},
	}
	for _, tc := range cases {
		snake := mustSnake(t, grid, []Cell{tc.head}, Right)
		if got := snake.CollidedWithWall(); got != tc.want {
			t.Errorf("head %v: CollidedWithWall = %v, want %v", tc.head, got, tc.want)
		}
	}
}

func TestWallCollisionHaltsOneTickAfterCrossing(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)
	snake := mustSnake(t, grid, []Cell{{18, 0}, {19, 0}}, Right)

	// The fatal move itself still happens: collision is checked against
	// the pre-move head.
	if result := snake.Advance(Cell{X: 5, Y: 5}); !result.Moved {
		t.Fatal("move onto the wall should still be executed")
	}
	if !snake.CollidedWithWall() {
		t.Fatal("head should now be outside the grid")
	}

	// The next tick detects the collision and freezes the body.
	frozen := snake.Body()
	if result := snake.Advance(Cell{X: 5, Y: 5}); result.Moved {
		t.Fatal("halted snake must not move")
	}
	if !snake.Halted() {
		t.Error("snake should report halted")
	}
	if got := snake.Body(); !bodiesEqual(got, frozen) {
		t.Errorf("body changed while halted: %v != %v", got, frozen)
	}

	// Halted is sticky.
	if result := snake.Advance(Cell{X: 5, Y: 5}); result.Moved {
		t.Error("halted snake moved on a later tick")
	}
}

func TestSelfCollision(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)

	// Head closed a loop back onto the tail segment.
	looped := mustSnake(t, grid, []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {5, 5}}, Up)
	if !looped.CollidedWithSelf() {
		t.Error("looped body should report self collision")
	}

	single := mustSnake(t, grid, []Cell{{5, 5}}, Up)
	if single.CollidedWithSelf() {
		t.Error("single-segment snake can never self-collide")
	}

	straight := mustSnake(t, grid, []Cell{{4, 5}, {5, 5}, {6, 5}}, Right)
	if straight.CollidedWithSelf() {
		t.Error("straight body should not report self collision")
	}
}

func TestSelfCollisionHaltsSnake(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)
	looped := mustSnake(t, grid, []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {5, 5}}, Up)

	frozen := looped.Body()
	if result := looped.Advance(Cell{X: 1, Y: 1}); result.Moved {
		t.Fatal("self-collided snake must not move")
	}
	if got := looped.Body(); !bodiesEqual(got, frozen) {
		t.Errorf("body changed after halt: %v != %v", got, frozen)
	}
}

func TestCollidedWithFood(t *testing.T) {
	grid := mustGrid(t, 20, 20, 1)
	snake := mustSnake(t, grid, []Cell{{2, 3}}, Right)
	if !snake.CollidedWithFood(Cell{X: 2, Y: 3}) {
		t.Error("head on food should report collision")
	}
	if snake.CollidedWithFood(Cell{X: 3, Y: 3}) {
		t.Error("head off food should not report collision")
	}
}

func TestAutopilotSteersTowardFood(t *testing.T) {
	grid := mustGrid(t, 10, 10, 1)
	snake := mustSnake(t, grid, []Cell{{0, 0}}, Down)
	snake.SetAutopilot(true)

	food := Cell{X: 3, Y: 0}
	for i := 0; i < 2; i++ {
		if result := snake.Advance(food); !result.Moved || result.AteFood {
			t.Fatalf("tick %d: unexpected result %+v", i, result)
		}
	}
	result := snake.Advance(food)
	if !result.AteFood {
		t.Fatalf("autopilot should reach food in 3 ticks, head at %v", snake.Head())
	}
}

func TestAutopilotKeepsHeadingWithoutPath(t *testing.T) {
	grid := mustGrid(t, 5, 5, 1)
	// A vertical body wall seals the head into the left column pair.
	snake := mustSnake(t, grid, []Cell{
		{1, 4}, {1, 3}, {1, 2}, {1, 1}, {1, 0}, {0, 0},
	}, Left)
	snake.SetAutopilot(true)

	snake.Advance(Cell{X: 4, Y: 4})
	if got := snake.Heading(); got != Left {
		t.Errorf("heading changed to %v despite unreachable food", got)
	}
}

func TestAdvanceScaledSegments(t *testing.T) {
	grid := mustGrid(t, 10, 10, 20)
	snake := mustSnake(t, grid, []Cell{{0, 0}, {20, 0}}, Right)

	snake.Advance(Cell{X: 100, Y: 100})
	want := []Cell{{20, 0}, {40, 0}}
	if got := snake.Body(); !bodiesEqual(got, want) {
		t.Errorf("body = %v, want %v", got, want)
	}
}

func TestHeadingDeltaRoundTrip(t *testing.T) {
	for _, h := range Headings {
		dx, dy := h.Delta()
		got, ok := HeadingFor(dx, dy)
		if !ok || got != h {
			t.Errorf("HeadingFor(Delta(%v)) = %v, %v", h, got, ok)
		}
		if h.Opposite().Opposite() != h {
			t.Errorf("double opposite of %v is %v", h, h.Opposite().Opposite())
		}
	}
	if _, ok := HeadingFor(1, 1); ok {
		t.Error("diagonal displacement should not map to a heading")
	}
	if _, ok := HeadingFor(0, 0); ok {
		t.Error("zero displacement should not map to a heading")
	}
}
