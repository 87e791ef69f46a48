package game

import "errors"

// ErrEmptyBody is returned when a snake is constructed with no segments.
var ErrEmptyBody = errors.New("snake body needs at least one segment")

// AdvanceResult reports what a single tick did to the snake.
type AdvanceResult struct {
	// Moved is false when the snake is halted: a wall or self collision
	// was already in effect before the move, so the body did not change.
	Moved bool
	// AteFood is true when the new head landed on the food cell and the
	// snake grew by one segment.
	AteFood bool
}

// Snake is the moving body on the grid. The body slice is ordered tail
// first, head last; every tick the head advances one cell along the
// current heading and the tail follows, unless food was eaten, in which
// case the tail stays put and the body grows by one.
//
// Once a wall or self collision is detected the snake is halted: it
// stops moving and stays frozen in place until the driver builds a
// fresh one.
type Snake struct {
	body      []Cell
	heading   Heading
	grid      Grid
	autopilot bool
	halted    bool
}

func NewSnake(grid Grid, body []Cell, heading Heading) (*Snake, error) {
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	s := &Snake{
		body:    make([]Cell, len(body)),
		heading: heading,
		grid:    grid,
	}
	copy(s.body, body)
	return s, nil
}

// Head returns the leading cell of the body.
func (s *Snake) Head() Cell {
	return s.body[len(s.body)-1]
}

// Body returns a snapshot of the body, tail first, head last.
func (s *Snake) Body() []Cell {
	snapshot := make([]Cell, len(s.body))
	copy(snapshot, s.body)
	return snapshot
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

func (s *Snake) Heading() Heading {
	return s.heading
}

// SetHeading applies the requested heading unless it is the exact
// reverse of the current one. A 180-degree turn is silently ignored,
// not queued and not an error.
func (s *Snake) SetHeading(requested Heading) {
	if requested == s.heading.Opposite() {
		return
	}
	s.heading = requested
}

// SetAutopilot switches pathfinding-driven steering on or off.
func (s *Snake) SetAutopilot(on bool) {
	s.autopilot = on
}

func (s *Snake) Autopilot() bool {
	return s.autopilot
}

// Halted reports whether a collision has frozen the snake.
func (s *Snake) Halted() bool {
	return s.halted
}

// Occupies reports whether any body segment sits on c.
func (s *Snake) Occupies(c Cell) bool {
	for _, segment := range s.body {
		if segment == c {
			return true
		}
	}
	return false
}

// Advance runs one simulation tick against the given food position.
//
// Collision state is evaluated against the pre-move body: if the head
// is already out of bounds or on top of another segment, the snake
// halts in place and nothing moves. This ordering means a fatal move is
// reported on the tick after it was made, which is the tick the game
// over becomes visible to the player.
func (s *Snake) Advance(food Cell) AdvanceResult {
	if s.autopilot && !s.halted {
		s.steerToward(food)
	}

	if s.halted || s.CollidedWithWall() || s.CollidedWithSelf() {
		s.halted = true
		return AdvanceResult{}
	}

	next := s.grid.Step(s.Head(), s.heading)
	s.body = append(s.body, next)

	if next == food {
		return AdvanceResult{Moved: true, AteFood: true}
	}

	// No growth: drop the tail so the whole body translates one cell.
	copy(s.body, s.body[1:])
	s.body = s.body[:len(s.body)-1]
	return AdvanceResult{Moved: true}
}

// CollidedWithWall reports whether the head lies outside the grid.
func (s *Snake) CollidedWithWall() bool {
	head := s.Head()
	return head.X < 0 ||
		head.X > s.grid.Width-s.grid.CellSize ||
		head.Y < 0 ||
		head.Y > s.grid.Height-s.grid.CellSize
}

// CollidedWithSelf reports whether the head overlaps any other body
// segment. A single-segment snake cannot collide with itself.
func (s *Snake) CollidedWithSelf() bool {
	head := s.Head()
	for _, segment := range s.body[:len(s.body)-1] {
		if segment == head {
			return true
		}
	}
	return false
}

// CollidedWithFood reports whether the head sits on the food cell.
func (s *Snake) CollidedWithFood(food Cell) bool {
	return s.Head() == food
}

// steerToward points the heading at the first step of the shortest open
// path from head to food. With no path (or nothing left to walk) the
// current heading is kept. The no-reversal rule still applies, though a
// BFS path can never double back onto the neck since the neck is an
// obstacle.
func (s *Snake) steerToward(food Cell) {
	path := FindPath(s.grid, s.Head(), s.obstacles(), food)
	if len(path) == 0 {
		return
	}
	first := path[0]
	head := s.Head()
	if h, ok := HeadingFor(first.X-head.X, first.Y-head.Y); ok {
		s.SetHeading(h)
	}
}

// obstacles is the body excluding the head, as a membership set for the
// pathfinder. The head is the search origin and no obstacle to itself.
func (s *Snake) obstacles() map[Cell]struct{} {
	blocked := make(map[Cell]struct{}, len(s.body)-1)
	for _, segment := range s.body[:len(s.body)-1] {
		blocked[segment] = struct{}{}
	}
	return blocked
}
