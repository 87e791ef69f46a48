package game

import "time"

const (
	GameTickDuration = 100 * time.Millisecond

	DefaultGridCols = 40
	DefaultGridRows = 20
	DefaultCellSize = 1

	// Points awarded per food eaten.
	FoodScore = 10

	initialSnakeLength = 4

	// How many random candidates the manager tries when respawning
	// food before declaring the grid full.
	maxFoodPlacementAttempts = 10000
)

// Config carries everything a game session needs at construction time.
// Grid extents, cell size, the initial body layout and heading are all
// explicit so tests can run deterministic sessions on any grid.
type Config struct {
	GridWidth  int
	GridHeight int
	CellSize   int

	// InitialBody is tail first, head last.
	InitialBody    []Cell
	InitialHeading Heading

	TickEvery time.Duration

	PlayerName  string
	PlayerColor int

	// Autopilot starts the snake under BFS steering.
	Autopilot bool

	// PilotScript, when non-empty, is a Lua script steering the snake.
	// See pilotService.go.
	PilotScript string

	// Seed for food placement. Zero means seed from the clock.
	Seed int64
}

// DefaultConfig mirrors the classic setup: a 40x20 board and a
// four-segment snake laid out horizontally, moving right, one cell in
// from the corner.
func DefaultConfig() Config {
	size := DefaultCellSize
	body := make([]Cell, initialSnakeLength)
	for i := range body {
		body[i] = Cell{X: size + i*size, Y: size}
	}
	return Config{
		GridWidth:      DefaultGridCols * size,
		GridHeight:     DefaultGridRows * size,
		CellSize:       size,
		InitialBody:    body,
		InitialHeading: Right,
		TickEvery:      GameTickDuration,
	}
}
