package game

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// ErrGridFull is returned when food placement ran out of free cells:
// the snake occupies (practically) the whole grid.
var ErrGridFull = errors.New("no free cell left for food")

// GameTickMsg is emitted on the update channel after every processed tick.
type GameTickMsg struct{}

// FoodEatenMsg is emitted when the snake grew this tick.
type FoodEatenMsg struct {
	Score int
}

// GameOverMsg is emitted once when the snake halts on a wall or self
// collision.
type GameOverMsg struct {
	Score  int
	Length int
	Ticks  int
}

// GameWonMsg is emitted when no free cell remains to respawn food.
type GameWonMsg struct {
	Score int
}

// GameManager drives one game session: it owns the snake and the food,
// advances the simulation on a ticker, applies heading commands, keeps
// score, respawns food off the snake's body, and reports state changes
// to the UI over its update channel.
//
// All snake and food mutation happens on the loop goroutine under the
// state lock; the UI reads through Snapshot.
type GameManager struct {
	HeadingChannel   chan Heading
	AutopilotChannel chan bool
	UpdateChannel    chan tea.Msg

	cfg    Config
	grid   Grid
	snake  *Snake
	food   *Food
	rng    *rand.Rand
	pilot  Pilot
	scores *ScoreService

	stateLock sync.Mutex
	score     int
	ticks     int
	over      bool
	won       bool

	IsRunning bool
	quit      chan struct{}
}

// Snapshot is a read-only copy of the session state, safe to render
// from another goroutine.
type Snapshot struct {
	Grid      Grid
	Body      []Cell
	Head      Cell
	Heading   Heading
	Food      Cell
	Score     int
	Ticks     int
	Autopilot bool
	Over      bool
	Won       bool
}

// NewGameManager builds a session from cfg. The score service is
// optional; with nil, finished games are simply not persisted.
func NewGameManager(cfg Config, scores *ScoreService) (*GameManager, error) {
	grid, err := NewGrid(cfg.GridWidth, cfg.GridHeight, cfg.CellSize)
	if err != nil {
		return nil, err
	}

	if cfg.TickEvery <= 0 {
		cfg.TickEvery = GameTickDuration
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gm := &GameManager{
		HeadingChannel:   make(chan Heading, 10),
		AutopilotChannel: make(chan bool, 1),
		UpdateChannel:    make(chan tea.Msg, 256),
		cfg:              cfg,
		grid:             grid,
		rng:              rand.New(rand.NewSource(seed)),
		scores:           scores,
		quit:             make(chan struct{}),
	}

	if cfg.PilotScript != "" {
		pilot, err := NewLuaPilot(cfg.PilotScript)
		if err != nil {
			return nil, err
		}
		gm.pilot = pilot
	}

	if err := gm.resetSession(); err != nil {
		return nil, err
	}
	return gm, nil
}

// resetSession rebuilds snake, food and score from the config. Callers
// hold the state lock or have exclusive access.
func (gm *GameManager) resetSession() error {
	snake, err := NewSnake(gm.grid, gm.cfg.InitialBody, gm.cfg.InitialHeading)
	if err != nil {
		return err
	}
	snake.SetAutopilot(gm.cfg.Autopilot)
	gm.snake = snake
	gm.food = NewFood(gm.grid, gm.cfg.InitialBody[0], gm.rng)
	gm.score = 0
	gm.ticks = 0
	gm.over = false
	gm.won = false
	return gm.placeFood()
}

// StartGameLoop runs the session until Stop is called. One tick is
// fully processed before the next begins; heading commands arriving
// between ticks are applied immediately.
func (gm *GameManager) StartGameLoop() {
	if gm.IsRunning {
		return
	}
	gm.IsRunning = true
	log.Debug("game loop started", "player", gm.cfg.PlayerName)

	ticker := time.NewTicker(gm.cfg.TickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			gm.stateLock.Lock()
			gm.processTick()
			gm.stateLock.Unlock()
		case h := <-gm.HeadingChannel:
			gm.stateLock.Lock()
			gm.snake.SetHeading(h)
			gm.stateLock.Unlock()
		case on := <-gm.AutopilotChannel:
			gm.stateLock.Lock()
			gm.snake.SetAutopilot(on)
			gm.stateLock.Unlock()
		case <-gm.quit:
			gm.IsRunning = false
			log.Debug("game loop stopped", "player", gm.cfg.PlayerName)
			return
		}
	}
}

// Stop ends the game loop. Safe to call once per session.
func (gm *GameManager) Stop() {
	close(gm.quit)
}

// Restart reinitializes the session after a game over, keeping the
// same config and score history.
func (gm *GameManager) Restart() error {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()
	return gm.resetSession()
}

// processTick advances the simulation by one step. Callers hold the
// state lock.
func (gm *GameManager) processTick() {
	if gm.over || gm.won {
		return
	}

	if gm.pilot != nil && !gm.snake.Autopilot() {
		if h, ok := gm.pilot.NextHeading(gm.snapshotLocked()); ok {
			gm.snake.SetHeading(h)
		}
	}

	result := gm.snake.Advance(gm.food.Position())
	gm.ticks++

	if !result.Moved {
		gm.over = true
		gm.saveScore()
		gm.notify(GameOverMsg{Score: gm.score, Length: gm.snake.Len(), Ticks: gm.ticks})
		return
	}

	if result.AteFood {
		gm.score += FoodScore
		gm.notify(FoodEatenMsg{Score: gm.score})
		if err := gm.placeFood(); err != nil {
			gm.won = true
			gm.saveScore()
			gm.notify(GameWonMsg{Score: gm.score})
			return
		}
	}

	gm.notify(GameTickMsg{})
}

// placeFood draws random cells until one misses the snake, then commits
// it. The attempt cap guards the degenerate end-game where the snake
// covers the whole grid.
func (gm *GameManager) placeFood() error {
	for attempt := 0; attempt < maxFoodPlacementAttempts; attempt++ {
		candidate := gm.food.Relocate()
		if !gm.snake.Occupies(candidate) {
			gm.food.Set(candidate)
			return nil
		}
	}
	return ErrGridFull
}

func (gm *GameManager) saveScore() {
	if gm.scores == nil || gm.cfg.PlayerName == "" {
		return
	}
	err := gm.scores.SaveScore(gm.cfg.PlayerName, gm.score, gm.snake.Len(), gm.ticks)
	if err != nil {
		log.Error("score persist failed", "player", gm.cfg.PlayerName, "error", err)
	}
}

// notify hands a message to the UI without ever blocking the loop. A
// session whose listener went away just drops updates.
func (gm *GameManager) notify(msg tea.Msg) {
	select {
	case gm.UpdateChannel <- msg:
	default:
	}
}

// Snapshot returns a copy of the current session state.
func (gm *GameManager) Snapshot() Snapshot {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()
	return gm.snapshotLocked()
}

func (gm *GameManager) snapshotLocked() Snapshot {
	return Snapshot{
		Grid:      gm.grid,
		Body:      gm.snake.Body(),
		Head:      gm.snake.Head(),
		Heading:   gm.snake.Heading(),
		Food:      gm.food.Position(),
		Score:     gm.score,
		Ticks:     gm.ticks,
		Autopilot: gm.snake.Autopilot(),
		Over:      gm.over,
		Won:       gm.won,
	}
}

// Config returns the session's construction config.
func (gm *GameManager) Config() Config {
	return gm.cfg
}

// Scores exposes the session's score service, nil when scoring is off.
func (gm *GameManager) Scores() *ScoreService {
	return gm.scores
}
