package ui

import (
	"github.com/Mshel/viper/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
	GameOverScreen
)

// Messages for state transitions between screens.
type IntroSubmitMsg int // 0 for Start Game, 1 for Leaderboard

type SetupSubmitMsg struct {
	Name  string
	Color int
}

// GameFinishedMsg moves the controller from the game screen to the
// game-over screen.
type GameFinishedMsg struct {
	Score  int
	Length int
	Ticks  int
	Won    bool
}

type RestartGameMsg struct{}

type QuitToMenuMsg struct{}

// ControllerModel routes between the intro, setup, game and game-over
// screens, and owns the per-session game manager.
type ControllerModel struct {
	CurrentScreen Screen

	IntroModel    tea.Model
	SetupModel    tea.Model
	GameModel     tea.Model
	GameOverModel tea.Model

	baseConfig  game.Config
	gameManager *game.GameManager
	scores      *game.ScoreService

	ScreenWidth  int
	ScreenHeight int
}

// NewControllerModel builds the screen router. baseConfig is the
// session template; the player's name and color from the setup form are
// filled in before the game manager is created. scores may be nil.
func NewControllerModel(baseConfig game.Config, scores *game.ScoreService, screenWidth, screenHeight int) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,
		IntroModel:    NewIntroModel(screenWidth, screenHeight),
		SetupModel:    NewSetupModel(screenWidth, screenHeight),
		baseConfig:    baseConfig,
		scores:        scores,
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	case GameOverScreen:
		if m.GameOverModel != nil {
			return m.GameOverModel.View()
		}
	}
	return "Unknown Screen"
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		m.stopGame()
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.IntroModel, cmd = m.IntroModel.Update(msg)
		cmds = append(cmds, cmd)
		m.SetupModel, cmd = m.SetupModel.Update(msg)
		cmds = append(cmds, cmd)
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.GameOverModel != nil {
			m.GameOverModel, cmd = m.GameOverModel.Update(msg)
			cmds = append(cmds, cmd)
		}

	case IntroSubmitMsg:
		if msg == 0 {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		}
		// Leaderboard-only view, no running game behind it.
		m.CurrentScreen = GameOverScreen
		m.GameOverModel = NewLeaderboardModel(m.scores, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameOverModel.Init()

	case SetupSubmitMsg:
		cfg := m.baseConfig
		cfg.PlayerName = msg.Name
		cfg.PlayerColor = msg.Color

		gameManager, err := game.NewGameManager(cfg, m.scores)
		if err != nil {
			log.Error("could not start game session", "player", msg.Name, "error", err)
			return m, tea.Quit
		}
		go gameManager.StartGameLoop()

		m.gameManager = gameManager
		m.CurrentScreen = GameScreen
		m.GameModel = NewGameModel(gameManager, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()

	case GameFinishedMsg:
		m.CurrentScreen = GameOverScreen
		m.GameOverModel = NewGameOverModel(msg, m.scores, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameOverModel.Init()

	case RestartGameMsg:
		if m.gameManager == nil {
			return m, nil
		}
		if err := m.gameManager.Restart(); err != nil {
			log.Error("could not restart game session", "error", err)
			return m, tea.Quit
		}
		m.CurrentScreen = GameScreen
		m.GameModel = NewGameModel(m.gameManager, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()

	case QuitToMenuMsg:
		m.stopGame()
		m.gameManager = nil
		m.GameModel = nil
		m.CurrentScreen = IntroScreen
		return m, m.IntroModel.Init()

	default:
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		case GameOverScreen:
			if m.GameOverModel != nil {
				m.GameOverModel, cmd = m.GameOverModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *ControllerModel) stopGame() {
	if m.gameManager != nil && m.gameManager.IsRunning {
		m.gameManager.Stop()
	}
}
