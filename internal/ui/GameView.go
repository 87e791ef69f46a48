package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/viper/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Base style for the board border.
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	voidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("235"))
	foodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	headRunes = map[game.Heading]string{
		game.Up:    "▲",
		game.Down:  "▼",
		game.Left:  "◀",
		game.Right: "▶",
	}
)

const statusPanelPadding = 4

// GameModel renders one running session and translates keys into
// engine commands.
type GameModel struct {
	gameManager  *game.GameManager
	snakeStyle   lipgloss.Style
	ScreenWidth  int
	ScreenHeight int
	TickCount    int
}

func NewGameModel(gameManager *game.GameManager, screenWidth, screenHeight int) GameModel {
	color := strconv.Itoa(gameManager.Config().PlayerColor)
	return GameModel{
		gameManager:  gameManager,
		snakeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

func (m GameModel) Init() tea.Cmd {
	return m.listenForGameUpdates()
}

func (m GameModel) listenForGameUpdates() tea.Cmd {
	return func() tea.Msg {
		return <-m.gameManager.UpdateChannel
	}
}

func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.gameManager.HeadingChannel <- game.Up
		case "down", "j":
			m.gameManager.HeadingChannel <- game.Down
		case "left", "h":
			m.gameManager.HeadingChannel <- game.Left
		case "right", "l":
			m.gameManager.HeadingChannel <- game.Right
		case "a":
			m.gameManager.AutopilotChannel <- !m.gameManager.Snapshot().Autopilot
		case "q", "esc":
			return m, func() tea.Msg { return QuitToMenuMsg{} }
		}
		return m, nil

	case game.GameTickMsg:
		m.TickCount++
		return m, m.listenForGameUpdates()

	case game.FoodEatenMsg:
		return m, m.listenForGameUpdates()

	case game.GameOverMsg:
		return m, func() tea.Msg {
			return GameFinishedMsg{Score: msg.Score, Length: msg.Length, Ticks: msg.Ticks}
		}

	case game.GameWonMsg:
		snap := m.gameManager.Snapshot()
		return m, func() tea.Msg {
			return GameFinishedMsg{Score: msg.Score, Length: len(snap.Body), Ticks: snap.Ticks, Won: true}
		}
	}

	return m, nil
}

func (m GameModel) View() string {
	snap := m.gameManager.Snapshot()

	board := boardStyle.Render(renderBoard(snap, m.snakeStyle))
	statusPanelWidth := m.ScreenWidth - snap.Grid.Cols() - statusPanelPadding
	if statusPanelWidth < 20 {
		statusPanelWidth = 20
	}
	statusPanel := statusPanelStyle.
		Width(statusPanelWidth).
		Render(m.renderStatusPanel(snap))

	combined := lipgloss.JoinHorizontal(lipgloss.Top, board, statusPanel)
	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center, combined)
}

// renderBoard draws the grid one rune per cell: the head as a heading
// arrow, body segments, food, and dotted void.
func renderBoard(snap game.Snapshot, snakeStyle lipgloss.Style) string {
	size := snap.Grid.CellSize
	occupied := make(map[game.Cell]struct{}, len(snap.Body))
	for _, segment := range snap.Body {
		occupied[segment] = struct{}{}
	}

	var board strings.Builder
	for row := 0; row < snap.Grid.Rows(); row++ {
		for col := 0; col < snap.Grid.Cols(); col++ {
			cell := game.Cell{X: col * size, Y: row * size}
			_, onBody := occupied[cell]
			switch {
			case cell == snap.Head:
				board.WriteString(snakeStyle.Render(headRunes[snap.Heading]))
			case onBody:
				board.WriteString(snakeStyle.Render("○"))
			case cell == snap.Food:
				board.WriteString(foodStyle.Render("◆"))
			default:
				board.WriteString(voidStyle.Render("·"))
			}
		}
		if row < snap.Grid.Rows()-1 {
			board.WriteString("\n")
		}
	}
	return board.String()
}

func (m GameModel) renderStatusPanel(snap game.Snapshot) string {
	cfg := m.gameManager.Config()
	var statusContent strings.Builder

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Player ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Name: %s\n", cfg.PlayerName))
	statusContent.WriteString(fmt.Sprintf("Color: %s\n", m.snakeStyle.Render("●")))

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Game ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Score: %d\n", snap.Score))
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", len(snap.Body)))
	statusContent.WriteString(fmt.Sprintf("Tick: %d\n", snap.Ticks))
	autopilot := "off"
	if snap.Autopilot {
		autopilot = "on"
	}
	statusContent.WriteString(fmt.Sprintf("Autopilot: %s\n", autopilot))
	statusContent.WriteString(fmt.Sprintf("Heading: %s\n", headRunes[snap.Heading]))

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
	statusContent.WriteString("Arrows / hjkl: steer\n")
	statusContent.WriteString("A: toggle autopilot\n")
	statusContent.WriteString("Q: back to menu\n")
	statusContent.WriteString("\n" + lipgloss.NewStyle().Faint(true).Render("Viper v0.1"))

	return statusContent.String()
}
