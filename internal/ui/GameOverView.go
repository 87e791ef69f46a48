package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/viper/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const leaderboardPageSize = 10

var (
	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	selectedButtonStyle = gameOverButtonStyle.
				Background(lipgloss.Color("4")).
				Foreground(lipgloss.Color("15"))

	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

// GameOverModel shows the final result with restart/menu buttons, and
// doubles as the standalone leaderboard browser reachable from the
// intro menu.
type GameOverModel struct {
	result          GameFinishedMsg
	scores          *game.ScoreService
	showBoard       bool
	leaderboardOnly bool
	selectedButton  int // 0: Restart, 1: Leaderboard, 2: Menu
	width           int
	height          int
}

func NewGameOverModel(result GameFinishedMsg, scores *game.ScoreService, w, h int) GameOverModel {
	return GameOverModel{result: result, scores: scores, width: w, height: h}
}

// NewLeaderboardModel builds the intro-menu leaderboard view: same
// model, no game result behind it.
func NewLeaderboardModel(scores *game.ScoreService, w, h int) GameOverModel {
	return GameOverModel{scores: scores, showBoard: true, leaderboardOnly: true, width: w, height: h}
}

func (m GameOverModel) Init() tea.Cmd { return nil }

func (m GameOverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		if m.showBoard {
			switch s {
			case "esc", "enter", "q":
				if m.leaderboardOnly {
					return m, func() tea.Msg { return QuitToMenuMsg{} }
				}
				m.showBoard = false
			}
			return m, nil
		}

		switch s {
		case "left", "h", "shift+tab":
			m.selectedButton = (m.selectedButton + 2) % 3
		case "right", "l", "tab":
			m.selectedButton = (m.selectedButton + 1) % 3
		case " ", "space":
			// Space always restarts, matching the in-game hint.
			return m, func() tea.Msg { return RestartGameMsg{} }
		case "q", "esc":
			return m, func() tea.Msg { return QuitToMenuMsg{} }
		case "enter":
			switch m.selectedButton {
			case 0:
				return m, func() tea.Msg { return RestartGameMsg{} }
			case 1:
				m.showBoard = true
			case 2:
				return m, func() tea.Msg { return QuitToMenuMsg{} }
			}
		}
	}
	return m, nil
}

func (m GameOverModel) View() string {
	if m.showBoard {
		return m.renderLeaderboardScreen()
	}
	return m.renderGameOverScreen()
}

func (m GameOverModel) renderGameOverScreen() string {
	title := "💀 G A M E   O V E R 💀"
	titleColor := lipgloss.Color("9")
	if m.result.Won {
		title = "🏆 Y O U   W O N 🏆"
		titleColor = lipgloss.Color("10")
	}

	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Padding(1, 5).
		Align(lipgloss.Center)

	stats := fmt.Sprintf("\nFinal Score: %d\nLength: %d segments\nSurvived: %d ticks\n",
		m.result.Score, m.result.Length, m.result.Ticks)

	labels := []string{"RESTART (Space)", "LEADERBOARD", "MENU"}
	rendered := make([]string, len(labels))
	for i, label := range labels {
		if i == m.selectedButton {
			rendered[i] = selectedButtonStyle.Render(label)
		} else {
			rendered[i] = gameOverButtonStyle.Render(label)
		}
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)

	content := lipgloss.JoinVertical(lipgloss.Center, messageStyle.Render(title), stats, buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content),
	)
}

func (m GameOverModel) renderLeaderboardScreen() string {
	var tableContent strings.Builder

	const (
		nameWidth  = 18
		scoreWidth = 8
		lenWidth   = 8
	)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(3).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Player"),
		leaderboardHeaderStyle.Width(scoreWidth).Render("Score"),
		leaderboardHeaderStyle.Width(lenWidth).Render("Length"),
	)
	tableContent.WriteString(header + "\n")

	scores := m.topScores()
	if len(scores) == 0 {
		tableContent.WriteString(leaderboardRowStyle.Render("No games played yet.") + "\n")
	}
	for i, score := range scores {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			leaderboardRowStyle.Width(3).Render(strconv.Itoa(i+1)),
			leaderboardRowStyle.Width(nameWidth).Render(score.PlayerName),
			leaderboardRowStyle.Width(scoreWidth).Render(strconv.Itoa(score.Score)),
			leaderboardRowStyle.Width(lenWidth).Render(strconv.Itoa(score.Length)),
		)
		tableContent.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).Render("👑 HIGH SCORES 👑")
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC or ENTER to go back.")

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		instruction,
	)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}

func (m GameOverModel) topScores() []game.Score {
	if m.scores == nil {
		return nil
	}
	scores, err := m.scores.GetHighScores(leaderboardPageSize, 0)
	if err != nil {
		log.Error("could not load leaderboard", "error", err)
		return nil
	}
	return scores
}
