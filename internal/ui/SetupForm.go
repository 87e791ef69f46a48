package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle

	colorSwatchStyle   = lipgloss.NewStyle().Width(1)
	selectedColorStyle = lipgloss.NewStyle().Width(2)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

// snakeColorOptions is the ANSI-256 palette slice offered for the
// snake's body, skipping the dark low range the board itself uses.
var snakeColorOptions = func() []int {
	options := make([]int, 0, 216)
	for color := 16; color < 232; color++ {
		options = append(options, color)
	}
	return options
}()

// SetupModel is the pre-game form: player name plus snake color.
type SetupModel struct {
	nameInput  textinput.Model
	colorIndex int
	focusIndex int // 0: Name, 1: Color Select, 2: Submit
	width      int
	height     int
}

func NewSetupModel(w, h int) SetupModel {
	ti := textinput.New()
	ti.Placeholder = "Your Viper Name"
	ti.Focus()
	ti.CharLimit = 20
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput:  ti,
		colorIndex: 102, // a friendly green to start with
		focusIndex: 0,
		width:      w,
		height:     h,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		// Focus navigation first, then keys for the focused widget.
		if s == "enter" || s == "tab" || s == "shift+tab" {
			switch m.focusIndex {
			case 0:
				switch s {
				case "enter", "tab":
					m.focusIndex = 1
					m.nameInput.Blur()
				case "shift+tab":
					m.focusIndex = 2
					m.nameInput.Blur()
				}

			case 1:
				switch s {
				case "enter", "tab":
					m.focusIndex = 2
				case "shift+tab":
					m.focusIndex = 0
					m.nameInput.Focus()
				}

			case 2:
				switch s {
				case "enter":
					name := strings.TrimSpace(m.nameInput.Value())
					if name == "" {
						name = "anonymous viper"
					}
					color := snakeColorOptions[m.colorIndex]
					return m, func() tea.Msg {
						return SetupSubmitMsg{Name: name, Color: color}
					}
				case "tab":
					m.focusIndex = 0
					m.nameInput.Focus()
				case "shift+tab":
					m.focusIndex = 1
				}
			}
			return m, nil
		}

		if m.focusIndex == 1 {
			perLine := swatchesPerLine(m.width)
			switch s {
			case "up":
				m.colorIndex = (m.colorIndex - perLine + len(snakeColorOptions)) % len(snakeColorOptions)
				return m, nil
			case "down":
				m.colorIndex = (m.colorIndex + perLine) % len(snakeColorOptions)
				return m, nil
			case "left":
				m.colorIndex = (m.colorIndex - 1 + len(snakeColorOptions)) % len(snakeColorOptions)
				return m, nil
			case "right":
				m.colorIndex = (m.colorIndex + 1) % len(snakeColorOptions)
				return m, nil
			}
		}

		if m.focusIndex == 0 {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func swatchesPerLine(width int) int {
	perLine := (width - 2) / 2
	if perLine < 1 {
		return 1
	}
	if perLine > 36 {
		return 36
	}
	return perLine
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")

	colorPromptText := "Select your viper color (use arrows)"
	var colorPrompt string
	if m.focusIndex == 1 {
		colorPrompt = focusedStyle.Render(colorPromptText)
	} else {
		colorPrompt = blurredStyle.Render(colorPromptText)
	}
	b.WriteString(center(colorPrompt))
	b.WriteString("\n")

	var colorSwatches strings.Builder
	perLine := swatchesPerLine(m.width)
	selectedColorCode := strconv.Itoa(snakeColorOptions[m.colorIndex])

	for i, color := range snakeColorOptions {
		code := strconv.Itoa(color)
		style := colorSwatchStyle.Background(lipgloss.Color(code))

		if i == m.colorIndex {
			colorSwatches.WriteString(style.Foreground(lipgloss.Color("15")).Render("█"))
		} else {
			colorSwatches.WriteString(style.Foreground(lipgloss.Color(code)).Render("░"))
		}

		if (i+1)%perLine == 0 && i < len(snakeColorOptions)-1 {
			colorSwatches.WriteString("\n")
		}
	}
	b.WriteString(center(colorSwatches.String()))
	b.WriteString("\n")

	b.WriteString(center("Viper color " + selectedColorStyle.
		Foreground(lipgloss.Color(selectedColorCode)).
		Render("██")))
	b.WriteString("\n\n")

	submitText := "Start"
	var submitButton string
	if m.focusIndex == 2 {
		submitButton = submitButtonStyle.Render(submitText)
	} else {
		submitButton = blurredButtonStyle.Render(submitText)
	}
	b.WriteString(center(submitButton))
	b.WriteString("\n\n")

	b.WriteString(center(helpStyle.Render("(arrows to pick a color, tab/shift+tab to navigate, enter to confirm, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
