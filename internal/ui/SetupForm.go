package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/hunthat/internal/game"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Define styles
var (
	focusedColor = lipgloss.Color("220")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

const (
	nameField = iota
	heightField
	widthField
	holesField
	modeField
	submitField
	fieldCount
)

var inputModes = []game.InputMode{game.ModeWASD, game.ModeLetters}

// SetupModel is the form collecting the player name and grid settings.
type SetupModel struct {
	inputs     []textinput.Model // name, height, width, hole percent
	modeIndex  int
	focusIndex int
	errMsg     string
	width      int
	height     int
}

func NewInitialSetupModel(defaults SetupDefaults, w, h int) SetupModel {
	newInput := func(placeholder, value string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.SetValue(value)
		ti.CharLimit = limit
		ti.PromptStyle = focusedStyle
		ti.TextStyle = focusedStyle
		return ti
	}

	inputs := []textinput.Model{
		newInput("Your name", defaults.Name, 20),
		newInput(fmt.Sprintf("Height (%d-%d)", game.MinGridDimension, game.MaxGridDimension), formatNumber(defaults.Height), 6),
		newInput(fmt.Sprintf("Width (%d-%d)", game.MinGridDimension, game.MaxGridDimension), formatNumber(defaults.Width), 6),
		newInput("Hole percent (0-80)", formatNumber(defaults.HolePercent), 6),
	}
	inputs[nameField].Focus()

	modeIndex := 0
	for i, mode := range inputModes {
		if mode == defaults.InputMode {
			modeIndex = i
		}
	}

	return SetupModel{
		inputs:     inputs,
		modeIndex:  modeIndex,
		focusIndex: nameField,
		width:      w,
		height:     h,
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Init sends a command to start the cursor blinking
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

		switch s {
		case "tab", "down":
			m.setFocus((m.focusIndex + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focusIndex - 1 + fieldCount) % fieldCount)
			return m, nil
		case "enter":
			if m.focusIndex != submitField {
				m.setFocus(m.focusIndex + 1)
				return m, nil
			}
			submit, err := m.submission()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			return m, func() tea.Msg { return submit }
		}

		if m.focusIndex == modeField {
			switch s {
			case "left", "right", "h", "l", " ":
				m.modeIndex = (m.modeIndex + 1) % len(inputModes)
			}
			return m, nil
		}

		if m.focusIndex < len(m.inputs) {
			var cmd tea.Cmd
			m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *SetupModel) setFocus(index int) {
	m.focusIndex = index
	for i := range m.inputs {
		if i == index {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// submission validates the form. Numbers may be fractional, the grid config floors and clamps them.
// Oversized dimensions are rejected so the player sees why the grid is smaller.
func (m SetupModel) submission() (SetupSubmitMsg, error) {
	name := strings.TrimSpace(m.inputs[nameField].Value())
	if name == "" {
		return SetupSubmitMsg{}, fmt.Errorf("please enter a name")
	}

	labels := []string{heightField: "height", widthField: "width", holesField: "hole percent"}
	values := make([]float64, len(labels))
	for field := heightField; field <= holesField; field++ {
		value, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[field].Value()), 64)
		if err != nil {
			return SetupSubmitMsg{}, fmt.Errorf("%s must be a number", labels[field])
		}
		if field != holesField && value > game.MaxGridDimension {
			return SetupSubmitMsg{}, fmt.Errorf("%s must be at most %d", labels[field], game.MaxGridDimension)
		}
		values[field] = value
	}

	return SetupSubmitMsg{
		Name:      name,
		Grid:      game.NewGridConfig(values[heightField], values[widthField], values[holesField]),
		InputMode: inputModes[m.modeIndex],
	}, nil
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	labels := []string{"Name", "Height", "Width", "Holes %"}
	for i, input := range m.inputs {
		label := blurredStyle.Render(fmt.Sprintf("%-8s", labels[i]))
		if i == m.focusIndex {
			label = focusedStyle.Render(fmt.Sprintf("%-8s", labels[i]))
		}
		b.WriteString(center(label + input.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var modes []string
	for i, mode := range inputModes {
		text := mode.String()
		if i == m.modeIndex {
			text = "[" + text + "]"
		}
		modes = append(modes, text)
	}
	modeLine := "Input mode: " + strings.Join(modes, "  ")
	if m.focusIndex == modeField {
		modeLine = focusedStyle.Render(modeLine)
	} else {
		modeLine = blurredStyle.Render(modeLine)
	}
	b.WriteString(center(modeLine))
	b.WriteString("\n\n")

	submitText := "Start"
	var submitButton string
	if m.focusIndex == submitField {
		submitButton = submitButtonStyle.Render(submitText)
	} else {
		submitButton = blurredButtonStyle.Render(submitText)
	}
	b.WriteString(center(submitButton))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(center(errorStyle.Render(m.errMsg)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(helpStyle.Render("(tab/shift+tab to navigate, left/right to switch input mode, enter to confirm, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
