package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mshel/hunthat/internal/game"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// --- Internal Game States for GameViewModel ---

type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	tileStyles = map[game.Tile]lipgloss.Style{
		game.Background: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		game.Hole:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		game.Hat:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		game.Visited:    lipgloss.NewStyle().Foreground(lipgloss.Color("87")),
	}
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("87")).Bold(true)

	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// sessionRecordedMsg carries the result of writing a finished session to the journal.
// The write is asynchronous, so the session tags which game view it belongs to.
type sessionRecordedMsg struct {
	session *game.Session
	record  game.SessionRecord
	err     error
}

type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int

	session  *game.Session
	setup    SetupSubmitMsg
	services Services
	prompt   textinput.Model
	message  string

	gameState     GameState
	gameOverState GameOverState
}

func NewGameModel(session *game.Session, setup SetupSubmitMsg, services Services, screenWidth int, screenHeight int) GameViewModel {
	prompt := textinput.New()
	prompt.Prompt = "Which way? "
	prompt.CharLimit = 10
	prompt.PromptStyle = focusedStyle
	prompt.Focus()

	return GameViewModel{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		session:      session,
		setup:        setup,
		services:     services,
		prompt:       prompt,
		gameState:    StatePlaying,
		gameOverState: GameOverState{
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
		},
	}
}

// --- Init/Update/View Methods ---

func (m GameViewModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.gameOverState.ScreenWidth = msg.Width
		m.gameOverState.ScreenHeight = msg.Height
		return m, nil

	case sessionRecordedMsg:
		if msg.err != nil {
			log.Error("Could not record session", "player", m.setup.Name, "error", msg.err)
			return m, nil
		}
		log.Info("Session recorded", "id", msg.record.ID, "player", msg.record.PlayerName, "outcome", msg.record.Outcome)
		if msg.session == m.session {
			m.gameOverState.RecordID = msg.record.ID
		}
		return m, nil

	case tea.KeyMsg:
		if m.gameState == StateGameOver {
			return m.updateGameOver(msg)
		}

		switch msg.Type {
		case tea.KeyUp, tea.KeyDown, tea.KeyLeft, tea.KeyRight:
			// arrow keys carry the canonical direction names, which every input mode accepts
			return m.submitToken(msg.String())
		case tea.KeyEnter:
			token := m.prompt.Value()
			m.prompt.Reset()
			return m.submitToken(token)
		}

		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	return m, nil
}

// submitToken handles one line of player input.
func (m GameViewModel) submitToken(token string) (tea.Model, tea.Cmd) {
	command := m.session.KeyMap.Resolve(token)

	switch command.Kind {
	case game.CommandQuit:
		log.Info("Goodbye!", "player", m.setup.Name, "moves", m.session.Moves())
		return m, func() tea.Msg { return BackToMenuMsg{Notice: goodbyeNotice} }

	case game.CommandHint:
		m.message = m.hintMessage()
		return m, nil
	}

	outcome := m.session.MoveToken(token)
	switch {
	case outcome == game.OutcomeInvalidInput:
		m.message = m.session.KeyMap.InvalidInputHint()
		return m, nil
	case outcome.IsTerminal():
		m.message = outcome.Message()
		m.gameState = StateGameOver
		m.gameOverState.Outcome = outcome
		m.gameOverState.Moves = m.session.Moves()
		m.gameOverState.SelectedButton = 0
		return m, m.recordSession()
	}

	m.message = ""
	return m, nil
}

func (m GameViewModel) hintMessage() string {
	dir, err := m.services.Hint.Suggest(m.session)
	if errors.Is(err, game.ErrNoSafeMove) {
		return "No safe move from here."
	}
	if err != nil {
		log.Error("Hint failed", "strategy", m.services.Hint.Name, "error", err)
		return "No hint available."
	}
	return fmt.Sprintf("Hint: try %s (%s)", dir, strings.Join(m.session.KeyMap.Aliases(dir), "/"))
}

func (m GameViewModel) recordSession() tea.Cmd {
	journal := m.services.Journal
	if journal == nil {
		return nil
	}
	session := m.session
	record := game.NewSessionRecord(m.setup.Name, m.setup.Grid, session)
	return func() tea.Msg {
		saved, err := journal.Record(record)
		return sessionRecordedMsg{session: session, record: saved, err: err}
	}
}

func (m GameViewModel) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
	case "right", "l":
		m.gameOverState.SelectedButton = min(1, m.gameOverState.SelectedButton+1)
	case "esc":
		return m, func() tea.Msg { return BackToMenuMsg{} }
	case "enter":
		// 0: Play again, 1: Menu
		if m.gameOverState.SelectedButton == 0 {
			return m, func() tea.Msg { return PlayAgainMsg{} }
		}
		return m, func() tea.Msg { return BackToMenuMsg{} }
	}
	return m, nil
}

func (m GameViewModel) View() string {
	if m.gameState == StateGameOver {
		return m.gameOverState.RenderGameOverScreen(m.renderMap())
	}

	status := m.renderStatusPanel()
	content := lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(m.renderMap()),
		statusPanelStyle.Render(status),
	)

	var sb strings.Builder
	sb.WriteString(content)
	sb.WriteString("\n\n")
	if m.message != "" {
		sb.WriteString(messageStyle.Render(m.message))
		sb.WriteString("\n")
	}
	sb.WriteString(m.prompt.View())

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, sb.String())
}

func (m GameViewModel) renderMap() string {
	var sb strings.Builder
	grid := m.session.Grid

	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			pos := game.Position{Row: row, Col: col}
			tile := grid.At(pos)
			if pos == m.session.Cursor {
				sb.WriteString(cursorStyle.Render(string(tile.Rune())))
				continue
			}
			sb.WriteString(tileStyles[tile].Render(string(tile.Rune())))
		}
		if row < grid.Height-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m GameViewModel) renderStatusPanel() string {
	var statusContent strings.Builder
	bold := lipgloss.NewStyle().Bold(true)

	statusContent.WriteString(bold.Render("--- Player ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("%s\n", m.setup.Name))
	statusContent.WriteString(fmt.Sprintf("Moves: %d\n", m.session.Moves()))
	if hat, ok := m.session.Grid.HatPosition(); ok {
		statusContent.WriteString(fmt.Sprintf("Distance to hat: %d\n", game.GetManhattanDistance(m.session.Cursor, hat)))
	}

	statusContent.WriteString("\n" + bold.Render("--- Field ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Size: %dx%d\n", m.setup.Grid.Height, m.setup.Grid.Width))
	statusContent.WriteString(fmt.Sprintf("Holes: %.0f%%\n", m.setup.Grid.HolePercent))

	statusContent.WriteString("\n" + bold.Render("--- Legend ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Find the %c. Avoid %c. You are %c.\n", game.HatRune, game.HoleRune, game.VisitedRune))

	statusContent.WriteString("\n" + bold.Render("--- Controls ---") + "\n")
	keyMap := m.session.KeyMap
	for _, dir := range game.Directions {
		statusContent.WriteString(fmt.Sprintf("%-6s %s\n", dir, strings.Join(keyMap.Aliases(dir), "/")))
	}
	statusContent.WriteString("Arrows: move\n")
	statusContent.WriteString("? / hint: suggest a move\n")
	statusContent.WriteString("q: quit to menu\n")

	return statusContent.String()
}
