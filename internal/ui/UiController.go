package ui

import (
	"math/rand"
	"time"

	"github.com/Mshel/hunthat/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
	HistoryScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for New Game, 1 for Session History
type SetupSubmitMsg struct {
	Name      string
	Grid      game.GridConfig
	InputMode game.InputMode
}

// PlayAgainMsg restarts with the settings of the session that just ended.
type PlayAgainMsg struct{}

// BackToMenuMsg returns to the intro screen from the game or history screens.
// Notice, when set, is shown once on the menu.
type BackToMenuMsg struct {
	Notice string
}

const goodbyeNotice = "Goodbye!"

// Services are shared by every screen of one controller.
type Services struct {
	Journal  *game.SessionJournal // nil disables the history screen and recording
	Hint     *game.HintStrategy
	Rng      *rand.Rand
	Defaults SetupDefaults
}

type SetupDefaults struct {
	Name        string
	Height      float64
	Width       float64
	HolePercent float64
	InputMode   game.InputMode
}

type ControllerModel struct {
	CurrentScreen Screen
	Services      Services

	IntroModel   tea.Model
	SetupModel   tea.Model
	GameModel    tea.Model
	HistoryModel tea.Model

	lastSetup    *SetupSubmitMsg
	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(services Services, screenWidth int, screenHeight int) ControllerModel {
	if services.Hint == nil {
		services.Hint = game.NewDefaultHintStrategy()
	}
	if services.Rng == nil {
		services.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return ControllerModel{
		CurrentScreen: IntroScreen,
		Services:      services,

		IntroModel: NewIntroModel(screenWidth, screenHeight),
		SetupModel: NewInitialSetupModel(services.Defaults, screenWidth, screenHeight),

		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
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
	case HistoryScreen:
		if m.HistoryModel != nil {
			return m.HistoryModel.View()
		}
		return "Loading history..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// --- 1. Global Key Check ---
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "q" && m.CurrentScreen == IntroScreen {
			return m, tea.Quit
		}
	}

	// --- 2. State Transition Message Handling ---
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		cmd = m.broadcast(msg)
		return m, cmd

	case IntroSubmitMsg:
		switch msg {
		case 0:
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		case 1:
			m.CurrentScreen = HistoryScreen
			m.HistoryModel = NewHistoryModel(m.Services.Journal, m.ScreenWidth, m.ScreenHeight)
			return m, m.HistoryModel.Init()
		}

	case SetupSubmitMsg:
		setup := msg
		m.lastSetup = &setup
		return m.startGame(setup)

	case PlayAgainMsg:
		if m.lastSetup == nil {
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		}
		return m.startGame(*m.lastSetup)

	case BackToMenuMsg:
		intro := NewIntroModel(m.ScreenWidth, m.ScreenHeight)
		intro.notice = msg.Notice
		m.IntroModel = intro
		m.CurrentScreen = IntroScreen
		m.GameModel = nil
		m.HistoryModel = nil
		return m, m.IntroModel.Init()

	default:
		// --- 3. Message Delegation ---
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
			}
		case HistoryScreen:
			if m.HistoryModel != nil {
				m.HistoryModel, cmd = m.HistoryModel.Update(msg)
			}
		}
	}

	return m, cmd
}

func (m ControllerModel) startGame(setup SetupSubmitMsg) (tea.Model, tea.Cmd) {
	keyMap, err := game.NewKeyMap(setup.InputMode)
	if err != nil {
		log.Error("Invalid key map, quitting.", "mode", setup.InputMode, "error", err)
		return m, tea.Quit
	}

	result := game.Generate(setup.Grid, m.Services.Rng)
	if result.FellBack {
		log.Warn("No solvable layout found, using fallback grid.",
			"height", setup.Grid.Height, "width", setup.Grid.Width, "hole_percent", setup.Grid.HolePercent)
	} else {
		log.Debug("Grid generated.", "attempts", result.Attempts, "holes", result.Grid.Count(game.Hole))
	}

	session := game.NewSession(result.Grid, keyMap)
	m.GameModel = NewGameModel(session, setup, m.Services, m.ScreenWidth, m.ScreenHeight)
	m.CurrentScreen = GameScreen
	return m, m.GameModel.Init()
}

// broadcast forwards resize events to every live screen.
func (m *ControllerModel) broadcast(msg tea.WindowSizeMsg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.IntroModel, cmd = m.IntroModel.Update(msg)
	cmds = append(cmds, cmd)
	m.SetupModel, cmd = m.SetupModel.Update(msg)
	cmds = append(cmds, cmd)
	if m.GameModel != nil {
		m.GameModel, cmd = m.GameModel.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.HistoryModel != nil {
		m.HistoryModel, cmd = m.HistoryModel.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}
