package server

import (
	"math/rand"
	"time"

	"github.com/Mshel/hunthat/internal/config"
	"github.com/Mshel/hunthat/internal/game"
	"github.com/Mshel/hunthat/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

// New builds the SSH server. Every connection gets its own controller and sessions;
// only the journal and the connection limiter are shared.
func New(cfg config.Config, journal *game.SessionJournal) (*ssh.Server, error) {
	limiter := NewConnectionLimiter(cfg.MaxConnectionsPerIP)

	return wish.NewServer(
		wish.WithAddress(cfg.Address()),
		wish.WithHostKeyPath(cfg.PrivateKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler(cfg, journal)),
			logging.Middleware(),
			activeterm.Middleware(),
			limiter.Middleware,
		),
	)
}

func viewHandler(cfg config.Config, journal *game.SessionJournal) bubbletea.Handler {
	return func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sshSession.Pty()

		services := ui.Services{
			Journal:  journal,
			Hint:     game.NewDefaultHintStrategy(),
			Rng:      NewRng(cfg.Seed),
			Defaults: SetupDefaults(cfg, sshSession.User()),
		}
		controllerModel := ui.NewControllerModel(services, pty.Window.Width, pty.Window.Height)

		return controllerModel, []tea.ProgramOption{tea.WithAltScreen()}
	}
}

// SetupDefaults prefills the setup form with the clamped grid from the configuration.
func SetupDefaults(cfg config.Config, playerName string) ui.SetupDefaults {
	grid := cfg.GridConfig()
	return ui.SetupDefaults{
		Name:        playerName,
		Height:      float64(grid.Height),
		Width:       float64(grid.Width),
		HolePercent: grid.HolePercent,
		InputMode:   cfg.InputMode,
	}
}

// NewRng returns a generator seeded with seed, or with the clock when seed is 0.
func NewRng(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
