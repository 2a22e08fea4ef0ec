package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/Mshel/hunthat/internal/config"
	"github.com/Mshel/hunthat/internal/game"
	"github.com/Mshel/hunthat/internal/server"
	"github.com/Mshel/hunthat/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("config error %v\n", err)
		os.Exit(1)
	}

	// the TUI owns stdout, keep logs out of the way
	logFile, err := tea.LogToFile("hunthat.log", "runner")
	if err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetLevel(cfg.LogLevel)

	journal, err := game.NewSessionJournal(cfg.DBPath)
	if err != nil {
		log.Warn("Session journal unavailable, history disabled", "path", cfg.DBPath, "error", err)
	} else {
		defer journal.Close()
	}

	services := ui.Services{
		Journal:  journal,
		Hint:     game.NewDefaultHintStrategy(),
		Rng:      server.NewRng(cfg.Seed),
		Defaults: server.SetupDefaults(cfg, localUserName()),
	}

	p := tea.NewProgram(ui.NewControllerModel(services, 0, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
}

func localUserName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "player"
}
