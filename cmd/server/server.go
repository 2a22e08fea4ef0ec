package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mshel/hunthat/internal/config"
	"github.com/Mshel/hunthat/internal/game"
	"github.com/Mshel/hunthat/internal/server"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}
	log.SetLevel(cfg.LogLevel)

	journal, err := game.NewSessionJournal(cfg.DBPath)
	if err != nil {
		log.Fatal("Could not open session journal", "path", cfg.DBPath, "error", err)
	}
	defer journal.Close()

	sshServer, err := server.New(cfg, journal)
	if err != nil {
		log.Fatal("Failed to create ssh server", "error", err)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	// Capturing system signal to stop server
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "address", cfg.Address())
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}
