package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ogvalley/internal/adapter/scheduler"
	"ogvalley/internal/bootstrap"
	"ogvalley/internal/config"
	"ogvalley/internal/logger"
)

const logFile = "ogvalley-console.log"

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	// The terminal belongs to the UI.
	if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open save store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()
	game := bootstrap.Build(ctx, cfg, store, log)

	go func() {
		_ = scheduler.Runner{Jobs: game.Jobs(), Logger: log}.Run(ctx)
	}()

	p := tea.NewProgram(newConsole(ctx, game), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	cancel()
	if err := game.Persist.Save(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "save failed: %v\n", err)
	}
}
