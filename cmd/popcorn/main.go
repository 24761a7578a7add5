// Package main runs the popcorn storefront in the local terminal.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thomas/popcorn-terminal/internal/cart"
	"github.com/thomas/popcorn-terminal/internal/catalog"
	"github.com/thomas/popcorn-terminal/internal/config"
	"github.com/thomas/popcorn-terminal/internal/logger"
	"github.com/thomas/popcorn-terminal/internal/server"
	"github.com/thomas/popcorn-terminal/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "popcorn:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; logs go to a file.
	logFile, err := os.OpenFile("popcorn.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logFile})

	ctx := context.Background()
	store, closeStore, err := server.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	cat := catalog.Default()
	model := tui.NewModel(tui.Options{
		Catalog:    cat,
		Cart:       cart.NewService(store, cart.DefaultKey, cat, log),
		Logger:     log,
		Context:    ctx,
		FadeDelay:  cfg.GalleryFadeDelay,
		ClearDelay: cfg.MessageClearDelay,
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
