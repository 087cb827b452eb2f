package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/leaveatip/internal/config"
)

// newLogger returns a logger writing to cfg.Log.File, or discarding everything
// when no file is set. The TUI owns stdout and stderr while it runs.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Log.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := tea.LogToFile(cfg.Log.File, cfg.App.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))

	return logger, func() { _ = f.Close() }, nil
}
