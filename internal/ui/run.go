package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DaanHessen/octodial/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, cfg util.Config, logger *slog.Logger) error {
	m := initialModel(cfg, logger)
	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(m, opts...)
	_, err := program.Run()
	return err
}
