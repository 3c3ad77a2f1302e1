// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digai/digai-tui/internal/config"
	"github.com/digai/digai-tui/internal/gemini"
	"github.com/digai/digai-tui/internal/ui"
)

// HandleTUI starts the dashboard TUI.
func HandleTUI(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}
	config.SetGlobal(cfg)

	client := gemini.NewClient(cfg.Gemini.APIKey).
		WithBaseURL(cfg.Gemini.BaseURL).
		WithModel(cfg.Gemini.Model).
		WithTimeout(cfg.Gemini.Timeout())

	app := ui.NewApp(client)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
