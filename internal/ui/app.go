// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package ui composes the digAI surfaces: the map on the left, the
// region dashboard under it when a bairro is selected, and the
// desenrolAI assistant on the right.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/digai/digai-tui/internal/selection"
	"github.com/digai/digai-tui/internal/ui/assistant"
	"github.com/digai/digai-tui/internal/ui/dashboard"
	"github.com/digai/digai-tui/internal/ui/mapview"
	"github.com/digai/digai-tui/internal/ui/styles"
)

// Generator is the upstream text generation dependency shared by the
// dashboard narrative and the assistant.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// =============================================================================
// FOCUS
// =============================================================================

// Focus identifies which surface receives key input.
type Focus int

const (
	FocusMap Focus = iota
	FocusAssistant
)

// =============================================================================
// MESSAGES
// =============================================================================

// selectionMsg carries a selection transition into the Bubble Tea loop.
type selectionMsg struct {
	event selection.Event
}

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root Bubble Tea model.
type App struct {
	theme      *styles.Theme
	controller *selection.Controller

	mapview   mapview.Model
	dashboard dashboard.Model
	assistant assistant.Model

	focus  Focus
	events chan selection.Event

	width  int
	height int
}

// NewApp wires the surfaces around a shared selection controller.
func NewApp(generator Generator) App {
	theme := styles.NewTheme()
	controller := selection.New()

	// Transitions flow through a buffered channel into the update loop,
	// so surfaces only ever mutate state from their own Update.
	events := make(chan selection.Event, 16)
	controller.Subscribe(func(ev selection.Event) {
		events <- ev
	})

	return App{
		theme:      theme,
		controller: controller,
		mapview:    mapview.New(theme, controller),
		dashboard:  dashboard.New(theme, controller, generator),
		assistant:  assistant.New(theme, controller, generator),
		focus:      FocusMap,
		events:     events,
	}
}

// Controller exposes the selection controller, used by tests.
func (a App) Controller() *selection.Controller {
	return a.controller
}

// Init initializes all surfaces and arms the selection listener.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.mapview.Init(),
		a.assistant.Init(),
		a.waitForSelection(),
	)
}

func (a App) waitForSelection() tea.Cmd {
	events := a.events
	return func() tea.Msg {
		return selectionMsg{event: <-events}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and routes them to the focused surface.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)

	case selectionMsg:
		return a.handleSelection(msg.event)

	case mapview.LoadedMsg, mapview.CameraFrameMsg:
		var cmd tea.Cmd
		a.mapview, cmd = a.mapview.Update(msg)
		return a, cmd

	case dashboard.NarrativeMsg:
		var cmd tea.Cmd
		a.dashboard, cmd = a.dashboard.Update(msg)
		return a, cmd

	case assistant.AnswerMsg:
		var cmd tea.Cmd
		a.assistant, cmd = a.assistant.Update(msg)
		return a, cmd
	}

	// Spinner ticks and the like go to the assistant.
	var cmd tea.Cmd
	a.assistant, cmd = a.assistant.Update(msg)
	return a, cmd
}

func (a App) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height
	a.theme.SetSize(msg.Width, msg.Height)

	leftWidth := msg.Width * 3 / 5
	rightWidth := msg.Width - leftWidth - 2
	contentHeight := msg.Height - 3

	a.mapview.SetSize(leftWidth, contentHeight/2)
	a.dashboard.SetSize(leftWidth, contentHeight-contentHeight/2)
	a.assistant.SetSize(rightWidth, contentHeight)

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return a, tea.Quit

	case "ctrl+a":
		if a.focus == FocusMap {
			a.focus = FocusAssistant
		} else {
			a.focus = FocusMap
		}
		return a, nil
	}

	var cmd tea.Cmd
	if a.focus == FocusAssistant {
		a.assistant, cmd = a.assistant.Update(msg)
	} else {
		a.mapview, cmd = a.mapview.Update(msg)
	}
	return a, cmd
}

// handleSelection fans a transition out to the map camera and the
// dashboard, then re-arms the listener.
func (a App) handleSelection(ev selection.Event) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch ev.Kind {
	case selection.EventSelected:
		cmds = append(cmds, a.mapview.FlyTo(ev.Region))
		cmds = append(cmds, a.dashboard.ShowRegion(ev.Region, ev.Generation))
	case selection.EventReset:
		cmds = append(cmds, a.mapview.FlyToOverview())
		a.dashboard.Clear()
	}

	cmds = append(cmds, a.waitForSelection())
	return a, tea.Batch(cmds...)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the composed layout.
func (a App) View() string {
	header := a.theme.Header.Width(a.width).Render("digAI Recife  ·  dados urbanos por bairro")

	left := a.mapview.View()
	if _, selected := a.controller.Current(); selected {
		left = lipgloss.JoinVertical(lipgloss.Left, left, a.dashboard.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", a.assistant.View())

	status := a.renderStatusBar()
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (a App) renderStatusBar() string {
	help := a.theme.ShortcutKey.Render("↑/↓") + a.theme.ShortcutDesc.Render(" navegar  ") +
		a.theme.ShortcutKey.Render("enter") + a.theme.ShortcutDesc.Render(" selecionar  ") +
		a.theme.ShortcutKey.Render("esc") + a.theme.ShortcutDesc.Render(" voltar  ") +
		a.theme.ShortcutKey.Render("ctrl+a") + a.theme.ShortcutDesc.Render(" assistente  ") +
		a.theme.ShortcutKey.Render("ctrl+q") + a.theme.ShortcutDesc.Render(" sair")
	return a.theme.StatusBar.Width(a.width).Render(help)
}
