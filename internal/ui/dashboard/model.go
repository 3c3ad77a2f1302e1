// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package dashboard provides the region dashboard surface: the static
// indicators of the selected bairro plus an asynchronously generated
// narrative about it.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"github.com/digai/digai-tui/internal/dataset"
	"github.com/digai/digai-tui/internal/format"
	"github.com/digai/digai-tui/internal/selection"
	"github.com/digai/digai-tui/internal/ui/styles"
)

// narrativeTimeout bounds a single narrative request.
const narrativeTimeout = 60 * time.Second

// Generator is the upstream text generation dependency.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// =============================================================================
// MESSAGES
// =============================================================================

// NarrativeMsg delivers the result of a narrative request. Gen is the
// selection generation the request was issued for; RequestID identifies
// the request in logs.
type NarrativeMsg struct {
	Gen       uint64
	RequestID string
	Text      string
	Err       error
}

// =============================================================================
// NARRATIVE STATE
// =============================================================================

// narrativeState tracks the async narrative lifecycle.
type narrativeState int

const (
	narrativeIdle narrativeState = iota
	narrativeLoading
	narrativeReady
	narrativeFailed
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the dashboard surface.
type Model struct {
	theme      *styles.Theme
	controller *selection.Controller
	generator  Generator

	region dataset.Record

	narrative    string
	narrativeGen uint64
	narrState    narrativeState

	width  int
	height int
}

// New creates a dashboard bound to the selection controller.
func New(theme *styles.Theme, controller *selection.Controller, generator Generator) Model {
	return Model{
		theme:      theme,
		controller: controller,
		generator:  generator,
	}
}

// SetSize updates the surface dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// =============================================================================
// SELECTION TRANSITIONS
// =============================================================================

// ShowRegion populates the static indicators synchronously and kicks off
// the narrative request for the new selection. The indicators never wait
// on the narrative.
func (m *Model) ShowRegion(region dataset.Record, gen uint64) tea.Cmd {
	m.region = region
	m.narrative = ""
	m.narrativeGen = gen
	m.narrState = narrativeLoading
	return m.fetchNarrative(region, gen)
}

// Clear empties the dashboard after a selection reset. An in-flight
// narrative keeps running; its result is dropped as stale on arrival.
func (m *Model) Clear() {
	m.region = dataset.Record{}
	m.narrative = ""
	m.narrState = narrativeIdle
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if narr, ok := msg.(NarrativeMsg); ok {
		return m.handleNarrative(narr)
	}
	return m, nil
}

// handleNarrative applies a narrative result, unless the selection moved
// on since the request was issued.
func (m Model) handleNarrative(msg NarrativeMsg) (Model, tea.Cmd) {
	if !m.controller.IsCurrent(msg.Gen) || msg.Gen != m.narrativeGen {
		return m, nil
	}

	if msg.Err != nil {
		m.narrState = narrativeFailed
		return m, nil
	}

	m.narrative = msg.Text
	m.narrState = narrativeReady
	return m, nil
}

// =============================================================================
// NARRATIVE REQUEST
// =============================================================================

func (m Model) fetchNarrative(region dataset.Record, gen uint64) tea.Cmd {
	generator := m.generator
	prompt := narrativePrompt(region)
	requestID := uuid.NewString()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), narrativeTimeout)
		defer cancel()

		text, err := generator.Generate(ctx, prompt)
		return NarrativeMsg{Gen: gen, RequestID: requestID, Text: text, Err: err}
	}
}

// narrativePrompt frames the narrative request for a region.
func narrativePrompt(region dataset.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Escreva um resumo curto sobre a região %s do Recife. ", region.Name)
	fmt.Fprintf(&b, "Dados: %d escolas, %d unidades de saúde, investimento de %s, obras: %s. ",
		region.Schools, region.HealthUnits, format.BRL(region.Investment),
		strings.Join(region.PublicWorks, ", "))
	b.WriteString("Responda em até 80 palavras, em português.")
	return b.String()
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the dashboard for the current region.
func (m Model) View() string {
	if m.region.Name == "" {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.DashboardTitle.Render(m.region.Name))
	b.WriteString("\n\n")

	b.WriteString(m.statLine("Escolas", format.Int(m.region.Schools)))
	b.WriteString(m.statLine("Unidades de saúde", format.Int(m.region.HealthUnits)))
	b.WriteString(m.theme.StatLabel.Render("Investimento  "))
	b.WriteString(m.theme.StatMoney.Render(format.BRL(m.region.Investment)))
	b.WriteString("\n\n")

	b.WriteString(m.theme.StatLabel.Render("Obras públicas"))
	b.WriteString("\n")
	for _, work := range m.region.PublicWorks {
		b.WriteString(m.theme.WorksItem.Render("• " + work))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderNarrative())

	return m.theme.DashboardFrame.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) statLine(label, value string) string {
	return m.theme.StatLabel.Render(label+"  ") + m.theme.StatValue.Render(value) + "\n"
}

func (m Model) renderNarrative() string {
	switch m.narrState {
	case narrativeLoading:
		return m.theme.PendingText.Render("Gerando resumo...")
	case narrativeFailed:
		return m.theme.ErrorText.Render("Não foi possível gerar o resumo.")
	case narrativeReady:
		return m.theme.NarrativeBox.Render(m.renderMarkdown(m.narrative))
	}
	return ""
}

// renderMarkdown renders the narrative through glamour.
func (m Model) renderMarkdown(text string) string {
	width := m.width - 8
	if width < 20 {
		width = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	out, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimSpace(out)
}
