// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package assistant provides the chat surface of the TUI: the desenrolAI
// transcript, the input line, and the suggestion chips.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/digai/digai-tui/internal/selection"
	"github.com/digai/digai-tui/internal/transcript"
	"github.com/digai/digai-tui/internal/ui/styles"
)

// answerTimeout bounds a single assistant request.
const answerTimeout = 60 * time.Second

// answerErrorText replaces the placeholder when the upstream call fails.
const answerErrorText = "Erro ao conectar ao Gemini."

// Suggestions are the fixed quick-question chips.
var Suggestions = []string{
	"Quais bairros mais receberam investimento?",
	"Quantas escolas existem na Zona Norte?",
	"Onde foram feitas obras recentes?",
	"Qual região tem mais unidades de saúde?",
	"Quais são as principais obras em Boa Viagem?",
	"Como está a educação no Centro?",
}

// Generator is the upstream text generation dependency.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// =============================================================================
// MESSAGES
// =============================================================================

// AnswerMsg delivers the result of an assistant request. ID is the
// transcript id of the placeholder it resolves.
type AnswerMsg struct {
	ID   int
	Text string
	Err  error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the assistant surface.
type Model struct {
	theme      *styles.Theme
	controller *selection.Controller
	generator  Generator

	transcript *transcript.Transcript

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	// chipIndex is the highlighted suggestion chip, -1 for none.
	chipIndex int

	width  int
	height int
}

// New creates an assistant surface with the fixed greeting.
func New(theme *styles.Theme, controller *selection.Controller, generator Generator) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Pergunte sobre o Recife..."
	ti.CharLimit = 2048
	ti.Focus()

	vp := viewport.New(60, 16)

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}

	m := Model{
		theme:      theme,
		controller: controller,
		generator:  generator,
		transcript: transcript.New(),
		viewport:   vp,
		input:      ti,
		spinner:    sp,
		chipIndex:  -1,
	}
	m.refreshViewport()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Transcript exposes the message log, used by tests.
func (m Model) Transcript() *transcript.Transcript {
	return m.transcript
}

// Busy reports whether an answer is in flight.
func (m Model) Busy() bool {
	return m.transcript.HasPending()
}

// SetSize updates the surface dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - 6
	if vpHeight < 4 {
		vpHeight = 4
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight

	inputWidth := width - 6
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.input.Width = inputWidth

	m.refreshViewport()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case AnswerMsg:
		return m.handleAnswer(msg)

	case spinner.TickMsg:
		if m.Busy() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.chipIndex = (m.chipIndex + 1) % len(Suggestions)
		return m, nil

	case "shift+tab":
		m.chipIndex--
		if m.chipIndex < 0 {
			m.chipIndex = len(Suggestions) - 1
		}
		return m, nil

	case "esc":
		m.chipIndex = -1
		return m, nil

	case "enter":
		if m.chipIndex >= 0 {
			m.input.SetValue(Suggestions[m.chipIndex])
			m.input.CursorEnd()
			m.chipIndex = -1
			return m, nil
		}
		return m.submit()

	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil

	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// SUBMISSION
// =============================================================================

// submit sends the current input. Empty input and an unresolved turn are
// both ignored, so at most one answer is in flight.
func (m Model) submit() (Model, tea.Cmd) {
	question := strings.TrimSpace(m.input.Value())
	if question == "" || m.Busy() {
		return m, nil
	}

	m.transcript.AppendUser(question)
	pending, err := m.transcript.AppendPendingAssistant()
	if err != nil {
		return m, nil
	}
	m.input.Reset()
	m.refreshViewport()
	m.viewport.GotoBottom()

	prompt := m.framePrompt(question)
	return m, tea.Batch(m.spinner.Tick, m.askCmd(pending.ID, prompt))
}

func (m Model) askCmd(id int, prompt string) tea.Cmd {
	generator := m.generator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), answerTimeout)
		defer cancel()

		text, err := generator.Generate(ctx, prompt)
		return AnswerMsg{ID: id, Text: text, Err: err}
	}
}

// framePrompt wraps the user question with the fixed assistant framing
// and, when a region is selected, a clause naming it.
func (m Model) framePrompt(question string) string {
	var b strings.Builder
	b.WriteString("Você é a desenrolAI, assistente de dados urbanos do Recife. ")
	b.WriteString("Responda de forma concisa, em até 100 palavras, sem formatação de texto. ")
	if region, ok := m.controller.Current(); ok {
		fmt.Fprintf(&b, "O usuário está com a região %s selecionada no mapa. ", region.Name)
	}
	b.WriteString("Pergunta: ")
	b.WriteString(question)
	return b.String()
}

// handleAnswer resolves the placeholder in place. The transcript id ties
// the answer to its turn, so a reply can never land on the wrong bubble.
func (m Model) handleAnswer(msg AnswerMsg) (Model, tea.Cmd) {
	text := msg.Text
	if msg.Err != nil {
		text = answerErrorText
	}
	if err := m.transcript.Resolve(msg.ID, text); err != nil {
		return m, nil
	}
	m.refreshViewport()
	m.viewport.GotoBottom()
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the assistant surface.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.HeaderTitle.Render("desenrolAI"))
	b.WriteString("  ")
	b.WriteString(m.theme.HeaderSubtitle.Render("Assistente inteligente para dados urbanos"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderChips())
	b.WriteString("\n")
	b.WriteString(m.theme.InputContainer.Render(m.input.View()))

	return b.String()
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderTranscript())
}

func (m Model) renderTranscript() string {
	var b strings.Builder

	bubbleWidth := m.viewport.Width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	for _, msg := range m.transcript.Messages() {
		switch {
		case msg.Pending:
			b.WriteString(m.theme.PendingText.Render(m.spinner.View() + " pensando..."))
		case msg.Author == transcript.AuthorUser:
			b.WriteString(m.theme.UserBubble.Width(bubbleWidth).Render(msg.Text))
		default:
			b.WriteString(m.theme.AssistantBubble.Width(bubbleWidth).Render(msg.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderChips() string {
	var chips []string
	chipWidth := m.width/3 - 4
	if chipWidth < 16 {
		chipWidth = 16
	}

	for i, s := range Suggestions {
		label := styles.Truncate(s, chipWidth)
		if i == m.chipIndex {
			chips = append(chips, m.theme.ChipSelected.Render(label))
		} else {
			chips = append(chips, m.theme.Chip.Render(label))
		}
	}
	return strings.Join(chips, " ")
}
