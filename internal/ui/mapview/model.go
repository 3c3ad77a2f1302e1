// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package mapview provides the map surface of the TUI: the bairro marker
// grid and the animated camera that frames the city or a single region.
package mapview

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/digai/digai-tui/internal/dataset"
	"github.com/digai/digai-tui/internal/selection"
	"github.com/digai/digai-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// LoadedMsg signals that the map surface finished loading. Markers are
// not placed before it arrives.
type LoadedMsg struct{}

// CameraFrameMsg drives one step of a camera animation. Seq ties the
// frame to the animation that scheduled it; frames from a superseded
// animation are dropped.
type CameraFrameMsg struct {
	Seq int
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the map surface.
type Model struct {
	theme      *styles.Theme
	controller *selection.Controller

	regions []dataset.Record
	cursor  int
	loaded  bool

	width  int
	height int

	camera    Camera
	target    Camera
	animSeq   int
	animating bool
}

// New creates a map surface over the full bairro dataset.
func New(theme *styles.Theme, controller *selection.Controller) Model {
	return Model{
		theme:      theme,
		controller: controller,
		regions:    dataset.All(),
		camera:     OverviewCamera(),
		target:     OverviewCamera(),
	}
}

// Init starts the simulated map load. Markers appear only after LoadedMsg.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return LoadedMsg{}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loaded = true
		return m, nil

	case CameraFrameMsg:
		return m.handleCameraFrame(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// SetSize updates the surface dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Loaded reports whether markers are placed yet.
func (m Model) Loaded() bool {
	return m.loaded
}

// Camera returns the current camera, for display and tests.
func (m Model) Camera() Camera {
	return m.camera
}

// =============================================================================
// CAMERA ANIMATION
// =============================================================================

// FlyTo starts an animation toward the focus framing of region.
// A newer FlyTo or FlyToOverview supersedes any animation in flight.
func (m *Model) FlyTo(region dataset.Record) tea.Cmd {
	return m.animateTo(FocusCamera(region))
}

// FlyToOverview starts an animation back to the city framing.
func (m *Model) FlyToOverview() tea.Cmd {
	return m.animateTo(OverviewCamera())
}

func (m *Model) animateTo(target Camera) tea.Cmd {
	m.target = target
	m.animSeq++
	m.animating = true
	return frameCmd(m.animSeq)
}

func (m Model) handleCameraFrame(msg CameraFrameMsg) (Model, tea.Cmd) {
	if msg.Seq != m.animSeq || !m.animating {
		return m, nil
	}
	if m.camera.step(m.target, 1.0/frameRate) {
		m.animating = false
		return m, nil
	}
	return m, frameCmd(m.animSeq)
}

func frameCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return CameraFrameMsg{Seq: seq}
	})
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.loaded {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.regions)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.regions) - 1
	case "enter", " ":
		return m, m.activateMarker()
	case "esc":
		if _, selected := m.controller.Current(); selected {
			m.controller.Reset()
		}
	}
	return m, nil
}

// activateMarker selects the region under the cursor. Activating the
// marker of the already-selected region deselects it instead.
func (m *Model) activateMarker() tea.Cmd {
	if len(m.regions) == 0 {
		return nil
	}
	region := m.regions[m.cursor]

	if current, selected := m.controller.Current(); selected && current.Name == region.Name {
		m.controller.Reset()
		return nil
	}
	m.controller.Select(region)
	return nil
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the map surface.
func (m Model) View() string {
	if !m.loaded {
		return m.theme.MapFrame.Render(m.theme.CameraInfo.Render("Carregando mapa..."))
	}

	var b strings.Builder

	selectedName := ""
	if current, ok := m.controller.Current(); ok {
		selectedName = current.Name
	}

	visible := m.visibleRows()
	start, end := m.window(visible)
	for i := start; i < end; i++ {
		region := m.regions[i]
		label := styles.Truncate(region.Name, m.markerWidth())

		switch {
		case region.Name == selectedName && i == m.cursor:
			b.WriteString(m.theme.MarkerSelected.Render("▸ " + label))
		case region.Name == selectedName:
			b.WriteString(m.theme.MarkerSelected.Render("  " + label))
		case i == m.cursor:
			b.WriteString(m.theme.Marker.Bold(true).Render("▸ " + label))
		default:
			b.WriteString(m.theme.Marker.Render("  " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.CameraInfo.Render(m.cameraLine()))
	return m.theme.MapFrame.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) cameraLine() string {
	return fmt.Sprintf("câmera %.4f, %.4f  zoom %.1f  pitch %.0f°",
		m.camera.Center.Lng, m.camera.Center.Lat, m.camera.Zoom, m.camera.Pitch)
}

func (m Model) markerWidth() int {
	w := m.width - 8
	if w < 12 {
		w = 12
	}
	return w
}

func (m Model) visibleRows() int {
	rows := m.height - 4
	if rows < 5 {
		rows = 5
	}
	if rows > len(m.regions) {
		rows = len(m.regions)
	}
	return rows
}

// window keeps the cursor inside the visible slice of markers.
func (m Model) window(rows int) (int, int) {
	start := m.cursor - rows/2
	if start < 0 {
		start = 0
	}
	end := start + rows
	if end > len(m.regions) {
		end = len(m.regions)
		start = end - rows
		if start < 0 {
			start = 0
		}
	}
	return start, end
}
