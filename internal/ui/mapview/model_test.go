// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package mapview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digai/digai-tui/internal/dataset"
	"github.com/digai/digai-tui/internal/selection"
	"github.com/digai/digai-tui/internal/ui/styles"
)

func newTestModel(t *testing.T) (Model, *selection.Controller) {
	t.Helper()
	ctrl := selection.New()
	m := New(styles.NewTheme(), ctrl)
	m.SetSize(80, 24)
	return m, ctrl
}

func pressEnter(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestMarkersAppearOnlyAfterLoad(t *testing.T) {
	m, ctrl := newTestModel(t)

	assert.False(t, m.Loaded())
	assert.Contains(t, m.View(), "Carregando mapa...")

	// Activation before load is ignored.
	m, _ = pressEnter(m)
	_, selected := ctrl.Current()
	assert.False(t, selected)

	m, _ = m.Update(LoadedMsg{})
	assert.True(t, m.Loaded())
	assert.Contains(t, m.View(), "Centro")
}

func TestMarkerActivationTogglesSelection(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = m.Update(LoadedMsg{})

	m, _ = pressEnter(m)
	rec, selected := ctrl.Current()
	require.True(t, selected)
	first := rec.Name

	// Same marker again deselects.
	m, _ = pressEnter(m)
	_, selected = ctrl.Current()
	assert.False(t, selected)

	// Different marker re-selects.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = pressEnter(m)
	rec, selected = ctrl.Current()
	require.True(t, selected)
	assert.NotEqual(t, first, rec.Name)
}

func TestEscResetsSelection(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = m.Update(LoadedMsg{})

	m, _ = pressEnter(m)
	_, selected := ctrl.Current()
	require.True(t, selected)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, selected = ctrl.Current()
	assert.False(t, selected)
}

func TestFlyToConvergesOnFocusCamera(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = m.Update(LoadedMsg{})

	centro, err := dataset.Lookup("Centro")
	require.NoError(t, err)

	cmd := m.FlyTo(centro)
	require.NotNil(t, cmd)

	// Drive animation frames to completion.
	seq := m.animSeq
	for i := 0; i < 1000 && m.animating; i++ {
		m, _ = m.Update(CameraFrameMsg{Seq: seq})
	}

	cam := m.Camera()
	assert.InDelta(t, centro.Anchor.Lng, cam.Center.Lng, 1e-3)
	assert.InDelta(t, centro.Anchor.Lat, cam.Center.Lat, 1e-3)
	assert.InDelta(t, FocusZoom, cam.Zoom, 0.05)
	assert.InDelta(t, FocusPitch, cam.Pitch, 0.5)
}

func TestStaleAnimationFramesAreDropped(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = m.Update(LoadedMsg{})

	centro, err := dataset.Lookup("Centro")
	require.NoError(t, err)

	m.FlyTo(centro)
	oldSeq := m.animSeq

	// A newer animation supersedes the first.
	m.FlyToOverview()

	before := m.Camera()
	m, _ = m.Update(CameraFrameMsg{Seq: oldSeq})
	assert.Equal(t, before, m.Camera(), "frame from a superseded animation must not move the camera")
}

func TestOverviewIsTheInitialCamera(t *testing.T) {
	m, _ := newTestModel(t)

	cam := m.Camera()
	assert.Equal(t, OverviewCenter, cam.Center)
	assert.Equal(t, OverviewZoom, cam.Zoom)
	assert.Equal(t, OverviewPitch, cam.Pitch)
}
