// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digai/digai-tui/internal/dataset"
)

func mustLookup(t *testing.T, name string) dataset.Record {
	t.Helper()
	rec, err := dataset.Lookup(name)
	require.NoError(t, err)
	return rec
}

// Visibility must equal "a region is selected" in every reachable state.
func TestVisibilityDerivedFromSelection(t *testing.T) {
	c := New()
	centro := mustLookup(t, "Centro")
	pina := mustLookup(t, "Pina")

	_, visible := c.Current()
	assert.False(t, visible)

	c.Select(centro)
	rec, visible := c.Current()
	assert.True(t, visible)
	assert.Equal(t, "Centro", rec.Name)

	c.Select(pina)
	rec, visible = c.Current()
	assert.True(t, visible)
	assert.Equal(t, "Pina", rec.Name)

	c.Reset()
	rec, visible = c.Current()
	assert.False(t, visible)
	assert.Empty(t, rec.Name)
}

func TestSelectSameRegionIsNoOp(t *testing.T) {
	c := New()
	centro := mustLookup(t, "Centro")

	c.Select(centro)
	gen := c.Generation()

	c.Select(centro)
	assert.Equal(t, gen, c.Generation(), "repeated select must not transition")
}

func TestResetWithoutSelectionIsNoOp(t *testing.T) {
	c := New()
	c.Reset()
	assert.Equal(t, uint64(0), c.Generation())
}

func TestGenerationTracksTransitions(t *testing.T) {
	c := New()
	centro := mustLookup(t, "Centro")
	pina := mustLookup(t, "Pina")

	c.Select(centro)
	genA := c.Generation()
	assert.True(t, c.IsCurrent(genA))

	c.Select(pina)
	assert.False(t, c.IsCurrent(genA), "old generation is stale after re-selection")
	assert.True(t, c.IsCurrent(c.Generation()))

	c.Reset()
	assert.False(t, c.IsCurrent(genA))
}

func TestSubscribeReceivesTransitions(t *testing.T) {
	c := New()
	centro := mustLookup(t, "Centro")

	var events []Event
	c.Subscribe(func(ev Event) {
		events = append(events, ev)
	})

	c.Select(centro)
	c.Select(centro) // no-op, no event
	c.Reset()

	require.Len(t, events, 2)
	assert.Equal(t, EventSelected, events[0].Kind)
	assert.Equal(t, "Centro", events[0].Region.Name)
	assert.Equal(t, EventReset, events[1].Kind)
	assert.Greater(t, events[1].Generation, events[0].Generation)
}
