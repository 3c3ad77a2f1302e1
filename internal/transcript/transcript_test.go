// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsWithGreeting(t *testing.T) {
	tr := New()

	require.Equal(t, 1, tr.Len())
	first := tr.Messages()[0]
	assert.Equal(t, AuthorAssistant, first.Author)
	assert.Equal(t, Greeting, first.Text)
	assert.False(t, first.Pending)
}

func TestIDsIncreaseWithCreationOrder(t *testing.T) {
	tr := NewEmpty()

	a := tr.AppendUser("primeira")
	b := tr.AppendUser("segunda")
	c, err := tr.AppendPendingAssistant()
	require.NoError(t, err)

	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)
}

func TestResolveReplacesInPlace(t *testing.T) {
	tr := New()
	tr.AppendUser("oi")
	pending, err := tr.AppendPendingAssistant()
	require.NoError(t, err)

	lenBefore := tr.Len()
	assert.True(t, pending.Pending)
	assert.Empty(t, pending.Text)

	require.NoError(t, tr.Resolve(pending.ID, "Tudo bem?"))

	assert.Equal(t, lenBefore, tr.Len(), "resolve must not append")
	last := tr.Last()
	assert.Equal(t, pending.ID, last.ID, "same id before and after")
	assert.Equal(t, "Tudo bem?", last.Text)
	assert.False(t, last.Pending)
	assert.False(t, tr.HasPending())
}

func TestSinglePendingInvariant(t *testing.T) {
	tr := New()
	_, err := tr.AppendPendingAssistant()
	require.NoError(t, err)

	_, err = tr.AppendPendingAssistant()
	assert.ErrorIs(t, err, ErrPendingExists)
}

func TestResolveUnknownID(t *testing.T) {
	tr := New()
	assert.ErrorIs(t, tr.Resolve(999, "x"), ErrNoSuchMessage)
}

func TestPreview(t *testing.T) {
	tr := NewEmpty()
	msg := tr.AppendUser("Quais são as principais obras em Boa Viagem?")

	assert.Equal(t, "Quais são as...", msg.Preview(15))
	assert.Equal(t, msg.Text, msg.Preview(200))
}
