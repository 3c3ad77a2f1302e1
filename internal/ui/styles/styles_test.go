// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThemeInitializesStyles(t *testing.T) {
	theme := NewTheme()

	assert.NotNil(t, theme)
	assert.NotEmpty(t, theme.HeaderTitle.Render("digAI"))
}

func TestSetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)

	assert.Equal(t, 120, theme.Width)
	assert.Equal(t, 40, theme.Height)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Boa Viagem", Truncate("Boa Viagem", 20))
	assert.Equal(t, "Boa Vi…", Truncate("Boa Viagem", 7))
	assert.Equal(t, "", Truncate("Boa Viagem", 0))
}

func TestPadRight(t *testing.T) {
	assert.Len(t, PadRight("Pina", 10), 10)
}
