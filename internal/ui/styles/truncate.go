// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package styles

import "github.com/mattn/go-runewidth"

// Truncate shortens s to at most width display cells, appending an
// ellipsis when anything was cut. Width is measured in terminal cells,
// not runes, so double-width characters are handled correctly.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// PadRight pads s with spaces to exactly width display cells.
func PadRight(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}
