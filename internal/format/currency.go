// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package format renders dataset values for display.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer formats numbers with pt-BR grouping ("12.000.000").
var printer = message.NewPrinter(language.BrazilianPortuguese)

// BRL formats a whole-real amount as Brazilian currency without cents,
// matching the dashboard's display convention.
func BRL(amount int64) string {
	return printer.Sprintf("R$ %v", number.Decimal(amount))
}

// Int formats an integer with pt-BR grouping.
func Int(n int) string {
	return printer.Sprintf("%v", number.Decimal(n))
}
