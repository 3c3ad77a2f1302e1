// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// digai is a terminal dashboard over Recife's per-bairro civic data.
//
// It bundles three things: the map-and-dashboard TUI, the desenrolAI
// assistant, and the HTTP proxy that fronts the Gemini API for browser
// deployments.
package main

import (
	"fmt"
	"os"

	"github.com/digai/digai-tui/internal/cli"
)

func main() {
	cmd, args := cli.Parse()

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = cli.HandleTUI(args)
	case cli.CmdServe:
		err = cli.HandleServe(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args)
	case cli.CmdVersion:
		cli.HandleVersion()
	case cli.CmdHelp:
		cli.HandleHelp()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
