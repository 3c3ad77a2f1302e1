// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseArgs(t *testing.T, argv ...string) (Command, Args) {
	t.Helper()
	oldArgs := os.Args
	os.Args = append([]string{"digai"}, argv...)
	defer func() { os.Args = oldArgs }()
	return Parse()
}

func TestParseDefaultsToTUI(t *testing.T) {
	cmd, _ := parseArgs(t)
	assert.Equal(t, CmdTUI, cmd)
}

func TestParseServeWithPort(t *testing.T) {
	cmd, args := parseArgs(t, "serve", "--port", "8080")
	assert.Equal(t, CmdServe, cmd)
	assert.Equal(t, 8080, args.Port)

	cmd, args = parseArgs(t, "serve", "--port=9090")
	assert.Equal(t, CmdServe, cmd)
	assert.Equal(t, 9090, args.Port)

	cmd, args = parseArgs(t, "serve")
	assert.Equal(t, CmdServe, cmd)
	assert.Zero(t, args.Port, "port defaults to config when unset")
}

func TestParseConfigSet(t *testing.T) {
	cmd, args := parseArgs(t, "config", "set", "server.port", "3001")
	assert.Equal(t, CmdConfig, cmd)
	assert.Equal(t, "set", args.Subcommand)
	assert.Equal(t, "server.port", args.ConfigKey)
	assert.Equal(t, "3001", args.ConfigVal)
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := parseArgs(t, "-q", "serve")
	assert.Equal(t, CmdServe, cmd)
	assert.True(t, args.Quiet)
}

func TestParseUnknownCommandShowsHelp(t *testing.T) {
	cmd, _ := parseArgs(t, "frobnicate")
	assert.Equal(t, CmdHelp, cmd)
}

func TestParseVersionAliases(t *testing.T) {
	for _, alias := range []string{"version", "--version"} {
		cmd, _ := parseArgs(t, alias)
		assert.Equal(t, CmdVersion, cmd, alias)
	}
}
