// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/digai/digai-tui/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return configShow()
	case "set":
		return configSet(args.ConfigKey, args.ConfigVal)
	case "path":
		return configPath()
	default:
		return fmt.Errorf("unknown config subcommand %q (want show, set, or path)", args.Subcommand)
	}
}

func configShow() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	fmt.Print(buf.String())

	// Report credential presence without the value.
	if cfg.RequireAPIKey() == nil {
		fmt.Println("\n# GEMINI_API_KEY: set")
	} else {
		fmt.Println("\n# GEMINI_API_KEY: not set")
	}
	return nil
}

func configSet(key, value string) error {
	if key == "" || value == "" {
		return fmt.Errorf("usage: digai config set <key> <value>")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch key {
	case "server.port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("server.port: %q is not a number", value)
		}
		cfg.Server.Port = port
	case "server.rate_limit":
		limit, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("server.rate_limit: %q is not a number", value)
		}
		cfg.Server.RateLimit = limit
	case "gemini.model":
		cfg.Gemini.Model = value
	case "gemini.base_url":
		cfg.Gemini.BaseURL = value
	case "gemini.timeout_secs":
		secs, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("gemini.timeout_secs: %q is not a number", value)
		}
		cfg.Gemini.TimeoutSecs = secs
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}

func configPath() error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}
