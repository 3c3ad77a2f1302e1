// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

// Package config provides configuration loading and management for digai.
//
// Precedence, lowest to highest: built-in defaults, the TOML config file,
// a .env file in the working directory, process environment variables.
//
// The Gemini API key is environment-only: it is never written to the
// config file and never logged.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

const (
	// DefaultPort is the generation proxy's default listen port.
	DefaultPort = 3001

	configDirName  = "digai"
	configFileName = "config.toml"
)

// Config represents the complete digai configuration.
type Config struct {
	// Server configures the generation proxy.
	Server ServerConfig `toml:"server" json:"server"`

	// Gemini configures the upstream generative-language client.
	Gemini GeminiConfig `toml:"gemini" json:"gemini"`
}

// ServerConfig contains generation proxy configuration.
type ServerConfig struct {
	// Port is the listen port for the proxy.
	Port int `toml:"port" json:"port"`
	// AllowedOrigins lists origins accepted by the CORS middleware.
	// "*" allows any origin, matching the original deployment.
	AllowedOrigins []string `toml:"allowed_origins" json:"allowed_origins"`
	// RateLimit is the per-IP request budget per minute.
	RateLimit int `toml:"rate_limit" json:"rate_limit"`
}

// GeminiConfig contains upstream client configuration.
type GeminiConfig struct {
	// APIKey comes from GEMINI_API_KEY only; never persisted.
	APIKey string `toml:"-" json:"-"`

	// BaseURL is the generative-language API base URL.
	BaseURL string `toml:"base_url" json:"base_url"`
	// Model is the model used for generateContent requests.
	Model string `toml:"model" json:"model"`
	// TimeoutSecs bounds a single upstream call.
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// Timeout returns the upstream timeout as a duration.
func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSecs) * time.Second
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           DefaultPort,
			AllowedOrigins: []string{"*"},
			RateLimit:      100,
		},
		Gemini: GeminiConfig{
			BaseURL:     "https://generativelanguage.googleapis.com/v1beta",
			Model:       "gemini-2.5-flash",
			TimeoutSecs: 60,
		},
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks the configuration and returns all problems found.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, ValidationError{"server.port", fmt.Sprintf("must be 1-65535, got %d", c.Server.Port)})
	}
	if c.Server.RateLimit < 1 {
		errs = append(errs, ValidationError{"server.rate_limit", "must be positive"})
	}
	if !strings.HasPrefix(c.Gemini.BaseURL, "http://") && !strings.HasPrefix(c.Gemini.BaseURL, "https://") {
		errs = append(errs, ValidationError{"gemini.base_url", "must be an http(s) URL"})
	}
	if c.Gemini.Model == "" {
		errs = append(errs, ValidationError{"gemini.model", "must not be empty"})
	}
	if c.Gemini.TimeoutSecs < 1 {
		errs = append(errs, ValidationError{"gemini.timeout_secs", "must be positive"})
	}

	return errors.Join(errs...)
}

// RequireAPIKey fails when no Gemini credential is configured. The proxy
// refuses to start without one; there is no built-in fallback key.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return errors.New("GEMINI_API_KEY is not set; refusing to start without a credential")
	}
	return nil
}

// =============================================================================
// LOADING
// =============================================================================

// Path returns the config file path (~/.config/digai/config.toml on Linux).
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config dir: %w", err)
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// Load reads the configuration from all sources in precedence order.
// A missing config file or .env file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if _, decodeErr := toml.DecodeFile(path, cfg); decodeErr != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, decodeErr)
			}
		}
	}

	// .env is how deployments ship the credential; absence is fine.
	_ = godotenv.Load()

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides applies process environment variables on top of the
// file-based configuration.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = strings.TrimSpace(v)
	}
	if v := os.Getenv("DIGAI_GEMINI_BASE_URL"); v != "" {
		c.Gemini.BaseURL = v
	}
	if v := os.Getenv("DIGAI_GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("DIGAI_GEMINI_TIMEOUT_SECS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Gemini.TimeoutSecs = secs
		}
	}

	// DIGAI_PORT wins over the generic PORT set by hosting platforms.
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("DIGAI_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
}

// Save writes the configuration to the config file with 0600 permissions.
// The API key is excluded by its toml:"-" tag.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// =============================================================================
// GLOBAL SINGLETON
// =============================================================================

var (
	globalMu     sync.RWMutex
	globalConfig *Config
	globalOnce   sync.Once
)

// Global returns the process-wide configuration, loading it on first use.
// Load failures fall back to defaults plus env overrides; entry points call
// Load directly when they need the error.
func Global() *Config {
	globalOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			cfg = Default()
			cfg.ApplyEnvOverrides()
		}
		globalMu.Lock()
		globalConfig = cfg
		globalMu.Unlock()
	})

	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// SetGlobal replaces the process-wide configuration; the watcher uses this
// on reload.
func SetGlobal(cfg *Config) {
	globalOnce.Do(func() {})
	globalMu.Lock()
	globalConfig = cfg
	globalMu.Unlock()
}

// ResetGlobalForTesting clears the singleton so tests can reload.
func ResetGlobalForTesting() {
	globalMu.Lock()
	globalConfig = nil
	globalMu.Unlock()
	globalOnce = sync.Once{}
}
