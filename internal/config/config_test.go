// Copyright (c) 2025 digAI Labs
// SPDX-License-Identifier: MIT

package config

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0
	cfg.Gemini.Model = ""
	cfg.Gemini.TimeoutSecs = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "gemini.model")
	assert.Contains(t, err.Error(), "gemini.timeout_secs")
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  env-key  ")
	t.Setenv("PORT", "4000")
	t.Setenv("DIGAI_PORT", "4100")
	t.Setenv("DIGAI_GEMINI_MODEL", "gemini-2.0-pro")
	t.Setenv("DIGAI_GEMINI_TIMEOUT_SECS", "30")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, 4100, cfg.Server.Port, "DIGAI_PORT wins over PORT")
	assert.Equal(t, "gemini-2.0-pro", cfg.Gemini.Model)
	assert.Equal(t, 30, cfg.Gemini.TimeoutSecs)
}

func TestApplyEnvOverridesIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	cfg := Default()
	cfg.ApplyEnvOverrides()
	assert.Equal(t, DefaultPort, cfg.Server.Port)
}

func TestRequireAPIKey(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.RequireAPIKey())

	cfg.Gemini.APIKey = "some-key"
	assert.NoError(t, cfg.RequireAPIKey())

	cfg.Gemini.APIKey = "   "
	assert.Error(t, cfg.RequireAPIKey())
}

// TestConcurrentGlobalAccess exercises Global/SetGlobal under -race.
func TestConcurrentGlobalAccess(t *testing.T) {
	ResetGlobalForTesting()
	t.Cleanup(ResetGlobalForTesting)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			cfg := Global()
			assert.NotNil(t, cfg)
		}()
	}
	wg.Wait()
}
