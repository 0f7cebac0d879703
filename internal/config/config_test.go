package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Pin every variable so ambient env or a stray .env cannot leak in.
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("ENVIRONMENT", "dev")
	t.Setenv("SAVE_PATH", "tycoon.db")
	t.Setenv("SAVE_SLOT", "default")
	t.Setenv("TICK_INTERVAL_SECONDS", "1")
	t.Setenv("AUTOSAVE_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "dev", cfg.Environment)
	assert.Equal(t, "tycoon.db", cfg.SavePath)
	assert.Equal(t, "default", cfg.SaveSlot)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Equal(t, 30*time.Second, cfg.AutosaveEvery)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("API_KEY", "hunter2")
	t.Setenv("SAVE_SLOT", "hardcore")
	t.Setenv("TICK_INTERVAL_SECONDS", "5")
	t.Setenv("AUTOSAVE_SECONDS", "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, "hunter2", cfg.APIKey)
	assert.Equal(t, "hardcore", cfg.SaveSlot)
	assert.Equal(t, 5*time.Second, cfg.TickInterval)
	assert.Equal(t, 2*time.Minute, cfg.AutosaveEvery)
}

func TestLoadRejectsMalformedPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoadRejectsTickIntervalBelowOne(t *testing.T) {
	t.Setenv("TICK_INTERVAL_SECONDS", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TICK_INTERVAL_SECONDS")
}

func TestLoadRejectsAutosaveBelowOne(t *testing.T) {
	t.Setenv("AUTOSAVE_SECONDS", "-3")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTOSAVE_SECONDS")
}
