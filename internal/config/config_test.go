package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "discord-token")
	t.Setenv("RIOT_API_KEY", "riot-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "15s", cfg.PollInterval.String())
	assert.Equal(t, "5m0s", cfg.SaveInterval.String())
	assert.Equal(t, "24h0m0s", cfg.BackupInterval.String())
	assert.Equal(t, "./data/database.json", cfg.DatabasePath)
	assert.Equal(t, "./data/backup-database.json", cfg.BackupPath)
	assert.False(t, cfg.StrictLoad)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_INTERVAL_SECONDS", "60")
	t.Setenv("ROSTER_STRICT_LOAD", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "1m0s", cfg.PollInterval.String())
	assert.True(t, cfg.StrictLoad)
}

func TestLoadMissingCredentials(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")
	t.Setenv("RIOT_API_KEY", "riot-key")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DISCORD_BOT_TOKEN", "discord-token")
	t.Setenv("RIOT_API_KEY", "")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadBadInterval(t *testing.T) {
	setRequired(t)
	t.Setenv("POLL_INTERVAL_SECONDS", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("POLL_INTERVAL_SECONDS", "-5")
	_, err = Load()
	assert.Error(t, err)
}
