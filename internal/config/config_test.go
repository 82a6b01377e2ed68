package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("APE_KEY", "ape-key")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("TELEGRAM_CHAT_ID", "123456")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ape-key", cfg.ApeKey)
	assert.Equal(t, int64(123456), cfg.TelegramChatID)
	assert.Equal(t, "streak-history.json", cfg.HistoryFile)
	assert.Equal(t, "migrations", cfg.MigrationsDir)
	assert.False(t, cfg.StrictExit)
}

func TestLoad_MissingCredential(t *testing.T) {
	// t.Setenv registers the restore, Unsetenv makes the variable truly
	// absent for the duration of the test.
	t.Setenv("APE_KEY", "ape-key")
	os.Unsetenv("APE_KEY")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("TELEGRAM_CHAT_ID", "123456")

	_, err := Load()

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestValidateOverride(t *testing.T) {
	for _, override := range []string{
		"", "current", "morning", "midday", "afternoon", "evening", "warning", "weekly", "generic",
	} {
		assert.NoError(t, validateOverride(override), "override %q", override)
	}

	err := validateOverride("midnight")
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}
