package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soloran/tibiabot/internal/config"
	"github.com/soloran/tibiabot/internal/errors"
)

func TestLoad(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_APP_ID", "app-456")
	t.Setenv("DISCORD_GUILD_ID", "")
	t.Setenv("WIKI_BASE_URL", "")
	t.Setenv("CREATURE_API_BASE_URL", "")
	t.Setenv("BOT_USER_AGENT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.BotToken)
	assert.Equal(t, "app-456", cfg.AppID)
	assert.Empty(t, cfg.GuildID)
	assert.Equal(t, "https://tibia.fandom.com", cfg.WikiBaseURL)
	assert.Equal(t, "https://tibiawiki.dev", cfg.CreatureAPIBaseURL)
	assert.NotEmpty(t, cfg.UserAgent)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("DISCORD_APP_ID", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "BotToken")
	assert.Contains(t, err.Error(), "AppID")
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := &config.Config{
		BotToken:           "t",
		AppID:              "a",
		WikiBaseURL:        "http://wiki.local",
		CreatureAPIBaseURL: "http://creatures.local",
		UserAgent:          "custom-agent",
	}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://wiki.local", cfg.WikiBaseURL)
	assert.Equal(t, "http://creatures.local", cfg.CreatureAPIBaseURL)
	assert.Equal(t, "custom-agent", cfg.UserAgent)
}
