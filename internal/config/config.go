// Package config holds the bot's startup configuration. Values are read from
// the environment exactly once and threaded through explicitly; nothing else
// reads env vars.
package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/soloran/tibiabot/internal/errors"
)

const (
	defaultWikiBaseURL        = "https://tibia.fandom.com"
	defaultCreatureAPIBaseURL = "https://tibiawiki.dev"
	defaultUserAgent          = "tibiabot (github.com/soloran/tibiabot)"
)

// Config contains everything the bot needs to start.
type Config struct {
	// BotToken is the Discord bot token (required)
	BotToken string
	// AppID is the Discord application ID used for command registration (required)
	AppID string
	// GuildID scopes command registration to a single guild; empty registers
	// commands globally
	GuildID string
	// WikiBaseURL is the MediaWiki host serving item pages
	WikiBaseURL string
	// CreatureAPIBaseURL is the host serving structured creature records
	CreatureAPIBaseURL string
	// UserAgent identifies the bot on outbound requests; the wikis serve an
	// alternate representation to anonymous clients
	UserAgent string
}

// Load reads the configuration from the environment. A .env file is loaded
// first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:           os.Getenv("DISCORD_TOKEN"),
		AppID:              os.Getenv("DISCORD_APP_ID"),
		GuildID:            os.Getenv("DISCORD_GUILD_ID"),
		WikiBaseURL:        os.Getenv("WIKI_BASE_URL"),
		CreatureAPIBaseURL: os.Getenv("CREATURE_API_BASE_URL"),
		UserAgent:          os.Getenv("BOT_USER_AGENT"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and sets defaults for the optional ones.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BotToken == "" {
		vb.RequiredField("BotToken")
	}
	if c.AppID == "" {
		vb.RequiredField("AppID")
	}

	if c.WikiBaseURL == "" {
		c.WikiBaseURL = defaultWikiBaseURL
	}
	if c.CreatureAPIBaseURL == "" {
		c.CreatureAPIBaseURL = defaultCreatureAPIBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}

	return vb.Build()
}
