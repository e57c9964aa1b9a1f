package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"

	"github.com/soloran/tibiabot/internal/clients/tibiadata"
	"github.com/soloran/tibiabot/internal/clients/tibiawiki"
	"github.com/soloran/tibiabot/internal/config"
	"github.com/soloran/tibiabot/internal/handlers/discord"
	"github.com/soloran/tibiabot/internal/orchestrators/lookup"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the bot",
	Long:  `Connect to the Discord gateway, register the slash commands, and serve lookups until interrupted.`,
	RunE:  runBot,
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	wikiClient, err := tibiawiki.New(&tibiawiki.Config{
		BaseURL:   cfg.WikiBaseURL,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return fmt.Errorf("failed to create wiki client: %w", err)
	}

	creatureClient, err := tibiadata.New(&tibiadata.Config{
		BaseURL:   cfg.CreatureAPIBaseURL,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return fmt.Errorf("failed to create creature client: %w", err)
	}

	lookupService, err := lookup.NewOrchestrator(&lookup.Config{
		WikiClient:     wikiClient,
		CreatureClient: creatureClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create lookup orchestrator: %w", err)
	}

	handler, err := discord.NewHandler(&discord.Config{
		LookupService: lookupService,
	})
	if err != nil {
		return fmt.Errorf("failed to create discord handler: %w", err)
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	session.AddHandler(handler.HandleInteraction)

	if err := session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			slog.Error("failed to close discord session", "error", err)
		}
	}()

	// Overwrite the command set on every start so removed commands disappear.
	// An empty GuildID registers globally.
	registered, err := session.ApplicationCommandBulkOverwrite(cfg.AppID, cfg.GuildID, handler.Commands())
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	names := make([]string, len(registered))
	for i, c := range registered {
		names[i] = c.Name
	}
	slog.Info("bot is running",
		"user", session.State.User.Username,
		"commands", names,
		"guild_scoped", cfg.GuildID != "",
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("received shutdown signal, closing session")
	return nil
}
