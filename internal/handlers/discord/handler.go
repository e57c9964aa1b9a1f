// Package discord adapts the lookup service to Discord slash commands.
package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/soloran/tibiabot/internal/entities"
	"github.com/soloran/tibiabot/internal/errors"
	"github.com/soloran/tibiabot/internal/orchestrators/lookup"
)

const (
	commandItem     = "item"
	commandCreature = "creature"

	// Fixed user-facing failure texts. Internal error detail is logged,
	// never shown in chat.
	itemFailureMessage     = "Unable to find information for that item."
	creatureFailureMessage = "Unable to find information for that creature."
)

// Config holds the dependencies for the Discord handler
type Config struct {
	LookupService lookup.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.LookupService == nil {
		vb.RequiredField("LookupService")
	}

	return vb.Build()
}

// Handler routes slash-command interactions to the lookup service.
type Handler struct {
	lookupService lookup.Service
}

// NewHandler creates a new Discord handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		lookupService: cfg.LookupService,
	}, nil
}

// Commands returns the application commands the bot registers on startup.
func (h *Handler) Commands() []*discordgo.ApplicationCommand {
	nameOption := func(thing string) []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "The name of the " + thing + " to look up",
				Required:    true,
			},
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandItem,
			Description: "Look up a Tibia item",
			Options:     nameOption("item"),
		},
		{
			Name:        commandCreature,
			Description: "Look up a Tibia creature",
			Options:     nameOption("creature"),
		},
	}
}

// HandleInteraction is the discordgo interaction handler. It acknowledges
// the command immediately to stay inside the interaction deadline, then
// edits the response with the lookup result.
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	if data.Name != commandItem && data.Name != commandCreature {
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("failed to defer interaction response", "command", data.Name, "error", err)
		return
	}

	name := stringOption(data, "name")

	var edit *discordgo.WebhookEdit
	switch data.Name {
	case commandItem:
		edit = h.itemReply(context.Background(), name)
	case commandCreature:
		edit = h.creatureReply(context.Background(), name)
	}

	if _, err := s.InteractionResponseEdit(i.Interaction, edit); err != nil {
		slog.Error("failed to edit interaction response", "command", data.Name, "name", name, "error", err)
	}
}

// itemReply runs the item pipeline and renders either the result embed or
// the fixed failure message.
func (h *Handler) itemReply(ctx context.Context, name string) *discordgo.WebhookEdit {
	output, err := h.lookupService.LookupItem(ctx, &lookup.LookupItemInput{Name: name})
	if err != nil {
		slog.Error("item lookup failed", "name", name, "code", errors.GetCode(err), "error", err)
		return contentEdit(itemFailureMessage)
	}
	return embedEdit(output.Result)
}

// creatureReply runs the creature pipeline and renders either the result
// embed or the fixed failure message.
func (h *Handler) creatureReply(ctx context.Context, name string) *discordgo.WebhookEdit {
	output, err := h.lookupService.LookupCreature(ctx, &lookup.LookupCreatureInput{Name: name})
	if err != nil {
		slog.Error("creature lookup failed", "name", name, "code", errors.GetCode(err), "error", err)
		return contentEdit(creatureFailureMessage)
	}
	return embedEdit(output.Result)
}

// resultEmbed renders a lookup result as an embed. The thumbnail is omitted
// when the page had no preview image.
func resultEmbed(result *entities.LookupResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       result.Title,
		Description: result.Body,
	}
	if result.ImageURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: result.ImageURL}
	}
	return embed
}

func embedEdit(result *entities.LookupResult) *discordgo.WebhookEdit {
	embeds := []*discordgo.MessageEmbed{resultEmbed(result)}
	return &discordgo.WebhookEdit{Embeds: &embeds}
}

func contentEdit(message string) *discordgo.WebhookEdit {
	return &discordgo.WebhookEdit{Content: &message}
}

func stringOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, option := range data.Options {
		if option.Name == name {
			return option.StringValue()
		}
	}
	return ""
}
