// Package lookup implements the two lookup pipelines: item descriptions from
// raw infobox markup, and creature descriptions from structured records.
package lookup

//go:generate mockgen -destination=mock/mock_service.go -package=lookupmock github.com/soloran/tibiabot/internal/orchestrators/lookup Service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/soloran/tibiabot/internal/clients/tibiadata"
	"github.com/soloran/tibiabot/internal/clients/tibiawiki"
	"github.com/soloran/tibiabot/internal/entities"
	"github.com/soloran/tibiabot/internal/errors"
)

// Service defines the interface for lookup operations
type Service interface {
	// LookupItem fetches and formats an item description
	LookupItem(ctx context.Context, input *LookupItemInput) (*LookupItemOutput, error)

	// LookupCreature fetches and formats a creature description
	LookupCreature(ctx context.Context, input *LookupCreatureInput) (*LookupCreatureOutput, error)
}

// Config holds the dependencies for the lookup orchestrator
type Config struct {
	WikiClient     tibiawiki.Client
	CreatureClient tibiadata.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.WikiClient == nil {
		vb.RequiredField("WikiClient")
	}
	if c.CreatureClient == nil {
		vb.RequiredField("CreatureClient")
	}

	return vb.Build()
}

type orchestrator struct {
	wikiClient     tibiawiki.Client
	creatureClient tibiadata.Client
}

// NewOrchestrator creates a new lookup orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		wikiClient:     cfg.WikiClient,
		creatureClient: cfg.CreatureClient,
	}, nil
}

// LookupItem fetches an item's infobox markup and page image, and composes
// the fixed-template description.
func (o *orchestrator) LookupItem(ctx context.Context, input *LookupItemInput) (*LookupItemOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("item name is required")
	}

	// The markup fetch and the image scrape share no dependency; issue
	// them concurrently.
	var wikitext, image string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		wikitext, err = o.wikiClient.GetWikitext(gctx, input.Name)
		return err
	})
	g.Go(func() error {
		var err error
		image, err = o.wikiClient.GetPageImage(gctx, input.Name)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "item lookup failed for %q", input.Name)
	}

	fields := parseInfobox(wikitext)
	title, body := composeItemDescription(input.Name, fields)

	slog.Info("item lookup completed",
		"name", input.Name,
		"fields", len(fields),
		"has_image", image != "",
	)

	return &LookupItemOutput{
		Result: &entities.LookupResult{
			Title:    title,
			Body:     body,
			ImageURL: image,
		},
	}, nil
}

// LookupCreature fetches a creature's structured record and page image, and
// composes the fixed-template description.
func (o *orchestrator) LookupCreature(ctx context.Context, input *LookupCreatureInput) (*LookupCreatureOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("creature name is required")
	}

	var record *tibiadata.CreatureData
	var image string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		record, err = o.creatureClient.GetCreature(gctx, input.Name)
		return err
	})
	g.Go(func() error {
		var err error
		image, err = o.wikiClient.GetPageImage(gctx, input.Name)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "creature lookup failed for %q", input.Name)
	}

	title := record.Name
	if title == "" {
		title = input.Name
	}

	slog.Info("creature lookup completed",
		"name", input.Name,
		"has_image", image != "",
	)

	return &LookupCreatureOutput{
		Result: &entities.LookupResult{
			Title:    title,
			Body:     composeCreatureDescription(record),
			ImageURL: image,
		},
	}, nil
}
