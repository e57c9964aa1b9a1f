// Package tibiadata is the client for the structured creature-data API.
package tibiadata

//go:generate mockgen -destination=mock/mock_client.go -package=tibiadatamock github.com/soloran/tibiabot/internal/clients/tibiadata Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/soloran/tibiabot/internal/errors"
)

// Client defines the interface for creature-data API interactions
type Client interface {
	// GetCreature fetches the structured record for a creature. A missing
	// record, or a record without a hit-point value, is NotFound.
	GetCreature(ctx context.Context, name string) (*CreatureData, error)
}

// Doer is the subset of http.Client the client depends on
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config contains configuration options for the creature-data client.
type Config struct {
	// HTTPClient used for outbound requests (optional, defaults to a plain http.Client)
	HTTPClient Doer
	// BaseURL of the creature-data API (optional, defaults to https://tibiawiki.dev)
	BaseURL string
	// UserAgent sent on every request (required)
	UserAgent string
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.UserAgent == "" {
		vb.RequiredField("UserAgent")
	}

	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://tibiawiki.dev"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return vb.Build()
}

// New creates a new creature-data client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &client{
		httpClient: cfg.HTTPClient,
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}, nil
}

type client struct {
	httpClient Doer
	baseURL    string
	userAgent  string
}

// apiName converts a lookup name to the API's path form: spaces become %20,
// then the whole name is lowercased.
func apiName(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "%20"))
}

func (c *client) GetCreature(ctx context.Context, name string) (*CreatureData, error) {
	endpoint := fmt.Sprintf("%s/api/creatures/%s", c.baseURL, apiName(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", endpoint)
	}
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "creature API request failed for %q", name)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("creature API returned status %d for %q", res.StatusCode, name)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read creature API response for %q", name)
	}

	// The API answers unknown names with a non-object payload; treat that
	// the same as a missing record.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.NotFoundf("no creature record for %q", name)
	}

	var record CreatureData
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to decode creature record for %q", name)
	}

	if record.HP == "" {
		return nil, errors.NotFoundf("creature record for %q has no hit points", name)
	}
	return &record, nil
}
