// Package tibiawiki is the client for the TibiaWiki MediaWiki API and its
// rendered pages.
package tibiawiki

//go:generate mockgen -destination=mock/mock_client.go -package=tibiawikimock github.com/soloran/tibiabot/internal/clients/tibiawiki Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/soloran/tibiabot/internal/errors"
)

// ogImagePattern matches the first og:image meta tag in a rendered page.
// This is deliberately a narrow scrape, not an HTML parser; if the wiki
// changes its markup the image silently degrades to "no thumbnail".
var ogImagePattern = regexp.MustCompile(`<meta property="og:image" content="([^"]+)"`)

// Client defines the interface for TibiaWiki interactions
type Client interface {
	// GetWikitext fetches the raw template markup for a page
	GetWikitext(ctx context.Context, page string) (string, error)

	// GetPageImage fetches the rendered page and returns its og:image URL,
	// or empty when the page has no preview image
	GetPageImage(ctx context.Context, page string) (string, error)
}

// Doer is the subset of http.Client the client depends on
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config contains configuration options for the wiki client.
type Config struct {
	// HTTPClient used for outbound requests (optional, defaults to a plain http.Client)
	HTTPClient Doer
	// BaseURL of the wiki (optional, defaults to https://tibia.fandom.com)
	BaseURL string
	// UserAgent sent on every request; the wiki serves an alternate
	// representation without one (required)
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
		cfg.BaseURL = "https://tibia.fandom.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return vb.Build()
}

// New creates a new wiki client with the given configuration.
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

// PageTitle converts a lookup name to a wiki page title. Spaces become
// underscores; case is preserved.
func PageTitle(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// parseResponse is the shape of an action=parse API response with
// formatversion=2.
type parseResponse struct {
	Parse struct {
		Title    string `json:"title"`
		Wikitext string `json:"wikitext"`
	} `json:"parse"`
}

func (c *client) GetWikitext(ctx context.Context, page string) (string, error) {
	endpoint := fmt.Sprintf(
		"%s/api.php?action=parse&page=%s&prop=wikitext&format=json&formatversion=2",
		c.baseURL, url.QueryEscape(PageTitle(page)),
	)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}

	var parsed parseResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to decode parse response for page %q", page)
	}

	if parsed.Parse.Wikitext == "" {
		return "", errors.NotFoundf("no wikitext for page %q", page)
	}
	return parsed.Parse.Wikitext, nil
}

func (c *client) GetPageImage(ctx context.Context, page string) (string, error) {
	endpoint := fmt.Sprintf("%s/wiki/%s", c.baseURL, url.PathEscape(PageTitle(page)))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}

	matches := ogImagePattern.FindSubmatch(body)
	if matches == nil {
		// A page without a preview image is not an error
		return "", nil
	}
	return string(matches[1]), nil
}

func (c *client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", endpoint)
	}
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "wiki request failed for %s", endpoint)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("wiki returned status %d for %s", res.StatusCode, endpoint)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read wiki response for %s", endpoint)
	}
	return body, nil
}
