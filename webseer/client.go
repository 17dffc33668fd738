package webseer

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production API origin.
	DefaultBaseURL = "https://api.webseer.ai"

	// DefaultTimeout bounds a single request attempt.
	DefaultTimeout = 120 * time.Second

	defaultUserAgent = "webseer-go/1.0 (+github.com/webseer/webseer-go)"
)

// Client is a Webseer API client. All fields are fixed at construction, so a
// single Client is safe for any number of concurrent calls.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new Webseer client. The API key must be non-empty after
// trimming; otherwise construction fails with an authentication APIError and
// no client is returned.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	options := defaultOptions()
	for _, o := range opts {
		o(&options)
	}

	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, &APIError{Kind: KindAuthentication, StatusCode: http.StatusUnauthorized}
	}

	httpClient := options.httpClient
	if httpClient == nil {
		// No client-level timeout; the per-request deadline in do() is the
		// single cancellation mechanism.
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		apiKey:     apiKey,
		timeout:    options.timeout,
		userAgent:  options.userAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Fetch retrieves the page at url and runs prompt against its content,
// returning the AI-written result.
func (c *Client) Fetch(ctx context.Context, url, prompt string) (string, error) {
	c.logger.Debug().Str("url", url).Msg("Fetching page")

	raw, err := c.do(ctx, "/v1/fetch", fetchRequest{URL: url, Prompt: prompt})
	if err != nil {
		return "", err
	}
	return decodeResult(raw)
}

// Search runs query against the web and returns an AI-written answer grounded
// in current results. A nil opts applies no domain filters.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) (string, error) {
	req := searchRequest{Query: query}
	if opts != nil {
		req.AllowedDomains = opts.AllowedDomains
		req.BlockedDomains = opts.BlockedDomains
	}

	c.logger.Debug().Str("query", query).Msg("Searching")

	raw, err := c.do(ctx, "/v1/search", req)
	if err != nil {
		return "", err
	}
	return decodeResult(raw)
}

// RawFetch is Fetch with an output-format selector and a safeguard toggle,
// both passed through verbatim when set.
func (c *Client) RawFetch(ctx context.Context, url, prompt string, opts *RawOptions) (string, error) {
	req := rawFetchRequest{URL: url, Prompt: prompt}
	if opts != nil {
		req.Format = string(opts.Format)
		req.UseSafeguard = opts.UseSafeguard
	}

	c.logger.Debug().Str("url", url).Str("format", req.Format).Msg("Fetching page (raw)")

	raw, err := c.do(ctx, "/v1/raw_fetch", req)
	if err != nil {
		return "", err
	}
	return decodeResult(raw)
}

// RawSearch is Search with an output-format selector and a safeguard toggle.
func (c *Client) RawSearch(ctx context.Context, query string, opts *RawSearchOptions) (string, error) {
	req := rawSearchRequest{Query: query}
	if opts != nil {
		req.AllowedDomains = opts.AllowedDomains
		req.BlockedDomains = opts.BlockedDomains
		req.Format = string(opts.Format)
		req.UseSafeguard = opts.UseSafeguard
	}

	c.logger.Debug().Str("query", query).Str("format", req.Format).Msg("Searching (raw)")

	raw, err := c.do(ctx, "/v1/raw_search", req)
	if err != nil {
		return "", err
	}
	return decodeResult(raw)
}

// Extract retrieves the page at url and returns its content in the selected
// format without prompt-driven analysis.
func (c *Client) Extract(ctx context.Context, url string, opts *ExtractOptions) (string, error) {
	req := extractRequest{URL: url}
	if opts != nil {
		req.Format = string(opts.Format)
		req.UseSafeguard = opts.UseSafeguard
	}

	c.logger.Debug().Str("url", url).Str("format", req.Format).Msg("Extracting page content")

	raw, err := c.do(ctx, "/v1/extract", req)
	if err != nil {
		return "", err
	}
	return decodeResult(raw)
}
