// Package recommend provides AI book recommendations via a generative
// text service constrained to a fixed output schema.
//
// Like the catalog adapter, this boundary absorbs its service's failure
// modes: a missing credential or a failed call degrades to an empty
// recommendation list with an explanatory rationale string, never an error.
package recommend

import (
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client talks to the generative text service.
type Client struct {
	api    *openai.Client
	model  string
	logger *slog.Logger
}

// Options configures the recommendation client.
type Options struct {
	// APIKey authorizes the service. Empty is allowed; the client then
	// reports itself unavailable and never attempts a call.
	APIKey string
	// BaseURL overrides the service endpoint. Used by tests.
	BaseURL string
	Model   string
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewClient creates a recommendation client.
// The credential is taken from Options once at construction time.
func NewClient(opts Options) *Client {
	if opts.Model == "" {
		opts.Model = openai.GPT4oMini
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Client{
		model:  opts.Model,
		logger: opts.Logger,
	}

	if opts.APIKey == "" {
		opts.Logger.Warn("Recommendation API key not configured, feature disabled")
		return c
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: opts.Timeout}
	c.api = openai.NewClientWithConfig(cfg)

	return c
}

// Available reports whether the service credential is configured.
// Callers should check this before invoking rather than relying on the
// degraded result after the fact.
func (c *Client) Available() bool {
	return c.api != nil
}
