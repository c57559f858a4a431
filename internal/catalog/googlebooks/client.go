// Package googlebooks provides book catalog search via the Google Books API.
//
// The adapter absorbs every failure mode of the upstream service: transport
// errors, bad status codes and malformed payloads all surface to callers as
// an empty result list with a diagnostic log, never as an error value.
// "No results" and "search failed" are deliberately indistinguishable here.
package googlebooks

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/readerly/readerly-server/internal/ratelimit"
)

// Client provides access to the Google Books volumes API.
type Client struct {
	baseURL    string
	maxResults int
	httpClient *http.Client
	limiter    *ratelimit.KeyedLimiter
	logger     *slog.Logger
}

// Options configures the catalog client.
type Options struct {
	BaseURL    string        // API root, e.g. https://www.googleapis.com/books/v1
	MaxResults int           // Result-count cap per search
	Timeout    time.Duration // Per-request timeout
	Logger     *slog.Logger
}

// NewClient creates a new Google Books client.
// Rate limited to stay well inside the API's unauthenticated quota.
func NewClient(opts Options) *Client {
	if opts.MaxResults <= 0 {
		opts.MaxResults = 10
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Client{
		baseURL:    opts.BaseURL,
		maxResults: opts.MaxResults,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		// 1 request per second with a small burst covers interactive
		// search. Buckets are keyed by API root, one per upstream.
		limiter: ratelimit.New(1, 5),
		logger:  opts.Logger,
	}
}
