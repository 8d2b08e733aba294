// Package deepgram is a Go client for the Deepgram speech API.
//
// Construct a Client with New, then use the live, prerecorded, and manage
// packages for streaming transcription, batch transcription, and project
// management.
package deepgram

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
)

const DefaultBaseURL = "https://api.deepgram.com"

// Client holds credentials and shared plumbing for all API surfaces.
type Client struct {
	apiKey     string
	baseURL    *url.URL
	httpClient *http.Client
	logger     *log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host, e.g. an
// on-prem deployment or a test server. Accepts http, https, ws, or
// wss schemes.
func WithBaseURL(rawURL string) Option {
	return func(c *Client) {
		u, err := url.Parse(rawURL)
		if err == nil {
			c.baseURL = u
		}
	}
}

// WithHTTPClient replaces the default http.Client used for REST calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

func New(apiKey string, opts ...Option) *Client {
	base, _ := url.Parse(DefaultBaseURL)
	c := &Client{
		apiKey:     apiKey,
		baseURL:    base,
		httpClient: &http.Client{},
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIKey returns the configured credential.
func (c *Client) APIKey() string {
	return c.apiKey
}

// Logger returns the client's logger.
func (c *Client) Logger() *log.Logger {
	return c.logger
}

// HTTPClient returns the underlying http.Client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// RestURL builds an https (or http, for custom hosts) URL for the given
// API path and query values.
func (c *Client) RestURL(path string, query url.Values) *url.URL {
	u := *c.baseURL
	switch u.Scheme {
	case "ws":
		u.Scheme = "http"
	case "wss":
		u.Scheme = "https"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return &u
}

// StreamURL builds the websocket URL for the given API path and query
// values, translating http(s) base URLs to ws(s).
func (c *Client) StreamURL(path string, query url.Values) *url.URL {
	u := *c.baseURL
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return &u
}

// String implements fmt.Stringer without leaking the API key.
func (c *Client) String() string {
	return "deepgram.Client{" + c.baseURL.String() + "}"
}
