// Package api implements the Gemini generateContent REST client.
package api

import (
	"net/http"
	"time"

	apierrors "github.com/diogo/geminirepl/internal/errors"
	"github.com/diogo/geminirepl/internal/models"
)

// DefaultTimeout bounds a single generateContent call
const DefaultTimeout = 2 * time.Minute

// Client is a chat client for the Gemini REST API. One Send call maps to
// one synchronous HTTP request; the client holds no conversational state
// of its own.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithModel sets the model used for generation
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = models.ModelFromName(model)
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithBaseURL overrides the API host (used in tests)
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// NewClient creates a new Client. The credential is passed explicitly;
// the client never reads the environment itself.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	client := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		apiKey:     apiKey,
		model:      models.DefaultModel,
		baseURL:    models.DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Model returns the model the client generates with
func (c *Client) Model() string {
	return c.model
}
