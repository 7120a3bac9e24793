// Package ptero wraps the two REST surfaces of a Pterodactyl-compatible
// hosting panel: the Application API for administrative CRUD and the
// Client API for per-instance runtime control.
//
// All responses are modeled as loosely-typed Documents; call sites
// extract the fields they need and absent fields default rather than
// fail. Errors are never swallowed here: every operation surfaces
// transport, decode and API failures unchanged.
package ptero

import (
	"net/http"
	"strings"
)

// Client exposes the panel's Application API (/api/application).
type Client struct {
	t          *transport
	httpClient *http.Client
}

// Option configures a Client or ControlClient.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient sets the underlying HTTP client. The same client can
// be shared between the application and control surfaces; it must be
// safe for concurrent use and is the one process-wide connection
// resource.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

func applyOptions(opts []Option) *options {
	o := &options{
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewClient creates an Application API client for the panel at
// panelURL, authenticated with an application key.
func NewClient(panelURL, apiKey string, opts ...Option) *Client {
	o := applyOptions(opts)
	return &Client{
		t:          newTransport(strings.TrimRight(panelURL, "/")+"/api/application", apiKey, o.httpClient),
		httpClient: o.httpClient,
	}
}

// HTTPClient returns the underlying HTTP client so that the control
// surface can share the same connection pool.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Close releases idle connections. Call once at process shutdown.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
