package ptero

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// CredentialMode selects how the control surface authenticates.
type CredentialMode int

const (
	// ModeOwner uses a per-account client key; the key's owner must
	// have access to the target server.
	ModeOwner CredentialMode = iota
	// ModeAdmin uses the application key with an ownership-bypass
	// flag, letting the operator act on any server on the panel.
	ModeAdmin
)

func (m CredentialMode) String() string {
	if m == ModeAdmin {
		return "admin"
	}
	return "owner"
}

// PowerSignal is a live power action accepted by the control API.
type PowerSignal string

const (
	PowerStart   PowerSignal = "start"
	PowerStop    PowerSignal = "stop"
	PowerRestart PowerSignal = "restart"
	PowerKill    PowerSignal = "kill"
)

// ControlClient exposes the panel's Client API (/api/client) for live
// stats, power control and reinstalls. One component serves both
// deployment modes; the mode only changes the credential and a query
// flag, never the paths.
type ControlClient struct {
	t    *transport
	mode CredentialMode
}

// NewControlClient creates a control client for the panel at panelURL.
// Pass the client key for ModeOwner or the application key for
// ModeAdmin. Share the HTTP client with the application surface via
// WithHTTPClient.
func NewControlClient(panelURL string, mode CredentialMode, key string, opts ...Option) *ControlClient {
	o := applyOptions(opts)
	return &ControlClient{
		t:    newTransport(strings.TrimRight(panelURL, "/")+"/api/client", key, o.httpClient),
		mode: mode,
	}
}

// Mode returns the configured credential mode.
func (c *ControlClient) Mode() CredentialMode {
	return c.mode
}

func (c *ControlClient) query() url.Values {
	if c.mode != ModeAdmin {
		return nil
	}
	return url.Values{"bypass_ownership": []string{"true"}}
}

// Resources returns the live state and usage counters of a server.
func (c *ControlClient) Resources(ctx context.Context, identifier string) (Document, error) {
	return c.t.request(ctx, http.MethodGet, fmt.Sprintf("/servers/%s/resources", identifier), nil, c.query())
}

// Power sends a power signal to a server.
func (c *ControlClient) Power(ctx context.Context, identifier string, signal PowerSignal) error {
	payload := map[string]any{"signal": string(signal)}
	_, err := c.t.request(ctx, http.MethodPost, fmt.Sprintf("/servers/%s/power", identifier), payload, c.query())
	return err
}

// Reinstall wipes a server's files and reruns its install script.
func (c *ControlClient) Reinstall(ctx context.Context, identifier string) error {
	_, err := c.t.request(ctx, http.MethodPost, fmt.Sprintf("/servers/%s/reinstall", identifier), nil, c.query())
	return err
}

// Identifier resolves the short identifier the control API addresses a
// server by. Prefers the explicit identifier attribute and falls back
// to the first 8 characters of the UUID.
func Identifier(server Document) string {
	if id := server.AttrStr("identifier"); id != "" {
		return id
	}
	uuid := server.AttrStr("uuid")
	if len(uuid) > 8 {
		return uuid[:8]
	}
	return uuid
}
