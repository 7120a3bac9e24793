package ptero

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// serverInclude expands the related sub-objects callers of GetServer
// depend on.
const serverInclude = "allocations,user,egg,nest,variables,location,node,databases"

// ListServers returns every server on the panel.
func (c *Client) ListServers(ctx context.Context) ([]Document, error) {
	return c.t.listAll(ctx, "/servers", nil)
}

// GetServer fetches one server with its relationships expanded.
func (c *Client) GetServer(ctx context.Context, id int64) (Document, error) {
	query := url.Values{"include": []string{serverInclude}}
	return c.t.request(ctx, http.MethodGet, fmt.Sprintf("/servers/%d", id), nil, query)
}

// CreateServer provisions a new server from a creation payload.
func (c *Client) CreateServer(ctx context.Context, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPost, "/servers", payload, nil)
}

// UpdateServerDetails changes name, owner, description and external id.
func (c *Client) UpdateServerDetails(ctx context.Context, id int64, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPatch, fmt.Sprintf("/servers/%d/details", id), payload, nil)
}

// UpdateServerBuild changes resource limits and the default allocation.
func (c *Client) UpdateServerBuild(ctx context.Context, id int64, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPatch, fmt.Sprintf("/servers/%d/build", id), payload, nil)
}

// UpdateServerStartup changes the startup command, egg, image and
// environment.
func (c *Client) UpdateServerStartup(ctx context.Context, id int64, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPatch, fmt.Sprintf("/servers/%d/startup", id), payload, nil)
}

// SuspendServer blocks the server from being started.
func (c *Client) SuspendServer(ctx context.Context, id int64) error {
	_, err := c.t.request(ctx, http.MethodPost, fmt.Sprintf("/servers/%d/suspend", id), nil, nil)
	return err
}

// UnsuspendServer lifts a suspension.
func (c *Client) UnsuspendServer(ctx context.Context, id int64) error {
	_, err := c.t.request(ctx, http.MethodPost, fmt.Sprintf("/servers/%d/unsuspend", id), nil, nil)
	return err
}

// DeleteServer removes a server. With force set the panel skips the
// graceful teardown and removes the record even if the daemon cannot
// be reached.
func (c *Client) DeleteServer(ctx context.Context, id int64, force bool) error {
	path := fmt.Sprintf("/servers/%d", id)
	if force {
		path = fmt.Sprintf("/servers/%d/force", id)
	}
	_, err := c.t.request(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// ListServerDatabases returns the databases provisioned for a server.
func (c *Client) ListServerDatabases(ctx context.Context, serverID int64) ([]Document, error) {
	return c.t.listAll(ctx, fmt.Sprintf("/servers/%d/databases", serverID), nil)
}
