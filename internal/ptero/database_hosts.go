package ptero

import (
	"context"
	"fmt"
	"net/http"
)

// ListDatabaseHosts returns every configured database host.
func (c *Client) ListDatabaseHosts(ctx context.Context) ([]Document, error) {
	return c.t.listAll(ctx, "/database-hosts", nil)
}

// GetDatabaseHost fetches one database host by id.
func (c *Client) GetDatabaseHost(ctx context.Context, id int64) (Document, error) {
	return c.t.request(ctx, http.MethodGet, fmt.Sprintf("/database-hosts/%d", id), nil, nil)
}

// CreateDatabaseHost registers a database host.
func (c *Client) CreateDatabaseHost(ctx context.Context, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPost, "/database-hosts", payload, nil)
}

// UpdateDatabaseHost modifies a database host.
func (c *Client) UpdateDatabaseHost(ctx context.Context, id int64, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPatch, fmt.Sprintf("/database-hosts/%d", id), payload, nil)
}

// DeleteDatabaseHost removes a database host.
func (c *Client) DeleteDatabaseHost(ctx context.Context, id int64) error {
	_, err := c.t.request(ctx, http.MethodDelete, fmt.Sprintf("/database-hosts/%d", id), nil, nil)
	return err
}
