package ptero

import (
	"context"
	"fmt"
	"net/http"
)

// ListRoles returns every admin role.
func (c *Client) ListRoles(ctx context.Context) ([]Document, error) {
	return c.t.listAll(ctx, "/roles", nil)
}

// GetRole fetches one role by id.
func (c *Client) GetRole(ctx context.Context, id int64) (Document, error) {
	return c.t.request(ctx, http.MethodGet, fmt.Sprintf("/roles/%d", id), nil, nil)
}

// CreateRole creates an admin role.
func (c *Client) CreateRole(ctx context.Context, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPost, "/roles", payload, nil)
}

// UpdateRole modifies an admin role.
func (c *Client) UpdateRole(ctx context.Context, id int64, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPatch, fmt.Sprintf("/roles/%d", id), payload, nil)
}

// DeleteRole removes an admin role.
func (c *Client) DeleteRole(ctx context.Context, id int64) error {
	_, err := c.t.request(ctx, http.MethodDelete, fmt.Sprintf("/roles/%d", id), nil, nil)
	return err
}
