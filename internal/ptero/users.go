package ptero

import (
	"context"
	"fmt"
	"net/http"
)

// ListUsers returns every panel user.
func (c *Client) ListUsers(ctx context.Context) ([]Document, error) {
	return c.t.listAll(ctx, "/users", nil)
}

// GetUser fetches one user by id.
func (c *Client) GetUser(ctx context.Context, id int64) (Document, error) {
	return c.t.request(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil)
}

// CreateUser creates a panel user.
func (c *Client) CreateUser(ctx context.Context, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPost, "/users", payload, nil)
}

// UpdateUser modifies a panel user.
func (c *Client) UpdateUser(ctx context.Context, id int64, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), payload, nil)
}

// DeleteUser removes a panel user.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	_, err := c.t.request(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
	return err
}
