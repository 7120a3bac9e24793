package ptero

import (
	"context"
	"fmt"
	"net/http"
)

// ListMounts returns every configured mount.
func (c *Client) ListMounts(ctx context.Context) ([]Document, error) {
	return c.t.listAll(ctx, "/mounts", nil)
}

// GetMount fetches one mount by id.
func (c *Client) GetMount(ctx context.Context, id int64) (Document, error) {
	return c.t.request(ctx, http.MethodGet, fmt.Sprintf("/mounts/%d", id), nil, nil)
}

// CreateMount creates a mount.
func (c *Client) CreateMount(ctx context.Context, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPost, "/mounts", payload, nil)
}

// UpdateMount modifies a mount. The panel expects PUT here, unlike the
// PATCH used by every other resource.
func (c *Client) UpdateMount(ctx context.Context, id int64, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPut, fmt.Sprintf("/mounts/%d", id), payload, nil)
}

// DeleteMount removes a mount.
func (c *Client) DeleteMount(ctx context.Context, id int64) error {
	_, err := c.t.request(ctx, http.MethodDelete, fmt.Sprintf("/mounts/%d", id), nil, nil)
	return err
}
