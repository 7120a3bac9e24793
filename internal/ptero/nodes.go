package ptero

import (
	"context"
	"fmt"
	"net/http"
)

// ListNodes returns every node registered on the panel.
func (c *Client) ListNodes(ctx context.Context) ([]Document, error) {
	return c.t.listAll(ctx, "/nodes", nil)
}

// GetNode fetches one node by id.
func (c *Client) GetNode(ctx context.Context, id int64) (Document, error) {
	return c.t.request(ctx, http.MethodGet, fmt.Sprintf("/nodes/%d", id), nil, nil)
}

// CreateNode registers a new node.
func (c *Client) CreateNode(ctx context.Context, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPost, "/nodes", payload, nil)
}

// UpdateNode modifies a node.
func (c *Client) UpdateNode(ctx context.Context, id int64, payload map[string]any) (Document, error) {
	return c.t.request(ctx, http.MethodPatch, fmt.Sprintf("/nodes/%d", id), payload, nil)
}

// DeleteNode removes a node. The panel rejects the call while servers
// are still assigned to it.
func (c *Client) DeleteNode(ctx context.Context, id int64) error {
	_, err := c.t.request(ctx, http.MethodDelete, fmt.Sprintf("/nodes/%d", id), nil, nil)
	return err
}

// ListAllocations returns every allocation on a node, assigned or not.
func (c *Client) ListAllocations(ctx context.Context, nodeID int64) ([]Document, error) {
	return c.t.listAll(ctx, fmt.Sprintf("/nodes/%d/allocations", nodeID), nil)
}

// CreateAllocations adds a batch of ports on one IP to a node.
func (c *Client) CreateAllocations(ctx context.Context, nodeID int64, ip string, ports []string) error {
	payload := map[string]any{"ip": ip, "ports": ports}
	_, err := c.t.request(ctx, http.MethodPost, fmt.Sprintf("/nodes/%d/allocations", nodeID), payload, nil)
	return err
}

// DeleteAllocation removes one unassigned allocation from a node.
func (c *Client) DeleteAllocation(ctx context.Context, nodeID, allocationID int64) error {
	_, err := c.t.request(ctx, http.MethodDelete, fmt.Sprintf("/nodes/%d/allocations/%d", nodeID, allocationID), nil, nil)
	return err
}
