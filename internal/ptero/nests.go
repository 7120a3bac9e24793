package ptero

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ListNests returns every nest (egg grouping) on the panel.
func (c *Client) ListNests(ctx context.Context) ([]Document, error) {
	return c.t.listAll(ctx, "/nests", nil)
}

// GetNest fetches one nest by id.
func (c *Client) GetNest(ctx context.Context, id int64) (Document, error) {
	return c.t.request(ctx, http.MethodGet, fmt.Sprintf("/nests/%d", id), nil, nil)
}

// ListEggs returns the eggs within one nest.
func (c *Client) ListEggs(ctx context.Context, nestID int64) ([]Document, error) {
	return c.t.listAll(ctx, fmt.Sprintf("/nests/%d/eggs", nestID), nil)
}

// GetEgg fetches one egg with its variables expanded. The variables
// carry the default environment the creation wizard prefills.
func (c *Client) GetEgg(ctx context.Context, nestID, eggID int64) (Document, error) {
	query := url.Values{"include": []string{"variables"}}
	return c.t.request(ctx, http.MethodGet, fmt.Sprintf("/nests/%d/eggs/%d", nestID, eggID), nil, query)
}

// ListAllEggs flattens the eggs of every nest into one slice, in nest
// order. A failure on any nest aborts the whole listing.
func (c *Client) ListAllEggs(ctx context.Context) ([]Document, error) {
	nests, err := c.ListNests(ctx)
	if err != nil {
		return nil, err
	}
	var all []Document
	for _, nest := range nests {
		eggs, err := c.ListEggs(ctx, nest.AttrInt("id"))
		if err != nil {
			return nil, err
		}
		all = append(all, eggs...)
	}
	return all, nil
}
