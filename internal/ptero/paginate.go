package ptero

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// pageSize is the per_page value requested from listing endpoints.
const pageSize = 100

// listAll drives a page-numbered collection endpoint until the server
// reports the last page, returning every envelope in server order.
// Extra query values are merged into each request; page and per_page
// are always injected. A failure on any page aborts the whole listing
// and discards partial results.
func (t *transport) listAll(ctx context.Context, path string, extra url.Values) ([]Document, error) {
	var results []Document

	for page := 1; ; page++ {
		query := url.Values{}
		for key, vals := range extra {
			query[key] = vals
		}
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(pageSize))

		doc, err := t.request(ctx, http.MethodGet, path, nil, query)
		if err != nil {
			return nil, err
		}

		results = append(results, doc.Array("data")...)

		// A missing pagination block means a single page.
		current := doc.Get("meta.pagination.current_page").Int()
		total := doc.Get("meta.pagination.total_pages").Int()
		if current == 0 {
			current = 1
		}
		if total == 0 {
			total = 1
		}
		if current >= total {
			return results, nil
		}
	}
}
