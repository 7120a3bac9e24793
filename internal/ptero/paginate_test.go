package ptero

import (
	"context"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedUsers builds a handler serving totalItems users split into pages
// of pageSize, recording how many requests were made.
func pagedUsers(t *testing.T, totalItems int, requests *int) http.HandlerFunc {
	t.Helper()
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return func(w http.ResponseWriter, r *http.Request) {
		*requests++
		assert.Equal(t, strconv.Itoa(pageSize), r.URL.Query().Get("per_page"))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)

		start := (page - 1) * pageSize
		end := start + pageSize
		if end > totalItems {
			end = totalItems
		}
		items := make([]map[string]any, 0, end-start)
		for i := start; i < end; i++ {
			items = append(items, envelope(map[string]any{"id": i + 1}))
		}
		jsonResponse(w, http.StatusOK, listEnvelope(items, page, totalPages))
	}
}

func TestListAllTermination(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		wantPages  int
	}{
		{"empty", 0, 1},
		{"one partial page", 37, 1},
		{"exact page boundary", 200, 2},
		{"three pages", 250, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := newTestPanel()
			defer panel.close()

			var requests int
			panel.handleFunc("/api/application/users", pagedUsers(t, tt.totalItems, &requests))

			users, err := panel.client().ListUsers(context.Background())
			require.NoError(t, err)
			assert.Len(t, users, tt.totalItems)
			assert.Equal(t, tt.wantPages, requests)

			// Server order is preserved.
			for i, u := range users {
				assert.Equal(t, int64(i+1), u.AttrInt("id"))
			}
		})
	}
}

func TestListAllMissingPaginationIsSinglePage(t *testing.T) {
	panel := newTestPanel()
	defer panel.close()

	var requests int
	panel.handleFunc("/api/application/nests", func(w http.ResponseWriter, _ *http.Request) {
		requests++
		jsonResponse(w, http.StatusOK, map[string]any{
			"data": []map[string]any{
				envelope(map[string]any{"id": 1, "name": "Minecraft"}),
			},
		})
	})

	nests, err := panel.client().ListNests(context.Background())
	require.NoError(t, err)
	assert.Len(t, nests, 1)
	assert.Equal(t, 1, requests)
}

func TestListAllAbortsOnPageError(t *testing.T) {
	panel := newTestPanel()
	defer panel.close()

	panel.handleFunc("/api/application/servers", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		if page == "2" {
			jsonResponse(w, http.StatusInternalServerError, map[string]any{
				"errors": []map[string]any{{"detail": "database exploded"}},
			})
			return
		}
		items := []map[string]any{envelope(map[string]any{"id": 1})}
		jsonResponse(w, http.StatusOK, listEnvelope(items, 1, 3))
	})

	servers, err := panel.client().ListServers(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "database exploded", apiErr.Message)
	// Partial results are discarded, not returned.
	assert.Nil(t, servers)
}

func TestListAllMergesExtraParams(t *testing.T) {
	panel := newTestPanel()
	defer panel.close()

	panel.handleFunc("/api/application/servers/7/databases", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		jsonResponse(w, http.StatusOK, listEnvelope(nil, 1, 1))
	})

	_, err := panel.client().ListServerDatabases(context.Background(), 7)
	require.NoError(t, err)
}
