package ptero

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
)

// testPanel is an httptest-backed mock of the panel API used across
// the package tests.
type testPanel struct {
	server *httptest.Server
	mux    *http.ServeMux
}

func newTestPanel() *testPanel {
	mux := http.NewServeMux()
	return &testPanel{
		server: httptest.NewServer(mux),
		mux:    mux,
	}
}

func (p *testPanel) close() {
	p.server.Close()
}

// client returns an application client pointed at the mock panel.
func (p *testPanel) client() *Client {
	return NewClient(p.server.URL, "test-key")
}

// controlClient returns a control client pointed at the mock panel.
func (p *testPanel) controlClient(mode CredentialMode) *ControlClient {
	return NewControlClient(p.server.URL, mode, "test-key")
}

// handleFunc registers a handler for a path. Application API paths must
// include the /api/application prefix, control paths /api/client.
func (p *testPanel) handleFunc(pattern string, handler http.HandlerFunc) {
	p.mux.HandleFunc(pattern, handler)
}

// jsonResponse writes a JSON response with the given status and body.
func jsonResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// envelope wraps attributes in the panel's resource envelope shape.
func envelope(attrs map[string]any) map[string]any {
	return map[string]any{"object": "resource", "attributes": attrs}
}

// listEnvelope wraps envelopes in a paginated list envelope.
func listEnvelope(items []map[string]any, currentPage, totalPages int) map[string]any {
	return map[string]any{
		"object": "list",
		"data":   items,
		"meta": map[string]any{
			"pagination": map[string]any{
				"current_page": currentPage,
				"total_pages":  totalPages,
			},
		},
	}
}
