package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/zerioak/pteroctl/internal/ptero"
)

// testPanel is a fake panel backed by httptest, mirroring the fixture
// style of the ptero package tests.
type testPanel struct {
	mux    *http.ServeMux
	server *httptest.Server
}

func newTestPanel(t *testing.T) *testPanel {
	t.Helper()
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return &testPanel{mux: mux, server: server}
}

func (p *testPanel) client() *ptero.Client {
	return ptero.NewClient(p.server.URL, "test-key")
}

func (p *testPanel) control(mode ptero.CredentialMode) *ptero.ControlClient {
	return ptero.NewControlClient(p.server.URL, mode, "test-key")
}

// app registers a handler under the Application API prefix.
func (p *testPanel) app(path string, handler http.HandlerFunc) {
	p.mux.HandleFunc("/api/application"+path, handler)
}

// cli registers a handler under the Client API prefix.
func (p *testPanel) cli(path string, handler http.HandlerFunc) {
	p.mux.HandleFunc("/api/client"+path, handler)
}

func jsonBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, body)
}

func listBody(items ...string) string {
	data := ""
	for i, item := range items {
		if i > 0 {
			data += ","
		}
		data += item
	}
	return `{"object":"list","data":[` + data + `]}`
}

func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}
