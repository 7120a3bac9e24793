package ptero

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	requestTimeout = 30 * time.Second

	// excerptLimit bounds how much of a non-JSON body is carried in a
	// DecodeError.
	excerptLimit = 500
)

// transport performs single authenticated calls against one API base
// and normalizes the outcome into a Document or a typed error. It is
// the only place raw HTTP results are classified.
type transport struct {
	base string
	key  string
	http *http.Client
}

func newTransport(base, key string, hc *http.Client) *transport {
	return &transport{
		base: strings.TrimRight(base, "/"),
		key:  key,
		http: hc,
	}
}

// request issues one call. A nil body sends no payload. Query values,
// if any, are appended to the path.
func (t *transport) request(ctx context.Context, method, path string, body any, query url.Values) (Document, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Document{}, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	endpoint := t.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return Document{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.http.Do(req)
	if err != nil {
		return Document{}, &TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return emptyDocument(), nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, &TransportError{Err: err}
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return emptyDocument(), nil
	}

	if !gjson.Valid(text) {
		excerpt := text
		if len(excerpt) > excerptLimit {
			excerpt = excerpt[:excerptLimit]
		}
		return Document{}, &DecodeError{Status: resp.StatusCode, Excerpt: excerpt}
	}

	doc := ParseDocument([]byte(text))
	if resp.StatusCode >= http.StatusBadRequest {
		return Document{}, &APIError{Status: resp.StatusCode, Message: errorMessage(doc, text)}
	}
	return doc, nil
}

// errorMessage extracts the detail of the first entry in the body's
// "errors" array, falling back to the body text itself.
func errorMessage(doc Document, body string) string {
	if detail := doc.Str("errors.0.detail"); detail != "" {
		return detail
	}
	return body
}
