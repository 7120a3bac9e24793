package ptero

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlClientBypassFlag(t *testing.T) {
	tests := []struct {
		name       string
		mode       CredentialMode
		wantBypass string
	}{
		{"owner mode omits flag", ModeOwner, ""},
		{"admin mode sets flag", ModeAdmin, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := newTestPanel()
			defer panel.close()

			var gotBypass string
			panel.handleFunc("/api/client/servers/abcd1234/resources", func(w http.ResponseWriter, r *http.Request) {
				gotBypass = r.URL.Query().Get("bypass_ownership")
				jsonResponse(w, http.StatusOK, map[string]any{
					"attributes": map[string]any{"current_state": "running"},
				})
			})

			res, err := panel.controlClient(tt.mode).Resources(context.Background(), "abcd1234")
			require.NoError(t, err)
			assert.Equal(t, tt.wantBypass, gotBypass)
			assert.Equal(t, "running", res.AttrStr("current_state"))
		})
	}
}

func TestControlClientPower(t *testing.T) {
	panel := newTestPanel()
	defer panel.close()

	var gotPath string
	var gotBody map[string]any
	panel.handleFunc("/api/client/servers/abcd1234/power", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusNoContent)
	})

	err := panel.controlClient(ModeOwner).Power(context.Background(), "abcd1234", PowerRestart)
	require.NoError(t, err)
	assert.Equal(t, "/api/client/servers/abcd1234/power", gotPath)
	assert.Equal(t, "restart", gotBody["signal"])
}

func TestControlClientReinstall(t *testing.T) {
	panel := newTestPanel()
	defer panel.close()

	var called bool
	panel.handleFunc("/api/client/servers/abcd1234/reinstall", func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, panel.controlClient(ModeAdmin).Reinstall(context.Background(), "abcd1234"))
	assert.True(t, called)
}

func TestIdentifierResolution(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{
			name: "explicit identifier preferred",
			json: `{"attributes":{"identifier":"short123","uuid":"abcdef1234567890"}}`,
			want: "short123",
		},
		{
			name: "falls back to uuid prefix",
			json: `{"attributes":{"uuid":"abcdef1234567890"}}`,
			want: "abcdef12",
		},
		{
			name: "short uuid used as-is",
			json: `{"attributes":{"uuid":"abc"}}`,
			want: "abc",
		},
		{
			name: "nothing to derive",
			json: `{"attributes":{}}`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Identifier(ParseDocument([]byte(tt.json))))
		})
	}
}

func TestCredentialModeString(t *testing.T) {
	assert.Equal(t, "owner", ModeOwner.String())
	assert.Equal(t, "admin", ModeAdmin.String())
}
