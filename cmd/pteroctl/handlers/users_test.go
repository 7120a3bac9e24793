package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userEnvelope = `{
	"object": "user",
	"attributes": {
		"id": 3,
		"uuid": "c4b1f0a2-9273-4b76-b2a5-2a6e6e8e2f11",
		"username": "steve",
		"email": "steve@example.com",
		"first_name": "Steve",
		"last_name": "Miner",
		"root_admin": false
	}
}`

func TestListUsers_Output(t *testing.T) {
	panel := newTestPanel(t)
	panel.app("/users", func(w http.ResponseWriter, _ *http.Request) {
		jsonBody(w, listBody(userEnvelope))
	})
	client := panel.client()
	defer client.Close()

	var err error
	out := captureOutput(func() {
		err = listUsers(context.Background(), client)
	})

	require.NoError(t, err)
	assert.Contains(t, out, "Users (1)")
	assert.Contains(t, out, "steve@example.com")
	assert.Contains(t, out, "Steve Miner")
}

func TestCreateUser_DefaultsNamesToUsername(t *testing.T) {
	panel := newTestPanel(t)

	var payload map[string]any
	panel.app("/users", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &payload))
		jsonBody(w, userEnvelope)
	})
	client := panel.client()
	defer client.Close()

	err := createUser(context.Background(), client, UserOptions{
		Email:    "steve@example.com",
		Username: "steve",
	})
	require.NoError(t, err)

	assert.Equal(t, "steve", payload["first_name"])
	assert.Equal(t, "steve", payload["last_name"])
}

func TestUpdateUser_KeepsUnsetFields(t *testing.T) {
	panel := newTestPanel(t)
	panel.app("/users/3", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			jsonBody(w, userEnvelope)
			return
		}
		require.Equal(t, http.MethodPatch, r.Method)
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "alex@example.com", payload["email"])
		assert.Equal(t, "steve", payload["username"])
		assert.Equal(t, "Steve", payload["first_name"])
		jsonBody(w, userEnvelope)
	})
	client := panel.client()
	defer client.Close()

	err := updateUser(context.Background(), client, 3, UserOptions{Email: "alex@example.com"})
	require.NoError(t, err)
}
